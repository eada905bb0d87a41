package postgres

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/runstore/internal/db"
	"github.com/kailas-cloud/runstore/internal/domain/query"
	"github.com/kailas-cloud/runstore/internal/domain/query/predicate"
	"github.com/kailas-cloud/runstore/internal/domain/value"
)

// Fragment is a WHERE condition over "experiment_runs r" with named
// parameters (@name) bound through Args.
type Fragment struct {
	SQL  string
	Args map[string]any
}

// Compile-time check: Translator implements db.QueryTranslator.
var _ db.QueryTranslator[Fragment] = Translator{}

// Translator turns a RunQuery into a SQL fragment.
type Translator struct{}

// scalarColumn maps a run field to its column and kind.
type scalarColumn struct {
	column   string
	kind     value.Kind
	nullable bool
}

var scalarColumns = map[string]scalarColumn{
	"id":           {column: "r.id", kind: value.KindString},
	"projectId":    {column: "r.project_id", kind: value.KindString},
	"experimentId": {column: "r.experiment_id", kind: value.KindString},
	"name":         {column: "r.name", kind: value.KindString},
	"description":  {column: "r.description", kind: value.KindString},
	"owner":        {column: "r.owner", kind: value.KindString},
	"codeVersion":  {column: "r.code_version", kind: value.KindString},
	"dateCreated":  {column: "r.date_created", kind: value.KindNumber},
	"dateUpdated":  {column: "r.date_updated", kind: value.KindNumber},
	"startTime":    {column: "r.start_time", kind: value.KindNumber, nullable: true},
	"endTime":      {column: "r.end_time", kind: value.KindNumber, nullable: true},
}

// Translate ANDs scope conditions and one condition per predicate.
// Predicate i binds only parameters prefixed p<i>_ so repeated
// containers and keys never collide. An empty query yields "TRUE".
func (Translator) Translate(q *db.RunQuery) (Fragment, error) {
	args := make(map[string]any)
	var conds []string

	if q.ProjectID != "" {
		conds = append(conds, "r.project_id = @scope_project ")
		args["scope_project"] = q.ProjectID
	}
	if q.ExperimentID != "" {
		conds = append(conds, "r.experiment_id = @scope_experiment ")
		args["scope_experiment"] = q.ExperimentID
	}
	if len(q.RunIDs) > 0 {
		conds = append(conds, "r.id IN @scope_runs ")
		args["scope_runs"] = q.RunIDs
	}
	for i, p := range q.Predicates {
		cond, err := buildPredicate(fmt.Sprintf("p%d_", i), p, args)
		if err != nil {
			return Fragment{}, fmt.Errorf("predicate %d (%s): %w", i, p, err)
		}
		conds = append(conds, cond)
	}

	if len(conds) == 0 {
		return Fragment{SQL: "TRUE", Args: args}, nil
	}
	return Fragment{SQL: "(" + strings.Join(conds, ") AND (") + ")", Args: args}, nil
}

func buildPredicate(prefix string, p predicate.Predicate, args map[string]any) (string, error) {
	op, err := sqlOperator(p.Operator())
	if err != nil {
		return "", err
	}
	operand := p.Value()
	valueParam := prefix + "v"
	args[valueParam] = operand.Interface()

	path := p.Path()
	if !path.IsContainer() {
		col, ok := scalarColumns[path.Name()]
		if !ok {
			return "", fmt.Errorf("unknown run field %q", path.Name())
		}
		if col.kind != operand.Kind() {
			return "", fmt.Errorf("cannot compare %s column %q with %s value", col.kind, path.Name(), operand.Kind())
		}
		cmp := typedExpr(col.column, col.kind) + " " + op + " @" + valueParam + " "
		if col.nullable && p.Operator() == query.NEQ {
			return col.column + " IS NULL OR " + cmp, nil
		}
		return cmp, nil
	}

	column, err := kindColumn(operand.Kind())
	if err != nil {
		return "", err
	}
	containerParam, keyParam, kindParam := prefix+"c", prefix+"k", prefix+"t"
	args[containerParam] = string(path.Container())
	args[keyParam] = path.Key()
	args[kindParam] = operand.Kind().String()

	entries := "SELECT 1 FROM run_key_values kv WHERE kv.run_id = r.id" +
		" AND kv.container = @" + containerParam +
		" AND kv.key = @" + keyParam + " "
	typed := typedExpr(column, operand.Kind())

	if p.Operator() != query.NEQ {
		return "EXISTS (" + entries +
			"AND kv.value_kind = @" + kindParam +
			" AND " + typed + " " + op + " @" + valueParam + " )", nil
	}
	return "NOT EXISTS (" + entries + ") OR EXISTS (" + entries +
		"AND (kv.value_kind <> @" + kindParam +
		" OR " + typed + " <> @" + valueParam + " ))", nil
}

// typedExpr casts numeric columns to double precision and pins strings to
// byte-wise collation so SQL ordering matches the in-process comparator.
func typedExpr(column string, k value.Kind) string {
	switch k {
	case value.KindNumber:
		return "CAST(" + column + " AS DOUBLE PRECISION)"
	case value.KindString:
		return column + ` COLLATE "C"`
	default:
		return column
	}
}

func kindColumn(k value.Kind) (string, error) {
	switch k {
	case value.KindNumber:
		return "kv.num_value", nil
	case value.KindString:
		return "kv.str_value", nil
	case value.KindBool:
		return "kv.bool_value", nil
	default:
		return "", fmt.Errorf("%s values cannot be filtered", k)
	}
}

func sqlOperator(op query.Operator) (string, error) {
	switch op {
	case query.EQ:
		return "=", nil
	case query.NEQ:
		return "<>", nil
	case query.LT:
		return "<", nil
	case query.LTE:
		return "<=", nil
	case query.GT:
		return ">", nil
	case query.GTE:
		return ">=", nil
	default:
		return "", fmt.Errorf("unsupported operator %q", op)
	}
}
