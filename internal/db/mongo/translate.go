package mongo

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/kailas-cloud/runstore/internal/db"
	"github.com/kailas-cloud/runstore/internal/domain/query"
	"github.com/kailas-cloud/runstore/internal/domain/query/predicate"
)

// Compile-time check: Translator implements db.QueryTranslator.
var _ db.QueryTranslator[bson.D] = Translator{}

// Translator turns a RunQuery into a filter over the experiment_runs collection.
type Translator struct{}

// Translate builds an $and of scope clauses and one clause per predicate.
// An empty query yields an empty filter.
func (Translator) Translate(q *db.RunQuery) (bson.D, error) {
	var clauses bson.A

	if q.ProjectID != "" {
		clauses = append(clauses, bson.D{{Key: "project_id", Value: q.ProjectID}})
	}
	if q.ExperimentID != "" {
		clauses = append(clauses, bson.D{{Key: "experiment_id", Value: q.ExperimentID}})
	}
	if len(q.RunIDs) > 0 {
		clauses = append(clauses, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: q.RunIDs}}}})
	}
	for i, p := range q.Predicates {
		c, err := buildPredicate(p)
		if err != nil {
			return nil, fmt.Errorf("predicate %d (%s): %w", i, p, err)
		}
		clauses = append(clauses, c)
	}

	if len(clauses) == 0 {
		return bson.D{}, nil
	}
	return bson.D{{Key: "$and", Value: clauses}}, nil
}

func buildPredicate(p predicate.Predicate) (bson.D, error) {
	op, err := mongoOperator(p.Operator())
	if err != nil {
		return nil, err
	}
	operand := p.Value().Interface()
	path := p.Path()

	if !path.IsContainer() {
		field, ok := scalarFields[path.Name()]
		if !ok {
			return nil, fmt.Errorf("unknown run field %q", path.Name())
		}
		// $ne also matches documents without the field, as an unset
		// nullable scalar must.
		return bson.D{{Key: field, Value: bson.D{{Key: op, Value: operand}}}}, nil
	}

	container := string(path.Container())
	kind := p.Value().Kind().String()

	if p.Operator() != query.NEQ {
		return bson.D{{Key: container, Value: bson.D{{Key: "$elemMatch", Value: bson.D{
			{Key: "key", Value: path.Key()},
			{Key: "kind", Value: kind},
			{Key: "value", Value: bson.D{{Key: op, Value: operand}}},
		}}}}}, nil
	}

	// NEQ: no entry with the key, or an entry that is not an equal value of the same kind.
	absent := bson.D{{Key: container, Value: bson.D{{Key: "$not", Value: bson.D{
		{Key: "$elemMatch", Value: bson.D{{Key: "key", Value: path.Key()}}},
	}}}}}
	differs := bson.D{{Key: container, Value: bson.D{{Key: "$elemMatch", Value: bson.D{
		{Key: "key", Value: path.Key()},
		{Key: "$or", Value: bson.A{
			bson.D{{Key: "kind", Value: bson.D{{Key: "$ne", Value: kind}}}},
			bson.D{{Key: "value", Value: bson.D{{Key: "$ne", Value: operand}}}},
		}},
	}}}}}
	return bson.D{{Key: "$or", Value: bson.A{absent, differs}}}, nil
}

func mongoOperator(op query.Operator) (string, error) {
	switch op {
	case query.EQ:
		return "$eq", nil
	case query.NEQ:
		return "$ne", nil
	case query.LT:
		return "$lt", nil
	case query.LTE:
		return "$lte", nil
	case query.GT:
		return "$gt", nil
	case query.GTE:
		return "$gte", nil
	default:
		return "", fmt.Errorf("unsupported operator %q", op)
	}
}
