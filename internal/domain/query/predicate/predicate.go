// Package predicate holds validated filter conditions over experiment runs.
package predicate

import (
	"github.com/kailas-cloud/runstore/internal/domain"
	"github.com/kailas-cloud/runstore/internal/domain/query"
	"github.com/kailas-cloud/runstore/internal/domain/query/compare"
	"github.com/kailas-cloud/runstore/internal/domain/query/fieldpath"
	"github.com/kailas-cloud/runstore/internal/domain/run"
	"github.com/kailas-cloud/runstore/internal/domain/value"
)

// DefaultMaxPredicates is the default AND-group size limit.
const DefaultMaxPredicates = 32

// Predicate is a single (field path, operator, value) condition.
type Predicate struct {
	path fieldpath.Path
	op   query.Operator
	val  value.Value
}

// New resolves the field path and validates the condition.
// Malformed input fails with domain.ErrInvalidArgument; value shapes or
// operators the comparator cannot handle fail with domain.ErrUnimplemented.
func New(rawPath string, op query.Operator, v value.Value) (Predicate, error) {
	path, err := fieldpath.Resolve(rawPath)
	if err != nil {
		return Predicate{}, err
	}
	if !op.IsValid() {
		return Predicate{}, domain.InvalidArgumentf("unknown operator %q", op)
	}
	if !v.IsValid() {
		return Predicate{}, domain.InvalidArgumentf("predicate on %q has no value", rawPath)
	}
	if err := v.Validate(); err != nil {
		return Predicate{}, domain.InvalidArgumentf("predicate on %q: %v", rawPath, err)
	}
	if err := compare.Supports(op, v.Kind()); err != nil {
		return Predicate{}, err
	}

	if !path.IsContainer() {
		s, ok := run.LookupScalar(path.Name())
		if !ok {
			return Predicate{}, domain.InvalidArgumentf("unknown run field %q", path.Name())
		}
		if s.Kind != v.Kind() {
			return Predicate{}, domain.Unimplementedf("cannot compare %s field %q with %s value", s.Kind, s.Name, v.Kind())
		}
	}

	return Predicate{path: path, op: op, val: v}, nil
}

// Path returns the resolved field path.
func (p Predicate) Path() fieldpath.Path { return p.path }

// Operator returns the comparison operator.
func (p Predicate) Operator() query.Operator { return p.op }

// Value returns the comparison operand.
func (p Predicate) Value() value.Value { return p.val }

// String renders the predicate for logs.
func (p Predicate) String() string {
	return p.path.String() + " " + string(p.op) + " " + p.val.String()
}
