// Package compare applies typed comparison operators to metadata values.
// Every storage backend and the in-process sort share these rules.
package compare

import (
	"github.com/kailas-cloud/runstore/internal/domain"
	"github.com/kailas-cloud/runstore/internal/domain/query"
	"github.com/kailas-cloud/runstore/internal/domain/value"
)

// Supports reports whether op can be applied to operands of kind k.
func Supports(op query.Operator, k value.Kind) error {
	if !op.IsValid() {
		return domain.InvalidArgumentf("unknown operator %q", op)
	}
	switch k {
	case value.KindNumber, value.KindString:
		return nil
	case value.KindBool:
		if op.Ordering() {
			return domain.Unimplementedf("operator %s is not defined for booleans", op)
		}
		return nil
	case value.KindList:
		return domain.Unimplementedf("list values are not comparable")
	case value.KindStruct:
		return domain.Unimplementedf("structured values are not comparable")
	default:
		return domain.InvalidArgumentf("value is empty")
	}
}

// Compare evaluates lhs <op> rhs. Operands of different kinds are never coerced.
// Numbers use IEEE-754 ordering and exact equality; strings compare byte-wise.
func Compare(op query.Operator, lhs, rhs value.Value) (bool, error) {
	if err := Supports(op, lhs.Kind()); err != nil {
		return false, err
	}
	if err := Supports(op, rhs.Kind()); err != nil {
		return false, err
	}
	if lhs.Kind() != rhs.Kind() {
		return false, domain.Unimplementedf("cannot compare %s with %s", lhs.Kind(), rhs.Kind())
	}

	switch lhs.Kind() {
	case value.KindNumber:
		return apply(op, lhs.Num(), rhs.Num()), nil
	case value.KindString:
		return apply(op, lhs.Str(), rhs.Str()), nil
	case value.KindBool:
		eq := lhs.Bool() == rhs.Bool()
		if op == query.EQ {
			return eq, nil
		}
		return !eq, nil
	default:
		return false, domain.Unimplementedf("%s values are not comparable", lhs.Kind())
	}
}

func apply[T float64 | string](op query.Operator, a, b T) bool {
	switch op {
	case query.EQ:
		return a == b
	case query.NEQ:
		return a != b
	case query.LT:
		return a < b
	case query.LTE:
		return a <= b
	case query.GT:
		return a > b
	case query.GTE:
		return a >= b
	default:
		return false
	}
}

// Order returns -1, 0 or 1 as lhs sorts before, with, or after rhs.
// It is derived from Compare so ranking never disagrees with filtering.
func Order(lhs, rhs value.Value) (int, error) {
	less, err := Compare(query.LT, lhs, rhs)
	if err != nil {
		return 0, err
	}
	if less {
		return -1, nil
	}
	greater, err := Compare(query.GT, lhs, rhs)
	if err != nil {
		return 0, err
	}
	if greater {
		return 1, nil
	}
	return 0, nil
}
