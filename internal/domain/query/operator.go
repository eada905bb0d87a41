// Package query holds the backend independent query model for experiment runs.
package query

import (
	"fmt"
	"strings"
)

// Operator is a typed comparison operator.
type Operator string

// Comparison operators.
const (
	EQ  Operator = "EQ"
	NEQ Operator = "NEQ"
	LT  Operator = "LT"
	LTE Operator = "LTE"
	GT  Operator = "GT"
	GTE Operator = "GTE"
)

// IsValid checks if the operator is one of the supported values.
func (o Operator) IsValid() bool {
	switch o {
	case EQ, NEQ, LT, LTE, GT, GTE:
		return true
	default:
		return false
	}
}

// Ordering reports whether the operator needs an ordering rather than equality.
func (o Operator) Ordering() bool {
	return o == LT || o == LTE || o == GT || o == GTE
}

// ParseOperator accepts operator names in any case.
func ParseOperator(s string) (Operator, error) {
	o := Operator(strings.ToUpper(strings.TrimSpace(s)))
	if !o.IsValid() {
		return "", fmt.Errorf("unknown operator %q", s)
	}
	return o, nil
}
