package predicate

import (
	"errors"
	"math"
	"testing"

	"github.com/kailas-cloud/runstore/internal/domain"
	"github.com/kailas-cloud/runstore/internal/domain/query"
	"github.com/kailas-cloud/runstore/internal/domain/run"
	"github.com/kailas-cloud/runstore/internal/domain/value"
)

func TestNew_Valid(t *testing.T) {
	p, err := New("metrics.loss", query.LTE, value.Number(15))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Path().Container() != run.Metrics || p.Path().Key() != "loss" {
		t.Errorf("path = %v", p.Path())
	}
	if p.Operator() != query.LTE || p.Value().Num() != 15 {
		t.Errorf("got %s", p)
	}
	if p.String() != "metrics.loss LTE 15" {
		t.Errorf("String() = %q", p.String())
	}

	if _, err := New("endTime", query.GT, value.Number(10)); err != nil {
		t.Errorf("endTime GT: unexpected error: %v", err)
	}
	if _, err := New("attributes.done", query.EQ, value.Bool(true)); err != nil {
		t.Errorf("bool EQ: unexpected error: %v", err)
	}
}

func TestNew_Errors(t *testing.T) {
	structVal := value.Struct(map[string]value.Value{"lr": value.Number(0.1)})
	tests := []struct {
		name string
		path string
		op   query.Operator
		val  value.Value
		want error
	}{
		{"empty path", "", query.EQ, value.Number(1), domain.ErrInvalidArgument},
		{"unknown container", "params.lr", query.EQ, value.Number(1), domain.ErrInvalidArgument},
		{"multi dot", "metrics.a.b", query.EQ, value.Number(1), domain.ErrInvalidArgument},
		{"unknown operator", "metrics.loss", "LIKE", value.Number(1), domain.ErrInvalidArgument},
		{"missing value", "metrics.loss", query.EQ, value.Value{}, domain.ErrInvalidArgument},
		{"nan", "metrics.loss", query.EQ, value.Number(math.NaN()), domain.ErrInvalidArgument},
		{"unknown scalar", "finishedAt", query.EQ, value.Number(1), domain.ErrInvalidArgument},
		{"struct value", "hyperparameters.opt", query.EQ, structVal, domain.ErrUnimplemented},
		{"list value", "metrics.loss", query.EQ, value.List(value.Number(1)), domain.ErrUnimplemented},
		{"bool ordering", "attributes.done", query.GT, value.Bool(true), domain.ErrUnimplemented},
		{"scalar kind mismatch", "endTime", query.EQ, value.String("10"), domain.ErrUnimplemented},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.path, tt.op, tt.val)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}
