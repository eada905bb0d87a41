package fieldpath

import (
	"errors"
	"testing"

	"github.com/kailas-cloud/runstore/internal/domain"
	"github.com/kailas-cloud/runstore/internal/domain/run"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		in        string
		container run.Container
		key       string
		name      string
	}{
		{"metrics.loss", run.Metrics, "loss", ""},
		{"attributes.dataset", run.Attributes, "dataset", ""},
		{"hyperparameters.tuning", run.Hyperparameters, "tuning", ""},
		{"endTime", "", "", "endTime"},
		{"somethingUnknown", "", "", "somethingUnknown"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := Resolve(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Container() != tt.container || p.Key() != tt.key || p.Name() != tt.name {
				t.Errorf("got container=%q key=%q name=%q", p.Container(), p.Key(), p.Name())
			}
			if p.IsContainer() != (tt.container != "") {
				t.Errorf("IsContainer() = %v", p.IsContainer())
			}
			if p.String() != tt.in {
				t.Errorf("String() = %q, want %q", p.String(), tt.in)
			}
		})
	}
}

func TestResolve_Invalid(t *testing.T) {
	for _, in := range []string{"", "params.lr", "metrics.", "metrics.a.b", "a.b.c", ".loss"} {
		t.Run(in, func(t *testing.T) {
			_, err := Resolve(in)
			if !errors.Is(err, domain.ErrInvalidArgument) {
				t.Errorf("Resolve(%q) error = %v, want ErrInvalidArgument", in, err)
			}
		})
	}
}
