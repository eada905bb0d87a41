package match

import (
	"testing"

	"github.com/kailas-cloud/runstore/internal/domain/query"
	"github.com/kailas-cloud/runstore/internal/domain/query/fieldpath"
	"github.com/kailas-cloud/runstore/internal/domain/query/predicate"
	"github.com/kailas-cloud/runstore/internal/domain/run"
	"github.com/kailas-cloud/runstore/internal/domain/value"
)

func newRun(t *testing.T, id string, endTime *int64, metrics, hyper []value.KeyValue) run.Run {
	t.Helper()
	r, err := run.New(run.Params{
		ID: id, ProjectID: "p", ExperimentID: "e",
		EndTime: endTime, Metrics: metrics, Hyperparameters: hyper,
	}, 1)
	if err != nil {
		t.Fatalf("run.New: %v", err)
	}
	return r
}

func mustPredicate(t *testing.T, path string, op query.Operator, v value.Value) predicate.Predicate {
	t.Helper()
	p, err := predicate.New(path, op, v)
	if err != nil {
		t.Fatalf("predicate.New(%q): %v", path, err)
	}
	return p
}

func kv(key string, v value.Value) value.KeyValue { return value.KeyValue{Key: key, Value: v} }

func TestMatches_LossLTE(t *testing.T) {
	runs := []run.Run{
		newRun(t, "a", nil, []value.KeyValue{kv("loss", value.Number(10))}, nil),
		newRun(t, "b", nil, []value.KeyValue{kv("loss", value.Number(15))}, nil),
		newRun(t, "c", nil, []value.KeyValue{kv("loss", value.Number(20))}, nil),
	}
	p := mustPredicate(t, "metrics.loss", query.LTE, value.Number(15))

	var got []string
	for i := range runs {
		ok, err := Matches(&runs[i], p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			got = append(got, runs[i].ID())
		}
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("matched %v, want [a b]", got)
	}
}

func TestMatches_NEQOnAbsentKey(t *testing.T) {
	r := newRun(t, "a", nil, nil, []value.KeyValue{kv("lr", value.Number(0.1))})
	p := mustPredicate(t, "hyperparameters.tuning", query.NEQ, value.Number(5))
	ok, err := Matches(&r, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("NEQ on an absent key must match")
	}

	eq := mustPredicate(t, "hyperparameters.tuning", query.EQ, value.Number(5))
	ok, err = Matches(&r, eq)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("EQ on an absent key must not match")
	}
}

func TestMatches_ContainerEntries(t *testing.T) {
	r := newRun(t, "a", nil, []value.KeyValue{
		kv("loss", value.Number(5)),
		kv("loss", value.Number(9)),
		kv("tag", value.String("x")),
		kv("tag", value.List(value.String("x"))),
	}, nil)

	tests := []struct {
		name string
		path string
		op   query.Operator
		val  value.Value
		want bool
	}{
		{"any duplicate matches", "metrics.loss", query.GT, value.Number(8), true},
		{"no duplicate matches", "metrics.loss", query.GT, value.Number(9), false},
		{"NEQ with one differing duplicate", "metrics.loss", query.NEQ, value.Number(5), true},
		{"other kind skipped", "metrics.loss", query.EQ, value.String("5"), false},
		{"NEQ other kind counts as different", "metrics.loss", query.NEQ, value.String("5"), true},
		{"list entry skipped", "metrics.tag", query.EQ, value.String("x"), true},
		{"NEQ with list entry", "metrics.tag", query.NEQ, value.String("x"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := Matches(&r, mustPredicate(t, tt.path, tt.op, tt.val))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tt.want {
				t.Errorf("Matches = %v, want %v", ok, tt.want)
			}
		})
	}
}

func TestMatches_NEQAllEqual(t *testing.T) {
	r := newRun(t, "a", nil, []value.KeyValue{kv("loss", value.Number(5)), kv("loss", value.Number(5))}, nil)
	ok, err := Matches(&r, mustPredicate(t, "metrics.loss", query.NEQ, value.Number(5)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("NEQ must not match when every entry equals the operand")
	}
}

func TestMatches_NullableScalar(t *testing.T) {
	end := int64(20)
	withEnd := newRun(t, "a", &end, nil, nil)
	noEnd := newRun(t, "b", nil, nil, nil)

	tests := []struct {
		name string
		r    *run.Run
		op   query.Operator
		want bool
	}{
		{"set GT", &withEnd, query.GT, true},
		{"unset GT", &noEnd, query.GT, false},
		{"unset EQ", &noEnd, query.EQ, false},
		{"unset NEQ", &noEnd, query.NEQ, true},
		{"set NEQ", &withEnd, query.NEQ, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := Matches(tt.r, mustPredicate(t, "endTime", tt.op, value.Number(10)))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tt.want {
				t.Errorf("Matches = %v, want %v", ok, tt.want)
			}
		})
	}
}

func TestMatchesAll(t *testing.T) {
	r := newRun(t, "a", nil, []value.KeyValue{kv("loss", value.Number(5))}, nil)
	prs := []predicate.Predicate{
		mustPredicate(t, "metrics.loss", query.LT, value.Number(10)),
		mustPredicate(t, "experimentId", query.EQ, value.String("e")),
	}
	ok, err := MatchesAll(&r, prs)
	if err != nil || !ok {
		t.Errorf("MatchesAll = %v, %v", ok, err)
	}

	prs = append(prs, mustPredicate(t, "metrics.loss", query.GT, value.Number(5)))
	ok, err = MatchesAll(&r, prs)
	if err != nil || ok {
		t.Errorf("MatchesAll = %v, %v, want false", ok, err)
	}

	ok, err = MatchesAll(&r, nil)
	if err != nil || !ok {
		t.Errorf("empty predicate list must match, got %v, %v", ok, err)
	}
}

func TestLookup(t *testing.T) {
	r := newRun(t, "a", nil, []value.KeyValue{kv("loss", value.Number(3)), kv("loss", value.Number(1))}, nil)
	v, ok := Lookup(&r, fieldpath.ContainerKey(run.Metrics, "loss"))
	if !ok || v.Num() != 3 {
		t.Errorf("Lookup = %v, %v, want first entry 3", v, ok)
	}
	if _, ok := Lookup(&r, fieldpath.ContainerKey(run.Metrics, "acc")); ok {
		t.Error("missing key must be absent")
	}
	v, ok = Lookup(&r, fieldpath.Scalar("id"))
	if !ok || v.Str() != "a" {
		t.Errorf("Lookup(id) = %v, %v", v, ok)
	}
}
