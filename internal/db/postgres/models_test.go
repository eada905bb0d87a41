package postgres

import (
	"strings"
	"testing"

	"github.com/kailas-cloud/runstore/internal/db"
	"github.com/kailas-cloud/runstore/internal/domain/value"
)

func TestKeyValueModels_RoundTrip(t *testing.T) {
	rec := &db.RunRecord{
		ID: "r1", ProjectID: "p1", ExperimentID: "e1",
		Attributes: []value.KeyValue{
			{Key: "dataset", Value: value.String("mnist")},
			{Key: "tags", Value: value.List(value.String("a"), value.Number(2))},
		},
		Metrics:         []value.KeyValue{{Key: "loss", Value: value.Number(0.25)}},
		Hyperparameters: []value.KeyValue{{Key: "shuffle", Value: value.Bool(true)}},
	}
	kvs, err := toKeyValueModels(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(kvs) != 4 {
		t.Fatalf("len = %d, want 4", len(kvs))
	}
	if kvs[0].StrValue == nil || *kvs[0].StrValue != "mnist" || kvs[0].Position != 0 {
		t.Errorf("attributes[0] = %+v", kvs[0])
	}
	if kvs[1].ValueKind != "list" || kvs[1].NumValue != nil || kvs[1].Position != 1 {
		t.Errorf("attributes[1] = %+v", kvs[1])
	}
	if kvs[2].NumValue == nil || *kvs[2].NumValue != 0.25 {
		t.Errorf("metrics[0] = %+v", kvs[2])
	}
	if kvs[3].BoolValue == nil || !*kvs[3].BoolValue {
		t.Errorf("hyperparameters[0] = %+v", kvs[3])
	}

	m := toRunModel(rec)
	got, err := assembleRun(&m, kvs)
	if err != nil {
		t.Fatalf("assembleRun: %v", err)
	}
	if len(got.Attributes) != 2 || len(got.Metrics) != 1 || len(got.Hyperparameters) != 1 {
		t.Fatalf("assembled = %+v", got)
	}
	if items := got.Attributes[1].Value.Items(); len(items) != 2 || items[1].Num() != 2 {
		t.Errorf("tags = %v", got.Attributes[1].Value)
	}
	if got.Metrics[0].Value.Num() != 0.25 {
		t.Errorf("loss = %v", got.Metrics[0].Value)
	}
}

func TestAssembleRun_KindMismatch(t *testing.T) {
	m := &runModel{ID: "r1"}
	_, err := assembleRun(m, []keyValueModel{
		{RunID: "r1", Container: containerMetrics, Key: "loss", ValueKind: "string", RawValue: "1"},
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "does not match") {
		t.Errorf("error = %q", err)
	}
}

func TestAssembleRun_UnknownContainer(t *testing.T) {
	m := &runModel{ID: "r1"}
	_, err := assembleRun(m, []keyValueModel{
		{RunID: "r1", Container: "tags", Key: "x", ValueKind: "number", RawValue: "1"},
	})
	if err == nil || !strings.Contains(err.Error(), "unknown container") {
		t.Errorf("error = %v", err)
	}
}

func TestCreateIndexSQL(t *testing.T) {
	def := db.NewIndex("runs_project").On(tableRuns).Asc("project_id").MustBuild()
	want := "CREATE INDEX IF NOT EXISTS runs_project ON experiment_runs (project_id)"
	if got := createIndexSQL(def); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	unique := db.NewIndex("kv_pos").On(tableKeyValues).Asc("run_id").Unique().MustBuild()
	if got := createIndexSQL(unique); !strings.HasPrefix(got, "CREATE UNIQUE INDEX IF NOT EXISTS kv_pos") {
		t.Errorf("got %q", got)
	}
}

func TestIndexes_Valid(t *testing.T) {
	for _, def := range Indexes() {
		if err := def.Validate(); err != nil {
			t.Errorf("%s: %v", def.Name, err)
		}
	}
}
