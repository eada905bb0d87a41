package run

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/runstore/internal/db"
	"github.com/kailas-cloud/runstore/internal/db/memory"
	"github.com/kailas-cloud/runstore/internal/domain"
	"github.com/kailas-cloud/runstore/internal/domain/query"
	"github.com/kailas-cloud/runstore/internal/domain/query/predicate"
	"github.com/kailas-cloud/runstore/internal/domain/query/request"
	domrun "github.com/kailas-cloud/runstore/internal/domain/run"
	"github.com/kailas-cloud/runstore/internal/domain/value"
)

func newTestRepo(t *testing.T) *Repo {
	t.Helper()
	s := memory.NewStore()
	ctx := context.Background()
	if err := s.InsertProject(ctx, &db.ProjectRecord{ID: "p1", Name: "p"}); err != nil {
		t.Fatal(err)
	}
	if err := s.InsertExperiment(ctx, &db.ExperimentRecord{ID: "e1", ProjectID: "p1", Name: "e"}); err != nil {
		t.Fatal(err)
	}
	return New(s)
}

func testRun(t *testing.T, id string, loss float64) domrun.Run {
	t.Helper()
	r, err := domrun.New(domrun.Params{
		ID: id, ProjectID: "p1", ExperimentID: "e1", Name: id,
		Metrics: []value.KeyValue{{Key: "loss", Value: value.Number(loss)}},
	}, 1000)
	if err != nil {
		t.Fatalf("run.New: %v", err)
	}
	return r
}

func TestCreateGetDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Create(ctx, testRun(t, "r1", 0.5)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, testRun(t, "r1", 0.5)); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("duplicate Create = %v, want ErrAlreadyExists", err)
	}

	got, err := repo.Get(ctx, "r1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.DateCreated() != 1000 || len(got.Metrics()) != 1 || got.Metrics()[0].Value.Num() != 0.5 {
		t.Errorf("run = %+v", got)
	}

	if err := repo.Delete(ctx, "r1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Get(ctx, "r1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get after delete = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, "r1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second Delete = %v, want ErrNotFound", err)
	}
}

func TestUpdate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	r := testRun(t, "r1", 0.5)
	if err := repo.Create(ctx, r); err != nil {
		t.Fatal(err)
	}

	updated, err := r.WithEndTime(2000, 3000)
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.Update(ctx, updated); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := repo.Get(ctx, "r1")
	if err != nil {
		t.Fatal(err)
	}
	if got.EndTime() == nil || *got.EndTime() != 2000 || got.DateUpdated() != 3000 {
		t.Errorf("run = %+v", got)
	}

	if err := repo.Update(ctx, testRun(t, "ghost", 1)); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Update unknown = %v, want ErrNotFound", err)
	}
}

func TestFind(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	for _, r := range []domrun.Run{testRun(t, "r2", 20), testRun(t, "r1", 10), testRun(t, "r3", 30)} {
		if err := repo.Create(ctx, r); err != nil {
			t.Fatal(err)
		}
	}

	scope, err := request.NewScope("p1", "", nil, request.Limits{})
	if err != nil {
		t.Fatal(err)
	}
	p, err := predicate.New("metrics.loss", query.GTE, value.Number(20))
	if err != nil {
		t.Fatal(err)
	}
	runs, err := repo.Find(ctx, scope, []predicate.Predicate{p})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(runs) != 2 || runs[0].ID() != "r2" || runs[1].ID() != "r3" {
		t.Errorf("runs = %v", runIDs(runs))
	}
}

func TestFind_UnknownExperiment(t *testing.T) {
	repo := newTestRepo(t)
	scope, err := request.NewScope("", "e404", nil, request.Limits{})
	if err != nil {
		t.Fatal(err)
	}
	_, err = repo.Find(context.Background(), scope, nil)
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) || nf.ID != "e404" {
		t.Fatalf("Find = %v, want NotFoundError for e404", err)
	}
}

func runIDs(runs []domrun.Run) []string {
	ids := make([]string, len(runs))
	for i := range runs {
		ids[i] = runs[i].ID()
	}
	return ids
}
