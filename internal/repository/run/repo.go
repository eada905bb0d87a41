package run

import (
	"context"

	"github.com/kailas-cloud/runstore/internal/db"
	"github.com/kailas-cloud/runstore/internal/domain/query/predicate"
	"github.com/kailas-cloud/runstore/internal/domain/query/request"
	domrun "github.com/kailas-cloud/runstore/internal/domain/run"
	"github.com/kailas-cloud/runstore/internal/repository"
)

// store is the consumer interface for runs (ISP).
type store interface {
	db.RunStore
	db.RunFinder
}

// Repo implements usecase/run.Repository and usecase/query.Repository.
type Repo struct {
	store store
}

// New creates a run repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Create stores a new run.
func (r *Repo) Create(ctx context.Context, run domrun.Run) error {
	return repository.MapError("insert run "+run.ID(), r.store.InsertRun(ctx, toRecord(&run)))
}

// Get loads a run by id.
func (r *Repo) Get(ctx context.Context, id string) (domrun.Run, error) {
	rec, err := r.store.GetRun(ctx, id)
	if err != nil {
		return domrun.Run{}, repository.MapError("get run "+id, err)
	}
	return fromRecord(rec), nil
}

// Update replaces a stored run.
func (r *Repo) Update(ctx context.Context, run domrun.Run) error {
	return repository.MapError("replace run "+run.ID(), r.store.ReplaceRun(ctx, toRecord(&run)))
}

// Delete removes a run.
func (r *Repo) Delete(ctx context.Context, id string) error {
	return repository.MapError("delete run "+id, r.store.DeleteRun(ctx, id))
}

// Find returns the runs in scope matching every predicate, ordered by id.
// A scoped project, experiment or run id that does not exist is NotFound.
func (r *Repo) Find(ctx context.Context, scope request.Scope, predicates []predicate.Predicate) ([]domrun.Run, error) {
	recs, err := r.store.FindRuns(ctx, &db.RunQuery{
		ProjectID:    scope.ProjectID(),
		ExperimentID: scope.ExperimentID(),
		RunIDs:       scope.RunIDs(),
		Predicates:   predicates,
	})
	if err != nil {
		return nil, repository.MapError("find runs", err)
	}
	runs := make([]domrun.Run, len(recs))
	for i := range recs {
		runs[i] = fromRecord(&recs[i])
	}
	return runs, nil
}
