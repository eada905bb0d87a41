package experiment

import (
	"context"

	"github.com/kailas-cloud/runstore/internal/db"
	domexp "github.com/kailas-cloud/runstore/internal/domain/experiment"
	"github.com/kailas-cloud/runstore/internal/repository"
)

// Repo implements usecase/experiment.Repository.
type Repo struct {
	store db.ExperimentStore
}

// New creates an experiment repository.
func New(s db.ExperimentStore) *Repo {
	return &Repo{store: s}
}

// Create stores a new experiment.
func (r *Repo) Create(ctx context.Context, e domexp.Experiment) error {
	rec := &db.ExperimentRecord{
		ID:          e.ID(),
		ProjectID:   e.ProjectID(),
		Name:        e.Name(),
		Description: e.Description(),
		Owner:       e.Owner(),
		DateCreated: e.DateCreated(),
		DateUpdated: e.DateUpdated(),
	}
	return repository.MapError("insert experiment "+e.ID(), r.store.InsertExperiment(ctx, rec))
}

// Get loads an experiment by id.
func (r *Repo) Get(ctx context.Context, id string) (domexp.Experiment, error) {
	rec, err := r.store.GetExperiment(ctx, id)
	if err != nil {
		return domexp.Experiment{}, repository.MapError("get experiment "+id, err)
	}
	return domexp.Reconstruct(rec.ID, rec.ProjectID, rec.Name, rec.Description, rec.Owner,
		rec.DateCreated, rec.DateUpdated), nil
}
