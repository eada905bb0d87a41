package project

import (
	"context"

	"github.com/kailas-cloud/runstore/internal/db"
	domproj "github.com/kailas-cloud/runstore/internal/domain/project"
	"github.com/kailas-cloud/runstore/internal/repository"
)

// Repo implements usecase/project.Repository.
type Repo struct {
	store db.ProjectStore
}

// New creates a project repository.
func New(s db.ProjectStore) *Repo {
	return &Repo{store: s}
}

// Create stores a new project.
func (r *Repo) Create(ctx context.Context, p domproj.Project) error {
	rec := &db.ProjectRecord{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Owner:       p.Owner(),
		DateCreated: p.DateCreated(),
		DateUpdated: p.DateUpdated(),
	}
	return repository.MapError("insert project "+p.ID(), r.store.InsertProject(ctx, rec))
}

// Get loads a project by id.
func (r *Repo) Get(ctx context.Context, id string) (domproj.Project, error) {
	rec, err := r.store.GetProject(ctx, id)
	if err != nil {
		return domproj.Project{}, repository.MapError("get project "+id, err)
	}
	return domproj.Reconstruct(rec.ID, rec.Name, rec.Description, rec.Owner, rec.DateCreated, rec.DateUpdated), nil
}
