package experiment

import (
	"context"

	domexp "github.com/kailas-cloud/runstore/internal/domain/experiment"
	domproj "github.com/kailas-cloud/runstore/internal/domain/project"
)

// Repository defines the storage contract for experiments.
type Repository interface {
	Create(ctx context.Context, e domexp.Experiment) error
	Get(ctx context.Context, id string) (domexp.Experiment, error)
}

// ProjectReader resolves the owning project.
type ProjectReader interface {
	Get(ctx context.Context, id string) (domproj.Project, error)
}
