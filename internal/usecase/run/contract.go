package run

import (
	"context"

	domexp "github.com/kailas-cloud/runstore/internal/domain/experiment"
	domrun "github.com/kailas-cloud/runstore/internal/domain/run"
)

// Repository defines the storage contract for runs.
type Repository interface {
	Create(ctx context.Context, r domrun.Run) error
	Get(ctx context.Context, id string) (domrun.Run, error)
	Update(ctx context.Context, r domrun.Run) error
	Delete(ctx context.Context, id string) error
}

// ExperimentReader resolves the owning experiment.
type ExperimentReader interface {
	Get(ctx context.Context, id string) (domexp.Experiment, error)
}
