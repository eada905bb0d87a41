package db

import (
	"context"
	"time"
)

// Store is the main database facade combining all sub-interfaces.
//
//nolint:interfacebloat // facade -- consumers use narrow sub-interfaces (ISP)
type Store interface {
	Pinger
	ProjectStore
	ExperimentStore
	RunStore
	RunFinder
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ProjectStore persists projects.
type ProjectStore interface {
	InsertProject(ctx context.Context, rec *ProjectRecord) error
	GetProject(ctx context.Context, id string) (*ProjectRecord, error)
}

// ExperimentStore persists experiments.
type ExperimentStore interface {
	InsertExperiment(ctx context.Context, rec *ExperimentRecord) error
	GetExperiment(ctx context.Context, id string) (*ExperimentRecord, error)
}

// RunStore persists experiment runs.
type RunStore interface {
	InsertRun(ctx context.Context, rec *RunRecord) error
	GetRun(ctx context.Context, id string) (*RunRecord, error)
	ReplaceRun(ctx context.Context, rec *RunRecord) error
	DeleteRun(ctx context.Context, id string) error
}

// RunFinder filters runs at the store.
//
// FindRuns checks that every scoped project, experiment and run exists,
// then returns the runs matching the scope and all predicates ordered by id.
// Both steps share one session or transaction.
type RunFinder interface {
	FindRuns(ctx context.Context, q *RunQuery) ([]RunRecord, error)
}
