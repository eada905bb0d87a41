package project

import (
	"context"

	domproj "github.com/kailas-cloud/runstore/internal/domain/project"
)

// Repository defines the storage contract for projects.
type Repository interface {
	Create(ctx context.Context, p domproj.Project) error
	Get(ctx context.Context, id string) (domproj.Project, error)
}
