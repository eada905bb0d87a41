package query

import (
	"context"

	"github.com/kailas-cloud/runstore/internal/domain/query/predicate"
	"github.com/kailas-cloud/runstore/internal/domain/query/request"
	domrun "github.com/kailas-cloud/runstore/internal/domain/run"
)

//go:generate mockgen -source=contract.go -destination=mocks_test.go -package=query

// Repository filters runs at the configured store.
type Repository interface {
	// Find returns the runs in scope matching every predicate, ordered by id.
	// A scoped project, experiment or run that does not exist is domain.ErrNotFound.
	Find(ctx context.Context, scope request.Scope, predicates []predicate.Predicate) ([]domrun.Run, error)
}
