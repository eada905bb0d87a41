package runstore

import "github.com/kailas-cloud/runstore/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound        = domain.ErrNotFound
	ErrAlreadyExists   = domain.ErrAlreadyExists
	ErrInvalidArgument = domain.ErrInvalidArgument
	ErrUnimplemented   = domain.ErrUnimplemented
)
