// Package repository holds the store-backed repositories and the error
// translation they share.
package repository

import (
	"errors"
	"fmt"

	"github.com/kailas-cloud/runstore/internal/db"
	"github.com/kailas-cloud/runstore/internal/domain"
)

// MapError translates store sentinels into domain errors, keeping the action as context.
func MapError(action string, err error) error {
	if err == nil {
		return nil
	}
	var missing *db.MissingError
	switch {
	case errors.As(err, &missing):
		return fmt.Errorf("%s: %w", action, domain.NewNotFound(missing.Resource, missing.ID))
	case errors.Is(err, db.ErrKeyNotFound):
		return fmt.Errorf("%s: %w", action, domain.ErrNotFound)
	case errors.Is(err, db.ErrKeyExists):
		return fmt.Errorf("%s: %w", action, domain.ErrAlreadyExists)
	default:
		return fmt.Errorf("%s: %w", action, err)
	}
}
