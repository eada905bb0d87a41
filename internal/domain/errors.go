package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing project, experiment, or run.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists signals a duplicate resource.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidArgument signals a malformed or incomplete request.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnimplemented signals a value shape or operator the comparator cannot handle.
	ErrUnimplemented = errors.New("unimplemented")
)

// NotFoundError wraps ErrNotFound with the kind and id of the missing resource.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Resource, e.ID, ErrNotFound.Error())
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFound creates a not found error for the given resource kind and id.
func NewNotFound(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// InvalidArgumentf formats an error wrapping ErrInvalidArgument.
func InvalidArgumentf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// Unimplementedf formats an error wrapping ErrUnimplemented.
func Unimplementedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnimplemented, fmt.Sprintf(format, args...))
}
