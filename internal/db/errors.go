package db

import (
	"errors"
	"fmt"
)

// Sentinel errors for database operations.
var (
	ErrKeyNotFound = errors.New("db: key not found")
	ErrKeyExists   = errors.New("db: key already exists")
)

// Op names the store operation for error context.
const (
	OpPing             = "ping"
	OpInsertProject    = "projects.insert"
	OpGetProject       = "projects.get"
	OpInsertExperiment = "experiments.insert"
	OpGetExperiment    = "experiments.get"
	OpInsertRun        = "runs.insert"
	OpGetRun           = "runs.get"
	OpReplaceRun       = "runs.replace"
	OpDeleteRun        = "runs.delete"
	OpFindRuns         = "runs.find"
	OpMigrate          = "migrate"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

// MissingError reports which record a lookup did not find. It matches ErrKeyNotFound.
type MissingError struct {
	Resource string
	ID       string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Resource, e.ID, ErrKeyNotFound.Error())
}

func (e *MissingError) Unwrap() error { return ErrKeyNotFound }

// Missing creates a MissingError wrapped with the operation.
func Missing(op, resource, id string) error {
	return &Error{Op: op, Err: &MissingError{Resource: resource, ID: id}}
}

// Resource kinds used in MissingError.
const (
	ResourceProject    = "project"
	ResourceExperiment = "experiment"
	ResourceRun        = "experiment run"
)
