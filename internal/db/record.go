package db

import "github.com/kailas-cloud/runstore/internal/domain/value"

// ProjectRecord is the storage shape of a project.
type ProjectRecord struct {
	ID          string
	Name        string
	Description string
	Owner       string
	DateCreated int64
	DateUpdated int64
}

// ExperimentRecord is the storage shape of an experiment.
type ExperimentRecord struct {
	ID          string
	ProjectID   string
	Name        string
	Description string
	Owner       string
	DateCreated int64
	DateUpdated int64
}

// RunRecord is the storage shape of an experiment run.
// Times are unix millis; StartTime and EndTime are nil when unset.
type RunRecord struct {
	ID              string
	ProjectID       string
	ExperimentID    string
	Name            string
	Description     string
	Owner           string
	CodeVersion     string
	DateCreated     int64
	DateUpdated     int64
	StartTime       *int64
	EndTime         *int64
	Attributes      []value.KeyValue
	Metrics         []value.KeyValue
	Hyperparameters []value.KeyValue
}
