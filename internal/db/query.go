package db

import "github.com/kailas-cloud/runstore/internal/domain/query/predicate"

// Driver names a storage backend.
type Driver string

// Supported drivers.
const (
	DriverMemory   Driver = "memory"
	DriverMongo    Driver = "mongo"
	DriverPostgres Driver = "postgres"
)

// IsValid checks if the driver is supported.
func (d Driver) IsValid() bool {
	return d == DriverMemory || d == DriverMongo || d == DriverPostgres
}

// RunQuery is the store-side filter of a find: scope plus AND-combined predicates.
// Empty scope fields do not constrain.
type RunQuery struct {
	ProjectID    string
	ExperimentID string
	RunIDs       []string
	Predicates   []predicate.Predicate
}

// QueryTranslator turns a RunQuery into a backend-native filter F.
// Every implementation selects exactly the runs match.MatchesAll accepts.
type QueryTranslator[F any] interface {
	Translate(q *RunQuery) (F, error)
}
