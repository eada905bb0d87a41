package runstore

import (
	domexp "github.com/kailas-cloud/runstore/internal/domain/experiment"
	domproj "github.com/kailas-cloud/runstore/internal/domain/project"
	domquery "github.com/kailas-cloud/runstore/internal/domain/query"
	"github.com/kailas-cloud/runstore/internal/domain/query/result"
	domrun "github.com/kailas-cloud/runstore/internal/domain/run"
	"github.com/kailas-cloud/runstore/internal/domain/value"
)

// Value is a typed metadata value: number, string, bool, list or struct.
type Value = value.Value

// KeyValue is a single named container entry.
type KeyValue = value.KeyValue

// Number creates a number value.
func Number(f float64) Value { return value.Number(f) }

// String creates a string value.
func String(s string) Value { return value.String(s) }

// Bool creates a boolean value.
func Bool(b bool) Value { return value.Bool(b) }

// List creates a list value.
func List(items ...Value) Value { return value.List(items...) }

// Struct creates a nested structure value.
func Struct(fields map[string]Value) Value { return value.Struct(fields) }

// Operator is a predicate comparison operator.
type Operator = domquery.Operator

// Comparison operators.
const (
	EQ  = domquery.EQ
	NEQ = domquery.NEQ
	LT  = domquery.LT
	LTE = domquery.LTE
	GT  = domquery.GT
	GTE = domquery.GTE
)

// Container names a key/value collection of a run.
type Container = domrun.Container

// Run containers.
const (
	Attributes      = domrun.Attributes
	Metrics         = domrun.Metrics
	Hyperparameters = domrun.Hyperparameters
)

// ProjectParams describes a project to create. An empty ID is generated.
type ProjectParams struct {
	ID          string
	Name        string
	Description string
	Owner       string
}

// Project groups experiments.
type Project struct {
	ID          string
	Name        string
	Description string
	Owner       string
	DateCreated int64 // unix millis
	DateUpdated int64 // unix millis
}

// ExperimentParams describes an experiment to create. An empty ID is generated.
type ExperimentParams struct {
	ID          string
	ProjectID   string
	Name        string
	Description string
	Owner       string
}

// Experiment groups runs inside a project.
type Experiment struct {
	ID          string
	ProjectID   string
	Name        string
	Description string
	Owner       string
	DateCreated int64
	DateUpdated int64
}

// RunParams describes a run to create. An empty ID is generated.
type RunParams struct {
	ID              string
	ProjectID       string
	ExperimentID    string
	Name            string
	Description     string
	Owner           string
	CodeVersion     string
	StartTime       *int64
	EndTime         *int64
	Attributes      []KeyValue
	Metrics         []KeyValue
	Hyperparameters []KeyValue
}

// Run is a single experiment run.
type Run struct {
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
	Attributes      []KeyValue
	Metrics         []KeyValue
	Hyperparameters []KeyValue
}

// Scope narrows a query to a project, an experiment and/or explicit run ids.
type Scope struct {
	ProjectID    string
	ExperimentID string
	RunIDs       []string
}

// Result is the outcome of a query. Runs is empty for ids-only queries;
// IDs is always set. TotalRecords counts matches before pagination.
type Result struct {
	Runs         []Run
	IDs          []string
	TotalRecords int
}

func (p RunParams) toDomain() domrun.Params {
	return domrun.Params{
		ID:              p.ID,
		ProjectID:       p.ProjectID,
		ExperimentID:    p.ExperimentID,
		Name:            p.Name,
		Description:     p.Description,
		Owner:           p.Owner,
		CodeVersion:     p.CodeVersion,
		StartTime:       p.StartTime,
		EndTime:         p.EndTime,
		Attributes:      p.Attributes,
		Metrics:         p.Metrics,
		Hyperparameters: p.Hyperparameters,
	}
}

func fromProject(p domproj.Project) Project {
	return Project{
		ID: p.ID(), Name: p.Name(), Description: p.Description(), Owner: p.Owner(),
		DateCreated: p.DateCreated(), DateUpdated: p.DateUpdated(),
	}
}

func fromExperiment(e domexp.Experiment) Experiment {
	return Experiment{
		ID: e.ID(), ProjectID: e.ProjectID(), Name: e.Name(), Description: e.Description(), Owner: e.Owner(),
		DateCreated: e.DateCreated(), DateUpdated: e.DateUpdated(),
	}
}

func fromRun(r domrun.Run) Run {
	return Run{
		ID:              r.ID(),
		ProjectID:       r.ProjectID(),
		ExperimentID:    r.ExperimentID(),
		Name:            r.Name(),
		Description:     r.Description(),
		Owner:           r.Owner(),
		CodeVersion:     r.CodeVersion(),
		DateCreated:     r.DateCreated(),
		DateUpdated:     r.DateUpdated(),
		StartTime:       r.StartTime(),
		EndTime:         r.EndTime(),
		Attributes:      r.Attributes(),
		Metrics:         r.Metrics(),
		Hyperparameters: r.Hyperparameters(),
	}
}

func fromResult(res result.Result) Result {
	out := Result{TotalRecords: res.TotalRecords()}
	if res.IDsOnly() {
		out.IDs = res.IDs()
		return out
	}
	runs := res.Runs()
	out.Runs = make([]Run, len(runs))
	out.IDs = make([]string, len(runs))
	for i := range runs {
		out.Runs[i] = fromRun(runs[i])
		out.IDs[i] = runs[i].ID()
	}
	return out
}
