package run

import (
	"fmt"

	"github.com/kailas-cloud/runstore/internal/domain"
	"github.com/kailas-cloud/runstore/internal/domain/value"
)

// MaxEntriesPerContainer bounds the key/value entries of a single container.
const MaxEntriesPerContainer = 1024

// Params carries the client supplied fields of a run.
type Params struct {
	ID              string
	ProjectID       string
	ExperimentID    string
	Name            string
	Description     string
	Owner           string
	CodeVersion     string
	StartTime       *int64
	EndTime         *int64
	Attributes      []value.KeyValue
	Metrics         []value.KeyValue
	Hyperparameters []value.KeyValue
}

// Run is the experiment run aggregate (immutable value object).
// Containers keep insertion order and may hold duplicate keys.
type Run struct {
	id              string
	projectID       string
	experimentID    string
	name            string
	description     string
	owner           string
	codeVersion     string
	dateCreated     int64
	dateUpdated     int64
	startTime       *int64
	endTime         *int64
	attributes      []value.KeyValue
	metrics         []value.KeyValue
	hyperparameters []value.KeyValue
}

// New validates and creates a Run. now is unix millis.
// Experiment ownership is checked by the service layer.
func New(p Params, now int64) (Run, error) {
	if err := domain.ValidateID("run", p.ID); err != nil {
		return Run{}, err
	}
	if err := domain.ValidateID("project", p.ProjectID); err != nil {
		return Run{}, err
	}
	if err := domain.ValidateID("experiment", p.ExperimentID); err != nil {
		return Run{}, err
	}
	if p.StartTime != nil && p.EndTime != nil && *p.EndTime < *p.StartTime {
		return Run{}, fmt.Errorf("end time precedes start time")
	}
	for _, c := range []struct {
		name    Container
		entries []value.KeyValue
	}{
		{Attributes, p.Attributes},
		{Metrics, p.Metrics},
		{Hyperparameters, p.Hyperparameters},
	} {
		if err := validateEntries(c.name, c.entries); err != nil {
			return Run{}, err
		}
	}

	r := Reconstruct(p, now, now)
	r.attributes = cloneEntries(p.Attributes)
	r.metrics = cloneEntries(p.Metrics)
	r.hyperparameters = cloneEntries(p.Hyperparameters)
	return r, nil
}

// Reconstruct creates a Run without validation (storage hydration).
func Reconstruct(p Params, dateCreated, dateUpdated int64) Run {
	return Run{
		id: p.ID, projectID: p.ProjectID, experimentID: p.ExperimentID,
		name: p.Name, description: p.Description, owner: p.Owner, codeVersion: p.CodeVersion,
		dateCreated: dateCreated, dateUpdated: dateUpdated,
		startTime: p.StartTime, endTime: p.EndTime,
		attributes: p.Attributes, metrics: p.Metrics, hyperparameters: p.Hyperparameters,
	}
}

func validateEntries(c Container, entries []value.KeyValue) error {
	if len(entries) > MaxEntriesPerContainer {
		return fmt.Errorf("too many %s entries (max %d)", c, MaxEntriesPerContainer)
	}
	for i, kv := range entries {
		if err := kv.Validate(); err != nil {
			return fmt.Errorf("%s[%d]: %w", c, i, err)
		}
	}
	return nil
}

// ID returns the run identifier.
func (r *Run) ID() string { return r.id }

// ProjectID returns the owning project identifier.
func (r *Run) ProjectID() string { return r.projectID }

// ExperimentID returns the owning experiment identifier.
func (r *Run) ExperimentID() string { return r.experimentID }

// Name returns the run name.
func (r *Run) Name() string { return r.name }

// Description returns the free-form description.
func (r *Run) Description() string { return r.description }

// Owner returns the owner.
func (r *Run) Owner() string { return r.owner }

// CodeVersion returns the code version label.
func (r *Run) CodeVersion() string { return r.codeVersion }

// DateCreated returns the creation time in unix millis.
func (r *Run) DateCreated() int64 { return r.dateCreated }

// DateUpdated returns the last update time in unix millis.
func (r *Run) DateUpdated() int64 { return r.dateUpdated }

// StartTime returns the start time in unix millis, nil when unset.
func (r *Run) StartTime() *int64 { return r.startTime }

// EndTime returns the end time in unix millis, nil when unset.
func (r *Run) EndTime() *int64 { return r.endTime }

// Attributes returns the attribute entries.
func (r *Run) Attributes() []value.KeyValue { return r.attributes }

// Metrics returns the metric entries.
func (r *Run) Metrics() []value.KeyValue { return r.metrics }

// Hyperparameters returns the hyperparameter entries.
func (r *Run) Hyperparameters() []value.KeyValue { return r.hyperparameters }

// Entries returns the entries of the given container.
func (r *Run) Entries(c Container) []value.KeyValue {
	switch c {
	case Attributes:
		return r.attributes
	case Metrics:
		return r.metrics
	case Hyperparameters:
		return r.hyperparameters
	default:
		return nil
	}
}

// Scalar returns a direct field as a typed value.
// ok is false for unknown names and unset nullable fields.
func (r *Run) Scalar(name string) (v value.Value, ok bool) {
	switch name {
	case FieldID:
		return value.String(r.id), true
	case FieldProjectID:
		return value.String(r.projectID), true
	case FieldExperimentID:
		return value.String(r.experimentID), true
	case FieldName:
		return value.String(r.name), true
	case FieldDescription:
		return value.String(r.description), true
	case FieldOwner:
		return value.String(r.owner), true
	case FieldCodeVersion:
		return value.String(r.codeVersion), true
	case FieldDateCreated:
		return value.Number(float64(r.dateCreated)), true
	case FieldDateUpdated:
		return value.Number(float64(r.dateUpdated)), true
	case FieldStartTime:
		return optionalTime(r.startTime)
	case FieldEndTime:
		return optionalTime(r.endTime)
	default:
		return value.Value{}, false
	}
}

func optionalTime(t *int64) (value.Value, bool) {
	if t == nil {
		return value.Value{}, false
	}
	return value.Number(float64(*t)), true
}

// Params returns the client supplied fields of r.
func (r *Run) Params() Params {
	return Params{
		ID: r.id, ProjectID: r.projectID, ExperimentID: r.experimentID,
		Name: r.name, Description: r.description, Owner: r.owner, CodeVersion: r.codeVersion,
		StartTime: r.startTime, EndTime: r.endTime,
		Attributes: r.attributes, Metrics: r.metrics, Hyperparameters: r.hyperparameters,
	}
}

// WithAppended returns a copy with entries appended to container c.
func (r *Run) WithAppended(c Container, entries []value.KeyValue, now int64) (Run, error) {
	if !c.IsValid() {
		return Run{}, fmt.Errorf("unknown container %q", c)
	}
	if len(entries) == 0 {
		return Run{}, fmt.Errorf("at least one entry is required")
	}
	merged := make([]value.KeyValue, 0, len(r.Entries(c))+len(entries))
	merged = append(merged, r.Entries(c)...)
	merged = append(merged, entries...)
	if err := validateEntries(c, merged); err != nil {
		return Run{}, err
	}

	p := r.Params()
	switch c {
	case Attributes:
		p.Attributes = merged
	case Metrics:
		p.Metrics = merged
	case Hyperparameters:
		p.Hyperparameters = merged
	}
	return Reconstruct(p, r.dateCreated, now), nil
}

// WithEndTime returns a copy with the end time set.
func (r *Run) WithEndTime(endTime, now int64) (Run, error) {
	if r.startTime != nil && endTime < *r.startTime {
		return Run{}, fmt.Errorf("end time precedes start time")
	}
	p := r.Params()
	p.EndTime = &endTime
	return Reconstruct(p, r.dateCreated, now), nil
}

func cloneEntries(entries []value.KeyValue) []value.KeyValue {
	if entries == nil {
		return nil
	}
	c := make([]value.KeyValue, len(entries))
	copy(c, entries)
	return c
}
