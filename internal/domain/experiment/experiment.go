package experiment

import (
	"fmt"

	"github.com/kailas-cloud/runstore/internal/domain"
)

// MaxNameLength bounds experiment names.
const MaxNameLength = 256

// Experiment groups runs inside a project (immutable value object).
type Experiment struct {
	id          string
	projectID   string
	name        string
	description string
	owner       string
	dateCreated int64
	dateUpdated int64
}

// New validates and creates an Experiment. now is unix millis.
// Project existence is checked by the service layer.
func New(id, projectID, name, description, owner string, now int64) (Experiment, error) {
	if err := domain.ValidateID("experiment", id); err != nil {
		return Experiment{}, err
	}
	if err := domain.ValidateID("project", projectID); err != nil {
		return Experiment{}, err
	}
	if name == "" {
		return Experiment{}, fmt.Errorf("experiment name is required")
	}
	if len(name) > MaxNameLength {
		return Experiment{}, fmt.Errorf("experiment name too long (max %d)", MaxNameLength)
	}
	return Experiment{
		id: id, projectID: projectID, name: name, description: description, owner: owner,
		dateCreated: now, dateUpdated: now,
	}, nil
}

// Reconstruct creates an Experiment without validation (storage hydration).
func Reconstruct(id, projectID, name, description, owner string, dateCreated, dateUpdated int64) Experiment {
	return Experiment{
		id: id, projectID: projectID, name: name, description: description, owner: owner,
		dateCreated: dateCreated, dateUpdated: dateUpdated,
	}
}

// ID returns the experiment identifier.
func (e *Experiment) ID() string { return e.id }

// ProjectID returns the owning project identifier.
func (e *Experiment) ProjectID() string { return e.projectID }

// Name returns the experiment name.
func (e *Experiment) Name() string { return e.name }

// Description returns the free-form description.
func (e *Experiment) Description() string { return e.description }

// Owner returns the owner.
func (e *Experiment) Owner() string { return e.owner }

// DateCreated returns the creation time in unix millis.
func (e *Experiment) DateCreated() int64 { return e.dateCreated }

// DateUpdated returns the last update time in unix millis.
func (e *Experiment) DateUpdated() int64 { return e.dateUpdated }
