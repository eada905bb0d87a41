package project

import (
	"fmt"

	"github.com/kailas-cloud/runstore/internal/domain"
)

// MaxNameLength bounds project and experiment names.
const MaxNameLength = 256

// Project is the top-level grouping of experiments (immutable value object).
type Project struct {
	id          string
	name        string
	description string
	owner       string
	dateCreated int64
	dateUpdated int64
}

// New validates and creates a Project. now is unix millis.
func New(id, name, description, owner string, now int64) (Project, error) {
	if err := domain.ValidateID("project", id); err != nil {
		return Project{}, err
	}
	if name == "" {
		return Project{}, fmt.Errorf("project name is required")
	}
	if len(name) > MaxNameLength {
		return Project{}, fmt.Errorf("project name too long (max %d)", MaxNameLength)
	}
	return Project{
		id: id, name: name, description: description, owner: owner,
		dateCreated: now, dateUpdated: now,
	}, nil
}

// Reconstruct creates a Project without validation (storage hydration).
func Reconstruct(id, name, description, owner string, dateCreated, dateUpdated int64) Project {
	return Project{
		id: id, name: name, description: description, owner: owner,
		dateCreated: dateCreated, dateUpdated: dateUpdated,
	}
}

// ID returns the project identifier.
func (p *Project) ID() string { return p.id }

// Name returns the project name.
func (p *Project) Name() string { return p.name }

// Description returns the free-form description.
func (p *Project) Description() string { return p.description }

// Owner returns the owner.
func (p *Project) Owner() string { return p.owner }

// DateCreated returns the creation time in unix millis.
func (p *Project) DateCreated() int64 { return p.dateCreated }

// DateUpdated returns the last update time in unix millis.
func (p *Project) DateUpdated() int64 { return p.dateUpdated }
