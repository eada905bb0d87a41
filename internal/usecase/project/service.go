package project

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kailas-cloud/runstore/internal/domain"
	domproj "github.com/kailas-cloud/runstore/internal/domain/project"
)

// Service handles project operations.
type Service struct {
	repo Repository
	now  func() time.Time
}

// New creates a project service.
func New(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// CreateParams carries the client supplied project fields. An empty ID is generated.
type CreateParams struct {
	ID          string
	Name        string
	Description string
	Owner       string
}

// Create validates and stores a new project.
func (s *Service) Create(ctx context.Context, p CreateParams) (domproj.Project, error) {
	id := p.ID
	if id == "" {
		id = uuid.NewString()
	}
	proj, err := domproj.New(id, p.Name, p.Description, p.Owner, s.now().UnixMilli())
	if err != nil {
		return domproj.Project{}, fmt.Errorf("validate project: %w: %w", domain.ErrInvalidArgument, err)
	}
	if err := s.repo.Create(ctx, proj); err != nil {
		return domproj.Project{}, fmt.Errorf("create project: %w", err)
	}
	return proj, nil
}

// Get retrieves a project by id.
func (s *Service) Get(ctx context.Context, id string) (domproj.Project, error) {
	proj, err := s.repo.Get(ctx, id)
	if err != nil {
		return domproj.Project{}, fmt.Errorf("get project: %w", err)
	}
	return proj, nil
}
