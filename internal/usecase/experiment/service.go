package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kailas-cloud/runstore/internal/domain"
	domexp "github.com/kailas-cloud/runstore/internal/domain/experiment"
)

// Service handles experiment operations.
type Service struct {
	repo     Repository
	projects ProjectReader
	now      func() time.Time
}

// New creates an experiment service.
func New(repo Repository, projects ProjectReader) *Service {
	return &Service{repo: repo, projects: projects, now: time.Now}
}

// CreateParams carries the client supplied experiment fields. An empty ID is generated.
type CreateParams struct {
	ID          string
	ProjectID   string
	Name        string
	Description string
	Owner       string
}

// Create validates the experiment, checks its project exists and stores it.
func (s *Service) Create(ctx context.Context, p CreateParams) (domexp.Experiment, error) {
	id := p.ID
	if id == "" {
		id = uuid.NewString()
	}
	exp, err := domexp.New(id, p.ProjectID, p.Name, p.Description, p.Owner, s.now().UnixMilli())
	if err != nil {
		return domexp.Experiment{}, fmt.Errorf("validate experiment: %w: %w", domain.ErrInvalidArgument, err)
	}
	if _, err := s.projects.Get(ctx, p.ProjectID); err != nil {
		return domexp.Experiment{}, fmt.Errorf("get project: %w", err)
	}
	if err := s.repo.Create(ctx, exp); err != nil {
		return domexp.Experiment{}, fmt.Errorf("create experiment: %w", err)
	}
	return exp, nil
}

// Get retrieves an experiment by id.
func (s *Service) Get(ctx context.Context, id string) (domexp.Experiment, error) {
	exp, err := s.repo.Get(ctx, id)
	if err != nil {
		return domexp.Experiment{}, fmt.Errorf("get experiment: %w", err)
	}
	return exp, nil
}
