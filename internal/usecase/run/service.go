package run

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kailas-cloud/runstore/internal/domain"
	domrun "github.com/kailas-cloud/runstore/internal/domain/run"
	"github.com/kailas-cloud/runstore/internal/domain/value"
)

// Service handles experiment run record management.
type Service struct {
	repo        Repository
	experiments ExperimentReader
	now         func() time.Time
}

// New creates a run service.
func New(repo Repository, experiments ExperimentReader) *Service {
	return &Service{repo: repo, experiments: experiments, now: time.Now}
}

// Create validates the run, checks that its experiment exists in the given
// project and stores it. An empty ID is generated.
func (s *Service) Create(ctx context.Context, p domrun.Params) (domrun.Run, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	r, err := domrun.New(p, s.now().UnixMilli())
	if err != nil {
		return domrun.Run{}, fmt.Errorf("validate run: %w: %w", domain.ErrInvalidArgument, err)
	}

	exp, err := s.experiments.Get(ctx, p.ExperimentID)
	if err != nil {
		return domrun.Run{}, fmt.Errorf("get experiment: %w", err)
	}
	if exp.ProjectID() != p.ProjectID {
		return domrun.Run{}, domain.InvalidArgumentf("experiment %q belongs to project %q, not %q",
			exp.ID(), exp.ProjectID(), p.ProjectID)
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return domrun.Run{}, fmt.Errorf("create run: %w", err)
	}
	return r, nil
}

// Get retrieves a run by id.
func (s *Service) Get(ctx context.Context, id string) (domrun.Run, error) {
	r, err := s.repo.Get(ctx, id)
	if err != nil {
		return domrun.Run{}, fmt.Errorf("get run: %w", err)
	}
	return r, nil
}

// Delete removes a run.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	return nil
}

// Append adds entries to one container of a run, after the existing ones.
func (s *Service) Append(
	ctx context.Context, id string, container string, entries []value.KeyValue,
) (domrun.Run, error) {
	c, err := domrun.ParseContainer(container)
	if err != nil {
		return domrun.Run{}, fmt.Errorf("%w: %w", domain.ErrInvalidArgument, err)
	}
	cur, err := s.repo.Get(ctx, id)
	if err != nil {
		return domrun.Run{}, fmt.Errorf("get run: %w", err)
	}
	next, err := cur.WithAppended(c, entries, s.now().UnixMilli())
	if err != nil {
		return domrun.Run{}, fmt.Errorf("append %s: %w: %w", c, domain.ErrInvalidArgument, err)
	}
	if err := s.repo.Update(ctx, next); err != nil {
		return domrun.Run{}, fmt.Errorf("update run: %w", err)
	}
	return next, nil
}

// SetEndTime records when a run finished. endTime is unix millis.
func (s *Service) SetEndTime(ctx context.Context, id string, endTime int64) (domrun.Run, error) {
	cur, err := s.repo.Get(ctx, id)
	if err != nil {
		return domrun.Run{}, fmt.Errorf("get run: %w", err)
	}
	next, err := cur.WithEndTime(endTime, s.now().UnixMilli())
	if err != nil {
		return domrun.Run{}, fmt.Errorf("set end time: %w: %w", domain.ErrInvalidArgument, err)
	}
	if err := s.repo.Update(ctx, next); err != nil {
		return domrun.Run{}, fmt.Errorf("update run: %w", err)
	}
	return next, nil
}
