package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/kailas-cloud/runstore/internal/domain"
	"github.com/kailas-cloud/runstore/internal/domain/query/request"
	"github.com/kailas-cloud/runstore/internal/domain/query/result"
	domrun "github.com/kailas-cloud/runstore/internal/domain/run"
	"github.com/kailas-cloud/runstore/internal/metrics"
)

// Operation names used in metrics and logs.
const (
	OpFind = "find"
	OpSort = "sort"
	OpTopK = "top"
)

// Service runs find, sort and top-K queries over experiment runs.
type Service struct {
	repo Repository
}

// New creates a query service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Find filters runs at the store, then optionally sorts, paginates and
// projects them. TotalRecords counts every match before pagination.
func (s *Service) Find(ctx context.Context, req *request.Find) (result.Result, error) {
	runs, err := s.repo.Find(ctx, req.Scope(), req.Predicates())
	if err != nil {
		return result.Result{}, observe(OpFind, 0, fmt.Errorf("find runs: %w", err))
	}
	if key := req.SortKey(); key != nil {
		if runs, err = SortRuns(runs, *key); err != nil {
			return result.Result{}, observe(OpFind, 0, err)
		}
	}
	total := len(runs)
	if req.Paginated() {
		runs = page(runs, req.PageNumber(), req.PageLimit())
	}
	return result.New(runs, req.IDsOnly(), total), observe(OpFind, len(runs), nil)
}

// Sort orders an explicit list of runs. Every id must exist.
func (s *Service) Sort(ctx context.Context, req *request.Sort) (result.Result, error) {
	runs, err := s.repo.Find(ctx, req.Scope(), nil)
	if err != nil {
		return result.Result{}, observe(OpSort, 0, fmt.Errorf("load runs: %w", err))
	}
	sorted, err := SortRuns(runs, req.SortKey())
	if err != nil {
		return result.Result{}, observe(OpSort, 0, err)
	}
	return result.New(sorted, req.IDsOnly(), len(sorted)), observe(OpSort, len(sorted), nil)
}

// TopK ranks the runs in scope and keeps the best k. TotalRecords counts the
// ranked candidates. The scope is resolved even when k <= 0, so a missing
// project, experiment or run is still NotFound; the result is then empty.
func (s *Service) TopK(ctx context.Context, req *request.TopK) (result.Result, error) {
	runs, err := s.repo.Find(ctx, req.Scope(), nil)
	if err != nil {
		return result.Result{}, observe(OpTopK, 0, fmt.Errorf("load runs: %w", err))
	}
	if req.K() <= 0 {
		return result.New([]domrun.Run{}, req.IDsOnly(), len(runs)), observe(OpTopK, 0, nil)
	}
	top, err := TopK(runs, req.SortKey(), req.K())
	if err != nil {
		return result.Result{}, observe(OpTopK, 0, err)
	}
	return result.New(top, req.IDsOnly(), len(runs)), observe(OpTopK, len(top), nil)
}

// page returns the 1-based page of size limit. Pages past the end are empty.
func page(runs []domrun.Run, number, limit int) []domrun.Run {
	if number < 1 || limit < 1 || len(runs) == 0 || number-1 > (len(runs)-1)/limit {
		return []domrun.Run{}
	}
	start := (number - 1) * limit
	return runs[start : start+min(limit, len(runs)-start)]
}

func observe(op string, n int, err error) error {
	if err != nil {
		metrics.QueryErrorsTotal.WithLabelValues(op, ErrorCode(err)).Inc()
		return err
	}
	metrics.QueryResults.WithLabelValues(op).Observe(float64(n))
	return nil
}

// ErrorCode classifies err for metrics and logs.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, domain.ErrUnimplemented):
		return "unimplemented"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	default:
		return "internal"
	}
}
