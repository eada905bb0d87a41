package request

import (
	"github.com/kailas-cloud/runstore/internal/domain"
)

// Sort is a validated SortExperimentRuns request.
type Sort struct {
	scope   Scope
	sortKey SortKey
	idsOnly bool
}

// NewSort validates a sort request over an explicit run id list.
// Project and experiment fields of scope are ignored.
func NewSort(scope Scope, sortKey SortKey, idsOnly bool) (Sort, error) {
	if len(scope.RunIDs()) == 0 {
		return Sort{}, domain.InvalidArgumentf("experiment run ids are required")
	}
	if sortKey.path.String() == "" {
		return Sort{}, domain.InvalidArgumentf("sort key is required")
	}
	return Sort{scope: Scope{runIDs: scope.RunIDs()}, sortKey: sortKey, idsOnly: idsOnly}, nil
}

// RunIDs returns the runs to order.
func (s *Sort) RunIDs() []string { return s.scope.RunIDs() }

// Scope returns the run id scoping.
func (s *Sort) Scope() Scope { return s.scope }

// SortKey returns the ordering.
func (s *Sort) SortKey() SortKey { return s.sortKey }

// IDsOnly reports whether only identifiers are returned.
func (s *Sort) IDsOnly() bool { return s.idsOnly }

// TopK is a validated TopExperimentRunsSelector request.
type TopK struct {
	scope   Scope
	sortKey SortKey
	k       int
	idsOnly bool
}

// NewTopK validates a top-K request. k <= 0 is legal and selects nothing.
func NewTopK(scope Scope, sortKey SortKey, k int, idsOnly bool) (TopK, error) {
	if sortKey.path.String() == "" {
		return TopK{}, domain.InvalidArgumentf("sort key is required")
	}
	if scope.IsEmpty() {
		return TopK{}, domain.InvalidArgumentf("a scope (project, experiment or run ids) is required")
	}
	return TopK{scope: scope, sortKey: sortKey, k: k, idsOnly: idsOnly}, nil
}

// Scope returns the scoping.
func (t *TopK) Scope() Scope { return t.scope }

// SortKey returns the ranking order.
func (t *TopK) SortKey() SortKey { return t.sortKey }

// K returns the number of runs to keep.
func (t *TopK) K() int { return t.k }

// IDsOnly reports whether only identifiers are returned.
func (t *TopK) IDsOnly() bool { return t.idsOnly }
