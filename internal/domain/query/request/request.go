// Package request holds validated experiment run query requests.
package request

import (
	"math"

	"github.com/kailas-cloud/runstore/internal/domain"
	"github.com/kailas-cloud/runstore/internal/domain/query/fieldpath"
	"github.com/kailas-cloud/runstore/internal/domain/query/predicate"
	"github.com/kailas-cloud/runstore/internal/domain/run"
)

// Request size defaults.
const (
	DefaultMaxRunIDs    = 1000
	DefaultPageLimit    = 100
	DefaultMaxPageLimit = 1000
)

// Limits bounds request sizes. Zero fields fall back to defaults.
type Limits struct {
	MaxPredicates int
	MaxRunIDs     int
	MaxPageLimit  int
}

// DefaultLimits returns the built-in limits.
func DefaultLimits() Limits {
	return Limits{
		MaxPredicates: predicate.DefaultMaxPredicates,
		MaxRunIDs:     DefaultMaxRunIDs,
		MaxPageLimit:  DefaultMaxPageLimit,
	}
}

func (l Limits) withDefaults() Limits {
	d := DefaultLimits()
	if l.MaxPredicates <= 0 {
		l.MaxPredicates = d.MaxPredicates
	}
	if l.MaxRunIDs <= 0 {
		l.MaxRunIDs = d.MaxRunIDs
	}
	if l.MaxPageLimit <= 0 {
		l.MaxPageLimit = d.MaxPageLimit
	}
	return l
}

// Scope narrows a query to a project, an experiment and/or explicit run ids (AND).
type Scope struct {
	projectID    string
	experimentID string
	runIDs       []string
}

// NewScope validates scope identifiers. Duplicate run ids are collapsed, order kept.
func NewScope(projectID, experimentID string, runIDs []string, limits Limits) (Scope, error) {
	limits = limits.withDefaults()
	if projectID != "" {
		if err := domain.ValidateID("project", projectID); err != nil {
			return Scope{}, domain.InvalidArgumentf("%v", err)
		}
	}
	if experimentID != "" {
		if err := domain.ValidateID("experiment", experimentID); err != nil {
			return Scope{}, domain.InvalidArgumentf("%v", err)
		}
	}
	if len(runIDs) > limits.MaxRunIDs {
		return Scope{}, domain.InvalidArgumentf("too many experiment run ids (max %d)", limits.MaxRunIDs)
	}

	var ids []string
	seen := make(map[string]bool, len(runIDs))
	for _, id := range runIDs {
		if err := domain.ValidateID("run", id); err != nil {
			return Scope{}, domain.InvalidArgumentf("%v", err)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return Scope{projectID: projectID, experimentID: experimentID, runIDs: ids}, nil
}

// ProjectID returns the project filter ("" when unset).
func (s Scope) ProjectID() string { return s.projectID }

// ExperimentID returns the experiment filter ("" when unset).
func (s Scope) ExperimentID() string { return s.experimentID }

// RunIDs returns the explicit run id allow-list.
func (s Scope) RunIDs() []string { return s.runIDs }

// IsEmpty reports whether no scoping was given.
func (s Scope) IsEmpty() bool {
	return s.projectID == "" && s.experimentID == "" && len(s.runIDs) == 0
}

// SortKey is a resolved sort field and direction.
type SortKey struct {
	path      fieldpath.Path
	ascending bool
}

// NewSortKey resolves a sort field. Direct fields must exist on runs.
func NewSortKey(raw string, ascending bool) (SortKey, error) {
	if raw == "" {
		return SortKey{}, domain.InvalidArgumentf("sort key is required")
	}
	path, err := fieldpath.Resolve(raw)
	if err != nil {
		return SortKey{}, err
	}
	if !path.IsContainer() {
		if _, ok := run.LookupScalar(path.Name()); !ok {
			return SortKey{}, domain.InvalidArgumentf("unknown run field %q", path.Name())
		}
	}
	return SortKey{path: path, ascending: ascending}, nil
}

// Path returns the sort field.
func (k SortKey) Path() fieldpath.Path { return k.path }

// Ascending reports the sort direction.
func (k SortKey) Ascending() bool { return k.ascending }

// Find is a validated FindExperimentRuns request.
type Find struct {
	scope      Scope
	predicates []predicate.Predicate
	sortKey    *SortKey
	pageNumber int
	pageLimit  int
	idsOnly    bool
}

// NewFind validates a find request.
// At least one scope field or predicate is required. pageNumber is 1-based;
// 0/0 disables pagination, a limit without a page number selects page 1.
func NewFind(
	scope Scope,
	predicates []predicate.Predicate,
	sortKey *SortKey,
	pageNumber, pageLimit int,
	idsOnly bool,
	limits Limits,
) (Find, error) {
	limits = limits.withDefaults()
	if scope.IsEmpty() && len(predicates) == 0 {
		return Find{}, domain.InvalidArgumentf("a scope (project, experiment or run ids) or at least one predicate is required")
	}
	if len(predicates) > limits.MaxPredicates {
		return Find{}, domain.InvalidArgumentf("too many predicates (max %d)", limits.MaxPredicates)
	}
	if pageNumber < 0 || pageLimit < 0 {
		return Find{}, domain.InvalidArgumentf("page number and page limit must not be negative")
	}
	if pageNumber > 0 && pageLimit == 0 {
		pageLimit = DefaultPageLimit
	}
	if pageLimit > limits.MaxPageLimit {
		pageLimit = limits.MaxPageLimit
	}
	if pageLimit > 0 && pageNumber == 0 {
		pageNumber = 1
	}
	if pageLimit > 0 && pageNumber > math.MaxInt/pageLimit {
		return Find{}, domain.InvalidArgumentf("page number %d out of range for page limit %d", pageNumber, pageLimit)
	}

	preds := make([]predicate.Predicate, len(predicates))
	copy(preds, predicates)
	return Find{
		scope:      scope,
		predicates: preds,
		sortKey:    sortKey,
		pageNumber: pageNumber,
		pageLimit:  pageLimit,
		idsOnly:    idsOnly,
	}, nil
}

// Scope returns the scoping.
func (f *Find) Scope() Scope { return f.scope }

// Predicates returns the AND-combined predicates.
func (f *Find) Predicates() []predicate.Predicate { return f.predicates }

// SortKey returns the optional ordering (nil means id ascending).
func (f *Find) SortKey() *SortKey { return f.sortKey }

// Paginated reports whether a page window applies.
func (f *Find) Paginated() bool { return f.pageLimit > 0 }

// PageNumber returns the 1-based page number.
func (f *Find) PageNumber() int { return f.pageNumber }

// PageLimit returns the page size.
func (f *Find) PageLimit() int { return f.pageLimit }

// IDsOnly reports whether only identifiers are returned.
func (f *Find) IDsOnly() bool { return f.idsOnly }
