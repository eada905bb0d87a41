package query

import (
	"fmt"
	"sort"

	"github.com/kailas-cloud/runstore/internal/domain"
	domquery "github.com/kailas-cloud/runstore/internal/domain/query"
	"github.com/kailas-cloud/runstore/internal/domain/query/compare"
	"github.com/kailas-cloud/runstore/internal/domain/query/match"
	"github.com/kailas-cloud/runstore/internal/domain/query/request"
	domrun "github.com/kailas-cloud/runstore/internal/domain/run"
	"github.com/kailas-cloud/runstore/internal/domain/value"
)

type rankedRun struct {
	run     domrun.Run
	key     value.Value
	present bool
}

// SortRuns returns runs ordered by key. The key of a run is its scalar or the
// first container entry with the key. Runs without a key come last in both
// directions; ties and keyless runs are ordered by id ascending.
// Keys must all be numbers or all be strings, otherwise the sort is Unimplemented.
func SortRuns(runs []domrun.Run, key request.SortKey) ([]domrun.Run, error) {
	items := make([]rankedRun, len(runs))
	var kind value.Kind
	for i := range runs {
		v, ok := match.Lookup(&runs[i], key.Path())
		items[i] = rankedRun{run: runs[i], key: v, present: ok}
		if !ok {
			continue
		}
		if err := compare.Supports(domquery.LT, v.Kind()); err != nil {
			return nil, fmt.Errorf("sort by %s: run %q: %w", key.Path(), runs[i].ID(), err)
		}
		if kind == value.KindInvalid {
			kind = v.Kind()
		} else if kind != v.Kind() {
			return nil, domain.Unimplementedf("sort by %s: mixed %s and %s values", key.Path(), kind, v.Kind())
		}
	}

	var orderErr error
	sort.SliceStable(items, func(i, j int) bool {
		a, b := &items[i], &items[j]
		if a.present != b.present {
			return a.present
		}
		if a.present {
			c, err := compare.Order(a.key, b.key)
			if err != nil && orderErr == nil {
				orderErr = err
			}
			if c != 0 {
				if key.Ascending() {
					return c < 0
				}
				return c > 0
			}
		}
		return a.run.ID() < b.run.ID()
	})
	if orderErr != nil {
		return nil, fmt.Errorf("sort by %s: %w", key.Path(), orderErr)
	}

	out := make([]domrun.Run, len(items))
	for i := range items {
		out[i] = items[i].run
	}
	return out, nil
}

// TopK returns the first min(k, len(runs)) runs of SortRuns. k <= 0 selects nothing.
func TopK(runs []domrun.Run, key request.SortKey, k int) ([]domrun.Run, error) {
	sorted, err := SortRuns(runs, key)
	if err != nil {
		return nil, err
	}
	if k <= 0 {
		return []domrun.Run{}, nil
	}
	if k < len(sorted) {
		sorted = sorted[:k]
	}
	return sorted, nil
}
