// Package result holds assembled query responses.
package result

import "github.com/kailas-cloud/runstore/internal/domain/run"

// Result is the projected outcome of a find, sort or top-K request.
type Result struct {
	runs         []run.Run
	ids          []string
	idsOnly      bool
	totalRecords int
}

// New projects runs. With idsOnly the runs are reduced to their identifiers.
// totalRecords is the match count before pagination.
func New(runs []run.Run, idsOnly bool, totalRecords int) Result {
	if !idsOnly {
		return Result{runs: runs, totalRecords: totalRecords}
	}
	ids := make([]string, len(runs))
	for i := range runs {
		ids[i] = runs[i].ID()
	}
	return Result{ids: ids, idsOnly: true, totalRecords: totalRecords}
}

// Runs returns full records (nil for ids-only results).
func (r *Result) Runs() []run.Run { return r.runs }

// IDs returns identifiers (nil unless ids-only).
func (r *Result) IDs() []string { return r.ids }

// IDsOnly reports the projection.
func (r *Result) IDsOnly() bool { return r.idsOnly }

// Len returns the number of returned items.
func (r *Result) Len() int {
	if r.idsOnly {
		return len(r.ids)
	}
	return len(r.runs)
}

// TotalRecords returns the number of matches before pagination.
func (r *Result) TotalRecords() int { return r.totalRecords }
