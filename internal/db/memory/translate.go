package memory

import (
	"github.com/kailas-cloud/runstore/internal/db"
	"github.com/kailas-cloud/runstore/internal/domain/query/match"
	"github.com/kailas-cloud/runstore/internal/domain/run"
)

// Matcher reports whether a stored run satisfies a translated query.
type Matcher func(r *run.Run) (bool, error)

// Compile-time check: Translator implements db.QueryTranslator.
var _ db.QueryTranslator[Matcher] = Translator{}

// Translator turns a RunQuery into an in-process Matcher.
type Translator struct{}

// Translate builds the matcher. Scope fields combine with AND.
func (Translator) Translate(q *db.RunQuery) (Matcher, error) {
	var allowed map[string]bool
	if len(q.RunIDs) > 0 {
		allowed = make(map[string]bool, len(q.RunIDs))
		for _, id := range q.RunIDs {
			allowed[id] = true
		}
	}
	projectID, experimentID := q.ProjectID, q.ExperimentID
	preds := q.Predicates

	return func(r *run.Run) (bool, error) {
		if projectID != "" && r.ProjectID() != projectID {
			return false, nil
		}
		if experimentID != "" && r.ExperimentID() != experimentID {
			return false, nil
		}
		if allowed != nil && !allowed[r.ID()] {
			return false, nil
		}
		return match.MatchesAll(r, preds)
	}, nil
}
