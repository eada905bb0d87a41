// Package match evaluates predicates against in-memory runs.
// Storage translators must select exactly the runs Matches accepts.
package match

import (
	"github.com/kailas-cloud/runstore/internal/domain/query"
	"github.com/kailas-cloud/runstore/internal/domain/query/compare"
	"github.com/kailas-cloud/runstore/internal/domain/query/fieldpath"
	"github.com/kailas-cloud/runstore/internal/domain/query/predicate"
	"github.com/kailas-cloud/runstore/internal/domain/run"
	"github.com/kailas-cloud/runstore/internal/domain/value"
)

// Lookup returns the value at p: the scalar, or the first container entry with the key.
func Lookup(r *run.Run, p fieldpath.Path) (value.Value, bool) {
	if !p.IsContainer() {
		return r.Scalar(p.Name())
	}
	for _, kv := range r.Entries(p.Container()) {
		if kv.Key == p.Key() {
			return kv.Value, true
		}
	}
	return value.Value{}, false
}

// Matches reports whether r satisfies pr.
//
// Container paths: any entry with the key and the operand's kind that compares
// true. Entries of another kind are skipped. For NEQ a missing key matches, and
// so does any entry that is not an equal value of the same kind.
// Direct paths: an unset nullable field only matches NEQ.
func Matches(r *run.Run, pr predicate.Predicate) (bool, error) {
	path := pr.Path()
	operand := pr.Value()

	if !path.IsContainer() {
		v, ok := r.Scalar(path.Name())
		if !ok {
			return pr.Operator() == query.NEQ, nil
		}
		return compare.Compare(pr.Operator(), v, operand)
	}

	found := false
	for _, kv := range r.Entries(path.Container()) {
		if kv.Key != path.Key() {
			continue
		}
		found = true
		if kv.Value.Kind() != operand.Kind() {
			if pr.Operator() == query.NEQ {
				return true, nil
			}
			continue
		}
		ok, err := compare.Compare(pr.Operator(), kv.Value, operand)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return !found && pr.Operator() == query.NEQ, nil
}

// MatchesAll reports whether r satisfies every predicate.
func MatchesAll(r *run.Run, prs []predicate.Predicate) (bool, error) {
	for _, pr := range prs {
		ok, err := Matches(r, pr)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
