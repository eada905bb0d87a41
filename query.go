package runstore

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/runstore/internal/domain/query/predicate"
	"github.com/kailas-cloud/runstore/internal/domain/query/request"
)

// FindBuilder is a fluent builder for run queries.
type FindBuilder struct {
	c     *Client
	scope Scope
	conds []condition

	sortKey   string
	ascending bool

	pageNumber int
	pageLimit  int
	idsOnly    bool
}

type condition struct {
	key string
	op  Operator
	val Value
}

// Find starts a run query. At least one scope or condition is required.
func (c *Client) Find() *FindBuilder {
	return &FindBuilder{c: c}
}

// Project restricts the query to a project.
func (b *FindBuilder) Project(id string) *FindBuilder {
	b.scope.ProjectID = id
	return b
}

// Experiment restricts the query to an experiment.
func (b *FindBuilder) Experiment(id string) *FindBuilder {
	b.scope.ExperimentID = id
	return b
}

// Runs restricts the query to the given run ids.
func (b *FindBuilder) Runs(ids ...string) *FindBuilder {
	b.scope.RunIDs = append(b.scope.RunIDs, ids...)
	return b
}

// Where adds a condition. key is a run field ("endTime") or a
// container lookup ("metrics.loss"). Conditions are ANDed.
func (b *FindBuilder) Where(key string, op Operator, v Value) *FindBuilder {
	b.conds = append(b.conds, condition{key: key, op: op, val: v})
	return b
}

// SortBy orders the matches by a field path.
func (b *FindBuilder) SortBy(key string, ascending bool) *FindBuilder {
	b.sortKey = key
	b.ascending = ascending
	return b
}

// Page selects a 1-based page of limit matches.
func (b *FindBuilder) Page(number, limit int) *FindBuilder {
	b.pageNumber = number
	b.pageLimit = limit
	return b
}

// IDsOnly returns run ids without the full records.
func (b *FindBuilder) IDsOnly() *FindBuilder {
	b.idsOnly = true
	return b
}

// Do executes the query.
func (b *FindBuilder) Do(ctx context.Context) (Result, error) {
	scope, err := b.c.scope(b.scope)
	if err != nil {
		return Result{}, err
	}
	preds := make([]predicate.Predicate, 0, len(b.conds))
	for _, c := range b.conds {
		p, err := predicate.New(c.key, c.op, c.val)
		if err != nil {
			return Result{}, fmt.Errorf("find runs: %w", err)
		}
		preds = append(preds, p)
	}
	var sortKey *request.SortKey
	if b.sortKey != "" {
		k, err := request.NewSortKey(b.sortKey, b.ascending)
		if err != nil {
			return Result{}, fmt.Errorf("find runs: %w", err)
		}
		sortKey = &k
	}
	req, err := request.NewFind(scope, preds, sortKey, b.pageNumber, b.pageLimit, b.idsOnly, b.c.limits)
	if err != nil {
		return Result{}, fmt.Errorf("find runs: %w", err)
	}
	res, err := b.c.queries.Find(ctx, &req)
	if err != nil {
		return Result{}, fmt.Errorf("find runs: %w", err)
	}
	return fromResult(res), nil
}

// Sort returns the given runs ordered by a field path. Runs without the
// field come last; ties are broken by id.
func (c *Client) Sort(ctx context.Context, runIDs []string, key string, ascending bool) (Result, error) {
	scope, err := c.scope(Scope{RunIDs: runIDs})
	if err != nil {
		return Result{}, err
	}
	sortKey, err := request.NewSortKey(key, ascending)
	if err != nil {
		return Result{}, fmt.Errorf("sort runs: %w", err)
	}
	req, err := request.NewSort(scope, sortKey, false)
	if err != nil {
		return Result{}, fmt.Errorf("sort runs: %w", err)
	}
	res, err := c.queries.Sort(ctx, &req)
	if err != nil {
		return Result{}, fmt.Errorf("sort runs: %w", err)
	}
	return fromResult(res), nil
}

// Top returns the first k runs in scope ordered by a field path.
// k <= 0 returns no runs.
func (c *Client) Top(ctx context.Context, scope Scope, key string, ascending bool, k int) (Result, error) {
	s, err := c.scope(scope)
	if err != nil {
		return Result{}, err
	}
	sortKey, err := request.NewSortKey(key, ascending)
	if err != nil {
		return Result{}, fmt.Errorf("top runs: %w", err)
	}
	req, err := request.NewTopK(s, sortKey, k, false)
	if err != nil {
		return Result{}, fmt.Errorf("top runs: %w", err)
	}
	res, err := c.queries.TopK(ctx, &req)
	if err != nil {
		return Result{}, fmt.Errorf("top runs: %w", err)
	}
	return fromResult(res), nil
}

func (c *Client) scope(s Scope) (request.Scope, error) {
	scope, err := request.NewScope(s.ProjectID, s.ExperimentID, s.RunIDs, c.limits)
	if err != nil {
		return request.Scope{}, fmt.Errorf("scope: %w", err)
	}
	return scope, nil
}
