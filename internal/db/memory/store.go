// Package memory is an in-process db.Store used for tests, the embedded SDK,
// and as the reference semantics for the other backends.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/kailas-cloud/runstore/internal/db"
	"github.com/kailas-cloud/runstore/internal/domain/run"
	"github.com/kailas-cloud/runstore/internal/domain/value"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// Store keeps records in maps guarded by a single RWMutex.
type Store struct {
	mu          sync.RWMutex
	projects    map[string]db.ProjectRecord
	experiments map[string]db.ExperimentRecord
	runs        map[string]db.RunRecord
	translator  Translator
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		projects:    make(map[string]db.ProjectRecord),
		experiments: make(map[string]db.ExperimentRecord),
		runs:        make(map[string]db.RunRecord),
	}
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }

// Close is a no-op.
func (s *Store) Close() {}

// WaitForReady returns immediately.
func (s *Store) WaitForReady(context.Context, time.Duration) error { return nil }

// InsertProject stores a new project.
func (s *Store) InsertProject(_ context.Context, rec *db.ProjectRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[rec.ID]; ok {
		return &db.Error{Op: db.OpInsertProject, Err: db.ErrKeyExists}
	}
	s.projects[rec.ID] = *rec
	return nil
}

// GetProject loads a project.
func (s *Store) GetProject(_ context.Context, id string) (*db.ProjectRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.projects[id]
	if !ok {
		return nil, db.Missing(db.OpGetProject, db.ResourceProject, id)
	}
	return &rec, nil
}

// InsertExperiment stores a new experiment.
func (s *Store) InsertExperiment(_ context.Context, rec *db.ExperimentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.experiments[rec.ID]; ok {
		return &db.Error{Op: db.OpInsertExperiment, Err: db.ErrKeyExists}
	}
	s.experiments[rec.ID] = *rec
	return nil
}

// GetExperiment loads an experiment.
func (s *Store) GetExperiment(_ context.Context, id string) (*db.ExperimentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.experiments[id]
	if !ok {
		return nil, db.Missing(db.OpGetExperiment, db.ResourceExperiment, id)
	}
	return &rec, nil
}

// InsertRun stores a new run.
func (s *Store) InsertRun(_ context.Context, rec *db.RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.runs[rec.ID]; ok {
		return &db.Error{Op: db.OpInsertRun, Err: db.ErrKeyExists}
	}
	s.runs[rec.ID] = cloneRun(rec)
	return nil
}

// GetRun loads a run.
func (s *Store) GetRun(_ context.Context, id string) (*db.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.runs[id]
	if !ok {
		return nil, db.Missing(db.OpGetRun, db.ResourceRun, id)
	}
	c := cloneRun(&rec)
	return &c, nil
}

// ReplaceRun overwrites an existing run.
func (s *Store) ReplaceRun(_ context.Context, rec *db.RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.runs[rec.ID]; !ok {
		return db.Missing(db.OpReplaceRun, db.ResourceRun, rec.ID)
	}
	s.runs[rec.ID] = cloneRun(rec)
	return nil
}

// DeleteRun removes a run.
func (s *Store) DeleteRun(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.runs[id]; !ok {
		return db.Missing(db.OpDeleteRun, db.ResourceRun, id)
	}
	delete(s.runs, id)
	return nil
}

// FindRuns checks the scope and filters runs under one read lock.
func (s *Store) FindRuns(ctx context.Context, q *db.RunQuery) ([]db.RunRecord, error) {
	matches, err := s.translator.Translate(q)
	if err != nil {
		return nil, &db.Error{Op: db.OpFindRuns, Err: err}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if q.ProjectID != "" {
		if _, ok := s.projects[q.ProjectID]; !ok {
			return nil, db.Missing(db.OpFindRuns, db.ResourceProject, q.ProjectID)
		}
	}
	if q.ExperimentID != "" {
		if _, ok := s.experiments[q.ExperimentID]; !ok {
			return nil, db.Missing(db.OpFindRuns, db.ResourceExperiment, q.ExperimentID)
		}
	}
	for _, id := range q.RunIDs {
		if _, ok := s.runs[id]; !ok {
			return nil, db.Missing(db.OpFindRuns, db.ResourceRun, id)
		}
	}

	out := make([]db.RunRecord, 0)
	for id := range s.runs {
		if err := ctx.Err(); err != nil {
			return nil, &db.Error{Op: db.OpFindRuns, Err: err}
		}
		rec := s.runs[id]
		r := toRun(&rec)
		ok, err := matches(&r)
		if err != nil {
			return nil, &db.Error{Op: db.OpFindRuns, Err: fmt.Errorf("run %q: %w", id, err)}
		}
		if ok {
			out = append(out, cloneRun(&rec))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func toRun(rec *db.RunRecord) run.Run {
	return run.Reconstruct(run.Params{
		ID: rec.ID, ProjectID: rec.ProjectID, ExperimentID: rec.ExperimentID,
		Name: rec.Name, Description: rec.Description, Owner: rec.Owner, CodeVersion: rec.CodeVersion,
		StartTime: rec.StartTime, EndTime: rec.EndTime,
		Attributes: rec.Attributes, Metrics: rec.Metrics, Hyperparameters: rec.Hyperparameters,
	}, rec.DateCreated, rec.DateUpdated)
}

func cloneRun(rec *db.RunRecord) db.RunRecord {
	c := *rec
	c.StartTime = cloneTime(rec.StartTime)
	c.EndTime = cloneTime(rec.EndTime)
	c.Attributes = cloneEntries(rec.Attributes)
	c.Metrics = cloneEntries(rec.Metrics)
	c.Hyperparameters = cloneEntries(rec.Hyperparameters)
	return c
}

func cloneTime(t *int64) *int64 {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneEntries(entries []value.KeyValue) []value.KeyValue {
	if entries == nil {
		return nil
	}
	c := make([]value.KeyValue, len(entries))
	copy(c, entries)
	return c
}
