// Package mongo implements db.Store on MongoDB.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/kailas-cloud/runstore/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// Config holds connection parameters for a MongoDB store.
type Config struct {
	URI      string
	Database string
}

// Store implements db.Store via the official MongoDB driver.
type Store struct {
	client      *mongo.Client
	database    *mongo.Database
	projects    *mongo.Collection
	experiments *mongo.Collection
	runs        *mongo.Collection
	translator  Translator
}

// NewStore connects to MongoDB. The driver connects lazily; use WaitForReady.
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("uri is required")
	}
	if cfg.Database == "" {
		return nil, fmt.Errorf("database is required")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	database := client.Database(cfg.Database)
	return &Store{
		client:      client,
		database:    database,
		projects:    database.Collection(collProjects),
		experiments: database.Collection(collExperiments),
		runs:        database.Collection(collRuns),
	}, nil
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return &db.Error{Op: db.OpPing, Err: err}
	}
	return nil
}

// Close disconnects the client.
func (s *Store) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = s.client.Disconnect(ctx)
}

// WaitForReady polls Ping until the store responds or timeout expires.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for database: %w", ctx.Err())
		case <-ticker.C:
			if err := s.Ping(ctx); err == nil {
				return nil
			}
		}
	}
}

// InsertProject stores a new project.
func (s *Store) InsertProject(ctx context.Context, rec *db.ProjectRecord) error {
	_, err := s.projects.InsertOne(ctx, toProjectDoc(rec))
	return insertError(db.OpInsertProject, err)
}

// GetProject loads a project.
func (s *Store) GetProject(ctx context.Context, id string) (*db.ProjectRecord, error) {
	var doc projectDoc
	err := s.projects.FindOne(ctx, byID(id)).Decode(&doc)
	if err != nil {
		return nil, lookupError(db.OpGetProject, db.ResourceProject, id, err)
	}
	return doc.record(), nil
}

// InsertExperiment stores a new experiment.
func (s *Store) InsertExperiment(ctx context.Context, rec *db.ExperimentRecord) error {
	_, err := s.experiments.InsertOne(ctx, toExperimentDoc(rec))
	return insertError(db.OpInsertExperiment, err)
}

// GetExperiment loads an experiment.
func (s *Store) GetExperiment(ctx context.Context, id string) (*db.ExperimentRecord, error) {
	var doc experimentDoc
	err := s.experiments.FindOne(ctx, byID(id)).Decode(&doc)
	if err != nil {
		return nil, lookupError(db.OpGetExperiment, db.ResourceExperiment, id, err)
	}
	return doc.record(), nil
}

// InsertRun stores a new run.
func (s *Store) InsertRun(ctx context.Context, rec *db.RunRecord) error {
	_, err := s.runs.InsertOne(ctx, toRunDoc(rec))
	return insertError(db.OpInsertRun, err)
}

// GetRun loads a run.
func (s *Store) GetRun(ctx context.Context, id string) (*db.RunRecord, error) {
	var doc runDoc
	err := s.runs.FindOne(ctx, byID(id)).Decode(&doc)
	if err != nil {
		return nil, lookupError(db.OpGetRun, db.ResourceRun, id, err)
	}
	rec, err := doc.record()
	if err != nil {
		return nil, &db.Error{Op: db.OpGetRun, Err: err}
	}
	return rec, nil
}

// ReplaceRun overwrites an existing run.
func (s *Store) ReplaceRun(ctx context.Context, rec *db.RunRecord) error {
	res, err := s.runs.ReplaceOne(ctx, byID(rec.ID), toRunDoc(rec))
	if err != nil {
		return &db.Error{Op: db.OpReplaceRun, Err: err}
	}
	if res.MatchedCount == 0 {
		return db.Missing(db.OpReplaceRun, db.ResourceRun, rec.ID)
	}
	return nil
}

// DeleteRun removes a run.
func (s *Store) DeleteRun(ctx context.Context, id string) error {
	res, err := s.runs.DeleteOne(ctx, byID(id))
	if err != nil {
		return &db.Error{Op: db.OpDeleteRun, Err: err}
	}
	if res.DeletedCount == 0 {
		return db.Missing(db.OpDeleteRun, db.ResourceRun, id)
	}
	return nil
}

func byID(id string) bson.D {
	return bson.D{{Key: "_id", Value: id}}
}

func insertError(op string, err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return &db.Error{Op: op, Err: db.ErrKeyExists}
	}
	return &db.Error{Op: op, Err: err}
}

func lookupError(op, resource, id string, err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return db.Missing(op, resource, id)
	}
	return &db.Error{Op: op, Err: err}
}
