package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kailas-cloud/runstore/internal/db"
)

// FindRuns checks the scope and runs the translated filter in one session.
// Results are ordered by _id, which compares strings byte-wise.
func (s *Store) FindRuns(ctx context.Context, q *db.RunQuery) ([]db.RunRecord, error) {
	filter, err := s.translator.Translate(q)
	if err != nil {
		return nil, &db.Error{Op: db.OpFindRuns, Err: err}
	}

	var docs []runDoc
	err = s.client.UseSession(ctx, func(sc mongo.SessionContext) error {
		if err := s.checkScope(sc, q); err != nil {
			return err
		}
		cur, err := s.runs.Find(sc, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
		if err != nil {
			return &db.Error{Op: db.OpFindRuns, Err: err}
		}
		if err := cur.All(sc, &docs); err != nil {
			return &db.Error{Op: db.OpFindRuns, Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]db.RunRecord, 0, len(docs))
	for i := range docs {
		rec, err := docs[i].record()
		if err != nil {
			return nil, &db.Error{Op: db.OpFindRuns, Err: err}
		}
		out = append(out, *rec)
	}
	return out, nil
}

func (s *Store) checkScope(ctx context.Context, q *db.RunQuery) error {
	if q.ProjectID != "" {
		if err := s.exists(ctx, s.projects, db.ResourceProject, q.ProjectID); err != nil {
			return err
		}
	}
	if q.ExperimentID != "" {
		if err := s.exists(ctx, s.experiments, db.ResourceExperiment, q.ExperimentID); err != nil {
			return err
		}
	}
	if len(q.RunIDs) == 0 {
		return nil
	}

	cur, err := s.runs.Find(ctx,
		bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: q.RunIDs}}}},
		options.Find().SetProjection(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		return &db.Error{Op: db.OpFindRuns, Err: err}
	}
	var found []struct {
		ID string `bson:"_id"`
	}
	if err := cur.All(ctx, &found); err != nil {
		return &db.Error{Op: db.OpFindRuns, Err: err}
	}
	present := make(map[string]bool, len(found))
	for _, f := range found {
		present[f.ID] = true
	}
	for _, id := range q.RunIDs {
		if !present[id] {
			return db.Missing(db.OpFindRuns, db.ResourceRun, id)
		}
	}
	return nil
}

func (s *Store) exists(ctx context.Context, coll *mongo.Collection, resource, id string) error {
	n, err := coll.CountDocuments(ctx, byID(id), options.Count().SetLimit(1))
	if err != nil {
		return &db.Error{Op: db.OpFindRuns, Err: fmt.Errorf("check %s: %w", resource, err)}
	}
	if n == 0 {
		return db.Missing(db.OpFindRuns, resource, id)
	}
	return nil
}
