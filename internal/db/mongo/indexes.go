package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kailas-cloud/runstore/internal/db"
)

// Indexes lists the secondary indexes the store maintains.
func Indexes() []*db.IndexDefinition {
	return []*db.IndexDefinition{
		db.NewIndex("experiments_project").On(collExperiments).Asc("project_id").MustBuild(),
		db.NewIndex("runs_project").On(collRuns).Asc("project_id").MustBuild(),
		db.NewIndex("runs_experiment").On(collRuns).Asc("experiment_id").MustBuild(),
		db.NewIndex("runs_attributes_key").On(collRuns).Asc("attributes.key").Asc("attributes.kind").MustBuild(),
		db.NewIndex("runs_metrics_key").On(collRuns).Asc("metrics.key").Asc("metrics.kind").MustBuild(),
		db.NewIndex("runs_hyperparameters_key").On(collRuns).
			Asc("hyperparameters.key").Asc("hyperparameters.kind").MustBuild(),
	}
}

// EnsureIndexes creates missing indexes. Existing indexes with the same name are kept.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	byColl := make(map[string][]mongo.IndexModel)
	for _, def := range Indexes() {
		byColl[def.Collection] = append(byColl[def.Collection], indexModel(def))
	}
	for name, models := range byColl {
		if _, err := s.database.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return &db.Error{Op: db.OpMigrate, Err: err}
		}
	}
	return nil
}

func indexModel(def *db.IndexDefinition) mongo.IndexModel {
	keys := make(bson.D, 0, len(def.Fields))
	for _, f := range def.Fields {
		dir := 1
		if f.Descending {
			dir = -1
		}
		keys = append(keys, bson.E{Key: f.Name, Value: dir})
	}
	return mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(def.Name).SetUnique(def.Unique),
	}
}
