package postgres

import (
	"context"
	"strings"

	"github.com/kailas-cloud/runstore/internal/db"
)

// Indexes lists the secondary indexes the store maintains.
func Indexes() []*db.IndexDefinition {
	return []*db.IndexDefinition{
		db.NewIndex("experiments_project").On(tableExperiments).Asc("project_id").MustBuild(),
		db.NewIndex("runs_project").On(tableRuns).Asc("project_id").MustBuild(),
		db.NewIndex("runs_experiment").On(tableRuns).Asc("experiment_id").MustBuild(),
		db.NewIndex("run_key_values_lookup").On(tableKeyValues).
			Asc("run_id").Asc("container").Asc("key").MustBuild(),
		db.NewIndex("run_key_values_position").On(tableKeyValues).
			Asc("run_id").Asc("container").Asc("position").Unique().MustBuild(),
	}
}

// Migrate creates tables and indexes. It is idempotent.
func (s *Store) Migrate(ctx context.Context) error {
	tx := s.db.WithContext(ctx)
	if err := tx.AutoMigrate(&projectModel{}, &experimentModel{}, &runModel{}, &keyValueModel{}); err != nil {
		return &db.Error{Op: db.OpMigrate, Err: err}
	}
	for _, def := range Indexes() {
		if err := tx.Exec(createIndexSQL(def)).Error; err != nil {
			return &db.Error{Op: db.OpMigrate, Err: err}
		}
	}
	return nil
}

func createIndexSQL(def *db.IndexDefinition) string {
	return strings.Replace(def.String(), " INDEX ", " INDEX IF NOT EXISTS ", 1)
}
