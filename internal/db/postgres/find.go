package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/kailas-cloud/runstore/internal/db"
)

const findRunsSQL = "SELECT r.* FROM experiment_runs r WHERE "

// FindRuns checks the scope and runs the translated fragment in one transaction.
// Rows are ordered by id under byte-wise collation.
func (s *Store) FindRuns(ctx context.Context, q *db.RunQuery) ([]db.RunRecord, error) {
	frag, err := s.translator.Translate(q)
	if err != nil {
		return nil, &db.Error{Op: db.OpFindRuns, Err: err}
	}

	var out []db.RunRecord
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkScope(tx, q); err != nil {
			return err
		}
		var rows []runModel
		sql := findRunsSQL + frag.SQL + ` ORDER BY r.id COLLATE "C"`
		raw := tx.Raw(sql)
		if len(frag.Args) > 0 {
			raw = tx.Raw(sql, frag.Args)
		}
		if err := raw.Scan(&rows).Error; err != nil {
			return &db.Error{Op: db.OpFindRuns, Err: err}
		}
		recs, err := loadEntries(tx, rows)
		if err != nil {
			return &db.Error{Op: db.OpFindRuns, Err: err}
		}
		out = recs
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func checkScope(tx *gorm.DB, q *db.RunQuery) error {
	if q.ProjectID != "" {
		if err := exists(tx, &projectModel{}, db.ResourceProject, q.ProjectID); err != nil {
			return err
		}
	}
	if q.ExperimentID != "" {
		if err := exists(tx, &experimentModel{}, db.ResourceExperiment, q.ExperimentID); err != nil {
			return err
		}
	}
	if len(q.RunIDs) == 0 {
		return nil
	}

	var found []string
	if err := tx.Model(&runModel{}).Where("id IN ?", q.RunIDs).Pluck("id", &found).Error; err != nil {
		return &db.Error{Op: db.OpFindRuns, Err: fmt.Errorf("check %s: %w", db.ResourceRun, err)}
	}
	present := make(map[string]bool, len(found))
	for _, id := range found {
		present[id] = true
	}
	for _, id := range q.RunIDs {
		if !present[id] {
			return db.Missing(db.OpFindRuns, db.ResourceRun, id)
		}
	}
	return nil
}

func exists(tx *gorm.DB, model any, resource, id string) error {
	var n int64
	if err := tx.Model(model).Where("id = ?", id).Limit(1).Count(&n).Error; err != nil {
		return &db.Error{Op: db.OpFindRuns, Err: fmt.Errorf("check %s: %w", resource, err)}
	}
	if n == 0 {
		return db.Missing(db.OpFindRuns, resource, id)
	}
	return nil
}
