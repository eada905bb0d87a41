// Package postgres implements db.Store on PostgreSQL through gorm.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kailas-cloud/runstore/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// Config holds connection parameters for a PostgreSQL store.
// DSN, when set, takes precedence over the individual fields.
type Config struct {
	DSN             string
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func (c Config) dsn() string {
	if c.DSN != "" {
		return c.DSN
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Store implements db.Store via gorm and the pgx-based postgres driver.
type Store struct {
	db         *gorm.DB
	translator Translator
}

// NewStore opens a connection pool. Pool fields left at zero fall back to 50/25/1m.
func NewStore(cfg Config) (*Store, error) {
	if cfg.DSN == "" && cfg.Host == "" {
		return nil, fmt.Errorf("host or dsn is required")
	}

	gdb, err := gorm.Open(postgres.Open(cfg.dsn()), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get postgres pool: %w", err)
	}

	maxOpen := cfg.MaxOpenConns
	if maxOpen == 0 {
		maxOpen = 50
	}
	maxIdle := cfg.MaxIdleConns
	if maxIdle == 0 {
		maxIdle = 25
	}
	maxLifetime := cfg.ConnMaxLifetime
	if maxLifetime == 0 {
		maxLifetime = time.Minute
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(maxLifetime)

	return &Store{db: gdb}, nil
}

// NewStoreFromDB wraps an already opened gorm handle.
func NewStoreFromDB(gdb *gorm.DB) *Store {
	return &Store{db: gdb}
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	}
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return &db.Error{Op: db.OpPing, Err: err}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return &db.Error{Op: db.OpPing, Err: err}
	}
	return nil
}

// Close releases the pool.
func (s *Store) Close() {
	if sqlDB, err := s.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
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
	m := toProjectModel(rec)
	return writeError(db.OpInsertProject, s.db.WithContext(ctx).Create(&m).Error)
}

// GetProject loads a project.
func (s *Store) GetProject(ctx context.Context, id string) (*db.ProjectRecord, error) {
	var m projectModel
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, lookupError(db.OpGetProject, db.ResourceProject, id, err)
	}
	return m.record(), nil
}

// InsertExperiment stores a new experiment.
func (s *Store) InsertExperiment(ctx context.Context, rec *db.ExperimentRecord) error {
	m := toExperimentModel(rec)
	return writeError(db.OpInsertExperiment, s.db.WithContext(ctx).Create(&m).Error)
}

// GetExperiment loads an experiment.
func (s *Store) GetExperiment(ctx context.Context, id string) (*db.ExperimentRecord, error) {
	var m experimentModel
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, lookupError(db.OpGetExperiment, db.ResourceExperiment, id, err)
	}
	return m.record(), nil
}

// InsertRun stores a run and its container entries in one transaction.
func (s *Store) InsertRun(ctx context.Context, rec *db.RunRecord) error {
	m := toRunModel(rec)
	kvs, err := toKeyValueModels(rec)
	if err != nil {
		return &db.Error{Op: db.OpInsertRun, Err: err}
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		if len(kvs) > 0 {
			return tx.Create(&kvs).Error
		}
		return nil
	})
	return writeError(db.OpInsertRun, err)
}

// GetRun loads a run with its container entries.
func (s *Store) GetRun(ctx context.Context, id string) (*db.RunRecord, error) {
	var rec db.RunRecord
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m runModel
		if err := tx.Where("id = ?", id).First(&m).Error; err != nil {
			return lookupError(db.OpGetRun, db.ResourceRun, id, err)
		}
		recs, err := loadEntries(tx, []runModel{m})
		if err != nil {
			return &db.Error{Op: db.OpGetRun, Err: err}
		}
		rec = recs[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ReplaceRun overwrites a run row and rewrites its container entries.
func (s *Store) ReplaceRun(ctx context.Context, rec *db.RunRecord) error {
	m := toRunModel(rec)
	kvs, err := toKeyValueModels(rec)
	if err != nil {
		return &db.Error{Op: db.OpReplaceRun, Err: err}
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&runModel{}).Where("id = ?", rec.ID).Select("*").Updates(&m)
		if res.Error != nil {
			return &db.Error{Op: db.OpReplaceRun, Err: res.Error}
		}
		if res.RowsAffected == 0 {
			return db.Missing(db.OpReplaceRun, db.ResourceRun, rec.ID)
		}
		if err := tx.Where("run_id = ?", rec.ID).Delete(&keyValueModel{}).Error; err != nil {
			return &db.Error{Op: db.OpReplaceRun, Err: err}
		}
		if len(kvs) > 0 {
			if err := tx.Create(&kvs).Error; err != nil {
				return &db.Error{Op: db.OpReplaceRun, Err: err}
			}
		}
		return nil
	})
}

// DeleteRun removes a run and its container entries.
func (s *Store) DeleteRun(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&runModel{})
		if res.Error != nil {
			return &db.Error{Op: db.OpDeleteRun, Err: res.Error}
		}
		if res.RowsAffected == 0 {
			return db.Missing(db.OpDeleteRun, db.ResourceRun, id)
		}
		if err := tx.Where("run_id = ?", id).Delete(&keyValueModel{}).Error; err != nil {
			return &db.Error{Op: db.OpDeleteRun, Err: err}
		}
		return nil
	})
}

// loadEntries attaches container entries to run rows, preserving row order.
func loadEntries(tx *gorm.DB, rows []runModel) ([]db.RunRecord, error) {
	if len(rows) == 0 {
		return []db.RunRecord{}, nil
	}
	ids := make([]string, len(rows))
	for i := range rows {
		ids[i] = rows[i].ID
	}
	var kvs []keyValueModel
	err := tx.Where("run_id IN ?", ids).
		Order("run_id, container, position").
		Find(&kvs).Error
	if err != nil {
		return nil, fmt.Errorf("load key values: %w", err)
	}

	byRun := make(map[string][]keyValueModel, len(rows))
	for _, kv := range kvs {
		byRun[kv.RunID] = append(byRun[kv.RunID], kv)
	}
	out := make([]db.RunRecord, len(rows))
	for i := range rows {
		rec, err := assembleRun(&rows[i], byRun[rows[i].ID])
		if err != nil {
			return nil, err
		}
		out[i] = rec
	}
	return out, nil
}

func writeError(op string, err error) error {
	if err == nil {
		return nil
	}
	var dbErr *db.Error
	if errors.As(err, &dbErr) {
		return err
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &db.Error{Op: op, Err: db.ErrKeyExists}
	}
	return &db.Error{Op: op, Err: err}
}

func lookupError(op, resource, id string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Missing(op, resource, id)
	}
	return &db.Error{Op: op, Err: err}
}
