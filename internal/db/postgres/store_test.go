package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/kailas-cloud/runstore/internal/db"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormConfig())
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	return NewStoreFromDB(gdb), mock
}

func TestNewStore_RequiresHost(t *testing.T) {
	if _, err := NewStore(Config{}); err == nil {
		t.Fatal("expected error for empty config")
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := Config{Host: "localhost", Port: 5432, User: "u", Password: "p", DBName: "runs", SSLMode: "disable"}
	want := "host=localhost port=5432 user=u password=p dbname=runs sslmode=disable"
	if got := cfg.dsn(); got != want {
		t.Errorf("dsn = %q, want %q", got, want)
	}
	cfg.DSN = "postgres://x"
	if got := cfg.dsn(); got != "postgres://x" {
		t.Errorf("dsn = %q, want explicit DSN", got)
	}
}

func TestInsertProject(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec(`INSERT INTO "projects"`).WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.InsertProject(context.Background(), &db.ProjectRecord{ID: "p1", Name: "vision", DateCreated: 1, DateUpdated: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestInsertProject_Duplicate(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec(`INSERT INTO "projects"`).WillReturnError(gorm.ErrDuplicatedKey)

	err := s.InsertProject(context.Background(), &db.ProjectRecord{ID: "p1", Name: "vision"})
	if !errors.Is(err, db.ErrKeyExists) {
		t.Fatalf("err = %v, want ErrKeyExists", err)
	}
	var dbErr *db.Error
	if !errors.As(err, &dbErr) || dbErr.Op != db.OpInsertProject {
		t.Errorf("err = %#v, want op %s", err, db.OpInsertProject)
	}
}

func TestGetProject_NotFound(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery(`SELECT \* FROM "projects"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	_, err := s.GetProject(context.Background(), "missing")
	if !errors.Is(err, db.ErrKeyNotFound) {
		t.Fatalf("err = %v, want ErrKeyNotFound", err)
	}
	var missing *db.MissingError
	if !errors.As(err, &missing) || missing.ID != "missing" || missing.Resource != db.ResourceProject {
		t.Errorf("err = %#v", err)
	}
}

func TestGetProject(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery(`SELECT \* FROM "projects"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "owner", "date_created", "date_updated"}).
			AddRow("p1", "vision", "d", "alice", 10, 20))

	got, err := s.GetProject(context.Background(), "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "vision" || got.Owner != "alice" || got.DateUpdated != 20 {
		t.Errorf("got %+v", got)
	}
}

func TestFindRuns_MissingProject(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "projects"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	_, err := s.FindRuns(context.Background(), &db.RunQuery{ProjectID: "nope"})
	var missing *db.MissingError
	if !errors.As(err, &missing) {
		t.Fatalf("err = %v, want MissingError", err)
	}
	if missing.Resource != db.ResourceProject || missing.ID != "nope" {
		t.Errorf("missing = %+v", missing)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestFindRuns_MissingRunID(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "id" FROM "experiment_runs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("a"))
	mock.ExpectRollback()

	_, err := s.FindRuns(context.Background(), &db.RunQuery{RunIDs: []string{"a", "b"}})
	var missing *db.MissingError
	if !errors.As(err, &missing) || missing.ID != "b" || missing.Resource != db.ResourceRun {
		t.Fatalf("err = %v, want missing run b", err)
	}
}

func TestFindRuns_Empty(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT r\.\* FROM experiment_runs r WHERE TRUE ORDER BY r\.id`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectCommit()

	got, err := s.FindRuns(context.Background(), &db.RunQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("got %v, want empty non-nil slice", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestDeleteRun_NotFound(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "experiment_runs"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := s.DeleteRun(context.Background(), "r1")
	if !errors.Is(err, db.ErrKeyNotFound) {
		t.Fatalf("err = %v, want ErrKeyNotFound", err)
	}
}
