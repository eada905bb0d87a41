package config

import (
	"strings"
	"testing"
)

func TestValidate_Drivers(t *testing.T) {
	tests := []struct {
		name    string
		db      DatabaseConfig
		wantErr string
	}{
		{"memory", DatabaseConfig{Driver: "memory"}, ""},
		{"mongo", DatabaseConfig{Driver: "mongo", Mongo: MongoConfig{URI: "mongodb://localhost:27017"}}, ""},
		{"mongo without uri", DatabaseConfig{Driver: "mongo"}, "database.mongo.uri is required"},
		{"postgres host", DatabaseConfig{Driver: "postgres", Postgres: PostgresConfig{Host: "localhost"}}, ""},
		{"postgres dsn", DatabaseConfig{Driver: "postgres", Postgres: PostgresConfig{DSN: "host=db"}}, ""},
		{"postgres without host", DatabaseConfig{Driver: "postgres"}, "database.postgres.dsn or database.postgres.host"},
		{"unknown", DatabaseConfig{Driver: "sqlite"}, `got "sqlite"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{HTTP: HTTPConfig{Port: 8080}, Database: tt.db}
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{
		HTTP:     HTTPConfig{Port: 0},
		Database: DatabaseConfig{Driver: "memory"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 30 {
		t.Errorf("expected WriteTimeoutSec=30, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.Database.Driver != "memory" {
		t.Errorf("expected Driver=memory, got %q", cfg.Database.Driver)
	}
	if cfg.Database.ReadinessTimeout != 10 {
		t.Errorf("expected ReadinessTimeout=10, got %d", cfg.Database.ReadinessTimeout)
	}
	if cfg.Database.Mongo.Database != "runstore" {
		t.Errorf("expected Mongo.Database=runstore, got %q", cfg.Database.Mongo.Database)
	}
	if cfg.Database.Postgres.Port != 5432 {
		t.Errorf("expected Postgres.Port=5432, got %d", cfg.Database.Postgres.Port)
	}
	if cfg.Query.MaxPredicates != 32 {
		t.Errorf("expected MaxPredicates=32, got %d", cfg.Query.MaxPredicates)
	}
	if cfg.Query.MaxPageLimit != 1000 {
		t.Errorf("expected MaxPageLimit=1000, got %d", cfg.Query.MaxPageLimit)
	}
	if cfg.Tracing.ServiceName != "runstore" {
		t.Errorf("expected ServiceName=runstore, got %q", cfg.Tracing.ServiceName)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:     HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Database: DatabaseConfig{Driver: "postgres", ReadinessTimeout: 15},
		Query:    QueryConfig{MaxPredicates: 4},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("expected Driver=postgres, got %q", cfg.Database.Driver)
	}
	if cfg.Query.MaxPredicates != 4 {
		t.Errorf("expected MaxPredicates=4, got %d", cfg.Query.MaxPredicates)
	}
}

func TestParse_ExpandsEnv(t *testing.T) {
	t.Setenv("RUNSTORE_TEST_PORT", "9090")
	data := []byte(`
http:
  port: ${RUNSTORE_TEST_PORT}
database:
  driver: ${RUNSTORE_TEST_DRIVER:-mongo}
  mongo:
    uri: mongodb://localhost:27017
auth:
  api_keys: [a, b]
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.HTTP.Port)
	}
	if cfg.Database.Driver != "mongo" {
		t.Errorf("driver = %q, want mongo", cfg.Database.Driver)
	}
	if len(cfg.Auth.APIKeys) != 2 {
		t.Errorf("api keys = %v", cfg.Auth.APIKeys)
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte("http: [")); err == nil {
		t.Error("expected parse error")
	}
	if _, err := Parse([]byte("http:\n  port: 8080\ndatabase:\n  driver: redis\n")); err == nil {
		t.Error("expected validation error")
	}
}

func TestLoad_LocalFile(t *testing.T) {
	cfg, err := Load("local")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.Driver == "" {
		t.Error("driver should be set")
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ENV", "")
	if got := GetEnv(); got != "local" {
		t.Errorf("GetEnv() = %q, want local", got)
	}
	t.Setenv("ENV", "prod")
	if got := GetEnv(); got != "prod" {
		t.Errorf("GetEnv() = %q, want prod", got)
	}
}
