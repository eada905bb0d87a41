package runstore

import (
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/kailas-cloud/runstore/internal/db"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	driver        db.Driver
	mongoURI      string
	mongoDatabase string
	postgresDSN   string

	readinessTimeout time.Duration
	maxPredicates    int
	maxRunIDs        int
	maxPageLimit     int

	logger *zap.Logger
	tracer trace.Tracer
}

// WithMemory keeps all records in process memory. Nothing is persisted.
func WithMemory() Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = db.DriverMemory
	})
}

// WithMongo stores records in a MongoDB database.
func WithMongo(uri, database string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = db.DriverMongo
		c.mongoURI = uri
		c.mongoDatabase = database
	})
}

// WithPostgres stores records in PostgreSQL. dsn uses the libpq key=value or URL form.
// Tables and indexes are created on connect.
func WithPostgres(dsn string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = db.DriverPostgres
		c.postgresDSN = dsn
	})
}

// WithReadinessTimeout bounds how long New waits for the database. Default 10s.
func WithReadinessTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.readinessTimeout = d
	})
}

// WithLimits bounds query sizes. Zero keeps the default for that limit.
func WithLimits(maxPredicates, maxRunIDs, maxPageLimit int) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxPredicates = maxPredicates
		c.maxRunIDs = maxRunIDs
		c.maxPageLimit = maxPageLimit
	})
}

// WithLogger sets the logger used for query diagnostics. Default: no-op.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithTracer records a span per backend query. Default: no-op.
func WithTracer(t trace.Tracer) Option {
	return optionFunc(func(c *clientConfig) {
		c.tracer = t
	})
}
