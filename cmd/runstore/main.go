package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/runstore/internal/config"
	"github.com/kailas-cloud/runstore/internal/db"
	"github.com/kailas-cloud/runstore/internal/db/memory"
	dbMongo "github.com/kailas-cloud/runstore/internal/db/mongo"
	dbPostgres "github.com/kailas-cloud/runstore/internal/db/postgres"
	"github.com/kailas-cloud/runstore/internal/domain/query/request"
	logpkg "github.com/kailas-cloud/runstore/internal/logger"
	"github.com/kailas-cloud/runstore/internal/metrics"
	experimentrepo "github.com/kailas-cloud/runstore/internal/repository/experiment"
	projectrepo "github.com/kailas-cloud/runstore/internal/repository/project"
	runrepo "github.com/kailas-cloud/runstore/internal/repository/run"
	"github.com/kailas-cloud/runstore/internal/tracer"
	chiTransport "github.com/kailas-cloud/runstore/internal/transport/chi"
	gen "github.com/kailas-cloud/runstore/internal/transport/generated"
	experimentuc "github.com/kailas-cloud/runstore/internal/usecase/experiment"
	healthuc "github.com/kailas-cloud/runstore/internal/usecase/health"
	projectuc "github.com/kailas-cloud/runstore/internal/usecase/project"
	queryuc "github.com/kailas-cloud/runstore/internal/usecase/query"
	runuc "github.com/kailas-cloud/runstore/internal/usecase/run"
	"github.com/kailas-cloud/runstore/internal/version"
)

func main() {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	if err := run(env, cfg, logger); err != nil {
		logger.Fatal("runstore stopped with error", zap.Error(err))
	}
	logger.Info("Server stopped gracefully")
}

func run(env string, cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting runstore API server",
		zap.Stringer("version", version.Get()),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Bool("tracing", cfg.Tracing.Enabled),
	)

	tp, err := tracer.New(ctx, tracer.Config{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
		Env:         env,
		Export:      cfg.Tracing.Export,
	})
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}

	store, err := openStore(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	projects := projectrepo.New(store)
	experiments := experimentrepo.New(store)
	runs := runrepo.New(store)
	finder := queryuc.NewInstrumentedRepository(runs, cfg.Database.Driver, tp.Tracer(), logger)

	server := chiTransport.NewServer(
		projectuc.New(projects),
		experimentuc.New(experiments, projects),
		runuc.New(runs, experiments),
		queryuc.New(finder),
		healthuc.New(cfg.Database.Driver, store, nil),
		request.Limits{
			MaxPredicates: cfg.Query.MaxPredicates,
			MaxRunIDs:     cfg.Query.MaxRunIDs,
			MaxPageLimit:  cfg.Query.MaxPageLimit,
		},
	)

	r := chi.NewRouter()
	r.Use(chiTransport.JSONRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(tracer.Middleware(tp.Tracer()))
	r.Use(chiTransport.WideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	gen.HandlerWithOptions(server, gen.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: chiTransport.ParamErrorHandler,
	})

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadTimeout:       time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		ReadHeaderTimeout: time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout:      time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error during shutdown", zap.Error(err))
		}
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error flushing traces", zap.Error(err))
		}
		return nil
	})

	return g.Wait()
}

// openStore connects the configured backend, waits for it and prepares its schema.
func openStore(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (db.Store, error) {
	var (
		store db.Store
		err   error
	)
	switch db.Driver(cfg.Driver) {
	case db.DriverMemory:
		store = memory.NewStore()
	case db.DriverMongo:
		store, err = dbMongo.NewStore(ctx, dbMongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	case db.DriverPostgres:
		pg := cfg.Postgres
		store, err = dbPostgres.NewStore(dbPostgres.Config{
			DSN:             pg.DSN,
			Host:            pg.Host,
			Port:            pg.Port,
			User:            pg.User,
			Password:        pg.Password,
			DBName:          pg.DBName,
			SSLMode:         pg.SSLMode,
			MaxOpenConns:    pg.MaxOpenConns,
			MaxIdleConns:    pg.MaxIdleConns,
			ConnMaxLifetime: time.Duration(pg.ConnMaxLifetimeSec) * time.Second,
		})
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("create %s store: %w", cfg.Driver, err)
	}

	if err := store.WaitForReady(ctx, time.Duration(cfg.ReadinessTimeout)*time.Second); err != nil {
		store.Close()
		return nil, fmt.Errorf("database not ready: %w", err)
	}

	switch s := store.(type) {
	case *dbMongo.Store:
		err = s.EnsureIndexes(ctx)
	case *dbPostgres.Store:
		err = s.Migrate(ctx)
	}
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("prepare schema: %w", err)
	}

	logger.Info("Connected to database", zap.String("driver", cfg.Driver))
	return store, nil
}
