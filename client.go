package runstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"github.com/kailas-cloud/runstore/internal/db"
	"github.com/kailas-cloud/runstore/internal/db/memory"
	dbMongo "github.com/kailas-cloud/runstore/internal/db/mongo"
	dbPostgres "github.com/kailas-cloud/runstore/internal/db/postgres"
	"github.com/kailas-cloud/runstore/internal/domain/query/request"
	experimentrepo "github.com/kailas-cloud/runstore/internal/repository/experiment"
	projectrepo "github.com/kailas-cloud/runstore/internal/repository/project"
	runrepo "github.com/kailas-cloud/runstore/internal/repository/run"
	experimentuc "github.com/kailas-cloud/runstore/internal/usecase/experiment"
	projectuc "github.com/kailas-cloud/runstore/internal/usecase/project"
	queryuc "github.com/kailas-cloud/runstore/internal/usecase/query"
	runuc "github.com/kailas-cloud/runstore/internal/usecase/run"
)

const defaultReadinessTimeout = 10 * time.Second

// Client is the runstore SDK entry point.
type Client struct {
	store       db.Store
	projects    *projectuc.Service
	experiments *experimentuc.Service
	runs        *runuc.Service
	queries     *queryuc.Service
	limits      request.Limits
}

// New creates a Client and connects to the selected backend.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{readinessTimeout: defaultReadinessTimeout}
	for _, o := range opts {
		o.apply(cfg)
	}
	if cfg.driver == "" {
		return nil, errors.New("runstore: storage backend required (use WithMemory, WithMongo or WithPostgres)")
	}

	store, err := createStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := store.WaitForReady(ctx, cfg.readinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("runstore: database not ready: %w", err)
	}
	if err := prepareSchema(ctx, store); err != nil {
		store.Close()
		return nil, err
	}

	return wireClient(store, cfg), nil
}

func createStore(ctx context.Context, cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case db.DriverMemory:
		return memory.NewStore(), nil
	case db.DriverMongo:
		s, err := dbMongo.NewStore(ctx, dbMongo.Config{URI: cfg.mongoURI, Database: cfg.mongoDatabase})
		if err != nil {
			return nil, fmt.Errorf("runstore: create mongo store: %w", err)
		}
		return s, nil
	case db.DriverPostgres:
		s, err := dbPostgres.NewStore(dbPostgres.Config{DSN: cfg.postgresDSN})
		if err != nil {
			return nil, fmt.Errorf("runstore: create postgres store: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("runstore: unknown driver %q", cfg.driver)
	}
}

func prepareSchema(ctx context.Context, store db.Store) error {
	var err error
	switch s := store.(type) {
	case *dbMongo.Store:
		err = s.EnsureIndexes(ctx)
	case *dbPostgres.Store:
		err = s.Migrate(ctx)
	}
	if err != nil {
		return fmt.Errorf("runstore: prepare schema: %w", err)
	}
	return nil
}

func wireClient(store db.Store, cfg *clientConfig) *Client {
	logger := cfg.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	tracer := cfg.tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("runstore")
	}

	projects := projectrepo.New(store)
	experiments := experimentrepo.New(store)
	runs := runrepo.New(store)
	finder := queryuc.NewInstrumentedRepository(runs, string(cfg.driver), tracer, logger)

	return &Client{
		store:       store,
		projects:    projectuc.New(projects),
		experiments: experimentuc.New(experiments, projects),
		runs:        runuc.New(runs, experiments),
		queries:     queryuc.New(finder),
		limits: request.Limits{
			MaxPredicates: cfg.maxPredicates,
			MaxRunIDs:     cfg.maxRunIDs,
			MaxPageLimit:  cfg.maxPageLimit,
		},
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// CreateProject stores a new project.
func (c *Client) CreateProject(ctx context.Context, p ProjectParams) (Project, error) {
	proj, err := c.projects.Create(ctx, projectuc.CreateParams{
		ID: p.ID, Name: p.Name, Description: p.Description, Owner: p.Owner,
	})
	if err != nil {
		return Project{}, fmt.Errorf("create project: %w", err)
	}
	return fromProject(proj), nil
}

// GetProject retrieves a project by id.
func (c *Client) GetProject(ctx context.Context, id string) (Project, error) {
	proj, err := c.projects.Get(ctx, id)
	if err != nil {
		return Project{}, fmt.Errorf("get project: %w", err)
	}
	return fromProject(proj), nil
}

// CreateExperiment stores a new experiment in an existing project.
func (c *Client) CreateExperiment(ctx context.Context, p ExperimentParams) (Experiment, error) {
	exp, err := c.experiments.Create(ctx, experimentuc.CreateParams{
		ID: p.ID, ProjectID: p.ProjectID, Name: p.Name, Description: p.Description, Owner: p.Owner,
	})
	if err != nil {
		return Experiment{}, fmt.Errorf("create experiment: %w", err)
	}
	return fromExperiment(exp), nil
}

// GetExperiment retrieves an experiment by id.
func (c *Client) GetExperiment(ctx context.Context, id string) (Experiment, error) {
	exp, err := c.experiments.Get(ctx, id)
	if err != nil {
		return Experiment{}, fmt.Errorf("get experiment: %w", err)
	}
	return fromExperiment(exp), nil
}

// CreateRun stores a new run in an existing experiment of the given project.
func (c *Client) CreateRun(ctx context.Context, p RunParams) (Run, error) {
	r, err := c.runs.Create(ctx, p.toDomain())
	if err != nil {
		return Run{}, fmt.Errorf("create run: %w", err)
	}
	return fromRun(r), nil
}

// GetRun retrieves a run by id.
func (c *Client) GetRun(ctx context.Context, id string) (Run, error) {
	r, err := c.runs.Get(ctx, id)
	if err != nil {
		return Run{}, fmt.Errorf("get run: %w", err)
	}
	return fromRun(r), nil
}

// DeleteRun removes a run.
func (c *Client) DeleteRun(ctx context.Context, id string) error {
	if err := c.runs.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	return nil
}

// AppendToRun adds entries after the existing ones of a run container.
func (c *Client) AppendToRun(ctx context.Context, id string, container Container, entries ...KeyValue) (Run, error) {
	r, err := c.runs.Append(ctx, id, string(container), entries)
	if err != nil {
		return Run{}, fmt.Errorf("append to run: %w", err)
	}
	return fromRun(r), nil
}

// SetRunEndTime records when a run finished (unix millis).
func (c *Client) SetRunEndTime(ctx context.Context, id string, endTime int64) (Run, error) {
	r, err := c.runs.SetEndTime(ctx, id, endTime)
	if err != nil {
		return Run{}, fmt.Errorf("set run end time: %w", err)
	}
	return fromRun(r), nil
}
