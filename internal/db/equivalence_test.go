package db_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/kailas-cloud/runstore/internal/db"
	"github.com/kailas-cloud/runstore/internal/db/memory"
	"github.com/kailas-cloud/runstore/internal/db/mongo"
	"github.com/kailas-cloud/runstore/internal/db/postgres"
	"github.com/kailas-cloud/runstore/internal/domain/query"
	"github.com/kailas-cloud/runstore/internal/domain/query/predicate"
	"github.com/kailas-cloud/runstore/internal/domain/value"
)

const (
	seedProject = "proj"
	runCount    = 60
	queryCount  = 300
)

var experimentIDs = []string{"exp-a", "exp-b"}

// startContainer runs image and returns host:port for the exposed port.
func startContainer(ctx context.Context, t *testing.T, req testcontainers.ContainerRequest, port string) string {
	t.Helper()
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("docker not available: %v", err)
	}
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	mapped, err := c.MappedPort(ctx, port)
	require.NoError(t, err)
	return fmt.Sprintf("%s:%s", host, mapped.Port())
}

func startMongo(ctx context.Context, t *testing.T) db.Store {
	t.Helper()
	addr := startContainer(ctx, t, testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(60 * time.Second),
	}, "27017")

	s, err := mongo.NewStore(ctx, mongo.Config{URI: "mongodb://" + addr, Database: "runstore_test"})
	require.NoError(t, err)
	t.Cleanup(s.Close)
	require.NoError(t, s.WaitForReady(ctx, 30*time.Second))
	require.NoError(t, s.EnsureIndexes(ctx))
	return s
}

func startPostgres(ctx context.Context, t *testing.T) db.Store {
	t.Helper()
	addr := startContainer(ctx, t, testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_USER":     "runstore",
			"POSTGRES_PASSWORD": "runstore",
			"POSTGRES_DB":       "runstore",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}, "5432")

	s, err := postgres.NewStore(postgres.Config{
		DSN: fmt.Sprintf("postgres://runstore:runstore@%s/runstore?sslmode=disable", addr),
	})
	require.NoError(t, err)
	t.Cleanup(s.Close)
	require.NoError(t, s.WaitForReady(ctx, 30*time.Second))
	require.NoError(t, s.Migrate(ctx))
	return s
}

// dataset builds runs whose containers mix kinds, repeat keys and omit keys.
func dataset(rng *rand.Rand) []db.RunRecord {
	strs := []string{"adam", "sgd", "Adam", "rmsprop", "", "zeta"}
	randomValue := func() value.Value {
		switch rng.Intn(6) {
		case 0, 1, 2:
			return value.Number(float64(rng.Intn(21)) / 2)
		case 3:
			return value.String(strs[rng.Intn(len(strs))])
		case 4:
			return value.Bool(rng.Intn(2) == 0)
		default:
			return value.List(value.Number(1), value.String("x"))
		}
	}
	entries := func(keys []string) []value.KeyValue {
		var out []value.KeyValue
		for _, k := range keys {
			n := rng.Intn(3)
			if rng.Intn(8) == 0 {
				n = 2
			}
			for i := 0; i < n; i++ {
				out = append(out, value.KeyValue{Key: k, Value: randomValue()})
			}
		}
		return out
	}

	runs := make([]db.RunRecord, runCount)
	for i := range runs {
		r := db.RunRecord{
			ID:              fmt.Sprintf("run-%02d", i),
			ProjectID:       seedProject,
			ExperimentID:    experimentIDs[i%len(experimentIDs)],
			Name:            strs[rng.Intn(len(strs))],
			Owner:           "owner",
			DateCreated:     int64(rng.Intn(10)),
			DateUpdated:     int64(rng.Intn(10)),
			Attributes:      entries([]string{"dataset", "framework"}),
			Metrics:         entries([]string{"loss", "accuracy"}),
			Hyperparameters: entries([]string{"optimizer", "tuning"}),
		}
		if rng.Intn(2) == 0 {
			start := int64(rng.Intn(10))
			r.StartTime = &start
			if rng.Intn(2) == 0 {
				end := start + int64(rng.Intn(5))
				r.EndTime = &end
			}
		}
		runs[i] = r
	}
	return runs
}

var (
	operators = []query.Operator{query.EQ, query.NEQ, query.LT, query.LTE, query.GT, query.GTE}
	paths     = []string{
		"metrics.loss", "metrics.accuracy", "metrics.missing",
		"attributes.dataset", "attributes.framework",
		"hyperparameters.optimizer", "hyperparameters.tuning",
		"name", "dateCreated", "startTime", "endTime",
	}
)

func randomPredicate(rng *rand.Rand) (predicate.Predicate, bool) {
	path := paths[rng.Intn(len(paths))]
	op := operators[rng.Intn(len(operators))]
	var v value.Value
	switch rng.Intn(3) {
	case 0:
		v = value.Number(float64(rng.Intn(21)) / 2)
	case 1:
		v = value.String([]string{"adam", "sgd", "b", ""}[rng.Intn(4)])
	default:
		v = value.Bool(rng.Intn(2) == 0)
	}
	p, err := predicate.New(path, op, v)
	return p, err == nil
}

func randomQuery(rng *rand.Rand) *db.RunQuery {
	q := &db.RunQuery{}
	switch rng.Intn(4) {
	case 0:
		q.ProjectID = seedProject
	case 1:
		q.ExperimentID = experimentIDs[rng.Intn(len(experimentIDs))]
	case 2:
		for i := 0; i < 1+rng.Intn(5); i++ {
			q.RunIDs = append(q.RunIDs, fmt.Sprintf("run-%02d", rng.Intn(runCount)))
		}
	}
	n := rng.Intn(4)
	for len(q.Predicates) < n {
		if p, ok := randomPredicate(rng); ok {
			q.Predicates = append(q.Predicates, p)
		}
	}
	return q
}

func ids(recs []db.RunRecord) []string {
	out := make([]string, len(recs))
	for i := range recs {
		out[i] = recs[i].ID
	}
	return out
}

func seed(ctx context.Context, t *testing.T, s db.Store, runs []db.RunRecord) {
	t.Helper()
	require.NoError(t, s.InsertProject(ctx, &db.ProjectRecord{ID: seedProject, Name: "project"}))
	for _, id := range experimentIDs {
		require.NoError(t, s.InsertExperiment(ctx, &db.ExperimentRecord{ID: id, ProjectID: seedProject, Name: id}))
	}
	for i := range runs {
		require.NoError(t, s.InsertRun(ctx, &runs[i]))
	}
}

func TestBackendsAgree(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	backends := map[string]db.Store{
		"mongo":    startMongo(ctx, t),
		"postgres": startPostgres(ctx, t),
	}
	reference := memory.NewStore()

	runs := dataset(rand.New(rand.NewSource(7)))
	seed(ctx, t, reference, runs)
	for _, s := range backends {
		seed(ctx, t, s, runs)
	}

	rng := rand.New(rand.NewSource(11))
	for i := 0; i < queryCount; i++ {
		q := randomQuery(rng)
		want, err := reference.FindRuns(ctx, q)
		require.NoError(t, err, "query %d", i)

		for name, s := range backends {
			got, err := s.FindRuns(ctx, q)
			require.NoError(t, err, "%s query %d", name, i)
			assert.Equal(t, ids(want), ids(got), "%s query %d: %+v", name, i, q.Predicates)
		}
	}
}

func TestBackendsAgree_RecordShape(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	start, end := int64(5), int64(9)
	rec := db.RunRecord{
		ID: "shape", ProjectID: seedProject, ExperimentID: experimentIDs[0],
		Name: "shape", StartTime: &start, EndTime: &end, DateCreated: 1, DateUpdated: 2,
		Attributes: []value.KeyValue{
			{Key: "cfg", Value: value.Struct(map[string]value.Value{"layers": value.List(value.Number(1), value.Number(2))})},
		},
		Metrics: []value.KeyValue{
			{Key: "loss", Value: value.Number(0.5)},
			{Key: "loss", Value: value.Number(0.25)},
		},
	}

	for name, s := range map[string]db.Store{"mongo": startMongo(ctx, t), "postgres": startPostgres(ctx, t)} {
		t.Run(name, func(t *testing.T) {
			seed(ctx, t, s, []db.RunRecord{rec})
			got, err := s.GetRun(ctx, "shape")
			require.NoError(t, err)
			require.NotNil(t, got.StartTime)
			require.NotNil(t, got.EndTime)
			assert.Equal(t, start, *got.StartTime)
			assert.Equal(t, end, *got.EndTime)
			require.Len(t, got.Metrics, 2)
			assert.Equal(t, 0.5, got.Metrics[0].Value.Num())
			assert.Equal(t, 0.25, got.Metrics[1].Value.Num())
			require.Len(t, got.Attributes, 1)
			assert.Equal(t, value.KindStruct, got.Attributes[0].Value.Kind())
			assert.Empty(t, got.Hyperparameters)

			err = s.InsertRun(ctx, &rec)
			assert.ErrorIs(t, err, db.ErrKeyExists)
		})
	}
}
