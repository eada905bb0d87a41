package query

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/kailas-cloud/runstore/internal/domain/query/predicate"
	"github.com/kailas-cloud/runstore/internal/domain/query/request"
	domrun "github.com/kailas-cloud/runstore/internal/domain/run"
	"github.com/kailas-cloud/runstore/internal/metrics"
)

// InstrumentedRepository wraps a Repository with a span, a duration metric
// and a log line per backend call.
type InstrumentedRepository struct {
	inner   Repository
	backend string
	tracer  trace.Tracer
	logger  *zap.Logger
}

// NewInstrumentedRepository wraps inner. backend labels metrics and spans.
func NewInstrumentedRepository(
	inner Repository, backend string, tracer trace.Tracer, logger *zap.Logger,
) *InstrumentedRepository {
	return &InstrumentedRepository{inner: inner, backend: backend, tracer: tracer, logger: logger}
}

// Find delegates to the inner repository.
func (r *InstrumentedRepository) Find(
	ctx context.Context, scope request.Scope, predicates []predicate.Predicate,
) ([]domrun.Run, error) {
	ctx, span := r.tracer.Start(ctx, "runs.find",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", r.backend),
			attribute.String("runstore.scope.project_id", scope.ProjectID()),
			attribute.String("runstore.scope.experiment_id", scope.ExperimentID()),
			attribute.Int("runstore.scope.run_ids", len(scope.RunIDs())),
			attribute.Int("runstore.predicates", len(predicates)),
		),
	)
	defer span.End()

	start := time.Now()
	runs, err := r.inner.Find(ctx, scope, predicates)
	duration := time.Since(start)
	metrics.QueryDuration.WithLabelValues(r.backend, "find_runs").Observe(duration.Seconds())

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, ErrorCode(err))
		r.logger.Warn("Find runs failed",
			zap.String("backend", r.backend),
			zap.Int("predicates", len(predicates)),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	span.SetAttributes(attribute.Int("runstore.matched", len(runs)))
	r.logger.Debug("Find runs completed",
		zap.String("backend", r.backend),
		zap.Int("predicates", len(predicates)),
		zap.Int("matched", len(runs)),
		zap.Duration("duration", duration),
	)
	return runs, nil
}
