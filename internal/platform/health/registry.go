// Package health provides the probe registry run by the refresh loop and the
// lock-free Store that holds the latest health snapshot. The Store is the only
// shared mutable state between the refresh loop and the HTTP handlers.
package health

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/container-health/internal/domain"
	"github.com/jsamuelsen11/container-health/internal/platform/telemetry"
	"github.com/jsamuelsen11/container-health/internal/ports"
)

// Compile-time interface check.
var _ ports.ProbeRegistry = (*Registry)(nil)

// Registry is a thread-safe implementation of [ports.ProbeRegistry].
// Probers are registered at startup and run sequentially, in registration
// order, on each refresh cycle.
type Registry struct {
	mu      sync.RWMutex
	probers []ports.Prober
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New creates an empty probe registry. If metrics is nil, metric recording is
// skipped; if logger is nil, log output is discarded.
func New(metrics *telemetry.Metrics, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Registry{metrics: metrics, logger: logger}
}

// Register adds a prober to the registry. Safe for concurrent use.
func (r *Registry) Register(prober ports.Prober) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.probers = append(r.probers, prober)
}

// CheckAll runs all registered probers and returns their verdicts keyed by
// prober name. The slice is copied under a read lock so probes run without
// holding the lock. A panicking prober is reported as unhealthy and does not
// affect the others.
func (r *Registry) CheckAll(ctx context.Context) map[string]domain.DependencyStatus {
	r.mu.RLock()
	probers := make([]ports.Prober, len(r.probers))
	copy(probers, r.probers)
	r.mu.RUnlock()

	results := make(map[string]domain.DependencyStatus, len(probers))
	for _, p := range probers {
		results[p.Name()] = r.runProbe(ctx, p)
	}
	return results
}

// runProbe executes a single prober inside its own span.
func (r *Registry) runProbe(ctx context.Context, p ports.Prober) (status domain.DependencyStatus) {
	name := p.Name()
	start := time.Now()

	tracer := otel.GetTracerProvider().Tracer("health")
	ctx, span := tracer.Start(ctx, "probe "+name,
		trace.WithAttributes(attribute.String(string(telemetry.AttrDependency), name)),
	)

	defer func() {
		if v := recover(); v != nil {
			r.logger.ErrorContext(ctx, "probe panicked",
				slog.String("operation", "health.CheckAll"),
				slog.String("dependency", name),
				slog.String("panic", fmt.Sprint(v)),
			)
			status = domain.Unhealthy(fmt.Sprintf("probe panicked: %v", v))
		}

		span.SetAttributes(attribute.String(string(telemetry.AttrResult), status.Kind().String()))
		if status.IsUnhealthy() {
			span.SetStatus(codes.Error, status.Reason())
		}
		span.End()

		r.recordMetrics(ctx, name, start, status)
	}()

	return p.Probe(ctx)
}

// recordMetrics records probe duration. Safe to call with nil metrics.
func (r *Registry) recordMetrics(ctx context.Context, name string, start time.Time, status domain.DependencyStatus) {
	if r.metrics == nil {
		return
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDependency.String(name),
		telemetry.AttrResult.String(status.Kind().String()),
	)
	r.metrics.ProbeDuration.Record(ctx, time.Since(start).Seconds(), attrs)
}
