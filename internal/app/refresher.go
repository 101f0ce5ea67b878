// Package app provides the application services that orchestrate probes,
// the status store, and telemetry through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/container-health/internal/domain"
	"github.com/jsamuelsen11/container-health/internal/platform/telemetry"
	"github.com/jsamuelsen11/container-health/internal/ports"
)

// DefaultInterval is the refresh cadence used when none is configured.
const DefaultInterval = 30 * time.Second

// Compile-time interface check.
var _ ports.HealthRefresher = (*Refresher)(nil)

// RefresherOptions configures the background refresh loop.
type RefresherOptions struct {
	Registry ports.ProbeRegistry
	Store    ports.StatusStore
	Interval time.Duration

	// Metrics receives refresh counters. Nil disables metric recording.
	Metrics *telemetry.Metrics
	Logger  *slog.Logger

	// Now returns the current time. Nil defaults to time.Now.
	Now func() time.Time
}

// Refresher is the single writer of the status store. It runs every probe on
// a fixed cadence and publishes the resulting snapshot.
type Refresher struct {
	registry ports.ProbeRegistry
	store    ports.StatusStore
	interval time.Duration
	metrics  *telemetry.Metrics
	logger   *slog.Logger
	now      func() time.Time

	// trigger has capacity 1: a pending request absorbs later ones.
	trigger chan struct{}
}

// NewRefresher creates a refresh loop. Call Run to start it.
func NewRefresher(opts RefresherOptions) *Refresher {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Refresher{
		registry: opts.Registry,
		store:    opts.Store,
		interval: opts.Interval,
		metrics:  opts.Metrics,
		logger:   opts.Logger,
		now:      opts.Now,
		trigger:  make(chan struct{}, 1),
	}
}

// Run refreshes immediately, then once per interval and once per Trigger,
// until ctx is cancelled. It returns ctx.Err().
// Intended to be launched as: go refresher.Run(ctx)
func (r *Refresher) Run(ctx context.Context) error {
	r.logger.InfoContext(ctx, "refresh loop starting",
		slog.Duration("interval", r.interval),
	)

	r.RefreshOnce(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.InfoContext(ctx, "refresh loop stopping", slog.Any("reason", ctx.Err()))
			return ctx.Err()
		case <-ticker.C:
			r.RefreshOnce(ctx)
		case <-r.trigger:
			r.RefreshOnce(ctx)
			ticker.Reset(r.interval)
		}
	}
}

// Trigger requests an early refresh. It never blocks.
func (r *Refresher) Trigger() {
	select {
	case r.trigger <- struct{}{}:
	default:
	}
}

// RefreshOnce runs one cycle: probe everything, build a snapshot, publish it.
// If ctx is cancelled while probing, or the cycle panics before publishing,
// nothing is published and the previously visible snapshot is returned. A
// panic after publishing still returns the published snapshot.
func (r *Refresher) RefreshOnce(ctx context.Context) (snap domain.Snapshot) {
	ctx, span := otel.GetTracerProvider().Tracer("app").Start(ctx, "health.refresh")
	defer span.End()

	prev := r.store.Read()
	published := false

	defer func() {
		if v := recover(); v != nil {
			r.logger.ErrorContext(ctx, "refresh cycle panicked",
				slog.String("operation", "Refresher.RefreshOnce"),
				slog.String("panic", fmt.Sprint(v)),
			)
			span.SetStatus(codes.Error, "panic")
			if !published {
				snap = prev
			}
		}
	}()

	results := r.registry.CheckAll(ctx)
	if err := ctx.Err(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return prev
	}

	// Timestamps never go backwards, even if the wall clock does.
	at := r.now().UTC()
	if at.Before(prev.Timestamp()) {
		at = prev.Timestamp()
	}

	snap = domain.NewSnapshot(at, results)
	r.store.Publish(snap)
	published = true

	span.SetAttributes(telemetry.AttrOverall.String(snap.Overall().String()))
	r.recordMetrics(ctx, snap)
	r.logTransition(ctx, prev, snap)

	return snap
}

// logTransition logs changes of the overall verdict.
func (r *Refresher) logTransition(ctx context.Context, prev, next domain.Snapshot) {
	switch {
	case prev.IsHealthy() && !next.IsHealthy():
		r.logger.WarnContext(ctx, "health degraded",
			slog.String("unhealthy", strings.Join(next.UnhealthyServices(), ",")),
		)
	case !prev.IsHealthy() && next.IsHealthy():
		r.logger.InfoContext(ctx, "health recovered")
	default:
		r.logger.DebugContext(ctx, "health refreshed",
			slog.String("overall", next.Overall().String()),
		)
	}
}

// recordMetrics counts refresh cycles. Safe to call with nil metrics.
func (r *Refresher) recordMetrics(ctx context.Context, snap domain.Snapshot) {
	if r.metrics == nil {
		return
	}
	r.metrics.RefreshTotal.Add(ctx, 1,
		metric.WithAttributes(telemetry.AttrOverall.String(snap.Overall().String())),
	)
}
