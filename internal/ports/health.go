package ports

import (
	"context"

	"github.com/jsamuelsen11/container-health/internal/domain"
)

// Prober is implemented by every dependency check.
type Prober interface {
	// Name returns the dependency identifier reported in the snapshot
	// (e.g., "database", "scheduler", "dashboard").
	Name() string

	// Probe checks the dependency once. It never fails: any error is folded
	// into an Unhealthy status. Implementations should respect context
	// cancellation and deadlines.
	Probe(ctx context.Context) domain.DependencyStatus
}

// ProbeRegistry manages registration and execution of probers.
// Used by the refresh loop to collect one status per dependency.
type ProbeRegistry interface {
	// Register adds a Prober to the registry.
	Register(prober Prober)

	// CheckAll runs every registered prober in registration order and returns
	// the verdicts keyed by prober name.
	CheckAll(ctx context.Context) map[string]domain.DependencyStatus
}

// StatusReader exposes the most recently published snapshot.
// Used by the HTTP handlers; reading never triggers a probe.
type StatusReader interface {
	// Read returns the latest published snapshot. Safe for any number of
	// concurrent callers.
	Read() domain.Snapshot
}

// StatusStore is the shared holder written by the refresh loop and read by
// the HTTP surface.
type StatusStore interface {
	StatusReader

	// Publish replaces the visible snapshot as a whole.
	Publish(snapshot domain.Snapshot)
}
