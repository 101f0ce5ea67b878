package ports

import (
	"context"

	"github.com/jsamuelsen11/container-health/internal/domain"
)

// HealthRefresher defines the service port for the background refresh loop.
// Implemented by the application layer.
type HealthRefresher interface {
	// Run refreshes the snapshot immediately and then on every interval until
	// ctx is cancelled.
	Run(ctx context.Context) error

	// RefreshOnce runs every probe, publishes the resulting snapshot, and
	// returns it.
	RefreshOnce(ctx context.Context) domain.Snapshot

	// Trigger requests an early refresh without waiting for it. Requests made
	// while one is already pending are coalesced.
	Trigger()
}
