package probes

import (
	"context"
	"time"

	"github.com/jsamuelsen11/container-health/internal/domain"
	"github.com/jsamuelsen11/container-health/internal/ports"
)

// pingQuery is the trivial round-trip used to prove the database answers.
const pingQuery = "SELECT 1"

// Compile-time interface check.
var _ ports.Prober = (*DatabaseProbe)(nil)

// DatabaseProbe checks that a scoped connection can be acquired and that it
// answers a trivial query.
type DatabaseProbe struct {
	sessions ports.SessionProvider
	timeout  time.Duration
}

// NewDatabaseProbe creates a database probe. A non-positive timeout leaves
// the probe bounded only by the caller's context.
func NewDatabaseProbe(sessions ports.SessionProvider, timeout time.Duration) *DatabaseProbe {
	return &DatabaseProbe{sessions: sessions, timeout: timeout}
}

// Name implements [ports.Prober].
func (p *DatabaseProbe) Name() string {
	return domain.ServiceDatabase
}

// Probe acquires a connection, runs SELECT 1, and releases the connection.
func (p *DatabaseProbe) Probe(ctx context.Context) domain.DependencyStatus {
	if p.sessions == nil {
		return domain.Unhealthy("no database configured")
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	conn, err := p.sessions.Conn(ctx)
	if err != nil {
		return domain.Unhealthy(err.Error())
	}
	defer func() { _ = conn.Close() }()

	var one int
	if err := conn.QueryRowContext(ctx, pingQuery).Scan(&one); err != nil {
		return domain.Unhealthy(err.Error())
	}

	return domain.Healthy()
}
