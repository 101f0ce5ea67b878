package probes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/container-health/internal/domain"
	"github.com/jsamuelsen11/container-health/internal/ports"
)

// maxDrainBytes bounds how much of a response body is read before closing so
// the connection can be reused.
const maxDrainBytes = 4 << 10

// Doer executes outbound HTTP requests against a fixed target.
// *httpclient.Client satisfies it.
type Doer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
	DoOnce(ctx context.Context, req *http.Request) (*http.Response, error)
	URL() string
	Name() string
	BreakerState() string
}

// Compile-time interface check.
var _ ports.Prober = (*DashboardProbe)(nil)

// DashboardProbe checks that the dashboard answers a GET with 200 OK.
type DashboardProbe struct {
	client  Doer
	timeout time.Duration
}

// NewDashboardProbe creates a dashboard probe. timeout bounds the whole probe,
// retries included.
func NewDashboardProbe(client Doer, timeout time.Duration) *DashboardProbe {
	return &DashboardProbe{client: client, timeout: timeout}
}

// Name implements [ports.Prober].
func (p *DashboardProbe) Name() string {
	return domain.ServiceDashboard
}

// Probe issues a GET to the dashboard URL. Only an exact 200 is healthy; any
// other status yields "HTTP <code>", and transport failures yield the error
// text. When the circuit breaker rejects the call, the GET is sent once
// directly so every cycle reports the dashboard's current answer.
func (p *DashboardProbe) Probe(ctx context.Context) domain.DependencyStatus {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.client.URL(), http.NoBody)
	if err != nil {
		return domain.Unhealthy(err.Error())
	}

	resp, err := p.client.Do(ctx, req)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		resp, err = p.client.DoOnce(ctx, req)
	}

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("peer.service", p.client.Name()),
		attribute.String("http.client.breaker_state", p.client.BreakerState()),
	)

	if resp != nil {
		defer func() {
			_, _ = io.CopyN(io.Discard, resp.Body, maxDrainBytes)
			_ = resp.Body.Close()
		}()
	}

	switch {
	case resp != nil && resp.StatusCode == http.StatusOK && err == nil:
		return domain.Healthy()
	case resp != nil:
		return domain.Unhealthy(fmt.Sprintf("HTTP %d", resp.StatusCode))
	default:
		return domain.Unhealthy(err.Error())
	}
}
