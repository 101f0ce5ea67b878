package probes

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/jsamuelsen11/container-health/internal/domain"
	"github.com/jsamuelsen11/container-health/internal/ports"
)

// Compile-time interface check.
var _ ports.Prober = (*SchedulerProbe)(nil)

// SchedulerProbe infers scheduler liveness from the presence of its marker
// (pid) file. Presence means healthy; anything else means unknown. This is a
// weak proxy: a stale marker left by a crashed scheduler still reads healthy.
type SchedulerProbe struct {
	markerPath string
	timeout    time.Duration
	stat       func(name string) (fs.FileInfo, error)
	logger     *slog.Logger
}

// NewSchedulerProbe creates a marker-file probe for markerPath. If logger is
// nil, log output is discarded.
func NewSchedulerProbe(markerPath string, timeout time.Duration, logger *slog.Logger) *SchedulerProbe {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SchedulerProbe{
		markerPath: markerPath,
		timeout:    timeout,
		stat:       os.Stat,
		logger:     logger,
	}
}

// Name implements [ports.Prober].
func (p *SchedulerProbe) Name() string {
	return domain.ServiceScheduler
}

// MarkerPath returns the watched marker file.
func (p *SchedulerProbe) MarkerPath() string {
	return p.markerPath
}

// Probe stats the marker file. The stat runs in its own goroutine so that a
// hung filesystem cannot stall the refresh loop past the timeout.
func (p *SchedulerProbe) Probe(ctx context.Context) domain.DependencyStatus {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	done := make(chan error, 1)
	go func() {
		_, err := p.stat(p.markerPath)
		done <- err
	}()

	var err error
	select {
	case err = <-done:
	case <-ctx.Done():
		err = ctx.Err()
	}

	if err == nil {
		return domain.Healthy()
	}
	if !errors.Is(err, fs.ErrNotExist) {
		p.logger.DebugContext(ctx, "scheduler marker not readable",
			slog.String("operation", "SchedulerProbe.Probe"),
			slog.String("path", p.markerPath),
			slog.Any("error", err),
		)
	}
	return domain.Unknown()
}
