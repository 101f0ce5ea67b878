package probes_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsamuelsen11/container-health/internal/adapters/probes"
	"github.com/jsamuelsen11/container-health/internal/domain"
)

func TestSchedulerProbe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		create bool
		want   domain.StatusKind
	}{
		{name: "marker present", create: true, want: domain.KindHealthy},
		{name: "marker absent", create: false, want: domain.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "scheduler.pid")
			if tt.create {
				if err := os.WriteFile(path, []byte("4242\n"), 0o600); err != nil {
					t.Fatalf("writing marker: %v", err)
				}
			}

			probe := probes.NewSchedulerProbe(path, time.Second, nil)
			if got := probe.Probe(context.Background()); got.Kind() != tt.want {
				t.Errorf("Probe() = %q, want kind %s", got, tt.want)
			}
		})
	}
}

func TestSchedulerProbe_MissingMarkerKeepsOverallHealthy(t *testing.T) {
	t.Parallel()

	probe := probes.NewSchedulerProbe(filepath.Join(t.TempDir(), "absent.pid"), time.Second, nil)

	snap := domain.NewSnapshot(time.Now(), map[string]domain.DependencyStatus{
		domain.ServiceDatabase:  domain.Healthy(),
		domain.ServiceScheduler: probe.Probe(context.Background()),
		domain.ServiceDashboard: domain.Healthy(),
	})

	if got, _ := snap.Service(domain.ServiceScheduler); got.String() != "unknown" {
		t.Errorf("scheduler = %q, want %q", got, "unknown")
	}
	if !snap.IsHealthy() {
		t.Errorf("Overall() = %q, want healthy", snap.Overall())
	}
}

func TestSchedulerProbe_Accessors(t *testing.T) {
	t.Parallel()

	probe := probes.NewSchedulerProbe("/tmp/scheduler.pid", time.Second, nil)
	if probe.Name() != domain.ServiceScheduler {
		t.Errorf("Name() = %q, want %q", probe.Name(), domain.ServiceScheduler)
	}
	if probe.MarkerPath() != "/tmp/scheduler.pid" {
		t.Errorf("MarkerPath() = %q, want /tmp/scheduler.pid", probe.MarkerPath())
	}
}
