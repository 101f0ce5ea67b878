package handlers_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jsamuelsen11/container-health/internal/domain"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func fixedClock() time.Time { return testTime }

func snapshotWith(overrides map[string]domain.DependencyStatus) domain.Snapshot {
	services := map[string]domain.DependencyStatus{
		domain.ServiceDatabase:  domain.Healthy(),
		domain.ServiceScheduler: domain.Healthy(),
		domain.ServiceDashboard: domain.Healthy(),
	}
	for name, st := range overrides {
		services[name] = st
	}
	return domain.NewSnapshot(testTime, services)
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
