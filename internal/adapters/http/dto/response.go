// Package dto provides HTTP response data transfer objects and RFC 9457
// Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/container-health/internal/domain"
)

// Probe endpoint status values.
const (
	StatusReady    = "ready"
	StatusNotReady = "not ready"
	StatusAlive    = "alive"
)

// HealthResponse is the body of GET /health and the readiness details.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// ReadinessResponse is the body of GET /health/ready. Details is only set when
// the service is not ready.
type ReadinessResponse struct {
	Status  string          `json:"status"`
	Details *HealthResponse `json:"details,omitempty"`
}

// LivenessResponse is the body of GET /health/live.
type LivenessResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// FormatTimestamp renders t as RFC 3339 in UTC with nanosecond precision.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// ToHealthResponse converts a domain Snapshot to its wire form.
func ToHealthResponse(s domain.Snapshot) HealthResponse {
	services := s.Services()
	out := make(map[string]string, len(services))
	for name, st := range services {
		out[name] = st.String()
	}
	return HealthResponse{
		Status:    s.Overall().String(),
		Timestamp: FormatTimestamp(s.Timestamp()),
		Services:  out,
	}
}

// ToReadinessResponse converts a domain Snapshot to the readiness body.
func ToReadinessResponse(s domain.Snapshot) ReadinessResponse {
	if s.IsHealthy() {
		return ReadinessResponse{Status: StatusReady}
	}
	details := ToHealthResponse(s)
	return ReadinessResponse{Status: StatusNotReady, Details: &details}
}

// ToLivenessResponse builds the liveness body for the given instant.
func ToLivenessResponse(now time.Time) LivenessResponse {
	return LivenessResponse{Status: StatusAlive, Timestamp: FormatTimestamp(now)}
}
