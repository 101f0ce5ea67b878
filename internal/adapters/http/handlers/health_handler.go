// Package handlers implements the HTTP probe endpoints. Every handler reads
// the status store exactly once and never runs a probe itself.
package handlers

import (
	"net/http"
	"time"

	"github.com/jsamuelsen11/container-health/internal/adapters/http/dto"
	"github.com/jsamuelsen11/container-health/internal/ports"
)

// HealthHandler serves the aggregate, readiness, and liveness endpoints.
type HealthHandler struct {
	store ports.StatusReader
	now   func() time.Time
}

// NewHealthHandler creates a HealthHandler backed by the given store. now
// supplies the liveness timestamp; nil defaults to time.Now.
func NewHealthHandler(store ports.StatusReader, now func() time.Time) *HealthHandler {
	if now == nil {
		now = time.Now
	}
	return &HealthHandler{store: store, now: now}
}

// Health handles GET /health. Returns the full snapshot with 200 when overall
// healthy, 503 otherwise.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Read()
	writeJSON(w, r, statusFor(snap.IsHealthy()), dto.ToHealthResponse(snap))
}

// Readiness handles GET /health/ready. Returns {"status":"ready"} with 200, or
// "not ready" plus the snapshot as details with 503.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Read()
	writeJSON(w, r, statusFor(snap.IsHealthy()), dto.ToReadinessResponse(snap))
}

// Liveness handles GET /health/live. Always 200: a process that can answer is
// alive, whatever its dependencies say.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.ToLivenessResponse(h.now()))
}

func statusFor(healthy bool) int {
	if healthy {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}
