// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/container-health/internal/adapters/http/dto"
	"github.com/jsamuelsen11/container-health/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/container-health/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/container-health/internal/domain"
)

// NewRouter creates an HTTP handler with the probe endpoints registered.
// Middleware is composed with middleware.Chain and applied globally, first
// argument outermost; nil entries are skipped. Unmatched paths and
// methods get RFC 9457 problem responses.
func NewRouter(
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Chain(middlewares...))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, domain.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, domain.ErrMethodNotAllowed)
	})

	r.Get("/health", healthHandler.Health)
	r.Get("/health/ready", healthHandler.Readiness)
	r.Get("/health/live", healthHandler.Liveness)

	return r
}
