package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/container-health/internal/adapters/http/dto"
	"github.com/jsamuelsen11/container-health/internal/domain"
	"github.com/jsamuelsen11/container-health/internal/platform/logging"
)

// writeJSON marshals v before touching the response, so an encoding failure
// can still become a clean 500 problem response instead of a truncated body.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.String("operation", "handlers.writeJSON"),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		dto.WriteErrorResponse(w, r, domain.ErrSerialization)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}
