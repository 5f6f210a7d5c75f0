package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/swiss-ladder/internal/database"
	"github.com/mauv0809/swiss-ladder/internal/match"
	"github.com/mauv0809/swiss-ladder/internal/roster"
)

// ContextKey is a custom type to avoid key collisions in context.
type ContextKey string

const (
	DryRunKey ContextKey = "dryRun"
)

// Pinger reports whether the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// IsDryRunFromContext is a helper to safely retrieve the dry_run flag from the request context.
func IsDryRunFromContext(r *http.Request) bool {
	dryRun, ok := r.Context().Value(DryRunKey).(bool)
	return ok && dryRun
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, match.ErrSamePlayer):
		return http.StatusBadRequest
	case errors.Is(err, roster.ErrPlayerNotFound), errors.Is(err, match.ErrPlayerNotFound):
		return http.StatusNotFound
	case errors.Is(err, database.ErrConnection):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError logs err and answers with its status. Storage details are not leaked to clients.
func writeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	status := statusFor(err)
	logger := log.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		logger.Error(msg, "error", err)
		writeJSON(w, status, errorResponse{Error: msg})
		return
	}
	logger.Warn(msg, "error", err, "status", status)
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
