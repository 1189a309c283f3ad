package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"heroes-service/internal/http/middleware"
	"heroes-service/internal/logging"
)

const (
	msgInvalidJSON      = "Invalid JSON"
	msgInternal         = "internal error"
	msgNotFound         = "not found"
	msgMethodNotAllowed = "method not allowed"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get("X-Request-ID")
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeStoreError reports a repository fault as a 500 and logs the cause.
func writeStoreError(w http.ResponseWriter, r *http.Request, msg string, err error, logger *slog.Logger) {
	logging.Error(loggerFromContext(r, logger), msg, err)
	writeError(w, r, http.StatusInternalServerError, msgInternal, logger)
}

func writeSuccess(w http.ResponseWriter, logger *slog.Logger) {
	writeJSON(w, http.StatusOK, successResponse{Success: true}, logger)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}

type successResponse struct {
	Success bool `json:"success"`
}
