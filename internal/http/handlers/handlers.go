package handlers

import (
	"html/template"
	"log/slog"
	nethttp "net/http"

	domainheroes "heroes-service/internal/domain/heroes"
	domainprogression "heroes-service/internal/domain/progression"
	"heroes-service/internal/logging"
)

// HeroRepository is the roster surface the handlers need.
type HeroRepository interface {
	List() ([]domainheroes.Hero, error)
	Add() (domainheroes.Hero, error)
	Update(id, field, value string) error
	Delete(id string) error
}

// ProgressionRepository is the progression surface the handlers need.
type ProgressionRepository interface {
	Get() (domainprogression.Progression, error)
	Update(patch domainprogression.Patch) error
	Reset() (domainprogression.Progression, error)
}

// Handler wires HTTP routes to the hero and progression repositories.
type Handler struct {
	heroes      HeroRepository
	progression ProgressionRepository
	logger      *slog.Logger
	readyFn     func() error
	page        *template.Template
}

// NewHandler constructs a Handler with defaults. readyFn may be nil.
func NewHandler(heroes HeroRepository, progression ProgressionRepository, logger *slog.Logger, readyFn func() error) *Handler {
	return &Handler{
		heroes:      heroes,
		progression: progression,
		logger:      logger,
		readyFn:     readyFn,
		page:        indexTemplate,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the backing documents can be read.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.readyFn != nil {
		if err := h.readyFn(); err != nil {
			logging.Warn(loggerFromContext(r, h.logger), "readiness check failed", "error", err)
			writeError(w, r, nethttp.StatusServiceUnavailable, "not ready", h.logger)
			return
		}
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// NotFound answers unknown routes with a JSON error.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, msgNotFound, h.logger)
}

// MethodNotAllowed answers known routes hit with the wrong method.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, msgMethodNotAllowed, h.logger)
}
