package handlers

import (
	"log/slog"
	nethttp "net/http"

	"heroes-service/internal/logging"
)

// ListHeroes returns the whole roster.
func (h *Handler) ListHeroes(w nethttp.ResponseWriter, r *nethttp.Request) {
	heroes, err := h.heroes.List()
	if err != nil {
		writeStoreError(w, r, "failed to list heroes", err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, heroes, h.logger)
}

// AddHero creates a blank hero and returns it.
func (h *Handler) AddHero(w nethttp.ResponseWriter, r *nethttp.Request) {
	hero, err := h.heroes.Add()
	if err != nil {
		writeStoreError(w, r, "failed to add hero", err, h.logger)
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "hero added", slog.String(logging.FieldHeroID, hero.ID))
	writeJSON(w, nethttp.StatusOK, hero, h.logger)
}

// UpdateHero sets one field on a hero. Unknown ids and fields still succeed.
func (h *Handler) UpdateHero(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req updateHeroRequest
	if err := decodeObject(r, &req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, msgInvalidJSON, h.logger)
		return
	}
	if req.ID == nil {
		writeError(w, r, nethttp.StatusBadRequest, "missing id", h.logger)
		return
	}
	if req.Field == nil {
		writeError(w, r, nethttp.StatusBadRequest, "missing field", h.logger)
		return
	}

	if err := h.heroes.Update(*req.ID, *req.Field, string(req.Value)); err != nil {
		writeStoreError(w, r, "failed to update hero", err, h.logger)
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "hero updated",
		slog.String(logging.FieldHeroID, *req.ID),
		slog.String("field", *req.Field),
	)
	writeSuccess(w, h.logger)
}

// DeleteHero removes a hero. Unknown ids still succeed.
func (h *Handler) DeleteHero(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req deleteHeroRequest
	if err := decodeObject(r, &req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, msgInvalidJSON, h.logger)
		return
	}
	if req.ID == nil {
		writeError(w, r, nethttp.StatusBadRequest, "missing id", h.logger)
		return
	}

	if err := h.heroes.Delete(*req.ID); err != nil {
		writeStoreError(w, r, "failed to delete hero", err, h.logger)
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "hero deleted", slog.String(logging.FieldHeroID, *req.ID))
	writeSuccess(w, h.logger)
}
