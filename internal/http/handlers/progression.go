package handlers

import (
	nethttp "net/http"

	domainprogression "heroes-service/internal/domain/progression"
	"heroes-service/internal/logging"
)

type resetResponse struct {
	Success     bool                          `json:"success"`
	Progression domainprogression.Progression `json:"progression"`
}

// GetProgression returns the stored progression or its defaults.
func (h *Handler) GetProgression(w nethttp.ResponseWriter, r *nethttp.Request) {
	p, err := h.progression.Get()
	if err != nil {
		writeStoreError(w, r, "failed to load progression", err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, p, h.logger)
}

// UpdateProgression overwrites the recognized keys present in the body.
func (h *Handler) UpdateProgression(w nethttp.ResponseWriter, r *nethttp.Request) {
	var patch domainprogression.Patch
	if err := decodeObject(r, &patch); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, msgInvalidJSON, h.logger)
		return
	}
	if err := h.progression.Update(patch); err != nil {
		writeStoreError(w, r, "failed to update progression", err, h.logger)
		return
	}
	writeSuccess(w, h.logger)
}

// ResetProgression restores the defaults and echoes them back.
func (h *Handler) ResetProgression(w nethttp.ResponseWriter, r *nethttp.Request) {
	p, err := h.progression.Reset()
	if err != nil {
		writeStoreError(w, r, "failed to reset progression", err, h.logger)
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "progression reset")
	writeJSON(w, nethttp.StatusOK, resetResponse{Success: true, Progression: p}, h.logger)
}
