package http

import (
	nethttp "net/http"

	"github.com/gorilla/mux"

	"heroes-service/internal/http/handlers"
)

// NewRouter registers the hero, progression and probe routes.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = nethttp.HandlerFunc(handler.NotFound)
	r.MethodNotAllowedHandler = nethttp.HandlerFunc(handler.MethodNotAllowed)

	r.HandleFunc("/", handler.Index).Methods(nethttp.MethodGet)
	r.HandleFunc("/health", handler.Health).Methods(nethttp.MethodGet)
	r.HandleFunc("/ready", handler.Ready).Methods(nethttp.MethodGet)

	r.HandleFunc("/heroes", handler.ListHeroes).Methods(nethttp.MethodGet)
	r.HandleFunc("/add", handler.AddHero).Methods(nethttp.MethodPost)
	r.HandleFunc("/update", handler.UpdateHero).Methods(nethttp.MethodPost)
	r.HandleFunc("/delete", handler.DeleteHero).Methods(nethttp.MethodPost)

	r.HandleFunc("/progression", handler.GetProgression).Methods(nethttp.MethodGet)
	r.HandleFunc("/progression/update", handler.UpdateProgression).Methods(nethttp.MethodPost)
	r.HandleFunc("/progression/reset", handler.ResetProgression).Methods(nethttp.MethodPost)
	return r
}
