package handlers

import (
	"bytes"
	"embed"
	"html/template"
	nethttp "net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

type indexPage struct {
	Title string
}

// Index renders the single-page frontend.
func (h *Handler) Index(w nethttp.ResponseWriter, r *nethttp.Request) {
	var buf bytes.Buffer
	if err := h.page.Execute(&buf, indexPage{Title: "Hero Roster"}); err != nil {
		writeStoreError(w, r, "failed to render index", err, h.logger)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(nethttp.StatusOK)
	_, _ = buf.WriteTo(w)
}
