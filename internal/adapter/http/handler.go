package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adcap/internal/core/port"
)

// Handler is the inbound HTTP adapter for event ingestion. It holds the
// Enforcer to decide admissions and a logger for structured logging.
// Routes are registered on a chi.Router for convenient method handling.
type Handler struct {
	svc    port.Enforcer
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. It accepts an
// Enforcer implementation and a logger.
func NewHandler(svc port.Enforcer, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/events", h.handleIngestEvent)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
