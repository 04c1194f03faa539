package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// resolved configuration, read-only
	router.Get("/brand", h.getBrand)
	router.Get("/api/config", h.getConfig)
	router.Get("/api/config/buttons", h.getButtons)
	router.Get("/api/config/buttons/{view}", h.getButtonView)

	router.Get("/api/version", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
