package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-session-auth/internal/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version", h.getServerVersion)
	router.Get("/api/info", h.getServerInfo)
	if h.gatherer != nil {
		router.Method(http.MethodGet, "/metrics", metrics.Handler(h.gatherer))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/v1/users", h.register)
		r.Post("/v1/tokens", h.login)
		r.Post("/v1/tokens/validate", h.validateToken)
	})

	// routes with bearer authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Delete("/v1/tokens", h.logout)
		r.Delete("/v1/tokens/all", h.logoutAll)
		r.Get("/v1/users/me", h.me)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
