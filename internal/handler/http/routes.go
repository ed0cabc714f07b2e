package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	if h.trustProxy {
		router.Use(middleware.RealIP)
	}
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, h.withMetrics)

	router.Get("/metrics", h.metrics.Handler().ServeHTTP)

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/api/version", h.getServerVersion)

		// password policy endpoints, rate limited per client IP
		r.Group(func(r chi.Router) {
			r.Use(h.withRateLimit)

			r.Post("/api/password/strength", h.evaluate)
			r.Post("/api/password/generate", h.generate)
			r.Get("/api/password/policy", h.policy)

			r.Post("/api/user/register", h.register)
			r.Post("/api/user/login", h.login)
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Put("/api/user/password", h.changePassword)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
