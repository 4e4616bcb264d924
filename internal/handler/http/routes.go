package http

import (
	"net/http"

	"github.com/MKhiriev/go-media-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Middleware order matters: the rate limiter keys on
// the address RealIP resolved, and the recovery middleware sits inside the
// logger so a recovered panic is still logged with its 500.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRecovery)
	router.Use(h.withMetrics)
	router.Use(h.secureHeaders())
	router.Use(h.corsHandler())
	router.Use(h.rateLimit(policyGeneral, h.limiters.General))

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	router.Get("/health", h.health)
	router.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	// routes without authorization
	router.Route("/api/auth", func(r chi.Router) {
		r.Use(h.rateLimit(policyAuth, h.limiters.Auth))
		r.With(validated[models.RegisterRequest](h.validator)).Post("/register", h.register)
		r.With(validated[models.LoginRequest](h.validator)).Post("/login", h.login)
	})

	router.Route("/api/users", func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/", h.listUsers)
		r.Get("/me", h.me)
		r.With(validated[models.UpdateUserRequest](h.validator)).Patch("/me", h.updateMe)
		r.With(validated[models.ChangePasswordRequest](h.validator)).Patch("/me/password", h.changePassword)
		r.Get("/{id}", h.getUser)
		r.With(validated[models.UpdateUserRequest](h.validator)).Patch("/{id}", h.updateUser)
		r.Delete("/{id}", h.deleteUser)
	})

	router.Route("/api/media", func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/upload", h.uploadMedia)
		r.Get("/", h.listMedia)
		r.Get("/{id}", h.getMedia)
		r.Delete("/{id}", h.deleteMedia)
	})

	return router
}
