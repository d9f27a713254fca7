// Package handler serves the portal's pages: home, login, registration and
// the three role dashboards. Every error is converted to a flash message and
// the page stays interactive; nothing is retried and nothing is fatal.
package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"hospital-portal/internal/api"
	"hospital-portal/internal/directory"
	"hospital-portal/internal/lifecycle"
	"hospital-portal/internal/middleware"
	"hospital-portal/internal/model"
	"hospital-portal/internal/observability/metrics"
	"hospital-portal/internal/session"
	"hospital-portal/pkg/logging"
)

type Handler struct {
	sessions  *session.Store
	directory *directory.Service
	lifecycle *lifecycle.Service
	metrics   *metrics.PortalMetrics
	logger    *logging.Logger
}

func New(sessions *session.Store, dir *directory.Service, lc *lifecycle.Service, m *metrics.PortalMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		sessions:  sessions,
		directory: dir,
		lifecycle: lc,
		metrics:   m,
		logger:    logger,
	}
}

// Routes builds the portal router. The rate limiter covers only the login
// and registration form posts.
func (h *Handler) Routes(rl *middleware.RateLimiter) http.Handler {
	r := chi.NewRouter()
	r.Use(
		chimw.RealIP,
		chimw.Recoverer,
	)

	r.Get("/", h.home)
	r.Get("/login", h.loginPage)
	r.Get("/register", h.registerPage)
	r.Post("/logout", h.logout)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(rl))
		r.Post("/login", h.login)
		r.Post("/register", h.register)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireRole(h.sessions, model.RoleAdmin))
		r.Get("/", h.adminDashboard)
		r.Post("/doctors", h.addDoctor)
		r.Post("/doctors/{id}/delete", h.deleteDoctor)
		r.Post("/appointments/{id}/cancel", h.adminCancel)
	})

	r.Route("/doctor", func(r chi.Router) {
		r.Use(middleware.RequireRole(h.sessions, model.RoleDoctor))
		r.Get("/", h.doctorDashboard)
		r.Post("/appointments/{id}/cancel", h.doctorCancel)
	})

	r.Route("/patient", func(r chi.Router) {
		r.Use(middleware.RequireRole(h.sessions, model.RolePatient))
		r.Get("/", h.patientDashboard)
		r.Post("/appointments", h.book)
		r.Post("/appointments/{id}/cancel", h.patientCancel)
	})

	return r
}

// userMessage maps the error taxonomy to what the page shows. Transport
// failures collapse to a generic retry hint; validation and credential
// errors keep their own wording.
func userMessage(err error, fallback string) string {
	var ve *model.ValidationError
	switch {
	case errors.As(err, &ve):
		return ve.Msg
	case errors.Is(err, api.ErrNotFound):
		return "User not found"
	case errors.Is(err, session.ErrInvalidCredentials):
		return "Incorrect password"
	default:
		return fallback
	}
}
