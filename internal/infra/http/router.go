package http

import (
	"log/slog"
	"net/http"
	"net/netip"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/aliar-cursos/internal/infra/http/handlers"
	"github.com/xavierca1/aliar-cursos/internal/infra/http/middleware"
)

type RouterDependencies struct {
	Leads        *handlers.LeadHandler
	TrialClasses *handlers.TrialClassHandler
	Feedbacks    *handlers.FeedbackHandler
	Curriculos   *handlers.CurriculoHandler
	Auth         *handlers.AuthHandler
	Health       *handlers.HealthHandler

	Sessions   middleware.SessionParser
	Users      middleware.UserFinder
	CookieName string

	// Limiter vale para os POST públicos (formulários).
	Limiter     middleware.Limiter
	InternalKey string

	// TrustedProxies: só destes peers o X-Forwarded-For é lido.
	TrustedProxies []netip.Prefix

	AllowedOrigins   []string
	AllowCredentials bool
	Logger           *slog.Logger
}

func NewRouter(deps RouterDependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RealIP(deps.TrustedProxies))
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: deps.AllowCredentials,
		MaxAge:           300,
	}))
	r.Use(middleware.Auth(deps.Sessions, deps.Users, deps.CookieName))
	r.Use(middleware.Logger(deps.Logger))

	r.Get("/healthz", deps.Health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Get("/me", deps.Auth.Me)
			r.Post("/logout", deps.Auth.Logout)
		})

		r.With(middleware.RequireInternalKey(deps.InternalKey)).
			Post("/internal/sessions", deps.Auth.CreateSession)

		r.Route("/leads", func(r chi.Router) {
			r.With(middleware.RateLimit(deps.Limiter, "leads")).Post("/", deps.Leads.Create)
			r.Get("/", deps.Leads.List)
			r.Get("/export", deps.Leads.Export)
			r.Get("/{id}", deps.Leads.Get)
			r.Patch("/{id}", deps.Leads.Update)
			r.Delete("/{id}", deps.Leads.Delete)
		})

		r.Route("/trial-classes", func(r chi.Router) {
			r.Get("/slots", deps.TrialClasses.Slots)
			r.With(middleware.RateLimit(deps.Limiter, "trial-classes")).Post("/", deps.TrialClasses.Create)
			r.Get("/", deps.TrialClasses.List)
			r.Get("/{id}", deps.TrialClasses.Get)
			r.Patch("/{id}", deps.TrialClasses.Update)
			r.Delete("/{id}", deps.TrialClasses.Delete)
		})

		r.Route("/feedbacks", func(r chi.Router) {
			r.With(middleware.RateLimit(deps.Limiter, "feedbacks")).Post("/", deps.Feedbacks.Create)
			r.Get("/approved", deps.Feedbacks.ListApproved)
			r.Get("/", deps.Feedbacks.List)
			r.Get("/{id}", deps.Feedbacks.Get)
			r.Patch("/{id}", deps.Feedbacks.Update)
			r.Delete("/{id}", deps.Feedbacks.Delete)
		})

		r.Route("/curriculos", func(r chi.Router) {
			r.With(middleware.RateLimit(deps.Limiter, "curriculos")).Post("/", deps.Curriculos.Create)
			r.Get("/", deps.Curriculos.List)
			r.Get("/area/{area}", deps.Curriculos.ListByArea)
			r.Get("/{id}", deps.Curriculos.Get)
			r.Patch("/{id}", deps.Curriculos.Update)
			r.Delete("/{id}", deps.Curriculos.Delete)
		})
	})

	return r
}
