package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/whisperlink-dev/whisperlink/internal/middleware/metrics"
	"github.com/whisperlink-dev/whisperlink/internal/setup"
)

// New creates and configures the chi router with all the routes.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(metrics.Middleware)

	allowedOrigins := deps.Config.Public.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	h := deps.Handler

	r.Route("/v1", func(r chi.Router) {
		r.Get("/wall", h.GetWall)
		r.Post("/posts", h.CreatePost)
		r.Post("/posts/{post}/responses", h.CreateResponse)
		r.Get("/posts/{post}/suggestions", h.GetSuggestions)
		r.Post("/recluster", h.Recluster)
	})

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
