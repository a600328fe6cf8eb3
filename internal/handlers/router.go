package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Routes builds the HTTP router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.RateLimitMiddleware)
		r.Use(middleware.Timeout(60 * time.Second))

		r.Get("/platforms", h.ListPlatforms)
		r.Get("/seasons/{platform}/current", h.GetCurrentSeason)

		r.Route("/players/{platform}", func(r chi.Router) {
			r.Get("/by-name/{nickname}", h.SearchPlayer)
			r.Get("/{accountID}/seasons/{seasonID}", h.GetPlayerSeason)
			r.Get("/{accountID}/lifetime", h.GetLifetimeStats)
		})

		r.Get("/leaderboards/{platform}/{gameMode}", h.GetLeaderboard)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", h.CreateSession)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetSession)
				r.Delete("/", h.DeleteSession)
				r.Put("/platform", h.SetSessionPlatform)
				r.Post("/search", h.SessionSearch)
				r.Post("/season", h.SessionLoadSeason)
				r.Post("/leaderboard", h.SessionLoadLeaderboard)
			})
		})
	})

	return r
}
