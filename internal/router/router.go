package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/tripforge/tripforge-api/internal/api/document"
	"github.com/tripforge/tripforge-api/internal/api/share"
	"github.com/tripforge/tripforge-api/internal/api/trip"
)

// Config contains the handlers the router needs. Server-wide middleware
// (logger, requestID, recoverer) is applied before mounting this router in
// main.go.
type Config struct {
	TripHandler     *trip.Handler
	DocumentHandler *document.Handler
	ShareHandler    *share.Handler
}

// SetupRouter wires the public API surface. Every endpoint is public; the
// frontend is a static marketing site with no accounts.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate-trip", cfg.TripHandler.GenerateTrip)
		r.Post("/generate-pdf", cfg.DocumentHandler.GeneratePDF)
		r.Get("/health", cfg.TripHandler.Health)

		r.Post("/share", cfg.ShareHandler.CreateShare)
		r.Get("/share/{shareID}", cfg.ShareHandler.GetShare)
	})

	return r
}
