package router

import (
	"net/http"

	"menuproxy-api/internal/handler"
	"menuproxy-api/internal/middleware"
	"menuproxy-api/pkg/apierror"
	"menuproxy-api/pkg/response"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Config holds the configuration for creating a router.
type Config struct {
	Handler        *handler.Handler
	CatalogHandler *handler.CatalogHandler
	WebhookHandler *handler.WebhookHandler
}

// New creates and configures the HTTP router.
func New(cfg Config) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware stack (applies to ALL routes)
	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, apierror.NotFound(""))
	})

	if cfg.Handler != nil {
		r.Get("/api/status", cfg.Handler.Status)
	}

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.Handler != nil {
			r.Get("/health", cfg.Handler.Health)
			r.Get("/ready", cfg.Handler.Ready)
		}

		if cfg.CatalogHandler != nil {
			r.Get("/locations", cfg.CatalogHandler.Locations)
			r.Get("/catalog/{location_id}", cfg.CatalogHandler.Catalog)
			r.Get("/categories/{location_id}", cfg.CatalogHandler.Categories)
		}

		if cfg.WebhookHandler != nil {
			r.Post("/webhooks/catalog", cfg.WebhookHandler.CatalogEvent)
		}
	})

	return r
}
