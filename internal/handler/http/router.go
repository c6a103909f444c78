package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/trvanh/storefront/internal/catalog"
	"github.com/trvanh/storefront/internal/store"
	"github.com/trvanh/storefront/pkg/health"
	"github.com/trvanh/storefront/pkg/middleware"
)

// RouterConfig carries the dependencies of the HTTP surface.
type RouterConfig struct {
	Cart      *store.CartStore
	Favorites *store.FavoriteStore
	Session   *store.SessionStore
	Catalog   *catalog.Catalog
	Health    *health.Handler
	Logger    *slog.Logger
	CORS      middleware.CORSConfig
}

// NewRouter creates a chi router with all storefront routes registered.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(cfg.Logger))
	r.Use(middleware.PrometheusMetrics("storefront"))
	r.Use(middleware.Tracing("storefront"))
	r.Use(middleware.RequestLogger(cfg.Logger))
	r.Use(middleware.CORS(cfg.CORS))

	// Health check endpoints
	r.Get("/health/live", cfg.Health.LivenessHandler())
	r.Get("/health/ready", cfg.Health.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	cartHandler := NewCartHandler(cfg.Cart, cfg.Logger)
	favoritesHandler := NewFavoritesHandler(cfg.Favorites, cfg.Logger)
	catalogHandler := NewCatalogHandler(cfg.Catalog, cfg.Logger)
	sessionHandler := NewSessionHandler(cfg.Session, cfg.Logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Delete("/", cartHandler.ClearCart)
			r.Get("/summary", cartHandler.GetSummary)

			r.Post("/items", cartHandler.AddItem)
			// Line keys may contain slashes, so the key is a wildcard tail.
			r.Put("/items/*", cartHandler.UpdateQuantity)
			r.Delete("/items/*", cartHandler.RemoveItem)
		})

		r.Route("/favorites", func(r chi.Router) {
			r.Get("/", favoritesHandler.List)
			r.Post("/toggle", favoritesHandler.Toggle)
			r.Delete("/{productId}", favoritesHandler.Remove)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", catalogHandler.List)
			r.Get("/categories", catalogHandler.Categories)
			r.Get("/{productId}", catalogHandler.Get)
		})

		r.Route("/session", func(r chi.Router) {
			r.Get("/", sessionHandler.Get)
			r.Post("/login", sessionHandler.Login)
			r.Delete("/", sessionHandler.Logout)
		})
	})

	return r
}
