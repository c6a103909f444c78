package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"

	"github.com/trvanh/storefront/internal/catalog"
	"github.com/trvanh/storefront/internal/config"
	handler "github.com/trvanh/storefront/internal/handler/http"
	"github.com/trvanh/storefront/internal/storage"
	filestorage "github.com/trvanh/storefront/internal/storage/file"
	"github.com/trvanh/storefront/internal/storage/memory"
	redisstorage "github.com/trvanh/storefront/internal/storage/redis"
	"github.com/trvanh/storefront/internal/store"
	"github.com/trvanh/storefront/pkg/health"
	"github.com/trvanh/storefront/pkg/middleware"
	"github.com/trvanh/storefront/pkg/tracing"
)

var (
	cartLinesGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "storefront_cart_lines",
		Help: "Number of distinct lines currently in the cart.",
	})
	cartUnitsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "storefront_cart_units",
		Help: "Total units across all cart lines.",
	})
	favoritesGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "storefront_favorites_total",
		Help: "Number of favorited products.",
	})
)

// App wires together all dependencies and runs the storefront service.
type App struct {
	cfg            *config.Config
	logger         *slog.Logger
	rdb            *redis.Client
	httpServer     *http.Server
	tracerShutdown func(context.Context) error
	unsubscribe    []func()
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize OpenTelemetry tracing.
	tracerShutdown, err := tracing.InitTracer(ctx, tracing.Config{
		ServiceName:    "storefront",
		ServiceVersion: "0.1.0",
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.TracingEndpoint,
		SampleRate:     cfg.TracingSample,
		Enabled:        cfg.TracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	healthHandler := health.NewHandler()

	// Select the persistence backend.
	var (
		adapter storage.Adapter
		rdb     *redis.Client
	)
	switch cfg.StorageBackend {
	case "redis":
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		logger.Info("connected to Redis",
			slog.String("addr", cfg.RedisAddr),
			slog.Int("db", cfg.RedisDB),
		)

		redisAdapter := redisstorage.New(rdb, 0)
		healthHandler.Register("redis", redisAdapter.Ping)
		adapter = redisAdapter

	case "file":
		fileAdapter, err := filestorage.New(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("init file storage: %w", err)
		}
		logger.Info("using file storage", slog.String("dir", cfg.DataDir))

		healthHandler.Register("storage", fileAdapter.Ping)
		adapter = fileAdapter

	default:
		logger.Info("using in-memory storage; state is lost on restart")
		adapter = memory.New()
	}

	// Build the dependency graph. Stores hydrate from the adapter here.
	cart := store.NewCartStore(ctx, adapter, logger)
	favorites := store.NewFavoriteStore(ctx, adapter, logger)
	session := store.NewSessionStore(ctx, adapter, logger)
	products := catalog.NewSeeded()

	// Keep the gauges in step with store state.
	unsubscribe := []func(){
		cart.Subscribe(func() {
			cartLinesGauge.Set(float64(len(cart.Items())))
			cartUnitsGauge.Set(float64(cart.ItemCount()))
		}),
		favorites.Subscribe(func() {
			favoritesGauge.Set(float64(favorites.ItemCount()))
		}),
	}
	cartLinesGauge.Set(float64(len(cart.Items())))
	cartUnitsGauge.Set(float64(cart.ItemCount()))
	favoritesGauge.Set(float64(favorites.ItemCount()))

	router := handler.NewRouter(handler.RouterConfig{
		Cart:      cart,
		Favorites: favorites,
		Session:   session,
		Catalog:   products,
		Health:    healthHandler,
		Logger:    logger,
		CORS: middleware.CORSConfig{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			Environment:    cfg.Environment,
		},
	})

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:            cfg,
		logger:         logger,
		rdb:            rdb,
		httpServer:     httpServer,
		tracerShutdown: tracerShutdown,
		unsubscribe:    unsubscribe,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	for _, cancelSub := range a.unsubscribe {
		cancelSub()
	}

	if err := a.tracerShutdown(shutdownCtx); err != nil {
		a.logger.Error("tracer shutdown error", slog.String("error", err.Error()))
	}

	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.logger.Error("redis close error", slog.String("error", err.Error()))
		}
	}

	a.logger.Info("application shutdown complete")
	return nil
}
