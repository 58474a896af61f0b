package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"mortgage-affordability/config"
	httpLayer "mortgage-affordability/http"
	"mortgage-affordability/observability"
	"mortgage-affordability/repository"
	"mortgage-affordability/service"
	"mortgage-affordability/tables"
)

func serveCmd() *cobra.Command {
	var port int
	var tablesFile string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			if cmd.Flags().Changed("port") {
				cfg.HTTPPort = port
			}
			if cmd.Flags().Changed("tables") {
				cfg.RateTablesFile = tablesFile
			}
			return serve(cmd.Context(), cfg)
		},
	}

	c.Flags().IntVarP(&port, "port", "p", 8080, "HTTP port (overrides HTTP_PORT)")
	c.Flags().StringVarP(&tablesFile, "tables", "t", "", "YAML rate table override (overrides RATE_TABLES_FILE)")
	return c
}

func serve(ctx context.Context, cfg config.Config) error {
	logger := observability.InitLogger(observability.LogConfig{Level: cfg.LogLevel, Format: cfg.LogFormat})
	metrics := observability.NewMetrics()

	set, err := loadTables(cfg.RateTablesFile)
	if err != nil {
		return err
	}

	cache, closeCache, err := newCache(cfg, logger)
	if err != nil {
		return err
	}
	defer closeCache()

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	services := httpLayer.NewServices(service.Dependencies{
		Tables:  set,
		Cache:   cache,
		Logger:  logger,
		Metrics: metrics,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr(),
		Handler:      httpLayer.NewRouter(services, rateLimiter, logger, metrics),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		return fmt.Errorf("starting server: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("server exited")
	return nil
}

func loadTables(path string) (tables.Set, error) {
	if path == "" {
		return tables.Default(), nil
	}
	return tables.LoadFile(path)
}

// newCache prefers Redis when configured and falls back to memory if it is
// unreachable, so the calculator still serves requests.
func newCache(cfg config.Config, logger *slog.Logger) (repository.CacheRepository, func(), error) {
	if cfg.RedisAddr == "" {
		return repository.NewMemoryCache(), func() {}, nil
	}

	redisCache, err := repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
	if err != nil {
		logger.Warn("redis unavailable, using in-memory cache", "addr", cfg.RedisAddr, "error", err)
		return repository.NewMemoryCache(), func() {}, nil
	}
	logger.Info("using redis cache", "addr", cfg.RedisAddr, "ttl", cfg.CacheTTL)
	return redisCache, func() {
		if err := redisCache.Close(); err != nil {
			logger.Warn("closing redis", "error", err)
		}
	}, nil
}
