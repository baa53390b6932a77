package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/therealutkarshpriyadarshi/dashmpd/internal/cache"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/config"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/database"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/logging"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/manifest"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/metrics"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/middleware"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/queue"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/storage"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/tracing"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	_, closer, err := tracing.InitTracer(cfg.Tracing)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize tracer")
	}
	defer closer.Close()

	middleware.SetJWTSecret(cfg.Auth.JWTSecret)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database
	db, err := database.New(cfg.Database)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		logger.WithError(err).Fatal("Failed to migrate database")
	}

	// Initialize storage
	stor, err := storage.New(cfg.Storage)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize storage")
	}

	// Initialize cache
	c, err := cache.NewCache(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to Redis")
	}
	defer c.Close()

	// Initialize queue
	q, err := queue.New(cfg.Queue, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to queue")
	}
	defer q.Close()

	profiles, err := cfg.Manifest.Profiles()
	if err != nil {
		logger.WithError(err).Fatal("Invalid manifest configuration")
	}

	svc := manifest.NewService(manifest.Config{
		MaxDocumentBytes: cfg.Manifest.MaxDocumentBytes,
		CacheTTL:         cfg.Manifest.CacheTTL,
		KeyPrefix:        cfg.Manifest.KeyPrefix,
		DefaultProfiles:  profiles,
	}, stor, database.NewManifestRepository(db), c, q, logger)

	api := &API{
		manifests: svc,
		checks: map[string]healthCheck{
			"database": db.Health,
			"storage":  stor.Health,
			"cache":    c.Ping,
		},
		maxDocBytes: cfg.Manifest.MaxDocumentBytes,
		logger:      logger,
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	go limiter.Cleanup(ctx, time.Minute, 10*time.Minute)

	router := setupRouter(api, routeOptions{
		limiter:          limiter,
		quota:            c,
		publishPerMinute: cfg.RateLimit.PublishPerMinute,
	})

	// Metrics server
	var metricsServer *metrics.Server
	if cfg.Metrics.Enabled {
		metricsServer = metrics.NewServer(cfg.Metrics.Port).WithLogger(logger)
		go func() {
			if err := metricsServer.Start(); err != nil {
				logger.WithError(err).Error("Metrics server stopped")
			}
		}()
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Infof("Starting API server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	cancel()

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}
	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Error("Metrics server forced to shutdown")
		}
	}

	logger.Info("Server stopped")
}
