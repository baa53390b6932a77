package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/therealutkarshpriyadarshi/dashmpd/internal/cache"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/config"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/database"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/logging"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/manifest"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/metrics"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/monitoring"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/queue"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/storage"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/tracing"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/webhook"
	"github.com/therealutkarshpriyadarshi/dashmpd/pkg/models"
)

const prefetch = 8

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
	logger = logger.WithField("component", "worker")

	_, closer, err := tracing.InitTracer(cfg.Tracing)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize tracer")
	}
	defer closer.Close()

	// Initialize database
	db, err := database.New(cfg.Database)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

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

	if err := q.SetupDeadLetterQueue(); err != nil {
		logger.WithError(err).Fatal("Failed to set up dead letter queue")
	}

	repo := database.NewManifestRepository(db)

	// The worker only reads, so it publishes no events of its own
	svc := manifest.NewService(manifest.Config{
		MaxDocumentBytes: cfg.Manifest.MaxDocumentBytes,
		CacheTTL:         cfg.Manifest.CacheTTL,
		KeyPrefix:        cfg.Manifest.KeyPrefix,
	}, stor, repo, c, nil, logger)

	endpoints := make([]webhook.Endpoint, 0, len(cfg.Webhook.Endpoints))
	for _, ep := range cfg.Webhook.Endpoints {
		endpoints = append(endpoints, webhook.Endpoint{URL: ep.URL, Secret: ep.Secret, Events: ep.Events})
	}
	notifier := webhook.NewNotifier(endpoints, cfg.Webhook.Timeout, logger)

	// Webhooks go out after the cache is warm so subscribers read the new revision
	handle := func(ctx context.Context, event *models.ManifestEvent) error {
		if err := svc.WarmCache(ctx, event); err != nil {
			return err
		}
		return notifier.Notify(ctx, event)
	}

	mon := monitoring.NewMonitor(q, repo, monitoring.Thresholds{
		QueueDepth: cfg.Monitor.MaxQueueDepth,
		DLQDepth:   cfg.Monitor.MaxDLQDepth,
	}, logger)

	var metricsServer *metrics.Server
	if cfg.Metrics.Enabled {
		metricsServer = metrics.NewServer(cfg.Metrics.Port).WithLogger(logger).WithHealth(mon.Check)
		go func() {
			if err := metricsServer.Start(); err != nil {
				logger.WithError(err).Error("Metrics server stopped")
			}
		}()
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("Shutting down worker gracefully...")
		cancel()
	}()

	go mon.Run(ctx, cfg.Monitor.Interval)

	logger.Infof("Worker started with %d webhook endpoints, waiting for manifest events...", len(endpoints))
	if err := q.ConsumeEvents(ctx, prefetch, handle); err != nil {
		logger.WithError(err).Fatal("Failed to consume events")
	}

	// Wait for shutdown
	<-ctx.Done()

	if metricsServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Error("Metrics server forced to shutdown")
		}
	}

	logger.Info("Worker stopped")
}
