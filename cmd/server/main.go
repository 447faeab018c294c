package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/transit-traffic-service/internal/adapter/httpapi"
	kafkaadapter "github.com/couchcryptid/transit-traffic-service/internal/adapter/kafka"
	"github.com/couchcryptid/transit-traffic-service/internal/config"
	"github.com/couchcryptid/transit-traffic-service/internal/domain"
	"github.com/couchcryptid/transit-traffic-service/internal/observability"
	"github.com/couchcryptid/transit-traffic-service/internal/routing"
	"github.com/couchcryptid/transit-traffic-service/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	observations := store.NewMemoryStore()
	catalog := routing.NewCatalogPlanner(domain.Roads())
	simulated := routing.NewSimulatedPlanner()

	// Observation event publishing (feature-flagged via KAFKA_ENABLED).
	var publisher httpapi.ObservationPublisher
	var closePublisher func() error
	if cfg.KafkaEnabled {
		p := kafkaadapter.NewPublisher(cfg, logger)
		publisher = p
		closePublisher = p.Close
		metrics.KafkaEnabled.Set(1)
		logger.Info("observation publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	} else {
		logger.Info("observation publishing disabled")
	}

	api := httpapi.NewAPI(httpapi.APIOptions{
		Store:          observations,
		Catalog:        catalog,
		Simulated:      simulated,
		Calendar:       domain.DefaultEvents(),
		Fallback:       cfg.ScoreFallback,
		ReportLocation: cfg.ReportLocation,
		Publisher:      publisher,
		Logger:         logger,
		Metrics:        metrics,
	})

	srv := httpapi.NewServer(cfg.HTTPAddr, api, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if closePublisher != nil {
		if err := closePublisher(); err != nil {
			logger.Error("kafka publisher close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
