package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/refuelradar/fuel-feed-etl/internal/adapter/http"
	kafkaadapter "github.com/refuelradar/fuel-feed-etl/internal/adapter/kafka"
	"github.com/refuelradar/fuel-feed-etl/internal/config"
	"github.com/refuelradar/fuel-feed-etl/internal/domain"
	"github.com/refuelradar/fuel-feed-etl/internal/observability"
	"github.com/refuelradar/fuel-feed-etl/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	// Brand table is built once here and shared read-only from then on.
	var extensions map[string]string
	if cfg.BrandTablePath != "" {
		extensions, err = domain.LoadBrandExtensions(cfg.BrandTablePath)
		if err != nil {
			logger.Error("failed to load brand table extensions", "path", cfg.BrandTablePath, "error", err)
			os.Exit(1)
		}
		logger.Info("brand table extended", "path", cfg.BrandTablePath, "entries", len(extensions))
	}
	brands := domain.NewBrandTable(extensions)

	var opts []domain.NormalizerOption
	if cfg.EmptyBrandReject {
		opts = append(opts, domain.WithEmptyBrandRejection())
	}
	normalizer := domain.NewNormalizer(brands, opts...)
	processor := domain.NewProcessor(normalizer, logger, cfg.NormalizeWorkers)

	reader := kafkaadapter.NewReader(cfg, logger)
	writer := kafkaadapter.NewWriter(cfg, logger)
	transformer := pipeline.NewTransformer(processor, logger, metrics)

	p := pipeline.New(reader, transformer, writer, logger, metrics, cfg.BatchSize)

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start ETL pipeline.
	go func() {
		if err := p.Run(ctx); err != nil {
			logger.Error("pipeline error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if err := reader.Close(); err != nil {
		logger.Error("kafka reader close error", "error", err)
	}
	if err := writer.Close(); err != nil {
		logger.Error("kafka writer close error", "error", err)
	}

	logger.Info("shutdown complete")
}
