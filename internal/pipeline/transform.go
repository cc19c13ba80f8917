package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/refuelradar/fuel-feed-etl/internal/domain"
	"github.com/refuelradar/fuel-feed-etl/internal/observability"
)

// FeedTransformer implements Transformer over the domain feed processor,
// turning one raw feed message into one output event per normalized station.
type FeedTransformer struct {
	processor *domain.Processor
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// NewTransformer creates a FeedTransformer.
func NewTransformer(processor *domain.Processor, logger *slog.Logger, metrics *observability.Metrics) *FeedTransformer {
	return &FeedTransformer{
		processor: processor,
		logger:    logger,
		metrics:   metrics,
	}
}

// Transform processes the feed document carried by raw. Fatal envelope or
// timestamp failures come back as errors; skipped stations are metered and
// reflected only in the event count.
func (t *FeedTransformer) Transform(ctx context.Context, raw domain.RawEvent) ([]domain.OutputEvent, error) {
	result, err := t.processor.Process(ctx, raw.Value)
	if err != nil {
		return nil, fmt.Errorf("process feed: %w", err)
	}

	stats := result.Stats
	t.metrics.StationsSkipped.Add(float64(stats.Skipped))
	t.metrics.PricesRetained.Add(float64(stats.PricesRetained))

	events := make([]domain.OutputEvent, len(result.Stations))
	for i, station := range result.Stations {
		data, err := json.Marshal(station)
		if err != nil {
			return nil, fmt.Errorf("serialize station %s: %w", station.SiteID, err)
		}
		events[i] = domain.OutputEvent{
			Key:   []byte(station.SiteID),
			Value: data,
			Headers: map[string]string{
				"brand":             station.Brand,
				"feed_last_updated": stats.LastUpdated,
				"processed_at":      stats.ProcessedAt.Format(time.RFC3339),
			},
		}
	}

	t.logger.Info("feed processed",
		"stations", stats.Stations,
		"normalized", stats.Normalized,
		"skipped", stats.Skipped,
		"feed_last_updated", stats.LastUpdated,
	)

	return events, nil
}
