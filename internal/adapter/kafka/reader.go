// Package kafka adapts the pipeline's extractor and loader interfaces onto
// segmentio/kafka-go.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/refuelradar/fuel-feed-etl/internal/config"
	"github.com/refuelradar/fuel-feed-etl/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Reader consumes raw feed messages from the source topic as part of a
// consumer group. It implements pipeline.BatchExtractor. Offsets are
// committed explicitly through each event's Commit callback, never on fetch.
type Reader struct {
	reader        *kafkago.Reader
	logger        *slog.Logger
	flushInterval time.Duration
}

// NewReader creates a consumer-group reader for the configured source topic.
func NewReader(cfg *config.Config, logger *slog.Logger) *Reader {
	flushInterval := cfg.BatchFlushInterval
	if flushInterval <= 0 {
		flushInterval = 500 * time.Millisecond
	}
	r := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  cfg.KafkaBrokers,
		Topic:    cfg.KafkaSourceTopic,
		GroupID:  cfg.KafkaGroupID,
		MinBytes: 1,
		MaxBytes: 10e6,
		MaxWait:  flushInterval,
	})
	return &Reader{reader: r, logger: logger, flushInterval: flushInterval}
}

// ExtractBatch fetches up to batchSize messages. The first fetch blocks on
// ctx; once the batch is non-empty each further fetch waits at most the
// flush interval, so a partially filled batch is returned instead of
// stalling on a quiet topic.
func (r *Reader) ExtractBatch(ctx context.Context, batchSize int) ([]domain.RawEvent, error) {
	events := make([]domain.RawEvent, 0, batchSize)

	for len(events) < batchSize {
		msg, err := r.fetchNext(ctx, len(events) > 0)
		if err != nil {
			if len(events) > 0 {
				// Flush what we have; the caller sees the next error on its own.
				return events, nil
			}
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("source topic closed: %w", err)
			}
			return nil, fmt.Errorf("fetch message: %w", err)
		}

		raw := mapMessageToRawEvent(msg)
		raw.Commit = func(ctx context.Context) error {
			return r.reader.CommitMessages(ctx, msg)
		}
		events = append(events, raw)
	}

	return events, nil
}

// fetchNext reads one message, bounding the wait by the flush interval when
// the batch already has content.
func (r *Reader) fetchNext(ctx context.Context, bounded bool) (kafkago.Message, error) {
	if !bounded {
		return r.reader.FetchMessage(ctx)
	}
	fetchCtx, cancel := context.WithTimeout(ctx, r.flushInterval)
	defer cancel()
	return r.reader.FetchMessage(fetchCtx)
}

// Close shuts down the underlying consumer group member.
func (r *Reader) Close() error {
	return r.reader.Close()
}

// mapMessageToRawEvent converts a Kafka message into the domain
// representation. The Commit callback is attached by the caller.
func mapMessageToRawEvent(msg kafkago.Message) domain.RawEvent {
	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	return domain.RawEvent{
		Key:       msg.Key,
		Value:     msg.Value,
		Headers:   headers,
		Topic:     msg.Topic,
		Partition: msg.Partition,
		Offset:    msg.Offset,
		Timestamp: msg.Time,
	}
}
