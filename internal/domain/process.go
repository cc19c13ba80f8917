package domain

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// FeedStats summarizes one processed feed.
type FeedStats struct {
	LastUpdated    string // converted feed timestamp, empty for an empty feed
	Stations       int    // raw records in the envelope
	Normalized     int
	Skipped        int
	PricesRetained int
	ProcessedAt    time.Time
}

// Result is the output of processing one raw feed: the ordered collection of
// normalized stations plus processing stats.
type Result struct {
	Stations []NormalizedStation
	Stats    FeedStats
}

// Processor runs the full ingestion pipeline over one raw feed document:
// envelope decode, one-shot timestamp conversion, then per-station
// normalization with skip-and-continue semantics.
type Processor struct {
	normalizer *Normalizer
	logger     *slog.Logger
	workers    int
}

// NewProcessor creates a Processor. workers > 1 fans station normalization
// out over that many goroutines; output order and content are identical to
// the sequential path since records share no mutable state.
func NewProcessor(normalizer *Normalizer, logger *slog.Logger, workers int) *Processor {
	if normalizer == nil {
		normalizer = NewNormalizer(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	if workers < 1 {
		workers = 1
	}
	return &Processor{normalizer: normalizer, logger: logger, workers: workers}
}

// envelopeProbe distinguishes absent top-level fields from present-but-empty
// ones during envelope decoding.
type envelopeProbe struct {
	LastUpdated *string            `json:"last_updated"`
	Stations    *[]json.RawMessage `json:"stations"`
}

// decodeEnvelope decodes the minimal feed shape, classifying failures as
// syntax (not JSON) or shape (missing or mistyped top-level fields).
func decodeEnvelope(data []byte) (RawFeed, error) {
	var probe envelopeProbe
	if err := json.Unmarshal(data, &probe); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return RawFeed{}, &EnvelopeDecodeError{Kind: EnvelopeShape, Err: err}
		}
		return RawFeed{}, &EnvelopeDecodeError{Kind: EnvelopeSyntax, Err: err}
	}
	if probe.LastUpdated == nil {
		return RawFeed{}, &EnvelopeDecodeError{Kind: EnvelopeShape, Err: errors.New("missing last_updated")}
	}
	if probe.Stations == nil {
		return RawFeed{}, &EnvelopeDecodeError{Kind: EnvelopeShape, Err: errors.New("missing stations")}
	}
	return RawFeed{LastUpdated: *probe.LastUpdated, Stations: *probe.Stations}, nil
}

// CheckStructure reports whether data has the minimal feed shape: valid JSON
// with a string last_updated and a non-empty stations array. It checks
// structure only, not station content, and is cheaper than a full Process.
func CheckStructure(data []byte) error {
	feed, err := decodeEnvelope(data)
	if err != nil {
		return err
	}
	if len(feed.Stations) == 0 {
		return &EnvelopeDecodeError{Kind: EnvelopeShape, Err: errors.New("stations is empty")}
	}
	return nil
}

// Process runs the whole batch. Envelope and timestamp failures are fatal and
// return an EnvelopeDecodeError with no partial output; individual station
// failures are logged, counted, and skipped. An empty stations array yields
// an empty result, not an error. Input order is preserved.
func (p *Processor) Process(ctx context.Context, data []byte) (*Result, error) {
	feed, err := decodeEnvelope(data)
	if err != nil {
		return nil, err
	}

	stats := FeedStats{Stations: len(feed.Stations), ProcessedAt: clock.Now()}
	if len(feed.Stations) == 0 {
		return &Result{Stations: []NormalizedStation{}, Stats: stats}, nil
	}

	lastUpdated, err := ConvertTimestamp(feed.LastUpdated)
	if err != nil {
		return nil, &EnvelopeDecodeError{Kind: EnvelopeTimestamp, Err: err}
	}
	stats.LastUpdated = lastUpdated

	results := p.normalizeAll(feed.Stations, lastUpdated)

	stations := make([]NormalizedStation, 0, len(results))
	for _, res := range results {
		if res.err != nil {
			p.logger.Warn("station rejected", "index", res.index, "error", res.err)
			stats.Skipped++
			continue
		}
		stations = append(stations, res.station)
		stats.Normalized++
		stats.PricesRetained += len(res.station.Prices[0].Prices)
	}

	return &Result{Stations: stations, Stats: stats}, nil
}

// stationResult pairs a normalization outcome with its input position so the
// fan-out path can restore feed order.
type stationResult struct {
	index   int
	station NormalizedStation
	err     error
}

// normalizeAll transforms every record, sequentially or over a worker pool.
// Records are independent and the feed timestamp is read-only, so the
// fan-out needs no locking; results are index-keyed to restore order.
func (p *Processor) normalizeAll(raws []json.RawMessage, lastUpdated string) []stationResult {
	results := make([]stationResult, len(raws))

	if p.workers == 1 || len(raws) < 2 {
		for i, raw := range raws {
			st, err := p.normalizer.Normalize(raw, lastUpdated)
			results[i] = stationResult{index: i, station: st, err: err}
		}
		return results
	}

	workers := p.workers
	if workers > len(raws) {
		workers = len(raws)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				st, err := p.normalizer.Normalize(raws[i], lastUpdated)
				results[i] = stationResult{index: i, station: st, err: err}
			}
		}()
	}

	for i := range raws {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}
