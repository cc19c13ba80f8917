package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the fuel
// feed pipeline.
type Metrics struct {
	FeedsConsumed    prometheus.Counter
	FeedErrors       prometheus.Counter
	StationsProduced prometheus.Counter
	StationsSkipped  prometheus.Counter
	PricesRetained   prometheus.Counter
	PipelineRunning  prometheus.Gauge

	// Batch processing metrics.
	BatchSize               prometheus.Histogram
	BatchProcessingDuration prometheus.Histogram
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		FeedsConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fuel_etl",
			Name:      "feeds_consumed_total",
			Help:      "Total feed documents read from the source topic.",
		}),
		FeedErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fuel_etl",
			Name:      "feed_errors_total",
			Help:      "Total feeds rejected for envelope or timestamp failures.",
		}),
		StationsProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fuel_etl",
			Name:      "stations_produced_total",
			Help:      "Total normalized stations written to the sink topic.",
		}),
		StationsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fuel_etl",
			Name:      "stations_skipped_total",
			Help:      "Total station records dropped for missing brands or bad coordinates.",
		}),
		PricesRetained: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fuel_etl",
			Name:      "prices_retained_total",
			Help:      "Total price entries that survived coercion and positivity filtering.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "fuel_etl",
			Name:      "pipeline_running",
			Help:      "1 when the pipeline is active, 0 when shut down.",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fuel_etl",
			Name:      "batch_size",
			Help:      "Number of feed documents per batch extracted from Kafka.",
			Buckets:   []float64{1, 2, 5, 10, 20, 30, 50, 75, 100},
		}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fuel_etl",
			Name:      "batch_processing_duration_seconds",
			Help:      "Duration of a complete batch extract-transform-load cycle.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
	}

	prometheus.MustRegister(
		m.FeedsConsumed,
		m.FeedErrors,
		m.StationsProduced,
		m.StationsSkipped,
		m.PricesRetained,
		m.PipelineRunning,
		m.BatchSize,
		m.BatchProcessingDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		FeedsConsumed:           prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fuel_etl", Name: "feeds_consumed_total"}),
		FeedErrors:              prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fuel_etl", Name: "feed_errors_total"}),
		StationsProduced:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fuel_etl", Name: "stations_produced_total"}),
		StationsSkipped:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fuel_etl", Name: "stations_skipped_total"}),
		PricesRetained:          prometheus.NewCounter(prometheus.CounterOpts{Namespace: "fuel_etl", Name: "prices_retained_total"}),
		PipelineRunning:         prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "fuel_etl", Name: "pipeline_running"}),
		BatchSize:               prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "fuel_etl", Name: "batch_size"}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "fuel_etl", Name: "batch_processing_duration_seconds"}),
	}
}
