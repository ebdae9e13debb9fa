package infrastructure

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"weatherdata.app/internal/ports"
	"weatherdata.app/pkg/errors"
)

const (
	blobResultOK       = "ok"
	blobResultNotFound = "not_found"
	blobResultError    = "error"
)

// PrometheusTelemetryMetrics implements TelemetryMetrics with Prometheus collectors
// and keeps plain counters for the JSON metrics endpoint.
type PrometheusTelemetryMetrics struct {
	resolutions        *prometheus.CounterVec
	notFound           *prometheus.CounterVec
	parseFailures      *prometheus.CounterVec
	cacheWriteFailures *prometheus.CounterVec
	blobDuration       *prometheus.HistogramVec

	mutex sync.RWMutex
	stats ports.TelemetryStats
}

// NewPrometheusTelemetryMetrics registers collectors with registerer; nil means the default registry
func NewPrometheusTelemetryMetrics(registerer prometheus.Registerer) *PrometheusTelemetryMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &PrometheusTelemetryMetrics{
		resolutions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "telemetry_stream_resolutions_total",
				Help: "The total number of resolved telemetry streams",
			},
			[]string{"metric", "origin"},
		),
		notFound: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "telemetry_stream_not_found_total",
				Help: "The total number of lookups where no stream existed",
			},
			[]string{"metric"},
		),
		parseFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "telemetry_parse_failures_total",
				Help: "The total number of streams rejected as malformed",
			},
			[]string{"metric"},
		),
		cacheWriteFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "telemetry_cache_write_failures_total",
				Help: "The total number of archive entries that could not be cached",
			},
			[]string{"metric"},
		),
		blobDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "telemetry_blob_operation_duration_seconds",
				Help:    "Blob store operation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "result"},
		),
		stats: ports.TelemetryStats{Resolutions: make(map[string]int64)},
	}
}

func (m *PrometheusTelemetryMetrics) RecordResolution(metric, origin string) {
	m.resolutions.WithLabelValues(metric, origin).Inc()

	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.stats.Resolutions[origin]++
}

func (m *PrometheusTelemetryMetrics) RecordNotFound(metric string) {
	m.notFound.WithLabelValues(metric).Inc()

	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.stats.NotFound++
}

func (m *PrometheusTelemetryMetrics) RecordParseFailure(metric string) {
	m.parseFailures.WithLabelValues(metric).Inc()

	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.stats.ParseFailures++
}

func (m *PrometheusTelemetryMetrics) RecordCacheWriteFailure(metric string) {
	m.cacheWriteFailures.WithLabelValues(metric).Inc()

	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.stats.CacheWriteFailures++
}

// ObserveBlobOperation records latency labelled by outcome. A missing blob is not an error.
func (m *PrometheusTelemetryMetrics) ObserveBlobOperation(operation string, duration time.Duration, err error) {
	result := blobResultOK
	switch {
	case err == nil:
	case errors.IsNotFoundError(err):
		result = blobResultNotFound
	default:
		result = blobResultError
	}
	m.blobDuration.WithLabelValues(operation, result).Observe(duration.Seconds())

	if result == blobResultError {
		m.mutex.Lock()
		defer m.mutex.Unlock()
		m.stats.BlobErrors++
	}
}

// Snapshot returns a copy of the current counters
func (m *PrometheusTelemetryMetrics) Snapshot() ports.TelemetryStats {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	snapshot := m.stats
	snapshot.Resolutions = make(map[string]int64, len(m.stats.Resolutions))
	for origin, count := range m.stats.Resolutions {
		snapshot.Resolutions[origin] = count
	}
	return snapshot
}

// RegisterCacheCollectors exposes a cache's hit/miss counters as Prometheus counter funcs
func RegisterCacheCollectors(registerer prometheus.Registerer, cacheName string, cache ports.CacheMetrics) {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)
	labels := prometheus.Labels{"cache_type": cacheName}

	factory.NewCounterFunc(prometheus.CounterOpts{
		Name:        "telemetry_cache_hits_total",
		Help:        "The total number of stream cache hits",
		ConstLabels: labels,
	}, func() float64 { return float64(cache.GetStats().Hits) })

	factory.NewCounterFunc(prometheus.CounterOpts{
		Name:        "telemetry_cache_misses_total",
		Help:        "The total number of stream cache misses",
		ConstLabels: labels,
	}, func() float64 { return float64(cache.GetStats().Misses) })
}
