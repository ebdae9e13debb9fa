package infrastructure

import (
	"context"

	"weatherdata.app/internal/ports"
)

// MetricsCollectorAdapter implements the MetricsCollector interface for HTTPServerAdapter
type MetricsCollectorAdapter struct {
	telemetryMetrics ports.TelemetryMetrics
	cacheMetrics     ports.CacheMetrics
	cacheName        string
}

// MetricsCollectorConfig holds configuration for creating the metrics collector
type MetricsCollectorConfig struct {
	TelemetryMetrics ports.TelemetryMetrics
	CacheMetrics     ports.CacheMetrics
	CacheName        string
}

// NewMetricsCollectorAdapter creates a new metrics collector adapter
func NewMetricsCollectorAdapter(config MetricsCollectorConfig) *MetricsCollectorAdapter {
	return &MetricsCollectorAdapter{
		telemetryMetrics: config.TelemetryMetrics,
		cacheMetrics:     config.CacheMetrics,
		cacheName:        config.CacheName,
	}
}

// GetMetrics returns resolution counters and cache statistics
func (m *MetricsCollectorAdapter) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	metrics := make(map[string]interface{})

	if m.telemetryMetrics != nil {
		stats := m.telemetryMetrics.Snapshot()
		metrics["telemetry"] = map[string]interface{}{
			"resolutions":          stats.Resolutions,
			"not_found":            stats.NotFound,
			"parse_failures":       stats.ParseFailures,
			"cache_write_failures": stats.CacheWriteFailures,
			"blob_errors":          stats.BlobErrors,
		}
	}

	if m.cacheMetrics != nil {
		cacheStats := m.cacheMetrics.GetStats()
		metrics["cache"] = map[string]interface{}{
			"type":      m.cacheName,
			"hits":      cacheStats.Hits,
			"misses":    cacheStats.Misses,
			"total_ops": cacheStats.TotalOps,
			"hit_ratio": cacheStats.HitRatio,
			"updated":   cacheStats.LastUpdated,
		}
	}

	return metrics, nil
}
