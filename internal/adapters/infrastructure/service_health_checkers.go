package infrastructure

import (
	"context"
	"time"

	"weatherdata.app/internal/ports"
)

const defaultHealthCheckTimeout = 3 * time.Second

// StorageHealthChecker reports whether the blob store answers a ping
type StorageHealthChecker struct {
	store   ports.BlobStore
	timeout time.Duration
}

// NewStorageHealthChecker creates a new blob store health checker
func NewStorageHealthChecker(store ports.BlobStore, timeout time.Duration) *StorageHealthChecker {
	if timeout <= 0 {
		timeout = defaultHealthCheckTimeout
	}
	return &StorageHealthChecker{store: store, timeout: timeout}
}

// Check pings the blob store
func (s *StorageHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	if s.store == nil {
		return ports.HealthStatus{
			Component: "storage",
			Status:    ports.HealthStatusUnhealthy,
			Error:     "blob store is not configured",
		}
	}
	return pingStatus(ctx, "storage", s.store.Name(), s.timeout, s.store.Ping)
}

// CacheHealthChecker reports whether the stream cache answers a ping
type CacheHealthChecker struct {
	cache   ports.StreamCache
	metrics ports.CacheMetrics
	timeout time.Duration
}

// NewCacheHealthChecker creates a new stream cache health checker. metrics may be nil.
func NewCacheHealthChecker(cache ports.StreamCache, metrics ports.CacheMetrics, timeout time.Duration) *CacheHealthChecker {
	if timeout <= 0 {
		timeout = defaultHealthCheckTimeout
	}
	return &CacheHealthChecker{cache: cache, metrics: metrics, timeout: timeout}
}

// Check pings the cache and attaches its hit ratio
func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	if c.cache == nil {
		return ports.HealthStatus{
			Component: "cache",
			Status:    ports.HealthStatusUnhealthy,
			Error:     "stream cache is not configured",
		}
	}

	status := pingStatus(ctx, "cache", c.cache.Name(), c.timeout, c.cache.Ping)
	if c.metrics != nil {
		status.Details["hit_ratio"] = c.metrics.GetStats().HitRatio
	}
	return status
}

func pingStatus(ctx context.Context, component, backend string, timeout time.Duration, ping func(context.Context) error) ports.HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	err := ping(ctx)

	status := ports.HealthStatus{
		Component: component,
		Status:    ports.HealthStatusHealthy,
		Details: map[string]interface{}{
			"backend":    backend,
			"latency_ms": time.Since(start).Milliseconds(),
		},
	}
	if err != nil {
		status.Status = ports.HealthStatusUnhealthy
		status.Error = err.Error()
	}
	return status
}
