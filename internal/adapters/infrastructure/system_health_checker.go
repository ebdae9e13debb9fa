package infrastructure

import (
	"context"
	"sync"

	"weatherdata.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	storageChecker ports.HealthChecker
	cacheChecker   ports.HealthChecker
	configProvider ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	StorageChecker ports.HealthChecker
	CacheChecker   ports.HealthChecker
	ConfigProvider ports.ConfigProvider
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	return &SystemHealthChecker{
		storageChecker: config.StorageChecker,
		cacheChecker:   config.CacheChecker,
		configProvider: config.ConfigProvider,
	}
}

// CheckAll runs the component checks concurrently and adds a config summary
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus)
	var mutex sync.Mutex
	var wg sync.WaitGroup

	run := func(name string, checker ports.HealthChecker) {
		if checker == nil {
			return
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			status := checker.Check(ctx)
			mutex.Lock()
			results[name] = status
			mutex.Unlock()
		}()
	}

	run("storage", s.storageChecker)
	run("cache", s.cacheChecker)
	wg.Wait()

	if s.configProvider != nil {
		storage := s.configProvider.GetStorageConfig()
		cache := s.configProvider.GetCacheConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    ports.HealthStatusHealthy,
			Details: map[string]interface{}{
				"storageType": storage.Type,
				"cacheType":   cache.Type,
				"cacheTTL":    cache.TTL.String(),
			},
		}
	}

	return results
}
