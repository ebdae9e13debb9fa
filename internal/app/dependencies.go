package app

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"weatherdata.app/internal/adapters/external"
	"weatherdata.app/internal/adapters/infrastructure"
	"weatherdata.app/internal/config"
	"weatherdata.app/internal/ports"
)

type DependencyContainer struct {
	config   *config.Config
	registry *prometheus.Registry
	cache    external.StreamCache
	closers  []io.Closer
	ports    *ports.ApplicationPorts
}

func NewDependencyContainer(cfg *config.Config) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config:   cfg,
		registry: prometheus.NewRegistry(),
	}

	if err := container.initializePorts(); err != nil {
		_ = container.Close()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	logger, err := c.initializeLogger()
	if err != nil {
		return err
	}

	telemetryMetrics := infrastructure.NewPrometheusTelemetryMetrics(c.registry)

	blobStore, err := external.NewBlobStoreFactory(logger, telemetryMetrics).CreateBlobStore(&c.config.Storage)
	if err != nil {
		return fmt.Errorf("create blob store: %w", err)
	}
	if c.config.Storage.EnableLogging {
		slog.Info("Blob store logging enabled")
	}

	cache, err := external.NewStreamCacheFactory().CreateStreamCache(&c.config.Cache)
	if err != nil {
		return fmt.Errorf("create stream cache: %w", err)
	}
	c.cache = cache
	if closer, ok := cache.(io.Closer); ok {
		c.closers = append(c.closers, closer)
	}
	infrastructure.RegisterCacheCollectors(c.registry, cache.Name(), cache)

	slog.Info("Storage initialized",
		"storage_type", c.config.Storage.Type.String(),
		"cache_type", c.config.Cache.Type.String())

	c.ports = &ports.ApplicationPorts{
		// Storage
		BlobStore:   blobStore,
		StreamCache: cache,

		// Metrics
		TelemetryMetrics: telemetryMetrics,
		CacheMetrics:     cache,

		// Infrastructure
		ConfigProvider: infrastructure.NewConfigProviderAdapter(c.config),
		Logger:         logger,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

// initializeLogger returns the slog adapter, fanned out to a JSON file when LOG_FILE_PATH is set
func (c *DependencyContainer) initializeLogger() (ports.Logger, error) {
	var logger ports.Logger = infrastructure.NewSlogLoggerAdapter(nil)

	if c.config.Logging.FilePath == "" {
		return logger, nil
	}

	fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Logging.FilePath, c.config.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("create file logger: %w", err)
	}
	c.closers = append(c.closers, fileLogger)
	slog.Info("File logging enabled", "path", c.config.Logging.FilePath)

	return infrastructure.NewFanoutLogger(logger, fileLogger), nil
}

// NewCacheJanitor returns nil when the cache has no age limit or cannot be swept
func (c *DependencyContainer) NewCacheJanitor() (*infrastructure.CacheJanitor, error) {
	cacheConfig := c.ports.ConfigProvider.GetCacheConfig()
	if cacheConfig.MaxAge <= 0 {
		return nil, nil
	}

	sweeper, ok := c.cache.(ports.CacheSweeper)
	if !ok {
		slog.Info("Cache does not support sweeping, relying on its own expiry", "cache_type", cacheConfig.Type)
		return nil, nil
	}

	interval := cacheConfig.SweepInterval
	if interval < time.Minute {
		interval = time.Minute
	}

	return infrastructure.NewCacheJanitor(infrastructure.CacheJanitorConfig{
		Sweeper:  sweeper,
		Logger:   c.ports.Logger,
		MaxAge:   cacheConfig.MaxAge,
		Interval: interval,
	})
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// Registry is the Prometheus registry served on /metrics
func (c *DependencyContainer) Registry() *prometheus.Registry {
	return c.registry
}

// Close releases connections and files held by the adapters
func (c *DependencyContainer) Close() error {
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil
	return firstErr
}
