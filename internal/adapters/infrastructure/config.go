package infrastructure

import (
	"time"

	"weatherdata.app/internal/config"
	"weatherdata.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port:           c.config.Server.Port,
		RequestTimeout: time.Duration(c.config.Server.RequestTimeoutSeconds) * time.Second,
		AllowedOrigins: c.config.Server.AllowedOrigins,
	}
}

// GetStorageConfig returns blob storage configuration. The query string is never exposed.
func (c *ConfigProviderAdapter) GetStorageConfig() ports.StorageConfig {
	location := c.config.Storage.Root
	if c.config.Storage.Type == config.StorageTypeHTTP {
		location = c.config.Storage.BaseURL
	}

	return ports.StorageConfig{
		Type:       c.config.Storage.Type.String(),
		Location:   location,
		Timeout:    time.Duration(c.config.Storage.TimeoutSeconds) * time.Second,
		MaxRetries: c.config.Storage.MaxRetries,
	}
}

// GetCacheConfig returns cache configuration
func (c *ConfigProviderAdapter) GetCacheConfig() ports.CacheConfig {
	location := c.config.Cache.Location
	if c.config.Cache.Type == config.CacheTypeRedis {
		location = c.config.Cache.Redis.Addr
	}

	return ports.CacheConfig{
		Type:          c.config.Cache.Type.String(),
		Location:      location,
		TTL:           time.Duration(c.config.Cache.TTLMinutes) * time.Minute,
		MaxAge:        time.Duration(c.config.Cache.MaxAgeHours) * time.Hour,
		SweepInterval: time.Duration(c.config.Cache.SweepIntervalMinutes) * time.Minute,
	}
}
