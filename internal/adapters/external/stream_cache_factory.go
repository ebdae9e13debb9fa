package external

import (
	"fmt"
	"time"

	"weatherdata.app/internal/config"
	"weatherdata.app/internal/ports"
	"weatherdata.app/pkg/errors"
)

// StreamCache bundles the cache port with its hit/miss statistics
type StreamCache interface {
	ports.StreamCache
	ports.CacheMetrics
}

type StreamCacheFactory struct{}

func NewStreamCacheFactory() *StreamCacheFactory {
	return &StreamCacheFactory{}
}

func (f *StreamCacheFactory) CreateStreamCache(cfg *config.CacheConfig) (StreamCache, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("cache config cannot be nil", nil)
	}

	ttl := time.Duration(cfg.TTLMinutes) * time.Minute

	switch cfg.Type {
	case config.CacheTypeDisk:
		cache, err := NewDiskStreamCache(cfg.Location)
		if err != nil {
			return nil, err
		}
		return cache, nil
	case config.CacheTypeMemory:
		return NewMemoryStreamCache(ttl), nil
	case config.CacheTypeRedis:
		cache, err := NewRedisStreamCache(&cfg.Redis, ttl)
		if err != nil {
			return nil, err
		}
		return cache, nil
	case config.CacheTypeNone:
		return NewNoopStreamCache(), nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported cache type: %s", cfg.Type.String()), nil)
	}
}
