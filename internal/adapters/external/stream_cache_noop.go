package external

import (
	"context"
	"io"

	"weatherdata.app/internal/ports"
	"weatherdata.app/pkg/errors"
)

// NoopStreamCache never stores anything; every lookup misses.
type NoopStreamCache struct {
	cacheStats
}

func NewNoopStreamCache() *NoopStreamCache {
	return &NoopStreamCache{}
}

func (c *NoopStreamCache) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	c.RecordMiss()
	return nil, errors.NewNotFoundError("cache disabled")
}

func (c *NoopStreamCache) Create(ctx context.Context, key string) (ports.CacheWriter, error) {
	return &bufferedCacheWriter{commit: func([]byte) error { return nil }}, nil
}

func (c *NoopStreamCache) Ping(ctx context.Context) error {
	return nil
}

func (c *NoopStreamCache) Name() string {
	return "none"
}
