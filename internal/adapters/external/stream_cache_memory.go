package external

import (
	"bytes"
	"context"
	"io"
	"sync"
	"time"

	"weatherdata.app/internal/ports"
	"weatherdata.app/pkg/errors"
)

type MemoryStreamCache struct {
	data  map[string]memoryCacheItem
	ttl   time.Duration
	mutex sync.RWMutex
	cacheStats
}

type memoryCacheItem struct {
	data     []byte
	storedAt time.Time
}

// NewMemoryStreamCache creates an in-process cache. A zero ttl keeps entries until swept.
func NewMemoryStreamCache(ttl time.Duration) *MemoryStreamCache {
	return &MemoryStreamCache{
		data: make(map[string]memoryCacheItem),
		ttl:  ttl,
	}
}

func (c *MemoryStreamCache) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := validateCacheKey(key); err != nil {
		return nil, err
	}

	c.mutex.RLock()
	item, exists := c.data[key]
	c.mutex.RUnlock()

	if !exists || c.expired(item) {
		c.RecordMiss()
		return nil, errors.NewNotFoundError("cache miss")
	}

	c.RecordHit()
	return io.NopCloser(bytes.NewReader(item.data)), nil
}

func (c *MemoryStreamCache) Create(ctx context.Context, key string) (ports.CacheWriter, error) {
	if err := validateCacheKey(key); err != nil {
		return nil, err
	}

	return &bufferedCacheWriter{commit: func(data []byte) error {
		c.mutex.Lock()
		defer c.mutex.Unlock()
		c.data[key] = memoryCacheItem{
			data:     append([]byte(nil), data...),
			storedAt: time.Now(),
		}
		return nil
	}}, nil
}

// Sweep drops entries stored before olderThan
func (c *MemoryStreamCache) Sweep(ctx context.Context, olderThan time.Time) (int, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	removed := 0
	for key, item := range c.data {
		if item.storedAt.Before(olderThan) {
			delete(c.data, key)
			removed++
		}
	}
	return removed, nil
}

func (c *MemoryStreamCache) Ping(ctx context.Context) error {
	return nil
}

func (c *MemoryStreamCache) Name() string {
	return "memory"
}

func (c *MemoryStreamCache) expired(item memoryCacheItem) bool {
	return c.ttl > 0 && time.Since(item.storedAt) > c.ttl
}
