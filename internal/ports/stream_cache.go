package ports

import (
	"context"
	"io"
	"time"
)

// StreamCache defines the contract for the local mirror of extracted archive entries.
// Open returns a NotFoundError on a miss.
type StreamCache interface {
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Create(ctx context.Context, key string) (CacheWriter, error)
	Ping(ctx context.Context) error
	Name() string
}

// CacheWriter buffers one cache entry. Nothing becomes visible to readers until Commit.
type CacheWriter interface {
	io.Writer
	Commit() error
	Abort() error
}

// CacheSweeper is implemented by caches that can drop entries older than a cutoff.
type CacheSweeper interface {
	Sweep(ctx context.Context, olderThan time.Time) (int, error)
}

// CacheMetrics defines the contract for cache performance tracking
type CacheMetrics interface {
	GetStats() CacheStats
	RecordHit()
	RecordMiss()
}

// CacheStats represents cache performance metrics
type CacheStats struct {
	Hits        int64
	Misses      int64
	TotalOps    int64
	HitRatio    float64
	LastUpdated time.Time
}
