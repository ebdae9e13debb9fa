package external

import (
	"bytes"
	"sync"
	"time"

	"weatherdata.app/internal/ports"
	"weatherdata.app/pkg/errors"
	"weatherdata.app/pkg/validation"
)

// cacheStats tracks hits and misses for a stream cache
type cacheStats struct {
	hits   int64
	misses int64
	mutex  sync.RWMutex
}

// GetStats returns cache statistics
func (s *cacheStats) GetStats() ports.CacheStats {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	total := s.hits + s.misses
	hitRatio := float64(0)
	if total > 0 {
		hitRatio = float64(s.hits) / float64(total)
	}

	return ports.CacheStats{
		Hits:        s.hits,
		Misses:      s.misses,
		TotalOps:    total,
		HitRatio:    hitRatio,
		LastUpdated: time.Now(),
	}
}

// RecordHit increments the cache hit counter
func (s *cacheStats) RecordHit() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.hits++
}

// RecordMiss increments the cache miss counter
func (s *cacheStats) RecordMiss() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.misses++
}

func validateCacheKey(key string) error {
	if !validation.IsSafePathSegment(key) {
		return errors.NewValidationError("invalid cache key: " + key)
	}
	return nil
}

// bufferedCacheWriter collects an entry in memory and hands it to commit once.
type bufferedCacheWriter struct {
	buf    bytes.Buffer
	commit func([]byte) error
	done   bool
}

func (w *bufferedCacheWriter) Write(p []byte) (int, error) {
	if w.done {
		return 0, errors.NewCacheWriteError("cache entry already finished", nil)
	}
	return w.buf.Write(p)
}

func (w *bufferedCacheWriter) Commit() error {
	if w.done {
		return errors.NewCacheWriteError("cache entry already finished", nil)
	}
	w.done = true
	return w.commit(w.buf.Bytes())
}

func (w *bufferedCacheWriter) Abort() error {
	w.done = true
	w.buf.Reset()
	return nil
}
