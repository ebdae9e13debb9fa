package external

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"weatherdata.app/internal/ports"
	"weatherdata.app/pkg/errors"
)

const diskTempMarker = ".tmp-"

// DiskStreamCache stores one file per entry under a directory.
// Entries are written to a temporary file and renamed into place on commit.
type DiskStreamCache struct {
	dir string
	cacheStats
}

func NewDiskStreamCache(dir string) (*DiskStreamCache, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.NewConfigurationError("cache location cannot be empty", nil)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.NewConfigurationError("create cache directory", err)
	}
	return &DiskStreamCache{dir: dir}, nil
}

// Open returns the committed entry for key or a NotFoundError
func (c *DiskStreamCache) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := validateCacheKey(key); err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(c.dir, key))
	if err != nil {
		if os.IsNotExist(err) {
			c.RecordMiss()
			return nil, errors.NewNotFoundError("cache miss")
		}
		return nil, errors.NewStorageError("open cache entry", err)
	}

	c.RecordHit()
	return f, nil
}

// Create starts a new entry for key
func (c *DiskStreamCache) Create(ctx context.Context, key string) (ports.CacheWriter, error) {
	if err := validateCacheKey(key); err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp(c.dir, key+diskTempMarker+"*")
	if err != nil {
		return nil, errors.NewCacheWriteError("create temporary cache file", err)
	}
	return &diskCacheWriter{file: tmp, target: filepath.Join(c.dir, key)}, nil
}

// Sweep removes entries and abandoned temporary files last modified before olderThan
func (c *DiskStreamCache) Sweep(ctx context.Context, olderThan time.Time) (int, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return 0, errors.NewStorageError("list cache directory", err)
	}

	removed := 0
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if !info.ModTime().Before(olderThan) {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, entry.Name())); err != nil && !os.IsNotExist(err) {
			return removed, errors.NewStorageError("remove cache entry "+entry.Name(), err)
		}
		removed++
	}
	return removed, nil
}

// Ping checks that the cache directory is writable
func (c *DiskStreamCache) Ping(ctx context.Context) error {
	probe, err := os.CreateTemp(c.dir, "ping"+diskTempMarker+"*")
	if err != nil {
		return errors.NewStorageError("cache directory not writable", err)
	}
	name := probe.Name()
	_ = probe.Close()
	return os.Remove(name)
}

func (c *DiskStreamCache) Name() string {
	return "disk"
}

type diskCacheWriter struct {
	file   *os.File
	target string
	done   bool
}

func (w *diskCacheWriter) Write(p []byte) (int, error) {
	return w.file.Write(p)
}

func (w *diskCacheWriter) Commit() error {
	if w.done {
		return errors.NewCacheWriteError("cache entry already finished", nil)
	}
	w.done = true

	if err := w.file.Close(); err != nil {
		_ = os.Remove(w.file.Name())
		return errors.NewCacheWriteError("close temporary cache file", err)
	}
	if err := os.Rename(w.file.Name(), w.target); err != nil {
		_ = os.Remove(w.file.Name())
		return errors.NewCacheWriteError("publish cache entry", err)
	}
	return nil
}

func (w *diskCacheWriter) Abort() error {
	if w.done {
		return nil
	}
	w.done = true

	_ = w.file.Close()
	if err := os.Remove(w.file.Name()); err != nil && !os.IsNotExist(err) {
		return errors.NewCacheWriteError("remove temporary cache file", err)
	}
	return nil
}
