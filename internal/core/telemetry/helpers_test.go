package telemetry

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherdata.app/internal/mocks"
	"weatherdata.app/internal/ports"
	"weatherdata.app/pkg/errors"
)

// allowLogging accepts any log call with up to five fields.
func allowLogging(l *mocks.Logger) {
	for n := 0; n <= 5; n++ {
		args := make([]interface{}, n)
		for i := range args {
			args[i] = mock.Anything
		}
		l.EXPECT().Debug(mock.Anything, args...).Maybe()
		l.EXPECT().Info(mock.Anything, args...).Maybe()
		l.EXPECT().Warn(mock.Anything, args...).Maybe()
		l.EXPECT().Error(mock.Anything, args...).Maybe()
	}
}

func allowMetrics(m *mocks.TelemetryMetrics) {
	m.EXPECT().RecordResolution(mock.Anything, mock.Anything).Maybe()
	m.EXPECT().RecordNotFound(mock.Anything).Maybe()
	m.EXPECT().RecordParseFailure(mock.Anything).Maybe()
	m.EXPECT().RecordCacheWriteFailure(mock.Anything).Maybe()
}

// memBlobStore serves blobs from memory. Its streams are not seekable.
type memBlobStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
	opens map[string]int
}

func newMemBlobStore() *memBlobStore {
	return &memBlobStore{blobs: map[string][]byte{}, opens: map[string]int{}}
}

func (s *memBlobStore) put(path string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[path] = data
}

func (s *memBlobStore) openCount(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opens[path]
}

func (s *memBlobStore) Exists(_ context.Context, path string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.blobs[path]
	return ok, nil
}

func (s *memBlobStore) Open(_ context.Context, path string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.blobs[path]
	if !ok {
		return nil, errors.NewNotFoundError("blob " + path)
	}
	s.opens[path]++
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *memBlobStore) Ping(context.Context) error { return nil }
func (s *memBlobStore) Name() string               { return "memory" }

// dirBlobStore serves blobs from a directory as *os.File.
type dirBlobStore struct {
	root string
}

func (s *dirBlobStore) Exists(_ context.Context, path string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.root, filepath.FromSlash(path)))
	if os.IsNotExist(err) {
		return false, nil
	}
	return err == nil, err
}

func (s *dirBlobStore) Open(_ context.Context, path string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.root, filepath.FromSlash(path)))
}

func (s *dirBlobStore) Ping(context.Context) error { return nil }
func (s *dirBlobStore) Name() string               { return "dir" }

func (s *dirBlobStore) put(t *testing.T, path string, data []byte) {
	t.Helper()
	full := filepath.Join(s.root, filepath.FromSlash(path))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, data, 0o644))
}

// memCache is a committed-on-close stream cache.
type memCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{entries: map[string][]byte{}}
}

func (c *memCache) get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.entries[key]
	return data, ok
}

func (c *memCache) Open(_ context.Context, key string) (io.ReadCloser, error) {
	data, ok := c.get(key)
	if !ok {
		return nil, errors.NewNotFoundError("cache miss")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (c *memCache) Create(_ context.Context, key string) (ports.CacheWriter, error) {
	return &memCacheWriter{cache: c, key: key}, nil
}

func (c *memCache) Ping(context.Context) error { return nil }
func (c *memCache) Name() string               { return "memory" }

type memCacheWriter struct {
	cache *memCache
	key   string
	buf   bytes.Buffer
}

func (w *memCacheWriter) Write(p []byte) (int, error) { return w.buf.Write(p) }
func (w *memCacheWriter) Abort() error                { return nil }

func (w *memCacheWriter) Commit() error {
	w.cache.mu.Lock()
	defer w.cache.mu.Unlock()
	w.cache.entries[w.key] = append([]byte(nil), w.buf.Bytes()...)
	return nil
}

func buildZip(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = io.WriteString(w, content)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func newTestResolver(t *testing.T, blobs ports.BlobStore, cache ports.StreamCache) (*StreamResolver, *mocks.TelemetryMetrics) {
	t.Helper()
	logger := mocks.NewLogger(t)
	allowLogging(logger)
	metrics := mocks.NewTelemetryMetrics(t)

	resolver, err := NewStreamResolver(ResolverDependencies{
		BlobStore: blobs,
		Cache:     cache,
		Logger:    logger,
		Metrics:   metrics,
		SpoolDir:  t.TempDir(),
	})
	require.NoError(t, err)
	return resolver, metrics
}

func readAllAndClose(t *testing.T, stream *ResolvedStream) string {
	t.Helper()
	data, err := io.ReadAll(stream.Body)
	require.NoError(t, err)
	require.NoError(t, stream.Close())
	return string(data)
}
