package app

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdata.app/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "dockan", "temperature"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "dockan", "temperature", "2023-01-01.csv"),
		[]byte("2023-01-01T00:00:00;1,5\n"), 0o644))

	return &config.Config{
		Server: config.ServerConfig{Port: 8080, RequestTimeoutSeconds: 5, AllowedOrigins: []string{"https://dashboard.example.com"}},
		Storage: config.StorageConfig{
			Type:           config.StorageTypeFilesystem,
			Root:           root,
			TimeoutSeconds: 5,
		},
		Cache: config.CacheConfig{
			Type:                 config.CacheTypeDisk,
			Location:             t.TempDir(),
			MaxAgeHours:          24,
			SweepIntervalMinutes: 60,
		},
		Logging: config.LoggingConfig{Level: "info", Format: "json"},
	}
}

func TestNewApplicationWithConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Logging.FilePath = filepath.Join(t.TempDir(), "logs", "telemetry.log")

	application, err := NewApplicationWithConfig(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.deps.Close() })

	assert.NotNil(t, application.GetTelemetryUseCase())
	assert.NotNil(t, application.janitor, "disk cache with a max age gets a janitor")
	assert.FileExists(t, cfg.Logging.FilePath)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/devices/dockan/data/2023-01-01/temperature", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	w := httptest.NewRecorder()
	application.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"date":"2023-01-01T00:00:00Z","value":1.5}]`, w.Body.String())
	assert.Equal(t, "https://dashboard.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	application.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	application.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestNewApplicationWithConfig_RedisCacheHasNoJanitor(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig(t)
	cfg.Cache = config.CacheConfig{
		Type:        config.CacheTypeRedis,
		MaxAgeHours: 24,
		Redis:       config.RedisConfig{Addr: mr.Addr(), DialTimeout: 1, ReadTimeout: 1, WriteTimeout: 1},
	}

	application, err := NewApplicationWithConfig(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.deps.Close() })

	assert.Nil(t, application.janitor)
}

func TestNewApplicationWithConfig_StorageFailure(t *testing.T) {
	cfg := testConfig(t)
	cfg.Cache = config.CacheConfig{
		Type:  config.CacheTypeRedis,
		Redis: config.RedisConfig{Addr: "127.0.0.1:1", DialTimeout: 1, ReadTimeout: 1, WriteTimeout: 1},
	}

	application, err := NewApplicationWithConfig(cfg)

	assert.Nil(t, application)
	assert.Error(t, err)
}
