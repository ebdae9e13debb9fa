package external

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherdata.app/internal/config"
	"weatherdata.app/internal/mocks"
	"weatherdata.app/pkg/errors"
)

func TestStreamCacheFactory_CreateStreamCache(t *testing.T) {
	mr := miniredis.RunT(t)
	factory := NewStreamCacheFactory()

	tests := []struct {
		name         string
		cfg          *config.CacheConfig
		expectedName string
		expectError  bool
	}{
		{
			name:         "Disk",
			cfg:          &config.CacheConfig{Type: config.CacheTypeDisk, Location: t.TempDir()},
			expectedName: "disk",
		},
		{
			name:         "Memory",
			cfg:          &config.CacheConfig{Type: config.CacheTypeMemory, TTLMinutes: 5},
			expectedName: "memory",
		},
		{
			name: "Redis",
			cfg: &config.CacheConfig{
				Type:  config.CacheTypeRedis,
				Redis: config.RedisConfig{Addr: mr.Addr(), DialTimeout: 1, ReadTimeout: 1, WriteTimeout: 1},
			},
			expectedName: "redis",
		},
		{
			name:         "None",
			cfg:          &config.CacheConfig{Type: config.CacheTypeNone},
			expectedName: "none",
		},
		{
			name:        "Unknown",
			cfg:         &config.CacheConfig{Type: config.CacheTypeUnknown},
			expectError: true,
		},
		{
			name:        "DiskWithoutLocation",
			cfg:         &config.CacheConfig{Type: config.CacheTypeDisk},
			expectError: true,
		},
		{
			name:        "NilConfig",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache, err := factory.CreateStreamCache(tt.cfg)

			if tt.expectError {
				assert.Nil(t, cache)
				assert.True(t, errors.IsConfigurationError(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedName, cache.Name())
			if closer, ok := cache.(*RedisStreamCache); ok {
				_ = closer.Close()
			}
		})
	}
}

func TestBlobStoreFactory_CreateBlobStore(t *testing.T) {
	t.Run("Filesystem", func(t *testing.T) {
		factory := NewBlobStoreFactory(nil, nil)

		store, err := factory.CreateBlobStore(&config.StorageConfig{Type: config.StorageTypeFilesystem, Root: t.TempDir()})

		require.NoError(t, err)
		assert.Equal(t, "filesystem", store.Name())
		assert.IsType(t, &FilesystemBlobStore{}, store)
	})

	t.Run("HTTPWithMetricsAndLogging", func(t *testing.T) {
		mockLogger := mocks.NewLogger(t)
		mockMetrics := mocks.NewTelemetryMetrics(t)
		factory := NewBlobStoreFactory(mockLogger, mockMetrics)

		store, err := factory.CreateBlobStore(&config.StorageConfig{
			Type:           config.StorageTypeHTTP,
			BaseURL:        "https://storage.example.com/telemetry",
			TimeoutSeconds: 5,
			EnableLogging:  true,
		})

		require.NoError(t, err)
		assert.Equal(t, "logged(http)", store.Name())
		assert.IsType(t, &BlobStoreLoggingDecorator{}, store)
	})

	t.Run("MetricsWithoutLogging", func(t *testing.T) {
		mockMetrics := mocks.NewTelemetryMetrics(t)
		mockMetrics.EXPECT().ObserveBlobOperation("exists", mock.Anything, nil).Once()
		factory := NewBlobStoreFactory(mocks.NewLogger(t), mockMetrics)

		store, err := factory.CreateBlobStore(&config.StorageConfig{Type: config.StorageTypeFilesystem, Root: t.TempDir()})
		require.NoError(t, err)
		assert.IsType(t, &MeteredBlobStore{}, store)

		exists, err := store.Exists(context.Background(), "dockan/temperature/2023-01-01.csv")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("InvalidConfig", func(t *testing.T) {
		factory := NewBlobStoreFactory(nil, nil)

		for _, cfg := range []*config.StorageConfig{
			nil,
			{Type: config.StorageTypeUnknown},
			{Type: config.StorageTypeHTTP, BaseURL: "ftp://nope"},
		} {
			store, err := factory.CreateBlobStore(cfg)
			assert.Nil(t, store)
			assert.True(t, errors.IsConfigurationError(err))
		}
	})
}
