package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdata.app/pkg/errors"
)

func TestLoadConfig(t *testing.T) {
	t.Run("DefaultValues", func(t *testing.T) {
		os.Clearenv()

		config, err := LoadConfig()

		require.NoError(t, err)
		require.NotNil(t, config)
		assert.Equal(t, 8080, config.Server.Port)
		assert.Equal(t, 30, config.Server.RequestTimeoutSeconds)
		assert.Equal(t, []string{"*"}, config.Server.AllowedOrigins)
		assert.Equal(t, StorageTypeFilesystem, config.Storage.Type)
		assert.Equal(t, "data", config.Storage.Root)
		assert.Equal(t, 10, config.Storage.TimeoutSeconds)
		assert.Equal(t, 2, config.Storage.MaxRetries)
		assert.False(t, config.Storage.EnableLogging)
		assert.Equal(t, CacheTypeDisk, config.Cache.Type)
		assert.Equal(t, "cache", config.Cache.Location)
		assert.Equal(t, 0, config.Cache.MaxAgeHours)
		assert.Equal(t, "localhost:6379", config.Cache.Redis.Addr)
		assert.Equal(t, "info", config.Logging.Level)
		assert.Equal(t, "json", config.Logging.Format)
	})

	t.Run("CustomValues", func(t *testing.T) {
		os.Clearenv()

		require.NoError(t, os.Setenv("SERVER_PORT", "9090"))
		require.NoError(t, os.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,https://dash.example.com"))
		require.NoError(t, os.Setenv("STORAGE_TYPE", "http"))
		require.NoError(t, os.Setenv("STORAGE_BASE_URL", "https://weather.blob.core.windows.net/telemetry"))
		require.NoError(t, os.Setenv("STORAGE_QUERY", "sv=2022-11-02&sig=abc"))
		require.NoError(t, os.Setenv("STORAGE_MAX_RETRIES", "4"))
		require.NoError(t, os.Setenv("STORAGE_ENABLE_LOGGING", "true"))
		require.NoError(t, os.Setenv("CACHE_TYPE", "redis"))
		require.NoError(t, os.Setenv("REDIS_ADDR", "redis:6379"))
		require.NoError(t, os.Setenv("REDIS_DB", "3"))
		require.NoError(t, os.Setenv("CACHE_TTL_MINUTES", "120"))
		require.NoError(t, os.Setenv("LOG_LEVEL", "debug"))
		require.NoError(t, os.Setenv("LOG_FORMAT", "text"))

		config, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 9090, config.Server.Port)
		assert.Equal(t, []string{"http://localhost:5173", "https://dash.example.com"}, config.Server.AllowedOrigins)
		assert.Equal(t, StorageTypeHTTP, config.Storage.Type)
		assert.Equal(t, "https://weather.blob.core.windows.net/telemetry", config.Storage.BaseURL)
		assert.Equal(t, "sv=2022-11-02&sig=abc", config.Storage.Query)
		assert.Equal(t, 4, config.Storage.MaxRetries)
		assert.True(t, config.Storage.EnableLogging)
		assert.Equal(t, CacheTypeRedis, config.Cache.Type)
		assert.Equal(t, "redis:6379", config.Cache.Redis.Addr)
		assert.Equal(t, 3, config.Cache.Redis.DB)
		assert.Equal(t, 120, config.Cache.TTLMinutes)
		assert.Equal(t, "debug", config.Logging.Level)
		assert.Equal(t, "text", config.Logging.Format)
	})

	t.Run("InvalidCacheType", func(t *testing.T) {
		os.Clearenv()
		require.NoError(t, os.Setenv("CACHE_TYPE", "memcached"))

		config, err := LoadConfig()

		assert.Nil(t, config)
		require.Error(t, err)
		assert.True(t, errors.IsConfigurationError(err))
		assert.Contains(t, err.Error(), "CACHE_TYPE")
	})

	os.Clearenv()
}

func TestStorageConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		config    StorageConfig
		expectErr string
	}{
		{
			name:   "Filesystem",
			config: StorageConfig{Type: StorageTypeFilesystem, Root: "data", TimeoutSeconds: 10},
		},
		{
			name:      "FilesystemWithoutRoot",
			config:    StorageConfig{Type: StorageTypeFilesystem, Root: " ", TimeoutSeconds: 10},
			expectErr: "STORAGE_ROOT",
		},
		{
			name:   "HTTP",
			config: StorageConfig{Type: StorageTypeHTTP, BaseURL: "https://example.com/c", TimeoutSeconds: 10},
		},
		{
			name:      "HTTPWithoutScheme",
			config:    StorageConfig{Type: StorageTypeHTTP, BaseURL: "example.com/c", TimeoutSeconds: 10},
			expectErr: "STORAGE_BASE_URL must start",
		},
		{
			name:      "HTTPQueryWithMark",
			config:    StorageConfig{Type: StorageTypeHTTP, BaseURL: "https://example.com", Query: "?sig=1", TimeoutSeconds: 10},
			expectErr: "STORAGE_QUERY",
		},
		{
			name:      "UnknownType",
			config:    StorageConfig{Type: StorageTypeUnknown},
			expectErr: "STORAGE_TYPE",
		},
		{
			name:      "TooManyRetries",
			config:    StorageConfig{Type: StorageTypeFilesystem, Root: "data", TimeoutSeconds: 10, MaxRetries: 11},
			expectErr: "STORAGE_MAX_RETRIES",
		},
		{
			name:      "ZeroTimeout",
			config:    StorageConfig{Type: StorageTypeFilesystem, Root: "data"},
			expectErr: "STORAGE_TIMEOUT_SECONDS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectErr)
		})
	}
}

func TestCacheConfig_Validate(t *testing.T) {
	validRedis := RedisConfig{Addr: "localhost:6379", DialTimeout: 5, ReadTimeout: 3, WriteTimeout: 3}

	tests := []struct {
		name      string
		config    CacheConfig
		expectErr string
	}{
		{name: "Disk", config: CacheConfig{Type: CacheTypeDisk, Location: "cache"}},
		{name: "DiskWithoutLocation", config: CacheConfig{Type: CacheTypeDisk}, expectErr: "CACHE_LOCATION"},
		{name: "Memory", config: CacheConfig{Type: CacheTypeMemory}},
		{name: "None", config: CacheConfig{Type: CacheTypeNone}},
		{name: "Redis", config: CacheConfig{Type: CacheTypeRedis, Redis: validRedis}},
		{name: "RedisBadDB", config: CacheConfig{Type: CacheTypeRedis, Redis: RedisConfig{Addr: "x:1", DB: 16, DialTimeout: 1, ReadTimeout: 1, WriteTimeout: 1}}, expectErr: "REDIS_DB"},
		{name: "NegativeTTL", config: CacheConfig{Type: CacheTypeMemory, TTLMinutes: -1}, expectErr: "CACHE_TTL_MINUTES"},
		{name: "SweepWithoutInterval", config: CacheConfig{Type: CacheTypeDisk, Location: "cache", MaxAgeHours: 24}, expectErr: "CACHE_SWEEP_INTERVAL_MINUTES"},
		{name: "SweepConfigured", config: CacheConfig{Type: CacheTypeDisk, Location: "cache", MaxAgeHours: 24, SweepIntervalMinutes: 30}},
		{name: "Unknown", config: CacheConfig{Type: CacheTypeUnknown}, expectErr: "CACHE_TYPE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectErr)
		})
	}
}

func TestCacheType_RoundTrip(t *testing.T) {
	for _, name := range []string{"disk", "memory", "redis", "none"} {
		var ct CacheType
		require.NoError(t, ct.UnmarshalText([]byte(name)))
		assert.True(t, ct.IsValid())

		text, err := ct.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, name, string(text))
	}

	assert.Equal(t, CacheTypeUnknown, CacheTypeFromString("tape"))
	assert.Equal(t, StorageTypeHTTP, StorageTypeFromString("HTTP"))
	assert.Equal(t, "unknown", StorageTypeUnknown.String())
}

func TestLoggingConfig_Validate(t *testing.T) {
	assert.NoError(t, (&LoggingConfig{Level: "warn", Format: "text"}).Validate())
	assert.Error(t, (&LoggingConfig{Level: "trace", Format: "json"}).Validate())
	assert.Error(t, (&LoggingConfig{Level: "info", Format: "xml"}).Validate())
}
