package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"weatherdata.app/pkg/errors"
)

const (
	maxRedisDB          = 15
	maxCacheTTLMinutes  = 10080
	maxPortNumber       = 65535
	maxStorageRetries   = 10
	maxRequestTimeout   = 300
	maxSweepIntervalMin = 10080
)

// Config represents the application configuration structure
type Config struct {
	Server  ServerConfig  `split_words:"true"`
	Storage StorageConfig `split_words:"true"`
	Cache   CacheConfig   `split_words:"true"`
	Logging LoggingConfig `split_words:"true"`
}

type ServerConfig struct {
	Port                  int      `envconfig:"SERVER_PORT" default:"8080"`
	RequestTimeoutSeconds int      `envconfig:"SERVER_REQUEST_TIMEOUT_SECONDS" default:"30"`
	AllowedOrigins        []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// StorageType represents the blob store backend
type StorageType int

const (
	StorageTypeUnknown StorageType = iota
	StorageTypeFilesystem
	StorageTypeHTTP
)

// String returns the string representation of storage type
func (s StorageType) String() string {
	switch s {
	case StorageTypeFilesystem:
		return "filesystem"
	case StorageTypeHTTP:
		return "http"
	default:
		return "unknown"
	}
}

// IsValid checks if the storage type is valid
func (s StorageType) IsValid() bool {
	return s == StorageTypeFilesystem || s == StorageTypeHTTP
}

// StorageTypeFromString converts string to StorageType enum
func StorageTypeFromString(s string) StorageType {
	switch strings.ToLower(s) {
	case "filesystem":
		return StorageTypeFilesystem
	case "http":
		return StorageTypeHTTP
	default:
		return StorageTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (s *StorageType) UnmarshalText(text []byte) error {
	*s = StorageTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (s StorageType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type StorageConfig struct {
	Type           StorageType `envconfig:"STORAGE_TYPE" default:"filesystem"`
	Root           string      `envconfig:"STORAGE_ROOT" default:"data"`
	BaseURL        string      `envconfig:"STORAGE_BASE_URL"`
	Query          string      `envconfig:"STORAGE_QUERY"`
	TimeoutSeconds int         `envconfig:"STORAGE_TIMEOUT_SECONDS" default:"10"`
	MaxRetries     int         `envconfig:"STORAGE_MAX_RETRIES" default:"2"`
	EnableLogging  bool        `envconfig:"STORAGE_ENABLE_LOGGING" default:"false"`
}

// CacheType represents the type of cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeDisk
	CacheTypeMemory
	CacheTypeRedis
	CacheTypeNone
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeDisk:
		return "disk"
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	case CacheTypeNone:
		return "none"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeDisk || c == CacheTypeMemory || c == CacheTypeRedis || c == CacheTypeNone
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch strings.ToLower(s) {
	case "disk":
		return CacheTypeDisk
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	case "none":
		return CacheTypeNone
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type                 CacheType   `envconfig:"CACHE_TYPE" default:"disk"`
	Location             string      `envconfig:"CACHE_LOCATION" default:"cache"`
	TTLMinutes           int         `envconfig:"CACHE_TTL_MINUTES" default:"0"`
	MaxAgeHours          int         `envconfig:"CACHE_MAX_AGE_HOURS" default:"0"`
	SweepIntervalMinutes int         `envconfig:"CACHE_SWEEP_INTERVAL_MINUTES" default:"60"`
	Redis                RedisConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type LoggingConfig struct {
	Level    string `envconfig:"LOG_LEVEL" default:"info"`
	Format   string `envconfig:"LOG_FORMAT" default:"json"`
	FilePath string `envconfig:"LOG_FILE_PATH"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Storage.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	if s.RequestTimeoutSeconds < 1 || s.RequestTimeoutSeconds > maxRequestTimeout {
		return errors.NewConfigurationError("SERVER_REQUEST_TIMEOUT_SECONDS must be between 1 and 300", nil)
	}
	return nil
}

func (s *StorageConfig) Validate() error {
	switch s.Type {
	case StorageTypeFilesystem:
		if strings.TrimSpace(s.Root) == "" {
			return errors.NewConfigurationError("STORAGE_ROOT cannot be empty when STORAGE_TYPE is filesystem", nil)
		}
	case StorageTypeHTTP:
		if s.BaseURL == "" {
			return errors.NewConfigurationError("STORAGE_BASE_URL cannot be empty when STORAGE_TYPE is http", nil)
		}
		if !strings.HasPrefix(s.BaseURL, "http://") && !strings.HasPrefix(s.BaseURL, "https://") {
			return errors.NewConfigurationError("STORAGE_BASE_URL must start with http:// or https://", nil)
		}
		if strings.HasPrefix(s.Query, "?") {
			return errors.NewConfigurationError("STORAGE_QUERY must not start with '?'", nil)
		}
	default:
		return errors.NewConfigurationError("STORAGE_TYPE must be one of: filesystem, http", nil)
	}

	if s.TimeoutSeconds < 1 {
		return errors.NewConfigurationError("STORAGE_TIMEOUT_SECONDS must be at least 1 second", nil)
	}
	if s.MaxRetries < 0 || s.MaxRetries > maxStorageRetries {
		return errors.NewConfigurationError(fmt.Sprintf("STORAGE_MAX_RETRIES must be between 0 and %d", maxStorageRetries), nil)
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: disk, memory, redis, none", nil)
	}

	if c.Type == CacheTypeDisk && strings.TrimSpace(c.Location) == "" {
		return errors.NewConfigurationError("CACHE_LOCATION cannot be empty when CACHE_TYPE is disk", nil)
	}
	if c.TTLMinutes < 0 || c.TTLMinutes > maxCacheTTLMinutes {
		return errors.NewConfigurationError("CACHE_TTL_MINUTES must be between 0 and 10080 minutes", nil)
	}
	if c.MaxAgeHours < 0 {
		return errors.NewConfigurationError("CACHE_MAX_AGE_HOURS cannot be negative", nil)
	}
	if c.MaxAgeHours > 0 && (c.SweepIntervalMinutes < 1 || c.SweepIntervalMinutes > maxSweepIntervalMin) {
		return errors.NewConfigurationError("CACHE_SWEEP_INTERVAL_MINUTES must be between 1 and 10080 minutes", nil)
	}

	if c.Type == CacheTypeRedis {
		return c.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis cache", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (l *LoggingConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
	}
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return errors.NewConfigurationError("LOG_FORMAT must be one of: json, text", nil)
	}
	return nil
}
