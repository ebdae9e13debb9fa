package ports

import "time"

// ServerConfig represents server configuration
type ServerConfig struct {
	Port           int
	RequestTimeout time.Duration
	AllowedOrigins []string
}

// StorageConfig represents blob storage configuration
type StorageConfig struct {
	Type       string
	Location   string
	Timeout    time.Duration
	MaxRetries int
}

// CacheConfig represents stream cache configuration
type CacheConfig struct {
	Type          string
	Location      string
	TTL           time.Duration
	MaxAge        time.Duration
	SweepInterval time.Duration
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetServerConfig() ServerConfig
	GetStorageConfig() StorageConfig
	GetCacheConfig() CacheConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
