package external

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/go-redis/redis/v8"
	"weatherdata.app/internal/config"
	"weatherdata.app/internal/ports"
	"weatherdata.app/pkg/errors"
)

const (
	redisKeyPrefix           = "telemetry:"
	defaultRedisWriteTimeout = 3 * time.Second
)

// RedisStreamCache implements StreamCache port using Redis
type RedisStreamCache struct {
	client       *redis.Client
	ttl          time.Duration
	writeTimeout time.Duration
	cacheStats
}

// NewRedisStreamCache creates a new Redis stream cache. A zero ttl stores entries without expiry.
func NewRedisStreamCache(cfg *config.RedisConfig, ttl time.Duration) (*RedisStreamCache, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  time.Duration(cfg.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewStorageError("failed to connect to Redis", err)
	}

	writeTimeout := time.Duration(cfg.WriteTimeout) * time.Second
	if writeTimeout <= 0 {
		writeTimeout = defaultRedisWriteTimeout
	}

	return &RedisStreamCache{
		client:       client,
		ttl:          ttl,
		writeTimeout: writeTimeout,
	}, nil
}

// Open retrieves an entry from Redis
func (r *RedisStreamCache) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := validateCacheKey(key); err != nil {
		return nil, err
	}

	val, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			r.RecordMiss()
			return nil, errors.NewNotFoundError("cache miss")
		}
		return nil, errors.NewStorageError("redis get operation failed", err)
	}

	r.RecordHit()
	return io.NopCloser(bytes.NewReader(val)), nil
}

// Create buffers an entry and stores it with a single SET on commit
func (r *RedisStreamCache) Create(ctx context.Context, key string) (ports.CacheWriter, error) {
	if err := validateCacheKey(key); err != nil {
		return nil, err
	}

	return &bufferedCacheWriter{commit: func(data []byte) error {
		setCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.writeTimeout)
		defer cancel()

		if err := r.client.Set(setCtx, redisKeyPrefix+key, data, r.ttl).Err(); err != nil {
			return errors.NewCacheWriteError("redis set operation failed", err)
		}
		return nil
	}}, nil
}

// Ping checks if Redis connection is alive
func (r *RedisStreamCache) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewStorageError("Redis ping failed", err)
	}
	return nil
}

func (r *RedisStreamCache) Name() string {
	return "redis"
}

// Close closes the Redis client connection
func (r *RedisStreamCache) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewStorageError("failed to close Redis connection", err)
	}
	return nil
}
