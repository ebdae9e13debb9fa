package external

import (
	"fmt"
	"time"

	"weatherdata.app/internal/config"
	"weatherdata.app/internal/ports"
	"weatherdata.app/pkg/errors"
)

type BlobStoreFactory struct {
	logger  ports.Logger
	metrics ports.TelemetryMetrics
}

func NewBlobStoreFactory(logger ports.Logger, metrics ports.TelemetryMetrics) *BlobStoreFactory {
	return &BlobStoreFactory{logger: logger, metrics: metrics}
}

// CreateBlobStore builds the configured store, metered and optionally logged
func (f *BlobStoreFactory) CreateBlobStore(cfg *config.StorageConfig) (ports.BlobStore, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("storage config cannot be nil", nil)
	}

	var store ports.BlobStore
	switch cfg.Type {
	case config.StorageTypeFilesystem:
		fsStore, err := NewFilesystemBlobStore(cfg.Root)
		if err != nil {
			return nil, err
		}
		store = fsStore
	case config.StorageTypeHTTP:
		httpStore, err := NewHTTPBlobStore(HTTPBlobStoreParams{
			BaseURL: cfg.BaseURL,
			Query:   cfg.Query,
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
			Backoff: BackoffConfig{MaxRetries: cfg.MaxRetries},
		})
		if err != nil {
			return nil, err
		}
		store = httpStore
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported storage type: %s", cfg.Type.String()), nil)
	}

	if f.metrics != nil {
		store = NewMeteredBlobStore(store, f.metrics)
	}
	if cfg.EnableLogging && f.logger != nil {
		store = NewBlobStoreLoggingDecorator(store, f.logger)
	}
	return store, nil
}
