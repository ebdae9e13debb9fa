package external

import (
	"context"
	"io"
	"time"

	"weatherdata.app/internal/ports"
)

// BlobStoreLoggingDecorator decorates a blob store with structured logging
type BlobStoreLoggingDecorator struct {
	store  ports.BlobStore
	logger ports.Logger
}

// NewBlobStoreLoggingDecorator creates a new logging decorator for blob stores
func NewBlobStoreLoggingDecorator(store ports.BlobStore, logger ports.Logger) ports.BlobStore {
	return &BlobStoreLoggingDecorator{
		store:  store,
		logger: logger,
	}
}

// Exists wraps the existence probe with structured logging
func (d *BlobStoreLoggingDecorator) Exists(ctx context.Context, path string) (bool, error) {
	d.logger.Debug("Blob existence probe started",
		ports.F("store", d.store.Name()),
		ports.F("path", path),
		ports.F("event", "request"))

	startTime := time.Now()
	exists, err := d.store.Exists(ctx, path)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Blob existence probe failed",
			ports.F("store", d.store.Name()),
			ports.F("path", path),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return false, err
	}

	d.logger.Info("Blob existence probe completed",
		ports.F("store", d.store.Name()),
		ports.F("path", path),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("exists", exists))
	return exists, nil
}

// Open wraps the blob open with structured logging
func (d *BlobStoreLoggingDecorator) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	d.logger.Debug("Blob open started",
		ports.F("store", d.store.Name()),
		ports.F("path", path),
		ports.F("event", "request"))

	startTime := time.Now()
	body, err := d.store.Open(ctx, path)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Blob open failed",
			ports.F("store", d.store.Name()),
			ports.F("path", path),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Blob open completed",
		ports.F("store", d.store.Name()),
		ports.F("path", path),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()))
	return body, nil
}

// Ping delegates to the wrapped store
func (d *BlobStoreLoggingDecorator) Ping(ctx context.Context) error {
	return d.store.Ping(ctx)
}

// Name returns the name of the wrapped store with logging indication
func (d *BlobStoreLoggingDecorator) Name() string {
	return "logged(" + d.store.Name() + ")"
}

// MeteredBlobStore reports the latency and outcome of every blob operation
type MeteredBlobStore struct {
	store   ports.BlobStore
	metrics ports.TelemetryMetrics
}

func NewMeteredBlobStore(store ports.BlobStore, metrics ports.TelemetryMetrics) ports.BlobStore {
	return &MeteredBlobStore{store: store, metrics: metrics}
}

func (m *MeteredBlobStore) Exists(ctx context.Context, path string) (bool, error) {
	start := time.Now()
	exists, err := m.store.Exists(ctx, path)
	m.metrics.ObserveBlobOperation("exists", time.Since(start), err)
	return exists, err
}

func (m *MeteredBlobStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	start := time.Now()
	body, err := m.store.Open(ctx, path)
	m.metrics.ObserveBlobOperation("open", time.Since(start), err)
	return body, err
}

func (m *MeteredBlobStore) Ping(ctx context.Context) error {
	return m.store.Ping(ctx)
}

func (m *MeteredBlobStore) Name() string {
	return m.store.Name()
}
