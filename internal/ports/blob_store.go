package ports

import (
	"context"
	"io"
)

// BlobStore defines the contract for the object storage holding telemetry CSVs and archives.
// Paths are slash-separated and relative to the store root.
type BlobStore interface {
	Exists(ctx context.Context, path string) (bool, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Ping(ctx context.Context) error
	Name() string
}
