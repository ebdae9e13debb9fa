package external

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"weatherdata.app/pkg/errors"
)

// FilesystemBlobStore implements BlobStore port over a local directory tree
type FilesystemBlobStore struct {
	root string
}

func NewFilesystemBlobStore(root string) (*FilesystemBlobStore, error) {
	if root == "" {
		return nil, errors.NewConfigurationError("storage root cannot be empty", nil)
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.NewConfigurationError("resolve storage root", err)
	}
	return &FilesystemBlobStore{root: abs}, nil
}

// Exists reports whether a regular file exists at blobPath
func (s *FilesystemBlobStore) Exists(ctx context.Context, blobPath string) (bool, error) {
	full, err := s.resolve(blobPath)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(full)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.NewStorageError("stat "+blobPath, err)
	}
	return info.Mode().IsRegular(), nil
}

// Open returns the blob as an *os.File so archive reads can seek
func (s *FilesystemBlobStore) Open(ctx context.Context, blobPath string) (io.ReadCloser, error) {
	full, err := s.resolve(blobPath)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("blob not found: " + blobPath)
		}
		return nil, errors.NewStorageError("open "+blobPath, err)
	}
	return f, nil
}

// Ping checks that the root directory is present
func (s *FilesystemBlobStore) Ping(ctx context.Context) error {
	info, err := os.Stat(s.root)
	if err != nil {
		return errors.NewStorageError("storage root unavailable", err)
	}
	if !info.IsDir() {
		return errors.NewStorageError(fmt.Sprintf("storage root %s is not a directory", s.root), nil)
	}
	return nil
}

func (s *FilesystemBlobStore) Name() string {
	return "filesystem"
}

func (s *FilesystemBlobStore) resolve(blobPath string) (string, error) {
	cleaned := path.Clean(blobPath)
	if !fs.ValidPath(cleaned) || cleaned == "." {
		return "", errors.NewValidationError(fmt.Sprintf("invalid blob path %q", blobPath))
	}
	return filepath.Join(s.root, filepath.FromSlash(cleaned)), nil
}
