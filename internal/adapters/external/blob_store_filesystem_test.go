package external

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdata.app/pkg/errors"
)

func setupFilesystemStore(t *testing.T) (*FilesystemBlobStore, string) {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "dockan", "temperature"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "dockan", "temperature", "2023-01-01.csv"), []byte("2023-01-01T00:00:00;1\n"), 0o644))

	store, err := NewFilesystemBlobStore(root)
	require.NoError(t, err)
	return store, root
}

func TestFilesystemBlobStore_Exists(t *testing.T) {
	store, _ := setupFilesystemStore(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{"ExistingFile", "dockan/temperature/2023-01-01.csv", true},
		{"MissingFile", "dockan/temperature/2023-01-02.csv", false},
		{"Directory", "dockan/temperature", false},
		{"MissingDevice", "sthlm/temperature/2023-01-01.csv", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exists, err := store.Exists(ctx, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, exists)
		})
	}
}

func TestFilesystemBlobStore_RejectsEscapingPaths(t *testing.T) {
	store, _ := setupFilesystemStore(t)

	for _, path := range []string{"../secret", "/etc/passwd", "dockan/../../x", ""} {
		t.Run(path, func(t *testing.T) {
			_, err := store.Exists(context.Background(), path)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestFilesystemBlobStore_Open(t *testing.T) {
	store, _ := setupFilesystemStore(t)

	t.Run("Seekable", func(t *testing.T) {
		body, err := store.Open(context.Background(), "dockan/temperature/2023-01-01.csv")
		require.NoError(t, err)
		defer body.Close()

		_, ok := body.(io.ReaderAt)
		assert.True(t, ok)

		data, err := io.ReadAll(body)
		require.NoError(t, err)
		assert.Equal(t, "2023-01-01T00:00:00;1\n", string(data))
	})

	t.Run("NotFound", func(t *testing.T) {
		body, err := store.Open(context.Background(), "dockan/humidity/2023-01-01.csv")
		assert.Nil(t, body)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestFilesystemBlobStore_Ping(t *testing.T) {
	store, root := setupFilesystemStore(t)
	assert.NoError(t, store.Ping(context.Background()))
	assert.Equal(t, "filesystem", store.Name())

	require.NoError(t, os.RemoveAll(root))
	err := store.Ping(context.Background())
	assert.True(t, errors.IsStorageError(err))
}
