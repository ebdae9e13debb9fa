package external

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherdata.app/internal/mocks"
	"weatherdata.app/internal/ports"
	"weatherdata.app/pkg/errors"
)

func fieldMap(fields []ports.Field) map[string]interface{} {
	m := make(map[string]interface{}, len(fields))
	for _, f := range fields {
		m[f.Key] = f.Value
	}
	return m
}

func TestBlobStoreLoggingDecorator_Exists(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStore := mocks.NewBlobStore(t)
		mockLogger := mocks.NewLogger(t)

		mockStore.EXPECT().Name().Return("http")
		mockStore.EXPECT().Exists(mock.Anything, "dockan/temperature/2023-01-01.csv").Return(true, nil).Once()

		var completed map[string]interface{}
		mockLogger.EXPECT().Debug("Blob existence probe started", mock.Anything, mock.Anything, mock.Anything).Once()
		mockLogger.EXPECT().
			Info("Blob existence probe completed", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Run(func(msg string, fields ...ports.Field) { completed = fieldMap(fields) }).
			Once()

		decorator := NewBlobStoreLoggingDecorator(mockStore, mockLogger)
		exists, err := decorator.Exists(context.Background(), "dockan/temperature/2023-01-01.csv")

		require.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, "http", completed["store"])
		assert.Equal(t, "dockan/temperature/2023-01-01.csv", completed["path"])
		assert.Equal(t, "response", completed["event"])
		assert.Equal(t, true, completed["exists"])
		assert.Contains(t, completed, "duration_ms")
	})

	t.Run("Error", func(t *testing.T) {
		mockStore := mocks.NewBlobStore(t)
		mockLogger := mocks.NewLogger(t)
		storeErr := errors.NewStorageError("HEAD failed", nil)

		mockStore.EXPECT().Name().Return("http")
		mockStore.EXPECT().Exists(mock.Anything, "dockan/temperature/historical.zip").Return(false, storeErr).Once()

		mockLogger.EXPECT().Debug("Blob existence probe started", mock.Anything, mock.Anything, mock.Anything).Once()
		mockLogger.EXPECT().Error("Blob existence probe failed", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Once()

		decorator := NewBlobStoreLoggingDecorator(mockStore, mockLogger)
		exists, err := decorator.Exists(context.Background(), "dockan/temperature/historical.zip")

		assert.False(t, exists)
		assert.Equal(t, storeErr, err)
	})
}

func TestBlobStoreLoggingDecorator_Open(t *testing.T) {
	mockStore := mocks.NewBlobStore(t)
	mockLogger := mocks.NewLogger(t)

	mockStore.EXPECT().Name().Return("filesystem")
	mockStore.EXPECT().Open(mock.Anything, "dockan/rainfall/2023-01-01.csv").
		Return(io.NopCloser(strings.NewReader("x")), nil).Once()
	mockStore.EXPECT().Ping(mock.Anything).Return(nil).Once()

	mockLogger.EXPECT().Debug("Blob open started", mock.Anything, mock.Anything, mock.Anything).Once()
	mockLogger.EXPECT().Info("Blob open completed", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Once()

	decorator := NewBlobStoreLoggingDecorator(mockStore, mockLogger)
	body, err := decorator.Open(context.Background(), "dockan/rainfall/2023-01-01.csv")

	require.NoError(t, err)
	require.NoError(t, body.Close())
	assert.NoError(t, decorator.Ping(context.Background()))
	assert.Equal(t, "logged(filesystem)", decorator.Name())
}

func TestMeteredBlobStore(t *testing.T) {
	mockStore := mocks.NewBlobStore(t)
	mockMetrics := mocks.NewTelemetryMetrics(t)
	notFound := errors.NewNotFoundError("blob not found")

	mockStore.EXPECT().Exists(mock.Anything, "a/b/c.csv").Return(true, nil).Once()
	mockStore.EXPECT().Open(mock.Anything, "a/b/c.csv").Return(nil, notFound).Once()
	mockStore.EXPECT().Name().Return("http")

	mockMetrics.EXPECT().ObserveBlobOperation("exists", mock.AnythingOfType("time.Duration"), nil).Once()
	mockMetrics.EXPECT().ObserveBlobOperation("open", mock.AnythingOfType("time.Duration"), notFound).
		Run(func(operation string, duration time.Duration, err error) {
			assert.GreaterOrEqual(t, duration, time.Duration(0))
		}).Once()

	store := NewMeteredBlobStore(mockStore, mockMetrics)

	exists, err := store.Exists(context.Background(), "a/b/c.csv")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = store.Open(context.Background(), "a/b/c.csv")
	assert.True(t, errors.IsNotFoundError(err))
	assert.Equal(t, "http", store.Name())
}
