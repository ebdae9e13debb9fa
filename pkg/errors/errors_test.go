package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *AppError
		expected string
	}{
		{
			name: "ErrorWithoutCause",
			setup: func() *AppError {
				return New(ValidationError, "device id is required")
			},
			expected: "VALIDATION_ERROR: device id is required",
		},
		{
			name: "ErrorWithCause",
			setup: func() *AppError {
				cause := fmt.Errorf("connection reset")
				return Wrap(StorageError, "open blob", cause)
			},
			expected: "STORAGE_ERROR: open blob (caused by: connection reset)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.setup()
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("bad token")
	err := NewParseError("line 3", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.Nil(t, NewNotFoundError("missing").Unwrap())
}

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  string
	}{
		{ErrorTypeValidation, "VALIDATION_ERROR"},
		{ErrorTypeNotFound, "NOT_FOUND_ERROR"},
		{ErrorTypeParse, "PARSE_ERROR"},
		{ErrorTypeStorage, "STORAGE_ERROR"},
		{ErrorTypeCacheWrite, "CACHE_WRITE_ERROR"},
		{ErrorTypeConfiguration, "CONFIGURATION_ERROR"},
		{ErrorTypeUnknown, "UNKNOWN_ERROR"},
		{ErrorType(99), "UNKNOWN_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errorType.String())
		})
	}
}

func TestTypeCheckers_SeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("resolve humidity: %w", NewStorageError("exists", nil))

	assert.True(t, IsStorageError(wrapped))
	assert.False(t, IsParseError(wrapped))
	assert.Equal(t, StorageError, TypeOf(wrapped))

	assert.True(t, IsNotFoundError(fmt.Errorf("x: %w", NewNotFoundError("none"))))
	assert.True(t, IsValidationError(NewValidationError("bad")))
	assert.True(t, IsCacheWriteError(NewCacheWriteError("disk full", nil)))
	assert.True(t, IsConfigurationError(NewConfigurationError("bad", nil)))
	assert.Equal(t, ErrorTypeUnknown, TypeOf(fmt.Errorf("plain")))
	assert.Equal(t, ErrorTypeUnknown, TypeOf(nil))
}
