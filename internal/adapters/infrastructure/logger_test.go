package infrastructure

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherdata.app/internal/mocks"
	"weatherdata.app/internal/ports"
	"weatherdata.app/pkg/errors"
)

func TestSlogLoggerAdapter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLoggerAdapter(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	tests := []struct {
		name  string
		log   func(msg string, fields ...ports.Field)
		level string
	}{
		{"Debug", logger.Debug, "DEBUG"},
		{"Info", logger.Info, "INFO"},
		{"Warn", logger.Warn, "WARN"},
		{"Error", logger.Error, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.log("Stream resolved", ports.F("device", "dockan"), ports.F("error", errors.NewNotFoundError("no blob")))

			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, "Stream resolved", entry["msg"])
			assert.Equal(t, "dockan", entry["device"])
			assert.Equal(t, "NOT_FOUND_ERROR: no blob", entry["error"])
		})
	}
}

func TestSlogLoggerAdapter_DefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })

	NewSlogLoggerAdapter(nil).Info("hello", ports.F("k", "v"))

	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "k=v")
}

func TestFanoutLogger(t *testing.T) {
	first := mocks.NewLogger(t)
	second := mocks.NewLogger(t)

	for _, l := range []*mocks.Logger{first, second} {
		l.EXPECT().Debug("d").Once()
		l.EXPECT().Info("i", mock.Anything).Once()
		l.EXPECT().Warn("w").Once()
		l.EXPECT().Error("e", mock.Anything, mock.Anything).Once()
	}

	logger := NewFanoutLogger(first, second)
	logger.Debug("d")
	logger.Info("i", ports.F("a", 1))
	logger.Warn("w")
	logger.Error("e", ports.F("a", 1), ports.F("b", 2))
}
