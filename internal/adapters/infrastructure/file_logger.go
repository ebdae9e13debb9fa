package infrastructure

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"weatherdata.app/internal/ports"
	"weatherdata.app/pkg/errors"
	"weatherdata.app/pkg/logger"
)

// FileLoggerAdapter writes structured JSON lines to a file
type FileLoggerAdapter struct {
	file   *os.File
	logger *slog.Logger
	mutex  sync.Mutex
	closed bool
}

// NewFileLoggerAdapter opens logPath for appending, creating parent directories as needed
func NewFileLoggerAdapter(logPath, level string) (*FileLoggerAdapter, error) {
	if strings.TrimSpace(logPath) == "" {
		return nil, errors.NewConfigurationError("log file path cannot be empty", nil)
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, errors.NewConfigurationError("failed to create log directory", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.NewConfigurationError("failed to open log file", err)
	}

	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: logger.ParseLevel(level)})
	return &FileLoggerAdapter{
		file:   file,
		logger: slog.New(handler),
	}, nil
}

// Debug logs a debug message to file
func (f *FileLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	f.write(slog.LevelDebug, msg, fields)
}

// Info logs an info message to file
func (f *FileLoggerAdapter) Info(msg string, fields ...ports.Field) {
	f.write(slog.LevelInfo, msg, fields)
}

// Warn logs a warning message to file
func (f *FileLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	f.write(slog.LevelWarn, msg, fields)
}

// Error logs an error message to file
func (f *FileLoggerAdapter) Error(msg string, fields ...ports.Field) {
	f.write(slog.LevelError, msg, fields)
}

func (f *FileLoggerAdapter) write(level slog.Level, msg string, fields []ports.Field) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.closed {
		return
	}
	(&SlogLoggerAdapter{logger: f.logger}).log(level, msg, fields)
}

// Close flushes and closes the log file. Later writes are dropped.
func (f *FileLoggerAdapter) Close() error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.closed {
		return nil
	}
	f.closed = true
	return f.file.Close()
}
