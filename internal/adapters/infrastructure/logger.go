package infrastructure

import (
	"context"
	"log/slog"

	"weatherdata.app/internal/ports"
)

// SlogLoggerAdapter implements the Logger port using slog
type SlogLoggerAdapter struct {
	logger *slog.Logger
}

// NewSlogLoggerAdapter wraps logger; nil means the process-wide slog default
func NewSlogLoggerAdapter(logger *slog.Logger) *SlogLoggerAdapter {
	return &SlogLoggerAdapter{logger: logger}
}

// Debug logs a debug message
func (l *SlogLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	l.log(slog.LevelDebug, msg, fields)
}

// Info logs an info message
func (l *SlogLoggerAdapter) Info(msg string, fields ...ports.Field) {
	l.log(slog.LevelInfo, msg, fields)
}

// Warn logs a warning message
func (l *SlogLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	l.log(slog.LevelWarn, msg, fields)
}

// Error logs an error message
func (l *SlogLoggerAdapter) Error(msg string, fields ...ports.Field) {
	l.log(slog.LevelError, msg, fields)
}

func (l *SlogLoggerAdapter) log(level slog.Level, msg string, fields []ports.Field) {
	logger := l.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.LogAttrs(context.Background(), level, msg, toAttrs(fields)...)
}

func toAttrs(fields []ports.Field) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(fields))
	for _, field := range fields {
		if err, ok := field.Value.(error); ok && err != nil {
			attrs = append(attrs, slog.String(field.Key, err.Error()))
			continue
		}
		attrs = append(attrs, slog.Any(field.Key, field.Value))
	}
	return attrs
}

// FanoutLogger forwards every entry to each wrapped logger
type FanoutLogger struct {
	loggers []ports.Logger
}

func NewFanoutLogger(loggers ...ports.Logger) *FanoutLogger {
	return &FanoutLogger{loggers: loggers}
}

func (f *FanoutLogger) Debug(msg string, fields ...ports.Field) {
	for _, l := range f.loggers {
		l.Debug(msg, fields...)
	}
}

func (f *FanoutLogger) Info(msg string, fields ...ports.Field) {
	for _, l := range f.loggers {
		l.Info(msg, fields...)
	}
}

func (f *FanoutLogger) Warn(msg string, fields ...ports.Field) {
	for _, l := range f.loggers {
		l.Warn(msg, fields...)
	}
}

func (f *FanoutLogger) Error(msg string, fields ...ports.Field) {
	for _, l := range f.loggers {
		l.Error(msg, fields...)
	}
}
