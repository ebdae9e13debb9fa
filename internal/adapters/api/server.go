// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherdata.app/internal/core/telemetry"
	"weatherdata.app/internal/ports"
	"weatherdata.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port           int
	RequestTimeout time.Duration
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router           *gin.Engine
	config           ServerConfig
	telemetryUseCase TelemetryUseCase
	metricsCollector MetricsCollector
	healthChecker    ports.SystemHealthChecker
	gatherer         prometheus.Gatherer
}

// TelemetryUseCase is the read side the HTTP adapter depends on
type TelemetryUseCase interface {
	OneMetricForDay(ctx context.Context, request telemetry.DayRequest) ([]telemetry.TimedValue, error)
	AllMetricsForDay(ctx context.Context, request telemetry.DayRequest) ([]telemetry.WeatherRecord, error)
	OpenMetricStream(ctx context.Context, request telemetry.DayRequest) (*telemetry.ResolvedStream, error)
}

type MetricsCollector interface {
	GetMetrics(ctx context.Context) (map[string]interface{}, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config           ServerConfig
	TelemetryUseCase TelemetryUseCase
	MetricsCollector MetricsCollector
	HealthChecker    ports.SystemHealthChecker
	// Gatherer backs /metrics; nil means the default Prometheus registry.
	Gatherer prometheus.Gatherer
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}
	if err := RegisterValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestIDMiddleware(), requestLogger())
	if opts.Config.RequestTimeout > 0 {
		router.Use(timeoutMiddleware(opts.Config.RequestTimeout))
	}

	server := &HTTPServerAdapter{
		router:           router,
		config:           opts.Config,
		telemetryUseCase: opts.TelemetryUseCase,
		metricsCollector: opts.MetricsCollector,
		healthChecker:    opts.HealthChecker,
		gatherer:         gatherer,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.TelemetryUseCase == nil {
		return errors.NewValidationError("telemetry use case is required")
	}
	if opts.MetricsCollector == nil {
		return errors.NewValidationError("metrics collector is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		devices := api.Group("/v1/devices/:deviceId")
		devices.GET("/data/:date", s.getDayData)
		devices.GET("/data/:date/:metric", s.getMetricData)
		devices.GET("/raw/:date/:metric", s.getRawMetric)

		api.GET("/metrics", s.getMetrics)
	}

	s.router.GET("/health", s.getHealth)
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

// Addr returns the listen address for the configured port
func (s *HTTPServerAdapter) Addr() string {
	return fmt.Sprintf(":%d", s.config.Port)
}
