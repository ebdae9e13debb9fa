package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"weatherdata.app/internal/adapters/api"
	"weatherdata.app/internal/adapters/infrastructure"
	"weatherdata.app/internal/config"
	"weatherdata.app/internal/core/telemetry"
	"weatherdata.app/internal/ports"
)

type Application struct {
	config *config.Config

	// Use Cases
	telemetryUseCase *telemetry.UseCase

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	deps    *DependencyContainer
	ports   *ports.ApplicationPorts
	janitor *infrastructure.CacheJanitor
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return NewApplicationWithConfig(cfg)
}

// NewApplicationWithConfig wires every adapter for an already validated configuration
func NewApplicationWithConfig(cfg *config.Config) (*Application, error) {
	app := &Application{config: cfg}

	if err := app.initializePorts(); err != nil {
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	if err := app.initializeUseCases(); err != nil {
		_ = app.deps.Close()
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		_ = app.deps.Close()
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializePorts() error {
	slog.Info("Initializing application ports...")

	deps, err := NewDependencyContainer(a.config)
	if err != nil {
		return fmt.Errorf("create dependency container: %w", err)
	}

	a.deps = deps
	a.ports = deps.ApplicationPorts()
	slog.Info("Application ports initialized successfully")
	return nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	resolver, err := telemetry.NewStreamResolver(telemetry.ResolverDependencies{
		BlobStore: a.ports.BlobStore,
		Cache:     a.ports.StreamCache,
		Logger:    a.ports.Logger,
		Metrics:   a.ports.TelemetryMetrics,
	})
	if err != nil {
		return fmt.Errorf("create stream resolver: %w", err)
	}

	telemetryUseCase, err := telemetry.NewUseCase(telemetry.UseCaseDependencies{
		Resolver: resolver,
		Logger:   a.ports.Logger,
		Metrics:  a.ports.TelemetryMetrics,
	})
	if err != nil {
		return fmt.Errorf("create telemetry use case: %w", err)
	}
	a.telemetryUseCase = telemetryUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	serverConfig := a.ports.ConfigProvider.GetServerConfig()
	cacheConfig := a.ports.ConfigProvider.GetCacheConfig()

	metricsCollector := infrastructure.NewMetricsCollectorAdapter(infrastructure.MetricsCollectorConfig{
		TelemetryMetrics: a.ports.TelemetryMetrics,
		CacheMetrics:     a.ports.CacheMetrics,
		CacheName:        cacheConfig.Type,
	})

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		StorageChecker: infrastructure.NewStorageHealthChecker(a.ports.BlobStore, 0),
		CacheChecker:   infrastructure.NewCacheHealthChecker(a.ports.StreamCache, a.ports.CacheMetrics, 0),
		ConfigProvider: a.ports.ConfigProvider,
	})

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port:           serverConfig.Port,
			RequestTimeout: serverConfig.RequestTimeout,
		},
		TelemetryUseCase: a.telemetryUseCase,
		MetricsCollector: metricsCollector,
		HealthChecker:    systemHealthChecker,
		Gatherer:         a.deps.Registry(),
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	// Store router for testing access
	a.router = httpAdapter.GetRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: serverConfig.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "X-Telemetry-Origin"},
	})

	a.httpServer = &http.Server{
		Addr:              httpAdapter.Addr(),
		Handler:           corsHandler.Handler(a.router),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	janitor, err := a.deps.NewCacheJanitor()
	if err != nil {
		return fmt.Errorf("create cache janitor: %w", err)
	}
	a.janitor = janitor

	slog.Info("Adapters initialized successfully")
	return nil
}

func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	if a.janitor != nil {
		if err := a.janitor.Start(); err != nil {
			return fmt.Errorf("start cache janitor: %w", err)
		}
	}

	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if a.janitor != nil {
		a.janitor.Stop()
	}

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.deps.Close(); err != nil {
		slog.Warn("Error closing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// Handler returns the CORS-wrapped handler served by the HTTP server
func (a *Application) Handler() http.Handler {
	return a.httpServer.Handler
}

// GetTelemetryUseCase returns the telemetry use case for testing
func (a *Application) GetTelemetryUseCase() *telemetry.UseCase {
	return a.telemetryUseCase
}
