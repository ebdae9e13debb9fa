package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Storage
	BlobStore   BlobStore
	StreamCache StreamCache

	// Metrics
	TelemetryMetrics TelemetryMetrics
	CacheMetrics     CacheMetrics

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
}
