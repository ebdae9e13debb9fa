package ports

import "time"

// TelemetryMetrics defines the contract for recording retrieval pipeline metrics
type TelemetryMetrics interface {
	RecordResolution(metric, origin string)
	RecordNotFound(metric string)
	RecordParseFailure(metric string)
	RecordCacheWriteFailure(metric string)
	ObserveBlobOperation(operation string, duration time.Duration, err error)
	Snapshot() TelemetryStats
}

// TelemetryStats is a point-in-time view of the counters behind TelemetryMetrics
type TelemetryStats struct {
	Resolutions        map[string]int64
	NotFound           int64
	ParseFailures      int64
	CacheWriteFailures int64
	BlobErrors         int64
}
