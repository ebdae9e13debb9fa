package telemetry

import (
	"fmt"
	"io"
	"strings"
	"time"

	"weatherdata.app/pkg/errors"
	"weatherdata.app/pkg/validation"
)

// DateLayout is the day format used in blob, archive entry and cache names.
const DateLayout = "2006-01-02"

// MetricKind identifies one of the measured quantities. The set is closed.
type MetricKind int

const (
	MetricTemperature MetricKind = iota + 1
	MetricHumidity
	MetricRainfall
)

// AllMetrics returns every MetricKind in declaration order.
func AllMetrics() []MetricKind {
	return []MetricKind{MetricTemperature, MetricHumidity, MetricRainfall}
}

// String returns the capitalised metric name
func (m MetricKind) String() string {
	switch m {
	case MetricTemperature:
		return "Temperature"
	case MetricHumidity:
		return "Humidity"
	case MetricRainfall:
		return "Rainfall"
	default:
		return fmt.Sprintf("MetricKind(%d)", int(m))
	}
}

// PathName returns the lower-cased name used in storage paths.
func (m MetricKind) PathName() string {
	return strings.ToLower(m.String())
}

// IsValid reports whether m is one of the known metrics
func (m MetricKind) IsValid() bool {
	return m == MetricTemperature || m == MetricHumidity || m == MetricRainfall
}

// ParseMetricKind resolves a metric name case-insensitively.
func ParseMetricKind(name string) (MetricKind, error) {
	for _, m := range AllMetrics() {
		if strings.EqualFold(strings.TrimSpace(name), m.String()) {
			return m, nil
		}
	}
	return 0, errors.NewValidationError(fmt.Sprintf("unknown metric %q: expected one of temperature, humidity, rainfall", name))
}

// MarshalText implements encoding.TextMarshaler
func (m MetricKind) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("invalid metric kind %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (m *MetricKind) UnmarshalText(text []byte) error {
	parsed, err := ParseMetricKind(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Origin is the storage tier a stream was resolved from
type Origin string

const (
	OriginCacheFile      Origin = "cache-file"
	OriginStandaloneFile Origin = "standalone-file"
	OriginArchiveEntry   Origin = "archive-entry"
)

// TimedValue is one decoded CSV row
type TimedValue struct {
	Date  time.Time `json:"date"`
	Value float32   `json:"value"`
}

// WeatherRecord merges every metric observed at one timestamp
type WeatherRecord struct {
	Date        time.Time `json:"date"`
	Temperature *float32  `json:"temperature"`
	Humidity    *float32  `json:"humidity"`
	Rainfall    *float32  `json:"rainfall"`
}

// Set stores value in the field belonging to metric. Later calls overwrite earlier ones.
func (r *WeatherRecord) Set(metric MetricKind, value float32) {
	v := value
	switch metric {
	case MetricTemperature:
		r.Temperature = &v
	case MetricHumidity:
		r.Humidity = &v
	case MetricRainfall:
		r.Rainfall = &v
	}
}

// Get returns the value stored for metric, if any.
func (r *WeatherRecord) Get(metric MetricKind) (float32, bool) {
	var field *float32
	switch metric {
	case MetricTemperature:
		field = r.Temperature
	case MetricHumidity:
		field = r.Humidity
	case MetricRainfall:
		field = r.Rainfall
	}
	if field == nil {
		return 0, false
	}
	return *field, true
}

// StreamKey identifies one daily CSV for a device and metric
type StreamKey struct {
	Device string
	Date   time.Time
	Metric MetricKind
}

// FileName is the daily CSV name, shared by standalone blobs and archive entries.
func (k StreamKey) FileName() string {
	return k.Date.Format(DateLayout) + ".csv"
}

// StandalonePath is the blob path of the uncompressed daily file.
func (k StreamKey) StandalonePath() string {
	return k.Device + "/" + k.Metric.PathName() + "/" + k.FileName()
}

// ArchivePath is the blob path of the metric's historical archive.
func (k StreamKey) ArchivePath() string {
	return k.Device + "/" + k.Metric.PathName() + "/historical.zip"
}

// CacheKey is the flat name of the local cache entry.
func (k StreamKey) CacheKey() string {
	return k.Device + "-" + k.Metric.PathName() + "-" + k.FileName()
}

// ResolvedStream is an open CSV stream plus the tier it came from.
// The caller owns Body and must Close it.
type ResolvedStream struct {
	Metric MetricKind
	Origin Origin
	Body   io.ReadCloser
}

// Close releases the stream and every resource opened to produce it.
func (s *ResolvedStream) Close() error {
	if s == nil || s.Body == nil {
		return nil
	}
	return s.Body.Close()
}

// DayRequest selects a device and calendar day, optionally narrowed to one metric
type DayRequest struct {
	DeviceID string
	Date     time.Time
	Metric   MetricKind
}

// Normalize trims the device id and truncates Date to its calendar day.
func (r *DayRequest) Normalize() {
	r.DeviceID = strings.TrimSpace(r.DeviceID)
	y, m, d := r.Date.Date()
	r.Date = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsValid validates the device and date. Metric is checked by ValidateMetric.
func (r *DayRequest) IsValid() error {
	if !validation.IsNotEmpty(r.DeviceID) {
		return fmt.Errorf("device id cannot be empty")
	}
	if !validation.IsSafePathSegment(r.DeviceID) {
		return fmt.Errorf("device id %q is not a valid path segment", r.DeviceID)
	}
	if r.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	return nil
}

// ValidateMetric checks that a single-metric request names a known metric.
func (r *DayRequest) ValidateMetric() error {
	if !r.Metric.IsValid() {
		return fmt.Errorf("metric is required")
	}
	return nil
}

// Key returns the stream key for metric on this request's device and day.
func (r *DayRequest) Key(metric MetricKind) StreamKey {
	return StreamKey{Device: r.DeviceID, Date: r.Date, Metric: metric}
}

// ParseDay accepts yyyy-MM-dd or an RFC 3339 timestamp and returns the calendar day.
func ParseDay(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}
	t, err := ParseTimestamp(value)
	if err != nil {
		return time.Time{}, errors.NewValidationError(fmt.Sprintf("invalid date %q: expected yyyy-MM-dd", value))
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}
