package telemetry

import (
	"sort"
	"sync"
	"time"
)

// recordSet merges values from concurrently decoded metrics by timestamp.
type recordSet struct {
	mu      sync.Mutex
	records map[time.Time]*WeatherRecord
}

func newRecordSet() *recordSet {
	return &recordSet{records: make(map[time.Time]*WeatherRecord)}
}

// add stores v under its timestamp, creating the record on first sight.
// A repeated timestamp for the same metric overwrites the earlier value.
func (s *recordSet) add(metric MetricKind, v TimedValue) {
	key := v.Date.UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[key]
	if !ok {
		record = &WeatherRecord{Date: key}
		s.records[key] = record
	}
	record.Set(metric, v.Value)
}

// sorted returns the records ordered ascending by timestamp.
func (s *recordSet) sorted() []WeatherRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]WeatherRecord, 0, len(s.records))
	for _, record := range s.records {
		out = append(out, *record)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}
