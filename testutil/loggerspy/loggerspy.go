// Package loggerspy provides a slog.Handler that records log records for assertions in tests.
package loggerspy

import (
	"context"
	"log/slog"
	"sync"
)

// LogHandlerSpy is a slog.Handler implementation that captures log records for testing.
type LogHandlerSpy struct {
	mu      sync.Mutex
	records []slog.Record
}

// New creates a LogHandlerSpy together with a *slog.Logger writing into it.
func New() (*LogHandlerSpy, *slog.Logger) {
	spy := &LogHandlerSpy{}

	return spy, slog.New(spy)
}

// Handle implements slog.Handler interface.
func (s *LogHandlerSpy) Handle(_ context.Context, record slog.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, record.Clone())

	return nil
}

// Enabled implements slog.Handler interface.
func (s *LogHandlerSpy) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// WithAttrs implements slog.Handler interface, attributes are not needed for assertions.
func (s *LogHandlerSpy) WithAttrs(_ []slog.Attr) slog.Handler {
	return s
}

// WithGroup implements slog.Handler interface.
func (s *LogHandlerSpy) WithGroup(_ string) slog.Handler {
	return s
}

// Records returns a copy of all captured log records.
func (s *LogHandlerSpy) Records() []slog.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]slog.Record, len(s.records))
	copy(records, s.records)

	return records
}

// HasLog reports whether a record with the given level and message was captured.
func (s *LogHandlerSpy) HasLog(level slog.Level, message string) bool {
	return s.findLog(level, message) != nil
}

// HasLogWithAttr reports whether a record with the given level and message carries an attribute with the given key.
func (s *LogHandlerSpy) HasLogWithAttr(level slog.Level, message string, key string) bool {
	record := s.findLog(level, message)
	if record == nil {
		return false
	}

	found := false
	record.Attrs(func(attr slog.Attr) bool {
		if attr.Key == key {
			found = true
			return false
		}

		return true
	})

	return found
}

func (s *LogHandlerSpy) findLog(level slog.Level, message string) *slog.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].Level == level && s.records[i].Message == message {
			record := s.records[i]
			return &record
		}
	}

	return nil
}
