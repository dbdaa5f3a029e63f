// Package report provides the outbound adapters for fleet report lines and
// hazard notifications. The domain emits plain text lines; this package
// decides where they end up.
package report

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"fleet/internal/core/domain/model/ship"
)

// ConsoleSink writes report lines to an io.Writer, one line each.
// Safe for concurrent use.
type ConsoleSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsoleSink creates a sink writing to the given writer.
func NewConsoleSink(w io.Writer) *ConsoleSink {
	return &ConsoleSink{w: w}
}

// WriteLine writes one report line followed by a newline.
func (s *ConsoleSink) WriteLine(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprintln(s.w, line)
}

// SlogSink forwards report lines to a structured logger at info level.
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink creates a sink logging through the given logger.
func NewSlogSink(logger *slog.Logger) *SlogSink {
	return &SlogSink{logger: logger.With("component", "fleet_report")}
}

// WriteLine logs one report line.
func (s *SlogSink) WriteLine(line string) {
	s.logger.Info(line)
}

// TeeSink fans one report line out to several sinks in order.
type TeeSink struct {
	sinks []ship.ReportSink
}

// NewTeeSink creates a sink that forwards to every given sink.
func NewTeeSink(sinks ...ship.ReportSink) *TeeSink {
	return &TeeSink{sinks: sinks}
}

// WriteLine forwards the line to every underlying sink.
func (s *TeeSink) WriteLine(line string) {
	for _, sink := range s.sinks {
		sink.WriteLine(line)
	}
}
