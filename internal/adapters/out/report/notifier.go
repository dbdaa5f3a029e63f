package report

import (
	"log/slog"

	"fleet/internal/core/domain/model/ship"
)

// SlogNotifier reports hazard messages through a structured logger at warn
// level. Hazard messages never block the operation that raised them, so
// logging is all this adapter does.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a notifier logging through the given logger.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{logger: logger.With("component", "hazard_notifier")}
}

// NotifyDanger logs one hazard message.
func (n *SlogNotifier) NotifyDanger(message string) {
	n.logger.Warn(message)
}

// SinkNotifier forwards hazard messages to a report sink so they appear
// inline with the fleet's report lines.
type SinkNotifier struct {
	sink ship.ReportSink
}

// NewSinkNotifier creates a notifier writing hazards to the given sink.
func NewSinkNotifier(sink ship.ReportSink) *SinkNotifier {
	return &SinkNotifier{sink: sink}
}

// NotifyDanger writes one hazard message as a report line.
func (n *SinkNotifier) NotifyDanger(message string) {
	n.sink.WriteLine(message)
}
