// Package otelsinks provides Sink implementations that route rendered lines
// through structured logging, including the OpenTelemetry slog bridge so that
// emitted lines correlate with active traces.
package otelsinks

import (
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"

	"github.com/sysulq/decorator-go"
)

// SlogSink emits rendered lines through a slog.Logger at info level.
type SlogSink struct {
	logger *slog.Logger
}

var _ decorator.Sink = (*SlogSink)(nil)

// NewSlogSink wraps an existing slog.Logger.
func NewSlogSink(logger *slog.Logger) *SlogSink {
	return &SlogSink{logger: logger}
}

// NewSlogSinkWithHandler builds the sink's logger from a handler.
func NewSlogSinkWithHandler(handler slog.Handler) *SlogSink {
	return &SlogSink{logger: slog.New(handler)}
}

// NewSlogBridgeSink builds a sink whose logger goes through the OpenTelemetry
// slog bridge. Lines emitted inside a traced call carry the span context of
// that call.
func NewSlogBridgeSink(name string) *SlogSink {
	return &SlogSink{logger: otelslog.NewLogger(name)}
}

// Emit writes one rendered line.
func (s *SlogSink) Emit(line string) {
	s.logger.Info(line)
}
