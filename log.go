package sugiyama

import (
	"context"

	"cdr.dev/slog"
)

// Logger is the injected sink the core reports to, at trace/error
// granularity only — the core never communicates any other way.
type Logger interface {
	Trace(msg string, fields ...slog.Field)
	Errorf(msg string, fields ...slog.Field)
}

// slogLogger adapts a cdr.dev/slog.Logger to Logger. Trace maps to slog's
// Debug level, the closest level below Info that slog exposes.
type slogLogger struct {
	ctx context.Context
	l   slog.Logger
}

// NewLogger wraps l as a Logger for injection into Layout.
func NewLogger(l slog.Logger) Logger {
	return &slogLogger{ctx: context.Background(), l: l}
}

func (s *slogLogger) Trace(msg string, fields ...slog.Field) {
	s.l.Debug(s.ctx, msg, fields...)
}

func (s *slogLogger) Errorf(msg string, fields ...slog.Field) {
	s.l.Error(s.ctx, msg, fields...)
}

type noopLogger struct{}

func (noopLogger) Trace(msg string, fields ...slog.Field)  {}
func (noopLogger) Errorf(msg string, fields ...slog.Field) {}

func orNoop(l Logger) Logger {
	if l == nil {
		return noopLogger{}
	}
	return l
}
