package sugiyama

import (
	"fmt"

	"golang.org/x/xerrors"
)

// ConfigError reports a single out-of-range or unrecognized configuration
// field. Config.Validate returns every ConfigError it finds combined via
// multierr, rather than stopping at the first one.
type ConfigError struct {
	Field string
	Value interface{}
	cause error
}

func newConfigError(field string, value interface{}, reason string) *ConfigError {
	return &ConfigError{
		Field: field,
		Value: value,
		cause: xerrors.Errorf("sugiyama: invalid config field %q = %v: %s", field, value, reason),
	}
}

func (e *ConfigError) Error() string { return e.cause.Error() }
func (e *ConfigError) Unwrap() error { return e.cause }

// LogicInvariant reports a phase detecting a violated internal invariant
// (e.g. a non-tight tree edge surviving network simplex, or a non-DAG
// surviving P0). It is never recoverable; the caller should treat it as a
// bug report, not a normal error path.
type LogicInvariant struct {
	Phase     string
	Invariant string
	cause     error
}

func newLogicInvariant(phase, invariant string, detail ...interface{}) *LogicInvariant {
	msg := invariant
	if len(detail) > 0 {
		msg = fmt.Sprintf("%s (%v)", invariant, detail)
	}
	return &LogicInvariant{
		Phase:     phase,
		Invariant: invariant,
		cause:     xerrors.Errorf("sugiyama: invariant violated in %s: %s", phase, msg),
	}
}

func (e *LogicInvariant) Error() string { return e.cause.Error() }
func (e *LogicInvariant) Unwrap() error { return e.cause }
