// Package applog defines the narrow logging seam the driver depends on. Production code talks to the Logger interface only, never to
// zap directly, so tests can swap in NoneLogger without pulling in a real
// sink.
package applog

// Logger is the common interface for log implementations used across the
// engine.
type Logger interface {
	Info(args ...any)
	Infof(format string, args ...any)

	Warn(args ...any)
	Warnf(format string, args ...any)

	Error(args ...any)
	Errorf(format string, args ...any)

	// Sync flushes any buffered log entries. Safe to call on every logger
	// implementation, including NoneLogger.
	Sync() error
}

// Level represents the minimum severity a Logger will emit.
type Level int8

const (
	ErrorLevel Level = iota
	WarnLevel
	InfoLevel
	DebugLevel
)

// ParseLevel maps a config string to a Level, defaulting to InfoLevel for
// anything unrecognized.
func ParseLevel(s string) Level {
	switch s {
	case "error":
		return ErrorLevel
	case "warn":
		return WarnLevel
	case "debug":
		return DebugLevel
	default:
		return InfoLevel
	}
}
