// Package log provides an interface to setup logging when using 'triage-common'.
package log

// Logger interface which allows applications to provide custom logger implementations.
type Logger interface {
	Log(level Level, format string, args ...any)
}

// nopLogger is the logger used when none is supplied, it discards everything.
type nopLogger struct{}

func (n nopLogger) Log(_ Level, _ string, _ ...any) {}
