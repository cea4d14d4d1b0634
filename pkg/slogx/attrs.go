package slogx

import (
	"fmt"
	"log/slog"
	"time"
)

const (
	// KeyLoggerName is the attribute key naming the component that logged.
	KeyLoggerName = "logger"
	// KeyTrace is the attribute key for formatted stack traces.
	KeyTrace = "trace"
	// KeyKind is the attribute key for an outcome kind.
	KeyKind = "kind"
)

// Error returns a slog.Attr with key "error" holding the error's message.
// A nil error is rendered as an empty string.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

// Stringer creates a slog.Attr with the provided key and the string
// representation of value.
func Stringer(key string, value fmt.Stringer) slog.Attr {
	return slog.String(key, value.String())
}

// LoggerName returns an attribute for the logger name.
func LoggerName(name string) slog.Attr {
	return slog.String(KeyLoggerName, name)
}

// Trace renders a stack trace (anything that understands the %+v verb, such as
// a github.com/pkg/errors StackTrace) with file and line information.
func Trace(st fmt.Formatter) slog.Attr {
	return slog.String(KeyTrace, fmt.Sprintf("%+v", st))
}

// Kind returns an attribute for an outcome kind, rendered by name.
func Kind(kind fmt.Stringer) slog.Attr {
	return slog.String(KeyKind, kind.String())
}

// Duration renders d in its human readable form ("1.5s") instead of the
// nanosecond count JSON handlers emit for slog.Duration.
func Duration(key string, d time.Duration) slog.Attr {
	return slog.String(key, d.String())
}
