package polylog

import (
	"context"
	"time"
)

// Level is the severity of a log line. Implementations map it onto the levels
// of their underlying logging library.
type Level interface {
	String() string
	Int() int
}

// LoggerOption configures a Logger implementation at construction time.
type LoggerOption func(logger Logger)

// Logger is the logging interface used throughout the module. It mirrors the
// zerolog API closely so that the zerolog-backed implementation stays thin.
type Logger interface {
	// Debug starts a new message with debug level.
	Debug() Event
	// Info starts a new message with info level.
	Info() Event
	// Warn starts a new message with warn level.
	Warn() Event
	// Error starts a new message with error level.
	Error() Event

	// With returns a child logger with keyVals added to every line it emits.
	With(keyVals ...any) Logger

	// WithContext returns a copy of ctx with the receiver attached, retrievable
	// via Ctx.
	WithContext(ctx context.Context) context.Context
}

// Event is a single log line under construction. Nothing is written until one
// of Msg, Msgf or Send is called.
type Event interface {
	Str(key, value string) Event
	Strs(key string, values []string) Event
	Bool(key string, value bool) Event
	Int(key string, value int) Event
	Int64(key string, value int64) Event
	Uint64(key string, value uint64) Event
	Err(err error) Event
	Dur(key string, value time.Duration) Event
	Fields(fields any) Event
	Enabled() bool

	Msg(msg string)
	Msgf(format string, args ...any)
	Send()
}
