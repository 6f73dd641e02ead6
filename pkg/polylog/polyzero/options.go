package polyzero

import (
	"io"

	"github.com/pokt-network/ibcquery/pkg/polylog"
)

// WithOutput sets the writer log lines are written to.
func WithOutput(output io.Writer) polylog.LoggerOption {
	return func(logger polylog.Logger) {
		logger.(*zerologLogger).Logger = logger.(*zerologLogger).Logger.Output(output)
	}
}

// WithLevel sets the lowest level which will be logged.
func WithLevel(level Level) polylog.LoggerOption {
	return func(logger polylog.Logger) {
		logger.(*zerologLogger).level = level
	}
}

// WithTimestamp adds a timestamp field to every log line.
func WithTimestamp() polylog.LoggerOption {
	return func(logger polylog.Logger) {
		ze := logger.(*zerologLogger)
		ze.Logger = ze.Logger.With().Timestamp().Logger()
	}
}
