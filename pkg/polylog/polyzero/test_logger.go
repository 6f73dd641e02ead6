package polyzero

import (
	"github.com/rs/zerolog"

	"github.com/pokt-network/ibcquery/pkg/polylog"
)

// GetZerologLogger returns the zerolog logger behind a logger built by
// NewLogger, for tests asserting on its configuration. It panics for other
// polylog.Logger implementations.
func GetZerologLogger(polylogger polylog.Logger) *zerolog.Logger {
	return &polylogger.(*zerologLogger).Logger
}
