package polyzero

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/pokt-network/ibcquery/pkg/polylog"
)

// Levels mirror zerolog's numbering so a Level converts directly.
const (
	DebugLevel = Level(zerolog.DebugLevel)
	InfoLevel  = Level(zerolog.InfoLevel)
	WarnLevel  = Level(zerolog.WarnLevel)
	ErrorLevel = Level(zerolog.ErrorLevel)
)

var _ polylog.Level = Level(0)

// Level implements the polylog.Level interface for zerolog levels.
type Level int

// Levels is a convenience function to return all supported levels.
func Levels() []Level {
	return []Level{
		DebugLevel,
		InfoLevel,
		WarnLevel,
		ErrorLevel,
	}
}

// ParseLevel maps a level name (debug|info|warn|error) to a Level. Unknown
// names fall back to InfoLevel.
func ParseLevel(levelStr string) Level {
	for _, level := range Levels() {
		if strings.EqualFold(level.String(), levelStr) {
			return level
		}
	}
	return InfoLevel
}

// String implements polylog.Level#String().
func (lvl Level) String() string {
	return zerolog.Level(lvl).String()
}

// Int implements polylog.Level#Int().
func (lvl Level) Int() int {
	return int(lvl)
}
