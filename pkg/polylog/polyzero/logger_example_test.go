package polyzero_test

import (
	"os"

	"github.com/pokt-network/ibcquery/pkg/polylog/polyzero"
)

func ExampleNewLogger() {
	// Writing to stdout makes the output checkable; the default is os.Stderr.
	logger := polyzero.NewLogger(
		polyzero.WithLevel(polyzero.InfoLevel),
		polyzero.WithOutput(os.Stdout),
	)

	// Below the configured level, events are dropped.
	logger.Debug().Msg("not written")
	logger.Info().Msgf("built %d queries", 2)
	logger.Warn().Str("path", "zz").Msg("query path is not valid hex")
	logger.Error().Fields(map[string]any{"kind": "packet"}).Send()

	// Output:
	// {"level":"info","message":"built 2 queries"}
	// {"level":"warn","path":"zz","message":"query path is not valid hex"}
	// {"level":"error","kind":"packet"}
}
