package polylog_test

import (
	"context"
	"os"

	"github.com/pokt-network/ibcquery/pkg/polylog"
	"github.com/pokt-network/ibcquery/pkg/polylog/polyzero"
)

func ExampleCtx() {
	logger := polyzero.NewLogger(
		polyzero.WithLevel(polyzero.InfoLevel),
		polyzero.WithOutput(os.Stdout),
	).With("component", "projector")

	// Callers down the stack only receive the context.
	ctx := logger.WithContext(context.Background())

	polylog.Ctx(ctx).Info().
		Str("query_height", "1-42").
		Msg("projected request")

	// Output:
	// {"level":"info","component":"projector","query_height":"1-42","message":"projected request"}
}
