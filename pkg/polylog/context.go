package polylog

import "context"

// CtxKey is the key used to store the polylog.Logger in a context.Context. It
// is independent of any implementation-specific context key the underlying
// logging library may also use.
const CtxKey = "polylog/context"

// DefaultContextLogger is returned by Ctx when no logger is associated with a
// context. It is assigned in the implementation package's init() function to
// avoid import cycles; the default implementation is polyzero.
var DefaultContextLogger Logger

// Ctx returns the Logger associated with ctx. If none is associated,
// DefaultContextLogger is returned.
func Ctx(ctx context.Context) Logger {
	logger, ok := ctx.Value(CtxKey).(Logger)
	if !ok {
		return DefaultContextLogger
	}
	return logger
}
