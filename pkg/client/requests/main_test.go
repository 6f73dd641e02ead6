package requests

import (
	"testing"

	"go.uber.org/goleak"
)

// Building and projecting requests must never start a goroutine. Goroutines
// started by dependencies at init time are not ours.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("github.com/desertbit/timer.timerRoutine"),
		goleak.IgnoreAnyFunction("github.com/godbus/dbus.(*Conn).inWorker"),
		goleak.IgnoreCurrent(),
	)
}
