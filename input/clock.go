package input

import (
	"time"

	"github.com/getsentry/sentry-go"
)

// Timer is a pending delayed callback. Stop reports whether the callback was
// prevented from running.
type Timer interface {
	Stop() bool
}

// Clock schedules delayed callbacks for the long-press and event-repeat
// behaviors. Tests substitute a manual implementation to make timer firing
// deterministic.
type Clock interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// SystemClock is the production clock, backed by time.AfterFunc. Callbacks
// run on a timer goroutine and are recovered on panic.
type SystemClock struct{}

func (SystemClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, func() {
		defer sentry.Recover()
		fn()
	})
}
