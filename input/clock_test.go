package input

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/stride-engine/stride/event"
)

// fakeClock drives timer callbacks manually from the test goroutine.
type fakeClock struct {
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	deadline time.Duration
	fn       func()
	stopped  bool
	fired    bool
}

func (t *fakeTimer) Stop() bool {
	already := t.stopped || t.fired
	t.stopped = true
	return !already
}

func (c *fakeClock) AfterFunc(d time.Duration, fn func()) Timer {
	t := &fakeTimer{deadline: c.now + d, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// advance moves the clock forward, firing due timers in deadline order.
// Callbacks may schedule new timers; those are honored within the same
// advance when they fall due.
func (c *fakeClock) advance(d time.Duration) {
	target := c.now + d
	for {
		var next *fakeTimer
		for _, t := range c.timers {
			if t.stopped || t.fired || t.deadline > target {
				continue
			}
			if next == nil || t.deadline < next.deadline {
				next = t
			}
		}
		if next == nil {
			break
		}
		c.now = next.deadline
		next.fired = true
		next.fn()
	}
	c.now = target
}

// recorder collects published notifications by type.
type recorder struct {
	navDowns []event.NavTouchDown
	navUps   int
	switches int
	hits     []event.HitOnView
}

func (r *recorder) attach(hub *event.Hub) {
	hub.Subscribe(event.TypeNavTouchDown, func(p any) {
		r.navDowns = append(r.navDowns, p.(event.NavTouchDown))
	})
	hub.Subscribe(event.TypeNavTouchUp, func(any) { r.navUps++ })
	hub.Subscribe(event.TypeSwitchMode, func(any) { r.switches++ })
	hub.Subscribe(event.TypeHitOnView, func(p any) {
		r.hits = append(r.hits, p.(event.HitOnView))
	})
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}
