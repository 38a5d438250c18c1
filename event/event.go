// Package event carries the broadcast notifications produced by the input
// layer and consumed by the composing application. Observers register
// explicitly on a Hub instance; there is no global bus.
package event

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
)

// Type identifies a notification kind.
type Type string

const (
	// TypeNavTouchDown is fired on every update of an active NAV touch, and
	// redelivered by the repeat timer while the touch is held.
	TypeNavTouchDown Type = "nav-touch-down"
	// TypeNavTouchUp is fired when the active NAV touch ends.
	TypeNavTouchUp Type = "nav-touch-up"
	// TypeSwitchMode is fired when a nav-pad long-press expires.
	TypeSwitchMode Type = "switch-mode"
	// TypeHitOnView is fired for a plain primary click or a tap-not-drag touch.
	TypeHitOnView Type = "hit-on-view"
)

// NavTouchDown carries the screen position of the active NAV touch.
type NavTouchDown struct {
	Position mgl32.Vec2
}

// NavTouchUp has no payload.
type NavTouchUp struct{}

// SwitchMode has no payload.
type SwitchMode struct{}

// HitOnView carries normalized device coordinates of the release point,
// both axes in [-1, 1].
type HitOnView struct {
	X float32
	Y float32
}

// Handler receives a notification payload.
type Handler func(payload any)

// Hub dispatches notifications synchronously to registered observers.
// All notifications are fire-and-forget; a panicking handler is recovered
// and logged so the frame loop is never taken down by an observer.
type Hub struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
	log      *logrus.Entry
}

// NewHub creates an empty hub logging through the given logger.
func NewHub(log *logrus.Logger) *Hub {
	return &Hub{
		handlers: make(map[Type][]Handler),
		log:      log.WithField("component", "event"),
	}
}

// Subscribe registers a handler for the given notification type.
func (h *Hub) Subscribe(t Type, fn Handler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handlers[t] = append(h.handlers[t], fn)
}

// Publish delivers a payload to every handler registered for the type, in
// registration order, on the calling goroutine.
func (h *Hub) Publish(t Type, payload any) {
	h.mu.RLock()
	handlers := make([]Handler, len(h.handlers[t]))
	copy(handlers, h.handlers[t])
	h.mu.RUnlock()

	for _, fn := range handlers {
		h.deliver(t, fn, payload)
	}
}

func (h *Hub) deliver(t Type, fn Handler, payload any) {
	defer func() {
		if r := recover(); r != nil {
			h.log.WithField("type", t).Errorf("notification handler panicked: %v", r)
		}
	}()
	fn(payload)
}
