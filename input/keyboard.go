package input

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/stride-engine/stride/event"
	"github.com/stride-engine/stride/settings"
)

// KeyboardSource aggregates keyboard and pointer state fed to it by the host
// windowing layer. Pressed-key and button sets are mutated only by the
// Handle* device-event methods; external components must go through the
// Source queries.
type KeyboardSource struct {
	mu   sync.Mutex
	vp   Viewport
	conf settings.Settings
	hub  *event.Hub
	log  *logrus.Entry

	keys    map[Key]struct{}
	buttons map[Button]struct{}

	// Pointer movement accumulated since the last RotateVector query.
	deltaX, deltaY float32
}

// NewKeyboardSource creates a keyboard+pointer source for the given viewport.
func NewKeyboardSource(vp Viewport, conf settings.Settings, hub *event.Hub, log *logrus.Logger) *KeyboardSource {
	return &KeyboardSource{
		vp:      vp,
		conf:    conf,
		hub:     hub,
		log:     log.WithField("component", "input.keyboard"),
		keys:    make(map[Key]struct{}),
		buttons: make(map[Button]struct{}),
	}
}

// HandleKeyDown records a key press.
func (s *KeyboardSource) HandleKeyDown(k Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[k] = struct{}{}
}

// HandleKeyUp records a key release. Unknown keys are ignored.
func (s *KeyboardSource) HandleKeyUp(k Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.keys, k)
}

// HandlePointerMove accumulates a relative pointer movement delta.
func (s *KeyboardSource) HandlePointerMove(dx, dy float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deltaX += dx
	s.deltaY += dy
}

// HandlePointerDown records a pressed pointer button.
func (s *KeyboardSource) HandlePointerDown(b Button) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buttons[b] = struct{}{}
}

// HandlePointerUp records a button release at the given screen position. A
// plain primary-button release with no other buttons held publishes a
// hit-on-view notification in normalized device coordinates.
func (s *KeyboardSource) HandlePointerUp(b Button, x, y float32) {
	s.mu.Lock()
	delete(s.buttons, b)
	plainClick := b == ButtonPrimary && len(s.buttons) == 0
	s.mu.Unlock()

	if plainClick {
		nx, ny := normalizedDeviceCoords(x, y, s.vp)
		s.hub.Publish(event.TypeHitOnView, event.HitOnView{X: nx, Y: ny})
	}
}

// WantsPointerLock reports whether the composing application should request
// pointer lock on click, per configuration.
func (s *KeyboardSource) WantsPointerLock() bool {
	return s.conf.LockScreenOnClick
}

// NavVector derives the navigation vector from the opposed key pairs: each
// axis resolves to -1, 0 or 1, then the vector is normalized. Opposed keys
// held together cancel out.
func (s *KeyboardSource) NavVector() mgl32.Vec2 {
	s.mu.Lock()
	defer s.mu.Unlock()

	x := s.axis(KeyD, KeyRight) - s.axis(KeyA, KeyLeft)
	y := s.axis(KeyW, KeyUp) - s.axis(KeyS, KeyDown)

	v := mgl32.Vec2{x, y}
	if v.LenSqr() < 1e-12 {
		return mgl32.Vec2{}
	}
	return v.Normalize()
}

func (s *KeyboardSource) axis(keys ...Key) float32 {
	for _, k := range keys {
		if _, ok := s.keys[k]; ok {
			return 1
		}
	}
	return 0
}

// RotateVector returns the pointer movement since the last query, scaled by
// viewport dimensions and sensitivity. The query is destructive: the delta
// accumulator is cleared, so at most one non-stale read per frame. When a
// rotate-hold button is configured and not held, the accumulated delta is
// discarded and the zero vector returned.
func (s *KeyboardSource) RotateVector() mgl32.Vec2 {
	s.mu.Lock()
	dx, dy := s.deltaX, s.deltaY
	s.deltaX, s.deltaY = 0, 0
	gateOpen := s.rotateGateOpen()
	s.mu.Unlock()

	if !gateOpen {
		return mgl32.Vec2{}
	}
	return scaleRotation(dx, dy, s.vp, s.conf)
}

func (s *KeyboardSource) rotateGateOpen() bool {
	switch s.conf.RotateHoldButton {
	case settings.HoldPrimary:
		_, ok := s.buttons[ButtonPrimary]
		return ok
	case settings.HoldSecondary:
		_, ok := s.buttons[ButtonSecondary]
		return ok
	default:
		return true
	}
}

// JumpPressed reports whether the jump key is currently held.
func (s *KeyboardSource) JumpPressed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.keys[KeySpace]
	return ok
}

// RunPressed reports whether either shift key is held.
func (s *KeyboardSource) RunPressed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.keys[KeyLeftShift]; ok {
		return true
	}
	_, ok := s.keys[KeyRightShift]
	return ok
}

// Close is a no-op for the keyboard source; it holds no timers.
func (s *KeyboardSource) Close() {}
