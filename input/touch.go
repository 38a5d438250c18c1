package input

import (
	"sync"
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/stride-engine/stride/event"
	"github.com/stride-engine/stride/game"
	"github.com/stride-engine/stride/settings"
)

// TouchType classifies an active touch by the screen region it started in.
type TouchType uint8

const (
	// TouchNav drives the navigation vector from the on-screen nav pad.
	TouchNav TouchType = iota
	// TouchRotate drives the look-rotation vector.
	TouchRotate
)

// longPressDuration is how long a stationary NAV touch must rest within the
// nav-pad dead zone before a switch-mode notification is broadcast.
const longPressDuration = 2 * time.Second

// maxTrackedTouches bounds concurrent tracking; extra touches are ignored.
const maxTrackedTouches = 2

// touch is the per-touch record kept between touch-start and touch-end.
type touch struct {
	id    int64
	typ   TouchType
	start mgl32.Vec2
	prev  mgl32.Vec2
	pos   mgl32.Vec2

	// sampled is the reference position for incremental rotate reads,
	// advanced on each RotateVector query.
	sampled mgl32.Vec2
}

type region struct {
	minX, minY, maxX, maxY float32
}

func (r region) contains(p mgl32.Vec2) bool {
	return p.X() >= r.minX && p.X() < r.maxX && p.Y() >= r.minY && p.Y() < r.maxY
}

func (r region) center() mgl32.Vec2 {
	return mgl32.Vec2{(r.minX + r.maxX) / 2, (r.minY + r.maxY) / 2}
}

// navRegionFor computes the screen-relative rectangle that classifies a new
// touch as NAV: the bottom-left quadrant in landscape orientation, the
// bottom third of the screen in portrait.
func navRegionFor(vp Viewport) region {
	if vp.Width >= vp.Height {
		return region{minX: 0, minY: vp.Height / 2, maxX: vp.Width / 2, maxY: vp.Height}
	}
	return region{minX: 0, minY: vp.Height * 2 / 3, maxX: vp.Width, maxY: vp.Height}
}

// TouchSource aggregates multi-touch state fed by the host. At most one
// touch per type is tracked at a time; a touch of an already-occupied type,
// or a third concurrent touch, is silently ignored.
type TouchSource struct {
	mu   sync.Mutex
	vp   Viewport
	conf settings.Settings
	hub  *event.Hub
	clk  Clock
	log  *logrus.Entry

	navRegion region
	padCenter mgl32.Vec2

	touches map[int64]*touch
	byType  map[TouchType]*touch

	longPress Timer
	repeat    Timer
	lastNav   mgl32.Vec2
	closed    bool
}

// NewTouchSource creates a touch source for the given viewport.
func NewTouchSource(vp Viewport, conf settings.Settings, hub *event.Hub, clk Clock, log *logrus.Logger) *TouchSource {
	navRegion := navRegionFor(vp)
	return &TouchSource{
		vp:        vp,
		conf:      conf,
		hub:       hub,
		clk:       clk,
		log:       log.WithField("component", "input.touch"),
		navRegion: navRegion,
		padCenter: navRegion.center(),
		touches:   make(map[int64]*touch),
		byType:    make(map[TouchType]*touch),
	}
}

// HandleTouchStart tracks a new touch, classifying it by the region it
// starts in. Rejected touches generate no events.
func (s *TouchSource) HandleTouchStart(id int64, x, y float32) {
	s.mu.Lock()

	pos := mgl32.Vec2{x, y}
	if len(s.touches) >= maxTrackedTouches {
		s.mu.Unlock()
		return
	}
	if _, dup := s.touches[id]; dup {
		s.mu.Unlock()
		return
	}
	typ := TouchRotate
	if s.navRegion.contains(pos) {
		typ = TouchNav
	}
	if _, occupied := s.byType[typ]; occupied {
		s.mu.Unlock()
		return
	}

	t := &touch{id: id, typ: typ, start: pos, prev: pos, pos: pos, sampled: pos}
	s.touches[id] = t
	s.byType[typ] = t

	var navPos mgl32.Vec2
	isNav := typ == TouchNav
	if isNav {
		if pos.Sub(s.padCenter).Len() <= s.conf.TouchErrorRadius {
			s.armLongPressLocked()
		}
		navPos = s.navUpdateLocked(pos)
	}
	s.mu.Unlock()

	if isNav {
		s.hub.Publish(event.TypeNavTouchDown, event.NavTouchDown{Position: navPos})
	}
}

// HandleTouchMove updates a tracked touch's position. Unknown identifiers
// are ignored.
func (s *TouchSource) HandleTouchMove(id int64, x, y float32) {
	s.mu.Lock()

	t, ok := s.touches[id]
	if !ok {
		s.mu.Unlock()
		return
	}
	t.prev = t.pos
	t.pos = mgl32.Vec2{x, y}

	var navPos mgl32.Vec2
	isNav := t.typ == TouchNav
	if isNav {
		if t.pos.Sub(s.padCenter).Len() > s.conf.TouchErrorRadius {
			s.stopLongPressLocked()
		}
		navPos = s.navUpdateLocked(t.pos)
	}
	s.mu.Unlock()

	if isNav {
		s.hub.Publish(event.TypeNavTouchDown, event.NavTouchDown{Position: navPos})
	}
}

// HandleTouchEnd stops tracking a touch. A touch that ended within the
// dead-zone radius of its own start position publishes a hit-on-view
// notification (tap, not drag).
func (s *TouchSource) HandleTouchEnd(id int64) {
	s.mu.Lock()
	t, ok := s.touches[id]
	if !ok {
		s.mu.Unlock()
		return
	}
	s.dropTouchLocked(t)
	isNav := t.typ == TouchNav
	tapped := t.pos.Sub(t.start).Len() <= s.conf.TouchErrorRadius
	pos := t.pos
	s.mu.Unlock()

	if isNav {
		s.hub.Publish(event.TypeNavTouchUp, event.NavTouchUp{})
	}
	if tapped {
		nx, ny := normalizedDeviceCoords(pos.X(), pos.Y(), s.vp)
		s.hub.Publish(event.TypeHitOnView, event.HitOnView{X: nx, Y: ny})
	}
}

// HandleTouchCancel stops tracking a touch without emitting a hit.
func (s *TouchSource) HandleTouchCancel(id int64) {
	s.mu.Lock()
	t, ok := s.touches[id]
	if !ok {
		s.mu.Unlock()
		return
	}
	s.dropTouchLocked(t)
	isNav := t.typ == TouchNav
	s.mu.Unlock()

	if isNav {
		s.hub.Publish(event.TypeNavTouchUp, event.NavTouchUp{})
	}
}

func (s *TouchSource) dropTouchLocked(t *touch) {
	delete(s.touches, t.id)
	delete(s.byType, t.typ)
	if t.typ == TouchNav {
		s.stopLongPressLocked()
		s.stopRepeatLocked()
	}
}

// navUpdateLocked records the latest NAV position and re-arms the repeat
// timer so a late-registered observer still receives the last known vector.
// The caller publishes the returned position after releasing the lock.
func (s *TouchSource) navUpdateLocked(pos mgl32.Vec2) mgl32.Vec2 {
	s.lastNav = pos
	s.armRepeatLocked()
	return pos
}

func (s *TouchSource) armLongPressLocked() {
	s.stopLongPressLocked()
	s.longPress = s.clk.AfterFunc(longPressDuration, func() {
		s.hub.Publish(event.TypeSwitchMode, event.SwitchMode{})
	})
}

func (s *TouchSource) stopLongPressLocked() {
	if s.longPress != nil {
		s.longPress.Stop()
		s.longPress = nil
	}
}

func (s *TouchSource) armRepeatLocked() {
	s.stopRepeatLocked()
	timeout := time.Duration(s.conf.EventRepeatTimeoutMs) * time.Millisecond
	if timeout <= 0 || s.closed {
		return
	}
	s.repeat = s.clk.AfterFunc(timeout, s.repeatFire)
}

func (s *TouchSource) stopRepeatLocked() {
	if s.repeat != nil {
		s.repeat.Stop()
		s.repeat = nil
	}
}

// repeatFire redelivers the last NAV position and reschedules itself while
// the NAV touch remains active.
func (s *TouchSource) repeatFire() {
	s.mu.Lock()
	_, active := s.byType[TouchNav]
	pos := s.lastNav
	if active {
		s.armRepeatLocked()
	}
	s.mu.Unlock()

	if active {
		s.hub.Publish(event.TypeNavTouchDown, event.NavTouchDown{Position: pos})
	}
}

// NavVector derives the navigation vector from the active NAV touch's
// displacement from the nav-pad center. Each axis within the dead zone is
// forced to exactly zero before normalization. Absence of a NAV touch
// yields the zero vector.
func (s *TouchSource) NavVector() mgl32.Vec2 {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.byType[TouchNav]
	if !ok {
		return mgl32.Vec2{}
	}
	d := t.pos.Sub(s.padCenter)
	x, y := d.X(), d.Y()
	if math32.Abs(x) <= s.conf.TouchErrorRadius {
		x = 0
	}
	if math32.Abs(y) <= s.conf.TouchErrorRadius {
		y = 0
	}

	// Screen Y grows downward; pushing above the pad center is forward.
	v := mgl32.Vec2{x, -y}
	if v.LenSqr() < 1e-12 {
		return mgl32.Vec2{}
	}
	return v.Normalize()
}

// RotateVector derives the look-rotation delta from the active ROTATE touch:
// displacement from touch-start in continuous mode, or from the previous
// sampled position in incremental mode (advancing the sample point).
func (s *TouchSource) RotateVector() mgl32.Vec2 {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.byType[TouchRotate]
	if !ok {
		return mgl32.Vec2{}
	}
	var d mgl32.Vec2
	if s.conf.RotateMode == settings.RotateIncremental {
		d = t.pos.Sub(t.sampled)
		t.sampled = t.pos
	} else {
		d = t.pos.Sub(t.start)
	}
	return scaleRotation(d.X(), d.Y(), s.vp, s.conf)
}

// JumpPressed always reports false: there is no on-screen jump affordance.
func (s *TouchSource) JumpPressed() bool {
	return false
}

// RunPressed reports whether the active NAV touch is far enough from the
// nav-pad center to count as a run request.
func (s *TouchSource) RunPressed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.byType[TouchNav]
	if !ok {
		return false
	}
	return t.pos.Sub(s.padCenter).Len() > game.NavRunDistance
}

// Close cancels any pending timers.
func (s *TouchSource) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.stopLongPressLocked()
	s.stopRepeatLocked()
}
