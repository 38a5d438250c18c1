package actor

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/stride-engine/stride/game"
	"github.com/stride-engine/stride/internal/opt"
)

// Mode selects which subset of input vectors maps to which motion and look
// equations.
type Mode int8

const (
	// ModeUnset is a sentinel meaning "advance to the next mode in the cycle".
	ModeUnset Mode = -1

	ModeFirstPerson Mode = iota - 1
	ModeChase
	ModeObserver

	modeCount = 3
)

func (m Mode) String() string {
	switch m {
	case ModeFirstPerson:
		return "first-person"
	case ModeChase:
		return "chase"
	case ModeObserver:
		return "observer"
	default:
		return "unset"
	}
}

// Mode returns the active control mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// SwitchMode switches to the given control mode, or to the next one in the
// cycle when target is ModeUnset. Entering a non-first-person mode for the
// first time triggers the registered loader; the mode only actually switches
// once the loader reports the visible actor ready, so mode state and
// requested mode can transiently diverge. With no visible actor and no
// loader registered the request has no observable effect.
func (c *Controller) SwitchMode(target Mode) {
	next := target
	if next == ModeUnset {
		next = (c.mode + 1) % modeCount
	}
	if next == c.mode {
		// Retarget a load in flight: requesting the current mode cancels a
		// pending switch, and a completing loader must honor that.
		c.requested = next
		return
	}

	if next == ModeFirstPerson {
		if a, ok := c.visible.Get(); ok {
			a.SetVisible(false)
		}
		c.setMode(next)
		return
	}

	if a, ok := c.visible.Get(); ok {
		a.SetVisible(true)
		c.setMode(next)
		return
	}

	loader, ok := c.loader.Get()
	if !ok {
		c.log.WithField("target", next).Debug("mode switch dropped: no visible actor and no loader")
		return
	}
	c.requested = next
	if c.loading {
		return
	}
	c.loading = true
	loader(c.machine, c.actorReady)
}

// actorReady completes a deferred mode switch once the loader delivers the
// visible actor. The switch lands on the mode requested most recently, which
// may have reverted to the current one while the load was in flight; in
// first-person the freshly loaded actor stays hidden.
func (c *Controller) actorReady(a VisibleActor, anim Animator) {
	c.visible = opt.Some(a)
	if anim != nil {
		c.animator = opt.Some(anim)
	}
	c.loading = false
	a.SetVisible(c.requested != ModeFirstPerson)
	if c.requested != c.mode {
		c.setMode(c.requested)
	}
}

func (c *Controller) setMode(next Mode) {
	c.log.WithField("mode", next).Debug("control mode switched")
	c.mode = next
	c.requested = next
}

// applyLook routes the rotation (and, in chase/observer modes, part of the
// navigation) vector into orientation changes. It may zero components of the
// snapshot's nav vector that were consumed for turning.
func (c *Controller) applyLook(dt float32, snap *Snapshot) {
	switch c.mode {
	case ModeChase:
		if math32.Abs(snap.Nav.X()) > game.ChaseYawThreshold {
			c.loco.Yaw -= snap.Nav.X() * game.ChaseTurnRate * dt
			snap.Nav[0] = 0
		}
		c.applyYawPitch(snap.Rotate)
	case ModeObserver:
		c.orbitObserver(dt, snap)
	default:
		c.applyYawPitch(snap.Rotate)
	}
}

// applyYawPitch applies the rotation vector to the look orientation. The
// candidate pitch is committed only while it stays inside the configured
// limit, so the forward vector's horizontal-plane sign cannot flip at the
// poles.
func (c *Controller) applyYawPitch(rot mgl32.Vec2) {
	c.loco.Yaw -= rot.X()
	candidate := c.loco.Pitch + rot.Y()
	if math32.Abs(candidate) < c.conf.ViewAngleYLimit {
		c.loco.Pitch = candidate
	}
}

// orbitObserver orbits the camera offset around the actor. Navigation input
// orbits around the vertical axis with angular smoothing; the rotation
// vector orbits around the vertical axis and the instantaneous horizontal
// tangent axis, rejecting any update that would flip the offset's
// horizontal-plane quadrant (the camera must not cross through the actor).
func (c *Controller) orbitObserver(dt float32, snap *Snapshot) {
	blend := game.Clamp32(game.ObserverSmoothing*dt, 0, 1)
	desired := snap.Nav.X() * game.ObserverOrbitRate
	c.orbitVel += (desired - c.orbitVel) * blend
	if math32.Abs(c.orbitVel) > 1e-6 {
		c.camOffset = game.RotateVec3AroundAxis(c.camOffset, game.Up, -c.orbitVel*dt)
	}

	rot := snap.Rotate
	if rot.X() != 0 {
		c.camOffset = game.RotateVec3AroundAxis(c.camOffset, game.Up, -rot.X())
	}
	// A degenerate straight-overhead offset has no tangent axis to pitch
	// around.
	if rot.Y() != 0 && game.Vec3HzDistSqr(c.camOffset) > 1e-12 {
		tangent := game.Up.Cross(game.FlattenVec3(c.camOffset))
		candidate := game.RotateVec3AroundAxis(c.camOffset, tangent.Normalize(), rot.Y())
		if game.SameHzQuadrant(candidate, c.camOffset) {
			c.camOffset = candidate
		}
	}
}

// forwardBasis returns the flattened forward and side vectors used to turn
// the navigation vector into world-space velocity contributions. In
// observer mode the basis derives from the camera offset's horizontal
// bearing instead of the actor's own orientation.
func (c *Controller) forwardBasis() (forward, side mgl32.Vec3) {
	if c.mode == ModeObserver {
		forward = game.FlattenVec3(c.camOffset.Mul(-1))
	} else {
		forward = game.FlattenVec3(game.DirectionVector(c.loco.Yaw, c.loco.Pitch))
	}
	side = forward.Cross(game.Up)
	return forward, side
}
