package actor

import (
	"github.com/chewxy/math32"

	"github.com/stride-engine/stride/game"
)

// Update advances the controller by one frame. The state machine evaluates
// first against the frame's input snapshot, then motion is computed across
// the configured number of physics sub-steps.
func (c *Controller) Update(dt float32) {
	snap := c.snapshot()
	c.machine.Update(dt, snap)

	if snap.TaskPending {
		// An externally queued task drives motion this tick; player input is
		// ignored entirely.
		c.tasks.RunFront(dt)
		c.stepPhysics(dt, Snapshot{})
		c.finishTick(dt)
		return
	}

	c.applyLook(dt, &snap)
	c.stepPhysics(dt, snap)
	c.finishTick(dt)
}

// snapshot reads the input source once for the frame. The rotate read is
// destructive on pointer-based sources, so it must not be repeated.
func (c *Controller) snapshot() Snapshot {
	return Snapshot{
		Nav:         c.source.NavVector(),
		Rotate:      c.source.RotateVector(),
		Jump:        c.source.JumpPressed(),
		Run:         c.source.RunPressed(),
		OnFloor:     c.loco.OnFloor,
		Jumping:     c.loco.Jumping,
		TaskPending: c.tasks != nil && c.tasks.Pending(),
	}
}

// stepPhysics runs acceleration, jump, damping, integration and collision
// resolution across the configured sub-steps.
func (c *Controller) stepPhysics(dt float32, snap Snapshot) {
	steps := c.conf.StepsPerFrame
	if steps < 1 {
		steps = 1
	}
	sub := dt / float32(steps)
	for i := 0; i < steps; i++ {
		c.applyAcceleration(sub, snap)
		c.applyJump(snap)
		c.integrate(sub)
	}
}

// applyAcceleration converts the navigation vector into world-space
// velocity contributions along the actor's flattened basis vectors. Gravity
// owns the vertical axis exclusively.
func (c *Controller) applyAcceleration(dt float32, snap Snapshot) {
	if snap.Nav.LenSqr() < 1e-12 {
		return
	}
	accel := c.conf.MoveAcceleration
	if !c.loco.OnFloor {
		accel = c.conf.JumpAcceleration
	}
	scale := dt * accel
	if c.machine.State() == StateRun {
		scale *= game.RunSpeedMultiplier
	}
	forward, side := c.forwardBasis()
	c.loco.Velocity = c.loco.Velocity.
		Add(forward.Mul(snap.Nav.Y() * scale)).
		Add(side.Mul(snap.Nav.X() * scale))
}

// applyJump implements the jump latch: at most one jump impulse per
// floor-contact cycle. The latch clears only once floor contact resumes; a
// jump request issued mid-air while already jumping is ignored, not queued.
func (c *Controller) applyJump(snap Snapshot) {
	if !c.loco.OnFloor {
		return
	}
	if c.loco.Jumping {
		c.loco.Jumping = false
	}
	if snap.Jump && !c.loco.Jumping {
		c.loco.Velocity[1] = c.conf.JumpUpVelocity
		c.loco.Jumping = true
	}
}

// integrate applies damping and gravity, translates the capsule, resolves
// collision and checks the fall threshold for one sub-step.
func (c *Controller) integrate(dt float32) {
	damping := math32.Exp(-game.DampingRate*dt) - 1
	if !c.loco.OnFloor {
		c.loco.Velocity[1] -= c.conf.Gravity * dt
		damping *= game.AirDampingMultiplier
	}
	c.loco.Velocity = c.loco.Velocity.Add(c.loco.Velocity.Mul(damping))

	c.loco.Capsule = c.loco.Capsule.Translate(c.loco.Velocity.Mul(dt))
	c.resolveCollision()
	c.pos = c.loco.Capsule.End

	if c.pos.Y() < c.conf.FallingThreshold {
		c.respawn()
	}
}

// resolveCollision queries the collision index and corrects penetration. A
// contact normal with a positive vertical component classifies the actor as
// on the floor; an airborne contact removes the inward velocity component
// along the normal before the push-out.
func (c *Controller) resolveCollision() {
	c.loco.OnFloor = false
	if c.index == nil {
		return
	}
	contact, ok := c.index.IntersectCapsule(c.loco.Capsule)
	if !ok {
		return
	}
	c.loco.OnFloor = contact.Normal.Y() > 0
	if !c.loco.OnFloor {
		c.loco.Velocity = c.loco.Velocity.Sub(contact.Normal.Mul(contact.Normal.Dot(c.loco.Velocity)))
	}
	if contact.Depth >= game.MinPenetrationDepth {
		c.loco.Capsule = c.loco.Capsule.Translate(contact.Normal.Mul(contact.Depth))
	}
}

// respawn resets the capsule to spawn geometry and the orientation to the
// spawn yaw. Velocity is deliberately left untouched: damping on subsequent
// ticks decays whatever momentum survived the fall.
func (c *Controller) respawn() {
	c.log.WithField("height", game.Round32(c.pos.Y(), 2)).Debug("fell below threshold, respawning")
	c.loco.Capsule = spawnCapsule(c.conf)
	c.loco.Yaw = c.conf.SpawnYaw
	c.loco.Pitch = 0
	c.pos = c.loco.Capsule.End
}

// finishTick interpolates the camera look-at target toward the actor's
// position, keeping observer-mode framing smooth rather than snapped.
func (c *Controller) finishTick(dt float32) {
	blend := game.Clamp32(game.ObserverSmoothing*dt, 0, 1)
	c.lookTarget = c.lookTarget.Add(c.pos.Sub(c.lookTarget).Mul(blend))
}
