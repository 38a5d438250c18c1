// Package actor implements the locomotion controller: it owns the actor's
// capsule collider, velocity and orientation, arbitrates motion through a
// locomotion state machine, and exposes camera-facing pose data for the
// renderer. All mutation happens inside Update or the control-mode methods;
// no other component may alias the locomotion state.
package actor

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/stride-engine/stride/fsm"
	"github.com/stride-engine/stride/game"
	"github.com/stride-engine/stride/input"
	"github.com/stride-engine/stride/internal/opt"
	"github.com/stride-engine/stride/settings"
	"github.com/stride-engine/stride/task"
	"github.com/stride-engine/stride/world"
)

// VisibleActor is the renderer-owned mesh shown for the actor in chase and
// observer modes.
type VisibleActor interface {
	SetVisible(visible bool)
}

// Animator plays a named animation clip on the visible actor. Locomotion
// state enter hooks drive it.
type Animator interface {
	Play(state string)
}

// LoaderFunc loads the visible actor for non-first-person modes. It is
// invoked at most once per cold activation; the mode switch is deferred
// until the loader invokes onReady with the loaded actor and, optionally, an
// animator for it (nil when the model carries no animations).
type LoaderFunc func(machine *fsm.Machine[Snapshot], onReady func(a VisibleActor, anim Animator))

// Snapshot is the per-tick input state evaluated by the locomotion state
// machine's guards.
type Snapshot struct {
	Nav    mgl32.Vec2
	Rotate mgl32.Vec2
	Jump   bool
	Run    bool

	OnFloor     bool
	Jumping     bool
	TaskPending bool
}

// Locomotion is the exclusively-owned physical state of the actor.
type Locomotion struct {
	Capsule  game.Capsule
	Velocity mgl32.Vec3
	Yaw      float32
	Pitch    float32
	OnFloor  bool
	Jumping  bool
}

// Pose is the camera-facing view of the actor for a frame.
type Pose struct {
	Position     mgl32.Vec3
	Forward      mgl32.Vec3
	CameraOffset mgl32.Vec3
	LookTarget   mgl32.Vec3
	Yaw          float32
	Pitch        float32
}

// Controller converts normalized input into physical motion of the capsule
// inside a static collision world.
type Controller struct {
	log  *logrus.Entry
	conf settings.Settings

	source  input.Source
	index   world.Index
	tasks   *task.Queue
	machine *fsm.Machine[Snapshot]

	loco Locomotion
	pos  mgl32.Vec3

	mode      Mode
	requested Mode
	loading   bool
	loader    opt.Optional[LoaderFunc]
	visible   opt.Optional[VisibleActor]
	animator  opt.Optional[Animator]

	camOffset  mgl32.Vec3
	orbitVel   float32
	lookTarget mgl32.Vec3
}

// defaultCamOffset places the observer/chase camera behind and above the
// actor at spawn.
var defaultCamOffset = mgl32.Vec3{0, 2, 5}

// New creates a controller over the given input source and collision index.
// The task queue may be nil when the composing application has no tasks.
func New(conf settings.Settings, source input.Source, index world.Index, tasks *task.Queue, log *logrus.Logger) *Controller {
	c := &Controller{
		log:        log.WithField("component", "actor"),
		conf:       conf,
		source:     source,
		index:      index,
		tasks:      tasks,
		mode:       ModeFirstPerson,
		requested:  ModeFirstPerson,
		loader:     opt.None[LoaderFunc](),
		visible:    opt.None[VisibleActor](),
		animator:   opt.None[Animator](),
		camOffset:  defaultCamOffset,
		loco:       Locomotion{Capsule: spawnCapsule(conf), Yaw: conf.SpawnYaw},
	}
	c.pos = c.loco.Capsule.End
	c.lookTarget = c.pos
	c.machine = c.buildMachine()
	c.machine.Startup(StateIdle)
	return c
}

// spawnCapsule returns the capsule at its spawn geometry.
func spawnCapsule(conf settings.Settings) game.Capsule {
	return game.NewCapsule(
		mgl32.Vec3{conf.SpawnX, conf.CapsuleRadius, conf.SpawnZ},
		mgl32.Vec3{conf.SpawnX, conf.ViewHeight, conf.SpawnZ},
		conf.CapsuleRadius,
	)
}

// SetLoader registers the actor-loading callback used on cold activation of
// a non-first-person mode.
func (c *Controller) SetLoader(fn LoaderFunc) {
	c.loader = opt.Some(fn)
}

// Position returns the actor's tracked position (the capsule's end point).
func (c *Controller) Position() mgl32.Vec3 {
	return c.pos
}

// Velocity returns the actor's velocity.
func (c *Controller) Velocity() mgl32.Vec3 {
	return c.loco.Velocity
}

// OnFloor reports whether the last collision query classified the actor as
// standing on the floor.
func (c *Controller) OnFloor() bool {
	return c.loco.OnFloor
}

// State returns the current locomotion state name.
func (c *Controller) State() string {
	return c.machine.State()
}

// Machine returns the locomotion state machine, for observers that wire
// animation or logging onto its states.
func (c *Controller) Machine() *fsm.Machine[Snapshot] {
	return c.machine
}

// Forward returns the look direction derived from yaw and pitch.
func (c *Controller) Forward() mgl32.Vec3 {
	return game.DirectionVector(c.loco.Yaw, c.loco.Pitch)
}

// Pose returns the camera-facing pose data for the current frame.
func (c *Controller) Pose() Pose {
	return Pose{
		Position:     c.pos,
		Forward:      c.Forward(),
		CameraOffset: c.camOffset,
		LookTarget:   c.lookTarget,
		Yaw:          c.loco.Yaw,
		Pitch:        c.loco.Pitch,
	}
}
