package actor

import (
	"github.com/sirupsen/logrus"

	"github.com/stride-engine/stride/fsm"
)

// Locomotion state names.
const (
	StateIdle = "idle"
	StateWalk = "walk"
	StateRun  = "run"
	StateJump = "jump"
)

func moving(in Snapshot) bool {
	return in.Nav.Len() > 0 || in.TaskPending
}

// buildMachine wires the locomotion state machine. Guard lists are
// evaluated exhaustively each tick, so a chain like idle→walk→jump settles
// within a single update when both guards hold.
func (c *Controller) buildMachine() *fsm.Machine[Snapshot] {
	m := fsm.NewMachine[Snapshot]()

	enter := func(name string) fsm.EnterFunc {
		return func(from string) {
			c.log.WithFields(logrus.Fields{"from": from, "to": name}).Debug("locomotion state change")
			if anim, ok := c.animator.Get(); ok {
				anim.Play(name)
			}
		}
	}
	m.AddState(StateIdle, enter(StateIdle), nil)
	m.AddState(StateWalk, enter(StateWalk), nil)
	m.AddState(StateRun, enter(StateRun), nil)
	m.AddState(StateJump, enter(StateJump), nil)

	jumped := func(dt float32, in Snapshot) bool { return in.Jumping }

	m.AddTransition(StateIdle, StateWalk, func(dt float32, in Snapshot) bool {
		return moving(in)
	})
	m.AddTransition(StateIdle, StateJump, jumped)

	m.AddTransition(StateWalk, StateIdle, func(dt float32, in Snapshot) bool {
		return !moving(in)
	})
	m.AddTransition(StateWalk, StateRun, func(dt float32, in Snapshot) bool {
		return in.Run && moving(in)
	})
	m.AddTransition(StateWalk, StateJump, jumped)

	m.AddTransition(StateRun, StateWalk, func(dt float32, in Snapshot) bool {
		return !in.Run || !moving(in)
	})
	m.AddTransition(StateRun, StateJump, jumped)

	// The landing guard observes the jump latch, not floor contact alone:
	// the latch only clears once floor contact resumes.
	m.AddTransition(StateJump, StateRun, func(dt float32, in Snapshot) bool {
		return !in.Jumping
	})

	return m
}
