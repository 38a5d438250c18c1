// Command headless runs the character controller without a renderer: it
// builds a small static world, replays a scripted input sequence through the
// keyboard source and logs the actor's pose as it moves. It doubles as a
// smoke test of the full wiring, from settings file to collision index.
package main

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/stride-engine/stride/actor"
	"github.com/stride-engine/stride/event"
	"github.com/stride-engine/stride/input"
	"github.com/stride-engine/stride/settings"
	"github.com/stride-engine/stride/task"
	"github.com/stride-engine/stride/world"
)

const (
	frames = 600
	dt     = float32(1.0 / 60.0)
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	log.SetLevel(logrus.DebugLevel)

	conf, err := settings.Load("stride.toml")
	if err != nil {
		log.WithError(err).Fatal("unable to load settings")
	}

	hub := event.NewHub(log)
	src := input.NewKeyboardSource(input.Viewport{Width: 1280, Height: 720}, conf, hub, log)
	defer src.Close()
	if src.WantsPointerLock() {
		log.Info("a windowed host would request pointer lock on the first click")
	}

	idx := world.NewStaticIndex([]cube.BBox{
		cube.Box(-32, -1, -32, 32, 0, 32),
		cube.Box(-2, 0, -10, 2, 1, -8),
		cube.Box(6, 0, -6, 8, 2, -4),
	})

	tasks := task.NewQueue(log)
	tasks.Register("goto", func(t task.Task, target mgl32.Vec3, step float32) bool {
		log.WithField("target", target).Debug("task tick")
		return true
	})

	ctrl := actor.New(conf, src, idx, tasks, log)

	hub.Subscribe(event.TypeSwitchMode, func(any) {
		ctrl.SwitchMode(actor.ModeUnset)
	})
	hub.Subscribe(event.TypeHitOnView, func(payload any) {
		hit := payload.(event.HitOnView)
		log.WithFields(logrus.Fields{"x": hit.X, "y": hit.Y}).Info("hit on view")
	})

	for frame := 0; frame < frames; frame++ {
		script(src, tasks, frame)
		ctrl.Update(dt)

		if frame%60 == 0 {
			pose := ctrl.Pose()
			log.WithFields(logrus.Fields{
				"frame": frame,
				"state": ctrl.State(),
				"pos":   pose.Position,
				"fwd":   pose.Forward,
				"floor": ctrl.OnFloor(),
			}).Info("pose")
		}
	}
}

// script replays a fixed input sequence: walk forward, break into a run,
// jump over the low slab, queue a task, then click the view.
func script(src *input.KeyboardSource, tasks *task.Queue, frame int) {
	switch frame {
	case 30:
		src.HandleKeyDown(input.KeyW)
	case 120:
		src.HandleKeyDown(input.KeyLeftShift)
	case 180:
		src.HandleKeyDown(input.KeySpace)
	case 185:
		src.HandleKeyUp(input.KeySpace)
	case 300:
		src.HandleKeyUp(input.KeyLeftShift)
		src.HandleKeyUp(input.KeyW)
		tasks.Push(task.Task{Action: "goto", Target: mgl32.Vec3{4, 0, -6}})
	case 360:
		src.HandlePointerDown(input.ButtonPrimary)
		src.HandlePointerUp(input.ButtonPrimary, 640, 360)
	case 420:
		// Drag with the pointer to sweep the view around.
		src.HandlePointerMove(80, -20)
	}
}
