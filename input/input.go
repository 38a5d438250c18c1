// Package input normalizes heterogeneous device input (keyboard + pointer,
// or multi-touch) into the small set of semantic vectors and flags the
// locomotion controller consumes. The physical mechanism is selected once at
// construction by probing the device capabilities and is never re-probed.
package input

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/stride-engine/stride/event"
	"github.com/stride-engine/stride/settings"
)

// Source is the query surface shared by both input mechanisms. All queries
// are safe to call once per frame; RotateVector is destructive on the
// keyboard source (the internal pointer-delta accumulator is cleared).
type Source interface {
	// NavVector returns the normalized navigation vector. +Y is forward,
	// +X is rightward strafe. The zero vector means no navigation input.
	NavVector() mgl32.Vec2
	// RotateVector returns the look-rotation delta for this frame, scaled by
	// viewport dimensions and the configured sensitivity.
	RotateVector() mgl32.Vec2
	// JumpPressed reports whether a jump is being requested.
	JumpPressed() bool
	// RunPressed reports whether run speed is being requested.
	RunPressed() bool
	// Close releases any pending timers held by the source.
	Close()
}

// Viewport is the size of the render surface, used to scale pointer and
// touch displacements.
type Viewport struct {
	Width  float32
	Height float32
}

// Capabilities describes the host device. It is probed by the composing
// application once, before construction.
type Capabilities struct {
	Touch bool
}

// New selects the input mechanism for the probed capabilities: a multi-touch
// source when native touch support is present, a keyboard+pointer source
// otherwise.
func New(caps Capabilities, vp Viewport, conf settings.Settings, hub *event.Hub, clk Clock, log *logrus.Logger) Source {
	if caps.Touch {
		return NewTouchSource(vp, conf, hub, clk, log)
	}
	return NewKeyboardSource(vp, conf, hub, log)
}

// scaleRotation converts a raw screen-space displacement into a rotation
// vector: divided by the viewport dimensions, scaled by the configured
// rates, optionally inverted.
func scaleRotation(dx, dy float32, vp Viewport, conf settings.Settings) mgl32.Vec2 {
	v := mgl32.Vec2{
		dx / vp.Width * conf.RotateRateX,
		dy / vp.Height * conf.RotateRateY,
	}
	if conf.RotateInvert {
		v = v.Mul(-1)
	}
	return v
}

// normalizedDeviceCoords maps a screen position into [-1, 1] on both axes,
// with +Y pointing up.
func normalizedDeviceCoords(x, y float32, vp Viewport) (float32, float32) {
	return x/vp.Width*2 - 1, -(y/vp.Height)*2 + 1
}
