package input

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stride-engine/stride/event"
	"github.com/stride-engine/stride/settings"
)

func newKeyboard(conf settings.Settings) (*KeyboardSource, *recorder) {
	log := quietLogger()
	hub := event.NewHub(log)
	rec := &recorder{}
	rec.attach(hub)
	return NewKeyboardSource(Viewport{Width: 800, Height: 600}, conf, hub, log), rec
}

func TestKeyboardNavVectorAxes(t *testing.T) {
	s, _ := newKeyboard(settings.Default())

	assert.Equal(t, float32(0), s.NavVector().Len())

	s.HandleKeyDown(KeyW)
	v := s.NavVector()
	assert.Equal(t, float32(0), v.X())
	assert.Equal(t, float32(1), v.Y())

	s.HandleKeyDown(KeyD)
	v = s.NavVector()
	inv := 1 / math32.Sqrt(2)
	assert.InDelta(t, inv, v.X(), 1e-6)
	assert.InDelta(t, inv, v.Y(), 1e-6)
	assert.InDelta(t, 1, v.Len(), 1e-6)
}

func TestKeyboardWantsPointerLockFollowsConfig(t *testing.T) {
	conf := settings.Default()
	conf.LockScreenOnClick = true
	s, _ := newKeyboard(conf)
	assert.True(t, s.WantsPointerLock())

	conf.LockScreenOnClick = false
	s, _ = newKeyboard(conf)
	assert.False(t, s.WantsPointerLock())
}

func TestKeyboardOpposedKeysCancel(t *testing.T) {
	s, _ := newKeyboard(settings.Default())
	s.HandleKeyDown(KeyW)
	s.HandleKeyDown(KeyS)
	assert.Equal(t, float32(0), s.NavVector().Len())
}

func TestKeyboardArrowKeysActAsWASD(t *testing.T) {
	s, _ := newKeyboard(settings.Default())
	s.HandleKeyDown(KeyUp)
	s.HandleKeyDown(KeyLeft)
	v := s.NavVector()
	assert.Less(t, v.X(), float32(0))
	assert.Greater(t, v.Y(), float32(0))
}

func TestKeyboardRotateVectorIsDestructive(t *testing.T) {
	conf := settings.Default()
	conf.RotateRateX = 2
	conf.RotateRateY = 1
	s, _ := newKeyboard(conf)

	s.HandlePointerMove(400, 0)
	s.HandlePointerMove(0, 300)

	v := s.RotateVector()
	// 400/800*2 and 300/600*1.
	assert.InDelta(t, 1, v.X(), 1e-6)
	assert.InDelta(t, 0.5, v.Y(), 1e-6)

	assert.Equal(t, float32(0), s.RotateVector().Len(), "second read must be empty")
}

func TestKeyboardRotateInversion(t *testing.T) {
	conf := settings.Default()
	conf.RotateInvert = true
	s, _ := newKeyboard(conf)
	s.HandlePointerMove(400, 0)
	assert.Less(t, s.RotateVector().X(), float32(0))
}

func TestKeyboardRotateHoldButtonGatesAndDiscards(t *testing.T) {
	conf := settings.Default()
	conf.RotateHoldButton = settings.HoldSecondary
	s, _ := newKeyboard(conf)

	s.HandlePointerMove(100, 0)
	assert.Equal(t, float32(0), s.RotateVector().Len(), "gate closed: zero vector")

	s.HandlePointerDown(ButtonSecondary)
	s.HandlePointerMove(100, 0)
	assert.Greater(t, s.RotateVector().X(), float32(0), "gate open: delta applies")
}

func TestKeyboardJumpAndRunFlags(t *testing.T) {
	s, _ := newKeyboard(settings.Default())
	assert.False(t, s.JumpPressed())
	assert.False(t, s.RunPressed())

	s.HandleKeyDown(KeySpace)
	s.HandleKeyDown(KeyRightShift)
	assert.True(t, s.JumpPressed())
	assert.True(t, s.RunPressed())

	s.HandleKeyUp(KeySpace)
	assert.False(t, s.JumpPressed())
}

func TestKeyboardPlainPrimaryClickPublishesHit(t *testing.T) {
	s, rec := newKeyboard(settings.Default())

	s.HandlePointerDown(ButtonPrimary)
	s.HandlePointerUp(ButtonPrimary, 600, 150)

	require.Len(t, rec.hits, 1)
	assert.InDelta(t, 0.5, rec.hits[0].X, 1e-6)
	assert.InDelta(t, 0.5, rec.hits[0].Y, 1e-6)
}

func TestKeyboardModifiedClickPublishesNoHit(t *testing.T) {
	s, rec := newKeyboard(settings.Default())

	s.HandlePointerDown(ButtonSecondary)
	s.HandlePointerDown(ButtonPrimary)
	s.HandlePointerUp(ButtonPrimary, 600, 150)

	assert.Empty(t, rec.hits, "primary release with another button held is not a plain click")
}
