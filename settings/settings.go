// Package settings holds the configuration surface recognized by the
// controller and input layers. Values are not validated: malformed or
// out-of-range options are the caller's contract and propagate as degenerate
// motion.
package settings

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

// RotateMode selects how a ROTATE touch's displacement is measured.
type RotateMode string

const (
	// RotateContinuous measures displacement from the touch-start position.
	RotateContinuous RotateMode = "continuous"
	// RotateIncremental measures displacement from the previous sampled position.
	RotateIncremental RotateMode = "incremental"
)

// HoldButton names the pointer button that must be held for rotation input
// to apply.
type HoldButton string

const (
	HoldNone      HoldButton = "none"
	HoldPrimary   HoldButton = "primary"
	HoldSecondary HoldButton = "secondary"
)

// Settings is the full configuration surface.
type Settings struct {
	Gravity          float32 `toml:"gravity"`
	StepsPerFrame    int     `toml:"steps_per_frame"`
	TouchErrorRadius float32 `toml:"touch_error_radius"`

	SpawnX           float32 `toml:"spawn_x"`
	SpawnZ           float32 `toml:"spawn_z"`
	SpawnYaw         float32 `toml:"spawn_yaw"`
	ViewHeight       float32 `toml:"view_height"`
	CapsuleRadius    float32 `toml:"capsule_radius"`
	FallingThreshold float32 `toml:"falling_threshold"`

	JumpUpVelocity   float32 `toml:"jump_up_velocity"`
	MoveAcceleration float32 `toml:"move_acceleration"`
	JumpAcceleration float32 `toml:"jump_acceleration"`

	LockScreenOnClick bool       `toml:"lock_screen_on_click"`
	RotateHoldButton  HoldButton `toml:"rotate_hold_button"`
	ViewAngleYLimit   float32    `toml:"view_angle_y_limit"`
	RotateInvert      bool       `toml:"rotate_invert"`
	RotateRateX       float32    `toml:"rotate_rate_x"`
	RotateRateY       float32    `toml:"rotate_rate_y"`
	RotateMode        RotateMode `toml:"rotate_mode"`

	EventRepeatTimeoutMs int `toml:"event_repeat_timeout_ms"`
}

// Default returns the settings used when no file overrides them.
func Default() Settings {
	return Settings{
		Gravity:          30,
		StepsPerFrame:    5,
		TouchErrorRadius: 10,

		SpawnX:           0,
		SpawnZ:           0,
		SpawnYaw:         0,
		ViewHeight:       1.6,
		CapsuleRadius:    0.35,
		FallingThreshold: -25,

		JumpUpVelocity:   8,
		MoveAcceleration: 25,
		JumpAcceleration: 8,

		LockScreenOnClick: false,
		RotateHoldButton:  HoldNone,
		ViewAngleYLimit:   1.45,
		RotateInvert:      false,
		RotateRateX:       2,
		RotateRateY:       1,
		RotateMode:        RotateContinuous,

		EventRepeatTimeoutMs: 100,
	}
}

// Load reads settings from a TOML file. A missing file is created with the
// defaults; options absent from an existing file keep their default values,
// and the completed file is written back.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := s.Save(path); err != nil {
			return s, err
		}
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("error reading settings: %w", err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("error parsing settings: %w", err)
	}
	if err := s.Save(path); err != nil {
		return s, err
	}
	return s, nil
}

// Save writes the settings to a TOML file.
func (s Settings) Save(path string) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("error encoding settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing settings: %w", err)
	}
	return nil
}
