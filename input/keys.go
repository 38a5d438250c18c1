package input

// Key is a virtual key code. Values match GLFW key codes, which use ASCII
// values for printable keys.
type Key int

const (
	KeySpace Key = 32
	KeyA     Key = 65
	KeyD     Key = 68
	KeyS     Key = 83
	KeyW     Key = 87

	KeyRight Key = 262
	KeyLeft  Key = 263
	KeyDown  Key = 264
	KeyUp    Key = 265

	KeyLeftShift  Key = 340
	KeyRightShift Key = 344
)

// Button is a pointer button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)
