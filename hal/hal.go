package hal

import (
	"errors"
	"image/color"
	"log/slog"
)

// ErrQuit is returned by an app step to end the run loop before the next frame.
var ErrQuit = errors.New("quit")

// Framebuffer is an RGBA pixel buffer with a per-pixel depth buffer plus a "present" hook.
//
// It is not safe for concurrent use; the frame loop owns it.
type Framebuffer interface {
	Width() int
	Height() int
	Size() (w, h int)

	// Clear fills the color buffer with the background and resets depth to +Inf.
	Clear()
	SetBackground(c color.RGBA)

	// SetCurrentColor selects the color written by Point.
	SetCurrentColor(c color.RGBA)
	// Point writes the current color at (x, y) if depth is strictly nearer than the
	// depth already stored there. Out-of-range coordinates are ignored.
	Point(x, y int, depth float32)
	// SetPixel writes c at (x, y) without depth testing (overlays).
	SetPixel(x, y int, c color.RGBA)

	// RGBA returns the packed RGBA8 rows (stride = 4*Width).
	RGBA() []byte
	Present() error
}

// Key is a minimal key identifier.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
	KeyShift
	KeyW
	KeyS
	KeyQ
	KeyE
	KeyM
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyU
	KeyO
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	keyCount
)

// Keyboard reports key state for the current frame.
type Keyboard interface {
	// Down reports whether k is held.
	Down(k Key) bool
	// JustPressed reports whether k went down this frame. It fires once per physical press.
	JustPressed(k Key) bool
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// HAL is the only contact point between the simulation and the outside world.
type HAL interface {
	Logger() *slog.Logger
	Display() Display
	Input() Input
}
