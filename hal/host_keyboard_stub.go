//go:build !cgo

package hal

func newHostKeyboard() Keyboard {
	// No keyboard support without the window backend.
	return NewScriptedKeyboard()
}
