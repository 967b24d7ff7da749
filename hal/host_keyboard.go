//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var ebitenKeys = [keyCount]ebiten.Key{
	KeyUp:     ebiten.KeyArrowUp,
	KeyDown:   ebiten.KeyArrowDown,
	KeyLeft:   ebiten.KeyArrowLeft,
	KeyRight:  ebiten.KeyArrowRight,
	KeyEscape: ebiten.KeyEscape,
	KeyShift:  ebiten.KeyShift,
	KeyW:      ebiten.KeyW,
	KeyS:      ebiten.KeyS,
	KeyQ:      ebiten.KeyQ,
	KeyE:      ebiten.KeyE,
	KeyM:      ebiten.KeyM,
	KeyI:      ebiten.KeyI,
	KeyJ:      ebiten.KeyJ,
	KeyK:      ebiten.KeyK,
	KeyL:      ebiten.KeyL,
	KeyU:      ebiten.KeyU,
	KeyO:      ebiten.KeyO,
	Key0:      ebiten.KeyDigit0,
	Key1:      ebiten.KeyDigit1,
	Key2:      ebiten.KeyDigit2,
	Key3:      ebiten.KeyDigit3,
	Key4:      ebiten.KeyDigit4,
	Key5:      ebiten.KeyDigit5,
	Key6:      ebiten.KeyDigit6,
	Key7:      ebiten.KeyDigit7,
	Key8:      ebiten.KeyDigit8,
	Key9:      ebiten.KeyDigit9,
}

// hostKeyboard reads ebiten key state. It must be queried from within the game's Update.
type hostKeyboard struct{}

func newHostKeyboard() Keyboard { return hostKeyboard{} }

func (hostKeyboard) Down(k Key) bool {
	if k == KeyUnknown || k >= keyCount {
		return false
	}
	return ebiten.IsKeyPressed(ebitenKeys[k])
}

func (hostKeyboard) JustPressed(k Key) bool {
	if k == KeyUnknown || k >= keyCount {
		return false
	}
	if k == KeyShift {
		return inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft) || inpututil.IsKeyJustPressed(ebiten.KeyShiftRight)
	}
	return inpututil.IsKeyJustPressed(ebitenKeys[k])
}
