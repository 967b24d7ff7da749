package hal

import (
	"fmt"
	"strings"
)

var keyNames = [...]string{
	KeyUnknown: "unknown",
	KeyUp:      "up",
	KeyDown:    "down",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeyEscape:  "esc",
	KeyShift:   "shift",
	KeyW:       "w",
	KeyS:       "s",
	KeyQ:       "q",
	KeyE:       "e",
	KeyM:       "m",
	KeyI:       "i",
	KeyJ:       "j",
	KeyK:       "k",
	KeyL:       "l",
	KeyU:       "u",
	KeyO:       "o",
	Key0:       "0",
	Key1:       "1",
	Key2:       "2",
	Key3:       "3",
	Key4:       "4",
	Key5:       "5",
	Key6:       "6",
	Key7:       "7",
	Key8:       "8",
	Key9:       "9",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", uint8(k))
}

// DigitKey returns the key for digit n (0..9).
func DigitKey(n int) (Key, bool) {
	if n < 0 || n > 9 {
		return KeyUnknown, false
	}
	return Key0 + Key(n), true
}

// ParseKey maps a key name (as printed by Key.String) back to a Key.
func ParseKey(name string) (Key, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "escape" {
		return KeyEscape, nil
	}
	for i, s := range keyNames {
		if i != int(KeyUnknown) && s == n {
			return Key(i), nil
		}
	}
	return KeyUnknown, fmt.Errorf("unknown key %q", name)
}
