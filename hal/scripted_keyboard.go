package hal

import (
	"fmt"
	"strconv"
	"strings"
)

// ScriptedKeyboard replays key presses by frame number. It drives headless runs and tests.
type ScriptedKeyboard struct {
	frame int
	spans []keySpan
}

type keySpan struct {
	key      Key
	from, to int
}

func NewScriptedKeyboard() *ScriptedKeyboard {
	return &ScriptedKeyboard{}
}

// Press holds keys down for exactly one frame.
func (k *ScriptedKeyboard) Press(frame int, keys ...Key) {
	k.Hold(frame, frame, keys...)
}

// Hold holds keys down from frame `from` through frame `to` inclusive.
func (k *ScriptedKeyboard) Hold(from, to int, keys ...Key) {
	if to < from {
		from, to = to, from
	}
	for _, key := range keys {
		k.spans = append(k.spans, keySpan{key: key, from: from, to: to})
	}
}

// Step advances to the next frame.
func (k *ScriptedKeyboard) Step() { k.frame++ }

// Frame returns the current frame number.
func (k *ScriptedKeyboard) Frame() int { return k.frame }

func (k *ScriptedKeyboard) Down(key Key) bool {
	for _, s := range k.spans {
		if s.key == key && s.from <= k.frame && k.frame <= s.to {
			return true
		}
	}
	return false
}

func (k *ScriptedKeyboard) JustPressed(key Key) bool {
	for _, s := range k.spans {
		if s.key != key || s.from != k.frame {
			continue
		}
		// A span that continues an earlier held span is not a new press.
		if !k.downAt(key, k.frame-1) {
			return true
		}
	}
	return false
}

func (k *ScriptedKeyboard) downAt(key Key, frame int) bool {
	for _, s := range k.spans {
		if s.key == key && s.from <= frame && frame <= s.to {
			return true
		}
	}
	return false
}

// ParseKeyScript adds presses from a comma-separated list of "frame:key" or
// "from-to:key" entries, e.g. "30:2,100-160:left".
func (k *ScriptedKeyboard) ParseKeyScript(script string) error {
	for _, item := range strings.Split(script, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		frames, name, ok := strings.Cut(item, ":")
		if !ok {
			return fmt.Errorf("key script %q: want frame:key", item)
		}
		key, err := ParseKey(name)
		if err != nil {
			return fmt.Errorf("key script %q: %w", item, err)
		}
		fromS, toS, ranged := strings.Cut(frames, "-")
		from, err := strconv.Atoi(strings.TrimSpace(fromS))
		if err != nil {
			return fmt.Errorf("key script %q: %w", item, err)
		}
		to := from
		if ranged {
			if to, err = strconv.Atoi(strings.TrimSpace(toS)); err != nil {
				return fmt.Errorf("key script %q: %w", item, err)
			}
		}
		k.Hold(from, to, key)
	}
	return nil
}
