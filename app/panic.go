package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"orrery/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// recoverFrame turns a panic inside a frame into an error, logging the stack and
// leaving a panic screen in the framebuffer.
func (s *system) recoverFrame(err *error) {
	v := recover()
	if v == nil {
		return
	}
	stack := debug.Stack()
	s.h.Logger().Error("frame panic", "tick", s.state.Tick, "panic", v, "stack", string(stack))
	if s.fb != nil {
		drawPanic(s.fb, v, stack)
	}
	*err = fmt.Errorf("frame %d panic: %v", s.state.Tick, v)
}

func drawPanic(fb hal.Framebuffer, v any, stack []byte) {
	fb.SetBackground(color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	fb.Clear()

	font := &proggy.TinySZ8pt7b
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	fontWidth := int16(outboxWidth)
	const fontHeight = 10
	if fontWidth <= 0 {
		_ = fb.Present()
		return
	}

	lines := []string{"Orrery panic:", fmt.Sprintf("panic: %v", v)}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line != "" {
				lines = append(lines, line)
			}
		}
	}

	d := hal.Displayer(fb)
	fg := color.RGBA{A: 0xFF}
	cols := int16(fb.Width()) / fontWidth
	if cols <= 0 {
		cols = 1
	}
	y := int16(fontHeight)
	for _, line := range lines {
		for len(line) > 0 {
			if int(y) > fb.Height() {
				_ = fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, font, 0, y, chunk, fg)
			y += fontHeight
			line = strings.TrimLeft(rest, " \t")
		}
	}
	_ = fb.Present()
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= int(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
