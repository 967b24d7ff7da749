package quarkgl

import "image/color"

// Target is the framebuffer contract the pipeline writes into.
//
// Point writes the current color at (x, y) only if depth passes the target's own
// per-pixel depth test. Callers bounds-check against Size before calling Point.
type Target interface {
	Size() (w, h int)
	SetCurrentColor(c color.RGBA)
	Point(x, y int, depth float32)
}
