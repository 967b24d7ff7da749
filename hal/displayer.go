package hal

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// Displayer adapts a Framebuffer to drivers.Displayer so tinyfont can draw overlays.
// Writes bypass the depth buffer.
func Displayer(fb Framebuffer) drivers.Displayer {
	return &fbDisplayer{fb: fb}
}

type fbDisplayer struct {
	fb Framebuffer
}

func (d *fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil {
		return
	}
	d.fb.SetPixel(int(x), int(y), c)
}

func (d *fbDisplayer) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}
