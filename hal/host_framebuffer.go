package hal

import (
	"image/color"
	"math"
)

type hostFramebuffer struct {
	width  int
	height int
	pix    []byte
	depth  []float32

	bg  color.RGBA
	cur color.RGBA
}

// NewFramebuffer allocates an RGBA framebuffer with a depth buffer.
func NewFramebuffer(width, height int) Framebuffer {
	return newHostFramebuffer(width, height)
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	f := &hostFramebuffer{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*4),
		depth:  make([]float32, width*height),
		bg:     color.RGBA{A: 0xFF},
	}
	f.Clear()
	return f
}

func (f *hostFramebuffer) Width() int                   { return f.width }
func (f *hostFramebuffer) Height() int                  { return f.height }
func (f *hostFramebuffer) Size() (int, int)             { return f.width, f.height }
func (f *hostFramebuffer) RGBA() []byte                 { return f.pix }
func (f *hostFramebuffer) Present() error               { return nil }
func (f *hostFramebuffer) SetBackground(c color.RGBA)   { f.bg = c }
func (f *hostFramebuffer) SetCurrentColor(c color.RGBA) { f.cur = c }

func (f *hostFramebuffer) Clear() {
	if len(f.pix) == 0 {
		return
	}
	f.pix[0], f.pix[1], f.pix[2], f.pix[3] = f.bg.R, f.bg.G, f.bg.B, f.bg.A
	for i := 4; i < len(f.pix); i *= 2 {
		copy(f.pix[i:], f.pix[:i])
	}
	inf := float32(math.Inf(1))
	f.depth[0] = inf
	for i := 1; i < len(f.depth); i *= 2 {
		copy(f.depth[i:], f.depth[:i])
	}
}

func (f *hostFramebuffer) Point(x, y int, depth float32) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	i := y*f.width + x
	if !(depth < f.depth[i]) {
		return
	}
	f.depth[i] = depth
	f.put(i, f.cur)
}

func (f *hostFramebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	f.put(y*f.width+x, c)
}

func (f *hostFramebuffer) put(i int, c color.RGBA) {
	off := i * 4
	f.pix[off+0] = c.R
	f.pix[off+1] = c.G
	f.pix[off+2] = c.B
	f.pix[off+3] = c.A
}
