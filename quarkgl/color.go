package quarkgl

import "image/color"

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// Hex builds an opaque color from 0xRRGGBB.
func Hex(v uint32) Color {
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v))
}

// Hex returns the color as 0xRRGGBB.
func (c Color) Hex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Mul scales the color channels by s, saturating at 0 and 255. Alpha is kept.
func (c Color) Mul(s float32) Color {
	return Color{
		R: saturate(float32(c.R) * s),
		G: saturate(float32(c.G) * s),
		B: saturate(float32(c.B) * s),
		A: c.A,
	}
}

// ToRGBA converts to the image/color representation used by targets and fonts.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// saturate rounds to the nearest channel value and clamps to [0,255].
func saturate(v float32) uint8 {
	// NaN fails both comparisons and lands on 0.
	if !(v > 0) {
		return 0
	}
	if v >= 254.5 {
		return 255
	}
	return uint8(v + 0.5)
}
