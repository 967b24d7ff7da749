package quarkgl

import (
	"fmt"
	"math"
	"strings"
)

// Surface selects the procedural fragment shader for a body.
type Surface uint8

const (
	// SurfacePlainLit keeps the diffuse-lit color as is.
	SurfacePlainLit Surface = iota
	// SurfaceEmissive is unlit and flickers with animated noise.
	SurfaceEmissive
	// SurfaceGasGiant has moving horizontal bands plus turbulence.
	SurfaceGasGiant
	// SurfaceRocky has rough noise and dark crater patches.
	SurfaceRocky
)

var surfaceNames = [...]string{
	SurfacePlainLit: "plain",
	SurfaceEmissive: "emissive",
	SurfaceGasGiant: "gas",
	SurfaceRocky:    "rocky",
}

func (s Surface) String() string {
	if int(s) < len(surfaceNames) {
		return surfaceNames[s]
	}
	return fmt.Sprintf("Surface(%d)", uint8(s))
}

// ParseSurface maps a config name to a Surface.
func ParseSurface(name string) (Surface, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range surfaceNames {
		if s == n {
			return Surface(i), nil
		}
	}
	switch n {
	case "", "lit", "default":
		return SurfacePlainLit, nil
	case "star", "sun":
		return SurfaceEmissive, nil
	case "gaseous", "gasgiant":
		return SurfaceGasGiant, nil
	}
	return 0, fmt.Errorf("unknown surface %q", name)
}

// Emissive reports whether the surface skips lighting in the rasterizer.
func (s Surface) Emissive() bool { return s == SurfaceEmissive }

// Shade post-processes a rasterized fragment for the given surface at time t (seconds).
func Shade(s Surface, f Fragment, t float32) Color {
	switch s {
	case SurfaceEmissive:
		return ShadeEmissive(f, t)
	case SurfaceGasGiant:
		return ShadeGasGiant(f, t)
	case SurfaceRocky:
		return ShadeRocky(f)
	default:
		return f.Color
	}
}

// ShadeGasGiant scales the base color by 0.7..1.3 from banding plus 3-octave turbulence.
func ShadeGasGiant(f Fragment, t float32) Color {
	bands := sin32(f.Y*0.03+t*0.5)*0.5 + 0.5
	turbulence := FBM(f.X*0.02+t, f.Y*0.02, 3)
	pattern := clamp01(bands + turbulence*0.3)
	return f.Color.Mul(0.7 + pattern*0.6)
}

// ShadeRocky darkens with 4-octave noise and halves intensity inside craters.
func ShadeRocky(f Fragment) Color {
	rock := FBM(f.X*0.05, f.Y*0.05, 4)
	craters := float32(1)
	if Noise(f.X*0.03, f.Y*0.03) > 0.85 {
		craters = 0.5
	}
	return f.Color.Mul((rock*0.4 + 0.6) * craters)
}

// ShadeEmissive adds animated 2-octave activity on top of a 0.9 base intensity.
func ShadeEmissive(f Fragment, t float32) Color {
	activity := FBM(f.X*0.03+t*2, f.Y*0.03+t*1.5, 2)
	return f.Color.Mul(0.9 + activity*0.2)
}

func sin32(v float32) float32 { return float32(math.Sin(float64(v))) }

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
