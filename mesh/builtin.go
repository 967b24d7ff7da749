package mesh

import (
	"math"

	"orrery/quarkgl"

	"github.com/go-gl/mathgl/mgl32"
)

// Sphere returns a unit UV sphere around the z axis with outward normals.
// rings is clamped to at least 2 and segments to at least 3.
// The pole caps emit one triangle per segment, so the count is 2·segments·(rings−1).
func Sphere(rings, segments int) []quarkgl.Vertex {
	rings = max(rings, 2)
	segments = max(segments, 3)

	point := func(r, s int) quarkgl.Vertex {
		theta := math.Pi * float64(r) / float64(rings)
		phi := 2 * math.Pi * float64(s) / float64(segments)
		st, ct := math.Sincos(theta)
		sp, cp := math.Sincos(phi)
		p := mgl32.Vec3{float32(st * cp), float32(st * sp), float32(ct)}
		return quarkgl.Vertex{
			Position: p,
			Normal:   p,
			TexCoord: mgl32.Vec2{float32(s) / float32(segments), float32(r) / float32(rings)},
			Color:    white,
		}
	}

	out := make([]quarkgl.Vertex, 0, 6*segments*(rings-1))
	for r := 0; r < rings; r++ {
		for s := 0; s < segments; s++ {
			p00, p01 := point(r, s), point(r, s+1)
			p10, p11 := point(r+1, s), point(r+1, s+1)
			if r > 0 {
				out = append(out, p00, p01, p11)
			}
			if r < rings-1 {
				out = append(out, p00, p11, p10)
			}
		}
	}
	return out
}

// Ship returns a small dart pointing along −z, about two units long.
func Ship() []quarkgl.Vertex {
	var (
		nose   = mgl32.Vec3{0, 0, -1.5}
		left   = mgl32.Vec3{-1, 0, 0.5}
		right  = mgl32.Vec3{1, 0, 0.5}
		top    = mgl32.Vec3{0, 0.4, 0.5}
		bottom = mgl32.Vec3{0, -0.25, 0.5}
	)
	faces := [][3]mgl32.Vec3{
		{nose, top, left},
		{nose, right, top},
		{nose, left, bottom},
		{nose, bottom, right},
		{left, top, right},
		{left, right, bottom},
	}
	// Normals point away from the hull center.
	center := mgl32.Vec3{0, 0, 0.25}
	out := make([]quarkgl.Vertex, 0, 3*len(faces))
	for _, f := range faces {
		n := f[1].Sub(f[0]).Cross(f[2].Sub(f[0])).Normalize()
		if n.Dot(f[0].Add(f[1]).Add(f[2]).Mul(1.0/3).Sub(center)) < 0 {
			n = n.Mul(-1)
		}
		for _, p := range f {
			out = append(out, quarkgl.Vertex{Position: p, Normal: n, Color: white})
		}
	}
	return out
}
