package quarkgl

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// Ambient is the light floor for non-emissive surfaces.
	Ambient float32 = 0.2
	// Diffuse scales the Lambert term so a fully lit surface reaches 1.0.
	Diffuse float32 = 0.8
)

// Rect limits rasterization to pixels in [0,W)x[0,H).
// The zero Rect scans the triangle's whole bounding box.
type Rect struct {
	W, H int
}

// Triangle rasterizes one transformed triangle and appends its fragments to dst.
//
// Pixels are sampled at their centers. A pixel is covered when all three barycentric
// weights lie in [0,1]; edges are inclusive, so adjacent triangles may both emit a
// shared-edge pixel. Degenerate (zero-area) triangles and triangles with non-finite
// screen positions emit nothing.
//
// Non-emissive triangles are lit by a point light at light (world space) with
// Ambient + Diffuse·max(0, n·l). Emissive triangles keep the interpolated vertex color.
func Triangle(dst []Fragment, v1, v2, v3 *Vertex, light mgl32.Vec3, emissive bool, clip Rect) []Fragment {
	a, b, c := v1.Screen, v2.Screen, v3.Screen
	if !finite3(a) || !finite3(b) || !finite3(c) {
		return dst
	}

	area := edge(a.X(), a.Y(), b.X(), b.Y(), c.X(), c.Y())
	if area == 0 || !finite(area) {
		return dst
	}
	inv := 1 / area

	minX, minY, maxX, maxY := boundingBox(a, b, c, clip)

	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5

			w1, w2, w3 := weights(a, b, c, inv, px, py)
			if !inUnit(w1) || !inUnit(w2) || !inUnit(w3) {
				continue
			}

			light01 := float32(1)
			if !emissive {
				n := v1.WorldNormal.Mul(w1).Add(v2.WorldNormal.Mul(w2)).Add(v3.WorldNormal.Mul(w3))
				p := v1.World.Mul(w1).Add(v2.World.Mul(w2)).Add(v3.World.Mul(w3))
				light01 = Lighting(n, light.Sub(p))
			}
			col := blendLit(v1.Color, v2.Color, v3.Color, w1, w2, w3, light01)

			dst = append(dst, Fragment{
				X:     float32(x),
				Y:     float32(y),
				Color: col,
				Depth: a.Z()*w1 + b.Z()*w2 + c.Z()*w3,
			})
		}
	}
	return dst
}

// Lighting returns Ambient + Diffuse·max(0, dot(n̂, l̂)) for an unnormalized normal and
// fragment-to-light vector. A zero-length input contributes no diffuse term.
func Lighting(normal, toLight mgl32.Vec3) float32 {
	n, ok := normalize(normal)
	if !ok {
		return Ambient
	}
	l, ok := normalize(toLight)
	if !ok {
		return Ambient
	}
	intensity := n.Dot(l)
	if !(intensity > 0) {
		intensity = 0
	}
	if intensity > 1 {
		intensity = 1
	}
	return Ambient + Diffuse*intensity
}

// Barycentric returns the weights of p relative to triangle (a, b, c) in screen xy.
// ok is false for a degenerate triangle.
func Barycentric(a, b, c mgl32.Vec3, px, py float32) (w1, w2, w3 float32, ok bool) {
	area := edge(a.X(), a.Y(), b.X(), b.Y(), c.X(), c.Y())
	if area == 0 || !finite(area) {
		return 0, 0, 0, false
	}
	w1, w2, w3 = weights(a, b, c, 1/area, px, py)
	return w1, w2, w3, true
}

// weights scales the three edge functions at p by inv, the reciprocal of the signed area.
func weights(a, b, c mgl32.Vec3, inv, px, py float32) (w1, w2, w3 float32) {
	w1 = edge(b.X(), b.Y(), c.X(), c.Y(), px, py) * inv
	w2 = edge(c.X(), c.Y(), a.X(), a.Y(), px, py) * inv
	w3 = edge(a.X(), a.Y(), b.X(), b.Y(), px, py) * inv
	return w1, w2, w3
}

// unclippedLimit bounds the pixel range scanned when no clip Rect is set.
const unclippedLimit = 1 << 24

// boundingBox returns the inclusive pixel range covering the triangle, limited to clip
// when it is set. Bounds are clamped as floats so out-of-range coordinates never reach
// the int conversion.
func boundingBox(a, b, c mgl32.Vec3, clip Rect) (minX, minY, maxX, maxY int) {
	loX, loY := float64(-unclippedLimit), float64(-unclippedLimit)
	hiX, hiY := float64(unclippedLimit), float64(unclippedLimit)
	if clip.W > 0 && clip.H > 0 {
		loX, loY = 0, 0
		hiX, hiY = float64(clip.W-1), float64(clip.H-1)
	}
	minX = pixel(math.Floor(float64(min(a.X(), b.X(), c.X()))), loX, hiX)
	minY = pixel(math.Floor(float64(min(a.Y(), b.Y(), c.Y()))), loY, hiY)
	maxX = pixel(math.Ceil(float64(max(a.X(), b.X(), c.X()))), loX, hiX)
	maxY = pixel(math.Ceil(float64(max(a.Y(), b.Y(), c.Y()))), loY, hiY)
	return minX, minY, maxX, maxY
}

func pixel(v, lo, hi float64) int {
	return int(math.Max(lo, math.Min(hi, v)))
}

// edge is the 2D cross product of (b-a) and (p-a), matching the winding used for area.
func edge(ax, ay, bx, by, px, py float32) float32 {
	return (px-ax)*(by-ay) - (py-ay)*(bx-ax)
}

// blendLit interpolates the vertex colors and applies the light factor before a single
// rounding step, so a fully lit fragment keeps its base color.
func blendLit(c1, c2, c3 Color, w1, w2, w3, k float32) Color {
	return Color{
		R: saturate((float32(c1.R)*w1 + float32(c2.R)*w2 + float32(c3.R)*w3) * k),
		G: saturate((float32(c1.G)*w1 + float32(c2.G)*w2 + float32(c3.G)*w3) * k),
		B: saturate((float32(c1.B)*w1 + float32(c2.B)*w2 + float32(c3.B)*w3) * k),
		A: saturate(float32(c1.A)*w1 + float32(c2.A)*w2 + float32(c3.A)*w3),
	}
}

func inUnit(w float32) bool { return w >= 0 && w <= 1 }
