package quarkgl

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// VertexStage applies one Uniforms bundle to many vertices.
//
// The combined clip matrix is computed once per draw instead of once per vertex.
type VertexStage struct {
	model    mgl32.Mat4
	clip     mgl32.Mat4
	viewport mgl32.Mat4
	normal   mgl32.Mat3
}

func NewVertexStage(u Uniforms) VertexStage {
	return VertexStage{
		model:    u.Model,
		clip:     u.Projection.Mul4(u.View).Mul4(u.Model),
		viewport: u.Viewport,
		// Upper 3x3 of the model matrix, not its inverse-transpose. Only valid for
		// uniform scale, which is all the scene uses.
		normal: u.Model.Mat3(),
	}
}

// Apply returns a copy of v with World, Screen and WorldNormal populated.
//
// A clip-space w of zero or below (vertex at or behind the eye) is not clipped and yields
// an inverted or non-finite screen position; the rasterizer drops such triangles.
func (s VertexStage) Apply(v Vertex) Vertex {
	local := v.Position.Vec4(1)

	v.World = s.model.Mul4x1(local).Vec3()

	c := s.clip.Mul4x1(local)
	w := c.W()
	ndc := mgl32.Vec4{c.X() / w, c.Y() / w, c.Z() / w, 1}
	v.Screen = s.viewport.Mul4x1(ndc).Vec3()

	v.WorldNormal, _ = normalize(s.normal.Mul3x1(v.Normal))
	return v
}

// TransformVertex runs a single vertex through the transform stage.
func TransformVertex(v Vertex, u Uniforms) Vertex {
	return NewVertexStage(u).Apply(v)
}

// ViewportMatrix maps NDC [-1,1] to pixel coordinates with y pointing down.
// Depth is passed through unchanged.
func ViewportMatrix(w, h int) mgl32.Mat4 {
	hw := float32(w) / 2
	hh := float32(h) / 2
	return mgl32.Mat4{
		hw, 0, 0, 0,
		0, -hh, 0, 0,
		0, 0, 1, 0,
		hw, hh, 0, 1,
	}
}

// ModelMatrix builds translate · uniform-scale · Rz · Ry · Rx.
func ModelMatrix(translation mgl32.Vec3, scale float32, rotation mgl32.Vec3) mgl32.Mat4 {
	rot := mgl32.HomogRotate3DZ(rotation.Z()).
		Mul4(mgl32.HomogRotate3DY(rotation.Y())).
		Mul4(mgl32.HomogRotate3DX(rotation.X()))
	return mgl32.Translate3D(translation.X(), translation.Y(), translation.Z()).
		Mul4(mgl32.Scale3D(scale, scale, scale)).
		Mul4(rot)
}

// normalize returns v scaled to unit length, or false for a zero or non-finite vector.
func normalize(v mgl32.Vec3) (mgl32.Vec3, bool) {
	l := v.Len()
	if l == 0 || !finite(l) {
		return mgl32.Vec3{}, false
	}
	return v.Mul(1 / l), true
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func finite3(v mgl32.Vec3) bool {
	return finite(v[0]) && finite(v[1]) && finite(v[2])
}
