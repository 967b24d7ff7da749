package quarkgl

import "github.com/go-gl/mathgl/mgl32"

// Vertex is a mesh vertex.
//
// Position, Normal, TexCoord and Color come from the mesh loader. The transform stage
// fills World, Screen and WorldNormal in a copy; inputs are never modified.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	TexCoord mgl32.Vec2
	Color    Color

	World       mgl32.Vec3
	Screen      mgl32.Vec3
	WorldNormal mgl32.Vec3
}

// Fragment is a shaded sample produced by the rasterizer.
type Fragment struct {
	X, Y  float32
	Color Color
	// Depth is the interpolated screen-space z. Smaller is nearer.
	Depth float32
}

// Uniforms is the matrix bundle for one draw.
type Uniforms struct {
	Model      mgl32.Mat4
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Viewport   mgl32.Mat4
}
