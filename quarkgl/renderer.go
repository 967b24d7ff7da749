package quarkgl

import "github.com/go-gl/mathgl/mgl32"

// Renderer is a fixed-pipeline software renderer.
//
// Create it once and reuse it; scratch buffers grow to the largest draw and stay.
type Renderer struct {
	// Light is the world-space position of the point light used for non-emissive draws.
	Light mgl32.Vec3

	Stats Stats

	verts []Vertex
	frags []Fragment
}

// Stats counts pipeline work since the last ResetStats.
type Stats struct {
	Draws     int
	Triangles int
	Fragments int
	Points    int
}

// DrawCall is one mesh drawn with one surface.
type DrawCall struct {
	Uniforms Uniforms
	// Vertices is a triangle list; a trailing partial triple is ignored.
	Vertices []Vertex
	// Color replaces every vertex color before rasterization.
	Color   Color
	Surface Surface
	// Time is the simulation time in seconds fed to animated surfaces.
	Time float32
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) ResetStats() { r.Stats = Stats{} }

// Draw runs the full pipeline for dc and writes accepted fragments into t.
func (r *Renderer) Draw(t Target, dc DrawCall) {
	if r == nil || t == nil || len(dc.Vertices) < 3 {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	r.Stats.Draws++

	stage := NewVertexStage(dc.Uniforms)
	r.verts = r.verts[:0]
	for _, v := range dc.Vertices {
		v.Color = dc.Color
		r.verts = append(r.verts, stage.Apply(v))
	}

	emissive := dc.Surface.Emissive()
	clip := Rect{W: w, H: h}
	for i := 0; i+2 < len(r.verts); i += 3 {
		r.Stats.Triangles++
		r.frags = Triangle(r.frags[:0], &r.verts[i], &r.verts[i+1], &r.verts[i+2], r.Light, emissive, clip)
		r.Stats.Fragments += len(r.frags)

		for _, f := range r.frags {
			x := int(f.X)
			y := int(f.Y)
			if x < 0 || y < 0 || x >= w || y >= h {
				continue
			}
			t.SetCurrentColor(Shade(dc.Surface, f, dc.Time).ToRGBA())
			t.Point(x, y, f.Depth)
			r.Stats.Points++
		}
	}
}
