package quarkgl

import (
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

type memTarget struct {
	w, h  int
	cur   color.RGBA
	pix   []color.RGBA
	depth []float32
}

func newMemTarget(w, h int) *memTarget {
	t := &memTarget{w: w, h: h, pix: make([]color.RGBA, w*h), depth: make([]float32, w*h)}
	for i := range t.depth {
		t.depth[i] = float32(math.Inf(1))
	}
	return t
}

func (t *memTarget) Size() (int, int)              { return t.w, t.h }
func (t *memTarget) SetCurrentColor(c color.RGBA) { t.cur = c }

func (t *memTarget) Point(x, y int, depth float32) {
	i := y*t.w + x
	if depth >= t.depth[i] {
		return
	}
	t.depth[i] = depth
	t.pix[i] = t.cur
}

func screenVertex(x, y, z float32, c Color) Vertex {
	return Vertex{Screen: mgl32.Vec3{x, y, z}, Color: c, WorldNormal: mgl32.Vec3{0, 0, 1}}
}

func randomTriangle(rng *rand.Rand) (Vertex, Vertex, Vertex) {
	p := func() float32 { return rng.Float32()*60 - 10 }
	c := RGB(200, 100, 50)
	return screenVertex(p(), p(), rng.Float32(), c),
		screenVertex(p(), p(), rng.Float32(), c),
		screenVertex(p(), p(), rng.Float32(), c)
}

func TestTriangleWeightsSumToOne(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		a, b, c := randomTriangle(rng)
		frags := Triangle(nil, &a, &b, &c, mgl32.Vec3{}, true, Rect{})
		for _, f := range frags {
			w1, w2, w3, ok := Barycentric(a.Screen, b.Screen, c.Screen, f.X+0.5, f.Y+0.5)
			if !ok {
				t.Fatalf("Barycentric() ok = false for a triangle that emitted fragments")
			}
			if sum := w1 + w2 + w3; !mgl32.FloatEqualThreshold(sum, 1, 1e-4) {
				t.Fatalf("w1+w2+w3 = %v, want 1", sum)
			}
		}
	}
}

func TestTriangleStaysInBoundingBox(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 50; i++ {
		a, b, c := randomTriangle(rng)
		minX, minY, maxX, maxY := boundingBox(a.Screen, b.Screen, c.Screen, Rect{})
		for _, f := range Triangle(nil, &a, &b, &c, mgl32.Vec3{}, true, Rect{}) {
			x, y := int(f.X), int(f.Y)
			if x < minX || x > maxX || y < minY || y > maxY {
				t.Fatalf("fragment (%d,%d) outside box [%d,%d]x[%d,%d]", x, y, minX, maxX, minY, maxY)
			}
		}
	}
}

func TestTriangleClipRect(t *testing.T) {
	a := screenVertex(-20, -20, 0, RGB(255, 255, 255))
	b := screenVertex(40, -20, 0, RGB(255, 255, 255))
	c := screenVertex(-20, 40, 0, RGB(255, 255, 255))
	frags := Triangle(nil, &a, &b, &c, mgl32.Vec3{}, true, Rect{W: 8, H: 8})
	if len(frags) == 0 {
		t.Fatalf("Triangle() emitted no fragments")
	}
	for _, f := range frags {
		if f.X < 0 || f.Y < 0 || f.X >= 8 || f.Y >= 8 {
			t.Fatalf("fragment (%v,%v) outside clip", f.X, f.Y)
		}
	}
}

func TestBoundingBoxHugeCoordinates(t *testing.T) {
	a := mgl32.Vec3{0, 0, 0}
	b := mgl32.Vec3{1e19, 0, 0}
	c := mgl32.Vec3{0, 1e19, 0}
	minX, minY, maxX, maxY := boundingBox(a, b, c, Rect{W: 8, H: 8})
	if minX != 0 || minY != 0 || maxX != 7 || maxY != 7 {
		t.Fatalf("boundingBox() = [%d,%d]x[%d,%d], want [0,7]x[0,7]", minX, maxX, minY, maxY)
	}

	a = mgl32.Vec3{-1e19, -1e19, 0}
	minX, minY, maxX, maxY = boundingBox(a, b, c, Rect{W: 8, H: 8})
	if minX != 0 || minY != 0 || maxX != 7 || maxY != 7 {
		t.Fatalf("boundingBox() = [%d,%d]x[%d,%d], want [0,7]x[0,7]", minX, maxX, minY, maxY)
	}

	minX, minY, maxX, maxY = boundingBox(a, b, c, Rect{})
	if minX != -unclippedLimit || minY != -unclippedLimit || maxX != unclippedLimit || maxY != unclippedLimit {
		t.Fatalf("unclipped boundingBox() = [%d,%d]x[%d,%d], want ±%d", minX, maxX, minY, maxY, unclippedLimit)
	}
}

func TestTriangleHugeCoordinatesStayInClip(t *testing.T) {
	a := screenVertex(0, 0, 0, RGB(255, 255, 255))
	b := screenVertex(1e19, 0, 0, RGB(255, 255, 255))
	c := screenVertex(0, 1e19, 0, RGB(255, 255, 255))
	frags := Triangle(nil, &a, &b, &c, mgl32.Vec3{}, true, Rect{W: 8, H: 8})
	if len(frags) > 64 {
		t.Fatalf("Triangle() emitted %d fragments, want at most 64", len(frags))
	}
	for _, f := range frags {
		if f.X < 0 || f.Y < 0 || f.X >= 8 || f.Y >= 8 {
			t.Fatalf("fragment (%v,%v) outside clip", f.X, f.Y)
		}
	}
}

func TestBarycentricMatchesTriangle(t *testing.T) {
	a := screenVertex(0, 0, 0, RGB(255, 0, 0))
	b := screenVertex(20, 0, 0, RGB(0, 255, 0))
	c := screenVertex(0, 20, 0, RGB(0, 0, 255))
	for _, f := range Triangle(nil, &a, &b, &c, mgl32.Vec3{}, true, Rect{}) {
		w1, w2, w3, ok := Barycentric(a.Screen, b.Screen, c.Screen, f.X+0.5, f.Y+0.5)
		if !ok {
			t.Fatalf("Barycentric() ok = false")
		}
		want := blendLit(a.Color, b.Color, c.Color, w1, w2, w3, 1)
		if f.Color != want {
			t.Fatalf("fragment (%v,%v) color = %v, want %v from Barycentric weights", f.X, f.Y, f.Color, want)
		}
	}
}

func TestTriangleDegenerate(t *testing.T) {
	a := screenVertex(0, 0, 0, RGB(255, 0, 0))
	b := screenVertex(5, 5, 0, RGB(255, 0, 0))
	c := screenVertex(10, 10, 0, RGB(255, 0, 0))
	if got := Triangle(nil, &a, &b, &c, mgl32.Vec3{}, false, Rect{}); len(got) != 0 {
		t.Fatalf("len(Triangle(collinear)) = %d, want 0", len(got))
	}

	inf := float32(math.Inf(1))
	d := screenVertex(inf, 0, 0, RGB(255, 0, 0))
	if got := Triangle(nil, &a, &b, &d, mgl32.Vec3{}, false, Rect{}); len(got) != 0 {
		t.Fatalf("len(Triangle(non-finite)) = %d, want 0", len(got))
	}
}

func TestTriangleDepthInterpolation(t *testing.T) {
	a := screenVertex(0, 0, 0.5, RGB(10, 10, 10))
	b := screenVertex(20, 0, 0.5, RGB(10, 10, 10))
	c := screenVertex(0, 20, 0.5, RGB(10, 10, 10))
	for _, f := range Triangle(nil, &a, &b, &c, mgl32.Vec3{}, true, Rect{}) {
		if !mgl32.FloatEqualThreshold(f.Depth, 0.5, 1e-5) {
			t.Fatalf("Depth = %v, want 0.5", f.Depth)
		}
	}
}

func TestTriangleLitFromAbove(t *testing.T) {
	base := RGB(200, 120, 40)
	mk := func(sx, sy, wx, wz float32) Vertex {
		return Vertex{
			Screen:      mgl32.Vec3{sx, sy, 0},
			World:       mgl32.Vec3{wx, 0, wz},
			WorldNormal: mgl32.Vec3{0, 1, 0},
			Color:       base,
		}
	}
	a := mk(0, 0, -1, -1)
	b := mk(10, 0, 1, -1)
	c := mk(0, 10, -1, 1)
	light := mgl32.Vec3{0, 10000, 0}

	frags := Triangle(nil, &a, &b, &c, light, false, Rect{})
	if len(frags) == 0 {
		t.Fatalf("Triangle() emitted no fragments")
	}
	for _, f := range frags {
		if d := int(base.R) - int(f.Color.R); d < 0 || d > 1 {
			t.Fatalf("lit R = %d, want ~%d", f.Color.R, base.R)
		}
		if d := int(base.G) - int(f.Color.G); d < 0 || d > 1 {
			t.Fatalf("lit G = %d, want ~%d", f.Color.G, base.G)
		}
	}

	below := mgl32.Vec3{0, -10000, 0}
	for _, f := range Triangle(nil, &a, &b, &c, below, false, Rect{}) {
		if f.Color.R != base.Mul(Ambient).R {
			t.Fatalf("unlit R = %d, want %d", f.Color.R, base.Mul(Ambient).R)
		}
	}
}

func TestTriangleEmissiveIgnoresLight(t *testing.T) {
	base := RGB(255, 221, 0)
	a := screenVertex(0, 0, 0, base)
	b := screenVertex(10, 0, 0, base)
	c := screenVertex(0, 10, 0, base)
	for _, f := range Triangle(nil, &a, &b, &c, mgl32.Vec3{0, 0, -1000}, true, Rect{}) {
		if f.Color != base {
			t.Fatalf("emissive Color = %v, want %v", f.Color, base)
		}
	}
}

func TestLightingRange(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	v := func() mgl32.Vec3 {
		return mgl32.Vec3{rng.Float32()*2 - 1, rng.Float32()*2 - 1, rng.Float32()*2 - 1}
	}
	for i := 0; i < 1000; i++ {
		got := Lighting(v(), v())
		if got < Ambient || got > Ambient+Diffuse+1e-6 {
			t.Fatalf("Lighting() = %v, want in [0.2, 1]", got)
		}
	}
	if got := Lighting(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}); got != Ambient {
		t.Fatalf("Lighting(zero normal) = %v, want %v", got, Ambient)
	}
	if got := Lighting(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 5, 0}); !mgl32.FloatEqual(got, 1) {
		t.Fatalf("Lighting(aligned) = %v, want 1", got)
	}
}

func TestTransformVertex(t *testing.T) {
	in := Vertex{
		Position: mgl32.Vec3{0.5, -0.5, 0},
		Normal:   mgl32.Vec3{0, 0, 2},
		Color:    RGB(1, 2, 3),
	}
	orig := in
	u := Uniforms{
		Model:      mgl32.Ident4(),
		View:       mgl32.Ident4(),
		Projection: mgl32.Ident4(),
		Viewport:   ViewportMatrix(100, 100),
	}
	got := TransformVertex(in, u)
	if in != orig {
		t.Fatalf("TransformVertex() mutated its input")
	}
	if want := (mgl32.Vec3{75, 75, 0}); !got.Screen.ApproxEqual(want) {
		t.Fatalf("Screen = %v, want %v", got.Screen, want)
	}
	if !got.World.ApproxEqual(in.Position) {
		t.Fatalf("World = %v, want %v", got.World, in.Position)
	}
	if want := (mgl32.Vec3{0, 0, 1}); !got.WorldNormal.ApproxEqual(want) {
		t.Fatalf("WorldNormal = %v, want %v", got.WorldNormal, want)
	}
}

func TestTransformVertexModel(t *testing.T) {
	u := Uniforms{
		Model:      ModelMatrix(mgl32.Vec3{10, 20, 30}, 4, mgl32.Vec3{0, 0, float32(math.Pi / 2)}),
		View:       mgl32.Ident4(),
		Projection: mgl32.Ident4(),
		Viewport:   mgl32.Ident4(),
	}
	got := TransformVertex(Vertex{Position: mgl32.Vec3{1, 0, 0}, Normal: mgl32.Vec3{1, 0, 0}}, u)
	if want := (mgl32.Vec3{10, 24, 30}); !got.World.ApproxEqualThreshold(want, 1e-4) {
		t.Fatalf("World = %v, want %v", got.World, want)
	}
	if want := (mgl32.Vec3{0, 1, 0}); !got.WorldNormal.ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("WorldNormal = %v, want %v", got.WorldNormal, want)
	}
}

func TestColorMulSaturates(t *testing.T) {
	c := RGBA(200, 100, 0, 77)
	if got, want := c.Mul(2), RGBA(255, 200, 0, 77); got != want {
		t.Fatalf("Mul(2) = %v, want %v", got, want)
	}
	if got, want := c.Mul(-1), RGBA(0, 0, 0, 77); got != want {
		t.Fatalf("Mul(-1) = %v, want %v", got, want)
	}
	if got, want := Hex(0xFFDD00), RGB(0xFF, 0xDD, 0x00); got != want {
		t.Fatalf("Hex() = %v, want %v", got, want)
	}
}

func TestNoise(t *testing.T) {
	for y := float32(-50); y < 50; y += 3.7 {
		for x := float32(-50); x < 50; x += 2.3 {
			n := Noise(x, y)
			if n < 0 || n >= 1 {
				t.Fatalf("Noise(%v,%v) = %v, want in [0,1)", x, y, n)
			}
			if n != Noise(x, y) {
				t.Fatalf("Noise(%v,%v) not deterministic", x, y)
			}
		}
	}
	if Noise(3.2, 4.9) != Noise(3.7, 4.1) {
		t.Fatalf("Noise differs within one lattice cell")
	}
}

func TestFBMOctaves(t *testing.T) {
	if got := FBM(1.5, 2.5, 0); got != 0 {
		t.Fatalf("FBM(octaves=0) = %v, want 0", got)
	}
	if got, want := FBM(1.5, 2.5, 1), Noise(1.5, 2.5); got != want {
		t.Fatalf("FBM(octaves=1) = %v, want %v", got, want)
	}
	if got := FBM(1.5, 2.5, 4); got < 0 || got >= 2 {
		t.Fatalf("FBM(octaves=4) = %v, want in [0,2)", got)
	}
}

func TestShade(t *testing.T) {
	f := Fragment{X: 0, Y: 0, Color: RGB(255, 165, 0)}
	if a, b := Shade(SurfaceGasGiant, f, 0), Shade(SurfaceGasGiant, f, 0); a != b {
		t.Fatalf("gas giant shade not deterministic: %v vs %v", a, b)
	}
	if got := Shade(SurfacePlainLit, f, 3); got != f.Color {
		t.Fatalf("plain shade = %v, want %v", got, f.Color)
	}

	white := Fragment{X: 123, Y: 45, Color: RGB(255, 255, 255)}
	for ts := float32(0); ts < 10; ts += 0.37 {
		got := Shade(SurfaceEmissive, white, ts)
		if got.R < 229 || got.G < 229 || got.B < 229 {
			t.Fatalf("emissive shade = %v, want >= 0.9 intensity", got)
		}
	}
}

func TestShadeRocky(t *testing.T) {
	base := RGB(200, 120, 80)
	white := RGB(255, 255, 255)
	craters, saturated := 0, 0
	for y := float32(0); y < 400; y++ {
		for x := float32(0); x < 400; x++ {
			got := Shade(SurfaceRocky, Fragment{X: x, Y: y, Color: base}, 0)
			w := ShadeRocky(Fragment{X: x, Y: y, Color: white})

			if Noise(x*0.03, y*0.03) > 0.85 {
				craters++
				// Noise factor < 1.35, halved inside a crater.
				if float32(got.R) > 0.5*1.35*200+1 || float32(got.G) > 0.5*1.35*120+1 {
					t.Fatalf("crater at (%v,%v) = %v, want at most half of 1.35·base", x, y, got)
				}
				continue
			}
			if float32(got.R) < 0.6*200-1 || float32(got.B) < 0.6*80-1 {
				t.Fatalf("rock at (%v,%v) = %v, want at least 0.6·base", x, y, got)
			}
			// Factors above 1 must clamp, not wrap.
			if w.R < 152 {
				t.Fatalf("white rock at (%v,%v) = %v, want >= 0.6·255", x, y, w)
			}
			if w.R == 0xFF {
				saturated++
			}
		}
	}
	if craters == 0 {
		t.Fatalf("no crater pixels in the scanned grid")
	}
	if saturated == 0 {
		t.Fatalf("no white rock pixel saturated at 255")
	}
}

func TestParseSurface(t *testing.T) {
	for _, s := range []Surface{SurfacePlainLit, SurfaceEmissive, SurfaceGasGiant, SurfaceRocky} {
		got, err := ParseSurface(s.String())
		if err != nil || got != s {
			t.Fatalf("ParseSurface(%q) = %v, %v; want %v", s.String(), got, err, s)
		}
	}
	if _, err := ParseSurface("lava"); err == nil {
		t.Fatalf("ParseSurface(lava) err = nil, want error")
	}
}

func TestRendererDraw(t *testing.T) {
	target := newMemTarget(16, 12)
	r := NewRenderer()
	dc := DrawCall{
		Uniforms: Uniforms{
			Model:      mgl32.Ident4(),
			View:       mgl32.Ident4(),
			Projection: mgl32.Ident4(),
			Viewport:   ViewportMatrix(16, 12),
		},
		Vertices: []Vertex{
			{Position: mgl32.Vec3{-3, -3, 0.5}},
			{Position: mgl32.Vec3{3, -3, 0.5}},
			{Position: mgl32.Vec3{-3, 3, 0.5}},
			{Position: mgl32.Vec3{0, 0, 0}}, // partial triple
		},
		Color:   RGB(255, 0, 0),
		Surface: SurfaceEmissive,
	}
	r.Draw(target, dc)

	if r.Stats.Triangles != 1 {
		t.Fatalf("Stats.Triangles = %d, want 1", r.Stats.Triangles)
	}
	if r.Stats.Points == 0 {
		t.Fatalf("Stats.Points = 0, want > 0")
	}
	if got := target.pix[0]; got.R < 200 || got.G != 0 {
		t.Fatalf("pixel(0,0) = %v, want red", got)
	}

	// A nearer draw replaces, a farther one does not.
	dc.Color = RGB(0, 0, 255)
	dc.Surface = SurfacePlainLit
	dc.Vertices = dc.Vertices[:3]
	for i := range dc.Vertices {
		dc.Vertices[i].Position[2] = 0.9
	}
	r.Draw(target, dc)
	if got := target.pix[0]; got.B != 0 {
		t.Fatalf("farther draw overwrote pixel: %v", got)
	}
}
