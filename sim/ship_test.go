package sim

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestShipWorldPosition(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{}, mgl32.Vec3{100, 0, 0}, mgl32.Vec3{0, 0, 1})
	s := &Ship{Offset: mgl32.Vec3{40, -30, -100}, Scale: 10}

	// forward = +x, right = -y, up = +z.
	got, ok := s.WorldPosition(cam)
	if !ok {
		t.Fatalf("WorldPosition() ok = false")
	}
	if want := (mgl32.Vec3{100, -40, -30}); !got.ApproxEqualThreshold(want, 1e-4) {
		t.Fatalf("WorldPosition() = %v, want %v", got, want)
	}

	rot, ok := s.WorldRotation(cam)
	if !ok {
		t.Fatalf("WorldRotation() ok = false")
	}
	if want := (mgl32.Vec3{0, math.Pi / 2, 0}); !rot.ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("WorldRotation() = %v, want %v", rot, want)
	}
}

func TestShipFollowsCamera(t *testing.T) {
	cam := testCamera(300)
	s := &Ship{Offset: mgl32.Vec3{40, -30, -100}, Scale: 10}
	want := s.Offset.Len()

	for i := 0; i < 20; i++ {
		cam.Orbit(0.3)
		cam.ChangeHeight(7)
		p, ok := s.WorldPosition(cam)
		if !ok {
			t.Fatalf("step %d: WorldPosition() ok = false", i)
		}
		if d := p.Sub(cam.Eye()).Len(); !mgl32.FloatEqualThreshold(d, want, 1e-2) {
			t.Fatalf("step %d: distance from eye = %v, want %v", i, d, want)
		}
		ahead := p.Sub(cam.Eye()).Dot(cam.Center().Sub(cam.Eye()).Normalize())
		if !mgl32.FloatEqualThreshold(ahead, 100, 1e-2) {
			t.Fatalf("step %d: distance ahead = %v, want 100", i, ahead)
		}
	}
}

func TestShipDegenerateCamera(t *testing.T) {
	s := &Ship{Scale: 1}
	cam := NewCamera(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, mgl32.Vec3{0, 0, 1})
	if _, ok := s.WorldPosition(cam); ok {
		t.Fatalf("WorldPosition() ok = true with forward parallel to up")
	}
	if _, ok := s.ModelMatrix(cam); ok {
		t.Fatalf("ModelMatrix() ok = true with forward parallel to up")
	}
}

func TestShipAdjustOffset(t *testing.T) {
	s := &Ship{Offset: mgl32.Vec3{1, 2, 3}}
	s.AdjustOffset(1, -1, 0.5)
	if s.Offset != (mgl32.Vec3{2, 1, 3.5}) {
		t.Fatalf("Offset = %v", s.Offset)
	}
}
