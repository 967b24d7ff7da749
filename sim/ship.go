package sim

import (
	"math"

	"orrery/config"
	"orrery/quarkgl"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// Ship is an object pinned to the camera.
//
// Offset is in the camera basis: x right, y up, z toward the viewer (negative z is in
// front). World placement is derived from the camera on every call and never stored.
type Ship struct {
	Color    quarkgl.Color
	Offset   mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    float32
}

func NewShip(cfg config.ShipConfig) (*Ship, error) {
	col, err := config.ParseColor(cfg.Color)
	if err != nil {
		return nil, errors.Wrap(err, "ship")
	}
	return &Ship{
		Color:    col,
		Offset:   mgl32.Vec3(cfg.Offset),
		Rotation: mgl32.Vec3(cfg.Rotation),
		Scale:    cfg.Scale,
	}, nil
}

// basis returns the camera's forward, right and true up. ok is false when eye and
// center coincide or forward is parallel to up.
func basis(cam *Camera) (forward, right, up mgl32.Vec3, ok bool) {
	forward = cam.Center().Sub(cam.Eye())
	if forward.Len() < 1e-6 {
		return forward, right, up, false
	}
	forward = forward.Normalize()
	right = forward.Cross(cam.Up())
	if right.Len() < 1e-6 {
		return forward, right, up, false
	}
	right = right.Normalize()
	up = right.Cross(forward).Normalize()
	return forward, right, up, true
}

// WorldPosition is eye + right·x + up·y − forward·z.
func (s *Ship) WorldPosition(cam *Camera) (mgl32.Vec3, bool) {
	forward, right, up, ok := basis(cam)
	if !ok {
		return mgl32.Vec3{}, false
	}
	p := cam.Eye().
		Add(right.Mul(s.Offset.X())).
		Add(up.Mul(s.Offset.Y())).
		Add(forward.Mul(-s.Offset.Z()))
	return p, true
}

// WorldRotation aims the ship along the camera's forward vector, plus its local rotation.
func (s *Ship) WorldRotation(cam *Camera) (mgl32.Vec3, bool) {
	forward, _, _, ok := basis(cam)
	if !ok {
		return mgl32.Vec3{}, false
	}
	pitch := float32(math.Asin(float64(clamp(-forward.Y(), -1, 1))))
	yaw := atan2(forward.Z(), forward.X())
	return mgl32.Vec3{
		pitch + s.Rotation.X(),
		yaw + s.Rotation.Y() + math.Pi/2,
		s.Rotation.Z(),
	}, true
}

// ModelMatrix places the ship for the current camera.
func (s *Ship) ModelMatrix(cam *Camera) (mgl32.Mat4, bool) {
	pos, ok := s.WorldPosition(cam)
	if !ok {
		return mgl32.Ident4(), false
	}
	rot, _ := s.WorldRotation(cam)
	return quarkgl.ModelMatrix(pos, s.Scale, rot), true
}

func (s *Ship) AdjustOffset(dx, dy, dz float32) {
	s.Offset = s.Offset.Add(mgl32.Vec3{dx, dy, dz})
}
