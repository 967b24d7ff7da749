package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

const (
	MinRadius = 50
	MaxRadius = 800

	// MaxPitch keeps the free-look eye away from the poles, where the up vector degenerates.
	MaxPitch = math.Pi/2 - 0.1

	// WarpThreshold is the distance under which an animated warp snaps to its target.
	WarpThreshold = 1.0

	FovY = 45 * math.Pi / 180
	Near = 0.1
	Far  = 1000
)

// ErrDegenerateView is returned when the eye sits on the center or looks along the up vector.
var ErrDegenerateView = errors.New("degenerate view")

// Camera is an orbit camera around a look-at center.
//
// Planar mode (Orbit, Zoom, ChangeHeight) moves the eye on a circle in the XY plane at a
// fixed height. Free-look mode (Rotate3D) moves it on a sphere of the same radius.
type Camera struct {
	eye, center, up mgl32.Vec3
	changed         bool

	angle, radius, height float32
	pitch, yaw            float32
}

// NewCamera derives the orbital state from the initial eye and center.
// The planar radius is clamped to [MinRadius, MaxRadius]; the eye itself is left as given.
func NewCamera(eye, center, up mgl32.Vec3) *Camera {
	dx := eye.X() - center.X()
	dy := eye.Y() - center.Y()
	angle := atan2(dy, dx)
	return &Camera{
		eye:     eye,
		center:  center,
		up:      up,
		changed: true,
		angle:   angle,
		radius:  clampRadius(float32(math.Hypot(float64(dx), float64(dy)))),
		height:  eye.Z(),
		yaw:     angle,
	}
}

func (c *Camera) Eye() mgl32.Vec3    { return c.eye }
func (c *Camera) Center() mgl32.Vec3 { return c.center }
func (c *Camera) Up() mgl32.Vec3     { return c.up }
func (c *Camera) Angle() float32     { return c.angle }
func (c *Camera) Radius() float32    { return c.radius }
func (c *Camera) Height() float32    { return c.height }
func (c *Camera) Pitch() float32     { return c.pitch }
func (c *Camera) Yaw() float32       { return c.yaw }

// Changed reports whether any control operation moved the camera since ClearChanged.
func (c *Camera) Changed() bool { return c.changed }
func (c *Camera) ClearChanged() { c.changed = false }

// Orbit turns the eye around the center in the XY plane. Height is kept.
func (c *Camera) Orbit(delta float32) {
	c.angle += delta
	c.placePlanar()
}

// Zoom changes the orbit radius, clamped to [MinRadius, MaxRadius], and puts the eye
// back on the planar circle at that radius even when the clamp absorbs the whole delta.
func (c *Camera) Zoom(delta float32) {
	c.radius = clampRadius(c.radius + delta)
	c.placePlanar()
}

// ChangeHeight moves the eye along z.
func (c *Camera) ChangeHeight(delta float32) {
	c.height += delta
	c.eye[2] = c.height
	c.changed = true
}

// Rotate3D moves the eye on the sphere of the current radius around the center.
// Pitch is clamped to the closed range [-MaxPitch, MaxPitch]; a request past either end
// lands exactly on it.
func (c *Camera) Rotate3D(deltaYaw, deltaPitch float32) {
	c.yaw += deltaYaw
	c.pitch = clamp(c.pitch+deltaPitch, -MaxPitch, MaxPitch)

	sy, cy := sincos(c.yaw)
	sp, cp := sincos(c.pitch)
	c.eye = c.center.Add(mgl32.Vec3{cy * cp, sy * cp, sp}.Mul(c.radius))
	c.changed = true
}

// WarpTo moves the center to target at once and places the eye distance away along the
// current angle, height above the target.
func (c *Camera) WarpTo(target mgl32.Vec3, distance float32) {
	c.center = target
	c.radius = clampRadius(distance)
	c.eye = c.warpEye(target)
	c.changed = true
}

// AnimatedWarpTo moves center and eye a fraction speed of the way to the warp target.
// It reports true, snapping exactly onto the target, once both are within WarpThreshold.
func (c *Camera) AnimatedWarpTo(target mgl32.Vec3, distance, speed float32) bool {
	radius := clampRadius(distance)
	eye := c.warpEyeAt(target, radius)

	dc := target.Sub(c.center)
	de := eye.Sub(c.eye)
	if dc.Len() < WarpThreshold && de.Len() < WarpThreshold {
		if c.center != target || c.eye != eye || c.radius != radius {
			c.center, c.eye, c.radius = target, eye, radius
			c.changed = true
		}
		return true
	}

	speed = clamp(speed, 0, 1)
	c.center = c.center.Add(dc.Mul(speed))
	c.eye = c.eye.Add(de.Mul(speed))
	c.changed = true
	return false
}

// ViewMatrix is the look-at matrix for the current eye, center and up.
func (c *Camera) ViewMatrix() (mgl32.Mat4, error) {
	f := c.center.Sub(c.eye)
	if f.Len() < 1e-6 {
		return mgl32.Ident4(), errors.Wrap(ErrDegenerateView, "eye on center")
	}
	if f.Normalize().Cross(c.up).Len() < 1e-6 {
		return mgl32.Ident4(), errors.Wrap(ErrDegenerateView, "forward parallel to up")
	}
	return mgl32.LookAtV(c.eye, c.center, c.up), nil
}

// ProjectionMatrix is a 45° perspective for a width×height target.
func (c *Camera) ProjectionMatrix(width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(FovY, aspect, Near, Far)
}

func (c *Camera) placePlanar() {
	s, co := sincos(c.angle)
	c.eye[0] = c.center.X() + c.radius*co
	c.eye[1] = c.center.Y() + c.radius*s
	c.changed = true
}

func (c *Camera) warpEye(target mgl32.Vec3) mgl32.Vec3 {
	return c.warpEyeAt(target, c.radius)
}

func (c *Camera) warpEyeAt(target mgl32.Vec3, distance float32) mgl32.Vec3 {
	s, co := sincos(c.angle)
	return mgl32.Vec3{
		target.X() + distance*co,
		target.Y() + distance*s,
		target.Z() + c.height,
	}
}

func clampRadius(r float32) float32 { return clamp(r, MinRadius, MaxRadius) }

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func sincos(a float32) (s, c float32) {
	s64, c64 := math.Sincos(float64(a))
	return float32(s64), float32(c64)
}

func atan2(y, x float32) float32 { return float32(math.Atan2(float64(y), float64(x))) }
