package sim

import (
	"orrery/config"
	"orrery/quarkgl"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// Body is a star or planet on a circular orbit in the XY plane.
//
// Translation.Z is fixed at construction; Update only moves X and Y.
// A body with OrbitRadius 0 and zero speeds stays on its center.
type Body struct {
	Name    string
	Surface quarkgl.Surface
	Color   quarkgl.Color

	Translation mgl32.Vec3
	// Rotation is Euler angles in radians; Update drives only Rotation.Y.
	Rotation mgl32.Vec3
	Scale    float32

	OrbitSpeed    float32
	RotationSpeed float32
	OrbitRadius   float32
	OrbitAngle    float32
	CenterX       float32
	CenterY       float32
}

// NewBody places a body at its initial orbit angle.
func NewBody(cfg config.BodyConfig) (*Body, error) {
	surface, err := quarkgl.ParseSurface(cfg.Surface)
	if err != nil {
		return nil, errors.Wrapf(err, "body %q", cfg.Name)
	}
	col, err := config.ParseColor(cfg.Color)
	if err != nil {
		return nil, errors.Wrapf(err, "body %q", cfg.Name)
	}
	b := &Body{
		Name:          cfg.Name,
		Surface:       surface,
		Color:         col,
		Scale:         cfg.Scale,
		OrbitSpeed:    cfg.OrbitSpeed,
		RotationSpeed: cfg.RotationSpeed,
		OrbitRadius:   cfg.OrbitRadius,
		OrbitAngle:    cfg.InitialAngle,
		CenterX:       cfg.Center[0],
		CenterY:       cfg.Center[1],
	}
	b.Translation[2] = cfg.Z
	b.place()
	return b, nil
}

// Update advances the orbit and the spin by one tick.
func (b *Body) Update() {
	b.OrbitAngle += b.OrbitSpeed
	b.place()
	b.Rotation[1] += b.RotationSpeed
}

func (b *Body) place() {
	s, c := sincos(b.OrbitAngle)
	b.Translation[0] = b.CenterX + b.OrbitRadius*c
	b.Translation[1] = b.CenterY + b.OrbitRadius*s
}

func (b *Body) ModelMatrix() mgl32.Mat4 {
	return quarkgl.ModelMatrix(b.Translation, b.Scale, b.Rotation)
}
