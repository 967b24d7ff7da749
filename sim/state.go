// Package sim holds the orrery's simulation state: the camera, the orbiting bodies and the
// camera-pinned ship, plus the per-frame update and render passes over them.
package sim

import (
	"fmt"
	"io"
	"log/slog"

	"orrery/config"
	"orrery/hal"
	"orrery/quarkgl"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// MinWarpDistance is the closest an automatic warp parks the camera.
const MinWarpDistance = MinRadius

// Meshes are the triangle lists shared by every draw.
type Meshes struct {
	Body []quarkgl.Vertex
	Ship []quarkgl.Vertex
}

// State is the whole simulation. Update and Render are its only entry points.
type State struct {
	Camera  *Camera
	Star    *Body
	Planets []*Body
	// Ship is nil when disabled.
	Ship *Ship

	Mode3D bool
	Tick   int

	controls config.ControlsConfig
	warp     *warp
	log      *slog.Logger

	view      mgl32.Mat4
	viewValid bool
}

type warp struct {
	body     *Body
	target   mgl32.Vec3
	distance float32
}

// Status is a snapshot for overlays.
type Status struct {
	Tick    int
	Mode3D  bool
	Radius  float32
	Angle   float32
	Height  float32
	Pitch   float32
	Yaw     float32
	Warping string
}

// NewState builds the scene from cfg. A nil logger discards output.
func NewState(cfg config.Config, log *slog.Logger) (*State, error) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	star, err := NewBody(cfg.Star)
	if err != nil {
		return nil, errors.Wrap(err, "star")
	}
	s := &State{
		Camera: NewCamera(
			mgl32.Vec3(cfg.Camera.Eye),
			mgl32.Vec3(cfg.Camera.Center),
			mgl32.Vec3(cfg.Camera.Up),
		),
		Star:     star,
		controls: cfg.Controls,
		log:      log,
	}
	for i, pc := range cfg.Planets {
		p, err := NewBody(pc)
		if err != nil {
			return nil, errors.Wrapf(err, "planet %d", i)
		}
		s.Planets = append(s.Planets, p)
	}
	if cfg.Ship.Enabled {
		if s.Ship, err = NewShip(cfg.Ship); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Update runs one tick: bodies advance, then input, then any warp in flight.
// It reports true when the user asked to quit.
func (s *State) Update(kb hal.Keyboard) (quit bool) {
	s.Tick++
	s.Star.Update()
	for _, p := range s.Planets {
		p.Update()
	}

	if kb != nil {
		if kb.Down(hal.KeyEscape) {
			return true
		}
		s.handleInput(kb)
	}
	s.stepWarp()
	return false
}

func (s *State) handleInput(kb hal.Keyboard) {
	c := s.controls
	cam := s.Camera

	if kb.JustPressed(hal.KeyM) {
		s.Mode3D = !s.Mode3D
		s.log.Info("camera mode", "3d", s.Mode3D)
	}

	moved := false
	axis := func(neg, pos hal.Key) float32 {
		var v float32
		if kb.Down(neg) {
			v--
		}
		if kb.Down(pos) {
			v++
		}
		if v != 0 {
			moved = true
		}
		return v
	}

	h := axis(hal.KeyLeft, hal.KeyRight)
	v := axis(hal.KeyDown, hal.KeyUp)
	if s.Mode3D {
		if h != 0 || v != 0 {
			cam.Rotate3D(h*c.RotateStep, v*c.RotateStep)
		}
	} else {
		if h != 0 {
			cam.Orbit(h * c.OrbitStep)
		}
		if v != 0 {
			cam.ChangeHeight(v * c.HeightStep)
		}
	}
	// Camera operations always move the eye, so they run only on real input.
	if z := axis(hal.KeyW, hal.KeyS); z != 0 {
		cam.Zoom(z * c.ZoomStep)
	}
	if dh := axis(hal.KeyQ, hal.KeyE); dh != 0 {
		cam.ChangeHeight(dh * c.HeightStep)
	}

	if moved && s.warp != nil {
		s.log.Debug("warp cancelled", "target", s.warp.body.Name)
		s.warp = nil
	}

	if s.Ship != nil {
		dx := axis(hal.KeyJ, hal.KeyL)
		dy := axis(hal.KeyK, hal.KeyI)
		dz := axis(hal.KeyU, hal.KeyO)
		if dx != 0 || dy != 0 || dz != 0 {
			s.Ship.AdjustOffset(dx*c.ShipStep, dy*c.ShipStep, dz*c.ShipStep)
			s.log.Debug("ship offset", "offset", s.Ship.Offset)
		}
	}

	for n := 0; n <= 9; n++ {
		k, _ := hal.DigitKey(n)
		if !kb.JustPressed(k) {
			continue
		}
		b := s.body(n)
		if b == nil {
			continue
		}
		s.startWarp(b, kb.Down(hal.KeyShift))
	}
}

// body maps 0 to the star and n to the n-th planet.
func (s *State) body(n int) *Body {
	if n == 0 {
		return s.Star
	}
	if n-1 < len(s.Planets) {
		return s.Planets[n-1]
	}
	return nil
}

// WarpDistance is how far from b a warp parks the camera.
func (s *State) WarpDistance(b *Body) float32 {
	d := b.Scale * s.controls.WarpDistance
	if d < MinWarpDistance {
		d = MinWarpDistance
	}
	return d
}

func (s *State) startWarp(b *Body, instant bool) {
	dist := s.WarpDistance(b)
	if instant {
		s.warp = nil
		s.Camera.WarpTo(b.Translation, dist)
		s.log.Info("warp", "target", b.Name, "instant", true)
		return
	}
	// The target is a snapshot; the body keeps moving during the warp.
	s.warp = &warp{body: b, target: b.Translation, distance: dist}
	s.log.Info("warp", "target", b.Name, "distance", dist)
}

func (s *State) stepWarp() {
	if s.warp == nil {
		return
	}
	if s.Camera.AnimatedWarpTo(s.warp.target, s.warp.distance, s.controls.WarpSpeed) {
		s.log.Info("warp complete", "target", s.warp.body.Name, "tick", s.Tick)
		s.warp = nil
	}
}

// Warping reports whether an animated warp is in flight.
func (s *State) Warping() bool { return s.warp != nil }

func (s *State) Status() Status {
	st := Status{
		Tick:   s.Tick,
		Mode3D: s.Mode3D,
		Radius: s.Camera.Radius(),
		Angle:  s.Camera.Angle(),
		Height: s.Camera.Height(),
		Pitch:  s.Camera.Pitch(),
		Yaw:    s.Camera.Yaw(),
	}
	if s.warp != nil {
		st.Warping = s.warp.body.Name
	}
	return st
}

func (st Status) String() string {
	mode := "orbit"
	if st.Mode3D {
		mode = "3d"
	}
	line := fmt.Sprintf("%s r=%.0f a=%.2f h=%.0f", mode, st.Radius, st.Angle, st.Height)
	if st.Mode3D {
		line = fmt.Sprintf("%s r=%.0f yaw=%.2f pitch=%.2f", mode, st.Radius, st.Yaw, st.Pitch)
	}
	if st.Warping != "" {
		line += " warp:" + st.Warping
	}
	return line
}

// Render draws the star, the planets and the ship into t.
// A degenerate camera aborts the frame before anything is drawn.
func (s *State) Render(t quarkgl.Target, r *quarkgl.Renderer, meshes Meshes, time float32) error {
	if s.Camera.Changed() || !s.viewValid {
		view, err := s.Camera.ViewMatrix()
		if err != nil {
			s.viewValid = false
			return err
		}
		s.view, s.viewValid = view, true
		s.Camera.ClearChanged()
	}

	w, h := t.Size()
	u := quarkgl.Uniforms{
		View:       s.view,
		Projection: s.Camera.ProjectionMatrix(w, h),
		Viewport:   quarkgl.ViewportMatrix(w, h),
	}
	r.Light = s.Star.Translation

	draw := func(b *Body) {
		u.Model = b.ModelMatrix()
		r.Draw(t, quarkgl.DrawCall{
			Uniforms: u,
			Vertices: meshes.Body,
			Color:    b.Color,
			Surface:  b.Surface,
			Time:     time,
		})
	}
	draw(s.Star)
	for _, p := range s.Planets {
		draw(p)
	}

	if s.Ship != nil && len(meshes.Ship) > 0 {
		model, ok := s.Ship.ModelMatrix(s.Camera)
		if !ok {
			return errors.Wrap(ErrDegenerateView, "ship placement")
		}
		u.Model = model
		r.Draw(t, quarkgl.DrawCall{
			Uniforms: u,
			Vertices: meshes.Ship,
			Color:    s.Ship.Color,
			Surface:  quarkgl.SurfacePlainLit,
			Time:     time,
		})
	}
	return nil
}
