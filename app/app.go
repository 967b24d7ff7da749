// Package app wires the simulation, the renderer and the HAL into a per-frame step.
package app

import (
	"time"

	"orrery/config"
	"orrery/hal"
	"orrery/quarkgl"
	"orrery/sim"
)

type Option func(*options)

type options struct {
	clock func() float32
}

// WithClock replaces the wall clock that feeds animated surfaces.
// It must return seconds since the run started.
func WithClock(clock func() float32) Option {
	return func(o *options) { o.clock = clock }
}

type system struct {
	h        hal.HAL
	fb       hal.Framebuffer
	kbd      hal.Keyboard
	state    *sim.State
	renderer *quarkgl.Renderer
	meshes   sim.Meshes
	clock    func() float32
	hud      bool
	aborted  int
}

// New builds the scene and returns the per-frame step for a runner.
// The step returns hal.ErrQuit when the user quits.
func New(h hal.HAL, cfg config.Config, meshes sim.Meshes, opts ...Option) func() error {
	s, err := newSystem(h, cfg, meshes, opts...)
	if err != nil {
		h.Logger().Error("scene setup failed", "err", err)
		return func() error { return err }
	}
	return s.step
}

func newSystem(h hal.HAL, cfg config.Config, meshes sim.Meshes, opts ...Option) (*system, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.clock == nil {
		start := time.Now()
		o.clock = func() float32 { return float32(time.Since(start).Seconds()) }
	}

	state, err := sim.NewState(cfg, h.Logger())
	if err != nil {
		return nil, err
	}

	s := &system{
		h:        h,
		state:    state,
		renderer: quarkgl.NewRenderer(),
		meshes:   meshes,
		clock:    o.clock,
		hud:      cfg.Window.HUD,
	}
	if disp := h.Display(); disp != nil {
		s.fb = disp.Framebuffer()
	}
	if in := h.Input(); in != nil {
		s.kbd = in.Keyboard()
	}
	if s.fb != nil {
		bg, err := config.ParseColor(cfg.Window.Background)
		if err != nil {
			return nil, err
		}
		s.fb.SetBackground(bg.ToRGBA())
	}

	h.Logger().Info("scene ready",
		"planets", len(state.Planets),
		"ship", state.Ship != nil,
		"body_triangles", len(meshes.Body)/3,
		"ship_triangles", len(meshes.Ship)/3,
	)
	return s, nil
}

func (s *system) step() (err error) {
	defer s.recoverFrame(&err)

	if s.state.Update(s.kbd) {
		s.h.Logger().Info("quit", "tick", s.state.Tick)
		return hal.ErrQuit
	}
	if s.fb == nil {
		return nil
	}

	s.fb.Clear()
	s.renderer.ResetStats()
	if err := s.state.Render(s.fb, s.renderer, s.meshes, s.clock()); err != nil {
		s.aborted++
		s.h.Logger().Warn("frame aborted", "tick", s.state.Tick, "err", err)
	}
	if s.hud {
		s.drawHUD()
	}
	return s.fb.Present()
}
