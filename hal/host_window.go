//go:build cgo

package hal

import (
	"errors"

	"orrery/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title string
	// Scale multiplies the framebuffer size for the initial window size.
	Scale int
	// TPS is the frame rate; 60 gives the ~16ms frame pacing.
	TPS int
}

// RunWindow starts a desktop window that displays the framebuffer and forwards keyboard input.
// It blocks until the window closes or the app step returns ErrQuit.
func RunWindow(newApp func(HAL) func() error, cfg HostConfig, wcfg WindowConfig) error {
	if cfg.Keyboard == nil {
		cfg.Keyboard = newHostKeyboard()
	}
	h := newHost(cfg)
	step := newApp(h)

	if wcfg.Scale <= 0 {
		wcfg.Scale = 1
	}
	if wcfg.TPS <= 0 {
		wcfg.TPS = 60
	}
	title := wcfg.Title
	if title == "" {
		title = "Orrery"
	}

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle(title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*wcfg.Scale, h.fb.height*wcfg.Scale)
	ebiten.SetTPS(wcfg.TPS)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *hostHAL
	fbImg *ebiten.Image
	step  func() error
}

func (g *hostGame) Update() error {
	if g.step == nil {
		return nil
	}
	if err := g.step(); err != nil {
		if errors.Is(err, ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != fb.width || g.fbImg.Bounds().Dy() != fb.height {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}
	g.fbImg.WritePixels(fb.pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
