// Command orrery-snap renders the orrery without a window and writes frames as images.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"orrery/app"
	"orrery/config"
	"orrery/hal"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/image/bmp"
)

// frameStep is the simulated time between frames, in seconds.
const frameStep = 0.016

func main() {
	var (
		configPath = flag.String("config", "", "YAML scene config (default: built-in solar system).")
		frames     = flag.Int("frames", 120, "Number of frames to simulate.")
		every      = flag.Int("every", 30, "Write every Nth frame.")
		format     = flag.String("format", "png", "png|bmp.")
		outDir     = flag.String("out", ".", "Output directory.")
		keys       = flag.String("keys", "", `Scripted key presses, e.g. "10:m,20-80:left".`)
	)
	flag.Parse()

	if *frames <= 0 || *every <= 0 {
		fatalf("usage: orrery-snap -frames N -every K [-format png|bmp] [-out dir] [-config scene.yaml]")
	}
	enc, err := encoder(*format)
	if err != nil {
		fatalf("%v", err)
	}

	cfg := config.Default()
	if *configPath != "" {
		if cfg, err = config.Load(*configPath); err != nil {
			fatalf("%v", err)
		}
	}
	meshes, err := app.LoadMeshes(cfg)
	if err != nil {
		fatalf("%v", err)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fatalf("%v", err)
	}

	kb := hal.NewScriptedKeyboard()
	if err := kb.ParseKeyScript(*keys); err != nil {
		fatalf("%v", err)
	}
	host := hal.HostConfig{
		Width:    cfg.Window.Width,
		Height:   cfg.Window.Height,
		Logger:   slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
		Keyboard: kb,
	}

	bar := progressbar.Default(int64(*frames), "rendering")
	frame := 0
	written := 0
	newApp := func(h hal.HAL) func() error {
		step := app.New(h, cfg, meshes, app.WithClock(func() float32 {
			return float32(frame) * frameStep
		}))
		fb := h.Display().Framebuffer()
		return func() error {
			if err := step(); err != nil {
				return err
			}
			frame++
			_ = bar.Add(1)
			if frame%*every != 0 {
				return nil
			}
			path := filepath.Join(*outDir, fmt.Sprintf("frame-%05d.%s", frame, *format))
			if err := writeFrame(path, fb, enc); err != nil {
				return err
			}
			written++
			return nil
		}
	}

	err = hal.RunHeadless(context.Background(), newApp, host, hal.HeadlessConfig{
		Ticks:   uint64(*frames),
		Unpaced: true,
	})
	_ = bar.Close()
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Fprintf(os.Stderr, "wrote %d frames to %s\n", written, *outDir)
}

type encodeFunc func(f *os.File, img image.Image) error

func encoder(format string) (encodeFunc, error) {
	switch strings.ToLower(format) {
	case "png":
		return func(f *os.File, img image.Image) error { return png.Encode(f, img) }, nil
	case "bmp":
		return func(f *os.File, img image.Image) error { return bmp.Encode(f, img) }, nil
	}
	return nil, errors.Errorf("unknown format %q", format)
}

// snapshot copies the framebuffer into an image.
func snapshot(fb hal.Framebuffer) *image.RGBA {
	w, h := fb.Size()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, fb.RGBA())
	return img
}

func writeFrame(path string, fb hal.Framebuffer, enc encodeFunc) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create frame")
	}
	if err := enc(f, snapshot(fb)); err != nil {
		f.Close()
		return errors.Wrapf(err, "encode %s", path)
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "orrery-snap: "+format+"\n", args...)
	os.Exit(2)
}
