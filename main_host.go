package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"orrery/app"
	"orrery/config"
	"orrery/hal"
	"orrery/internal/buildinfo"
)

func main() {
	var (
		hcfg       hal.HeadlessConfig
		configPath string
		logLevel   string
		keys       string
		width      int
		height     int
	)
	flag.StringVar(&configPath, "config", "", "YAML scene config (default: built-in solar system).")
	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&keys, "keys", "", `Scripted key presses for headless mode, e.g. "30:1,100-160:left".`)
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error.")
	flag.IntVar(&width, "width", 0, "Framebuffer width override.")
	flag.IntVar(&height, "height", 0, "Framebuffer height override.")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		fatalf("log level: %v", err)
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			fatalf("%v", err)
		}
	}
	if width > 0 {
		cfg.Window.Width = width
	}
	if height > 0 {
		cfg.Window.Height = height
	}

	meshes, err := app.LoadMeshes(cfg)
	if err != nil {
		fatalf("%v", err)
	}
	log.Info("orrery starting", "version", buildinfo.Short(), "config", configPath,
		"size", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height))

	host := hal.HostConfig{Width: cfg.Window.Width, Height: cfg.Window.Height, Logger: log}
	newApp := func(h hal.HAL) func() error { return app.New(h, cfg, meshes) }

	if hcfg.Enabled {
		kb := hal.NewScriptedKeyboard()
		if err := kb.ParseKeyScript(keys); err != nil {
			fatalf("%v", err)
		}
		host.Keyboard = kb

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, host, hcfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fatalf("%v", err)
		}
		return
	}

	if err := hal.RunWindow(newApp, host, hal.WindowConfig{
		Title: cfg.Window.Title,
		Scale: cfg.Window.Scale,
	}); err != nil {
		fatalf("%v", err)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "orrery: "+format+"\n", args...)
	os.Exit(1)
}
