package hal

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	// Ticks stops the run after N frames (0 = run until cancelled or ErrQuit).
	Ticks uint64
	// Unpaced runs frames back to back instead of on a ticker.
	Unpaced bool
}

// RunHeadless runs the app without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, host HostConfig, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h := newHost(host)
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	var tickC <-chan time.Time
	if !cfg.Unpaced {
		t := time.NewTicker(d)
		defer t.Stop()
		tickC = t.C
	}

	var tick uint64
	for {
		if cfg.Unpaced {
			if err := ctx.Err(); err != nil {
				return err
			}
		} else {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tickC:
			}
		}

		if step != nil {
			if err := step(); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}
		}
		if s, ok := h.kbd.(stepper); ok {
			s.Step()
		}
		tick++
		if cfg.Ticks > 0 && tick >= cfg.Ticks {
			return nil
		}
	}
}
