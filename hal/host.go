package hal

import "log/slog"

// HostConfig sizes the host framebuffer and selects collaborators.
type HostConfig struct {
	Width  int
	Height int
	// Logger defaults to slog.Default().
	Logger *slog.Logger
	// Keyboard defaults to the window keyboard (RunWindow) or an empty
	// ScriptedKeyboard (RunHeadless).
	Keyboard Keyboard
}

type hostHAL struct {
	logger *slog.Logger
	fb     *hostFramebuffer
	kbd    Keyboard
}

// New returns a host HAL implementation.
func New(cfg HostConfig) HAL {
	return newHost(cfg)
}

func newHost(cfg HostConfig) *hostHAL {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	kbd := cfg.Keyboard
	if kbd == nil {
		kbd = NewScriptedKeyboard()
	}
	return &hostHAL{
		logger: logger,
		fb:     newHostFramebuffer(cfg.Width, cfg.Height),
		kbd:    kbd,
	}
}

func (h *hostHAL) Logger() *slog.Logger { return h.logger }
func (h *hostHAL) Display() Display     { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input         { return hostInput{kbd: h.kbd} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd Keyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

// stepper is implemented by keyboards that advance with the frame loop.
type stepper interface {
	Step()
}
