// Package config holds the scene and window configuration.
//
// Default reproduces the built-in solar system. Load overlays a YAML file on top of it,
// so a file only needs the keys it changes.
package config

import (
	"fmt"
	"math"
	"os"

	"orrery/quarkgl"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the full program configuration.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Meshes   MeshConfig     `yaml:"meshes"`
	Camera   CameraConfig   `yaml:"camera"`
	Star     BodyConfig     `yaml:"star"`
	Planets  []BodyConfig   `yaml:"planets"`
	Ship     ShipConfig     `yaml:"ship"`
	Controls ControlsConfig `yaml:"controls"`
}

type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Scale      int    `yaml:"scale"`
	Background string `yaml:"background"`
	HUD        bool   `yaml:"hud"`
}

// MeshConfig names the mesh sources: a .obj/.gltf/.glb path or "builtin:sphere" / "builtin:ship".
type MeshConfig struct {
	Body string `yaml:"body"`
	Ship string `yaml:"ship"`
}

type CameraConfig struct {
	Eye    [3]float32 `yaml:"eye"`
	Center [3]float32 `yaml:"center"`
	Up     [3]float32 `yaml:"up"`
}

// BodyConfig describes a star or planet. Angles are radians, speeds are per tick.
type BodyConfig struct {
	Name          string     `yaml:"name"`
	Surface       string     `yaml:"surface"`
	Color         string     `yaml:"color"`
	Center        [2]float32 `yaml:"center"`
	Z             float32    `yaml:"z"`
	OrbitRadius   float32    `yaml:"orbit_radius"`
	Scale         float32    `yaml:"scale"`
	OrbitSpeed    float32    `yaml:"orbit_speed"`
	RotationSpeed float32    `yaml:"rotation_speed"`
	InitialAngle  float32    `yaml:"initial_angle"`
}

type ShipConfig struct {
	Enabled  bool       `yaml:"enabled"`
	Color    string     `yaml:"color"`
	Offset   [3]float32 `yaml:"offset"`
	Rotation [3]float32 `yaml:"rotation"`
	Scale    float32    `yaml:"scale"`
}

// ControlsConfig sets how far one frame of held input moves the camera.
type ControlsConfig struct {
	OrbitStep  float32 `yaml:"orbit_step"`
	RotateStep float32 `yaml:"rotate_step"`
	ZoomStep   float32 `yaml:"zoom_step"`
	HeightStep float32 `yaml:"height_step"`
	ShipStep   float32 `yaml:"ship_step"`
	WarpSpeed  float32 `yaml:"warp_speed"`
	// WarpDistance is the warp stand-off as a multiple of the target's scale.
	WarpDistance float32 `yaml:"warp_distance"`
}

// Default returns the built-in scene: a star with rocky, gas giant and plain planets.
func Default() Config {
	center := [2]float32{400, 300}
	return Config{
		Window: WindowConfig{
			Title:      "Orrery",
			Width:      800,
			Height:     600,
			Scale:      1,
			Background: "#000011",
			HUD:        true,
		},
		Meshes: MeshConfig{
			Body: "builtin:sphere",
			Ship: "builtin:ship",
		},
		Camera: CameraConfig{
			Eye:    [3]float32{400, -300, 250},
			Center: [3]float32{400, 300, -200},
			Up:     [3]float32{0, 0, 1},
		},
		Star: BodyConfig{
			Name:    "Sun",
			Surface: "emissive",
			Color:   "#FFDD00",
			Center:  center,
			Z:       -200,
			Scale:   90,
		},
		Planets: []BodyConfig{
			{Name: "Rocky", Surface: "rocky", Color: "#CD5C5C", Center: center, Z: -200,
				OrbitRadius: 200, Scale: 30, OrbitSpeed: 0.02, RotationSpeed: 0.05},
			{Name: "Gas", Surface: "gas", Color: "#FFA500", Center: center, Z: -240,
				OrbitRadius: 320, Scale: 60, OrbitSpeed: 0.01, RotationSpeed: 0.03, InitialAngle: math.Pi / 3},
			{Name: "Blue", Surface: "plain", Color: "#4169E1", Center: center, Z: -280,
				OrbitRadius: 460, Scale: 45, OrbitSpeed: 0.005, RotationSpeed: 0.04, InitialAngle: 2 * math.Pi / 3},
		},
		Ship: ShipConfig{
			Enabled: true,
			Color:   "#C0C8D8",
			Offset:  [3]float32{40, -30, -100},
			Scale:   10,
		},
		Controls: ControlsConfig{
			OrbitStep:    0.02,
			RotateStep:   0.02,
			ZoomStep:     5,
			HeightStep:   5,
			ShipStep:     1,
			WarpSpeed:    0.08,
			WarpDistance: 4,
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate checks sizes, surfaces and colors.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if _, err := ParseColor(c.Window.Background); err != nil {
		return errors.Wrap(err, "window.background")
	}
	if err := c.Star.validate(); err != nil {
		return errors.Wrap(err, "star")
	}
	for i, p := range c.Planets {
		if err := p.validate(); err != nil {
			return errors.Wrapf(err, "planets[%d]", i)
		}
	}
	if c.Ship.Enabled {
		if _, err := ParseColor(c.Ship.Color); err != nil {
			return errors.Wrap(err, "ship.color")
		}
		if c.Ship.Scale <= 0 {
			return fmt.Errorf("ship.scale %v must be positive", c.Ship.Scale)
		}
	}
	if c.Controls.WarpSpeed <= 0 || c.Controls.WarpSpeed > 1 {
		return fmt.Errorf("controls.warp_speed %v must be in (0,1]", c.Controls.WarpSpeed)
	}
	return nil
}

func (b BodyConfig) validate() error {
	if _, err := quarkgl.ParseSurface(b.Surface); err != nil {
		return err
	}
	if _, err := ParseColor(b.Color); err != nil {
		return err
	}
	if b.Scale <= 0 {
		return fmt.Errorf("scale %v must be positive", b.Scale)
	}
	if b.OrbitRadius < 0 {
		return fmt.Errorf("orbit_radius %v must not be negative", b.OrbitRadius)
	}
	return nil
}

// ParseColor parses "#RRGGBB" (or "#RGB") into an opaque color.
func ParseColor(s string) (quarkgl.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return quarkgl.Color{}, errors.Wrapf(err, "color %q", s)
	}
	r, g, b := c.RGB255()
	return quarkgl.RGB(r, g, b), nil
}
