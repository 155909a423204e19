package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the engine's startup settings, loaded from a TOML file.
// Every field has a usable default so a missing file or a partial file
// still yields a valid configuration.
type Config struct {
	// Window configures the platform window.
	Window WindowConfig `toml:"window"`

	// Renderer configures the render pass.
	Renderer RendererConfig `toml:"renderer"`

	// Camera configures the scene camera and its controller.
	Camera CameraConfig `toml:"camera"`

	// Light configures the scene light.
	Light LightConfig `toml:"light"`
}

// WindowConfig configures the platform window.
type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// RendererConfig configures the render pass.
type RendererConfig struct {
	// ClearColor is the RGBA background color.
	ClearColor [4]float64 `toml:"clear_color"`

	// Ambient is the RGBA ambient light term.
	Ambient [4]float64 `toml:"ambient"`

	// Wireframe renders geometry as line lists when true.
	Wireframe bool `toml:"wireframe"`
}

// CameraConfig configures the scene camera and its controller.
type CameraConfig struct {
	// Eye is the initial camera position.
	Eye [3]float64 `toml:"eye"`

	// FovDegrees is the vertical field of view in degrees.
	FovDegrees float64 `toml:"fov_degrees"`

	// Speed is the controller movement step per update.
	Speed float64 `toml:"speed"`
}

// LightConfig configures the scene light.
type LightConfig struct {
	// Position is the light's initial world position.
	Position [3]float64 `toml:"position"`

	// OrbitSpeed is the light's orbit rate around the Y axis in radians
	// per second.
	OrbitSpeed float64 `toml:"orbit_speed"`
}

// Default returns the configuration used when no file is present.
//
// Returns:
//   - Config: the default configuration
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Scene",
			Width:  1280,
			Height: 720,
		},
		Renderer: RendererConfig{
			ClearColor: [4]float64{0.1, 0.2, 0.3, 1.0},
			Ambient:    [4]float64{0.1, 0.1, 0.1, 1.0},
		},
		Camera: CameraConfig{
			Eye:        [3]float64{0, 1, 2},
			FovDegrees: 45,
			Speed:      0.2,
		},
		Light: LightConfig{
			Position:   [3]float64{2, 4, 2},
			OrbitSpeed: 0.5,
		},
	}
}

// Load reads a TOML configuration file, applying defaults for anything the
// file does not set. A missing file is not an error and yields the defaults.
//
// Parameters:
//   - path: the TOML file to read
//
// Returns:
//   - Config: the merged configuration
//   - error: an error if the file exists but cannot be read or parsed
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("invalid config file %q: %w", path, err)
	}
	return cfg, nil
}

// validate rejects values the engine cannot start with.
func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Camera.FovDegrees <= 0 || c.Camera.FovDegrees >= 180 {
		return fmt.Errorf("camera fov must be in (0, 180), got %v", c.Camera.FovDegrees)
	}
	if c.Camera.Speed <= 0 {
		return fmt.Errorf("camera speed must be positive, got %v", c.Camera.Speed)
	}
	return nil
}
