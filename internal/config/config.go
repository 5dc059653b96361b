package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/cubesphere/internal/sketch"
)

const (
	DefaultWidth    = 1280
	DefaultHeight   = 720
	DefaultFPS      = 60
	DefaultTitle    = "cubesphere"
	DefaultLogLevel = "info"
)

// ErrInvalidConfig indicates a config value outside its valid range.
var ErrInvalidConfig = errors.New("config: invalid value")

type Config struct {
	Window     WindowConfig `yaml:"window"`
	FPS        int          `yaml:"fps"`
	Seed       int64        `yaml:"seed"`
	Scheme     string       `yaml:"scheme"`
	CubeSize   float64      `yaml:"cube_size"`
	Radius     float64      `yaml:"radius"`
	PhaseStep  float64      `yaml:"phase_step"`
	Tilt       float64      `yaml:"tilt"`
	Background HSBConfig    `yaml:"background"`
	Ambient    float64      `yaml:"ambient"`
	PointLight LightConfig  `yaml:"point_light"`
	LogLevel   string       `yaml:"log_level"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type HSBConfig struct {
	H float64 `yaml:"h"`
	S float64 `yaml:"s"`
	B float64 `yaml:"b"`
}

type LightConfig struct {
	Color HSBConfig `yaml:"color"`
	X     float64   `yaml:"x"`
	Y     float64   `yaml:"y"`
	Z     float64   `yaml:"z"`
}

func DefaultConfig() *Config {
	p := sketch.DefaultParams()
	light := p.Lighting.Point
	return &Config{
		Window:     WindowConfig{Width: DefaultWidth, Height: DefaultHeight, Title: DefaultTitle},
		FPS:        DefaultFPS,
		Scheme:     p.Scheme.String(),
		CubeSize:   p.CubeSize,
		Radius:     p.Radius,
		PhaseStep:  p.PhaseStep,
		Tilt:       p.Tilt,
		Background: hsbConfig(p.Background),
		Ambient:    p.Lighting.Ambient,
		PointLight: LightConfig{
			Color: hsbConfig(light.Color),
			X:     light.Position.X(),
			Y:     light.Position.Y(),
			Z:     light.Position.Z(),
		},
		LogLevel: DefaultLogLevel,
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto overlays the YAML file at path onto cfg. Keys missing from the
// file keep their current values.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.FPS <= 0 || c.FPS > 240 {
		return fmt.Errorf("%w: fps %d", ErrInvalidConfig, c.FPS)
	}
	p, err := c.Params()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Params converts the config into sketch parameters.
func (c *Config) Params() (sketch.Params, error) {
	scheme, err := sketch.ParseScheme(c.Scheme)
	if err != nil {
		return sketch.Params{}, err
	}
	return sketch.Params{
		CubeSize:   c.CubeSize,
		Scheme:     scheme,
		Radius:     c.Radius,
		PhaseStep:  c.PhaseStep,
		Tilt:       c.Tilt,
		Background: c.Background.HSB(),
		Lighting: sketch.Lighting{
			Ambient: c.Ambient,
			Point: sketch.PointLight{
				Color:    c.PointLight.Color.HSB(),
				Position: mgl64.Vec3{c.PointLight.X, c.PointLight.Y, c.PointLight.Z},
			},
		},
	}, nil
}

func (h HSBConfig) HSB() sketch.HSB { return sketch.HSB{H: h.H, S: h.S, B: h.B} }

func hsbConfig(c sketch.HSB) HSBConfig { return HSBConfig{H: c.H, S: c.S, B: c.B} }
