package spincube

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// HexColor is a 24-bit 0xRRGGBB color. In YAML it may be written as
// 0x00ff00, "#00ff00" or a plain integer.
type HexColor uint32

func (c *HexColor) UnmarshalYAML(value *yaml.Node) error {
	s := strings.TrimSpace(value.Value)
	base := 0
	if strings.HasPrefix(s, "#") {
		s, base = s[1:], 16
	}
	v, err := strconv.ParseUint(s, base, 32)
	if err != nil || v > 0xffffff {
		return fmt.Errorf("%w: bad color %q at line %d", ErrInvalidConfig, value.Value, value.Line)
	}
	*c = HexColor(v)
	return nil
}

func (c HexColor) MarshalYAML() (any, error) {
	return fmt.Sprintf("0x%06x", uint32(c)), nil
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type CameraConfig struct {
	Fov      float32    `yaml:"fov"`
	Near     float32    `yaml:"near"`
	Far      float32    `yaml:"far"`
	Position [3]float32 `yaml:"position"`
}

type CubeConfig struct {
	Size     [3]float32 `yaml:"size"`
	Color    HexColor   `yaml:"color"`
	SpinRate [3]float32 `yaml:"spin_rate"`
}

type LightConfig struct {
	Color     HexColor   `yaml:"color"`
	Intensity float32    `yaml:"intensity"`
	Position  [3]float32 `yaml:"position"`
}

// Config holds every literal the scene is built from. Frames is the frame
// budget; 0 runs until the host ends the loop.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Camera CameraConfig `yaml:"camera"`
	Cube   CubeConfig   `yaml:"cube"`
	Light  LightConfig  `yaml:"light"`
	Frames uint64       `yaml:"frames"`
}

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  defaultWindowWidth,
			Height: defaultWindowHeight,
			Title:  defaultWindowTitle,
		},
		Camera: CameraConfig{
			Fov:      75,
			Near:     0.1,
			Far:      1000,
			Position: [3]float32{0, 0, 5},
		},
		Cube: CubeConfig{
			Size:     [3]float32{1, 1, 1},
			Color:    0x00ff00,
			SpinRate: [3]float32{0.05, 0.05, 0.05},
		},
		Light: LightConfig{
			Color:     0xffffff,
			Intensity: 1,
			Position:  [3]float32{0, 4, 4},
		},
	}
}

// LoadConfig overlays the YAML file at path on DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return invalid("window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Camera.Fov <= 0 || c.Camera.Fov >= 180 {
		return invalid("camera fov %v outside (0, 180)", c.Camera.Fov)
	}
	if c.Camera.Near <= 0 || c.Camera.Near >= c.Camera.Far {
		return invalid("camera clip range [%v, %v]", c.Camera.Near, c.Camera.Far)
	}
	for _, s := range c.Cube.Size {
		if s <= 0 {
			return invalid("cube size %v", c.Cube.Size)
		}
	}
	if c.Light.Intensity < 0 {
		return invalid("light intensity %v", c.Light.Intensity)
	}
	return nil
}
