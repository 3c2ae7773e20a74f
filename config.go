package autocanvas

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DefaultTickRate       = 60
	DefaultClickThreshold = 5.0

	// MaxTickRate is the highest rate with a non-zero frame interval.
	MaxTickRate = int(time.Second)
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// ZoomConfig holds the camera zoom parameters.
type ZoomConfig struct {
	Strength float64 `toml:"strength"`
	Min      float64 `toml:"min"`
	Max      float64 `toml:"max"`
}

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string `toml:"title"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	ShowFPS bool   `toml:"show_fps"`
}

// Config is the surface configuration. The zero value is not valid; start
// from DefaultConfig.
type Config struct {
	TickRate       int        `toml:"tick_rate"`
	ClickThreshold float64    `toml:"click_threshold"`
	Debug          bool       `toml:"debug"`
	LogLevel       string     `toml:"log_level"`
	Background     string     `toml:"background"`
	Zoom           ZoomConfig `toml:"zoom"`
	Window         RunConfig  `toml:"window"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		TickRate:       DefaultTickRate,
		ClickThreshold: DefaultClickThreshold,
		LogLevel:       "info",
		Background:     DefaultBackground.Hex(),
		Zoom: ZoomConfig{
			Strength: DefaultZoomStrength,
			Min:      DefaultScaleMin,
			Max:      DefaultScaleMax,
		},
		Window: RunConfig{
			Title:  "autocanvas",
			Width:  800,
			Height: 600,
		},
	}
}

// ParseConfig decodes TOML over DefaultConfig and validates the result.
// Keys absent from data keep their defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("parse config: unknown key %q: %w", undecoded[0].String(), ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the TOML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first malformed field.
func (c Config) Validate() error {
	switch {
	case c.TickRate <= 0 || c.TickRate > MaxTickRate:
		return fmt.Errorf("tick_rate must be in (0, %d], got %d: %w", MaxTickRate, c.TickRate, ErrInvalidConfig)
	case math.IsNaN(c.ClickThreshold) || c.ClickThreshold < 0:
		return fmt.Errorf("click_threshold must be >= 0, got %v: %w", c.ClickThreshold, ErrInvalidConfig)
	case !(c.Zoom.Strength > 1) || math.IsInf(c.Zoom.Strength, 0):
		return fmt.Errorf("zoom.strength must be > 1, got %v: %w", c.Zoom.Strength, ErrInvalidConfig)
	case !(c.Zoom.Min > 0) || !(c.Zoom.Max >= c.Zoom.Min) || math.IsInf(c.Zoom.Max, 0):
		return fmt.Errorf("zoom bounds must satisfy 0 < min <= max, got [%v, %v]: %w", c.Zoom.Min, c.Zoom.Max, ErrInvalidConfig)
	case c.Window.Width < 0 || c.Window.Height < 0:
		return fmt.Errorf("window size must be >= 0, got %dx%d: %w", c.Window.Width, c.Window.Height, ErrInvalidConfig)
	}
	if _, err := ResolveLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w: %w", err, ErrInvalidConfig)
	}
	if c.Background != "" {
		if _, err := ParseHexColor(c.Background); err != nil {
			return fmt.Errorf("background: %w: %w", err, ErrInvalidConfig)
		}
	}
	return nil
}

// background returns the parsed clear color, falling back to the default.
func (c Config) background() Color {
	if c.Background == "" {
		return DefaultBackground
	}
	col, err := ParseHexColor(c.Background)
	if err != nil {
		return DefaultBackground
	}
	return col
}
