package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/gcfg.v1"

	"github.com/iburimskiy/particle-field/internal/particle"
)

const (
	WindowWidth  = 1280
	WindowHeight = 800
	WindowTitle  = "Particle Field - F3: debug, Space: pause, Esc/Q: quit"
	Background   = "#0a0a1a"

	// Field parameters
	ParticleCount = 150
	MouseRadius   = 100
	RelaxDivisor  = 10
	LinkDistance  = 120
	LinkOpacity   = 0.5
	LinkWidth     = 0.5
	LinkTint      = "#8e6fff"

	// Particle look, hsla(hue, 70%, 60%, 0.8)
	Saturation = 0.7
	Lightness  = 0.6
	Alpha      = 0.8

	// Frame timings kept for the debug overlay
	HistorySize = 120

	maxParticles = 5000
)

type WindowConfig struct {
	Width, Height int
	Title         string
	Background    string
}

func (w *WindowConfig) CheckInit() error {
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf(
			"window size must be positive, but is %dx%d", w.Width, w.Height,
		)
	}
	if _, err := colorful.Hex(w.Background); err != nil {
		return fmt.Errorf("window background %q is not a #rrggbb color", w.Background)
	}
	return nil
}

// BackgroundColor is only meaningful after CheckInit succeeded.
func (w *WindowConfig) BackgroundColor() colorful.Color {
	c, _ := colorful.Hex(w.Background)
	return c
}

type FieldConfig struct {
	Count        int
	MouseRadius  float64 `gcfg:"mouse-radius"`
	RelaxDivisor float64 `gcfg:"relax-divisor"`
	LinkDistance float64 `gcfg:"link-distance"`
	LinkOpacity  float64 `gcfg:"link-opacity"`
	LinkWidth    float64 `gcfg:"link-width"`
	LinkTint     string  `gcfg:"link-tint"`
	Saturation   float64
	Lightness    float64
	Alpha        float64
}

func (f *FieldConfig) CheckInit() error {
	if f.Count < 0 || f.Count > maxParticles {
		return fmt.Errorf(
			"field count must be in range [0, %d], but is %d", maxParticles, f.Count,
		)
	} else if f.MouseRadius <= 0 {
		return fmt.Errorf("field mouse-radius must be positive, but is %g", f.MouseRadius)
	} else if f.RelaxDivisor < 1 {
		return fmt.Errorf("field relax-divisor must be at least 1, but is %g", f.RelaxDivisor)
	} else if f.LinkDistance <= 0 {
		return fmt.Errorf("field link-distance must be positive, but is %g", f.LinkDistance)
	} else if f.LinkWidth <= 0 {
		return fmt.Errorf("field link-width must be positive, but is %g", f.LinkWidth)
	}

	for _, v := range []struct {
		name  string
		value float64
	}{
		{"link-opacity", f.LinkOpacity},
		{"saturation", f.Saturation},
		{"lightness", f.Lightness},
		{"alpha", f.Alpha},
	} {
		if v.value < 0 || v.value > 1 {
			return fmt.Errorf("field %s must be in range [0, 1], but is %g", v.name, v.value)
		}
	}

	if _, err := colorful.Hex(f.LinkTint); err != nil {
		return fmt.Errorf("field link-tint %q is not a #rrggbb color", f.LinkTint)
	}
	return nil
}

// Config mirrors the sections of a particle-field gcfg file.
type Config struct {
	Window WindowConfig
	Field  FieldConfig
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      WindowWidth,
			Height:     WindowHeight,
			Title:      WindowTitle,
			Background: Background,
		},
		Field: FieldConfig{
			Count:        ParticleCount,
			MouseRadius:  MouseRadius,
			RelaxDivisor: RelaxDivisor,
			LinkDistance: LinkDistance,
			LinkOpacity:  LinkOpacity,
			LinkWidth:    LinkWidth,
			LinkTint:     LinkTint,
			Saturation:   Saturation,
			Lightness:    Lightness,
			Alpha:        Alpha,
		},
	}
}

// Load reads a gcfg file over the defaults and validates the result. An empty
// path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := gcfg.ReadFileInto(cfg, path); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}
	if err := cfg.CheckInit(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse is Load for config text held in memory.
func Parse(text string) (*Config, error) {
	cfg := Default()
	if err := gcfg.ReadStringInto(cfg, text); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.CheckInit(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) CheckInit() error {
	if err := c.Window.CheckInit(); err != nil {
		return err
	}
	return c.Field.CheckInit()
}

// Params converts the field section into simulation parameters. The config
// must have passed CheckInit.
func (c *Config) Params() particle.Params {
	tint, _ := colorful.Hex(c.Field.LinkTint)
	return particle.Params{
		Count:        c.Field.Count,
		MouseRadius:  c.Field.MouseRadius,
		RelaxDivisor: c.Field.RelaxDivisor,
		LinkDistance: c.Field.LinkDistance,
		LinkOpacity:  c.Field.LinkOpacity,
		LinkWidth:    c.Field.LinkWidth,
		LinkTint:     tint,
		Saturation:   c.Field.Saturation,
		Lightness:    c.Field.Lightness,
		Alpha:        c.Field.Alpha,
	}
}
