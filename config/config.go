// Package config holds the tunable constants of the orbit viewer
// Defaults reproduce the classic setup; an optional TOML file overrides them
package config

import (
	"math"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config is the full runtime configuration
type Config struct {
	Orbit  OrbitConfig  `toml:"orbit"`
	Plot   PlotConfig   `toml:"plot"`
	Slider SliderConfig `toml:"slider"`
	Audio  AudioConfig  `toml:"audio"`
	Log    LogConfig    `toml:"log"`
}

// OrbitConfig fixes the seed and the parameter shown before any input
type OrbitConfig struct {
	SeedRe    float64 `toml:"seed_re"`
	SeedIm    float64 `toml:"seed_im"`
	InitialRe float64 `toml:"initial_re"`
	InitialIm float64 `toml:"initial_im"`
}

// PlotConfig sets the symmetric data bounds of both axes
type PlotConfig struct {
	Bound float64 `toml:"bound"`
}

// SliderConfig sets the range shared by the real and imaginary sliders
type SliderConfig struct {
	Min  float64 `toml:"min"`
	Max  float64 `toml:"max"`
	Init float64 `toml:"init"`
}

type AudioConfig struct {
	Enabled bool `toml:"enabled"`
}

type LogConfig struct {
	Debug bool `toml:"debug"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Orbit: OrbitConfig{
			InitialRe: -0.5,
			InitialIm: 0.2,
		},
		Plot:   PlotConfig{Bound: 1.3},
		Slider: SliderConfig{Min: -1, Max: 1, Init: 0},
		Audio:  AudioConfig{Enabled: false},
	}
}

// Seed returns Z_0
func (c Config) Seed() complex128 {
	return complex(c.Orbit.SeedRe, c.Orbit.SeedIm)
}

// InitialC returns the parameter of the orbit drawn at startup
func (c Config) InitialC() complex128 {
	return complex(c.Orbit.InitialRe, c.Orbit.InitialIm)
}

// Load reads path over the defaults; an empty path returns the defaults untouched
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "decode %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "validate %s", path)
	}
	return cfg, nil
}

// Validate rejects non-finite values and empty ranges
func (c Config) Validate() error {
	finite := []struct {
		name string
		v    float64
	}{
		{"orbit.seed_re", c.Orbit.SeedRe},
		{"orbit.seed_im", c.Orbit.SeedIm},
		{"orbit.initial_re", c.Orbit.InitialRe},
		{"orbit.initial_im", c.Orbit.InitialIm},
		{"plot.bound", c.Plot.Bound},
		{"slider.min", c.Slider.Min},
		{"slider.max", c.Slider.Max},
		{"slider.init", c.Slider.Init},
	}
	for _, f := range finite {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return errors.Errorf("%s must be finite", f.name)
		}
	}

	if c.Plot.Bound <= 0 {
		return errors.Errorf("plot.bound must be positive, got %g", c.Plot.Bound)
	}
	if c.Slider.Min >= c.Slider.Max {
		return errors.Errorf("slider.min (%g) must be below slider.max (%g)", c.Slider.Min, c.Slider.Max)
	}
	if c.Slider.Init < c.Slider.Min || c.Slider.Init > c.Slider.Max {
		return errors.Errorf("slider.init (%g) outside [%g, %g]", c.Slider.Init, c.Slider.Min, c.Slider.Max)
	}
	return nil
}
