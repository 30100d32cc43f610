// Package config carries the tool configuration: default foundation
// parameters and the input ranges the presentation layer enforces before
// values reach the core packages. The core itself assumes pre-constrained
// inputs and never validates ranges.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Range is an inclusive float interval.
type Range struct {
	Min float64 `toml:"min"`
	Max float64 `toml:"max"`
}

// Clamp forces v into the range.
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Contains reports whether v lies in the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// IntRange is an inclusive integer interval.
type IntRange struct {
	Min int `toml:"min"`
	Max int `toml:"max"`
}

// Clamp forces v into the range.
func (r IntRange) Clamp(v int) int {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Foundation holds the default foundation parameters.
type Foundation struct {
	Diameter      float64 `toml:"diameter"`       // m
	WallThickness float64 `toml:"wall_thickness"` // m
}

// Inputs holds the ranges exposed to the user for each input.
type Inputs struct {
	FoundationDiameter Range    `toml:"foundation_diameter"` // m
	WallThickness      Range    `toml:"wall_thickness"`      // m
	TendonCount        IntRange `toml:"tendon_count"`
	PatternRadius      Range    `toml:"pattern_radius"`   // m
	TendonDiameter     Range    `toml:"tendon_diameter"`  // mm
	GroutDiameter      Range    `toml:"grout_diameter"`   // mm
	ShaftDiameter      Range    `toml:"shaft_diameter"`   // m
}

// Config is the full tool configuration.
type Config struct {
	Foundation Foundation `toml:"foundation"`
	Inputs     Inputs     `toml:"inputs"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Foundation: Foundation{
			Diameter:      10.0,
			WallThickness: 0.8,
		},
		Inputs: Inputs{
			FoundationDiameter: Range{Min: 5.0, Max: 15.0},
			WallThickness:      Range{Min: 0.3, Max: 1.5},
			TendonCount:        IntRange{Min: 4, Max: 24},
			PatternRadius:      Range{Min: 2.0, Max: 6.5},
			TendonDiameter:     Range{Min: 100, Max: 300},
			GroutDiameter:      Range{Min: 200, Max: 600},
			ShaftDiameter:      Range{Min: 0.8, Max: 2.0},
		},
	}
}

// Load reads a TOML configuration file. Fields missing from the file keep
// their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}
