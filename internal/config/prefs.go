// Package config loads and normalizes learner preferences.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Algorithm selects the scheduling strategy.
type Algorithm string

const (
	AlgorithmMemory  Algorithm = "memory"  // stability/difficulty model (default)
	AlgorithmClassic Algorithm = "classic" // ease-factor model
	AlgorithmBoxes   Algorithm = "boxes"   // fixed interval ladder
)

// Retention bounds for the memory model.
const (
	MinRetention = 0.70
	MaxRetention = 0.99
)

// Preferences holds every knob the review engine reads. Values are
// normalized on load; the engine never sees out-of-range settings.
type Preferences struct {
	Algorithm       Algorithm `toml:"algorithm"`
	NewPerDay       int       `toml:"new_per_day"`
	ReviewsPerDay   int       `toml:"reviews_per_day"`
	BatchSize       int       `toml:"batch_size"`
	TargetRetention float64   `toml:"target_retention"`
	Fuzz            bool      `toml:"fuzz"`
	Intensity       int       `toml:"intensity"` // 0-100, scales intervals down
	HighYieldFirst  bool      `toml:"high_yield_first"`
}

// Default returns the stock preferences.
func Default() Preferences {
	return Preferences{
		Algorithm:       AlgorithmMemory,
		NewPerDay:       20,
		ReviewsPerDay:   100,
		BatchSize:       30,
		TargetRetention: 0.9,
		Fuzz:            true,
		Intensity:       0,
	}
}

// Load reads preferences from the TOML file at path, applying defaults for
// missing keys. A missing file is not an error. Out-of-range values are
// clamped, never rejected.
func Load(path string) (Preferences, error) {
	prefs := Default()
	if path == "" {
		return prefs, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("stat config: %w", err)
	}
	if _, err := toml.DecodeFile(path, &prefs); err != nil {
		return Default(), fmt.Errorf("decode config: %w", err)
	}
	prefs.Normalize()
	return prefs, nil
}

// Normalize clamps every field into its safe range in place.
func (p *Preferences) Normalize() {
	if p.Algorithm == "" {
		p.Algorithm = AlgorithmMemory
	}
	if p.NewPerDay < 0 {
		p.NewPerDay = 0
	}
	if p.ReviewsPerDay < 0 {
		p.ReviewsPerDay = 0
	}
	if p.BatchSize <= 0 {
		p.BatchSize = Default().BatchSize
	}
	if p.TargetRetention < MinRetention {
		p.TargetRetention = MinRetention
	}
	if p.TargetRetention > MaxRetention {
		p.TargetRetention = MaxRetention
	}
	if p.Intensity < 0 {
		p.Intensity = 0
	}
	if p.Intensity > 100 {
		p.Intensity = 100
	}
}
