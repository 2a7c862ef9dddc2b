package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the simulation driver
type Config struct {
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	FrameRate      time.Duration `json:"frame_rate"`
	RuleIndex      int           `json:"rule"`
	PatternFile    string        `json:"pattern_file"`
	Seed           int64         `json:"seed"`
	RandomDensity  float64       `json:"random_density"`
	MaxGenerations int           `json:"max_generations"`
	UseMemoryPool  bool          `json:"use_memory_pool"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:          64,
		Height:         64,
		FrameRate:      50 * time.Millisecond,
		RuleIndex:      0, // Conway's Life
		PatternFile:    "",
		Seed:           0, // 0 seeds from the wall clock
		RandomDensity:  0, // 0 uses the standard 1-in-5 fill
		MaxGenerations: 1000,
		UseMemoryPool:  true,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate rejects configurations the engine cannot run with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("[Validate] grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Errorf("[Validate] random_density must be in [0,1], got %v", c.RandomDensity)
	}
	return nil
}
