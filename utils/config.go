package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate for unusable settings
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the simulation driver
type Config struct {
	FrameRate        time.Duration `json:"frame_rate"`
	MaxGenerations   int           `json:"max_generations"`
	PatternFile      string        `json:"pattern_file"`
	Workers          int           `json:"workers"`
	UseBoundedGrid   bool          `json:"use_bounded_grid"`
	UseMemoryPool    bool          `json:"use_memory_pool"`
	MaxPatternCells  int           `json:"max_pattern_cells"`
	MaxGridCells     int           `json:"max_grid_cells"`
	StopOnStagnation bool          `json:"stop_on_stagnation"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		FrameRate:        500 * time.Millisecond,
		MaxGenerations:   1000,
		Workers:          1,
		UseBoundedGrid:   false,
		UseMemoryPool:    true,
		MaxPatternCells:  1 << 20,
		MaxGridCells:     1 << 22,
		StopOnStagnation: true,
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

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid settings in file: %+v", filename)
	}

	return config, nil
}

// Validate rejects settings the driver cannot run with
func (c Config) Validate() error {
	switch {
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame_rate %v is negative", c.FrameRate)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max_generations %d is negative", c.MaxGenerations)
	case c.Workers < 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] workers %d must be at least 1", c.Workers)
	case c.MaxPatternCells < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max_pattern_cells %d is negative", c.MaxPatternCells)
	case c.MaxGridCells < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max_grid_cells %d is negative", c.MaxGridCells)
	}
	return nil
}
