package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sheikhrachel/go-life/model"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("utils: invalid configuration")

// Config holds the configuration for the simulation
type Config struct {
	Width               int           `json:"width" yaml:"width"`
	Height              int           `json:"height" yaml:"height"`
	Engine              string        `json:"engine" yaml:"engine"`
	Workers             int           `json:"workers" yaml:"workers"`
	Pattern             string        `json:"pattern" yaml:"pattern"`
	RandomDensity       float64       `json:"random_density" yaml:"random_density"`
	FrameRate           time.Duration `json:"frame_rate" yaml:"frame_rate"`
	MaxGenerations      int           `json:"max_generations" yaml:"max_generations"`
	StagnationThreshold int           `json:"stagnation_threshold" yaml:"stagnation_threshold"`
	Color               bool          `json:"color" yaml:"color"`
	Interactive         bool          `json:"interactive" yaml:"interactive"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               80,
		Height:              25,
		Engine:              string(model.KindScanList),
		Workers:             0, // runtime.NumCPU()
		RandomDensity:       0.15,
		FrameRate:           100 * time.Millisecond,
		MaxGenerations:      1000,
		StagnationThreshold: 5,
		Color:               true,
		Interactive:         false,
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate reports the first unusable setting
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	}
	if _, err := model.ParseKind(c.Engine); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] engine %q, want one of %v", c.Engine, model.Kinds())
	}
	if c.Workers < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] workers must not be negative, got %d", c.Workers)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] random density must be within [0, 1], got %v", c.RandomDensity)
	}
	if c.FrameRate < 0 || c.MaxGenerations < 0 || c.StagnationThreshold < 0 {
		return errors.Wrap(ErrInvalidConfig, "[Validate] frame rate and limits must not be negative")
	}
	return nil
}

// NewEngine builds the engine the configuration names
func (c Config) NewEngine() (model.Engine, error) {
	kind, err := model.ParseKind(c.Engine)
	if err != nil {
		return nil, err
	}
	return model.NewEngine(kind, c.Width, c.Height, model.WithWorkers(c.Workers))
}
