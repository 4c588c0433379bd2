// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rectilinear/vertex"
)

// DefaultFile is read by Load when no explicit path is given. Its absence
// is not an error.
const DefaultFile = "rectilinear.yaml"

// Config is the full set of run settings.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Search SearchConfig `yaml:"search"`
	Log    LogConfig    `yaml:"log"`
	Render RenderConfig `yaml:"render"`
}

// InputConfig controls vertex parsing.
type InputConfig struct {
	// Policy is "strict" or "lenient".
	Policy string `yaml:"policy" env:"RECT_INPUT_POLICY"`
}

// SearchConfig controls the rectangle search.
type SearchConfig struct {
	Workers int  `yaml:"workers" env:"RECT_SEARCH_WORKERS"`
	Pruning bool `yaml:"pruning" env:"RECT_SEARCH_PRUNING"`
}

// LogConfig mirrors logging.Config.
type LogConfig struct {
	Level      string `yaml:"level" env:"RECT_LOG_LEVEL"`
	File       string `yaml:"file" env:"RECT_LOG_FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb" env:"RECT_LOG_MAX_SIZE_MB"`
	MaxBackups int    `yaml:"max_backups" env:"RECT_LOG_MAX_BACKUPS"`
}

// RenderConfig sizes the PNG canvas.
type RenderConfig struct {
	Width   int     `yaml:"width" env:"RECT_RENDER_WIDTH"`
	Height  int     `yaml:"height" env:"RECT_RENDER_HEIGHT"`
	Padding float64 `yaml:"padding" env:"RECT_RENDER_PADDING"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Input:  InputConfig{Policy: vertex.Lenient.String()},
		Search: SearchConfig{Workers: 1, Pruning: true},
		Log:    LogConfig{Level: zerolog.InfoLevel.String(), MaxSizeMB: 10, MaxBackups: 3},
		Render: RenderConfig{Width: 800, Height: 800, Padding: 20},
	}
}

// Load resolves defaults, the YAML file at path and the environment, then
// validates the result. An empty path means DefaultFile, which may be
// missing; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	if err := cfg.mergeFile(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	if err := LoadEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// mergeFile overlays the YAML document at path onto c. Keys absent from
// the document keep their current values.
func (c *Config) mergeFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("Load: %w", err)
	}

	return c.Decode(raw)
}

// Decode overlays a YAML document onto c.
func (c *Config) Decode(raw []byte) error {
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("Decode: %v: %w", err, ErrInvalidConfig)
	}

	return nil
}

// Encode renders c as YAML.
func (c Config) Encode() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate reports the first out-of-range value.
func (c Config) Validate() error {
	if _, err := vertex.ParsePolicy(c.Input.Policy); err != nil {
		return invalid("input.policy", c.Input.Policy)
	}
	if c.Search.Workers < 1 {
		return invalid("search.workers", c.Search.Workers)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil || c.Log.Level == "" {
		return invalid("log.level", c.Log.Level)
	}
	if c.Log.MaxSizeMB < 0 {
		return invalid("log.max_size_mb", c.Log.MaxSizeMB)
	}
	if c.Log.MaxBackups < 0 {
		return invalid("log.max_backups", c.Log.MaxBackups)
	}
	if c.Render.Width < 1 || c.Render.Height < 1 {
		return invalid("render.width/height", fmt.Sprintf("%dx%d", c.Render.Width, c.Render.Height))
	}
	if c.Render.Padding < 0 {
		return invalid("render.padding", c.Render.Padding)
	}

	return nil
}

// Policy returns the parsed input policy. It assumes c has been validated.
func (c Config) Policy() vertex.Policy {
	p, _ := vertex.ParsePolicy(c.Input.Policy)
	return p
}

func invalid(key string, value interface{}) error {
	return fmt.Errorf("Validate: %s=%v: %w", key, value, ErrInvalidConfig)
}
