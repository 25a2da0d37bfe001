// Package models defines configuration and shared result types.
package models

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is read when --config is not given and the file exists.
const DefaultConfigFile = "wordfreq.yaml"

// Config holds runtime configuration. Values come from an optional YAML
// file and are then overridden by CLI flags.
type Config struct {
	OutputDir   string        `yaml:"output_dir"`
	Top         int           `yaml:"top"`
	WorkerCount int           `yaml:"workers"`
	StopWords   []string      `yaml:"stop_words"`
	DBPath      string        `yaml:"db_path"`
	CacheDir    string        `yaml:"cache_dir"`
	CacheTTL    time.Duration `yaml:"cache_ttl"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		OutputDir:   "output",
		Top:         10,
		WorkerCount: 4,
		CacheDir:    ".cache/wordfreq",
		CacheTTL:    24 * time.Hour,
	}
}

// LoadConfig reads the YAML file at path on top of DefaultConfig.
// If optional is true a missing file is not an error.
func LoadConfig(path string, optional bool) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings no command can work with.
func (c Config) Validate() error {
	if c.Top < 0 {
		return fmt.Errorf("top must not be negative, got %d", c.Top)
	}
	if c.WorkerCount < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.WorkerCount)
	}
	if c.OutputDir == "" {
		return errors.New("output_dir must not be empty")
	}
	return nil
}
