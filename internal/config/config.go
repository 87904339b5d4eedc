package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Filename is the default config file name inside a data directory.
const Filename = "bankbook.yaml"

// Config represents the top-level bankbook.yaml configuration.
type Config struct {
	// DataDir holds the state snapshot; empty means the directory the
	// config file lives in.
	DataDir string `yaml:"data_dir,omitempty"`
	// AutosaveDelayMS debounces persistence after a mutation. A crash
	// inside the window loses the most recent edits.
	AutosaveDelayMS int    `yaml:"autosave_delay_ms"`
	PersonName      string `yaml:"person_name"`
	AppTitle        string `yaml:"app_title"`
}

// AutosaveDelay returns the debounce window as a duration.
func (c *Config) AutosaveDelay() time.Duration {
	return time.Duration(c.AutosaveDelayMS) * time.Millisecond
}

// Load reads a bankbook.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.AutosaveDelayMS <= 0 {
		cfg.AutosaveDelayMS = Default("").AutosaveDelayMS
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new ledger.
func Default(personName string) *Config {
	return &Config{
		AutosaveDelayMS: 500,
		PersonName:      personName,
		AppTitle:        "Bank Management",
	}
}
