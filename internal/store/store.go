// Package store manages SIGIL_HOME and its yaml configuration.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FoldConfig holds defaults for the fold-driving commands.
type FoldConfig struct {
	Iterations    int    `yaml:"iterations"`     // default fold count for `sigil test`
	GenerateInput string `yaml:"generate_input"` // probe string for `sigil generate`
	TestInput     string `yaml:"test_input"`     // repeated probe string for `sigil test`
}

// Config holds sigil configuration.
type Config struct {
	Version string     `yaml:"version"`
	Fold    FoldConfig `yaml:"fold,omitempty"`
	NoColor bool       `yaml:"no_color,omitempty"`
}

// DefaultConfig returns a Config with the stock probe inputs.
func DefaultConfig() Config {
	return Config{
		Version: "1",
		Fold: FoldConfig{
			Iterations:    10,
			GenerateInput: "GEN",
			TestInput:     "TEST",
		},
	}
}

// Store represents a loaded SIGIL_HOME.
type Store struct {
	Home   string
	Config Config
}

// Home returns the SIGIL_HOME path, respecting the SIGIL_HOME env var.
func Home() string {
	if h := os.Getenv("SIGIL_HOME"); h != "" {
		return h
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".sigil")
	}
	return filepath.Join(home, ".sigil")
}

// Init creates the SIGIL_HOME directory and a default config.yaml.
func Init(home string, force bool) error {
	if _, err := os.Stat(home); err == nil && !force {
		return fmt.Errorf("SIGIL_HOME already exists at %s (use --force to reinitialize)", home)
	}
	if err := os.MkdirAll(home, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", home, err)
	}

	cfg := DefaultConfig()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	cfgPath := filepath.Join(home, "config.yaml")
	if err := os.WriteFile(cfgPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Load reads an existing SIGIL_HOME. A missing home is not an error: the
// commands all work with defaults, so Load falls back to DefaultConfig
// when no config.yaml exists. Missing fields are filled from defaults.
func Load(home string) (*Store, error) {
	cfg := DefaultConfig()
	cfgPath := filepath.Join(home, "config.yaml")
	data, err := os.ReadFile(cfgPath)
	if os.IsNotExist(err) {
		return &Store{Home: home, Config: cfg}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config at %s: %w", cfgPath, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config.yaml: %w", err)
	}
	if cfg.Fold.Iterations < 1 {
		cfg.Fold.Iterations = DefaultConfig().Fold.Iterations
	}
	return &Store{Home: home, Config: cfg}, nil
}

// SaveConfig writes the current config to config.yaml.
func (s *Store) SaveConfig() error {
	if err := os.MkdirAll(s.Home, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", s.Home, err)
	}
	data, err := yaml.Marshal(s.Config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	cfgPath := filepath.Join(s.Home, "config.yaml")
	if err := os.WriteFile(cfgPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// SetConfigValue sets a config value by dot-path key (e.g. "fold.iterations").
func (s *Store) SetConfigValue(key, value string) error {
	switch key {
	case "fold.iterations":
		var n int
		if _, err := fmt.Sscanf(value, "%d", &n); err != nil || n < 1 {
			return fmt.Errorf("fold.iterations must be a positive integer")
		}
		s.Config.Fold.Iterations = n
	case "fold.generate_input":
		s.Config.Fold.GenerateInput = value
	case "fold.test_input":
		s.Config.Fold.TestInput = value
	case "no_color":
		s.Config.NoColor = value == "true"
	default:
		return fmt.Errorf("unknown config key: %s\nValid keys: fold.iterations, fold.generate_input, fold.test_input, no_color", key)
	}
	return s.SaveConfig()
}
