package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds host-level preferences loaded from the config file.
type Config struct {
	// Currency is the default display currency ("TWD" or "USD")
	Currency string `yaml:"currency,omitempty"`
}

// DefaultConfigPath returns the default config file path (~/.subtrack/config.yaml)
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".subtrack", "config.yaml")
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if cfg.Currency != "" {
		if _, err := ParseCurrency(cfg.Currency); err != nil {
			return nil, fmt.Errorf("config currency %q: %w", cfg.Currency, err)
		}
	}

	return &cfg, nil
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	// Create parent directories if they don't exist
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// DisplayCurrency resolves the display currency from an explicit flag value,
// falling back to the config default and finally to TWD.
func (c *Config) DisplayCurrency(flag string) (Currency, error) {
	if flag != "" {
		return ParseCurrency(flag)
	}
	if c != nil && c.Currency != "" {
		return ParseCurrency(c.Currency)
	}
	return TWD, nil
}
