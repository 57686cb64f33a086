package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when loaded values cannot drive the game.
var ErrInvalidConfig = errors.New("invalid config")

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit path takes priority over the search locations
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that would otherwise break mesh building or
// section selection at runtime.
func (c *Config) Validate() error {
	t := c.Tunnel
	switch {
	case t.Catalog == "":
		return fmt.Errorf("%w: tunnel.catalog is empty", ErrInvalidConfig)
	case t.Radius <= 0:
		return fmt.Errorf("%w: tunnel.radius must be positive, got %v", ErrInvalidConfig, t.Radius)
	case t.Sides < 3:
		return fmt.Errorf("%w: tunnel.sides must be at least 3, got %d", ErrInvalidConfig, t.Sides)
	case t.Rings < 2:
		return fmt.Errorf("%w: tunnel.rings must be at least 2, got %d", ErrInvalidConfig, t.Rings)
	case t.Ahead < 1:
		return fmt.Errorf("%w: tunnel.sections_ahead must be at least 1, got %d", ErrInvalidConfig, t.Ahead)
	case c.Game.DifficultyStep <= 0:
		return fmt.Errorf("%w: game.difficulty_step must be positive, got %v", ErrInvalidConfig, c.Game.DifficultyStep)
	case c.Game.StartDifficulty < 0:
		return fmt.Errorf("%w: game.start_difficulty must not be negative, got %d", ErrInvalidConfig, c.Game.StartDifficulty)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		UserConfigPath(),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "TunnelRush")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "TunnelRush")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "tunnel-rush")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "tunnel-rush")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
