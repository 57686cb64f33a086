// Package config handles game configuration loading and management.
package config

import (
	enginetunnel "github.com/Faultbox/tunnel-rush/internal/engine/tunnel"
)

// Config holds all game settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Tunnel   TunnelConfig   `yaml:"tunnel"`
	Game     GameConfig     `yaml:"game"`
	Data     DataConfig     `yaml:"data"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DataConfig holds asset locations.
type DataConfig struct {
	AssetDirs     []string `yaml:"asset_dirs"` // Searched last to first
	ScreenshotDir string   `yaml:"screenshot_dir"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FOV        float32 `yaml:"fov"` // Vertical field of view in degrees
	Anisotropy float32 `yaml:"anisotropy"`
}

// TunnelConfig holds tunnel geometry and content settings.
// Sides and Rings must match the catalog file.
type TunnelConfig struct {
	Catalog string  `yaml:"catalog"`
	Texture string  `yaml:"texture"`
	Radius  float64 `yaml:"radius"`
	Sides   int     `yaml:"sides"`
	Rings   int     `yaml:"rings"`
	Ahead   int     `yaml:"sections_ahead"`
	Behind  int     `yaml:"sections_behind"`
}

// Geometry returns the tunnel geometry described by the config.
func (t TunnelConfig) Geometry() enginetunnel.Geometry {
	return enginetunnel.Geometry{
		Radius: t.Radius,
		Sides:  t.Sides,
		Rings:  t.Rings,
	}
}

// GameConfig holds gameplay settings.
type GameConfig struct {
	Speed           float64 `yaml:"speed"`            // Initial forward speed, units/s
	MaxSpeed        float64 `yaml:"max_speed"`        // Forward speed cap, units/s
	Acceleration    float64 `yaml:"acceleration"`     // Forward speed gain, units/s^2
	SteerSpeed      float64 `yaml:"steer_speed"`      // Angular speed, radians/s
	DifficultyStep  float64 `yaml:"difficulty_step"`  // Distance per difficulty level
	StartDifficulty int     `yaml:"start_difficulty"` // Difficulty at distance zero
	Seed            int64   `yaml:"seed"`             // 0 seeds from the clock
	ShowFPS         bool    `yaml:"show_fps"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FOV:        70,
			Anisotropy: 10,
		},
		Tunnel: TunnelConfig{
			Catalog: "data/matrices.txt",
			Texture: "tunnelUnit.tga",
			Radius:  2,
			Sides:   8,
			Rings:   6,
			Ahead:   6,
			Behind:  1,
		},
		Game: GameConfig{
			Speed:           8,
			MaxSpeed:        40,
			Acceleration:    0.5,
			SteerSpeed:      3,
			DifficultyStep:  150,
			StartDifficulty: 0,
			Seed:            0,
			ShowFPS:         false,
		},
		Data: DataConfig{
			AssetDirs:     []string{"data"},
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
