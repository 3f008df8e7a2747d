package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds persistent viewer settings.
type Config struct {
	// CellWidth/CellHeight approximate a terminal glyph in pixels.
	// The engine works in pixel-like world units; these map mouse
	// cells into that space. 8x16 matches most monospace fonts.
	CellWidth   int  `toml:"cell_width"`
	CellHeight  int  `toml:"cell_height"`
	StartPaused bool `toml:"start_paused"`
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		CellWidth:  8,
		CellHeight: 16,
	}
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cgview"
	}
	return filepath.Join(home, ".cgview")
}

// LoadConfig loads configuration, falling back to defaults on any
// problem.
func LoadConfig() Config {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(ConfigPath(), &cfg); err != nil {
		return DefaultConfig()
	}
	if cfg.CellWidth <= 0 {
		cfg.CellWidth = 8
	}
	if cfg.CellHeight <= 0 {
		cfg.CellHeight = 16
	}
	return cfg
}

// SaveConfig writes the configuration file.
func SaveConfig(cfg Config) error {
	f, err := os.Create(ConfigPath())
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}
