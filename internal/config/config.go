// Package config provides YAML configuration support for the columnate tools
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/young1lin/termgrid"
)

// ProjectConfigName is the per-directory configuration file name.
const ProjectConfigName = ".columnate.yaml"

// Config represents the columnate configuration
type Config struct {
	Layout    LayoutConfig    `yaml:"layout"`
	Separator SeparatorConfig `yaml:"separator"`
	Listing   ListingConfig   `yaml:"listing"`
}

// LayoutConfig controls how cells flow into the grid
type LayoutConfig struct {
	Direction string `yaml:"direction"` // "rows" or "columns"
	Width     int    `yaml:"width"`     // 0 means detect from the terminal
}

// SeparatorConfig controls what is emitted between columns
type SeparatorConfig struct {
	Kind    string `yaml:"kind"` // "spaces", "text" or "tabs"
	Spaces  int    `yaml:"spaces"`
	Text    string `yaml:"text"`
	TabSize int    `yaml:"tabSize"`
}

// ListingConfig controls which directory entries are shown and how
type ListingConfig struct {
	ShowHidden bool `yaml:"showHidden"`
	Classify   bool `yaml:"classify"`
	DirsFirst  bool `yaml:"dirsFirst"`
}

// Load loads configuration from file with priority:
// 1. Project-level: .columnate.yaml in the given directory
// 2. Global: the per-user config location (see GlobalConfigPath)
// 3. Default: built-in defaults
func Load(projectDir string) (*Config, error) {
	projectConfig := filepath.Join(projectDir, ProjectConfigName)
	if info, err := os.Stat(projectConfig); err == nil && !info.IsDir() {
		return loadFile(projectConfig)
	}

	if globalConfig := GlobalConfigPath(); globalConfig != "" {
		if info, err := os.Stat(globalConfig); err == nil && !info.IsDir() {
			return loadFile(globalConfig)
		}
	}

	return DefaultConfig(), nil
}

// loadFile loads configuration from a specific file
func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Unknown enum values fall back to defaults
	if cfg.Layout.Direction != "" && cfg.Layout.Direction != "rows" && cfg.Layout.Direction != "columns" {
		cfg.Layout.Direction = "columns"
	}
	if cfg.Separator.Kind != "" && cfg.Separator.Kind != "spaces" && cfg.Separator.Kind != "text" && cfg.Separator.Kind != "tabs" {
		cfg.Separator.Kind = "spaces"
	}
	if cfg.Layout.Width < 0 {
		cfg.Layout.Width = 0
	}
	if cfg.Separator.Spaces < 0 {
		cfg.Separator.Spaces = termgrid.DefaultSeparatorSize
	}
	if cfg.Separator.TabSize <= 0 {
		cfg.Separator.TabSize = termgrid.SpacesInTab
	}

	return cfg, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			Direction: "columns",
			Width:     0,
		},
		Separator: SeparatorConfig{
			Kind:    "spaces",
			Spaces:  termgrid.DefaultSeparatorSize,
			TabSize: termgrid.SpacesInTab,
		},
		Listing: ListingConfig{},
	}
}

// Direction returns the configured grid direction
func (c *Config) Direction() termgrid.Direction {
	if c.Layout.Direction == "rows" {
		return termgrid.LeftToRight
	}
	return termgrid.TopToBottom
}
