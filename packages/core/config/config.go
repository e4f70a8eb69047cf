package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abdul-hamid-achik/coverout/packages/output"
	"gopkg.in/yaml.v3"
)

const (
	EnvSilent  = "COVEROUT_SILENT"
	EnvNoColor = "NO_COLOR"
)

// Config represents the coverout configuration
type Config struct {
	Silent  *bool  `json:"silent,omitempty" yaml:"silent,omitempty"`
	NoColor *bool  `json:"noColor,omitempty" yaml:"noColor,omitempty"`
	Color   string `json:"color,omitempty" yaml:"color,omitempty"` // default color tokens
}

// BoolPtr returns a pointer to b
func BoolPtr(b bool) *bool {
	return &b
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetSilent returns the silent setting, defaulting to false
func (c *Config) GetSilent() bool {
	return getBool(c.Silent, false)
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// ConfigFilenames contains the possible config file names
var ConfigFilenames = []string{
	".coverout.json",
	"coverout.json",
	".coverout.yml",
	".coverout.yaml",
	".coveroutrc",
}

// LoadConfig loads configuration from the specified path or searches for config files
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		return loadConfigFromFile(path)
	}

	return FindAndLoadConfig(".")
}

// FindAndLoadConfig searches for a config file in the given directory
func FindAndLoadConfig(dir string) (*Config, error) {
	for _, filename := range ConfigFilenames {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return loadConfigFromFile(configPath)
		}
	}

	// Return defaults if no config file found
	return DefaultConfig(), nil
}

// loadConfigFromFile loads configuration from a specific file. YAML is
// selected by extension, everything else is parsed as JSON.
func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	config := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		err = yaml.Unmarshal(data, config)
	default:
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return config, nil
}

// FromEnv builds a config from environment variables. Only variables that
// are set produce a value; lookup is usually os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) *Config {
	c := &Config{}
	if v, ok := lookup(EnvSilent); ok {
		c.Silent = BoolPtr(truthy(v))
	}
	// https://no-color.org: any non-empty value disables color
	if v, ok := lookup(EnvNoColor); ok && v != "" {
		c.NoColor = BoolPtr(true)
	}
	return c
}

func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false", "no", "off":
		return false
	}
	return true
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c

	if other.Silent != nil {
		result.Silent = other.Silent
	}
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}
	if other.Color != "" {
		result.Color = other.Color
	}

	return &result
}

// Apply pushes the silent and no-color settings into out
func (c *Config) Apply(out *output.Output) {
	out.SetSilent(c.GetSilent())
	out.SetNoColor(c.GetNoColor())
}

// SaveConfig saves the configuration to a file
func (c *Config) SaveConfig(path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
