package config

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Silent:  BoolPtr(false),
		NoColor: BoolPtr(false),
		Color:   "",
	}
}

// IsDefault returns true if the config matches defaults
func (c *Config) IsDefault() bool {
	defaults := DefaultConfig()
	return c.GetSilent() == defaults.GetSilent() &&
		c.GetNoColor() == defaults.GetNoColor() &&
		c.Color == defaults.Color
}
