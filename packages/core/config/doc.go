// Package config handles configuration loading and management for coverout.
//
// It provides functionality for:
//   - Loading configuration from .coverout.json or .coverout.yml files
//   - Default configuration values
//   - Environment overrides (COVEROUT_SILENT, NO_COLOR)
package config
