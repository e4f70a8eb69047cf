// Package cmd implements the coverout CLI commands using Cobra.
//
// Available commands:
//   - puts: Write text followed by a newline
//   - print: Write text without a trailing newline
//   - format: Show the styled form of text
//   - colors: List the known color and style tokens
//   - init: Write a default .coverout.yml
//   - completion: Generate shell completion scripts
//   - version: Show coverout version information
//
// Global flags control muting (--silent), styling (--no-color), the
// config file (--config) and diagnostic verbosity (-v).
package cmd
