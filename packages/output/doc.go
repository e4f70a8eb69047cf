// Package output writes text to the console.
//
// An Output owns the settings every write consults:
//   - Silent: all writes become no-ops
//   - NoColor: Format returns text unchanged
//   - Writer: the default destination, os.Stdout unless replaced
//
// Color requests are space-separated style tokens such as "red underline".
// Tokens are resolved through a Styler; unknown tokens are ignored.
package output
