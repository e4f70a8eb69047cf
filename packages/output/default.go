package output

import "io"

var std = New()

// Default returns the process-wide Output used by the package-level helpers.
func Default() *Output { return std }

func Puts(text string, opts ...WriteOption) error { return std.Puts(text, opts...) }

func Print(text string, opts ...WriteOption) error { return std.Print(text, opts...) }

func Format(text string, opts ...WriteOption) string { return std.Format(text, opts...) }

func SetSilent(s bool) { std.SetSilent(s) }

func SetNoColor(nc bool) { std.SetNoColor(nc) }

func SetWriter(w io.Writer) { std.SetWriter(w) }
