package output

import (
	"sort"
	"strconv"

	"github.com/fatih/color"
)

// StyleFunc wraps text in the styling code of a single token.
type StyleFunc func(string) string

// Styler resolves a token name to its StyleFunc.
type Styler interface {
	Style(token string) (StyleFunc, bool)
}

// Palette is a fixed token table.
type Palette map[string]StyleFunc

func (p Palette) Style(token string) (StyleFunc, bool) {
	fn, ok := p[token]
	return fn, ok
}

// Tokens returns the known token names in sorted order.
func (p Palette) Tokens() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NopStyler knows no tokens, so Format always returns its input.
type NopStyler struct{}

func (NopStyler) Style(string) (StyleFunc, bool) { return nil, false }

var styleAttributes = map[string]color.Attribute{
	"reset":         color.Reset,
	"clear":         color.Reset,
	"bold":          color.Bold,
	"dark":          color.Faint,
	"faint":         color.Faint,
	"italic":        color.Italic,
	"underline":     color.Underline,
	"underscore":    color.Underline,
	"blink":         color.BlinkSlow,
	"rapid_blink":   color.BlinkRapid,
	"reverse":       color.ReverseVideo,
	"negative":      color.ReverseVideo,
	"concealed":     color.Concealed,
	"conceal":       color.Concealed,
	"strikethrough": color.CrossedOut,
}

const ansiReset = "\x1b[0m"

var colorNames = []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// ANSIPalette returns the standard token table: text styles, the eight
// foreground colors, their on_ backgrounds and the bright_/intense_ variants.
func ANSIPalette() Palette {
	p := make(Palette, len(styleAttributes)+len(colorNames)*6)
	for name, attr := range styleAttributes {
		p[name] = ansiStyle(attr)
	}
	for i, name := range colorNames {
		offset := color.Attribute(i)
		p[name] = ansiStyle(color.FgBlack + offset)
		p["on_"+name] = ansiStyle(color.BgBlack + offset)
		for _, prefix := range []string{"bright_", "intense_"} {
			p[prefix+name] = ansiStyle(color.FgHiBlack + offset)
			p["on_"+prefix+name] = ansiStyle(color.BgHiBlack + offset)
		}
	}
	return p
}

// ansiStyle wraps text as ESC[<attr>m text ESC[0m. Every style closes with a
// full reset, so nested styles end in one ESC[0m per layer. color.NoColor is
// not consulted; whether to style at all is decided by Output.
func ansiStyle(attr color.Attribute) StyleFunc {
	open := "\x1b[" + strconv.Itoa(int(attr)) + "m"
	return func(s string) string {
		return open + s + ansiReset
	}
}
