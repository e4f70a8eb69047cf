package output

import (
	"io"
	"os"
	"strings"
	"sync"
)

// Output renders text and writes it to a stream, honoring the silent and
// no-color settings.
type Output struct {
	mu      sync.RWMutex
	writer  io.Writer
	styler  Styler
	silent  bool
	noColor bool
}

// Option configures an Output at construction time.
type Option func(*Output)

// New creates an Output writing to os.Stdout with the ANSI palette.
func New(opts ...Option) *Output {
	o := &Output{
		writer: os.Stdout,
		styler: ANSIPalette(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func WithWriter(w io.Writer) Option {
	return func(o *Output) {
		if w != nil {
			o.writer = w
		}
	}
}

func WithSilent(s bool) Option {
	return func(o *Output) {
		o.silent = s
	}
}

func WithNoColor(nc bool) Option {
	return func(o *Output) {
		o.noColor = nc
	}
}

func WithStyler(s Styler) Option {
	return func(o *Output) {
		if s != nil {
			o.styler = s
		}
	}
}

// WriteOption adjusts a single Puts, Print or Format call.
type WriteOption func(*writeOptions)

type writeOptions struct {
	writer io.Writer
	color  string
}

// To sends a single write to w instead of the default writer.
func To(w io.Writer) WriteOption {
	return func(wo *writeOptions) {
		wo.writer = w
	}
}

// Color requests styling with space-separated tokens, e.g. "red underline".
func Color(tokens string) WriteOption {
	return func(wo *writeOptions) {
		wo.color = tokens
	}
}

func collect(opts []WriteOption) writeOptions {
	var wo writeOptions
	for _, opt := range opts {
		opt(&wo)
	}
	return wo
}

// Puts writes text followed by a newline. It does nothing when silenced.
// Errors from the underlying writer are returned as is.
func (o *Output) Puts(text string, opts ...WriteOption) error {
	return o.write(text, "\n", opts)
}

// Print is Puts without the trailing newline.
func (o *Output) Print(text string, opts ...WriteOption) error {
	return o.write(text, "", opts)
}

func (o *Output) write(text, suffix string, opts []WriteOption) error {
	o.mu.RLock()
	silent, w := o.silent, o.writer
	o.mu.RUnlock()
	if silent {
		return nil
	}

	wo := collect(opts)
	if wo.writer != nil {
		w = wo.writer
	}
	_, err := io.WriteString(w, o.format(text, wo.color)+suffix)
	return err
}

// Format applies the requested color tokens to text. The leftmost token
// becomes the outermost wrapper. Text is returned unchanged when colors are
// disabled, no tokens were given, or none of them are known.
func (o *Output) Format(text string, opts ...WriteOption) string {
	return o.format(text, collect(opts).color)
}

func (o *Output) format(text, color string) string {
	o.mu.RLock()
	noColor, styler := o.noColor, o.styler
	o.mu.RUnlock()
	if noColor || color == "" {
		return text
	}

	tokens := strings.Fields(color)
	for i := len(tokens) - 1; i >= 0; i-- {
		style, ok := styler.Style(tokens[i])
		if !ok {
			continue
		}
		text = style(text)
	}
	return text
}

func (o *Output) Silent() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.silent
}

func (o *Output) SetSilent(s bool) {
	o.mu.Lock()
	o.silent = s
	o.mu.Unlock()
}

func (o *Output) NoColor() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.noColor
}

func (o *Output) SetNoColor(nc bool) {
	o.mu.Lock()
	o.noColor = nc
	o.mu.Unlock()
}

// Writer returns the default destination.
func (o *Output) Writer() io.Writer {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.writer
}

// SetWriter replaces the default destination. A nil writer restores os.Stdout.
func (o *Output) SetWriter(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	o.mu.Lock()
	o.writer = w
	o.mu.Unlock()
}

// SetStyler replaces the token lookup. A nil styler restores the ANSI palette.
func (o *Output) SetStyler(s Styler) {
	if s == nil {
		s = ANSIPalette()
	}
	o.mu.Lock()
	o.styler = s
	o.mu.Unlock()
}
