package output

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func TestNew_DefaultsToStdout(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	out := New()
	require.NoError(t, out.Puts("this is a test"))
	require.NoError(t, w.Close())

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "this is a test\n", string(got))
}

func TestPuts_DefaultWriter(t *testing.T) {
	var buf bytes.Buffer
	out := New(WithWriter(&buf))

	require.NoError(t, out.Puts("this is a test"))
	assert.Equal(t, "this is a test\n", buf.String())
}

func TestPuts_WriterOverride(t *testing.T) {
	var def, override bytes.Buffer
	out := New(WithWriter(&def))

	require.NoError(t, out.Puts("this is a test", To(&override)))
	assert.Equal(t, "this is a test\n", override.String())
	assert.Empty(t, def.String())
}

func TestPrint_WriterOverride(t *testing.T) {
	var def, override bytes.Buffer
	out := New(WithWriter(&def))

	require.NoError(t, out.Print("this is a test", To(&override)))
	assert.Equal(t, "this is a test", override.String())
	assert.Empty(t, def.String())
}

func TestPuts_AppliesColor(t *testing.T) {
	var buf bytes.Buffer
	out := New(WithWriter(&buf))

	require.NoError(t, out.Puts("Hello", Color("red")))
	assert.Equal(t, "\x1b[31mHello\x1b[0m\n", buf.String())
}

func TestSilent(t *testing.T) {
	var def, override bytes.Buffer
	out := New(WithWriter(&def), WithSilent(true))

	assert.NoError(t, out.Puts("foo"))
	assert.NoError(t, out.Print("foo"))
	assert.NoError(t, out.Puts("foo", To(&override)))
	assert.NoError(t, out.Print("foo", To(&override), Color("red")))

	assert.Empty(t, def.String())
	assert.Empty(t, override.String())
}

func TestSilent_SkipsFailingWriter(t *testing.T) {
	out := New(WithWriter(failingWriter{err: errors.New("boom")}))
	out.SetSilent(true)

	assert.NoError(t, out.Puts("foo"))
}

func TestWrite_PropagatesWriterError(t *testing.T) {
	errWrite := errors.New("disk full")
	out := New(WithWriter(failingWriter{err: errWrite}))

	assert.ErrorIs(t, out.Puts("foo"), errWrite)
	assert.ErrorIs(t, out.Print("foo"), errWrite)
}

func TestFormat(t *testing.T) {
	palette := ANSIPalette()
	red, _ := palette.Style("red")
	underline, _ := palette.Style("underline")

	tests := []struct {
		name  string
		text  string
		color string
		want  string
	}{
		{name: "no color", text: "Hi Doggie!", want: "Hi Doggie!"},
		{name: "single color", text: "Hello", color: "red", want: "\x1b[31mHello\x1b[0m"},
		{name: "unknown color", text: "Hi dog!", color: "not_a_real_color", want: "Hi dog!"},
		{name: "blank color", text: "Hi dog!", color: "   ", want: "Hi dog!"},
		{name: "two tokens nest left to right", text: "Hi dog!", color: "red underline", want: red(underline("Hi dog!"))},
		{name: "literal nesting", text: "Hi dog!", color: "red underline", want: "\x1b[31m\x1b[4mHi dog!\x1b[0m\x1b[0m"},
		{name: "unknown token skipped", text: "Hi dog!", color: "red nope underline", want: red(underline("Hi dog!"))},
		{name: "extra whitespace", text: "Hi dog!", color: " red\t underline ", want: red(underline("Hi dog!"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := New(WithWriter(io.Discard))
			var opts []WriteOption
			if tt.color != "" {
				opts = append(opts, Color(tt.color))
			}
			assert.Equal(t, tt.want, out.Format(tt.text, opts...))
		})
	}
}

func TestFormat_OrderMatters(t *testing.T) {
	out := New()
	assert.NotEqual(t, out.Format("x", Color("red underline")), out.Format("x", Color("underline red")))
}

func TestFormat_NoColor(t *testing.T) {
	out := New(WithNoColor(true))

	assert.Equal(t, "Hi Doggie!", out.Format("Hi Doggie!", Color("red")))
	assert.Equal(t, "Hi Doggie!", out.Format("Hi Doggie!", Color("bogus")))

	out.SetNoColor(false)
	assert.NotEqual(t, "Hi Doggie!", out.Format("Hi Doggie!", Color("red")))
}

func TestFormat_IgnoresWriterOverride(t *testing.T) {
	var buf bytes.Buffer
	out := New()

	_ = out.Format("quiet", To(&buf))
	assert.Empty(t, buf.String())
}

func TestFormat_InjectedStyler(t *testing.T) {
	upper := Palette{
		"loud": strings.ToUpper,
		"wrap": func(s string) string { return "[" + s + "]" },
	}
	out := New(WithStyler(upper))

	assert.Equal(t, "[HI]", out.Format("hi", Color("wrap loud")))
	assert.Equal(t, "HI", out.Format("hi", Color("red loud")))

	out.SetStyler(NopStyler{})
	assert.Equal(t, "hi", out.Format("hi", Color("wrap loud")))

	out.SetStyler(nil)
	assert.Equal(t, "\x1b[31mhi\x1b[0m", out.Format("hi", Color("red")))
}

func TestSetters(t *testing.T) {
	out := New()
	assert.False(t, out.Silent())
	assert.False(t, out.NoColor())
	assert.Equal(t, os.Stdout, out.Writer())

	var buf bytes.Buffer
	out.SetSilent(true)
	out.SetNoColor(true)
	out.SetWriter(&buf)
	assert.True(t, out.Silent())
	assert.True(t, out.NoColor())
	assert.Equal(t, &buf, out.Writer())

	out.SetWriter(nil)
	assert.Equal(t, os.Stdout, out.Writer())
}

func TestConcurrentUse(t *testing.T) {
	out := New(WithWriter(io.Discard))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				out.SetNoColor(j%2 == 0)
				out.SetSilent(i%2 == 0)
				_ = out.Format("x", Color("green bold"))
				_ = out.Print("x", Color("blue"))
			}
		}(i)
	}
	wg.Wait()
}
