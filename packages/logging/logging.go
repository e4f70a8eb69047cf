// Package logging configures the zerolog diagnostics logger used by the CLI.
// Diagnostics go to their own writer (stderr by default) and never mix with
// text written through package output.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup sets the global level from verbosity (0 warn, 1 info, 2 debug,
// 3+ trace) and points the global logger at w. A nil w means os.Stderr.
func Setup(w io.Writer, verbosity int, noColor bool) {
	switch {
	case verbosity <= 0:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case verbosity == 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case verbosity == 2:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	if w == nil {
		w = os.Stderr
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}).With().Timestamp().Logger()

	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", verbosity).Msg("Logger initialized")
}

// Get returns a logger tagged with the component name
func Get(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
