package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options control the global logger. Zero values fall back to sane defaults
// (info level, console format).
type Options struct {
	Level   string // debug, info, warn, error
	Format  string // console, json
	NoColor bool
}

// InitDefault configures a console logger before flags are parsed, so that
// early startup errors are still readable.
func InitDefault() {
	Init(Options{})
}

// Init configures the global zerolog logger.
func Init(opts Options) {
	level := zerolog.InfoLevel
	if opts.Level != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level)); err == nil {
			level = parsed
		}
	}
	zerolog.SetGlobalLevel(level)

	if opts.Format == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    opts.NoColor,
	}).With().Timestamp().Logger()
}
