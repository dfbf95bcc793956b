package cli

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type LoggerOptions struct {
	Out io.Writer
	Dev bool
	// Level is a zerolog level name; empty picks debug in dev, info otherwise.
	Level string
}

// NewLogger writes human-readable lines in dev mode and JSON otherwise.
// Colors are used only when Out is a terminal.
func NewLogger(opts LoggerOptions) zerolog.Logger {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	level := zerolog.InfoLevel
	if opts.Dev {
		level = zerolog.DebugLevel
	}
	if opts.Level != "" {
		if parsed, err := zerolog.ParseLevel(opts.Level); err == nil {
			level = parsed
		}
	}

	if opts.Dev {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.TimeOnly,
			NoColor:    !isTerminal(out),
		}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == os.ModeCharDevice
}
