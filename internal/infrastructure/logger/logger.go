package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logger configuration.
type Config struct {
	Level   string // trace, debug, info, warn, error, disabled
	Format  string // json, console
	Service string // added as the "service" field when set
	NoColor bool   // console format only

	// Out defaults to os.Stderr so command output stays on stdout.
	Out io.Writer
}

// New builds the process logger. Unknown levels fall back to info.
func New(cfg Config) zerolog.Logger {
	ctx := zerolog.New(writer(cfg)).
		Level(parseLevel(cfg.Level)).
		With().
		Timestamp()

	if cfg.Service != "" {
		ctx = ctx.Str("service", cfg.Service)
	}

	return ctx.Logger()
}

func writer(cfg Config) io.Writer {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}

	if !strings.EqualFold(cfg.Format, "console") {
		return out
	}

	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    cfg.NoColor,
		TimeFormat: time.RFC3339,
	}
}

func parseLevel(raw string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
