package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger writing to out at the given level.
// Unknown levels fall back to info. console switches to human-readable output.
func New(level string, out io.Writer, console bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	if console {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// Open builds a logger for file, or for fallback when file is empty.
// The returned close func releases the file.
func Open(level, file string, console bool, fallback io.Writer) (zerolog.Logger, func() error, error) {
	if file == "" {
		return New(level, fallback, console), func() error { return nil }, nil
	}
	if dir := filepath.Dir(file); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return zerolog.Nop(), nil, err
		}
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	return New(level, f, console), f.Close, nil
}
