// Package logger configures the structured logger used for diagnostics.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Stderr is the log file value that sends output to stderr.
const Stderr = "-"

// New returns a text logger writing records at or above level to path, along
// with a function that closes the underlying file. An empty path discards all
// output; Stderr writes to the process's stderr.
func New(level slog.Level, path string) (*slog.Logger, func() error, error) {
	nop := func() error { return nil }

	switch path {
	case "":
		return slog.New(slog.DiscardHandler), nop, nil
	case Stderr:
		return newLogger(os.Stderr, level), nop, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	return newLogger(f, level), f.Close, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	opts := slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case slog.SourceKey:
				if source, ok := a.Value.Any().(*slog.Source); ok {
					source.File = filepath.Base(source.File)
				}
			case slog.TimeKey:
				a.Value = slog.StringValue(a.Value.Time().Format(time.TimeOnly))
			}
			return a
		},
	}
	return slog.New(slog.NewTextHandler(w, &opts))
}
