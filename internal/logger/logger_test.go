package logger

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "keyshell.log")

	log, closer, err := New(slog.LevelInfo, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	log.Debug("hidden")
	log.Info("shown", "command", "help")
	if err := closer(); err != nil {
		t.Fatalf("unable to close log: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unable to read log: %v", err)
	}
	out := string(data)
	if strings.Contains(out, "hidden") {
		t.Fatalf("expected debug record to be filtered:\n%s", out)
	}
	for _, want := range []string{"msg=shown", "command=help", "source=logger_test.go:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected log to contain %q:\n%s", want, out)
		}
	}
}

func TestNewDiscard(t *testing.T) {
	log, closer, err := New(slog.LevelDebug, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer closer()
	if log.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("expected discard logger to be disabled")
	}
}

func TestTimeFormat(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, slog.LevelDebug)
	log.Debug("key")

	line := buf.String()
	i := strings.Index(line, "time=")
	if i < 0 {
		t.Fatalf("missing time attribute: %q", line)
	}
	// TimeOnly is "15:04:05".
	value, _, _ := strings.Cut(line[i+len("time="):], " ")
	if len(value) != len("15:04:05") || strings.Count(value, ":") != 2 {
		t.Fatalf("unexpected time format: %q", value)
	}
}
