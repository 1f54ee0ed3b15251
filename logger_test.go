package blit

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

// TestLoggerDefaultIsSilent verifies the default logger discards records
// without formatting them.
func TestLoggerDefaultIsSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() = nil, want nop logger")
	}
	if l.Handler().Enabled(context.Background(), slog.LevelError) {
		t.Error("default handler is enabled, want disabled at all levels")
	}
}

// TestSetLogger verifies logger replacement and nil reset.
func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	Logger().Debug("hello", "k", "v")
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("log output %q does not contain message", buf.String())
	}

	SetLogger(nil)
	if Logger().Handler().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent default")
	}
}

// TestGenerationLogged verifies the executor emits a debug record when a
// routine is generated.
func TestGenerationLogged(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	ex := NewExecutor()
	dst := New(16, 16)
	src := New(16, 16)
	if err := ex.Blit(dst, 0, 0, 8, 8, src, 0, 0, Or); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "generated blit routine") {
		t.Errorf("log output %q missing generation record", out)
	}
	if !strings.Contains(out, "op=or") {
		t.Errorf("log output %q missing operator attribute", out)
	}
}
