package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/depfix/internal/adapters/logger"
)

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	h := logger.NewPrettyHandler(buf, nil)
	l := slog.New(h).With("step", "install-root")

	l.Info("running", "dir", "frontend")

	assert.Equal(t, "running step=install-root dir=frontend\n", buf.String())
}

func TestPrettyHandler_Group(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	l := slog.New(logger.NewPrettyHandler(buf, nil)).WithGroup("cmd")

	l.Warn("slow", "dir", "backend")

	assert.Equal(t, "! slow cmd.dir=backend\n", buf.String())
}

func TestPrettyHandler_GroupAppliesToLaterAttrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	l := slog.New(logger.NewPrettyHandler(buf, nil)).
		With("step", "pin-react").
		WithGroup("cmd").
		With("dir", "frontend")

	l.Error("failed", "code", 1)

	assert.Equal(t, "✗ failed step=pin-react cmd.dir=frontend cmd.code=1\n", buf.String())
}

func TestPrettyHandler_Glyphs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	l := slog.New(logger.NewPrettyHandler(buf, nil))

	l.Info("plain")
	l.Log(t.Context(), logger.LevelSuccess, "done")
	l.Warn("careful")
	l.Error("broken")

	assert.Equal(t, "plain\n✓ done\n! careful\n✗ broken\n", buf.String())
}

func TestPrettyHandler_Enabled(t *testing.T) {
	h := logger.NewPrettyHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})

	assert.False(t, h.Enabled(t.Context(), slog.LevelInfo))
	assert.False(t, h.Enabled(t.Context(), logger.LevelSuccess))
	assert.True(t, h.Enabled(t.Context(), slog.LevelWarn))
	assert.True(t, h.Enabled(t.Context(), slog.LevelError))
}
