package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestDefaultIsSilent(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled at every level")
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	defer SetLogger(orig)

	var buf bytes.Buffer
	SetLogger(NewText(&buf, false))
	Logger().Debug("hidden")
	Logger().Info("render done", "frames", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug record written at info level")
	}
	if !strings.Contains(out, "frames=3") {
		t.Errorf("missing attribute in %q", out)
	}

	SetLogger(nil)
	if Logger() == nil || Logger().Enabled(context.Background(), slog.LevelInfo) {
		t.Error("nil should restore the silent logger")
	}
}

func TestVerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	l := NewText(&buf, true)
	l.Debug("frame", "i", 1)
	if !strings.Contains(buf.String(), "frame") {
		t.Error("verbose logger dropped debug record")
	}
}
