package logging

import (
	"bytes"
	"log/slog"
	"testing"
)

func TestSetupDebugMode(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)

	Setup(true)

	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	slog.Debug("test debug")
	slog.Info("test info")

	if !bytes.Contains(buf.Bytes(), []byte("test debug")) {
		t.Error("expected debug message visible in debug mode")
	}
	if !bytes.Contains(buf.Bytes(), []byte("test info")) {
		t.Error("expected info message visible in debug mode")
	}
}

func TestSetupDefaultMode(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)

	Setup(false)
	// Verify logger works at the quiet default level.
	slog.Warn("quiet mode test")
}
