package util

import (
	"path/filepath"
	"testing"
)

func TestClampFloat(t *testing.T) {
	if got := ClampFloat(1.5, 0, 1); got != 1 {
		t.Fatalf("expected 1, got %v", got)
	}
	if got := ClampFloat(-0.1, 0, 1); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := ClampFloat(0.3, 0, 1); got != 0.3 {
		t.Fatalf("expected 0.3, got %v", got)
	}
	if Clamp(12, 0, 10) != 10 || Clamp(-1, 0, 10) != 0 {
		t.Fatalf("unexpected int clamp")
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", LogFileName)
	logger, err := NewLogger(path, true)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	logger.Debug("hello")
	_ = logger.Sync()
}
