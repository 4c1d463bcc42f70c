package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitAndLoggingToFile(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "nested", "nimbus.log")

	if err := Init(logPath, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(func() {
		_ = Close()
	})

	LogEvent("hello %s", "world")
	LogError(os.ErrNotExist, "lookup %s failed", "alerts")
	_ = Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "hello world") {
		t.Fatalf("expected LogEvent content, got: %s", content)
	}
	if !strings.Contains(content, "lookup alerts failed") {
		t.Fatalf("expected LogError content, got: %s", content)
	}
	if !strings.Contains(content, "file does not exist") {
		t.Fatalf("expected error cause in log, got: %s", content)
	}
}

func TestInitDebugGatesLevel(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nimbus.log")

	if err := Init(logPath, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	l := Logger()
	l.Debug().Msg("hidden")
	_ = Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if strings.Contains(string(data), "hidden") {
		t.Fatalf("debug message logged at info level: %s", data)
	}

	if err := Init(logPath, true); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	l = Logger()
	l.Debug().Msg("visible")
	_ = Close()

	data, err = os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "visible") {
		t.Fatalf("debug message missing at debug level: %s", data)
	}
}

func TestCloseWithoutInit(t *testing.T) {
	if err := Close(); err != nil {
		t.Fatalf("Close without file: %v", err)
	}
}
