package logging_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pigeonhole/internal/logging"
)

func TestNewConsoleOutput(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console.log")
	logger, err := logging.New(logging.Options{
		Level:            "info",
		Format:           "console",
		OutputPaths:      []string{logPath},
		ErrorOutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	scoped := logging.NewComponentLogger(logger, "organizer")
	scoped.Info("file moved", logging.String("path", "/tmp/a.txt"), logging.Int("attempt", 1))

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	line := string(content)
	if !strings.Contains(line, "INFO organizer: file moved") {
		t.Fatalf("unexpected console line: %q", line)
	}
	if !strings.Contains(line, "path=/tmp/a.txt") || !strings.Contains(line, "attempt=1") {
		t.Fatalf("missing attributes in console line: %q", line)
	}
}

func TestNewConsoleSuppressesBelowLevel(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "quiet.log")
	logger, err := logging.New(logging.Options{
		Level:            "warn",
		Format:           "console",
		OutputPaths:      []string{logPath},
		ErrorOutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("should not appear")
	logger.Warn("should appear")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Contains(string(content), "should not appear") {
		t.Fatalf("info line leaked through warn level: %q", content)
	}
	if !strings.Contains(string(content), "should appear") {
		t.Fatalf("warn line missing: %q", content)
	}
}

func TestNewJSONOutput(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "out.json")
	logger, err := logging.New(logging.Options{
		Level:            "info",
		Format:           "json",
		OutputPaths:      []string{logPath},
		ErrorOutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("structured line", logging.String("run_id", "abc"))

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(content))), &decoded); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, content)
	}
	if decoded["msg"] != "structured line" {
		t.Fatalf("msg = %v, want %q", decoded["msg"], "structured line")
	}
	if decoded["level"] != "info" {
		t.Fatalf("level = %v, want %q", decoded["level"], "info")
	}
	if _, ok := decoded["ts"]; !ok {
		t.Fatal("missing ts key")
	}
	if decoded["run_id"] != "abc" {
		t.Fatalf("run_id = %v, want %q", decoded["run_id"], "abc")
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("goes nowhere", logging.Error(os.ErrNotExist))
}

func TestNewComponentLoggerNilBase(t *testing.T) {
	logger := logging.NewComponentLogger(nil, "walker")
	logger.Info("safe on nil base")
}
