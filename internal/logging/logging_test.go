package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func resetLogging(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		SetTraceEnabled(false)
		if err := Configure(Options{}); err != nil {
			t.Fatalf("reset logging: %v", err)
		}
	})
}

func readEntries(t *testing.T, path string) []map[string]interface{} {
	t.Helper()
	Sync()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("decode %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestTraceWritesJSONWithRunID(t *testing.T) {
	resetLogging(t)
	path := filepath.Join(t.TempDir(), "logs", "pipemind.log")
	if err := Configure(Options{Path: path, RunID: "run-1"}); err != nil {
		t.Fatalf("Configure returned error: %v", err)
	}
	SetTraceEnabled(true)
	Trace("menu.cursor", zap.Int("selection", 2))

	entries := readEntries(t, path)
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry["msg"] != "menu.cursor" || entry["run_id"] != "run-1" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if entry["selection"] != float64(2) {
		t.Fatalf("expected selection field, got %v", entry["selection"])
	}
}

func TestTraceDisabledWritesNothing(t *testing.T) {
	resetLogging(t)
	path := filepath.Join(t.TempDir(), "pipemind.log")
	if err := Configure(Options{Path: path}); err != nil {
		t.Fatalf("Configure returned error: %v", err)
	}
	Trace("ignored")
	Error(os.ErrNotExist)

	entries := readEntries(t, path)
	if len(entries) != 1 || entries[0]["level"] != "error" {
		t.Fatalf("expected only the error entry, got %v", entries)
	}
}

func TestConfigureRejectsUnknownLevel(t *testing.T) {
	resetLogging(t)
	if err := Configure(Options{Level: "loud"}); err == nil {
		t.Fatal("expected unknown level to be rejected")
	}
}

func TestSilentWithoutPath(t *testing.T) {
	resetLogging(t)
	if err := Configure(Options{Level: "debug"}); err != nil {
		t.Fatalf("Configure returned error: %v", err)
	}
	SetTraceEnabled(true)
	Trace("noop")
	if Logger().Core().Enabled(zap.DebugLevel) {
		t.Fatal("expected the silent logger to discard every level")
	}
}
