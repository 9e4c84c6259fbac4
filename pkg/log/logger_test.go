package log

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"WARN", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInit_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "assetsym.log")
	if err := Init(path, "debug"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer Close()

	slog.Debug("rendered", "target", "objc")
	if err := Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "target=objc") {
		t.Errorf("log file missing record, got %q", data)
	}
}

func TestClose_RestoresFallback(t *testing.T) {
	var buf bytes.Buffer
	orig, origDefault := fallback, slog.Default()
	fallback = &buf
	t.Cleanup(func() {
		fallback = orig
		slog.SetDefault(origDefault)
	})

	path := filepath.Join(t.TempDir(), "assetsym.log")
	if err := Init(path, "info"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	slog.Info("before")
	if err := Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	slog.Info("after")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "msg=before") || strings.Contains(string(data), "msg=after") {
		t.Errorf("unexpected log file contents %q", data)
	}
	if !strings.Contains(buf.String(), "msg=after") {
		t.Errorf("record after Close missing from fallback, got %q", buf.String())
	}
}
