package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu     sync.Mutex
	closer io.Closer
	level  slog.Level

	// fallback receives records when no log file is configured and after
	// Close.
	fallback io.Writer = os.Stderr
)

// Init configures the default slog logger.
// Records go to the file at path (appended, parent directories created) or
// to stderr when path is empty, so they never mix with command output.
//
// lvl: "debug", "info", "warn" or "error". Unknown values fall back to "info".
func Init(path string, lvl string) error {
	mu.Lock()
	defer mu.Unlock()

	w := fallback
	var file *os.File
	if path != "" {
		dir := filepath.Dir(path)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("create log directory: %w", err)
			}
		}

		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		file, w = f, f
	}
	if closer != nil {
		closer.Close()
		closer = nil
	}
	if file != nil {
		closer = file
	}

	level, _ = ParseLevel(lvl)
	setDefault(w)
	return nil
}

func setDefault(w io.Writer) {
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// Close releases the log file opened by Init, if any, and points the
// default logger back at stderr.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	setDefault(fallback)
	return err
}

// ParseLevel maps a level name to a slog.Level.
// An empty string is "info". The error reports unknown names; the returned
// level is "info" in that case.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", s)
	}
}
