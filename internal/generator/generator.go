package generator

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/assetsym/assetsym/internal/config"
	"github.com/assetsym/assetsym/internal/symbols"
)

// Options contains optional flags for the code generation process.
type Options struct {
	// Check compares the rendered artifacts with the files on disk instead
	// of writing them, and fails with a StaleError when any differ.
	Check bool
	// Logger receives progress records. Defaults to slog.Default().
	Logger *slog.Logger
}

// Result describes one artifact of a run.
type Result struct {
	Target  string
	Path    string
	Symbols int
	// Changed reports whether the file content differs (or differed, before
	// writing) from the rendered output.
	Changed bool
}

// StaleError is returned in check mode when generated files are out of date.
type StaleError struct {
	Paths []string
}

func (e *StaleError) Error() string {
	return fmt.Sprintf("generated files are out of date: %s (run assetsym generate)", strings.Join(e.Paths, ", "))
}

// Render renders the artifact for a single output.
func Render(out config.Output, table *symbols.Table) ([]byte, error) {
	switch out.Target {
	case "objc":
		return renderObjC(table)
	case "swift":
		return renderSwift(table)
	case "go":
		return renderGo(table, out.Package)
	default:
		return nil, fmt.Errorf("unsupported target: %s", out.Target)
	}
}

// Generate renders every configured output and writes the ones whose
// content changed.
//
// All outputs are rendered and staged as temporary files before any of them
// is renamed into place: a render or staging failure leaves every existing
// file untouched. Files with identical content are not rewritten.
func Generate(ctx context.Context, cfg *config.Config, table *symbols.Table, opts Options) ([]Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	rendered := make([][]byte, len(cfg.Outputs))
	for i, out := range cfg.Outputs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := Render(out, table)
		if err != nil {
			return nil, fmt.Errorf("render %s (%s): %w", out.Path, out.Target, err)
		}
		rendered[i] = data
		logger.Debug("rendered output", "target", out.Target, "path", out.Path, "bytes", len(data))
	}

	results := make([]Result, len(cfg.Outputs))
	var stale []string
	for i, out := range cfg.Outputs {
		existing, err := os.ReadFile(out.Path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read %s: %w", out.Path, err)
		}
		changed := err != nil || !bytes.Equal(existing, rendered[i])
		results[i] = Result{Target: out.Target, Path: out.Path, Symbols: table.Len(), Changed: changed}
		if changed {
			stale = append(stale, out.Path)
		}
	}

	if opts.Check {
		if len(stale) > 0 {
			return results, &StaleError{Paths: stale}
		}
		return results, nil
	}

	var paths []string
	var contents [][]byte
	for i, out := range cfg.Outputs {
		if !results[i].Changed {
			logger.Info("output up to date", "target", out.Target, "path", out.Path)
			continue
		}
		paths = append(paths, out.Path)
		contents = append(contents, rendered[i])
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := writeFiles(paths, contents); err != nil {
		return nil, err
	}
	for i, out := range cfg.Outputs {
		if results[i].Changed {
			logger.Info("generated output", "target", out.Target, "path", out.Path, "symbols", table.Len())
		}
	}

	return results, nil
}
