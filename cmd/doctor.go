package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/assetsym/assetsym/internal/catalog"
	"github.com/assetsym/assetsym/internal/config"
	"github.com/assetsym/assetsym/internal/symbols"
	"github.com/assetsym/assetsym/internal/ui"
)

// doctorCmd represents the doctor command.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the configuration, catalogs and output locations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if problems := runDoctor(configPath); problems > 0 {
			return fmt.Errorf("%d problem(s) found", problems)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// runDoctor reports on every stage of a generate run without writing
// anything and returns the number of problems found.
func runDoctor(path string) int {
	ui.PrintHeader("Checking assetsym setup")

	cfg, err := config.Load(path)
	if err != nil {
		ui.PrintError("config", err.Error())
		return 1
	}
	ui.PrintSuccess("config", path)

	problems := 0
	var entries []catalog.Entry
	for _, c := range cfg.Catalogs {
		found, err := catalog.Load(c)
		if err != nil {
			ui.PrintError("catalog", err.Error())
			problems++
			continue
		}
		if len(found) == 0 {
			ui.PrintWarning("catalog", c+" has no image or color sets")
		} else {
			ui.PrintSuccess("catalog", fmt.Sprintf("%s (%d assets)", c, len(found)))
		}
		entries = append(entries, found...)
	}

	if problems == 0 {
		table, err := symbols.Build(entries, symbols.Options{
			Prefix:     cfg.Naming.Prefix,
			Collisions: symbols.Policy(cfg.Naming.Collisions),
		})
		if err != nil {
			ui.PrintError("symbols", err.Error())
			problems++
		} else {
			ui.PrintSuccess("symbols", fmt.Sprintf("%d identifiers", table.Len()))
		}
	}

	for _, out := range cfg.Outputs {
		if err := checkWritableDir(filepath.Dir(out.Path)); err != nil {
			ui.PrintError(out.Target, err.Error())
			problems++
			continue
		}
		ui.PrintSuccess(out.Target, out.Path)
	}
	return problems
}

// checkWritableDir reports whether dir, or the nearest existing ancestor
// that generate would create it under, is a writable directory.
func checkWritableDir(dir string) error {
	for {
		info, err := os.Stat(dir)
		if err == nil {
			if !info.IsDir() {
				return fmt.Errorf("%s is not a directory", dir)
			}
			f, err := os.CreateTemp(dir, ".assetsym-doctor-*")
			if err != nil {
				return fmt.Errorf("%s is not writable: %w", dir, err)
			}
			f.Close()
			return os.Remove(f.Name())
		}
		if !os.IsNotExist(err) {
			return err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return fmt.Errorf("no existing parent directory for %s", dir)
		}
		dir = parent
	}
}
