package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/assetsym/assetsym/internal/catalog"
	"github.com/assetsym/assetsym/internal/config"
	"github.com/assetsym/assetsym/internal/generator"
	"github.com/assetsym/assetsym/internal/symbols"
	"github.com/assetsym/assetsym/internal/ui"
	"github.com/assetsym/assetsym/pkg/log"
)

var (
	genOverrides overrides
	// checkOnly is set via --check.
	checkOnly bool
)

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate symbol files from the asset catalogs",
	Long: `Reads every configured catalog, computes one identifier per asset and
writes the configured outputs. Nothing is written when any asset is invalid
or two assets produce the same identifier.

With --check, the outputs are compared with the files on disk and the
command fails if any of them is out of date.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := runGenerate(cmd.Context(), configPath, genOverrides, checkOnly)
		return err
	},
}

func init() {
	f := generateCmd.Flags()
	f.BoolVar(&checkOnly, "check", false, "Fail if generated files are out of date instead of writing them")
	addOverrideFlags(generateCmd, &genOverrides)
	f.StringArrayVarP(&genOverrides.outputs, "output", "o", nil, "Output as target=path (objc, swift, go); repeatable, replaces configured outputs")
	f.StringVar(&genOverrides.goPackage, "package", "", "Package name for go outputs given with --output")
	rootCmd.AddCommand(generateCmd)
}

// addOverrideFlags registers the flags shared by commands that build a
// symbol table.
func addOverrideFlags(cmd *cobra.Command, o *overrides) {
	f := cmd.Flags()
	f.StringArrayVar(&o.catalogs, "catalog", nil, "Asset catalog or manifest to read; repeatable, replaces configured catalogs")
	f.StringVar(&o.prefix, "prefix", "", "Identifier namespace prefix (default \"AC\")")
	f.StringVar(&o.collisions, "collisions", "", "Collision policy: fail or suffix")
}

// buildTable loads the catalogs of cfg and computes the symbol table.
func buildTable(cfg *config.Config, logger *slog.Logger) (*symbols.Table, error) {
	entries, err := catalog.LoadAll(cfg.Catalogs)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded catalogs", "catalogs", len(cfg.Catalogs), "entries", len(entries))

	return symbols.Build(entries, symbols.Options{
		Prefix:     cfg.Naming.Prefix,
		Collisions: symbols.Policy(cfg.Naming.Collisions),
	})
}

// runGenerate loads the configuration, builds the symbol table and writes
// (or checks) every output.
func runGenerate(ctx context.Context, path string, o overrides, check bool) ([]generator.Result, error) {
	cfg, err := loadConfig(path, o, true)
	if err != nil {
		return nil, err
	}

	if err := log.Init(cfg.Logging.Path, cfg.Logging.Level); err != nil {
		return nil, err
	}
	defer log.Close()
	logger := slog.Default().With("run", uuid.NewString())

	table, err := buildTable(cfg, logger)
	if err != nil {
		var cerr *symbols.CollisionError
		if errors.As(err, &cerr) {
			logger.Error("identifier collision", "identifier", cerr.Identifier, "first", cerr.First, "second", cerr.Second)
		}
		return nil, err
	}

	ui.PrintHeader(fmt.Sprintf("Generating symbols for %d assets", table.Len()))
	results, err := generator.Generate(ctx, cfg, table, generator.Options{Check: check, Logger: logger})

	var stale *generator.StaleError
	if err != nil && !errors.As(err, &stale) {
		return nil, err
	}
	for _, r := range results {
		switch {
		case check && r.Changed:
			ui.PrintError(r.Target, r.Path+" is out of date")
		case check || !r.Changed:
			ui.PrintSuccess(r.Target, r.Path+" (up to date)")
		default:
			ui.PrintSuccess(r.Target, r.Path)
		}
	}
	return results, err
}
