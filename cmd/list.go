package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/assetsym/assetsym/internal/symbols"
	"github.com/assetsym/assetsym/internal/ui"
	"github.com/assetsym/assetsym/pkg/log"
)

var (
	listOverrides overrides
	listJSON      bool
)

// listCmd prints the symbol table without writing any file.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the identifier generated for every asset",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := runList(configPath, listOverrides)
		if err != nil {
			return err
		}
		if listJSON {
			return printTableJSON(cmd, table)
		}
		ui.PrintHeader(fmt.Sprintf("%d symbols", table.Len()))
		for _, s := range table.Symbols {
			ui.PrintRow(s.Identifier, fmt.Sprintf("%q", s.CatalogKey))
		}
		return nil
	},
}

func init() {
	addOverrideFlags(listCmd, &listOverrides)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print the table as JSON")
	rootCmd.AddCommand(listCmd)
}

// runList builds the symbol table of the configured catalogs. The output
// list is not required.
func runList(path string, o overrides) (*symbols.Table, error) {
	cfg, err := loadConfig(path, o, false)
	if err != nil {
		return nil, err
	}
	if err := log.Init(cfg.Logging.Path, cfg.Logging.Level); err != nil {
		return nil, err
	}
	defer log.Close()
	return buildTable(cfg, slog.Default())
}

type symbolJSON struct {
	Kind       string `json:"kind"`
	Name       string `json:"name"`
	Key        string `json:"key"`
	Identifier string `json:"identifier"`
	Swift      string `json:"swift"`
}

func printTableJSON(cmd *cobra.Command, table *symbols.Table) error {
	out := make([]symbolJSON, 0, table.Len())
	for _, s := range table.Symbols {
		out = append(out, symbolJSON{
			Kind:       string(s.Kind),
			Name:       s.LogicalName,
			Key:        s.CatalogKey,
			Identifier: s.Identifier,
			Swift:      s.SwiftName,
		})
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
