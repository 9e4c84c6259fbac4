package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/assetsym/assetsym/internal/config"
	"github.com/assetsym/assetsym/internal/symbols"
	"github.com/assetsym/assetsym/internal/templates"
	"github.com/assetsym/assetsym/internal/ui"
)

var (
	initCatalog string
	initPrefix  string
	initForce   bool
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create an assetsym.yaml configuration",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		return runInit(dir, initCatalog, initPrefix, initForce)
	},
}

func init() {
	initCmd.Flags().StringVar(&initCatalog, "catalog", "Assets.xcassets", "Asset catalog to reference")
	initCmd.Flags().StringVar(&initPrefix, "prefix", symbols.DefaultPrefix, "Identifier namespace prefix")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing configuration")
	rootCmd.AddCommand(initCmd)
}

// runInit writes a starter configuration into dir and verifies it loads.
func runInit(dir, catalogPath, prefix string, force bool) error {
	dest := filepath.Join(dir, config.DefaultFile)
	if _, err := os.Stat(dest); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", dest)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data := struct {
		Catalog string
		Prefix  string
	}{
		Catalog: catalogPath,
		Prefix:  prefix,
	}
	if err := generateFileFromTemplate("assetsym.yaml.tmpl", dest, data); err != nil {
		return err
	}

	written, err := os.ReadFile(dest)
	if err != nil {
		return err
	}
	if _, err := config.Parse(written); err != nil {
		os.Remove(dest)
		return fmt.Errorf("generated configuration is invalid: %w", err)
	}

	ui.PrintSuccess("init", dest)
	fmt.Fprintln(ui.Out, "Next steps:")
	fmt.Fprintln(ui.Out, "  assetsym list      # (Preview the generated identifiers)")
	fmt.Fprintln(ui.Out, "  assetsym generate  # (Write the symbol files)")
	return nil
}

// generateFileFromTemplate creates a file at destPath using the specified template and data.
func generateFileFromTemplate(tmplName, destPath string, data interface{}) error {
	content, err := templates.Get(tmplName)
	if err != nil {
		return err
	}
	t, err := template.New(tmplName).Parse(content)
	if err != nil {
		return err
	}
	f, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return t.Execute(f, data)
}
