package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/assetsym/assetsym/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the assetsym version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "assetsym %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
