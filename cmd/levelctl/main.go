package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "levelctl",
		Short:        "Repair, assemble and place objects in grid level layouts",
		SilenceUsage: true,
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().String("config", "", "layout config YAML (defaults to $LEVEL_CONFIG)")
	root.AddCommand(repairCmd())
	root.AddCommand(assembleCmd())
	root.AddCommand(placeCmd())
	root.AddCommand(mcpCmd())
	root.AddCommand(versionCmd())
	return root
}
