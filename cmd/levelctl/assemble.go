package main

import (
	"github.com/spf13/cobra"

	"github.com/Ko-stant/dungeon-layout-engine/internal/scene"
)

func assembleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assemble FILE",
		Short: "Repair a level layout and print its scene geometry as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runAssemble,
	}
}

func runAssemble(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	res, err := repairFile(cmd, cfg, args[0])
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), scene.Assemble(res.Level, cfg.Scene))
}
