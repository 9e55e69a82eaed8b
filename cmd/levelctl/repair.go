package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ko-stant/dungeon-layout-engine/internal/repair"
)

func repairCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repair FILE",
		Short: "Repair a raw level layout and print the valid level as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runRepair,
	}
	cmd.Flags().Bool("strict", false, "fail when repair reports any warning")
	return cmd
}

func runRepair(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	res, err := repairFile(cmd, cfg, args[0])
	if err != nil {
		return err
	}
	if err := writeJSON(cmd.OutOrStdout(), res.Level); err != nil {
		return err
	}

	if strict, _ := cmd.Flags().GetBool("strict"); strict {
		if n := len(repair.Warnings(res.Issues)); n > 0 {
			return fmt.Errorf("repair reported %d warnings", n)
		}
	}
	return nil
}
