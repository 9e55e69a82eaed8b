package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Ko-stant/dungeon-layout-engine/internal/config"
	"github.com/Ko-stant/dungeon-layout-engine/internal/level"
	"github.com/Ko-stant/dungeon-layout-engine/internal/repair"
)

// loadConfig reads --config when given, otherwise the environment.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		return config.Load(path)
	}
	return config.FromEnv()
}

// repairFile loads and repairs a level file, printing its issues to stderr.
func repairFile(cmd *cobra.Command, cfg *config.Config, path string) (*repair.Result, error) {
	raw, err := level.LoadRawLevel(path)
	if err != nil {
		return nil, err
	}
	res, err := repair.RepairWith(raw, cfg.RepairOptions())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	printIssues(cmd.ErrOrStderr(), res.Issues)
	return res, nil
}

func printIssues(out io.Writer, issues []repair.Issue) {
	for _, issue := range issues {
		location := issue.Entity
		if location == "" {
			location = "level"
		}
		fmt.Fprintf(out, "  - [%s] %s: %s (%s)\n", issue.Severity, location, issue.Message, issue.Code)
	}
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
