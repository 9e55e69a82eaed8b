package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Ko-stant/dungeon-layout-engine/internal/placement"
	"github.com/Ko-stant/dungeon-layout-engine/internal/scene"
)

func placeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "place LEVEL OBJECTS",
		Short: "Place the objects listed in a YAML or JSON file into a level",
		Args:  cobra.ExactArgs(2),
		RunE:  runPlace,
	}
}

func runPlace(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	res, err := repairFile(cmd, cfg, args[0])
	if err != nil {
		return err
	}
	objects, err := loadObjects(args[1])
	if err != nil {
		return err
	}

	placed := placement.Place(res.Level, objects, scene.TransformFor(res.Level), cfg.Placement)
	for _, s := range placed.Skipped {
		fmt.Fprintf(cmd.ErrOrStderr(), "  - skipped %s: %s\n", s.ObjectID, s.Reason)
	}
	return writeJSON(cmd.OutOrStdout(), placed)
}

// loadObjects reads a list of objects. YAML is a superset of JSON, so one
// decoder covers both.
func loadObjects(path string) ([]placement.Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading objects: %w", err)
	}
	var objects []placement.Object
	if err := yaml.Unmarshal(data, &objects); err != nil {
		return nil, fmt.Errorf("loading objects: %w", err)
	}
	return objects, nil
}
