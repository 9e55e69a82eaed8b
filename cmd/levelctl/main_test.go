package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Ko-stant/dungeon-layout-engine/internal/level"
	"github.com/Ko-stant/dungeon-layout-engine/internal/placement"
	"github.com/Ko-stant/dungeon-layout-engine/internal/scene"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func demoFile(t *testing.T) string {
	t.Helper()
	data, err := json.Marshal(level.DemoLevel())
	if err != nil {
		t.Fatalf("marshal demo: %v", err)
	}
	return writeFile(t, "demo.json", string(data))
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("LEVEL_CONFIG", "")
	t.Setenv("APP_PORT", "")
	var stdout, stderr bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRepairCommand(t *testing.T) {
	stdout, stderr, err := run(t, "repair", demoFile(t))
	if err != nil {
		t.Fatalf("repair failed: %v", err)
	}
	var lvl level.Level
	if err := json.Unmarshal([]byte(stdout), &lvl); err != nil {
		t.Fatalf("stdout is not a level: %v", err)
	}
	if len(lvl.Rooms) != 4 {
		t.Errorf("expected 4 rooms, got %d", len(lvl.Rooms))
	}
	if !strings.Contains(stderr, "corridor_dangling") {
		t.Errorf("issues not printed to stderr: %s", stderr)
	}

	if _, _, err := run(t, "repair", "--strict", demoFile(t)); err == nil {
		t.Errorf("strict repair of the demo level should fail")
	}
}

func TestRepairCommandErrors(t *testing.T) {
	if _, _, err := run(t, "repair", filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Errorf("expected error for missing file")
	}
	one := writeFile(t, "one.yaml", "rooms:\n  - {id: a, width: 3, height: 3}\n")
	if _, _, err := run(t, "repair", one); err == nil {
		t.Errorf("expected error for single-room level")
	}
}

func TestAssembleCommand(t *testing.T) {
	stdout, _, err := run(t, "assemble", demoFile(t))
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	var sc scene.Scene
	if err := json.Unmarshal([]byte(stdout), &sc); err != nil {
		t.Fatalf("stdout is not a scene: %v", err)
	}
	if len(sc.Rooms) != 4 || len(sc.Walls) == 0 {
		t.Errorf("unexpected scene: %d floors, %d walls", len(sc.Rooms), len(sc.Walls))
	}
}

func TestAssembleCommandUsesConfig(t *testing.T) {
	cfg := writeFile(t, "layout.yaml", "scene:\n  wall_height: 5\n")
	stdout, _, err := run(t, "assemble", "--config", cfg, demoFile(t))
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	var sc scene.Scene
	if err := json.Unmarshal([]byte(stdout), &sc); err != nil {
		t.Fatalf("stdout is not a scene: %v", err)
	}
	if sc.Walls[0].Height != 5 {
		t.Errorf("expected wall height from config, got %v", sc.Walls[0].Height)
	}
}

func TestPlaceCommand(t *testing.T) {
	objects := writeFile(t, "objects.yaml", "- {id: hero, kind: protagonist, ready: true}\n- {id: idol, kind: prop, placementTags: [armory], ready: true}\n")
	stdout, stderr, err := run(t, "place", demoFile(t), objects)
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}
	var res placement.Result
	if err := json.Unmarshal([]byte(stdout), &res); err != nil {
		t.Fatalf("stdout is not a placement result: %v", err)
	}
	if len(res.Placed) != 1 || res.Placed[0].ObjectID != "hero" {
		t.Errorf("unexpected placements %+v", res.Placed)
	}
	if !strings.Contains(stderr, "skipped idol") {
		t.Errorf("skip not reported: %s", stderr)
	}
}

func TestVersionCommand(t *testing.T) {
	stdout, stderr, err := run(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(stdout+stderr, version) {
		t.Errorf("version not printed")
	}
}
