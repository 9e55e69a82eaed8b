package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoad(t *testing.T) {
	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := writeTempConfig(t, "server:\n  port: \"9090\"\n  metrics_interval: 30s\nscene:\n  wall_height: 4.5\n")
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Server.Port != "9090" || cfg.Server.MetricsInterval != 30*time.Second {
			t.Errorf("server section not applied: %+v", cfg.Server)
		}
		if cfg.Scene.WallHeight != 4.5 {
			t.Errorf("wall height %v", cfg.Scene.WallHeight)
		}
		if cfg.Scene.WallThickness != Default().Scene.WallThickness {
			t.Errorf("wall thickness lost its default: %v", cfg.Scene.WallThickness)
		}
		if cfg.Grid.CellSize != Default().Grid.CellSize {
			t.Errorf("grid lost its default: %+v", cfg.Grid)
		}
	})

	t.Run("grid and placement", func(t *testing.T) {
		path := writeTempConfig(t, "grid:\n  cell_size: 3\n  total_width: 100\n  total_height: 80\nplacement:\n  antagonist_scale: 2\n")
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		opts := cfg.SessionOptions()
		if opts.Repair.DefaultGrid.CellSize != 3 || opts.Repair.DefaultGrid.TotalWidth != 100 {
			t.Errorf("repair options %+v", opts.Repair)
		}
		if opts.Placement.AntagonistScale != 2 {
			t.Errorf("placement options %+v", opts.Placement)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		path := writeTempConfig(t, "server:\n  port: \"99999\"\ngrid:\n  cell_size: -1\n")
		_, err := Load(path)
		if err == nil {
			t.Fatalf("expected error")
		}
		for _, want := range []string{"port", "cell size"} {
			if !strings.Contains(err.Error(), want) {
				t.Errorf("error %q does not mention %s", err, want)
			}
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeTempConfig(t, "server: [unterminated\n")
		if _, err := Load(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestFromEnv(t *testing.T) {
	path := writeTempConfig(t, "server:\n  port: \"7000\"\n")
	t.Setenv(EnvConfig, path)
	t.Setenv(EnvPort, "7100")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Server.Port != "7100" {
		t.Errorf("APP_PORT should win over the file, got %s", cfg.Server.Port)
	}

	t.Setenv(EnvConfig, "")
	t.Setenv(EnvPort, "abc")
	if _, err := FromEnv(); err == nil {
		t.Errorf("expected invalid port error")
	}
}
