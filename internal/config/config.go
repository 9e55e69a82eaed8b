package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Ko-stant/dungeon-layout-engine/internal/level"
	"github.com/Ko-stant/dungeon-layout-engine/internal/placement"
	"github.com/Ko-stant/dungeon-layout-engine/internal/repair"
	"github.com/Ko-stant/dungeon-layout-engine/internal/scene"
	"github.com/Ko-stant/dungeon-layout-engine/internal/session"
)

const (
	EnvPort   = "APP_PORT"
	EnvConfig = "LEVEL_CONFIG"
)

type Config struct {
	Server    ServerConfig      `yaml:"server"`
	Grid      GridConfig        `yaml:"grid"`
	Scene     scene.Options     `yaml:"scene"`
	Placement placement.Options `yaml:"placement"`
}

type ServerConfig struct {
	Port            string        `yaml:"port"`
	MetricsInterval time.Duration `yaml:"metrics_interval"`
	DemoLevel       bool          `yaml:"demo_level"`
}

// GridConfig is the grid repair falls back to when a level omits its own.
type GridConfig struct {
	CellSize    float64 `yaml:"cell_size"`
	TotalWidth  int     `yaml:"total_width"`
	TotalHeight int     `yaml:"total_height"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8080",
			MetricsInterval: 5 * time.Minute,
			DemoLevel:       true,
		},
		Grid: GridConfig{
			CellSize:    level.DefaultCellSize,
			TotalWidth:  level.DefaultTotalWidth,
			TotalHeight: level.DefaultTotalHeight,
		},
		Scene:     scene.DefaultOptions(),
		Placement: placement.DefaultOptions(),
	}
}

// Load reads a YAML config file on top of the defaults. Keys missing from
// the file keep their default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// FromEnv loads the file named by LEVEL_CONFIG, or the defaults when it is
// unset, then applies APP_PORT.
func FromEnv() (*Config, error) {
	cfg := Default()
	if path := os.Getenv(EnvConfig); path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if port := os.Getenv(EnvPort); port != "" {
		cfg.Server.Port = port
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	port, err := strconv.Atoi(strings.TrimSpace(c.Server.Port))
	if err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("server port %q is not a valid port", c.Server.Port))
	}
	if c.Server.MetricsInterval < 0 {
		errs = append(errs, fmt.Errorf("metrics interval must not be negative"))
	}
	if c.Grid.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("grid cell size must be positive"))
	}
	if c.Grid.TotalWidth < 1 || c.Grid.TotalHeight < 1 {
		errs = append(errs, fmt.Errorf("grid dimensions must be at least 1"))
	}
	if c.Scene.WallHeight <= 0 || c.Scene.WallThickness <= 0 {
		errs = append(errs, fmt.Errorf("wall height and thickness must be positive"))
	}
	if c.Scene.MinCameraHeight < 0 || c.Scene.MinCameraDistance < 0 {
		errs = append(errs, fmt.Errorf("camera minimums must not be negative"))
	}
	if c.Placement.AntagonistScale <= 0 {
		errs = append(errs, fmt.Errorf("antagonist scale must be positive"))
	}
	if c.Placement.PropRadius < 0 {
		errs = append(errs, fmt.Errorf("prop radius must not be negative"))
	}
	return errors.Join(errs...)
}

func (c *Config) RepairOptions() repair.Options {
	return repair.Options{DefaultGrid: level.GridConfig{
		CellSize:    c.Grid.CellSize,
		TotalWidth:  c.Grid.TotalWidth,
		TotalHeight: c.Grid.TotalHeight,
	}}
}

func (c *Config) SessionOptions() session.Options {
	return session.Options{
		Repair:    c.RepairOptions(),
		Scene:     c.Scene,
		Placement: c.Placement,
	}
}
