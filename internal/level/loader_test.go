package level

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadRawLevel(t *testing.T) {
	t.Run("json with fractional numbers", func(t *testing.T) {
		path := writeTempLevel(t, "level.json", `{
  "rooms": [
    {"id": "a", "gridX": 0.4, "gridY": 1.6, "width": 3.5, "height": 1, "tags": ["entry"]},
    {"id": "b", "gridX": 10, "gridY": 0, "width": 4, "height": 4}
  ],
  "corridors": [{"id": "c1", "fromRoom": "a", "toRoom": "b", "startX": 3, "endX": 10}],
  "pois": []
}`)
		raw, err := LoadRawLevel(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(raw.Rooms) != 2 || raw.Rooms[0].GridY != 1.6 {
			t.Fatalf("unexpected rooms: %+v", raw.Rooms)
		}
		if raw.Corridors[0].StartX == nil || *raw.Corridors[0].StartX != 3 {
			t.Fatalf("expected legacy startX to decode")
		}
		if raw.Grid != nil {
			t.Fatalf("expected missing grid to stay nil")
		}
	})

	t.Run("yaml", func(t *testing.T) {
		path := writeTempLevel(t, "level.yaml", "grid:\n  cellSize: 3\nrooms:\n  - id: a\n    gridX: 0\n    gridY: 0\n    width: 4\n    height: 3\n  - id: b\n    gridX: 0\n    gridY: 6\n    width: 4\n    height: 3\ncorridors:\n  - id: c\n    fromRoom: a\n    toRoom: b\n    widthCells: 2\n")
		raw, err := LoadRawLevel(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if raw.Grid == nil || raw.Grid.CellSize != 3 {
			t.Fatalf("expected grid cell size 3, got %+v", raw.Grid)
		}
		if raw.Corridors[0].WidthCells == nil || *raw.Corridors[0].WidthCells != 2 {
			t.Fatalf("expected widthCells 2")
		}
	})

	t.Run("malformed", func(t *testing.T) {
		path := writeTempLevel(t, "level.json", "{rooms: [")
		if _, err := LoadRawLevel(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadRawLevel(filepath.Join(t.TempDir(), "nope.json")); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestLevelRawRoundTrip(t *testing.T) {
	w := 2.0
	lvl := Level{
		Grid: GridConfig{CellSize: 2, TotalWidth: 64, TotalHeight: 64},
		Rooms: []Room{
			{ID: "a", GridX: 0, GridY: 0, Width: 4, Height: 3, Tags: []string{TagEntry}, Material: &Material{FloorColor: "#112233"}},
			{ID: "b", GridX: 0, GridY: 6, Width: 4, Height: 3, Tags: []string{TagGoal}},
		},
		Corridors: []Corridor{{ID: "c", FromRoom: "a", ToRoom: "b", WidthCells: 2}},
		POIs:      []POI{{ID: "p", Type: POISpawn, RoomID: "a"}},
	}
	raw := lvl.Raw()
	if raw.Rooms[0].Material == lvl.Rooms[0].Material {
		t.Fatalf("expected material to be copied")
	}
	if *raw.Corridors[0].WidthCells != w {
		t.Fatalf("expected width %v, got %v", w, *raw.Corridors[0].WidthCells)
	}
	if raw.POIs[0].Type != "spawn" {
		t.Fatalf("unexpected poi type %q", raw.POIs[0].Type)
	}
}

func TestLevelClone(t *testing.T) {
	lvl := Level{
		Rooms: []Room{{ID: "a", Width: 2, Height: 2, Tags: []string{TagMid}}},
		POIs:  []POI{{ID: "p", Type: POIGoal, RoomID: "a"}},
	}
	cp := lvl.Clone()
	cp.POIs[0].RoomID = "b"
	cp.Rooms[0].Tags[0] = "changed"
	cp.Rooms[0].GridX = 99
	if lvl.Rooms[0].Tags[0] == "changed" || lvl.Rooms[0].GridX == 99 || lvl.POIs[0].RoomID == "b" {
		t.Fatalf("clone shares state with original")
	}
}

func writeTempLevel(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write temp level: %v", err)
	}
	return path
}
