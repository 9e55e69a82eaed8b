package scene

import (
	"math"

	"github.com/Ko-stant/dungeon-layout-engine/internal/level"
)

type Options struct {
	WallHeight        float64 `json:"wallHeight" yaml:"wall_height"`
	WallThickness     float64 `json:"wallThickness" yaml:"wall_thickness"`
	MinCameraHeight   float64 `json:"minCameraHeight" yaml:"min_camera_height"`
	MinCameraDistance float64 `json:"minCameraDistance" yaml:"min_camera_distance"`
}

func DefaultOptions() Options {
	return Options{
		WallHeight:        3.0,
		WallThickness:     0.2,
		MinCameraHeight:   12,
		MinCameraDistance: 12,
	}
}

// Assemble derives the full renderable scene for a level. It does not
// modify lvl and returns the same scene for the same input.
func Assemble(lvl level.Level, opts Options) Scene {
	t := TransformFor(lvl)
	sc := Scene{
		CellSize:   t.CellSize,
		Rooms:      make([]RoomFloor, 0, len(lvl.Rooms)),
		Corridors:  []CorridorRibbon{},
		Junctions:  []FloorPatch{},
		Walls:      []WallSpan{},
		POIMarkers: make([]POIMarker, 0, len(lvl.POIs)),
	}

	for _, room := range lvl.Rooms {
		style := ResolveStyle(room)
		sc.Rooms = append(sc.Rooms, RoomFloor{
			RoomID:   room.ID,
			Name:     room.Name,
			Position: t.RoomCenter(room),
			Size:     Size{W: t.Cells(room.Width), D: t.Cells(room.Height)},
			Style:    style,
		})
		sc.Walls = append(sc.Walls, roomWalls(room, lvl.Corridors, t, style, opts)...)
	}

	for _, c := range lvl.Corridors {
		sc.Corridors = append(sc.Corridors, ribbons(c, t)...)
		if patch, ok := junction(c, t); ok {
			sc.Junctions = append(sc.Junctions, patch)
		}
	}

	for _, p := range lvl.POIs {
		room, ok := lvl.RoomByID(p.RoomID)
		if !ok {
			continue
		}
		ms, ok := markerStyles[p.Type]
		if !ok {
			ms = markerStyle{Color: "#ffffff", Label: string(p.Type)}
		}
		sc.POIMarkers = append(sc.POIMarkers, POIMarker{
			POIID:    p.ID,
			Type:     p.Type,
			RoomID:   room.ID,
			Position: t.RoomCenter(room),
			Color:    ms.Color,
			Label:    ms.Label,
		})
	}

	sc.Camera = Frame(LevelBounds(lvl.Rooms, t), opts)
	return sc
}

func ribbons(c level.Corridor, t Transform) []CorridorRibbon {
	var out []CorridorRibbon
	for i, s := range c.Segments {
		if s.Length() == 0 {
			continue
		}
		start := t.GridToWorld(s.StartX, s.StartY)
		end := t.GridToWorld(s.EndX, s.EndY)
		d := end.Sub(start)
		out = append(out, CorridorRibbon{
			CorridorID:   c.ID,
			SegmentIndex: i,
			Start:        start,
			End:          end,
			Center:       start.Add(end).Mul(0.5),
			Length:       d.Len(),
			Width:        t.Cells(c.WidthCells),
			AngleY:       -math.Atan2(d.Z(), d.X()),
			Color:        corridorColor,
		})
	}
	return out
}

// junction returns the square patch covering the elbow of a two-segment
// corridor, where the ribbons would otherwise leave a notch.
func junction(c level.Corridor, t Transform) (FloorPatch, bool) {
	if len(c.Segments) != 2 {
		return FloorPatch{}, false
	}
	a, b := c.Segments[0], c.Segments[1]
	if a.Orientation() == b.Orientation() || a.End() != b.Start() || a.Length() == 0 || b.Length() == 0 {
		return FloorPatch{}, false
	}
	corner := a.End()
	w := t.Cells(c.WidthCells)
	return FloorPatch{
		CorridorID: c.ID,
		Position:   t.GridToWorld(corner.X, corner.Y),
		Size:       Size{W: w, D: w},
		Color:      corridorColor,
	}, true
}
