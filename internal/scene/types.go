package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Ko-stant/dungeon-layout-engine/internal/level"
)

// Size is a floor footprint in meters: W along world X, D along world Z.
type Size struct {
	W float64 `json:"w"`
	D float64 `json:"d"`
}

type RoomFloor struct {
	RoomID   string     `json:"roomId"`
	Name     string     `json:"name"`
	Position mgl64.Vec3 `json:"position"`
	Size     Size       `json:"size"`
	Style    Style      `json:"style"`
}

type WallSpan struct {
	RoomID    string     `json:"roomId"`
	Side      Side       `json:"side"`
	Start     mgl64.Vec3 `json:"start"`
	End       mgl64.Vec3 `json:"end"`
	Center    mgl64.Vec3 `json:"center"`
	Length    float64    `json:"length"`
	Height    float64    `json:"height"`
	Thickness float64    `json:"thickness"`
	Color     string     `json:"color"`
}

// CorridorRibbon is the floor strip under one corridor segment. AngleY is the
// rotation about the up axis, in radians, that aligns the strip's length with
// world X.
type CorridorRibbon struct {
	CorridorID   string     `json:"corridorId"`
	SegmentIndex int        `json:"segmentIndex"`
	Start        mgl64.Vec3 `json:"start"`
	End          mgl64.Vec3 `json:"end"`
	Center       mgl64.Vec3 `json:"center"`
	Length       float64    `json:"length"`
	Width        float64    `json:"width"`
	AngleY       float64    `json:"angleY"`
	Color        string     `json:"color"`
}

// FloorPatch fills the elbow where the two segments of an L-shaped corridor
// meet.
type FloorPatch struct {
	CorridorID string     `json:"corridorId"`
	Position   mgl64.Vec3 `json:"position"`
	Size       Size       `json:"size"`
	Color      string     `json:"color"`
}

type POIMarker struct {
	POIID    string        `json:"poiId"`
	Type     level.POIType `json:"type"`
	RoomID   string        `json:"roomId"`
	Position mgl64.Vec3    `json:"position"`
	Color    string        `json:"color"`
	Label    string        `json:"label"`
}

type Bounds struct {
	Min mgl64.Vec3 `json:"min"`
	Max mgl64.Vec3 `json:"max"`
}

func (b Bounds) Width() float64 { return b.Max.X() - b.Min.X() }
func (b Bounds) Depth() float64 { return b.Max.Z() - b.Min.Z() }

func (b Bounds) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

type CameraFraming struct {
	Target   mgl64.Vec3 `json:"target"`
	Position mgl64.Vec3 `json:"position"`
	Height   float64    `json:"height"`
	Distance float64    `json:"distance"`
	Bounds   Bounds     `json:"bounds"`
}

// Scene is everything a renderer needs to draw a level. It is derived in full
// from a level.Level and is never patched; edits re-run Assemble.
type Scene struct {
	CellSize   float64          `json:"cellSize"`
	Rooms      []RoomFloor      `json:"rooms"`
	Corridors  []CorridorRibbon `json:"corridors"`
	Junctions  []FloorPatch     `json:"junctions"`
	Walls      []WallSpan       `json:"walls"`
	POIMarkers []POIMarker      `json:"poiMarkers"`
	Camera     CameraFraming    `json:"camera"`
}
