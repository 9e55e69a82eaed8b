package level

import "github.com/Ko-stant/dungeon-layout-engine/internal/geometry"

// Grid defaults used when a level arrives without a usable grid config.
const (
	DefaultCellSize    = 2.0
	DefaultTotalWidth  = 64
	DefaultTotalHeight = 64
)

// Room tags that carry meaning for styling and placement.
const (
	TagEntry  = "entry"
	TagGoal   = "goal"
	TagMid    = "mid"
	TagSecret = "secret"
)

type POIType string

const (
	POISpawn      POIType = "spawn"
	POIGoal       POIType = "goal"
	POITreasure   POIType = "treasure"
	POICheckpoint POIType = "checkpoint"
)

// Valid reports whether t is one of the known point-of-interest types.
func (t POIType) Valid() bool {
	switch t {
	case POISpawn, POIGoal, POITreasure, POICheckpoint:
		return true
	}
	return false
}

// GridConfig is fixed for the lifetime of a level.
type GridConfig struct {
	CellSize    float64 `json:"cellSize" yaml:"cellSize"`
	TotalWidth  int     `json:"totalWidth" yaml:"totalWidth"`
	TotalHeight int     `json:"totalHeight" yaml:"totalHeight"`
}

// Material overrides the tag-derived look of a room.
type Material struct {
	FloorColor   string `json:"floorColor,omitempty" yaml:"floorColor,omitempty"`
	WallColor    string `json:"wallColor,omitempty" yaml:"wallColor,omitempty"`
	FloorTexture string `json:"floorTexture,omitempty" yaml:"floorTexture,omitempty"`
	WallTexture  string `json:"wallTexture,omitempty" yaml:"wallTexture,omitempty"`
}

type Room struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	GridX    int       `json:"gridX"`
	GridY    int       `json:"gridY"`
	Width    int       `json:"width"`
	Height   int       `json:"height"`
	Tags     []string  `json:"tags"`
	Material *Material `json:"material,omitempty"`
}

func (r Room) Rect() geometry.Rect {
	return geometry.Rect{X: r.GridX, Y: r.GridY, Width: r.Width, Height: r.Height}
}

func (r Room) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

type Corridor struct {
	ID         string                     `json:"id"`
	FromRoom   string                     `json:"fromRoom"`
	ToRoom     string                     `json:"toRoom"`
	Segments   []geometry.CorridorSegment `json:"segments"`
	WidthCells int                        `json:"widthCells"`
}

// Touches reports whether the corridor attaches to the given room.
func (c Corridor) Touches(roomID string) bool {
	return c.FromRoom == roomID || c.ToRoom == roomID
}

type POI struct {
	ID      string  `json:"id"`
	Type    POIType `json:"type"`
	RoomID  string  `json:"roomId"`
	OffsetX float64 `json:"offsetX,omitempty"`
	OffsetY float64 `json:"offsetY,omitempty"`
}

// Level is a structurally valid layout. Values are treated as immutable
// snapshots: edits produce a new Level via Clone.
type Level struct {
	Grid         GridConfig `json:"grid"`
	Rooms        []Room     `json:"rooms"`
	Corridors    []Corridor `json:"corridors"`
	POIs         []POI      `json:"pois"`
	CriticalPath []string   `json:"criticalPath"`
}

func (l Level) RoomIndex(id string) int {
	for i := range l.Rooms {
		if l.Rooms[i].ID == id {
			return i
		}
	}
	return -1
}

func (l Level) RoomByID(id string) (Room, bool) {
	if i := l.RoomIndex(id); i >= 0 {
		return l.Rooms[i], true
	}
	return Room{}, false
}

// FirstRoomWithTag returns the first room, in declaration order, carrying tag.
func (l Level) FirstRoomWithTag(tag string) (Room, bool) {
	for _, r := range l.Rooms {
		if r.HasTag(tag) {
			return r, true
		}
	}
	return Room{}, false
}

func (l Level) RoomsWithTag(tag string) []Room {
	var out []Room
	for _, r := range l.Rooms {
		if r.HasTag(tag) {
			out = append(out, r)
		}
	}
	return out
}

func (l Level) POIOfType(t POIType) (POI, bool) {
	for _, p := range l.POIs {
		if p.Type == t {
			return p, true
		}
	}
	return POI{}, false
}

func (l Level) CorridorIndex(id string) int {
	for i := range l.Corridors {
		if l.Corridors[i].ID == id {
			return i
		}
	}
	return -1
}

func (l Level) CorridorsTouching(roomID string) []Corridor {
	var out []Corridor
	for _, c := range l.Corridors {
		if c.Touches(roomID) {
			out = append(out, c)
		}
	}
	return out
}

// Clone returns a deep copy that shares no slices with l.
func (l Level) Clone() Level {
	out := Level{Grid: l.Grid}
	out.Rooms = make([]Room, len(l.Rooms))
	for i, r := range l.Rooms {
		r.Tags = append([]string(nil), r.Tags...)
		if r.Material != nil {
			m := *r.Material
			r.Material = &m
		}
		out.Rooms[i] = r
	}
	out.Corridors = make([]Corridor, len(l.Corridors))
	for i, c := range l.Corridors {
		c.Segments = append([]geometry.CorridorSegment(nil), c.Segments...)
		out.Corridors[i] = c
	}
	out.POIs = append([]POI(nil), l.POIs...)
	out.CriticalPath = append([]string(nil), l.CriticalPath...)
	return out
}
