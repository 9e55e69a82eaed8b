// Package edit applies incremental changes to a repaired level. Every
// operation works on a copy and either returns a level that still satisfies
// the repaired-level invariants or an *EditError.
package edit

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Ko-stant/dungeon-layout-engine/internal/geometry"
	"github.com/Ko-stant/dungeon-layout-engine/internal/level"
	"github.com/Ko-stant/dungeon-layout-engine/internal/repair"
)

const (
	minRoomSize      = 2
	minCorridorWidth = 1
	minRooms         = 2
)

// Op is a single edit. The concrete types below are the only implementations.
type Op interface {
	Name() string
	apply(lvl *level.Level) error
}

// Apply runs op against a copy of lvl. On error the returned level is the
// unchanged input.
func Apply(lvl level.Level, op Op) (level.Level, error) {
	if op == nil {
		return lvl, newError(CodeUnknownOp, "no operation given")
	}
	next := lvl.Clone()
	if err := op.apply(&next); err != nil {
		return lvl, err
	}
	fitGrid(&next)
	return next, nil
}

type AddRoom struct {
	Room level.Room `json:"room"`
}

func (AddRoom) Name() string { return "add_room" }

func (op AddRoom) apply(lvl *level.Level) error {
	room := op.Room
	room.ID = strings.TrimSpace(room.ID)
	if room.ID == "" {
		room.ID = nextID(lvl, "room")
	}
	if lvl.RoomIndex(room.ID) >= 0 {
		return newError(CodeDuplicateID, "room %q already exists", room.ID)
	}
	if err := checkSize(room.Width, room.Height); err != nil {
		return err
	}
	if strings.TrimSpace(room.Name) == "" {
		room.Name = room.ID
	}
	room.Tags = repair.CleanTags(room.Tags)
	if room.Material != nil {
		m, err := cleanMaterial(*room.Material)
		if err != nil {
			return err
		}
		room.Material = m
	}
	if err := checkClear(lvl, room); err != nil {
		return err
	}
	lvl.Rooms = append(lvl.Rooms, room)
	return nil
}

// cleanMaterial normalizes colors the way repair does, but rejects a color
// that does not parse instead of dropping it.
func cleanMaterial(m level.Material) (*level.Material, error) {
	out := level.Material{
		FloorTexture: strings.TrimSpace(m.FloorTexture),
		WallTexture:  strings.TrimSpace(m.WallTexture),
	}
	var err error
	if out.FloorColor, err = repair.NormalizeColor(m.FloorColor); err != nil {
		return nil, newError(CodeInvalid, "floor color %q: %v", m.FloorColor, err)
	}
	if out.WallColor, err = repair.NormalizeColor(m.WallColor); err != nil {
		return nil, newError(CodeInvalid, "wall color %q: %v", m.WallColor, err)
	}
	if out == (level.Material{}) {
		return nil, nil
	}
	return &out, nil
}

type RemoveRoom struct {
	RoomID string `json:"roomId"`
}

func (RemoveRoom) Name() string { return "remove_room" }

// apply drops the room with every corridor, POI and critical path entry that
// refers to it. A spawn or goal lost this way is re-placed the way repair
// places a missing one.
func (op RemoveRoom) apply(lvl *level.Level) error {
	idx := lvl.RoomIndex(op.RoomID)
	if idx < 0 {
		return newError(CodeNotFound, "room %q not found", op.RoomID)
	}
	if len(lvl.Rooms) <= minRooms {
		return newError(CodeTooFewRooms, "a level needs at least %d rooms", minRooms)
	}

	lvl.Rooms = slices.Delete(lvl.Rooms, idx, idx+1)
	lvl.Corridors = slices.DeleteFunc(lvl.Corridors, func(c level.Corridor) bool { return c.Touches(op.RoomID) })
	lvl.CriticalPath = slices.DeleteFunc(lvl.CriticalPath, func(id string) bool { return id == op.RoomID })

	var lost []level.POIType
	lvl.POIs = slices.DeleteFunc(lvl.POIs, func(p level.POI) bool {
		if p.RoomID != op.RoomID {
			return false
		}
		if p.Type == level.POISpawn || p.Type == level.POIGoal {
			lost = append(lost, p.Type)
		}
		return true
	})
	for _, t := range lost {
		replacePOI(lvl, t)
	}

	if len(lvl.CriticalPath) < 2 {
		lvl.CriticalPath = lvl.CriticalPath[:0]
		for _, r := range lvl.Rooms {
			lvl.CriticalPath = append(lvl.CriticalPath, r.ID)
		}
	}
	return nil
}

type MoveRoom struct {
	RoomID string `json:"roomId"`
	GridX  int    `json:"gridX"`
	GridY  int    `json:"gridY"`
}

func (MoveRoom) Name() string { return "move_room" }

func (op MoveRoom) apply(lvl *level.Level) error {
	idx := lvl.RoomIndex(op.RoomID)
	if idx < 0 {
		return newError(CodeNotFound, "room %q not found", op.RoomID)
	}
	room := lvl.Rooms[idx]
	room.GridX, room.GridY = op.GridX, op.GridY
	return replaceRoom(lvl, idx, room)
}

type ResizeRoom struct {
	RoomID string `json:"roomId"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func (ResizeRoom) Name() string { return "resize_room" }

func (op ResizeRoom) apply(lvl *level.Level) error {
	idx := lvl.RoomIndex(op.RoomID)
	if idx < 0 {
		return newError(CodeNotFound, "room %q not found", op.RoomID)
	}
	if err := checkSize(op.Width, op.Height); err != nil {
		return err
	}
	room := lvl.Rooms[idx]
	room.Width, room.Height = op.Width, op.Height
	return replaceRoom(lvl, idx, room)
}

type AddCorridor struct {
	ID         string `json:"id"`
	FromRoom   string `json:"fromRoom"`
	ToRoom     string `json:"toRoom"`
	WidthCells int    `json:"widthCells"`
}

func (AddCorridor) Name() string { return "add_corridor" }

func (op AddCorridor) apply(lvl *level.Level) error {
	from, ok := lvl.RoomByID(op.FromRoom)
	if !ok {
		return newError(CodeNotFound, "room %q not found", op.FromRoom)
	}
	to, ok := lvl.RoomByID(op.ToRoom)
	if !ok {
		return newError(CodeNotFound, "room %q not found", op.ToRoom)
	}
	if from.ID == to.ID {
		return newError(CodeInvalid, "corridor cannot connect room %q to itself", from.ID)
	}

	id := strings.TrimSpace(op.ID)
	if id == "" {
		id = nextID(lvl, "corridor")
	}
	if lvl.CorridorIndex(id) >= 0 {
		return newError(CodeDuplicateID, "corridor %q already exists", id)
	}
	width := max(minCorridorWidth, op.WidthCells)

	lvl.Corridors = append(lvl.Corridors, level.Corridor{
		ID:         id,
		FromRoom:   from.ID,
		ToRoom:     to.ID,
		Segments:   geometry.Route(from.Rect(), to.Rect(), width),
		WidthCells: width,
	})
	return nil
}

type RemoveCorridor struct {
	CorridorID string `json:"corridorId"`
}

func (RemoveCorridor) Name() string { return "remove_corridor" }

func (op RemoveCorridor) apply(lvl *level.Level) error {
	idx := lvl.CorridorIndex(op.CorridorID)
	if idx < 0 {
		return newError(CodeNotFound, "corridor %q not found", op.CorridorID)
	}
	lvl.Corridors = slices.Delete(lvl.Corridors, idx, idx+1)
	return nil
}

type AddPOI struct {
	POI level.POI `json:"poi"`
}

func (AddPOI) Name() string { return "add_poi" }

func (op AddPOI) apply(lvl *level.Level) error {
	p := op.POI
	if !p.Type.Valid() {
		return newError(CodeInvalid, "unknown poi type %q", p.Type)
	}
	if lvl.RoomIndex(p.RoomID) < 0 {
		return newError(CodeNotFound, "room %q not found", p.RoomID)
	}
	if p.Type == level.POISpawn || p.Type == level.POIGoal {
		if existing, ok := lvl.POIOfType(p.Type); ok {
			return newError(CodePOIConflict, "level already has %s poi %q", p.Type, existing.ID)
		}
	}
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		p.ID = nextID(lvl, string(p.Type))
	}
	if poiIndex(lvl, p.ID) >= 0 {
		return newError(CodeDuplicateID, "poi %q already exists", p.ID)
	}
	lvl.POIs = append(lvl.POIs, p)
	return nil
}

type RemovePOI struct {
	POIID string `json:"poiId"`
}

func (RemovePOI) Name() string { return "remove_poi" }

func (op RemovePOI) apply(lvl *level.Level) error {
	idx := poiIndex(lvl, op.POIID)
	if idx < 0 {
		return newError(CodeNotFound, "poi %q not found", op.POIID)
	}
	if t := lvl.POIs[idx].Type; t == level.POISpawn || t == level.POIGoal {
		return newError(CodePOIRequired, "the %s poi cannot be removed", t)
	}
	lvl.POIs = slices.Delete(lvl.POIs, idx, idx+1)
	return nil
}

// replaceRoom swaps in a changed room and re-routes every corridor touching
// it, since an opening's position follows the room's edges.
func replaceRoom(lvl *level.Level, idx int, room level.Room) error {
	if err := checkClear(lvl, room); err != nil {
		return err
	}
	lvl.Rooms[idx] = room

	for i, c := range lvl.Corridors {
		if !c.Touches(room.ID) {
			continue
		}
		from, _ := lvl.RoomByID(c.FromRoom)
		to, _ := lvl.RoomByID(c.ToRoom)
		lvl.Corridors[i].Segments = geometry.Route(from.Rect(), to.Rect(), c.WidthCells)
	}
	return nil
}

func checkSize(w, h int) error {
	if w < minRoomSize || h < minRoomSize {
		return newError(CodeInvalid, "room size %dx%d is below the %dx%d minimum", w, h, minRoomSize, minRoomSize)
	}
	return nil
}

func checkClear(lvl *level.Level, room level.Room) error {
	for _, other := range lvl.Rooms {
		if other.ID != room.ID && other.Rect().Intersects(room.Rect()) {
			return newError(CodeOverlap, "room %q would overlap room %q", room.ID, other.ID)
		}
	}
	return nil
}

func replacePOI(lvl *level.Level, t level.POIType) {
	tag, fallback := level.TagEntry, lvl.Rooms[0]
	if t == level.POIGoal {
		tag, fallback = level.TagGoal, lvl.Rooms[len(lvl.Rooms)-1]
	}
	room, ok := lvl.FirstRoomWithTag(tag)
	if !ok {
		room = fallback
	}
	id := string(t)
	for n := 2; poiIndex(lvl, id) >= 0; n++ {
		id = fmt.Sprintf("%s-%d", t, n)
	}
	p := level.POI{ID: id, Type: t, RoomID: room.ID}
	if t == level.POISpawn {
		lvl.POIs = append([]level.POI{p}, lvl.POIs...)
		return
	}
	lvl.POIs = append(lvl.POIs, p)
}

func poiIndex(lvl *level.Level, id string) int {
	return slices.IndexFunc(lvl.POIs, func(p level.POI) bool { return p.ID == id })
}

// nextID returns the first "<prefix>-N" not used by any room, corridor or POI.
func nextID(lvl *level.Level, prefix string) string {
	for n := 1; ; n++ {
		id := fmt.Sprintf("%s-%d", prefix, n)
		if lvl.RoomIndex(id) < 0 && lvl.CorridorIndex(id) < 0 && poiIndex(lvl, id) < 0 {
			return id
		}
	}
}

// fitGrid grows the declared grid so every room fits inside it.
func fitGrid(lvl *level.Level) {
	minX, minY, maxX, maxY := 0, 0, 0, 0
	for _, room := range lvl.Rooms {
		r := room.Rect()
		minX, minY = min(minX, r.MinX()), min(minY, r.MinY())
		maxX, maxY = max(maxX, r.MaxX()), max(maxY, r.MaxY())
	}
	lvl.Grid.TotalWidth = max(lvl.Grid.TotalWidth, maxX-minX)
	lvl.Grid.TotalHeight = max(lvl.Grid.TotalHeight, maxY-minY)
}
