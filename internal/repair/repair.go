package repair

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/zyedidia/generic/mapset"

	"github.com/Ko-stant/dungeon-layout-engine/internal/geometry"
	"github.com/Ko-stant/dungeon-layout-engine/internal/level"
)

const (
	minRoomSize      = 2
	minCorridorWidth = 1
	nudgeGap         = 1
)

// Options controls the values repair falls back to.
type Options struct {
	DefaultGrid level.GridConfig
}

func DefaultOptions() Options {
	return Options{DefaultGrid: level.GridConfig{
		CellSize:    level.DefaultCellSize,
		TotalWidth:  level.DefaultTotalWidth,
		TotalHeight: level.DefaultTotalHeight,
	}}
}

// Result is the repaired level together with everything repair had to change
// to get there.
type Result struct {
	Level  level.Level `json:"level"`
	Issues []Issue     `json:"issues"`
}

// Repair turns an untrusted level description into a structurally valid
// level using the default options.
func Repair(raw *level.RawLevel) (*Result, error) {
	return RepairWith(raw, DefaultOptions())
}

// RepairWith turns an untrusted level description into a structurally valid
// level. Only a missing level or fewer than two usable rooms is fatal; every
// other anomaly is corrected and reported as an Issue.
//
// Repair is idempotent: repairing result.Level.Raw() yields the same level.
func RepairWith(raw *level.RawLevel, opts Options) (*Result, error) {
	if raw == nil {
		return nil, ErrMissingLevel
	}

	r := &repairer{opts: opts}
	lvl := level.Level{}
	lvl.Rooms = r.rooms(raw.Rooms)
	if len(lvl.Rooms) < 2 {
		return nil, fmt.Errorf("%w: %d usable", ErrInsufficientRooms, len(lvl.Rooms))
	}
	lvl.Rooms = r.separate(lvl.Rooms)
	lvl.Corridors = r.corridors(lvl, raw.Corridors)
	lvl.POIs = r.pois(lvl, raw.POIs)
	lvl.CriticalPath = r.criticalPath(lvl, raw.CriticalPath)
	lvl.Grid = r.grid(lvl, raw.Grid)
	r.checkReachability(lvl)

	return &Result{Level: lvl, Issues: r.issues}, nil
}

type repairer struct {
	opts   Options
	issues []Issue
}

func (r *repairer) report(sev Severity, code, entity, format string, args ...any) {
	r.issues = append(r.issues, Issue{
		Severity: sev,
		Code:     code,
		Entity:   entity,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (r *repairer) rooms(raws []level.RawRoom) []level.Room {
	ids := newIDAllocator()
	rooms := make([]level.Room, 0, len(raws))

	for i, rr := range raws {
		if !finite(rr.GridX, rr.GridY, rr.Width, rr.Height) {
			r.report(SeverityWarn, codeRoomDropped, rr.ID, "room %d has non-finite coordinates", i)
			continue
		}

		id := ids.claim(rr.ID, fmt.Sprintf("room-%d", i+1))
		if id != rr.ID {
			r.report(SeverityWarn, codeRoomRenamed, id, "room %d id %q renamed to %q", i, rr.ID, id)
		}

		room := level.Room{
			ID:     id,
			Name:   strings.TrimSpace(rr.Name),
			GridX:  int(math.Round(rr.GridX)),
			GridY:  int(math.Round(rr.GridY)),
			Width:  max(minRoomSize, int(math.Round(rr.Width))),
			Height: max(minRoomSize, int(math.Round(rr.Height))),
			Tags:   CleanTags(rr.Tags),
		}
		if room.Name == "" {
			room.Name = id
		}
		if float64(room.GridX) != rr.GridX || float64(room.GridY) != rr.GridY ||
			float64(room.Width) != rr.Width || float64(room.Height) != rr.Height {
			r.report(SeverityInfo, codeRoomCoerced, id, "room %s coerced to (%d,%d) %dx%d",
				id, room.GridX, room.GridY, room.Width, room.Height)
		}
		room.Material = r.material(id, rr.Material)
		rooms = append(rooms, room)
	}
	return rooms
}

// CleanTags trims and lowercases room tags, dropping blanks. A room left
// without tags is tagged mid.
func CleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return []string{level.TagMid}
	}
	return out
}

func (r *repairer) material(roomID string, m *level.Material) *level.Material {
	if m == nil {
		return nil
	}
	out := level.Material{
		FloorColor:   r.color(roomID, m.FloorColor),
		WallColor:    r.color(roomID, m.WallColor),
		FloorTexture: strings.TrimSpace(m.FloorTexture),
		WallTexture:  strings.TrimSpace(m.WallTexture),
	}
	if out == (level.Material{}) {
		return nil
	}
	return &out
}

// color normalizes a hex color, dropping values that do not parse.
func (r *repairer) color(roomID, value string) string {
	c, err := NormalizeColor(value)
	if err != nil {
		r.report(SeverityWarn, codeMaterialColor, roomID, "room %s material color %q ignored: %v", roomID, value, err)
		return ""
	}
	return c
}

// NormalizeColor parses a hex color and returns it as #rrggbb. A blank value
// normalizes to "".
func NormalizeColor(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	c, err := colorful.Hex(value)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

// separate enforces the non-overlap precondition. Rooms are processed in
// declaration order; a room intersecting an earlier one is pushed east of it
// until it is clear of every earlier room.
func (r *repairer) separate(rooms []level.Room) []level.Room {
	for i := range rooms {
		origX := rooms[i].GridX
		for {
			blocker := -1
			for j := 0; j < i; j++ {
				if rooms[i].Rect().Intersects(rooms[j].Rect()) {
					blocker = j
					break
				}
			}
			if blocker < 0 {
				break
			}
			rooms[i].GridX = rooms[blocker].Rect().MaxX() + nudgeGap
		}
		if rooms[i].GridX != origX {
			r.report(SeverityWarn, codeRoomNudged, rooms[i].ID, "room %s overlapped an earlier room; moved from x=%d to x=%d",
				rooms[i].ID, origX, rooms[i].GridX)
		}
	}
	return rooms
}

func (r *repairer) corridors(lvl level.Level, raws []level.RawCorridor) []level.Corridor {
	ids := newIDAllocator()
	out := make([]level.Corridor, 0, len(raws))

	for i, rc := range raws {
		from, okFrom := lvl.RoomByID(strings.TrimSpace(rc.FromRoom))
		to, okTo := lvl.RoomByID(strings.TrimSpace(rc.ToRoom))
		if !okFrom || !okTo {
			r.report(SeverityWarn, codeCorridorDangling, rc.ID, "corridor %q references unknown room (%q -> %q)", rc.ID, rc.FromRoom, rc.ToRoom)
			continue
		}
		if from.ID == to.ID {
			r.report(SeverityWarn, codeCorridorSelfLoop, rc.ID, "corridor %q connects room %s to itself", rc.ID, from.ID)
			continue
		}

		id := ids.claim(rc.ID, fmt.Sprintf("corridor-%d", i+1))
		if id != rc.ID {
			r.report(SeverityWarn, codeCorridorRenamed, id, "corridor %d id %q renamed to %q", i, rc.ID, id)
		}

		width := minCorridorWidth
		if rc.WidthCells != nil && finite(*rc.WidthCells) {
			width = max(minCorridorWidth, int(math.Round(*rc.WidthCells)))
		}

		segs := geometry.Route(from.Rect(), to.Rect(), width)
		if len(rc.Segments) > 0 && !sameSegments(rc.Segments, segs) {
			r.report(SeverityInfo, codeCorridorRerouted, id, "corridor %s re-routed between %s and %s", id, from.ID, to.ID)
		}

		out = append(out, level.Corridor{
			ID:         id,
			FromRoom:   from.ID,
			ToRoom:     to.ID,
			Segments:   segs,
			WidthCells: width,
		})
	}
	return out
}

func sameSegments(raw []level.RawSegment, segs []geometry.CorridorSegment) bool {
	if len(raw) != len(segs) {
		return false
	}
	for i, s := range segs {
		if raw[i].StartX != float64(s.StartX) || raw[i].StartY != float64(s.StartY) ||
			raw[i].EndX != float64(s.EndX) || raw[i].EndY != float64(s.EndY) {
			return false
		}
	}
	return true
}

func (r *repairer) pois(lvl level.Level, raws []level.RawPOI) []level.POI {
	ids := newIDAllocator()
	var out []level.POI
	hasSpawn, hasGoal := false, false

	for i, rp := range raws {
		typ := level.POIType(strings.ToLower(strings.TrimSpace(rp.Type)))
		if !typ.Valid() {
			r.report(SeverityWarn, codePOIDropped, rp.ID, "poi %q has unknown type %q", rp.ID, rp.Type)
			continue
		}
		room, ok := lvl.RoomByID(strings.TrimSpace(rp.RoomID))
		if !ok {
			r.report(SeverityWarn, codePOIDropped, rp.ID, "poi %q references unknown room %q", rp.ID, rp.RoomID)
			continue
		}
		if (typ == level.POISpawn && hasSpawn) || (typ == level.POIGoal && hasGoal) {
			r.report(SeverityWarn, codePOIDropped, rp.ID, "duplicate %s poi %q dropped", typ, rp.ID)
			continue
		}
		hasSpawn = hasSpawn || typ == level.POISpawn
		hasGoal = hasGoal || typ == level.POIGoal

		id := ids.claim(rp.ID, fmt.Sprintf("poi-%d", i+1))
		if id != rp.ID {
			r.report(SeverityInfo, codePOIRenamed, id, "poi %d id %q renamed to %q", i, rp.ID, id)
		}
		out = append(out, level.POI{
			ID:      id,
			Type:    typ,
			RoomID:  room.ID,
			OffsetX: finiteOr(rp.OffsetX, 0),
			OffsetY: finiteOr(rp.OffsetY, 0),
		})
	}

	if len(out) >= 2 && hasSpawn && hasGoal {
		return out
	}

	if !hasSpawn {
		room, ok := lvl.FirstRoomWithTag(level.TagEntry)
		if !ok {
			room = lvl.Rooms[0]
		}
		p := level.POI{ID: ids.claim("spawn", "spawn"), Type: level.POISpawn, RoomID: room.ID}
		out = append([]level.POI{p}, out...)
		r.report(SeverityInfo, codePOIInjected, p.ID, "spawn placed in room %s", room.ID)
	}
	if !hasGoal {
		room, ok := lvl.FirstRoomWithTag(level.TagGoal)
		if !ok {
			room = lvl.Rooms[len(lvl.Rooms)-1]
		}
		p := level.POI{ID: ids.claim("goal", "goal"), Type: level.POIGoal, RoomID: room.ID}
		out = append(out, p)
		r.report(SeverityInfo, codePOIInjected, p.ID, "goal placed in room %s", room.ID)
	}
	return out
}

func (r *repairer) criticalPath(lvl level.Level, raw []string) []string {
	path := make([]string, 0, len(raw))
	for _, id := range raw {
		id = strings.TrimSpace(id)
		if lvl.RoomIndex(id) < 0 {
			r.report(SeverityWarn, codePathEntryDropped, id, "critical path entry %q is not a room", id)
			continue
		}
		path = append(path, id)
	}
	if len(path) >= 2 {
		return path
	}

	path = path[:0]
	for _, room := range lvl.Rooms {
		path = append(path, room.ID)
	}
	r.report(SeverityInfo, codeCriticalPathFixed, "", "critical path defaulted to room order")
	return path
}

func (r *repairer) grid(lvl level.Level, raw *level.RawGridConfig) level.GridConfig {
	def := r.opts.DefaultGrid
	g := def
	if raw == nil {
		r.report(SeverityInfo, codeGridDefaulted, "", "grid config synthesized (cell size %.2f)", def.CellSize)
	} else {
		if finite(raw.CellSize) && raw.CellSize > 0 {
			g.CellSize = raw.CellSize
		} else {
			r.report(SeverityWarn, codeGridDefaulted, "", "invalid cell size %v replaced with %.2f", raw.CellSize, def.CellSize)
		}
		if finite(raw.TotalWidth) && raw.TotalWidth >= 1 {
			g.TotalWidth = int(math.Round(raw.TotalWidth))
		}
		if finite(raw.TotalHeight) && raw.TotalHeight >= 1 {
			g.TotalHeight = int(math.Round(raw.TotalHeight))
		}
	}

	minX, minY, maxX, maxY := 0, 0, 0, 0
	for _, room := range lvl.Rooms {
		rect := room.Rect()
		minX, minY = min(minX, rect.MinX()), min(minY, rect.MinY())
		maxX, maxY = max(maxX, rect.MaxX()), max(maxY, rect.MaxY())
	}
	if need := maxX - minX; g.TotalWidth < need {
		r.report(SeverityInfo, codeGridGrown, "", "grid width grown from %d to %d", g.TotalWidth, need)
		g.TotalWidth = need
	}
	if need := maxY - minY; g.TotalHeight < need {
		r.report(SeverityInfo, codeGridGrown, "", "grid height grown from %d to %d", g.TotalHeight, need)
		g.TotalHeight = need
	}
	return g
}

// checkReachability reports rooms that no corridor chain connects to the
// spawn room. The layout is still returned as is.
func (r *repairer) checkReachability(lvl level.Level) {
	spawn, ok := lvl.POIOfType(level.POISpawn)
	if !ok {
		return
	}
	start, ok := lvl.RoomByID(spawn.RoomID)
	if !ok {
		return
	}

	rects := make([]geometry.Rect, len(lvl.Rooms))
	for i, room := range lvl.Rooms {
		rects[i] = room.Rect()
	}
	footprints := make([]geometry.Footprint, len(lvl.Corridors))
	for i, c := range lvl.Corridors {
		footprints[i] = geometry.Footprint{Segments: c.Segments, WidthCells: c.WidthCells}
	}

	rm := geometry.BuildRegionMap(rects, footprints)
	home := rm.RegionOf(start.Rect())
	for _, room := range lvl.Rooms {
		if rm.RegionOf(room.Rect()) != home {
			r.report(SeverityWarn, codeRoomUnreachable, room.ID, "room %s is not connected to spawn room %s", room.ID, start.ID)
		}
	}
}

type idAllocator struct {
	seen mapset.Set[string]
}

func newIDAllocator() *idAllocator {
	return &idAllocator{seen: mapset.New[string]()}
}

// claim returns want (or fallback when want is blank), suffixed until it is
// unique among the ids claimed so far.
func (a *idAllocator) claim(want, fallback string) string {
	id := strings.TrimSpace(want)
	if id == "" {
		id = fallback
	}
	base := id
	for n := 2; a.seen.Has(id); n++ {
		id = fmt.Sprintf("%s-%d", base, n)
	}
	a.seen.Put(id)
	return id
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func finiteOr(v, fallback float64) float64 {
	if finite(v) {
		return v
	}
	return fallback
}
