package scene

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Ko-stant/dungeon-layout-engine/internal/geometry"
	"github.com/Ko-stant/dungeon-layout-engine/internal/level"
)

type Side string

const (
	North Side = "north"
	South Side = "south"
	West  Side = "west"
	East  Side = "east"
)

var sides = []Side{North, South, West, East}

const spanEpsilon = 1e-9

// Opening is a gap in a wall, in world units measured along the wall's axis.
type Opening struct {
	CorridorID string  `json:"corridorId"`
	Center     float64 `json:"center"`
	Width      float64 `json:"width"`
}

func (o Opening) Min() float64 { return o.Center - o.Width/2 }
func (o Opening) Max() float64 { return o.Center + o.Width/2 }

// Span is a solid stretch of wall along the wall's axis.
type Span struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Carve splits the wall [start, end] around the given openings and returns
// the solid spans left over, in order. Empty spans are dropped. Openings are
// processed by position; where two openings overlap the cursor only moves
// forward, so they behave as a single merged opening. Openings reaching past
// either end of the wall are clipped.
func Carve(start, end float64, openings []Opening) []Span {
	if len(openings) == 0 {
		return []Span{{Start: start, End: end}}
	}

	sorted := append([]Opening(nil), openings...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Center < sorted[j].Center })

	var spans []Span
	cursor := start
	for _, o := range sorted {
		if cursor >= end {
			break
		}
		if gapStart := min(o.Min(), end); gapStart-cursor > spanEpsilon {
			spans = append(spans, Span{Start: cursor, End: gapStart})
		}
		cursor = max(cursor, o.Max())
	}
	if end-cursor > spanEpsilon {
		spans = append(spans, Span{Start: cursor, End: end})
	}
	return spans
}

// roomOpenings collects, per side, the openings that corridors attached to
// the room cut into its walls. A vertical segment ending on the room's top or
// bottom edge opens the north or south wall; a horizontal segment ending on
// its left or right edge opens the west or east wall.
func roomOpenings(room level.Room, corridors []level.Corridor, t Transform) map[Side][]Opening {
	rect := room.Rect()
	out := make(map[Side][]Opening, len(sides))

	for _, c := range corridors {
		if !c.Touches(room.ID) {
			continue
		}
		width := t.Cells(c.WidthCells)
		for _, s := range c.Segments {
			if s.Orientation() == geometry.Vertical {
				if s.StartX < rect.MinX() || s.StartX > rect.MaxX() {
					continue
				}
				o := Opening{CorridorID: c.ID, Center: t.Cells(s.StartX), Width: width}
				if s.StartY == rect.MinY() || s.EndY == rect.MinY() {
					out[North] = append(out[North], o)
				}
				if s.StartY == rect.MaxY() || s.EndY == rect.MaxY() {
					out[South] = append(out[South], o)
				}
				continue
			}

			if s.StartY < rect.MinY() || s.StartY > rect.MaxY() {
				continue
			}
			o := Opening{CorridorID: c.ID, Center: t.Cells(s.StartY), Width: width}
			if s.StartX == rect.MinX() || s.EndX == rect.MinX() {
				out[West] = append(out[West], o)
			}
			if s.StartX == rect.MaxX() || s.EndX == rect.MaxX() {
				out[East] = append(out[East], o)
			}
		}
	}
	return out
}

// sideLine returns the world-space endpoints of one side of a room. North and
// south walls run along X, west and east walls along Z.
func sideLine(room level.Room, side Side, t Transform) (mgl64.Vec3, mgl64.Vec3) {
	r := room.Rect()
	switch side {
	case North:
		return t.GridToWorld(r.MinX(), r.MinY()), t.GridToWorld(r.MaxX(), r.MinY())
	case South:
		return t.GridToWorld(r.MinX(), r.MaxY()), t.GridToWorld(r.MaxX(), r.MaxY())
	case West:
		return t.GridToWorld(r.MinX(), r.MinY()), t.GridToWorld(r.MinX(), r.MaxY())
	default:
		return t.GridToWorld(r.MaxX(), r.MinY()), t.GridToWorld(r.MaxX(), r.MaxY())
	}
}

func alongX(side Side) bool {
	return side == North || side == South
}

func roomWalls(room level.Room, corridors []level.Corridor, t Transform, style Style, opts Options) []WallSpan {
	openings := roomOpenings(room, corridors, t)

	var walls []WallSpan
	for _, side := range sides {
		a, b := sideLine(room, side, t)
		start, end := a.Z(), b.Z()
		if alongX(side) {
			start, end = a.X(), b.X()
		}

		for _, span := range Carve(start, end, openings[side]) {
			s, e := a, b
			if alongX(side) {
				s[0], e[0] = span.Start, span.End
			} else {
				s[2], e[2] = span.Start, span.End
			}
			walls = append(walls, WallSpan{
				RoomID:    room.ID,
				Side:      side,
				Start:     s,
				End:       e,
				Center:    s.Add(e).Mul(0.5),
				Length:    span.End - span.Start,
				Height:    opts.WallHeight,
				Thickness: opts.WallThickness,
				Color:     style.WallColor,
			})
		}
	}
	return walls
}
