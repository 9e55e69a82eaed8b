package geometry

type Orientation string

const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
)

// Point is an integer grid coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Interval is a half-open integer range [Min, Max).
type Interval struct {
	Min int
	Max int
}

// Overlap intersects two intervals. The returned interval is only meaningful
// when ok is true.
func Overlap(a, b Interval) (Interval, bool) {
	lo := max(a.Min, b.Min)
	hi := min(a.Max, b.Max)
	return Interval{Min: lo, Max: hi}, lo < hi
}

// Rect is an axis-aligned room footprint on the grid, covering
// [X, X+Width) x [Y, Y+Height).
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

func (r Rect) MinX() int { return r.X }
func (r Rect) MaxX() int { return r.X + r.Width }
func (r Rect) MinY() int { return r.Y }
func (r Rect) MaxY() int { return r.Y + r.Height }

func (r Rect) XSpan() Interval { return Interval{Min: r.MinX(), Max: r.MaxX()} }
func (r Rect) YSpan() Interval { return Interval{Min: r.MinY(), Max: r.MaxY()} }

// Center returns the rectangle's center in (fractional) grid units.
func (r Rect) Center() (float64, float64) {
	return float64(r.X) + float64(r.Width)/2, float64(r.Y) + float64(r.Height)/2
}

// Intersects reports whether two rectangles share any area. Rectangles that
// only touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	_, okX := Overlap(r.XSpan(), o.XSpan())
	_, okY := Overlap(r.YSpan(), o.YSpan())
	return okX && okY
}

// Contains reports whether the grid cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.MinX() && x < r.MaxX() && y >= r.MinY() && y < r.MaxY()
}

// CorridorSegment is one straight piece of a corridor centerline. It never
// runs diagonally. Axis records the direction the router chose, which is the
// only way to tell a zero-length segment between touching rooms apart.
type CorridorSegment struct {
	StartX int         `json:"startX" yaml:"startX"`
	StartY int         `json:"startY" yaml:"startY"`
	EndX   int         `json:"endX" yaml:"endX"`
	EndY   int         `json:"endY" yaml:"endY"`
	Axis   Orientation `json:"orientation,omitempty" yaml:"orientation,omitempty"`
}

// Orientation returns Axis when set. Otherwise it is derived from the
// endpoints, with StartX==EndX read as vertical.
func (s CorridorSegment) Orientation() Orientation {
	if s.Axis != "" {
		return s.Axis
	}
	if s.StartX == s.EndX {
		return Vertical
	}
	return Horizontal
}

func (s CorridorSegment) Start() Point { return Point{X: s.StartX, Y: s.StartY} }
func (s CorridorSegment) End() Point   { return Point{X: s.EndX, Y: s.EndY} }

// Length is the segment length in cells.
func (s CorridorSegment) Length() int {
	return abs(s.EndX-s.StartX) + abs(s.EndY-s.StartY)
}

// FirstPoint returns where a corridor path begins.
func FirstPoint(segs []CorridorSegment) (Point, bool) {
	if len(segs) == 0 {
		return Point{}, false
	}
	return segs[0].Start(), true
}

// LastPoint returns where a corridor path ends.
func LastPoint(segs []CorridorSegment) (Point, bool) {
	if len(segs) == 0 {
		return Point{}, false
	}
	return segs[len(segs)-1].End(), true
}

type RegionMap struct {
	MinX          int
	MinY          int
	Width         int
	Height        int
	TileRegionIDs []int
	RegionsCount  int
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
