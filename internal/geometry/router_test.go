package geometry

import "testing"

func TestRoute_XAlignedVertical(t *testing.T) {
	r1 := Rect{X: 0, Y: 0, Width: 4, Height: 3}
	r2 := Rect{X: 0, Y: 6, Width: 4, Height: 3}

	segs := Route(r1, r2, 1)
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d: %+v", len(segs), segs)
	}
	s := segs[0]
	if s.Orientation() != Vertical {
		t.Fatalf("expected vertical segment, got %+v", s)
	}
	if s.StartX != 2 || s.EndX != 2 {
		t.Errorf("expected X=2, got %d..%d", s.StartX, s.EndX)
	}
	if s.StartY != 3 || s.EndY != 6 {
		t.Errorf("expected Y span [3,6], got [%d,%d]", s.StartY, s.EndY)
	}

	back := Route(r2, r1, 1)
	if len(back) != 1 || back[0].StartY != 6 || back[0].EndY != 3 {
		t.Errorf("reverse route should run from r2's top edge to r1's bottom edge, got %+v", back)
	}
}

func TestRoute_YAlignedHorizontal(t *testing.T) {
	r1 := Rect{X: 0, Y: 0, Width: 3, Height: 4}
	r2 := Rect{X: 7, Y: 1, Width: 3, Height: 5}

	segs := Route(r1, r2, 2)
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %+v", segs)
	}
	s := segs[0]
	if s.Orientation() != Horizontal {
		t.Fatalf("expected horizontal segment, got %+v", s)
	}
	// overlap on Y is [1,4) -> floor(2.5) = 2
	if s.StartY != 2 || s.EndY != 2 {
		t.Errorf("expected Y=2, got %d", s.StartY)
	}
	if s.StartX != 3 || s.EndX != 7 {
		t.Errorf("expected X span [3,7], got [%d,%d]", s.StartX, s.EndX)
	}

	back := Route(r2, r1, 2)
	if back[0].StartX != 7 || back[0].EndX != 3 {
		t.Errorf("expected X span [7,3], got %+v", back[0])
	}
}

func TestRoute_UnalignedLShape(t *testing.T) {
	r1 := Rect{X: 0, Y: 0, Width: 4, Height: 3}
	r3 := Rect{X: 8, Y: 5, Width: 4, Height: 3}

	segs := Route(r1, r3, 1)
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %+v", segs)
	}
	first, second := segs[0], segs[1]
	if first.Orientation() != Horizontal || second.Orientation() != Vertical {
		t.Fatalf("expected horizontal then vertical, got %+v", segs)
	}
	if first.End() != second.Start() {
		t.Fatalf("segments must share the corner, got %+v and %+v", first.End(), second.Start())
	}
	if first.StartX != r1.MaxX() || first.StartY != 1 {
		t.Errorf("first segment should leave r1's east edge at y=1, got %+v", first)
	}
	if second.EndX != 10 || second.EndY != r3.MinY() {
		t.Errorf("second segment should reach r3's north edge at x=10, got %+v", second)
	}
}

func TestRoute_UnalignedLeftAndUp(t *testing.T) {
	from := Rect{X: 10, Y: 10, Width: 2, Height: 2}
	to := Rect{X: 0, Y: 0, Width: 4, Height: 4}

	segs := Route(from, to, 1)
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %+v", segs)
	}
	if segs[0].StartX != from.MinX() || segs[0].StartY != 11 {
		t.Errorf("expected start on west edge at y=11, got %+v", segs[0])
	}
	if segs[1].EndX != 2 || segs[1].EndY != to.MaxY() {
		t.Errorf("expected end on south edge of target at x=2, got %+v", segs[1])
	}
}

func TestRoute_TouchingRoomsKeepAxis(t *testing.T) {
	tests := []struct {
		name     string
		from, to Rect
		want     CorridorSegment
	}{
		{
			name: "east edge",
			from: Rect{X: 0, Y: 0, Width: 4, Height: 4},
			to:   Rect{X: 4, Y: 0, Width: 4, Height: 4},
			want: CorridorSegment{StartX: 4, StartY: 2, EndX: 4, EndY: 2, Axis: Horizontal},
		},
		{
			name: "west edge",
			from: Rect{X: 4, Y: 0, Width: 4, Height: 4},
			to:   Rect{X: 0, Y: 0, Width: 4, Height: 4},
			want: CorridorSegment{StartX: 4, StartY: 2, EndX: 4, EndY: 2, Axis: Horizontal},
		},
		{
			name: "south edge",
			from: Rect{X: 0, Y: 0, Width: 4, Height: 4},
			to:   Rect{X: 0, Y: 4, Width: 4, Height: 4},
			want: CorridorSegment{StartX: 2, StartY: 4, EndX: 2, EndY: 4, Axis: Vertical},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := Route(tt.from, tt.to, 1)
			if len(segs) != 1 {
				t.Fatalf("expected 1 segment, got %+v", segs)
			}
			if segs[0] != tt.want {
				t.Errorf("got %+v want %+v", segs[0], tt.want)
			}
			if segs[0].Length() != 0 || segs[0].Orientation() != tt.want.Axis {
				t.Errorf("expected zero-length %s segment, got %+v", tt.want.Axis, segs[0])
			}
		})
	}
}

func TestSegmentOrientationWithoutAxis(t *testing.T) {
	if got := (CorridorSegment{StartX: 1, StartY: 0, EndX: 1, EndY: 5}).Orientation(); got != Vertical {
		t.Errorf("expected vertical, got %s", got)
	}
	if got := (CorridorSegment{StartX: 0, StartY: 2, EndX: 6, EndY: 2}).Orientation(); got != Horizontal {
		t.Errorf("expected horizontal, got %s", got)
	}
}

func TestRoute_EndpointsTouchRectangles(t *testing.T) {
	rects := []Rect{
		{X: 0, Y: 0, Width: 4, Height: 3},
		{X: 0, Y: 6, Width: 4, Height: 3},
		{X: 8, Y: 5, Width: 4, Height: 3},
		{X: -7, Y: 2, Width: 2, Height: 6},
		{X: 3, Y: -9, Width: 5, Height: 2},
		{X: 14, Y: 0, Width: 3, Height: 3},
	}
	onBoundary := func(p Point, r Rect) bool {
		inX := p.X >= r.MinX() && p.X <= r.MaxX()
		inY := p.Y >= r.MinY() && p.Y <= r.MaxY()
		if !inX || !inY {
			return false
		}
		return p.X == r.MinX() || p.X == r.MaxX() || p.Y == r.MinY() || p.Y == r.MaxY()
	}

	for i, a := range rects {
		for j, b := range rects {
			if i == j || a.Intersects(b) {
				continue
			}
			segs := Route(a, b, 1)
			if len(segs) < 1 || len(segs) > 2 {
				t.Fatalf("route %d->%d: expected 1 or 2 segments, got %d", i, j, len(segs))
			}
			start, _ := FirstPoint(segs)
			end, _ := LastPoint(segs)
			if !onBoundary(start, a) {
				t.Errorf("route %d->%d: start %+v not on boundary of %+v", i, j, start, a)
			}
			if !onBoundary(end, b) {
				t.Errorf("route %d->%d: end %+v not on boundary of %+v", i, j, end, b)
			}
			for _, s := range segs {
				if s.StartX != s.EndX && s.StartY != s.EndY {
					t.Errorf("route %d->%d: diagonal segment %+v", i, j, s)
				}
			}
		}
	}
}

func TestOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want Interval
		ok   bool
	}{
		{"disjoint", Interval{0, 2}, Interval{3, 5}, Interval{3, 2}, false},
		{"touching", Interval{0, 3}, Interval{3, 5}, Interval{3, 3}, false},
		{"nested", Interval{0, 10}, Interval{2, 4}, Interval{2, 4}, true},
		{"partial", Interval{0, 4}, Interval{2, 6}, Interval{2, 4}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Overlap(tt.a, tt.b)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Overlap(%v, %v) = %v, %v; want %v, %v", tt.a, tt.b, got, ok, tt.want, tt.ok)
			}
		})
	}
}
