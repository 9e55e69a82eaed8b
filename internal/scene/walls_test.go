package scene

import (
	"testing"

	"github.com/Ko-stant/dungeon-layout-engine/internal/geometry"
	"github.com/Ko-stant/dungeon-layout-engine/internal/level"
)

func TestCarveTwoOpenings(t *testing.T) {
	spans := Carve(0, 14, []Opening{
		{CorridorID: "b", Center: 10, Width: 4},
		{CorridorID: "a", Center: 2, Width: 4},
	})
	want := []Span{{Start: 4, End: 8}, {Start: 12, End: 14}}
	if len(spans) != len(want) {
		t.Fatalf("expected %d spans, got %v", len(want), spans)
	}
	for i := range want {
		if spans[i] != want[i] {
			t.Errorf("span %d: got %+v want %+v", i, spans[i], want[i])
		}
	}
}

func TestCarveWithoutOpeningsKeepsWholeWall(t *testing.T) {
	spans := Carve(-3, 7, nil)
	if len(spans) != 1 || spans[0] != (Span{Start: -3, End: 7}) {
		t.Fatalf("expected single full span, got %v", spans)
	}
}

func TestCarveCases(t *testing.T) {
	tests := []struct {
		name     string
		openings []Opening
		want     []Span
	}{
		{
			name:     "overlapping openings merge",
			openings: []Opening{{Center: 4, Width: 4}, {Center: 6, Width: 4}},
			want:     []Span{{0, 2}, {8, 10}},
		},
		{
			name:     "opening past end is clipped",
			openings: []Opening{{Center: 10, Width: 4}},
			want:     []Span{{0, 8}},
		},
		{
			name:     "opening covering wall leaves nothing",
			openings: []Opening{{Center: 5, Width: 12}},
			want:     nil,
		},
		{
			name:     "touching openings leave no sliver",
			openings: []Opening{{Center: 3, Width: 2}, {Center: 5, Width: 2}},
			want:     []Span{{0, 2}, {6, 10}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Carve(0, 10, tt.openings)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("span %d: got %+v want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// Solid spans plus openings clipped to the wall cover the wall exactly once.
func TestCarveCoverage(t *testing.T) {
	openings := []Opening{{Center: 3, Width: 2}, {Center: 11, Width: 4}}
	spans := Carve(0, 20, openings)

	solid := 0.0
	for _, s := range spans {
		if s.End <= s.Start {
			t.Fatalf("empty span emitted: %+v", s)
		}
		solid += s.End - s.Start
	}
	if solid+2+4 != 20 {
		t.Fatalf("solid length %v plus openings does not cover wall", solid)
	}
}

func TestRoomOpeningsFromRoutedCorridor(t *testing.T) {
	a := level.Room{ID: "a", GridX: 0, GridY: 0, Width: 4, Height: 3}
	b := level.Room{ID: "b", GridX: 0, GridY: 6, Width: 4, Height: 3}
	c := level.Corridor{
		ID: "c1", FromRoom: "a", ToRoom: "b", WidthCells: 1,
		Segments: geometry.Route(a.Rect(), b.Rect(), 1),
	}
	tr := NewTransform(2)

	fromA := roomOpenings(a, []level.Corridor{c}, tr)
	if len(fromA[South]) != 1 || len(fromA[North]) != 0 {
		t.Fatalf("expected one south opening on a, got %+v", fromA)
	}
	if fromA[South][0].Center != 4 || fromA[South][0].Width != 2 {
		t.Errorf("unexpected opening %+v", fromA[South][0])
	}

	fromB := roomOpenings(b, []level.Corridor{c}, tr)
	if len(fromB[North]) != 1 {
		t.Fatalf("expected one north opening on b, got %+v", fromB)
	}
}

func TestRoomOpeningsBetweenTouchingRooms(t *testing.T) {
	tr := NewTransform(2)
	link := func(from, to level.Room) level.Corridor {
		return level.Corridor{
			ID: "c1", FromRoom: from.ID, ToRoom: to.ID, WidthCells: 1,
			Segments: geometry.Route(from.Rect(), to.Rect(), 1),
		}
	}

	a := level.Room{ID: "a", GridX: 0, GridY: 0, Width: 4, Height: 4}
	b := level.Room{ID: "b", GridX: 4, GridY: 0, Width: 4, Height: 4}
	ab := []level.Corridor{link(a, b)}
	fromA := roomOpenings(a, ab, tr)
	if len(fromA[East]) != 1 || len(fromA[North])+len(fromA[South])+len(fromA[West]) != 0 {
		t.Fatalf("expected only an east opening on a, got %+v", fromA)
	}
	if fromA[East][0].Center != 4 {
		t.Errorf("unexpected east opening %+v", fromA[East][0])
	}
	fromB := roomOpenings(b, ab, tr)
	if len(fromB[West]) != 1 || len(fromB[North])+len(fromB[South])+len(fromB[East]) != 0 {
		t.Fatalf("expected only a west opening on b, got %+v", fromB)
	}

	c := level.Room{ID: "c", GridX: 0, GridY: 4, Width: 4, Height: 4}
	ac := []level.Corridor{link(a, c)}
	if got := roomOpenings(a, ac, tr); len(got[South]) != 1 || len(got[East]) != 0 {
		t.Errorf("expected a south opening on a, got %+v", got)
	}
	if got := roomOpenings(c, ac, tr); len(got[North]) != 1 || len(got[West]) != 0 {
		t.Errorf("expected a north opening on c, got %+v", got)
	}
}

func TestRoomWallsTouchingAtOneCell(t *testing.T) {
	a := level.Room{ID: "a", GridX: 0, GridY: 0, Width: 2, Height: 2}
	b := level.Room{ID: "b", GridX: 2, GridY: 1, Width: 2, Height: 2}
	corridors := []level.Corridor{{
		ID: "c1", FromRoom: "a", ToRoom: "b", WidthCells: 1,
		Segments: geometry.Route(a.Rect(), b.Rect(), 1),
	}}
	tr := NewTransform(2)

	bySide := func(room level.Room) map[Side][]WallSpan {
		out := map[Side][]WallSpan{}
		for _, w := range roomWalls(room, corridors, tr, ResolveStyle(room), DefaultOptions()) {
			out[w.Side] = append(out[w.Side], w)
		}
		return out
	}

	wa := bySide(a)
	if len(wa[East]) != 2 {
		t.Fatalf("expected a's east wall split, got %+v", wa[East])
	}
	wb := bySide(b)
	if len(wb[North]) != 1 || wb[North][0].Length != 4 {
		t.Errorf("b's north wall should stay whole, got %+v", wb[North])
	}
	if len(wb[West]) != 1 || wb[West][0].Start.Z() != 3 || wb[West][0].End.Z() != 6 {
		t.Errorf("expected b's west wall opened at its top, got %+v", wb[West])
	}
}

func TestRoomWallsCountsSpans(t *testing.T) {
	a := level.Room{ID: "a", GridX: 0, GridY: 0, Width: 4, Height: 3}
	b := level.Room{ID: "b", GridX: 8, GridY: 0, Width: 4, Height: 3}
	c := level.Corridor{
		ID: "c1", FromRoom: "a", ToRoom: "b", WidthCells: 1,
		Segments: geometry.Route(a.Rect(), b.Rect(), 1),
	}
	walls := roomWalls(a, []level.Corridor{c}, NewTransform(2), ResolveStyle(a), DefaultOptions())

	perSide := map[Side]int{}
	for _, w := range walls {
		perSide[w.Side]++
		if w.Height != 3.0 || w.Thickness != 0.2 {
			t.Errorf("wall dimensions not taken from options: %+v", w)
		}
	}
	if perSide[East] != 2 {
		t.Fatalf("expected east wall split in two, got %v", perSide)
	}
	for _, side := range []Side{North, South, West} {
		if perSide[side] != 1 {
			t.Errorf("expected one solid span on %s, got %d", side, perSide[side])
		}
	}
}
