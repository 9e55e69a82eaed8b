package level

// DemoLevel is a small hand-written layout in the shape a generator produces:
// fractional coordinates, an undersized room, a stale corridor path and no
// points of interest. It exercises every repair step.
func DemoLevel() *RawLevel {
	one := 1.0
	two := 2.0
	x3, x10 := 3.0, 10.0

	return &RawLevel{
		Rooms: []RawRoom{
			{ID: "hall", Name: "Entry Hall", GridX: 0, GridY: 0, Width: 6, Height: 5, Tags: []string{TagEntry}},
			{ID: "gallery", Name: "Gallery", GridX: 0.4, GridY: 9.6, Width: 6.2, Height: 4},
			{ID: "vault", Name: "Hidden Vault", GridX: 12, GridY: 1, Width: 1.2, Height: 3, Tags: []string{TagSecret}},
			{ID: "throne", Name: "Throne Room", GridX: 14, GridY: 12, Width: 7, Height: 6, Tags: []string{TagGoal}},
		},
		Corridors: []RawCorridor{
			{ID: "hall-gallery", FromRoom: "hall", ToRoom: "gallery", WidthCells: &two},
			{ID: "hall-vault", FromRoom: "hall", ToRoom: "vault", WidthCells: &one, StartX: &x3, EndX: &x10},
			{ID: "gallery-throne", FromRoom: "gallery", ToRoom: "throne", WidthCells: &two,
				Segments: []RawSegment{{StartX: 6, StartY: 11, EndX: 14.5, EndY: 11}}},
			{ID: "ghost", FromRoom: "hall", ToRoom: "crypt"},
		},
	}
}
