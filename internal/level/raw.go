package level

// RawLevel is the untrusted input shape, typically emitted by a generator.
// Numbers may be fractional, references may dangle and whole sections may be
// missing; repair.Repair turns it into a Level.
type RawLevel struct {
	Grid         *RawGridConfig `json:"grid,omitempty" yaml:"grid,omitempty"`
	Rooms        []RawRoom      `json:"rooms" yaml:"rooms"`
	Corridors    []RawCorridor  `json:"corridors" yaml:"corridors"`
	POIs         []RawPOI       `json:"pois" yaml:"pois"`
	CriticalPath []string       `json:"criticalPath,omitempty" yaml:"criticalPath,omitempty"`
}

type RawGridConfig struct {
	CellSize    float64 `json:"cellSize" yaml:"cellSize"`
	TotalWidth  float64 `json:"totalWidth" yaml:"totalWidth"`
	TotalHeight float64 `json:"totalHeight" yaml:"totalHeight"`
}

type RawRoom struct {
	ID       string    `json:"id" yaml:"id"`
	Name     string    `json:"name" yaml:"name"`
	GridX    float64   `json:"gridX" yaml:"gridX"`
	GridY    float64   `json:"gridY" yaml:"gridY"`
	Width    float64   `json:"width" yaml:"width"`
	Height   float64   `json:"height" yaml:"height"`
	Tags     []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
	Material *Material `json:"material,omitempty" yaml:"material,omitempty"`
}

type RawSegment struct {
	StartX float64 `json:"startX" yaml:"startX"`
	StartY float64 `json:"startY" yaml:"startY"`
	EndX   float64 `json:"endX" yaml:"endX"`
	EndY   float64 `json:"endY" yaml:"endY"`
}

// RawCorridor accepts both the segment list and the older flattened
// start/end fields some generators still emit. Neither is trusted: corridors
// between resolvable rooms are always re-routed.
type RawCorridor struct {
	ID         string       `json:"id" yaml:"id"`
	FromRoom   string       `json:"fromRoom" yaml:"fromRoom"`
	ToRoom     string       `json:"toRoom" yaml:"toRoom"`
	Segments   []RawSegment `json:"segments,omitempty" yaml:"segments,omitempty"`
	WidthCells *float64     `json:"widthCells,omitempty" yaml:"widthCells,omitempty"`

	StartX *float64 `json:"startX,omitempty" yaml:"startX,omitempty"`
	StartY *float64 `json:"startY,omitempty" yaml:"startY,omitempty"`
	EndX   *float64 `json:"endX,omitempty" yaml:"endX,omitempty"`
	EndY   *float64 `json:"endY,omitempty" yaml:"endY,omitempty"`
}

type RawPOI struct {
	ID      string  `json:"id" yaml:"id"`
	Type    string  `json:"type" yaml:"type"`
	RoomID  string  `json:"roomId" yaml:"roomId"`
	OffsetX float64 `json:"offsetX,omitempty" yaml:"offsetX,omitempty"`
	OffsetY float64 `json:"offsetY,omitempty" yaml:"offsetY,omitempty"`
}

// Raw converts a valid level back into the input shape, so it can be fed
// through repair again after an edit.
func (l Level) Raw() *RawLevel {
	raw := &RawLevel{
		Grid: &RawGridConfig{
			CellSize:    l.Grid.CellSize,
			TotalWidth:  float64(l.Grid.TotalWidth),
			TotalHeight: float64(l.Grid.TotalHeight),
		},
		CriticalPath: append([]string(nil), l.CriticalPath...),
	}
	for _, r := range l.Rooms {
		rr := RawRoom{
			ID:     r.ID,
			Name:   r.Name,
			GridX:  float64(r.GridX),
			GridY:  float64(r.GridY),
			Width:  float64(r.Width),
			Height: float64(r.Height),
			Tags:   append([]string(nil), r.Tags...),
		}
		if r.Material != nil {
			m := *r.Material
			rr.Material = &m
		}
		raw.Rooms = append(raw.Rooms, rr)
	}
	for _, c := range l.Corridors {
		w := float64(c.WidthCells)
		rc := RawCorridor{ID: c.ID, FromRoom: c.FromRoom, ToRoom: c.ToRoom, WidthCells: &w}
		for _, s := range c.Segments {
			rc.Segments = append(rc.Segments, RawSegment{
				StartX: float64(s.StartX),
				StartY: float64(s.StartY),
				EndX:   float64(s.EndX),
				EndY:   float64(s.EndY),
			})
		}
		raw.Corridors = append(raw.Corridors, rc)
	}
	for _, p := range l.POIs {
		raw.POIs = append(raw.POIs, RawPOI{
			ID:      p.ID,
			Type:    string(p.Type),
			RoomID:  p.RoomID,
			OffsetX: p.OffsetX,
			OffsetY: p.OffsetY,
		})
	}
	return raw
}
