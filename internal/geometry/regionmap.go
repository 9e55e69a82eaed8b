package geometry

// Footprint is a corridor as the rasterizer sees it: its centerline plus its
// width in cells.
type Footprint struct {
	Segments   []CorridorSegment
	WidthCells int
}

// BuildRegionMap rasterizes rooms and corridors onto a tile grid and labels
// every connected walkable area with a region id. Tiles outside any room or
// corridor keep region -1.
func BuildRegionMap(rooms []Rect, corridors []Footprint) RegionMap {
	if len(rooms) == 0 {
		return RegionMap{}
	}

	minX, minY := rooms[0].MinX(), rooms[0].MinY()
	maxX, maxY := rooms[0].MaxX(), rooms[0].MaxY()
	grow := func(x0, y0, x1, y1 int) {
		minX, minY = min(minX, x0), min(minY, y0)
		maxX, maxY = max(maxX, x1), max(maxY, y1)
	}
	for _, r := range rooms {
		grow(r.MinX(), r.MinY(), r.MaxX(), r.MaxY())
	}
	for _, c := range corridors {
		for _, s := range c.Segments {
			t := segmentTiles(s, c.WidthCells)
			grow(t.MinX(), t.MinY(), t.MaxX(), t.MaxY())
		}
	}

	w := maxX - minX
	h := maxY - minY
	total := w * h
	walkable := make([]bool, total)
	mark := func(r Rect) {
		for y := r.MinY(); y < r.MaxY(); y++ {
			for x := r.MinX(); x < r.MaxX(); x++ {
				walkable[(y-minY)*w+(x-minX)] = true
			}
		}
	}
	for _, r := range rooms {
		mark(r)
	}
	for _, c := range corridors {
		for _, s := range c.Segments {
			mark(segmentTiles(s, c.WidthCells))
		}
	}

	tileRegionIDs := make([]int, total)
	for i := range tileRegionIDs {
		tileRegionIDs[i] = -1
	}

	regionID := 0
	qx := make([]int, 0, total)
	qy := make([]int, 0, total)

	visit := func(nx, ny int) {
		nidx := ny*w + nx
		if walkable[nidx] && tileRegionIDs[nidx] == -1 {
			tileRegionIDs[nidx] = regionID
			qx = append(qx, nx)
			qy = append(qy, ny)
		}
	}

	for y := range h {
		for x := range w {
			idx := y*w + x
			if !walkable[idx] || tileRegionIDs[idx] != -1 {
				continue
			}
			tileRegionIDs[idx] = regionID
			qx = qx[:0]
			qy = qy[:0]
			qx = append(qx, x)
			qy = append(qy, y)

			for len(qx) > 0 {
				cx := qx[0]
				cy := qy[0]
				qx = qx[1:]
				qy = qy[1:]

				if cx > 0 {
					visit(cx-1, cy)
				}
				if cx < w-1 {
					visit(cx+1, cy)
				}
				if cy > 0 {
					visit(cx, cy-1)
				}
				if cy < h-1 {
					visit(cx, cy+1)
				}
			}
			regionID++
		}
	}

	return RegionMap{
		MinX:          minX,
		MinY:          minY,
		Width:         w,
		Height:        h,
		TileRegionIDs: tileRegionIDs,
		RegionsCount:  regionID,
	}
}

// RegionAt returns the region id of grid cell (x, y), or -1 when the cell is
// outside the map or not walkable.
func (m RegionMap) RegionAt(x, y int) int {
	lx, ly := x-m.MinX, y-m.MinY
	if lx < 0 || ly < 0 || lx >= m.Width || ly >= m.Height {
		return -1
	}
	return m.TileRegionIDs[ly*m.Width+lx]
}

// RegionOf returns the region id of a room's top-left cell.
func (m RegionMap) RegionOf(r Rect) int {
	return m.RegionAt(r.X, r.Y)
}

// segmentTiles is the block of cells a corridor segment occupies. The span
// along the segment is inclusive of both endpoints so the corridor reaches
// into the rooms it joins.
func segmentTiles(s CorridorSegment, widthCells int) Rect {
	w := max(widthCells, 1)
	half := w / 2
	if s.Orientation() == Vertical {
		y0, y1 := min(s.StartY, s.EndY), max(s.StartY, s.EndY)
		return Rect{X: s.StartX - half, Y: y0, Width: w, Height: y1 - y0 + 1}
	}
	x0, x1 := min(s.StartX, s.EndX), max(s.StartX, s.EndX)
	return Rect{X: x0, Y: s.StartY - half, Width: x1 - x0 + 1, Height: w}
}
