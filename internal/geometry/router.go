package geometry

import "math"

// Route computes the centerline connecting two room rectangles. Rooms that
// share an X or Y range get a single straight segment across the gap between
// their facing edges; anything else gets an L-shaped pair of segments that
// leaves from's side edge and enters to's top or bottom edge. Rooms that touch
// get a zero-length segment on the shared edge, tagged with the axis it
// crosses.
//
// widthCells does not move the centerline; it is accepted so callers can pass
// the corridor through unchanged.
func Route(from, to Rect, widthCells int) []CorridorSegment {
	if ox, ok := Overlap(from.XSpan(), to.XSpan()); ok {
		x := floorMid(ox.Min, ox.Max)
		if from.MaxY() <= to.MinY() {
			return []CorridorSegment{{StartX: x, StartY: from.MaxY(), EndX: x, EndY: to.MinY(), Axis: Vertical}}
		}
		return []CorridorSegment{{StartX: x, StartY: from.MinY(), EndX: x, EndY: to.MaxY(), Axis: Vertical}}
	}

	if oy, ok := Overlap(from.YSpan(), to.YSpan()); ok {
		y := floorMid(oy.Min, oy.Max)
		if from.MaxX() <= to.MinX() {
			return []CorridorSegment{{StartX: from.MaxX(), StartY: y, EndX: to.MinX(), EndY: y, Axis: Horizontal}}
		}
		return []CorridorSegment{{StartX: from.MinX(), StartY: y, EndX: to.MaxX(), EndY: y, Axis: Horizontal}}
	}

	fcx, fcy := from.Center()
	tcx, tcy := to.Center()
	goingRight := tcx > fcx
	goingDown := tcy > fcy

	startX := from.MinX()
	if goingRight {
		startX = from.MaxX()
	}
	endY := to.MaxY()
	if goingDown {
		endY = to.MinY()
	}
	y := int(math.Floor(fcy))
	cornerX := int(math.Floor(tcx))

	return []CorridorSegment{
		{StartX: startX, StartY: y, EndX: cornerX, EndY: y, Axis: Horizontal},
		{StartX: cornerX, StartY: y, EndX: cornerX, EndY: endY, Axis: Vertical},
	}
}

func floorMid(a, b int) int {
	return int(math.Floor(float64(a+b) / 2))
}
