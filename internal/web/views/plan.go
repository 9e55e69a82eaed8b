// Package views renders the server's HTML pages. The .templ files are the
// sources; run `templ generate` after editing them.
package views

import (
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"github.com/Ko-stant/dungeon-layout-engine/internal/scene"
)

const (
	planMargin = 4.0
	planScale  = 8.0
)

type svgLineShape struct {
	X1, Y1, X2, Y2 string
	Stroke         string
	Width          string
}

type svgRectShape struct {
	X, Y, W, H string
	Fill       string
	Title      string
}

type svgDotShape struct {
	X, Y  string
	Fill  string
	Title string
}

// plan is a scene flattened to SVG attribute values: world X to the right,
// world Z down.
type plan struct {
	Width, Height string
	ViewBox       string
	Corridors     []svgLineShape
	Junctions     []svgRectShape
	Rooms         []svgRectShape
	Walls         []svgLineShape
	Markers       []svgDotShape
}

// Plan draws the scene from above.
func Plan(sc scene.Scene) templ.Component {
	return planSVG(newPlan(sc))
}

func newPlan(sc scene.Scene) plan {
	b := sc.Camera.Bounds
	minX, minZ := b.Min.X()-planMargin, b.Min.Z()-planMargin
	width, height := b.Width()+2*planMargin, b.Depth()+2*planMargin

	p := plan{
		Width:   strconv.FormatFloat(width*planScale, 'f', 0, 64),
		Height:  strconv.FormatFloat(height*planScale, 'f', 0, 64),
		ViewBox: num(minX) + " " + num(minZ) + " " + num(width) + " " + num(height),
	}
	for _, c := range sc.Corridors {
		p.Corridors = append(p.Corridors, svgLineShape{
			X1: num(c.Start.X()), Y1: num(c.Start.Z()), X2: num(c.End.X()), Y2: num(c.End.Z()),
			Stroke: c.Color, Width: num(c.Width),
		})
	}
	for _, j := range sc.Junctions {
		p.Junctions = append(p.Junctions, svgRectShape{
			X: num(j.Position.X() - j.Size.W/2), Y: num(j.Position.Z() - j.Size.D/2),
			W: num(j.Size.W), H: num(j.Size.D), Fill: j.Color,
		})
	}
	for _, r := range sc.Rooms {
		p.Rooms = append(p.Rooms, svgRectShape{
			X: num(r.Position.X() - r.Size.W/2), Y: num(r.Position.Z() - r.Size.D/2),
			W: num(r.Size.W), H: num(r.Size.D), Fill: r.Style.FloorColor, Title: r.Name,
		})
	}
	for _, w := range sc.Walls {
		p.Walls = append(p.Walls, svgLineShape{
			X1: num(w.Start.X()), Y1: num(w.Start.Z()), X2: num(w.End.X()), Y2: num(w.End.Z()),
			Stroke: w.Color, Width: num(w.Thickness * 2),
		})
	}
	for _, m := range sc.POIMarkers {
		p.Markers = append(p.Markers, svgDotShape{
			X: num(m.Position.X()), Y: num(m.Position.Z()), Fill: m.Color, Title: m.Label,
		})
	}
	return p
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func levelURL(id string) templ.SafeURL {
	return templ.SafeURL("/levels/" + url.PathEscape(id))
}
