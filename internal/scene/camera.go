package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Ko-stant/dungeon-layout-engine/internal/level"
)

const (
	cameraHeightFactor   = 0.9
	cameraDistanceFactor = 0.8
)

// LevelBounds is the axis-aligned box around every room floor.
func LevelBounds(rooms []level.Room, t Transform) Bounds {
	if len(rooms) == 0 {
		return Bounds{}
	}
	first := rooms[0].Rect()
	b := Bounds{
		Min: t.GridToWorld(first.MinX(), first.MinY()),
		Max: t.GridToWorld(first.MaxX(), first.MaxY()),
	}
	for _, room := range rooms[1:] {
		r := room.Rect()
		lo := t.GridToWorld(r.MinX(), r.MinY())
		hi := t.GridToWorld(r.MaxX(), r.MaxY())
		b.Min = mgl64.Vec3{min(b.Min.X(), lo.X()), 0, min(b.Min.Z(), lo.Z())}
		b.Max = mgl64.Vec3{max(b.Max.X(), hi.X()), 0, max(b.Max.Z(), hi.Z())}
	}
	return b
}

// Frame places the camera above and behind the center of the bounds, far
// enough back that the larger of width and depth fits in view.
func Frame(b Bounds, opts Options) CameraFraming {
	span := max(b.Width(), b.Depth())
	height := max(opts.MinCameraHeight, span*cameraHeightFactor)
	distance := max(opts.MinCameraDistance, span*cameraDistanceFactor)
	target := b.Center()

	return CameraFraming{
		Target:   target,
		Position: target.Add(mgl64.Vec3{0, height, distance}),
		Height:   height,
		Distance: distance,
		Bounds:   b,
	}
}
