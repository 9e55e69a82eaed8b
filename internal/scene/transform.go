package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Ko-stant/dungeon-layout-engine/internal/level"
)

// Transform maps grid coordinates onto the single ground plane of the scene:
// grid X runs along world X, grid Y along world Z, and world Y is up.
type Transform struct {
	CellSize float64
}

func NewTransform(cellSize float64) Transform {
	if cellSize <= 0 || math.IsNaN(cellSize) || math.IsInf(cellSize, 0) {
		cellSize = level.DefaultCellSize
	}
	return Transform{CellSize: cellSize}
}

// TransformFor returns the transform fixed by a level's grid config.
func TransformFor(lvl level.Level) Transform {
	return NewTransform(lvl.Grid.CellSize)
}

func (t Transform) GridToWorld(x, y int) mgl64.Vec3 {
	return t.PointToWorld(float64(x), float64(y))
}

func (t Transform) PointToWorld(x, y float64) mgl64.Vec3 {
	return mgl64.Vec3{x * t.CellSize, 0, y * t.CellSize}
}

// WorldToGrid snaps a world position to the nearest grid point.
func (t Transform) WorldToGrid(p mgl64.Vec3) (int, int) {
	return int(math.Round(p.X() / t.CellSize)), int(math.Round(p.Z() / t.CellSize))
}

// Cells converts a length in cells to meters.
func (t Transform) Cells(n int) float64 {
	return float64(n) * t.CellSize
}

func (t Transform) RoomCenter(r level.Room) mgl64.Vec3 {
	cx, cy := r.Rect().Center()
	return t.PointToWorld(cx, cy)
}
