package game

import (
	"math"

	"github.com/iburimskiy/dotgrid/internal/grid"
)

// toCentered converts ebiten screen pixels (top-left origin, y down) to the
// centered, y-up space the grid lives in.
func toCentered(sx, sy int, width, height float64) grid.Point {
	return grid.Point{X: float64(sx) - width/2, Y: height/2 - float64(sy)}
}

// toScreen is the inverse of toCentered.
func toScreen(p grid.Point, width, height float64) (float64, float64) {
	return p.X + width/2, height/2 - p.Y
}

func finite(p grid.Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
