// Package grid builds the dot lattice and computes its per-frame displacement.
package grid

import (
	"errors"
	"fmt"
	"math"

	"github.com/iburimskiy/dotgrid/internal/config"
)

// ErrInvalidLayout is returned when a lattice cannot be produced with the
// requested dimensions.
var ErrInvalidLayout = errors.New("invalid grid layout")

// Point is a coordinate in the centered, y-up screen space.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Grid is an ordered, fixed-length sequence of points.
type Grid []Point

// Generate lays out the default 20x14 lattice with the given cell size.
func Generate(cellSize float64) (base, current Grid, err error) {
	return GenerateSized(cellSize, config.GridColumns, config.GridRows)
}

// GenerateSized lays out columns*rows points centered on the origin. Points
// are ordered column by column. The two returned grids are equal but do not
// share storage.
func GenerateSized(cellSize float64, columns, rows int) (base, current Grid, err error) {
	if columns <= 0 || rows <= 0 {
		return nil, nil, fmt.Errorf("%w: %dx%d lattice", ErrInvalidLayout, columns, rows)
	}
	if math.IsNaN(cellSize) || math.IsInf(cellSize, 0) || cellSize <= 0 {
		return nil, nil, fmt.Errorf("%w: cell size %v", ErrInvalidLayout, cellSize)
	}

	offsetX := cellSize * float64(columns-1) / 2
	offsetY := cellSize * float64(rows-1) / 2

	base = make(Grid, 0, columns*rows)
	for x := 0; x < columns; x++ {
		for y := 0; y < rows; y++ {
			base = append(base, Point{
				X: float64(x)*cellSize - offsetX,
				Y: float64(y)*cellSize - offsetY,
			})
		}
	}
	if len(base) != columns*rows {
		return nil, nil, fmt.Errorf("%w: got %d points, want %d", ErrInvalidLayout, len(base), columns*rows)
	}

	current = make(Grid, len(base))
	copy(current, base)
	return base, current, nil
}
