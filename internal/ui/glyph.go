package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"

	"github.com/iburimskiy/dotgrid/internal/config"
	"github.com/iburimskiy/dotgrid/internal/grid"
)

const (
	arrowNear  = 5.0
	arrowFar   = 15.0
	arrowWidth = 2.0
	arrowHead  = 4.0
)

// RenderGlyph rasterizes the button for a into a square image of
// config.GlyphSize pixels. Active buttons get a thicker white ring.
func RenderGlyph(a Action, active bool) image.Image {
	dc := gg.NewContext(config.GlyphSize, config.GlyphSize)
	c := float64(config.GlyphSize) / 2

	ring, weight := color.Color(colornames.Gray), float64(config.PassiveStroke)
	if active {
		ring, weight = colornames.White, float64(config.ActiveStroke)
	}

	dc.DrawCircle(c, c, config.ButtonRadius)
	dc.SetColor(colornames.Black)
	dc.FillPreserve()
	dc.SetColor(ring)
	dc.SetLineWidth(weight)
	dc.Stroke()

	switch a.Kind {
	case SetMode:
		drawModeArrows(dc, c, a.Mode)
	case SetColor:
		dc.DrawCircle(c, c, config.SwatchRadius)
		dc.SetColor(a.Color.RGBA())
		dc.Fill()
	}
	return dc.Image()
}

// drawModeArrows draws four arrows around the glyph center, pointing in
// for Pull and out for Push.
func drawModeArrows(dc *gg.Context, c float64, mode grid.Mode) {
	dirs := [4][2]float64{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

	from, to := arrowFar, arrowNear
	if mode == grid.Push {
		from, to = arrowNear, arrowFar
	}

	dc.SetColor(colornames.White)
	for _, d := range dirs {
		drawArrow(dc, c+d[0]*from, c+d[1]*from, c+d[0]*to, c+d[1]*to)
	}
}

func drawArrow(dc *gg.Context, fx, fy, tx, ty float64) {
	dx := tx - fx
	dy := ty - fy
	length := math.Sqrt(dx*dx + dy*dy)
	if length < 0.1 {
		return
	}
	dx /= length
	dy /= length

	// shaft stops at the base of the head
	bx := tx - dx*arrowHead
	by := ty - dy*arrowHead
	dc.SetLineWidth(arrowWidth)
	dc.DrawLine(fx, fy, bx, by)
	dc.Stroke()

	half := arrowHead / 2
	dc.MoveTo(tx, ty)
	dc.LineTo(bx+dy*half, by-dx*half)
	dc.LineTo(bx-dy*half, by+dx*half)
	dc.ClosePath()
	dc.Fill()
}
