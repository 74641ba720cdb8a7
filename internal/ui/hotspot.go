// Package ui holds the clickable button column: its hotspot table, the
// palette it selects from and the glyphs drawn for each button.
package ui

import (
	"fmt"

	"github.com/iburimskiy/dotgrid/internal/config"
	"github.com/iburimskiy/dotgrid/internal/grid"
)

// ActionKind tags which field of an Action is meaningful.
type ActionKind int

const (
	SetMode ActionKind = iota
	SetColor
)

// Action is what a button does when pressed.
type Action struct {
	Kind  ActionKind
	Mode  grid.Mode
	Color PaletteColor
}

// ModeAction switches the displacement mode.
func ModeAction(m grid.Mode) Action {
	return Action{Kind: SetMode, Mode: m}
}

// ColorAction switches the dot color.
func ColorAction(c PaletteColor) Action {
	return Action{Kind: SetColor, Color: c}
}

func (a Action) String() string {
	if a.Kind == SetMode {
		return fmt.Sprintf("SetMode(%v)", a.Mode)
	}
	return fmt.Sprintf("SetColor(%v)", a.Color)
}

// Selected reports whether a matches the given active mode and color.
func (a Action) Selected(mode grid.Mode, color PaletteColor) bool {
	if a.Kind == SetMode {
		return a.Mode == mode
	}
	return a.Color == color
}

// Hotspot is a named rectangle in centered, y-up coordinates. Bounds are
// inclusive.
type Hotspot struct {
	Name       string
	MinX, MaxX float64
	MinY, MaxY float64
	Action     Action
}

// Contains reports whether p lies inside or on the edge of h.
func (h Hotspot) Contains(p grid.Point) bool {
	return p.X >= h.MinX && p.X <= h.MaxX &&
		p.Y >= h.MinY && p.Y <= h.MaxY
}

// Center returns the middle of h.
func (h Hotspot) Center() grid.Point {
	return grid.Point{X: (h.MinX + h.MaxX) / 2, Y: (h.MinY + h.MaxY) / 2}
}

// buttonRows lists each button's vertical extent as offsets below the top
// edge of the window, in table order.
var buttonRows = []struct {
	name        string
	top, bottom float64
	action      Action
}{
	{"Mode:Pull", 20, 80, ModeAction(grid.Pull)},
	{"Mode:Push", 100, 160, ModeAction(grid.Push)},
	{"Color:White", 260, 320, ColorAction(White)},
	{"Color:SpringGreen", 340, 400, ColorAction(SpringGreen)},
	{"Color:Cyan", 420, 480, ColorAction(Cyan)},
	{"Color:HotPink", 500, 560, ColorAction(HotPink)},
}

// Hotspots returns the ordered button table for a window of the given size.
func Hotspots(width, height float64) []Hotspot {
	minX := -width/2 + config.ButtonLeft
	maxX := -width/2 + config.ButtonRight

	out := make([]Hotspot, 0, len(buttonRows))
	for _, r := range buttonRows {
		out = append(out, Hotspot{
			Name:   r.name,
			MinX:   minX,
			MaxX:   maxX,
			MinY:   height/2 - r.bottom,
			MaxY:   height/2 - r.top,
			Action: r.action,
		})
	}
	return out
}

// HitTest returns the action of the first hotspot containing press.
func HitTest(press grid.Point, width, height float64) (Action, bool) {
	for _, h := range Hotspots(width, height) {
		if h.Contains(press) {
			return h.Action, true
		}
	}
	return Action{}, false
}
