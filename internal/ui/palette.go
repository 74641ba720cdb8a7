package ui

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// PaletteColor is the dot color picked with the color buttons.
type PaletteColor int

const (
	White PaletteColor = iota
	Cyan
	HotPink
	SpringGreen
)

func (c PaletteColor) String() string {
	switch c {
	case White:
		return "white"
	case Cyan:
		return "cyan"
	case HotPink:
		return "hotpink"
	case SpringGreen:
		return "springgreen"
	default:
		return "unknown"
	}
}

// RGBA maps c to its display color. Unknown values render white.
func (c PaletteColor) RGBA() color.RGBA {
	switch c {
	case Cyan:
		return colornames.Cyan
	case HotPink:
		return colornames.Hotpink
	case SpringGreen:
		return colornames.Springgreen
	default:
		return colornames.White
	}
}
