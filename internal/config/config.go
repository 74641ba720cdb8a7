package config

import "time"

const (
	// Fallback window size; the window starts maximized and the grid is
	// laid out from whatever size the first Layout call reports.
	WindowWidth  = 1280
	WindowHeight = 800
	WindowTitle  = "Dot Grid - Esc/Q: Quit"

	// Grid dimensions
	GridColumns = 20
	GridRows    = 14

	// Displacement strength
	DefaultStrength = 50
	MinStrength     = 1
	MaxStrength     = 255

	// Button column, measured from the top-left corner of the window
	ButtonLeft    = 20
	ButtonRight   = 80
	ButtonRadius  = 30
	SwatchRadius  = 20
	GlyphSize     = 64
	ActiveStroke  = 3
	PassiveStroke = 2

	// Dots
	DotRadius = 2

	// Click feedback
	ClickSampleRate = 44100
	ClickDuration   = 60 * time.Millisecond
	ClickVolume     = 0.25
	ModeClickHz     = 660
	ColorClickHz    = 880
)
