package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/dotgrid/internal/grid"
)

// PointerState is the input consumed by one tick, in centered coordinates.
type PointerState struct {
	Cursor  grid.Point
	Pressed bool // primary button went down this tick
	PressAt grid.Point
}

// edgeDetector turns a held button into a single press event.
type edgeDetector struct {
	prev bool
}

func (e *edgeDetector) update(down bool) bool {
	jp := down && !e.prev
	e.prev = down
	return jp
}

// samplePointer reads the mouse for a window of the given size.
func samplePointer(btn *edgeDetector, width, height float64) PointerState {
	mx, my := ebiten.CursorPosition()
	cursor := toCentered(mx, my, width, height)

	p := PointerState{Cursor: cursor}
	if btn.update(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)) {
		p.Pressed = true
		p.PressAt = cursor
	}
	return p
}
