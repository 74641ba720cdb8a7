package game

import (
	"errors"
	"fmt"

	"github.com/iburimskiy/dotgrid/internal/config"
	"github.com/iburimskiy/dotgrid/internal/grid"
	"github.com/iburimskiy/dotgrid/internal/ui"
)

// ErrInvalidStrength is returned by NewState for a strength outside
// [config.MinStrength, config.MaxStrength].
var ErrInvalidStrength = errors.New("strength out of range")

// State is everything the toy knows between frames. It is owned by the
// frame loop and never shared.
type State struct {
	Width, Height float64

	Mode     grid.Mode
	Color    ui.PaletteColor
	Strength int

	// Base holds rest positions, Current the displaced ones. Both are
	// replaced together whenever the layout changes.
	Base    grid.Grid
	Current grid.Grid
}

// Frame is the per-frame hand-off to the renderer.
type Frame struct {
	Points   grid.Grid
	Color    ui.PaletteColor
	Hotspots []ui.Hotspot
	Active   []bool
}

// NewState lays out the initial grid for a window of the given size, in
// Pull mode with white dots.
func NewState(width, height float64, strength int) (*State, error) {
	if strength < config.MinStrength || strength > config.MaxStrength {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStrength, strength)
	}

	s := &State{
		Width:    width,
		Height:   height,
		Mode:     grid.Pull,
		Color:    ui.White,
		Strength: strength,
	}
	if err := s.layout(grid.Pull); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *State) layout(mode grid.Mode) error {
	base, current, err := grid.Generate(mode.CellSize(s.Height))
	if err != nil {
		return fmt.Errorf("layout for %v mode in %vx%v window: %w", mode, s.Width, s.Height, err)
	}
	s.Base, s.Current = base, current
	return nil
}

// Apply performs a. Selecting the value that is already active does
// nothing, so the grid is kept as is. A mode change lays the grid out again
// with that mode's cell size.
func (s *State) Apply(a ui.Action) (changed bool, err error) {
	switch a.Kind {
	case ui.SetMode:
		if a.Mode == s.Mode {
			return false, nil
		}
		if err := s.layout(a.Mode); err != nil {
			return false, err
		}
		s.Mode = a.Mode
		return true, nil
	case ui.SetColor:
		if a.Color == s.Color {
			return false, nil
		}
		s.Color = a.Color
		return true, nil
	}
	return false, nil
}

// Tick advances one frame: a fresh press is hit-tested and its action
// applied, then the grid is displaced toward or away from the cursor. The
// applied action is returned with ok set when the press changed anything.
func (s *State) Tick(p PointerState) (applied ui.Action, ok bool, err error) {
	if p.Pressed {
		if a, hit := ui.HitTest(p.PressAt, s.Width, s.Height); hit {
			changed, err := s.Apply(a)
			if err != nil {
				return ui.Action{}, false, err
			}
			if changed {
				applied, ok = a, true
			}
		}
	}

	s.Current = grid.Displace(s.Base, s.Current, p.Cursor, s.Mode, float64(s.Strength))
	return applied, ok, nil
}

// Frame snapshots what the renderer needs. Points aliases s.Current.
func (s *State) Frame() Frame {
	spots := ui.Hotspots(s.Width, s.Height)
	active := make([]bool, len(spots))
	for i, h := range spots {
		active[i] = h.Action.Selected(s.Mode, s.Color)
	}
	return Frame{
		Points:   s.Current,
		Color:    s.Color,
		Hotspots: spots,
		Active:   active,
	}
}
