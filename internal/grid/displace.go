package grid

// Mode selects the displacement formula.
type Mode int

const (
	Pull Mode = iota
	Push
)

func (m Mode) String() string {
	switch m {
	case Pull:
		return "pull"
	case Push:
		return "push"
	default:
		return "unknown"
	}
}

// CellSize returns the lattice spacing used when the grid is laid out for m
// in a window of the given height. The two formulas differ on purpose.
func (m Mode) CellSize(height float64) float64 {
	if m == Push {
		return (height - 150) / 14
	}
	return (height - 130) / 13
}

// Displace recomputes every point of current from its rest position in base.
// The result depends only on base, cursor, mode and strength. current is
// reused when it has the same length as base.
//
// In Push mode a base point sitting exactly under the cursor divides by zero
// and yields non-finite coordinates.
func Displace(base, current Grid, cursor Point, mode Mode, strength float64) Grid {
	if len(current) != len(base) {
		current = make(Grid, len(base))
	}

	for i, orig := range base {
		d := orig.Dist(cursor)
		delta := cursor.Sub(orig)

		switch mode {
		case Pull:
			if d > strength {
				current[i] = Point{
					X: orig.X + delta.X/d*strength,
					Y: orig.Y + delta.Y/d*strength,
				}
			} else {
				current[i] = cursor
			}
		case Push:
			current[i] = Point{
				X: orig.X - delta.X/d*strength,
				Y: orig.Y - delta.Y/d*strength,
			}
		default:
			current[i] = orig
		}
	}
	return current
}
