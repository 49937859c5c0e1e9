package sweep

import "fmt"

// Coordinates is a pair of grid indices. X grows rightward, Y grows
// upward, matching the world-space layout of Bounds2. The zero value is
// the bottom-left cell.
//
// Coordinates is comparable and may be used as a map key.
type Coordinates struct {
	X, Y int
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Cmp orders coordinates row-major (Y first, then X). It reports -1, 0
// or +1, suitable for slices.SortFunc.
func (c Coordinates) Cmp(o Coordinates) int {
	if c.Y != o.Y {
		if c.Y < o.Y {
			return -1
		}
		return 1
	}
	if c.X != o.X {
		if c.X < o.X {
			return -1
		}
		return 1
	}
	return 0
}
