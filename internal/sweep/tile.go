package sweep

import "strconv"

// Tile is the ground-truth content of one grid cell.
//
//   - TileBomb (-1) means the cell holds a bomb.
//   - TileEmpty (0) means the cell holds no bomb and none of its
//     neighbors do either.
//   - 1 to 8 mean the cell holds no bomb but that many of its
//     Chebyshev-adjacent cells do.
type Tile int8

const (
	TileBomb  Tile = -1
	TileEmpty Tile = 0
)

// BombNeighbor returns the tile for a safe cell with n adjacent bombs.
// n must be in [1, 8].
func BombNeighbor(n int) Tile {
	if n < 1 || n > 8 {
		panic("sweep: bomb neighbor count out of range")
	}
	return Tile(n)
}

func (t Tile) IsBomb() bool {
	return t == TileBomb
}

func (t Tile) IsBombNeighbor() bool {
	return 1 <= t && t <= 8
}

// NeighborCount returns the number of adjacent bombs for a safe tile,
// and 0 for a bomb tile.
func (t Tile) NeighborCount() int {
	if t.IsBombNeighbor() {
		return int(t)
	}
	return 0
}

func (t Tile) String() string {
	switch {
	case t == TileBomb:
		return "*"
	case t == TileEmpty:
		return " "
	case t.IsBombNeighbor():
		return strconv.Itoa(int(t))
	default:
		return "!"
	}
}
