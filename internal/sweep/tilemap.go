package sweep

import (
	"errors"
	"fmt"
	"iter"
	"math/rand/v2"
	"strings"
)

var ErrInvalidDimensions = errors.New("invalid board dimensions")

// TileMap is a rectangular grid of tiles. It is generated once and
// read-only afterwards; all runtime state lives on Board.
type TileMap struct {
	width, height int
	bombCount     int
	tiles         []Tile // y*width+x
}

// NewTileMap generates a grid of the given dimensions with bombCount
// bombs placed uniformly at distinct cells, then derives bomb-neighbor
// counts for every safe cell. A bombCount of width*height or more fills
// the whole grid with bombs.
//
// Generation is deterministic for a fixed r.
func NewTileMap(width, height, bombCount int, r *rand.Rand) (*TileMap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if bombCount > width*height {
		bombCount = width * height
	}
	m := &TileMap{
		width:     width,
		height:    height,
		bombCount: bombCount,
		tiles:     make([]Tile, width*height),
	}

	// Write down the list of possible bomb locations, then pick
	// bombCount off it at random without replacement.
	candidates := make([]int, width*height)
	for i := range candidates {
		candidates[i] = i
	}
	k := len(candidates)
	for range bombCount {
		i := r.IntN(k)
		m.tiles[candidates[i]] = TileBomb
		k--
		candidates[i] = candidates[k]
	}

	m.deriveNeighborCounts()
	return m, nil
}

// deriveNeighborCounts assigns a bomb-neighbor count to every safe
// cell. Cells with zero adjacent bombs stay empty, which is what makes
// flood-fill propagation through empty tiles safe.
func (m *TileMap) deriveNeighborCounts() {
	for y := range m.height {
		for x := range m.width {
			i := y*m.width + x
			if m.tiles[i] == TileBomb {
				continue
			}
			if n := m.adjacentBombs(x, y); n > 0 {
				m.tiles[i] = BombNeighbor(n)
			}
		}
	}
}

func (m *TileMap) adjacentBombs(x, y int) (n int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			xx, yy := x+dx, y+dy
			if xx >= 0 && xx < m.width &&
				yy >= 0 && yy < m.height &&
				m.tiles[yy*m.width+xx] == TileBomb {
				n++
			}
		}
	}
	return
}

func (m *TileMap) Width() int     { return m.width }
func (m *TileMap) Height() int    { return m.height }
func (m *TileMap) BombCount() int { return m.bombCount }

func (m *TileMap) InBounds(c Coordinates) bool {
	return c.X >= 0 && c.X < m.width && c.Y >= 0 && c.Y < m.height
}

// TileAt returns the tile at c, and false for out-of-range coordinates.
func (m *TileMap) TileAt(c Coordinates) (Tile, bool) {
	if !m.InBounds(c) {
		return TileEmpty, false
	}
	return m.tiles[c.Y*m.width+c.X], true
}

// Rows yields each row index with its tiles, y ascending. Rows are
// views into the map's backing array and must not be mutated.
func (m *TileMap) Rows() iter.Seq2[int, []Tile] {
	return func(yield func(int, []Tile) bool) {
		for y := range m.height {
			if !yield(y, m.tiles[y*m.width:(y+1)*m.width]) {
				return
			}
		}
	}
}

// FirstEmpty scans the grid row-major and returns the first empty tile,
// used for safe-start selection. ok is false when no empty tile exists,
// e.g. when every cell holds a bomb.
func (m *TileMap) FirstEmpty() (c Coordinates, ok bool) {
	for y := range m.height {
		for x := range m.width {
			if m.tiles[y*m.width+x] == TileEmpty {
				return Coordinates{X: x, Y: y}, true
			}
		}
	}
	return Coordinates{}, false
}

// ConsoleString renders the grid for debug logging, one glyph per tile.
func (m *TileMap) ConsoleString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%dx%d (%d bombs)\n", m.width, m.height, m.bombCount)
	for _, row := range m.Rows() {
		for _, t := range row {
			fmt.Fprint(&b, t.String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
