// Package sweep implements the minesweeper board state: grid
// generation with bomb placement, cover bookkeeping, and a tick-driven
// flood-fill reveal engine.
package sweep

import (
	"math"
	"math/rand/v2"
)

// SpawnCover is called once per tile while the board is being built.
// The caller (typically the renderer) returns an opaque handle for the
// cover visual it created; Board stores the handle and hands it back
// from Uncover so the caller can dispose of the visual. Board never
// interprets handles.
type SpawnCover[H any] func(c Coordinates, t Tile) H

// Board is the mutable runtime state of one game: a generated TileMap,
// the registry of currently covered coordinates, and the world-space
// rectangle the input collaborator hit-tests against. A coordinate is
// present in the registry iff its tile has not been revealed yet.
type Board[H any] struct {
	tileMap  *TileMap
	tileSize float64
	bounds   Bounds2
	covered  map[Coordinates]H
}

// NewBoard generates a TileMap from opts and builds a fully covered
// board, spawning one cover per tile through spawn. availWidth and
// availHeight describe the display area used to resolve adaptive tile
// sizing. Nil TileSize and Position fall back to the defaults.
func NewBoard[H any](
	opts BoardOptions,
	availWidth, availHeight float64,
	r *rand.Rand,
	spawn SpawnCover[H],
) (*Board[H], error) {
	tileMap, err := NewTileMap(opts.Width, opts.Height, opts.BombCount, r)
	if err != nil {
		return nil, err
	}

	sizing := opts.TileSize
	if sizing == nil {
		sizing = DefaultOptions().TileSize
	}
	placement := opts.Position
	if placement == nil {
		placement = DefaultOptions().Position
	}

	tileSize := sizing.Resolve(availWidth, availHeight, tileMap.Width(), tileMap.Height())
	boardSize := Vec2{
		X: float64(tileMap.Width()) * tileSize,
		Y: float64(tileMap.Height()) * tileSize,
	}

	b := &Board[H]{
		tileMap:  tileMap,
		tileSize: tileSize,
		bounds:   Bounds2{Position: placement.Anchor(boardSize), Size: boardSize},
		covered:  make(map[Coordinates]H, tileMap.Width()*tileMap.Height()),
	}
	for y, row := range tileMap.Rows() {
		for x, t := range row {
			c := Coordinates{X: x, Y: y}
			b.covered[c] = spawn(c, t)
		}
	}
	return b, nil
}

// TileMap exposes the generated grid for the renderer's one-time
// row-major iteration. The map is read-only.
func (b *Board[H]) TileMap() *TileMap { return b.tileMap }

func (b *Board[H]) TileSize() float64 { return b.tileSize }
func (b *Board[H]) Bounds() Bounds2   { return b.bounds }

// TileAt is a read-only pass-through to the TileMap.
func (b *Board[H]) TileAt(c Coordinates) (Tile, bool) {
	return b.tileMap.TileAt(c)
}

// CoveredCount returns the number of tiles not yet revealed.
func (b *Board[H]) CoveredCount() int { return len(b.covered) }

// Resolve returns the cover handle for c if it is currently covered.
// ok is false for out-of-range or already revealed coordinates. No
// side effect.
func (b *Board[H]) Resolve(c Coordinates) (handle H, ok bool) {
	handle, ok = b.covered[c]
	return
}

// Uncover removes c from the covered registry and returns its handle.
// This is the only covered-to-revealed transition. Uncovering a
// coordinate that is not covered is a no-op reporting ok=false, so the
// operation is idempotent per coordinate.
func (b *Board[H]) Uncover(c Coordinates) (handle H, ok bool) {
	handle, ok = b.covered[c]
	if ok {
		delete(b.covered, c)
	}
	return
}

// AdjacentCovered returns the coordinates of every still-covered
// neighbor of c, in row-major order. Out-of-range and already revealed
// neighbors are excluded.
func (b *Board[H]) AdjacentCovered(c Coordinates) (adjacent []Coordinates) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := Coordinates{X: c.X + dx, Y: c.Y + dy}
			if !b.tileMap.InBounds(n) {
				continue
			}
			if _, ok := b.covered[n]; ok {
				adjacent = append(adjacent, n)
			}
		}
	}
	return
}

// CoordinateAt maps a world-space point to the grid coordinate under
// it, using the board's bounds and tile size. ok is false for points
// outside the board.
func (b *Board[H]) CoordinateAt(p Vec2) (c Coordinates, ok bool) {
	if !b.bounds.Contains(p) {
		return Coordinates{}, false
	}
	local := p.Sub(b.bounds.Position)
	return Coordinates{
		X: int(math.Floor(local.X / b.tileSize)),
		Y: int(math.Floor(local.Y / b.tileSize)),
	}, true
}
