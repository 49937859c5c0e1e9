package sweep_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StragaSevera/minesweeper-tutorial/internal/sweep"
)

// newTestBoard builds a board whose cover handles are sequential ints,
// standing in for the renderer's entity ids.
func newTestBoard(t *testing.T, opts sweep.BoardOptions) *sweep.Board[int] {
	t.Helper()
	next := 0
	r := rand.New(rand.NewPCG(1, 2))
	board, err := sweep.NewBoard(opts, 700, 800, r, func(sweep.Coordinates, sweep.Tile) int {
		next++
		return next
	})
	require.NoError(t, err)
	return board
}

func TestNewBoardCoversEveryTile(t *testing.T) {
	board := newTestBoard(t, sweep.BoardOptions{Width: 5, Height: 4, BombCount: 3})

	assert.Equal(t, 20, board.CoveredCount())
	seen := make(map[int]bool)
	for y := range 4 {
		for x := range 5 {
			handle, ok := board.Resolve(sweep.Coordinates{X: x, Y: y})
			require.True(t, ok, "(%d, %d) should start covered", x, y)
			assert.False(t, seen[handle], "handle %d reused", handle)
			seen[handle] = true
		}
	}
}

func TestNewBoardInvalidDimensions(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	_, err := sweep.NewBoard(
		sweep.BoardOptions{Width: 0, Height: 5},
		700, 800, r,
		func(sweep.Coordinates, sweep.Tile) int { return 0 },
	)
	assert.ErrorIs(t, err, sweep.ErrInvalidDimensions)
}

func TestUncoverIsIdempotent(t *testing.T) {
	board := newTestBoard(t, sweep.BoardOptions{Width: 3, Height: 3, BombCount: 1})
	c := sweep.Coordinates{X: 1, Y: 1}

	before := board.CoveredCount()
	handle, ok := board.Uncover(c)
	require.True(t, ok)
	assert.NotZero(t, handle)
	assert.Equal(t, before-1, board.CoveredCount())

	_, ok = board.Uncover(c)
	assert.False(t, ok)
	assert.Equal(t, before-1, board.CoveredCount())

	_, ok = board.Resolve(c)
	assert.False(t, ok)
}

func TestUncoverOutOfRange(t *testing.T) {
	board := newTestBoard(t, sweep.BoardOptions{Width: 3, Height: 3, BombCount: 1})

	for _, c := range []sweep.Coordinates{
		{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 3, Y: 0}, {X: 0, Y: 3}, {X: 1000, Y: 1000},
	} {
		_, ok := board.Uncover(c)
		assert.False(t, ok, "coordinates %s", c)
	}
	assert.Equal(t, 9, board.CoveredCount())
}

func TestResolveHasNoSideEffect(t *testing.T) {
	board := newTestBoard(t, sweep.BoardOptions{Width: 3, Height: 3, BombCount: 1})
	c := sweep.Coordinates{X: 0, Y: 0}

	first, ok := board.Resolve(c)
	require.True(t, ok)
	second, ok := board.Resolve(c)
	require.True(t, ok)
	assert.Equal(t, first, second)
	assert.Equal(t, 9, board.CoveredCount())
}

func TestAdjacentCovered(t *testing.T) {
	board := newTestBoard(t, sweep.BoardOptions{Width: 3, Height: 3, BombCount: 0})
	center := sweep.Coordinates{X: 1, Y: 1}

	adjacent := board.AdjacentCovered(center)
	assert.Len(t, adjacent, 8)

	// Corners only have three in-bounds neighbors.
	corner := board.AdjacentCovered(sweep.Coordinates{X: 0, Y: 0})
	assert.ElementsMatch(t, []sweep.Coordinates{
		{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1},
	}, corner)

	// Revealed neighbors disappear from the result.
	_, ok := board.Uncover(sweep.Coordinates{X: 0, Y: 1})
	require.True(t, ok)
	adjacent = board.AdjacentCovered(center)
	assert.Len(t, adjacent, 7)
	assert.NotContains(t, adjacent, sweep.Coordinates{X: 0, Y: 1})
}

func TestAdjacentCoveredIsRowMajorOrdered(t *testing.T) {
	board := newTestBoard(t, sweep.BoardOptions{Width: 3, Height: 3, BombCount: 0})

	adjacent := board.AdjacentCovered(sweep.Coordinates{X: 1, Y: 1})
	for i := 1; i < len(adjacent); i++ {
		assert.Negative(t, adjacent[i-1].Cmp(adjacent[i]))
	}
}

func TestCoordinateAt(t *testing.T) {
	board := newTestBoard(t, sweep.BoardOptions{
		Width:     4,
		Height:    4,
		BombCount: 0,
		TileSize:  sweep.FixedTileSize(10),
		Position:  sweep.Custom(sweep.Vec2{X: 0, Y: 0}),
	})

	tests := []struct {
		point  sweep.Vec2
		want   sweep.Coordinates
		inside bool
	}{
		{sweep.Vec2{X: 0, Y: 0}, sweep.Coordinates{X: 0, Y: 0}, true},
		{sweep.Vec2{X: 9.9, Y: 9.9}, sweep.Coordinates{X: 0, Y: 0}, true},
		{sweep.Vec2{X: 15, Y: 25}, sweep.Coordinates{X: 1, Y: 2}, true},
		{sweep.Vec2{X: 39.9, Y: 39.9}, sweep.Coordinates{X: 3, Y: 3}, true},
		{sweep.Vec2{X: 40, Y: 0}, sweep.Coordinates{}, false},
		{sweep.Vec2{X: -0.1, Y: 0}, sweep.Coordinates{}, false},
	}

	for _, test := range tests {
		c, ok := board.CoordinateAt(test.point)
		assert.Equal(t, test.inside, ok, "point %s", test.point)
		if test.inside {
			assert.Equal(t, test.want, c, "point %s", test.point)
		}
	}
}

func TestBoardBoundsCentered(t *testing.T) {
	board := newTestBoard(t, sweep.BoardOptions{
		Width:     4,
		Height:    2,
		BombCount: 0,
		TileSize:  sweep.FixedTileSize(10),
		Position:  sweep.Centered{Offset: sweep.Vec2{X: 5, Y: -5}},
	})

	bounds := board.Bounds()
	assert.Equal(t, sweep.Vec2{X: -15, Y: -15}, bounds.Position)
	assert.Equal(t, sweep.Vec2{X: 40, Y: 20}, bounds.Size)
	assert.Equal(t, 10.0, board.TileSize())
}
