package sweep_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StragaSevera/minesweeper-tutorial/internal/sweep"
)

func TestSingleEmptyTile(t *testing.T) {
	board := newTestBoard(t, sweep.BoardOptions{Width: 1, Height: 1, BombCount: 0})
	engine := sweep.NewRevealEngine(board, true)

	require.Equal(t, 1, engine.PendingCount())

	report := engine.Tick()
	require.Len(t, report.Revealed, 1)
	assert.Equal(t, sweep.TileEmpty, report.Revealed[0].Tile)
	assert.Empty(t, report.Exploded)
	assert.Zero(t, report.Scheduled)
	assert.Zero(t, board.CoveredCount())
	assert.True(t, engine.Quiescent())
}

func TestSafeStartRevealsEmptyFirst(t *testing.T) {
	board := newTestBoard(t, sweep.BoardOptions{Width: 9, Height: 9, BombCount: 10})
	engine := sweep.NewRevealEngine(board, true)

	require.Equal(t, 1, engine.PendingCount())

	report := engine.Tick()
	require.Len(t, report.Revealed, 1)
	assert.Equal(t, sweep.TileEmpty, report.Revealed[0].Tile)
}

func TestSafeStartWithAllBombs(t *testing.T) {
	board := newTestBoard(t, sweep.BoardOptions{Width: 3, Height: 3, BombCount: 9})
	engine := sweep.NewRevealEngine(board, true)

	assert.True(t, engine.Quiescent())

	report := engine.Tick()
	assert.Empty(t, report.Revealed)
	assert.Equal(t, 9, board.CoveredCount())
}

func TestCenterRevealSpreadsOneRingPerTick(t *testing.T) {
	board := newTestBoard(t, sweep.BoardOptions{Width: 5, Height: 5, BombCount: 0})
	engine := sweep.NewRevealEngine(board, false)

	require.True(t, engine.Request(sweep.Coordinates{X: 2, Y: 2}))

	first := engine.Tick()
	assert.Len(t, first.Revealed, 1)
	assert.Equal(t, 8, first.Scheduled)
	assert.Equal(t, 24, board.CoveredCount())

	second := engine.Tick()
	assert.Len(t, second.Revealed, 8)
	assert.Equal(t, 16, second.Scheduled)
	assert.Equal(t, 16, board.CoveredCount())

	third := engine.Tick()
	assert.Len(t, third.Revealed, 16)
	assert.Zero(t, third.Scheduled)
	assert.Zero(t, board.CoveredCount())
	assert.True(t, engine.Quiescent())
}

func TestBombRevealStopsPropagation(t *testing.T) {
	board := newTestBoard(t, sweep.BoardOptions{Width: 3, Height: 3, BombCount: 9})
	engine := sweep.NewRevealEngine(board, false)

	c := sweep.Coordinates{X: 1, Y: 1}
	require.True(t, engine.Request(c))

	report := engine.Tick()
	require.Len(t, report.Revealed, 1)
	assert.True(t, report.Revealed[0].Tile.IsBomb())
	assert.Equal(t, []sweep.Coordinates{c}, report.Exploded)
	assert.Zero(t, report.Scheduled)
	assert.True(t, engine.Exploded())
	assert.Equal(t, 8, board.CoveredCount())
}

func TestDuplicateRequestsProcessedOnce(t *testing.T) {
	board := newTestBoard(t, sweep.BoardOptions{Width: 5, Height: 5, BombCount: 0})
	engine := sweep.NewRevealEngine(board, false)

	c := sweep.Coordinates{X: 2, Y: 2}
	assert.True(t, engine.Request(c))
	assert.True(t, engine.Request(c))
	assert.Equal(t, 1, engine.PendingCount())

	report := engine.Tick()
	assert.Len(t, report.Revealed, 1)
}

func TestRequestRejectsUncoverable(t *testing.T) {
	board := newTestBoard(t, sweep.BoardOptions{Width: 3, Height: 3, BombCount: 0})
	engine := sweep.NewRevealEngine(board, false)

	assert.False(t, engine.Request(sweep.Coordinates{X: -1, Y: 0}))
	assert.False(t, engine.Request(sweep.Coordinates{X: 3, Y: 3}))

	c := sweep.Coordinates{X: 0, Y: 0}
	_, ok := board.Uncover(c)
	require.True(t, ok)
	assert.False(t, engine.Request(c))
	assert.Zero(t, engine.PendingCount())
}

func TestOverlappingRequestsRevealEachTileOnce(t *testing.T) {
	board := newTestBoard(t, sweep.BoardOptions{Width: 5, Height: 5, BombCount: 0})
	engine := sweep.NewRevealEngine(board, false)

	require.True(t, engine.Request(sweep.Coordinates{X: 2, Y: 2}))
	require.True(t, engine.Request(sweep.Coordinates{X: 2, Y: 3}))

	revealed := 0
	for tick := 0; !engine.Quiescent(); tick++ {
		require.Less(t, tick, 25, "propagation must terminate")
		report := engine.Tick()
		revealed += len(report.Revealed)
	}
	assert.Equal(t, 25, revealed)
	assert.Zero(t, board.CoveredCount())
}

func TestPropagationTerminates(t *testing.T) {
	board := newTestBoard(t, sweep.BoardOptions{Width: 16, Height: 16, BombCount: 40})
	engine := sweep.NewRevealEngine(board, true)

	covered := board.CoveredCount()
	for tick := 0; !engine.Quiescent(); tick++ {
		require.Less(t, tick, 16*16, "propagation must terminate")
		engine.Tick()
		assert.LessOrEqual(t, board.CoveredCount(), covered)
		covered = board.CoveredCount()
	}
	assert.False(t, engine.Exploded())
}
