package sweep

import "github.com/sirupsen/logrus"

var Log = logrus.New()

// Reveal describes one tile uncovered during a tick: the coordinate,
// the cover handle the renderer must dispose of, and the tile content
// now visible.
type Reveal[H any] struct {
	Coordinates Coordinates
	Handle      H
	Tile        Tile
}

// TickReport is the outcome of one tick. Exploded carries the bomb
// coordinates hit this tick; a non-empty slice is the loss signal.
// Scheduled is the number of coordinates queued for the next tick by
// propagation.
type TickReport[H any] struct {
	Revealed  []Reveal[H]
	Exploded  []Coordinates
	Scheduled int
}

// RevealEngine drains pending reveal requests one tick at a time.
// Uncovering an empty tile schedules its covered neighbors for the
// next tick, so a reveal spreads one adjacency ring per tick.
//
// The engine is single-writer: all calls must come from the simulation
// loop that owns the Board.
type RevealEngine[H any] struct {
	board   *Board[H]
	pending []Coordinates
	// queued holds every coordinate ever scheduled. Reveals are
	// monotonic, so once queued a coordinate never needs to be
	// queued again.
	queued   map[Coordinates]struct{}
	exploded bool
}

// NewRevealEngine wraps a freshly built board. With safeStart the
// first empty tile in row-major order, if any, is queued so the first
// tick already reveals a zero-neighbor region.
func NewRevealEngine[H any](board *Board[H], safeStart bool) *RevealEngine[H] {
	e := &RevealEngine[H]{
		board:  board,
		queued: make(map[Coordinates]struct{}),
	}
	if safeStart {
		if c, ok := board.TileMap().FirstEmpty(); ok {
			e.schedule(c)
		}
	}
	return e
}

func (e *RevealEngine[H]) schedule(c Coordinates) {
	if _, ok := e.queued[c]; ok {
		return
	}
	e.queued[c] = struct{}{}
	e.pending = append(e.pending, c)
}

// Request merges an external trigger (a click, typically) into the
// pending set for the next tick. Requests for out-of-range or already
// revealed coordinates report false and are dropped; duplicates of an
// already queued coordinate are absorbed.
func (e *RevealEngine[H]) Request(c Coordinates) bool {
	if _, ok := e.board.Resolve(c); !ok {
		Log.WithField("coordinates", c.String()).
			Debug("ignoring reveal request for an uncoverable tile")
		return false
	}
	e.schedule(c)
	return true
}

// Tick processes the current pending set to completion. Each pending
// coordinate is uncovered through the board; bombs are recorded in the
// report and stop propagation, empty tiles schedule their covered
// neighbors for the following tick. A coordinate already revealed by
// an earlier path is skipped, which is the expected race between
// trigger and propagation requests.
func (e *RevealEngine[H]) Tick() TickReport[H] {
	batch := e.pending
	e.pending = nil

	var report TickReport[H]
	for _, c := range batch {
		handle, ok := e.board.Uncover(c)
		if !ok {
			Log.WithField("coordinates", c.String()).
				Debug("tried to uncover an already uncovered tile")
			continue
		}
		tile, _ := e.board.TileAt(c)
		report.Revealed = append(report.Revealed, Reveal[H]{
			Coordinates: c,
			Handle:      handle,
			Tile:        tile,
		})
		switch {
		case tile.IsBomb():
			e.exploded = true
			report.Exploded = append(report.Exploded, c)
		case tile == TileEmpty:
			for _, n := range e.board.AdjacentCovered(c) {
				e.schedule(n)
			}
		}
	}
	report.Scheduled = len(e.pending)
	return report
}

// Exploded reports whether any tick so far revealed a bomb.
func (e *RevealEngine[H]) Exploded() bool { return e.exploded }

// PendingCount returns the number of coordinates queued for the next
// tick.
func (e *RevealEngine[H]) PendingCount() int { return len(e.pending) }

// Quiescent reports whether the next tick would do no work.
func (e *RevealEngine[H]) Quiescent() bool { return len(e.pending) == 0 }
