package main

import (
	"net/http"

	"github.com/StragaSevera/minesweeper-tutorial/internal/sweep"
)

// handleReveal queues a reveal request for the next tick. Requests for
// revealed or out-of-range coordinates are absorbed without effect.
func (app *application) handleReveal(w http.ResponseWriter, r *http.Request) {
	session, ok := app.fetchSession(w, r)
	if !ok {
		return
	}

	p, err := decodePoint(r.URL.Query())
	if err != nil {
		app.badRequest(w)
		return
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	session.engine.Request(sweep.Coordinates{X: p.X, Y: p.Y})
	app.replyWith(w, session.snapshot())
}
