package main

import "net/http"

// handleTick advances the session by exactly one tick and returns the
// report: the uncovered tiles with their cover entities (so the client
// can despawn the visuals) and any bombs hit.
func (app *application) handleTick(w http.ResponseWriter, r *http.Request) {
	session, ok := app.fetchSession(w, r)
	if !ok {
		return
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	report := session.engine.Tick()
	if len(report.Exploded) > 0 {
		log.WithField("session", session.id).Info("boom!")
	}
	app.replyWith(w, newTickReportView(report))
}
