package main

import "net/http"

func (app *application) handleGetGame(w http.ResponseWriter, r *http.Request) {
	session, ok := app.fetchSession(w, r)
	if !ok {
		return
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	app.replyWith(w, session.snapshot())
}
