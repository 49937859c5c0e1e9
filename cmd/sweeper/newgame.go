package main

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/StragaSevera/minesweeper-tutorial/internal/sweep"
)

func (app *application) handleNewGame(w http.ResponseWriter, r *http.Request) {
	dto, err := decodeNewGame(r.URL.Query())
	if err != nil {
		app.badRequest(w)
		return
	}

	log.WithFields(logrus.Fields{
		"width":     dto.Width,
		"height":    dto.Height,
		"bombCount": dto.BombCount,
		"safeStart": dto.SafeStart,
	}).Info("new game request")

	availWidth, availHeight := dto.displayArea()
	session, err := app.sessions.create(dto.boardOptions(), availWidth, availHeight, app.rnd)
	if errors.Is(err, sweep.ErrInvalidDimensions) {
		app.badRequest(w)
		return
	} else if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error("unable to create game session: ", err)
		return
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	app.replyWith(w, session.snapshot())
}
