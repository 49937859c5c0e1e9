package main

import (
	"encoding/json"
	"hash/maphash"
	"math/rand/v2"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/StragaSevera/minesweeper-tutorial/internal/middleware"
)

type application struct {
	sessions *sessionRegistry
	rnd      *rand.Rand
	upgrader websocket.Upgrader
}

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func newApplication() *application {
	return &application{
		sessions: newSessionRegistry(),
		rnd:      createRand(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (app *application) buildHandler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/game", app.handleNewGame)
	mux.HandleFunc("GET /v1/game/{id}", app.handleGetGame)
	mux.HandleFunc("POST /v1/game/{id}/reveal", app.handleReveal)
	mux.HandleFunc("POST /v1/game/{id}/tick", app.handleTick)
	mux.HandleFunc("GET /v1/game/{id}/connect", app.handleConnectWs)

	return middleware.Wrap(mux,
		middleware.Cors(),
		middleware.Logging(log),
	)
}

func (app *application) badRequest(w http.ResponseWriter) {
	w.WriteHeader(http.StatusBadRequest)
	w.Write([]byte("your request is invalid"))
}

func (app *application) notFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte("not found :("))
}

func (app *application) replyWith(w http.ResponseWriter, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		log.Error("failed to marshal json: ", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err = w.Write(payload); err != nil {
		log.Error("failed to send data: ", err)
	}
}

// fetchSession pulls the {id} path value and looks the session up.
func (app *application) fetchSession(w http.ResponseWriter, r *http.Request) (*gameSession, bool) {
	session, ok := app.sessions.get(r.PathValue("id"))
	if !ok {
		app.notFound(w)
		return nil, false
	}
	return session, true
}
