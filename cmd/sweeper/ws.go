package main

import (
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
)

type wsReply struct {
	Session gameSessionView  `json:"session"`
	Reports []tickReportView `json:"reports,omitempty"`
}

// handleConnectWs speaks a line-based command protocol: "r x y" queues
// a reveal, "t" advances one tick, "g" is a plain state fetch. Every
// message is answered with the session snapshot plus the tick reports
// it produced.
func (app *application) handleConnectWs(w http.ResponseWriter, r *http.Request) {
	session, ok := app.fetchSession(w, r)
	if !ok {
		return
	}

	c, err := app.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("upgrade: ", err)
		return
	}
	defer c.Close()

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				log.Warn("read: ", err)
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}
		text := strings.TrimSpace(string(message))
		log.Debug("\t> ", text)

		reply := wsReply{}
		session.mu.Lock()
		for _, line := range strings.Split(text, "\n") {
			if err := executeCommand(session, line, &reply.Reports); err != nil {
				session.mu.Unlock()
				log.Error("command: ", err)
				return
			}
		}
		reply.Session = session.snapshot()
		session.mu.Unlock()

		if err := c.WriteJSON(reply); err != nil {
			log.Error("write: ", err)
			break
		}
	}
}
