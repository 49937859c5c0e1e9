package main

import (
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"github.com/StragaSevera/minesweeper-tutorial/internal/sweep"
)

// Display area the adaptive tile sizing is resolved against when the
// client does not report its own.
const (
	defaultDisplayWidth  = 700.
	defaultDisplayHeight = 800.
)

// gameSession binds one board and its reveal engine to a session id.
// mu serializes every board mutation, standing in for the simulation
// thread: handlers and the websocket loop never touch the board or the
// engine without holding it.
type gameSession struct {
	mu sync.Mutex

	id        int
	board     *sweep.Board[uint64]
	engine    *sweep.RevealEngine[uint64]
	createdAt time.Time
}

func newGameSession(
	id int,
	opts sweep.BoardOptions,
	availWidth, availHeight float64,
	r *rand.Rand,
) (*gameSession, error) {
	// Covers get sequential entity ids; tick reports hand them back
	// to the client so it can despawn the matching visuals.
	var nextEntity uint64
	board, err := sweep.NewBoard(opts, availWidth, availHeight, r,
		func(sweep.Coordinates, sweep.Tile) uint64 {
			nextEntity++
			return nextEntity
		})
	if err != nil {
		return nil, err
	}
	log.Debug("generated board\n", board.TileMap().ConsoleString())

	return &gameSession{
		id:        id,
		board:     board,
		engine:    sweep.NewRevealEngine(board, opts.SafeStart),
		createdAt: time.Now().UTC(),
	}, nil
}

type sessionRegistry struct {
	mu     sync.RWMutex
	nextId int
	byId   map[string]*gameSession
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{byId: make(map[string]*gameSession)}
}

func (reg *sessionRegistry) create(
	opts sweep.BoardOptions,
	availWidth, availHeight float64,
	r *rand.Rand,
) (*gameSession, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	reg.nextId++
	session, err := newGameSession(reg.nextId, opts, availWidth, availHeight, r)
	if err != nil {
		reg.nextId--
		return nil, err
	}
	reg.byId[strconv.Itoa(session.id)] = session
	return session, nil
}

func (reg *sessionRegistry) get(id string) (*gameSession, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	session, ok := reg.byId[id]
	return session, ok
}
