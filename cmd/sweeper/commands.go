package main

import (
	"errors"
	"strconv"
	"strings"

	"github.com/StragaSevera/minesweeper-tutorial/internal/sweep"
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"g": 0, // fetch state
	"r": 2, // request a reveal at x y
	"t": 0, // advance one tick
}

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

// executeCommand runs a single command against a session. The caller
// must hold the session mutex. Tick reports are appended to reports so
// the client receives the cover entities to despawn.
func executeCommand(
	session *gameSession,
	c string,
	reports *[]tickReportView,
) error {
	parts := strings.Split(c, " ")
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return errors.New("unknown command")
	}
	if nargs != len(parts)-1 {
		return errors.New("invalid number of arguments")
	}
	switch parts[0] {
	case "g":
		return nil
	case "r":
		x, y, err := parseXY(parts[1:])
		if err != nil {
			return err
		}
		session.engine.Request(sweep.Coordinates{X: x, Y: y})
		return nil
	case "t":
		report := session.engine.Tick()
		*reports = append(*reports, newTickReportView(report))
		return nil
	}
	return nil
}
