// Package commands implements the board tool commands over a loaded
// scenario.
package commands

import (
	"github.com/udisondev/multiboard/internal/command"
	"github.com/udisondev/multiboard/internal/scenario"
)

// RegisterAll registers the scenario commands into the handler.
// store may be nil when no database is configured.
func RegisterAll(h *command.Handler, sc *scenario.Scenario, store LayoutStore, workers int) {
	h.Register(NewRuler(sc))
	h.Register(NewDeploy(sc, workers))
	h.Register(NewShowTile(sc))
	h.Register(&Arc{})
	h.Register(NewCrossBoard(sc))
	h.Register(NewBoards(sc))
	if store != nil {
		h.Register(NewLayouts(sc, store))
	}
	h.Register(&Help{h: h})
}
