package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/udisondev/multiboard/internal/board"
	"github.com/udisondev/multiboard/internal/command"
	"github.com/udisondev/multiboard/internal/hexgrid"
	"github.com/udisondev/multiboard/internal/scenario"
)

func usage(text string) error {
	return fmt.Errorf("%w: %s", command.ErrUsage, text)
}

func parseInt(what, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", what, s, err)
	}
	return n, nil
}

// parseHex reads 1-based column and row numbers as shown on the map.
func parseHex(xs, ys string) (hexgrid.Coords, error) {
	x, err := parseInt("x", xs)
	if err != nil {
		return hexgrid.Coords{}, err
	}
	y, err := parseInt("y", ys)
	if err != nil {
		return hexgrid.Coords{}, err
	}
	return hexgrid.New(x-1, y-1), nil
}

func parseBoard(reg *board.Registry, s string) (*board.Board, error) {
	id, err := parseInt("board id", s)
	if err != nil {
		return nil, err
	}
	b, ok := reg.Board(id)
	if !ok {
		return nil, fmt.Errorf("%w %d", board.ErrUnknownBoard, id)
	}
	return b, nil
}

// parseLocation reads "<board> <x> <y>".
func parseLocation(reg *board.Registry, args []string) (board.Location, error) {
	b, err := parseBoard(reg, args[0])
	if err != nil {
		return board.Location{}, err
	}
	c, err := parseHex(args[1], args[2])
	if err != nil {
		return board.Location{}, err
	}
	return b.Location(c), nil
}

// parseLocationID reads a hex target id as printed by crossboard.
func parseLocationID(reg *board.Registry, s string) (board.Location, error) {
	id, err := parseInt("hex id", s)
	if err != nil {
		return board.Location{}, err
	}
	loc := board.LocationFromID(id)
	b, ok := reg.Board(loc.BoardID)
	if !ok {
		return board.Location{}, fmt.Errorf("%w %d", board.ErrUnknownBoard, loc.BoardID)
	}
	if !b.Contains(loc.Coords) {
		return board.Location{}, fmt.Errorf("hex id %d is not on board %d", id, b.ID)
	}
	return loc, nil
}

// findPlayer accepts a player id or a case-insensitive name.
func findPlayer(sc *scenario.Scenario, s string) (scenario.Player, error) {
	if id, err := strconv.Atoi(s); err == nil {
		if p, ok := sc.Player(id); ok {
			return p, nil
		}
	}
	for _, p := range sc.Players {
		if strings.EqualFold(p.Name, s) {
			return p, nil
		}
	}
	return scenario.Player{}, fmt.Errorf("player %q not found", s)
}

func findUnit(sc *scenario.Scenario, s string) (scenario.Unit, error) {
	id, err := parseInt("unit id", s)
	if err != nil {
		return scenario.Unit{}, err
	}
	u, ok := sc.Unit(id)
	if !ok {
		return scenario.Unit{}, fmt.Errorf("unit %d not found", id)
	}
	return u, nil
}

func playerLabel(p scenario.Player) string {
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("player %d", p.ID)
}

func unitLabel(u scenario.Unit) string {
	if u.Name != "" {
		return fmt.Sprintf("unit %d (%s)", u.ID, u.Name)
	}
	return fmt.Sprintf("unit %d", u.ID)
}
