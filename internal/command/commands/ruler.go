package commands

import (
	"context"
	"fmt"

	"github.com/udisondev/multiboard/internal/board"
	"github.com/udisondev/multiboard/internal/hexgrid"
	"github.com/udisondev/multiboard/internal/scenario"
)

// Ruler measures between two hexes:
//
//	ruler <board> <x1> <y1> <x2> <y2>
//	ruler <board1> <x1> <y1> <board2> <x2> <y2>
//
// Hexes on two different ground boards are measured in ground hexes.
type Ruler struct {
	sc *scenario.Scenario
}

// NewRuler creates the ruler command.
func NewRuler(sc *scenario.Scenario) *Ruler {
	return &Ruler{sc: sc}
}

func (c *Ruler) Names() []string {
	return []string{"ruler", "range"}
}

func (c *Ruler) Handle(_ context.Context, args []string) (string, error) {
	const text = "ruler <board> <x1> <y1> <x2> <y2> | ruler <board1> <x1> <y1> <board2> <x2> <y2>"

	reg := c.sc.Registry
	var from, to board.Location
	switch len(args) {
	case 6:
		b, err := parseBoard(reg, args[1])
		if err != nil {
			return "", err
		}
		start, err := parseHex(args[2], args[3])
		if err != nil {
			return "", err
		}
		end, err := parseHex(args[4], args[5])
		if err != nil {
			return "", err
		}
		from, to = b.Location(start), b.Location(end)
	case 7:
		var err error
		if from, err = parseLocation(reg, args[1:4]); err != nil {
			return "", err
		}
		if to, err = parseLocation(reg, args[4:7]); err != nil {
			return "", err
		}
	default:
		return "", usage(text)
	}

	if board.OnSameBoard(from, to) {
		return fmt.Sprintf("Range from %v to %v on board %d is %d, bearing %d (%s).",
			from.Coords, to.Coords, from.BoardID, from.Distance(to),
			from.Coords.Degree(to.Coords), hexgrid.FacingName(from.Coords.Direction(to.Coords))), nil
	}

	d := reg.GroundDistance(from.BoardID, to.BoardID)
	if d == board.Unreachable {
		return fmt.Sprintf("There is no ground distance between %s and %s.",
			from.FriendlyString(), to.FriendlyString()), nil
	}
	return fmt.Sprintf("Ground distance from %s to %s is %d.",
		from.FriendlyString(), to.FriendlyString(), d), nil
}
