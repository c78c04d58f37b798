package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/udisondev/multiboard/internal/arc"
	"github.com/udisondev/multiboard/internal/board"
	"github.com/udisondev/multiboard/internal/crossboard"
	"github.com/udisondev/multiboard/internal/scenario"
)

// CrossBoard checks an attack between units or at a hex:
//
//	crossboard <attacker> <target> [arc]
//	crossboard <attacker> hex <board> <x> <y> [arc]
//	crossboard <attacker> hex <id> [arc]
//
// Hex targets print their id so later queries can name them with one number.
type CrossBoard struct {
	sc *scenario.Scenario
}

// NewCrossBoard creates the crossboard command.
func NewCrossBoard(sc *scenario.Scenario) *CrossBoard {
	return &CrossBoard{sc: sc}
}

func (c *CrossBoard) Names() []string {
	return []string{"crossboard", "xb"}
}

func (c *CrossBoard) Handle(_ context.Context, args []string) (string, error) {
	const text = "crossboard <attacker> <target> [arc] | crossboard <attacker> hex <board> <x> <y> [arc] | crossboard <attacker> hex <id> [arc]"
	if len(args) < 3 {
		return "", usage(text)
	}

	attacker, err := findUnit(c.sc, args[1])
	if err != nil {
		return "", err
	}
	if !attacker.Deployed {
		return "", fmt.Errorf("%s is not deployed", unitLabel(attacker))
	}

	var (
		target     crossboard.Target
		targetUnit *scenario.Unit
		label      string
		rest       []string
	)
	if strings.EqualFold(args[2], "hex") {
		var (
			loc board.Location
			err error
		)
		switch len(args) {
		case 4, 5:
			loc, err = parseLocationID(c.sc.Registry, args[3])
			rest = args[4:]
		case 6, 7:
			loc, err = parseLocation(c.sc.Registry, args[3:6])
			rest = args[6:]
		default:
			return "", usage(text)
		}
		if err != nil {
			return "", err
		}
		target = crossboard.HexTarget(loc)
		label = fmt.Sprintf("hex %s [id %d]", loc.FriendlyString(), board.LocationID(loc))
	} else {
		if len(args) > 4 {
			return "", usage(text)
		}
		u, err := findUnit(c.sc, args[2])
		if err != nil {
			return "", err
		}
		if !u.Deployed {
			return "", fmt.Errorf("%s is not deployed", unitLabel(u))
		}
		target = u.Target()
		targetUnit = &u
		label = unitLabel(u) + " at " + u.Location.FriendlyString()
		rest = args[3:]
	}

	reg := c.sc.Registry
	a := attacker.Attacker()
	lines := []string{fmt.Sprintf("%s at %s -> %s", unitLabel(attacker), attacker.Location.FriendlyString(), label)}

	if board.OnSameBoard(a.Location, target.Location) {
		lines = append(lines, "same board")
		if targetUnit != nil {
			side := "from the side or rear"
			if arc.IsThroughFrontHex(a.Location.Coords, targetUnit.Location.Coords, targetUnit.Facing) {
				side = "through the front hex side"
			}
			lines = append(lines, "attack lands "+side)
		}
	} else {
		possible := "not possible"
		if crossboard.IsAttackPossible(reg, a, target) {
			possible = "possible"
		}
		lines = append(lines, "cross-board attack "+possible)
	}

	if d := crossboard.GroundMapDistance(reg, a, target); d != board.Unreachable {
		lines = append(lines, fmt.Sprintf("ground distance %d", d))
	}
	switch {
	case crossboard.IsCrossBoardArtyAttack(reg, a, target):
		lines = append(lines, "artillery between ground boards")
	case crossboard.IsOrbitToSurface(reg, a, target):
		lines = append(lines, "orbit to surface")
	case crossboard.IsAirToAir(a, target):
		lines = append(lines, "air to air")
	}

	if len(rest) == 1 {
		id, err := parseArc(rest[0])
		if err != nil {
			return "", err
		}
		res := crossboard.InArc(reg, a, attacker.Facing, target, id)
		verdict := "in arc"
		if !res.InArc {
			verdict = "not in arc"
		}
		line := fmt.Sprintf("%s arc: %s", id, verdict)
		if len(res.Mismatched) > 0 {
			line += fmt.Sprintf(" (%d positions on another board)", len(res.Mismatched))
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n"), nil
}
