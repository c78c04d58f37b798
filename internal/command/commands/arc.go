package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/udisondev/multiboard/internal/arc"
	"github.com/udisondev/multiboard/internal/hexgrid"
)

// Arc tests a single firing arc on one board:
//
//	arc <x1> <y1> <facing> <x2> <y2> <arc>
//
// The arc is a name such as forward, or vgl:<facing> for a vehicular grenade
// launcher mounted in that direction.
type Arc struct{}

func (c *Arc) Names() []string {
	return []string{"arc"}
}

func (c *Arc) Handle(_ context.Context, args []string) (string, error) {
	if len(args) != 7 {
		return "", usage("arc <x1> <y1> <facing> <x2> <y2> <arc>")
	}
	src, err := parseHex(args[1], args[2])
	if err != nil {
		return "", err
	}
	facing, ok := hexgrid.FacingForName(args[3])
	if !ok {
		return "", fmt.Errorf("unknown facing %q", args[3])
	}
	dst, err := parseHex(args[4], args[5])
	if err != nil {
		return "", err
	}
	id, err := parseArc(args[6])
	if err != nil {
		return "", err
	}

	verdict := "is"
	if !arc.IsInArcSingle(src, facing, dst, id) {
		verdict = "is not"
	}
	return fmt.Sprintf("%v %s in the %s arc of %v facing %s (bearing %d).",
		dst, verdict, id, src, hexgrid.FacingName(facing), src.Degree(dst)), nil
}

func parseArc(s string) (arc.ID, error) {
	prefix, mount, ok := strings.Cut(s, ":")
	if !ok || !strings.EqualFold(prefix, "vgl") {
		return arc.ForName(s)
	}
	facing, ok := hexgrid.FacingForName(mount)
	if !ok {
		return 0, fmt.Errorf("unknown launcher facing %q", mount)
	}
	return arc.FiringArcFromVGLFacing(facing), nil
}
