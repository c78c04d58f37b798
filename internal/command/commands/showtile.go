package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/udisondev/multiboard/internal/board"
	"github.com/udisondev/multiboard/internal/hexgrid"
	"github.com/udisondev/multiboard/internal/scenario"
)

// ShowTile prints the details of a hex and, optionally, of the hexes
// reached by stepping in the given directions:
//
//	showtile <board> <x> <y> [N|NE|SE|S|SW|NW ...]
type ShowTile struct {
	sc *scenario.Scenario
}

// NewShowTile creates the showtile command.
func NewShowTile(sc *scenario.Scenario) *ShowTile {
	return &ShowTile{sc: sc}
}

func (c *ShowTile) Names() []string {
	return []string{"showtile", "tile"}
}

func (c *ShowTile) Handle(_ context.Context, args []string) (string, error) {
	if len(args) < 4 {
		return "", usage("showtile <board> <x> <y> [direction ...]")
	}
	loc, err := parseLocation(c.sc.Registry, args[1:4])
	if err != nil {
		return "", err
	}

	dirs := make([]int, 0, len(args)-4)
	for _, s := range args[4:] {
		d, ok := hexgrid.FacingForName(s)
		if !ok {
			return "", fmt.Errorf("unknown direction %q", s)
		}
		dirs = append(dirs, d)
	}

	b, _ := c.sc.Registry.Board(loc.BoardID)
	lines := []string{c.describe(b, loc)}
	for _, d := range dirs {
		loc = loc.Translated(d)
		lines = append(lines, c.describe(b, loc))
	}
	return strings.Join(lines, "\n"), nil
}

func (c *ShowTile) describe(b *board.Board, loc board.Location) string {
	h := b.Hex(loc.Coords)
	if h == nil {
		return fmt.Sprintf("Hex %v is not on board %d.", loc.Coords, b.ID)
	}

	parts := []string{fmt.Sprintf("elevation %d", h.Elevation)}
	if len(h.Terrain) > 0 {
		parts = append(parts, "terrain "+board.FormatTerrain(h.Terrain))
	}
	if h.Theme != "" {
		parts = append(parts, "theme "+h.Theme)
	}
	if b.IsBoardEdge(loc.Coords) {
		parts = append(parts, "board edge")
	}
	if id, ok := b.EmbeddedBoardAt(loc.Coords); ok {
		parts = append(parts, fmt.Sprintf("holds board %d", id))
	}

	var units []string
	for _, u := range c.sc.Units {
		if u.Deployed && u.Location == loc {
			units = append(units, strconv.Itoa(u.ID))
		}
	}
	if len(units) > 0 {
		parts = append(parts, "units "+strings.Join(units, ", "))
	}

	return fmt.Sprintf("Details for hex %v on board %d: %s.", loc.Coords, b.ID, strings.Join(parts, "; "))
}
