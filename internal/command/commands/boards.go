package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/udisondev/multiboard/internal/board"
	"github.com/udisondev/multiboard/internal/scenario"
)

// Boards lists the board hierarchy, each board indented under the board it
// is embedded in.
type Boards struct {
	sc *scenario.Scenario
}

// NewBoards creates the boards command.
func NewBoards(sc *scenario.Scenario) *Boards {
	return &Boards{sc: sc}
}

func (c *Boards) Names() []string {
	return []string{"boards"}
}

func (c *Boards) Handle(_ context.Context, _ []string) (string, error) {
	reg := c.sc.Registry
	if reg.Len() == 0 {
		return "No boards.", nil
	}

	var sb strings.Builder
	for _, b := range reg.Boards() {
		if !reg.HasEnclosingBoard(b.ID) {
			writeBoard(&sb, reg, b, 0)
		}
	}
	return strings.TrimSuffix(sb.String(), "\n"), nil
}

func writeBoard(sb *strings.Builder, reg *board.Registry, b *board.Board, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(sb, "%d %s [%s", b.ID, b.Name, b.MapType)
	if !b.Flag.IsNone() {
		fmt.Fprintf(sb, ", %s", b.Flag.Name())
	}
	fmt.Fprintf(sb, "] %dx%d", b.Width, b.Height)
	if pos, ok := reg.PositionOnEnclosingBoard(b.ID); ok {
		fmt.Fprintf(sb, " at %s", pos.Coords.BoardNum())
	}
	sb.WriteString("\n")

	for _, id := range b.EmbeddedBoards() {
		if child, ok := reg.Board(id); ok {
			writeBoard(sb, reg, child, depth+1)
		}
	}
}
