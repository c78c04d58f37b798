package board

import (
	"slices"

	"github.com/udisondev/multiboard/internal/hexgrid"
)

// IsBoardEdge reports whether c is on the outermost ring of hexes.
func (b *Board) IsBoardEdge(c hexgrid.Coords) bool {
	if !b.Contains(c) {
		return false
	}
	return c.X == 0 || c.Y == 0 || c.X == b.Width-1 || c.Y == b.Height-1
}

func (b *Board) TopEdge() []hexgrid.Coords { return b.CoordsRow(0) }
func (b *Board) BottomEdge() []hexgrid.Coords { return b.CoordsRow(b.Height - 1) }
func (b *Board) LeftEdge() []hexgrid.Coords { return b.CoordsColumn(0) }
func (b *Board) RightEdge() []hexgrid.Coords { return b.CoordsColumn(b.Width - 1) }

// CoordsRow returns row y from left to right, empty when off the board.
func (b *Board) CoordsRow(y int) []hexgrid.Coords {
	if y < 0 || y >= b.Height {
		return nil
	}
	out := make([]hexgrid.Coords, 0, b.Width)
	for x := range b.Width {
		out = append(out, hexgrid.New(x, y))
	}
	return out
}

// CoordsColumn returns column x from top to bottom, empty when off the board.
func (b *Board) CoordsColumn(x int) []hexgrid.Coords {
	if x < 0 || x >= b.Width {
		return nil
	}
	out := make([]hexgrid.Coords, 0, b.Height)
	for y := range b.Height {
		out = append(out, hexgrid.New(x, y))
	}
	return out
}

// CoordsLine returns the straight hex line through c along facing, walking
// both ways until the board edge. The result is ordered from the far end in
// the opposite direction to the far end in direction facing and includes c.
// It is empty when c is off the board.
func (b *Board) CoordsLine(c hexgrid.Coords, facing int) []hexgrid.Coords {
	if !b.Contains(c) {
		return nil
	}
	var back []hexgrid.Coords
	for cur := c.Translated(hexgrid.OppositeFacing(facing)); b.Contains(cur); cur = cur.Translated(hexgrid.OppositeFacing(facing)) {
		back = append(back, cur)
	}
	slices.Reverse(back)

	out := append(back, c)
	for cur := c.Translated(facing); b.Contains(cur); cur = cur.Translated(facing) {
		out = append(out, cur)
	}
	return out
}
