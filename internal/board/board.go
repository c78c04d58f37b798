// Package board holds boards, board locations and the hierarchy in which a
// ground board sits inside one hex of an atmospheric board, which in turn
// sits inside one hex of a space board.
package board

import (
	"maps"
	"slices"

	"github.com/udisondev/multiboard/internal/hexgrid"
)

// NoBoard marks the absence of a board id.
const NoBoard = -1

// Board is one rectangular hex map.
type Board struct {
	ID      int
	Name    string
	Width   int
	Height  int
	MapType MapType
	Flag    MapTypeFlag

	// hexes is column-major: (x * Height) + y.
	hexes []Hex

	enclosing int
	embedded  map[int]hexgrid.Coords
}

// New creates a board of clear hexes at elevation 0.
func New(id int, name string, width, height int, mapType MapType) *Board {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b := &Board{
		ID:        id,
		Name:      name,
		Width:     width,
		Height:    height,
		MapType:   mapType,
		hexes:     make([]Hex, width*height),
		enclosing: NoBoard,
		embedded:  make(map[int]hexgrid.Coords),
	}
	for x := range width {
		for y := range height {
			b.hexes[x*height+y] = Hex{Coords: hexgrid.New(x, y)}
		}
	}
	return b
}

func (b *Board) IsGround() bool { return b.MapType.IsGround() }
func (b *Board) IsLowAtmosphere() bool { return b.MapType.IsLowAtmosphere() }
func (b *Board) IsSpace() bool { return b.MapType.IsSpace() }
func (b *Board) IsHighAtmosphere() bool { return b.MapType.IsSpace() && b.Flag.IsHighAtmosphere() }

// Contains reports whether c lies on the board.
func (b *Board) Contains(c hexgrid.Coords) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

// Hex returns the hex at c, nil when c is off the board.
func (b *Board) Hex(c hexgrid.Coords) *Hex {
	if !b.Contains(c) {
		return nil
	}
	return &b.hexes[c.X*b.Height+c.Y]
}

// SetHex replaces the hex at h.Coords. Returns false when off the board.
// Boards are edited only while a registry is being assembled.
func (b *Board) SetHex(h Hex) bool {
	if !b.Contains(h.Coords) {
		return false
	}
	b.hexes[h.Coords.X*b.Height+h.Coords.Y] = h
	return true
}

// Hexes calls fn for every hex in column-major order until fn returns false.
func (b *Board) Hexes(fn func(h *Hex) bool) {
	for i := range b.hexes {
		if !fn(&b.hexes[i]) {
			return
		}
	}
}

// EnclosingBoardID returns the board this one is embedded in.
func (b *Board) EnclosingBoardID() (int, bool) {
	return b.enclosing, b.enclosing != NoBoard
}

// EmbeddedPosition returns the hex of this board that stands for the whole
// contained board.
func (b *Board) EmbeddedPosition(containedID int) (hexgrid.Coords, bool) {
	c, ok := b.embedded[containedID]
	return c, ok
}

// EmbeddedBoardAt returns the id of the board embedded at c.
func (b *Board) EmbeddedBoardAt(c hexgrid.Coords) (int, bool) {
	for id, pos := range b.embedded {
		if pos == c {
			return id, true
		}
	}
	return NoBoard, false
}

// EmbeddedBoards returns the ids of all contained boards, sorted.
func (b *Board) EmbeddedBoards() []int {
	return slices.Sorted(maps.Keys(b.embedded))
}

// Location returns c on this board.
func (b *Board) Location(c hexgrid.Coords) Location {
	return Location{Coords: c, BoardID: b.ID}
}
