package deployment

import (
	"fmt"
	"strings"

	"github.com/udisondev/multiboard/internal/hexgrid"
)

// BorderKind names a region of a board rectangle. The values are the
// starting positions chosen in the lobby.
type BorderKind int

const (
	StartAny BorderKind = iota
	StartNW
	StartN
	StartNE
	StartE
	StartSE
	StartS
	StartSW
	StartW
	StartEdge
	StartCenter
)

// Defaults for a border zone without explicit sizing.
const (
	DefaultBorderWidth  = 3
	DefaultBorderOffset = 0

	// deepOffset marks a deep deployment starting position.
	deepOffset = 10
)

var borderNames = [...]string{
	StartAny:    "any",
	StartNW:     "nw",
	StartN:      "n",
	StartNE:     "ne",
	StartE:      "e",
	StartSE:     "se",
	StartS:      "s",
	StartSW:     "sw",
	StartW:      "w",
	StartEdge:   "edge",
	StartCenter: "center",
}

func (k BorderKind) String() string {
	if k >= 0 && int(k) < len(borderNames) {
		return borderNames[k]
	}
	return fmt.Sprintf("border(%d)", int(k))
}

// BorderKindForName parses the names returned by String, case-insensitively.
func BorderKindForName(name string) (BorderKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range borderNames {
		if n == name {
			return BorderKind(k), nil
		}
	}
	return StartAny, fmt.Errorf("unknown border kind %q", name)
}

// DecodeStartingPosition splits a lobby starting position into its region and
// whether it is a deep deployment (positions above 10).
func DecodeStartingPosition(pos int) (BorderKind, bool) {
	if pos > deepOffset {
		return BorderKind(pos - deepOffset), true
	}
	return BorderKind(pos), false
}

// StartingPositionZone builds the border zone for a lobby starting position.
// A deep deployment moves the band inward by its own width.
func StartingPositionZone(pos, width, offset, boardID int) *BorderZone {
	kind, deep := DecodeStartingPosition(pos)
	if deep {
		offset += width
	}
	return Border(kind, width, offset, boardID)
}

// BorderZone is a band along an edge or a corner, every edge, or the centre
// of a board. Offset moves the band inward from the board edge. Hexes off
// the board are never inside.
type BorderZone struct {
	noWait
	Kind    BorderKind
	Width   int
	Offset  int
	BoardID int
}

// Border returns a border zone on boardID, or on every board for AnyBoard.
func Border(kind BorderKind, width, offset, boardID int) *BorderZone {
	return &BorderZone{Kind: kind, Width: width, Offset: offset, BoardID: boardID}
}

func (z *BorderZone) Type() string { return TypeBorder }

func (z *BorderZone) CanDeployTo(g Game, c hexgrid.Coords, boardID int) bool {
	if g == nil {
		return false
	}
	if z.BoardID != AnyBoard && z.BoardID != boardID {
		return false
	}
	b, ok := g.Boards().Board(boardID)
	if !ok || !b.Contains(c) {
		return false
	}
	return inBorder(z.Kind, z.Width, z.Offset, b.Width, b.Height, c)
}

// inBorder is the closed-form region test. Corners split the board at
// Width/2 and Height/2; the split row and column belong to no corner's
// half-band.
func inBorder(kind BorderKind, width, offset, bw, bh int, c hexgrid.Coords) bool {
	x, y := c.X, c.Y
	maxX, maxY := bw-offset, bh-offset

	nBand := y >= offset && y < offset+width
	sBand := y >= maxY-width && y < maxY
	wBand := x >= offset && x < offset+width
	eBand := x >= maxX-width && x < maxX

	switch kind {
	case StartAny:
		return true
	case StartNW:
		return (wBand && y >= offset && y < bh/2) ||
			(nBand && x >= offset && x < bw/2)
	case StartN:
		return nBand
	case StartNE:
		return (eBand && y >= offset && y < bh/2) ||
			(nBand && x < maxX && x > bw/2)
	case StartE:
		return eBand
	case StartSE:
		return (eBand && y < maxY && y > bh/2) ||
			(sBand && x < maxX && x > bw/2)
	case StartS:
		return sBand
	case StartSW:
		return (wBand && y < maxY && y > bh/2) ||
			(sBand && x >= offset && x < bw/2)
	case StartW:
		return wBand
	case StartEdge:
		inX := x >= offset && x < maxX
		inY := y >= offset && y < maxY
		return (nBand && inX) || (sBand && inX) || (wBand && inY) || (eBand && inY)
	case StartCenter:
		return x >= bw/3 && x <= 2*bw/3 && y >= bh/3 && y <= 2*bh/3
	default:
		return false
	}
}
