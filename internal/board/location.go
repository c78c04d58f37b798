package board

import (
	"fmt"

	"github.com/udisondev/multiboard/internal/hexgrid"
)

// Location identifies one hex across all boards of a game. It is a plain
// value; equality compares both fields and it can be used as a map key.
// Neither the board id nor the bounds are validated.
type Location struct {
	Coords  hexgrid.Coords
	BoardID int
}

// At is shorthand for a Location at (x, y) on boardID.
func At(x, y, boardID int) Location {
	return Location{Coords: hexgrid.New(x, y), BoardID: boardID}
}

func (l Location) IsOnBoard(boardID int) bool { return l.BoardID == boardID }
func (l Location) IsAtCoords(c hexgrid.Coords) bool { return l.Coords == c }
func (l Location) withCoords(c hexgrid.Coords) Location { return Location{Coords: c, BoardID: l.BoardID} }

// Translated returns the adjacent location in direction dir on the same board.
func (l Location) Translated(dir int) Location {
	return l.withCoords(l.Coords.Translated(dir))
}

// TranslatedN returns the location dist steps away on the same board.
func (l Location) TranslatedN(dir, dist int) Location {
	return l.withCoords(l.Coords.TranslatedN(dir, dist))
}

// Distance returns the hex distance to o, ignoring board ids.
func (l Location) Distance(o Location) int {
	return l.Coords.Distance(o.Coords)
}

// AllAdjacent is AllAtDistance(1).
func (l Location) AllAdjacent() []Location {
	return l.AllAtDistance(1)
}

// AllAtDistance lifts hexgrid.Coords.AllAtDistance to this board.
func (l Location) AllAtDistance(dist int) []Location {
	return l.lift(l.Coords.AllAtDistance(dist))
}

// AllAtDistances lifts hexgrid.Coords.AllAtDistances to this board.
func (l Location) AllAtDistances(minDist, maxDist int) []Location {
	return l.lift(l.Coords.AllAtDistances(minDist, maxDist))
}

// AllAtDistanceOrLess lifts hexgrid.Coords.AllAtDistanceOrLess to this board.
func (l Location) AllAtDistanceOrLess(dist int) []Location {
	return l.AllAtDistances(0, dist)
}

func (l Location) lift(cs []hexgrid.Coords) []Location {
	if len(cs) == 0 {
		return nil
	}
	out := make([]Location, len(cs))
	for i, c := range cs {
		out[i] = l.withCoords(c)
	}
	return out
}

func (l Location) String() string {
	return fmt.Sprintf("%v; Map Id: %d", l.Coords, l.BoardID)
}

// FriendlyString returns "XXYY (Map Id: n)".
func (l Location) FriendlyString() string {
	return fmt.Sprintf("%s (Map Id: %d)", l.Coords.BoardNum(), l.BoardID)
}

// Hex target ids pack a location into one int: up to 9999 columns,
// 999 rows and board ids up to 200.
const (
	idBoardFactor = 10_000_000
	idRowFactor   = 10_000
)

// LocationID encodes a location as a hex target id.
func LocationID(l Location) int {
	return l.BoardID*idBoardFactor + l.Coords.Y*idRowFactor + l.Coords.X
}

// LocationFromID decodes a hex target id.
func LocationFromID(id int) Location {
	boardID := id / idBoardFactor
	id -= boardID * idBoardFactor
	y := id / idRowFactor
	x := id - y*idRowFactor
	return At(x, y, boardID)
}
