package board

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/udisondev/multiboard/internal/hexgrid"
)

var (
	// ErrUnknownBoard is returned when a board id is not registered.
	ErrUnknownBoard = errors.New("unknown board")
	// ErrInvalidEmbedding is returned when two boards cannot be connected.
	ErrInvalidEmbedding = errors.New("invalid board embedding")
	// ErrDuplicateBoard is returned when two boards share an id.
	ErrDuplicateBoard = errors.New("duplicate board id")
)

// maxHierarchyDepth bounds every walk up the enclosing chain. Connect only
// allows ground -> atmosphere -> space, so real chains are at most 2 long.
const maxHierarchyDepth = 8

// Registry is the read-only board context every spatial query runs against.
//
// Build it with NewRegistry and Connect during setup. After setup it is
// never modified and may be queried from many goroutines without locking.
type Registry struct {
	boards map[int]*Board
	ids    []int
}

// NewRegistry registers the given boards.
func NewRegistry(boards ...*Board) (*Registry, error) {
	r := &Registry{boards: make(map[int]*Board, len(boards))}
	for _, b := range boards {
		if b == nil {
			continue
		}
		if _, dup := r.boards[b.ID]; dup {
			return nil, fmt.Errorf("registering board %d: %w", b.ID, ErrDuplicateBoard)
		}
		r.boards[b.ID] = b
	}
	r.ids = slices.Sorted(maps.Keys(r.boards))
	return r, nil
}

// Connect embeds the lower board into one hex of the higher board. A ground
// board may only sit inside a low atmosphere board and a low atmosphere
// board only inside a space board.
func (r *Registry) Connect(lowerID, higherID int, at hexgrid.Coords) error {
	lower, ok := r.boards[lowerID]
	if !ok {
		return fmt.Errorf("connecting board %d: %w", lowerID, ErrUnknownBoard)
	}
	higher, ok := r.boards[higherID]
	if !ok {
		return fmt.Errorf("connecting into board %d: %w", higherID, ErrUnknownBoard)
	}

	switch {
	case lower.IsGround() && higher.IsLowAtmosphere():
	case lower.IsLowAtmosphere() && higher.IsSpace():
	default:
		return fmt.Errorf("%w: %s board %d cannot be enclosed by %s board %d",
			ErrInvalidEmbedding, lower.MapType, lowerID, higher.MapType, higherID)
	}
	if !higher.Contains(at) {
		return fmt.Errorf("%w: %s is not on board %d", ErrInvalidEmbedding, at, higherID)
	}
	if cur, has := lower.EnclosingBoardID(); has {
		return fmt.Errorf("%w: board %d is already enclosed by board %d", ErrInvalidEmbedding, lowerID, cur)
	}
	if other, taken := higher.EmbeddedBoardAt(at); taken {
		return fmt.Errorf("%w: %s on board %d already holds board %d", ErrInvalidEmbedding, at, higherID, other)
	}

	lower.enclosing = higherID
	higher.embedded[lowerID] = at
	slog.Debug("boards connected", "lower", lowerID, "higher", higherID, "at", at.BoardNum())
	return nil
}

// Board returns the board with the given id.
// A nil registry has no boards.
func (r *Registry) Board(id int) (*Board, bool) {
	if r == nil {
		return nil, false
	}
	b, ok := r.boards[id]
	return b, ok
}

// HasBoard reports whether id is registered.
func (r *Registry) HasBoard(id int) bool {
	_, ok := r.Board(id)
	return ok
}

// Boards returns all boards ordered by id.
func (r *Registry) Boards() []*Board {
	if r == nil {
		return nil
	}
	out := make([]*Board, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.boards[id])
	}
	return out
}

// Len returns the number of boards.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.ids)
}

// EnclosingBoardID returns the id of the board that encloses id.
func (r *Registry) EnclosingBoardID(id int) (int, bool) {
	b, ok := r.Board(id)
	if !ok {
		return NoBoard, false
	}
	return b.EnclosingBoardID()
}

// EnclosingBoard resolves the enclosing board of id through the registry.
func (r *Registry) EnclosingBoard(id int) (*Board, bool) {
	eid, ok := r.EnclosingBoardID(id)
	if !ok {
		return nil, false
	}
	return r.Board(eid)
}

// HasEnclosingBoard reports whether id is embedded in a registered board.
func (r *Registry) HasEnclosingBoard(id int) bool {
	_, ok := r.EnclosingBoard(id)
	return ok
}

// EmbeddedPosition returns the hex of enclosingID that represents the whole
// of containedID.
func (r *Registry) EmbeddedPosition(enclosingID, containedID int) (hexgrid.Coords, bool) {
	b, ok := r.Board(enclosingID)
	if !ok {
		return hexgrid.Coords{}, false
	}
	return b.EmbeddedPosition(containedID)
}

// EmbeddedLocation is EmbeddedPosition as a Location on the enclosing board.
func (r *Registry) EmbeddedLocation(enclosingID, containedID int) (Location, bool) {
	c, ok := r.EmbeddedPosition(enclosingID, containedID)
	if !ok {
		return Location{}, false
	}
	return Location{Coords: c, BoardID: enclosingID}, true
}

// PositionOnEnclosingBoard returns where id sits on its enclosing board.
func (r *Registry) PositionOnEnclosingBoard(id int) (Location, bool) {
	eid, ok := r.EnclosingBoardID(id)
	if !ok {
		return Location{}, false
	}
	return r.EmbeddedLocation(eid, id)
}

// AllEnclosingBoards returns the chain of enclosing boards of id, nearest
// first. It is empty for a board without an enclosing board.
func (r *Registry) AllEnclosingBoards(id int) []int {
	var chain []int
	cur := id
	for range maxHierarchyDepth {
		parent, ok := r.EnclosingBoard(cur)
		if !ok {
			return chain
		}
		chain = append(chain, parent.ID)
		cur = parent.ID
	}
	slog.Warn("board hierarchy deeper than expected", "board", id, "depth", maxHierarchyDepth)
	return chain
}
