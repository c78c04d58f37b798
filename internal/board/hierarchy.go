package board

import "math"

// Scale factors between board levels.
const (
	GroundHexesPerAtmoHex = 17
	AtmoHexesPerSpaceHex  = 36

	// Unreachable is the distance between boards with no common ancestor
	// within two levels.
	Unreachable = math.MaxInt
)

func (r *Registry) is(id int, pred func(*Board) bool) bool {
	b, ok := r.Board(id)
	return ok && pred(b)
}

// IsGroundBoard reports whether id is a registered ground board.
func (r *Registry) IsGroundBoard(id int) bool {
	return r.is(id, (*Board).IsGround)
}

// IsAtmosphericBoard reports whether id is a registered low atmosphere board.
func (r *Registry) IsAtmosphericBoard(id int) bool {
	return r.is(id, (*Board).IsLowAtmosphere)
}

// IsSpaceBoard reports whether id is a registered space board, high
// atmosphere included.
func (r *Registry) IsSpaceBoard(id int) bool {
	return r.is(id, (*Board).IsSpace)
}

// IsHighAtmosphereBoard reports whether id is a space board with gravity.
func (r *Registry) IsHighAtmosphereBoard(id int) bool {
	return r.is(id, (*Board).IsHighAtmosphere)
}

// IsInAtmosphericRowOnHighAtmoMap reports whether loc is on a high
// atmosphere board in one of the hexes that hold an atmospheric board.
func (r *Registry) IsInAtmosphericRowOnHighAtmoMap(loc Location) bool {
	b, ok := r.Board(loc.BoardID)
	if !ok || !b.IsHighAtmosphere() {
		return false
	}
	_, holds := b.EmbeddedBoardAt(loc.Coords)
	return holds
}

// OnDirectlyConnectedBoards reports whether one of a and b directly encloses
// the other, such as a ground board and its atmospheric board. A ground board
// and its space board are connected but not directly.
func (r *Registry) OnDirectlyConnectedBoards(a, b int) bool {
	if ea, ok := r.EnclosingBoardID(a); ok && ea == b {
		return true
	}
	eb, ok := r.EnclosingBoardID(b)
	return ok && eb == a
}

// OnDifferentGroundMaps reports whether a and b are two distinct ground boards.
func (r *Registry) OnDifferentGroundMaps(a, b int) bool {
	return a != b && r.IsGroundBoard(a) && r.IsGroundBoard(b)
}

// OnGroundMapsWithinOneAtmoMap reports whether a and b are distinct ground
// boards embedded in the same atmospheric board.
func (r *Registry) OnGroundMapsWithinOneAtmoMap(a, b int) bool {
	if !r.OnDifferentGroundMaps(a, b) {
		return false
	}
	ea, okA := r.EnclosingBoardID(a)
	eb, okB := r.EnclosingBoardID(b)
	return okA && okB && ea == eb && r.HasBoard(ea)
}

// GroundDistance returns the distance in ground hexes between two ground
// boards that are connected through the board hierarchy:
//
//   - both embedded in the same atmospheric board: distance between their
//     embedding hexes times 17;
//   - their atmospheric boards embedded in the same space board: distance
//     between the atmospheric embedding hexes times 17*36;
//   - otherwise Unreachable.
//
// The walk stops after two levels. The same board, an unknown board or a non
// ground board is Unreachable.
func (r *Registry) GroundDistance(a, b int) int {
	if a == b || !r.IsGroundBoard(a) || !r.IsGroundBoard(b) {
		return Unreachable
	}
	if d, ok := r.sharedParentDistance(a, b); ok {
		return d * GroundHexesPerAtmoHex
	}

	atmoA, okA := r.EnclosingBoardID(a)
	atmoB, okB := r.EnclosingBoardID(b)
	if !okA || !okB {
		return Unreachable
	}
	if d, ok := r.sharedParentDistance(atmoA, atmoB); ok {
		return d * GroundHexesPerAtmoHex * AtmoHexesPerSpaceHex
	}
	return Unreachable
}

// sharedParentDistance returns the hex distance between the embedding hexes
// of a and b when both are embedded in the same registered board.
func (r *Registry) sharedParentDistance(a, b int) (int, bool) {
	pa, okA := r.EnclosingBoardID(a)
	pb, okB := r.EnclosingBoardID(b)
	if !okA || !okB || pa != pb {
		return 0, false
	}
	posA, okA := r.EmbeddedPosition(pa, a)
	posB, okB := r.EmbeddedPosition(pa, b)
	if !okA || !okB {
		return 0, false
	}
	return posA.Distance(posB), true
}

// OnSameBoard reports whether a and b are on the same board.
func OnSameBoard(a, b Location) bool {
	return a.BoardID == b.BoardID
}

// IsOnGroundMap reports whether loc is on a registered ground board.
func (r *Registry) IsOnGroundMap(loc Location) bool {
	return r.IsGroundBoard(loc.BoardID)
}

// IsOnAtmosphericMap reports whether loc is on a registered low atmosphere board.
func (r *Registry) IsOnAtmosphericMap(loc Location) bool {
	return r.IsAtmosphericBoard(loc.BoardID)
}

// IsInSpace reports whether loc is on a registered space board. High
// atmosphere boards count as space.
func (r *Registry) IsInSpace(loc Location) bool {
	return r.IsSpaceBoard(loc.BoardID)
}
