package crossboard

import (
	"log/slog"

	"github.com/udisondev/multiboard/internal/arc"
	"github.com/udisondev/multiboard/internal/board"
	"github.com/udisondev/multiboard/internal/hexgrid"
)

// ArcResult is the outcome of InArc.
type ArcResult struct {
	InArc bool

	// Mismatched lists target positions that ended up on a different board
	// than the attacker position. They are still tested by their coords.
	Mismatched []board.Location
}

// InArc reports whether t is inside arc id of an attacker facing facing,
// also when the two are on different boards. Positions are replaced by the
// hexes that represent their boards on a shared higher board:
//
//   - artillery between ground boards uses the ground boards' hexes on their
//     shared atmospheric board, and is never in arc when there is none;
//   - orbit to surface uses the hex of the target's atmospheric board on the
//     attacker's board;
//   - air to air between connected boards uses the ground board's hex on
//     the atmospheric board for whichever side is on the ground.
func InArc(reg *board.Registry, a Attacker, facing int, t Target, id arc.ID) ArcResult {
	aPos := a.Location
	tPos := t.Positions()

	switch {
	case IsCrossBoardArtyAttack(reg, a, t):
		atmoA, okA := reg.EnclosingBoardID(a.Location.BoardID)
		atmoT, okT := reg.EnclosingBoardID(t.Location.BoardID)
		if !okA || !okT || atmoA != atmoT {
			return ArcResult{}
		}
		aPos, _ = reg.EmbeddedLocation(atmoA, a.Location.BoardID)
		tLoc, _ := reg.EmbeddedLocation(atmoA, t.Location.BoardID)
		tPos = []board.Location{tLoc}

	case IsOrbitToSurface(reg, a, t):
		atmo, _ := reg.EnclosingBoardID(t.Location.BoardID)
		tLoc, _ := reg.EmbeddedLocation(a.Location.BoardID, atmo)
		tPos = []board.Location{tLoc}

	case reg != nil && IsAirToAir(a, t) && !board.OnSameBoard(a.Location, t.Location) &&
		(reg.OnDirectlyConnectedBoards(a.Location.BoardID, t.Location.BoardID) ||
			reg.OnGroundMapsWithinOneAtmoMap(a.Location.BoardID, t.Location.BoardID)):
		aPos, tPos = airToAirPositions(reg, a.Location, tPos)
	}

	var mismatched []board.Location
	coords := make([]hexgrid.Coords, 0, len(tPos))
	for _, p := range tPos {
		if !p.IsOnBoard(aPos.BoardID) {
			mismatched = append(mismatched, p)
		}
		coords = append(coords, p.Coords)
	}
	if len(mismatched) > 0 {
		slog.Warn("target positions are not on the attacker board",
			"attacker", aPos.FriendlyString(), "mismatched", len(mismatched), "arc", id)
	}

	return ArcResult{
		InArc:      arc.IsInArc(aPos.Coords, facing, coords, id),
		Mismatched: mismatched,
	}
}

// airToAirPositions lifts the ground side of an air to air attack onto the
// atmospheric board. Two ground boards are both lifted onto their shared
// atmospheric board.
func airToAirPositions(reg *board.Registry, aLoc board.Location, tPos []board.Location) (board.Location, []board.Location) {
	tLoc := tPos[0]
	switch {
	case reg.IsOnGroundMap(aLoc) && reg.IsOnAtmosphericMap(tLoc):
		if p, ok := reg.EmbeddedLocation(tLoc.BoardID, aLoc.BoardID); ok {
			aLoc = p
		}
	case reg.IsOnAtmosphericMap(aLoc) && reg.IsOnGroundMap(tLoc):
		if p, ok := reg.EmbeddedLocation(aLoc.BoardID, tLoc.BoardID); ok {
			tPos = []board.Location{p}
		}
	case reg.IsOnGroundMap(aLoc) && reg.IsOnGroundMap(tLoc):
		aUp, okA := reg.PositionOnEnclosingBoard(aLoc.BoardID)
		tUp, okT := reg.PositionOnEnclosingBoard(tLoc.BoardID)
		if okA && okT {
			aLoc = aUp
			tPos = []board.Location{tUp}
		}
	}
	return aLoc, tPos
}
