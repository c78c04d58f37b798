// Package crossboard decides whether an attack between units on different
// boards is possible at all, how far apart they are and how firing arcs are
// measured across boards.
package crossboard

import (
	"github.com/udisondev/multiboard/internal/board"
)

// TargetKind is the broad category of a target.
type TargetKind uint8

const (
	KindEntity TargetKind = iota
	KindHex
	KindBuilding
	KindOther
)

var kindNames = [...]string{
	KindEntity:   "entity",
	KindHex:      "hex",
	KindBuilding: "building",
	KindOther:    "other",
}

func (k TargetKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Attacker is what the rules need to know about the attacking unit.
type Attacker struct {
	Location     board.Location
	Infantry     bool
	ProtoMek     bool
	Aerospace    bool
	Fighter      bool
	CapitalScale bool
}

// Target is what the rules need to know about the target.
type Target struct {
	Location       board.Location
	Kind           TargetKind
	Aerospace      bool
	Fighter        bool
	LargeAerospace bool

	// SecondaryPositions are further hexes occupied by a large entity.
	SecondaryPositions []board.Location
}

// HexTarget returns a target for a hex, such as an artillery aim point.
func HexTarget(loc board.Location) Target {
	return Target{Location: loc, Kind: KindHex}
}

// Positions returns the primary position followed by the secondary
// positions of an entity.
func (t Target) Positions() []board.Location {
	out := []board.Location{t.Location}
	if t.Kind == KindEntity {
		out = append(out, t.SecondaryPositions...)
	}
	return out
}

// IsAttackPossible reports whether a can attack t across boards in
// principle. It is false for units on the same board. A true result may
// still be refused later for ammunition, range or arc reasons; false means
// the attack is impossible.
//
// The rules are checked in order and the first match wins.
func IsAttackPossible(reg *board.Registry, a Attacker, t Target) bool {
	if reg == nil || board.OnSameBoard(a.Location, t.Location) {
		return false
	}

	if a.Infantry || a.ProtoMek {
		return false
	}

	// Air to air between a ground board and its atmospheric board.
	if a.Fighter && t.Fighter && reg.OnDirectlyConnectedBoards(a.Location.BoardID, t.Location.BoardID) &&
		!reg.IsInSpace(a.Location) && !reg.IsInSpace(t.Location) {
		return true
	}

	// Orbit to ground.
	if a.CapitalScale && reg.IsInSpace(a.Location) && reg.IsOnGroundMap(t.Location) && t.Kind == KindHex {
		return true
	}

	// Air to ground from the atmospheric row of a high atmosphere board.
	if a.CapitalScale && reg.IsInAtmosphericRowOnHighAtmoMap(a.Location) && reg.IsOnGroundMap(t.Location) &&
		t.Kind == KindHex {
		return true
	}

	// Surface to orbit.
	if a.CapitalScale && reg.IsOnGroundMap(a.Location) && reg.IsInSpace(t.Location) && t.LargeAerospace &&
		t.Kind == KindEntity {
		return true
	}

	// Air to orbit. Same conditions as surface to orbit; kept as its own rule.
	if a.CapitalScale && reg.IsOnGroundMap(a.Location) && reg.IsInSpace(t.Location) && t.LargeAerospace &&
		t.Kind == KindEntity {
		return true
	}

	// Surface to surface between ground boards.
	if reg.IsOnGroundMap(a.Location) && reg.IsOnGroundMap(t.Location) && t.Kind == KindHex {
		return true
	}

	return false
}

// GroundMapDistance returns the distance in ground hexes between attacker
// and target on two different ground boards, or board.Unreachable.
func GroundMapDistance(reg *board.Registry, a Attacker, t Target) int {
	if reg == nil || board.OnSameBoard(a.Location, t.Location) ||
		!reg.IsOnGroundMap(a.Location) || !reg.IsOnGroundMap(t.Location) {
		return board.Unreachable
	}
	if !reg.HasEnclosingBoard(a.Location.BoardID) || !reg.HasEnclosingBoard(t.Location.BoardID) {
		return board.Unreachable
	}
	return reg.GroundDistance(a.Location.BoardID, t.Location.BoardID)
}

// IsCrossBoardArtyAttack reports whether the attack goes from one ground
// board to another.
func IsCrossBoardArtyAttack(reg *board.Registry, a Attacker, t Target) bool {
	return reg != nil && reg.OnDifferentGroundMaps(a.Location.BoardID, t.Location.BoardID)
}

// IsOrbitToSurface reports whether a spaceborne attacker fires at a ground
// board whose atmospheric board is embedded in the attacker's board.
func IsOrbitToSurface(reg *board.Registry, a Attacker, t Target) bool {
	if reg == nil || !reg.IsInSpace(a.Location) || !reg.IsOnGroundMap(t.Location) {
		return false
	}
	atmo, ok := reg.EnclosingBoardID(t.Location.BoardID)
	if !ok {
		return false
	}
	_, embedded := reg.EmbeddedPosition(a.Location.BoardID, atmo)
	return embedded
}

// IsAirToAir reports whether both sides are airborne aerospace units.
func IsAirToAir(a Attacker, t Target) bool {
	return a.Aerospace && t.Aerospace && t.Kind == KindEntity
}
