// Package deployment answers where a unit may be placed at the start of a
// game or when it arrives later. A Zone is a predicate over (coords, board);
// zones combine into trees with Union, Intersection, Difference and Invert.
//
// Every predicate is pure: it reads the Game it is given and never changes
// it. Bad input such as a nil game, an unknown board or a missing unit makes
// the predicate false rather than returning an error.
package deployment

import (
	"slices"

	"github.com/udisondev/multiboard/internal/board"
	"github.com/udisondev/multiboard/internal/hexgrid"
)

// Zone type names. They double as the "type" key of scenario files.
const (
	TypeAnywhere     = "anywhere"
	TypeBorder       = "border"
	TypeList         = "list"
	TypeTerrain      = "terrain"
	TypeUnitRelative = "unit"
	TypeOwner        = "owner"
	TypeUnion        = "union"
	TypeIntersection = "intersection"
	TypeDifference   = "difference"
	TypeInvert       = "invert"
)

// AnyBoard makes a zone apply to every board.
const AnyBoard = -99

// Zone decides whether a unit may deploy to a hex.
type Zone interface {
	// CanDeployTo reports whether c on boardID is a legal deployment hex.
	CanDeployTo(g Game, c hexgrid.Coords, boardID int) bool
	// MustWaitForOtherDeployment reports whether the zone depends on a unit
	// that has not been deployed yet.
	MustWaitForOtherDeployment(g Game) bool
	// Type returns one of the Type* names.
	Type() string
}

// CanDeployToLocation is CanDeployTo for a Location.
func CanDeployToLocation(g Game, z Zone, loc board.Location) bool {
	if z == nil {
		return false
	}
	return z.CanDeployTo(g, loc.Coords, loc.BoardID)
}

// noWait is embedded by zones that never depend on another unit.
type noWait struct{}

func (noWait) MustWaitForOtherDeployment(Game) bool { return false }

// AnywhereZone allows every hex of the listed boards, or of every board when
// the list is empty.
type AnywhereZone struct {
	noWait
	BoardIDs []int
}

// Anywhere returns a zone covering the given boards, or all boards.
func Anywhere(boardIDs ...int) *AnywhereZone {
	return &AnywhereZone{BoardIDs: boardIDs}
}

func (z *AnywhereZone) Type() string { return TypeAnywhere }

// CanDeployTo does not consult g, so it also answers for a nil game.
func (z *AnywhereZone) CanDeployTo(_ Game, _ hexgrid.Coords, boardID int) bool {
	if len(z.BoardIDs) == 0 {
		return true
	}
	for _, id := range z.BoardIDs {
		if id == boardID || id == AnyBoard {
			return true
		}
	}
	return false
}

// ListZone is an explicit set of locations.
type ListZone struct {
	noWait
	locations map[board.Location]struct{}
	ordered   []board.Location
}

// List returns a zone of exactly the given locations.
func List(locations ...board.Location) *ListZone {
	z := &ListZone{locations: make(map[board.Location]struct{}, len(locations))}
	for _, l := range locations {
		if _, dup := z.locations[l]; dup {
			continue
		}
		z.locations[l] = struct{}{}
		z.ordered = append(z.ordered, l)
	}
	return z
}

// ListOnBoard returns a zone of the given hexes on one board.
func ListOnBoard(boardID int, coords ...hexgrid.Coords) *ListZone {
	locs := make([]board.Location, len(coords))
	for i, c := range coords {
		locs[i] = board.Location{Coords: c, BoardID: boardID}
	}
	return List(locs...)
}

func (z *ListZone) Type() string { return TypeList }

// Locations returns the members in insertion order.
func (z *ListZone) Locations() []board.Location {
	return z.ordered
}

func (z *ListZone) CanDeployTo(g Game, c hexgrid.Coords, boardID int) bool {
	if g == nil {
		return false
	}
	_, ok := z.locations[board.Location{Coords: c, BoardID: boardID}]
	return ok
}

// TerrainZone allows hexes within Min..Max of a hex holding the terrain.
// A terrain level of board.WildcardLevel matches any level.
type TerrainZone struct {
	noWait
	Terrain board.Terrain
	Min     int
	Max     int
	BoardID int
}

// Terrain returns a zone near terrain on boardID.
func Terrain(t board.Terrain, minDist, maxDist, boardID int) *TerrainZone {
	return &TerrainZone{Terrain: t, Min: minDist, Max: maxDist, BoardID: boardID}
}

func (z *TerrainZone) Type() string { return TypeTerrain }

func (z *TerrainZone) CanDeployTo(g Game, c hexgrid.Coords, boardID int) bool {
	if g == nil || z.BoardID != boardID {
		return false
	}
	b, ok := g.Boards().Board(boardID)
	if !ok {
		return false
	}
	for _, near := range c.AllAtDistances(z.Min, z.Max) {
		if h := b.Hex(near); h != nil && h.Matches(z.Terrain) {
			return true
		}
	}
	return false
}

// UnitRelativeZone allows hexes within Min..Max of another unit. It must
// wait while that unit is not deployed.
type UnitRelativeZone struct {
	UnitID int
	Min    int
	Max    int
}

// UnitRelative returns a zone around the unit with the given id.
func UnitRelative(unitID, minDist, maxDist int) *UnitRelativeZone {
	return &UnitRelativeZone{UnitID: unitID, Min: minDist, Max: maxDist}
}

func (z *UnitRelativeZone) Type() string { return TypeUnitRelative }

func (z *UnitRelativeZone) MustWaitForOtherDeployment(g Game) bool {
	if g == nil {
		return false
	}
	u, ok := g.Unit(z.UnitID)
	return ok && !u.Deployed
}

func (z *UnitRelativeZone) CanDeployTo(g Game, c hexgrid.Coords, boardID int) bool {
	if g == nil || z.MustWaitForOtherDeployment(g) {
		return false
	}
	u, ok := g.Unit(z.UnitID)
	if !ok || u.Location.BoardID != boardID {
		return false
	}
	d := u.Location.Coords.Distance(c)
	return d >= z.Min && d <= z.Max
}

// OwnerZone defers to the deployment zone of the player owning a unit.
// Following owner zones from one query stops at a player already entered,
// so a zone that reaches back to itself allows nothing through that path.
type OwnerZone struct {
	UnitID int
}

// Owner returns a zone that follows the owner of unitID.
func Owner(unitID int) *OwnerZone {
	return &OwnerZone{UnitID: unitID}
}

func (z *OwnerZone) Type() string { return TypeOwner }

// maxOwnerDepth bounds the owner zones one query may follow.
const maxOwnerDepth = 16

// ownerChain is the Game seen inside an owner's zone. players lists the
// owners entered so far, outermost first.
type ownerChain struct {
	Game
	players []int
}

// ownerZone resolves the owner's zone and the Game to evaluate it with.
func (z *OwnerZone) ownerZone(g Game) (Zone, Game, bool) {
	if g == nil {
		return nil, nil, false
	}
	u, ok := g.Unit(z.UnitID)
	if !ok {
		return nil, nil, false
	}
	pz, ok := g.PlayerZone(u.OwnerID)
	if !ok || pz == nil || pz == Zone(z) {
		return nil, nil, false
	}

	base, seen := g, []int(nil)
	if ch, ok := g.(*ownerChain); ok {
		base, seen = ch.Game, ch.players
	}
	if len(seen) >= maxOwnerDepth || slices.Contains(seen, u.OwnerID) {
		return nil, nil, false
	}
	return pz, &ownerChain{Game: base, players: append(slices.Clip(seen), u.OwnerID)}, true
}

func (z *OwnerZone) MustWaitForOtherDeployment(g Game) bool {
	pz, pg, ok := z.ownerZone(g)
	return ok && pz.MustWaitForOtherDeployment(pg)
}

func (z *OwnerZone) CanDeployTo(g Game, c hexgrid.Coords, boardID int) bool {
	pz, pg, ok := z.ownerZone(g)
	return ok && pz.CanDeployTo(pg, c, boardID)
}
