package deployment

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/udisondev/multiboard/internal/board"
)

// ErrOwnerCycle is returned when owner zones lead from a player back to
// that same player.
var ErrOwnerCycle = errors.New("owner zone cycle")

// Game is the read-only view of a game that zones consult.
type Game interface {
	Boards() *board.Registry
	Unit(id int) (Unit, bool)
	PlayerZone(playerID int) (Zone, bool)
}

// Unit is the part of a unit zones care about.
type Unit struct {
	ID       int
	OwnerID  int
	Location board.Location
	Deployed bool
}

// Snapshot is an immutable Game. Build it once per deployment step and query
// it from as many goroutines as needed.
type Snapshot struct {
	boards *board.Registry
	units  map[int]Unit
	zones  map[int]Zone
}

// NewSnapshot copies units and player zones into a Snapshot. Later units
// with a duplicate id replace earlier ones.
func NewSnapshot(reg *board.Registry, units []Unit, playerZones map[int]Zone) *Snapshot {
	s := &Snapshot{
		boards: reg,
		units:  make(map[int]Unit, len(units)),
		zones:  maps.Clone(playerZones),
	}
	if s.zones == nil {
		s.zones = make(map[int]Zone)
	}
	for _, u := range units {
		s.units[u.ID] = u
	}
	return s
}

func (s *Snapshot) Boards() *board.Registry {
	return s.boards
}

func (s *Snapshot) Unit(id int) (Unit, bool) {
	u, ok := s.units[id]
	return u, ok
}

func (s *Snapshot) PlayerZone(playerID int) (Zone, bool) {
	z, ok := s.zones[playerID]
	return z, ok
}

// Units returns all units ordered by id.
func (s *Snapshot) Units() []Unit {
	out := make([]Unit, 0, len(s.units))
	for _, id := range slices.Sorted(maps.Keys(s.units)) {
		out = append(out, s.units[id])
	}
	return out
}

// Players returns the ids of players with a zone, sorted.
func (s *Snapshot) Players() []int {
	return slices.Sorted(maps.Keys(s.zones))
}

// CheckOwnerCycles follows every owner zone to the owning player's zone and
// fails with ErrOwnerCycle when a player's zone leads back to that player.
func (s *Snapshot) CheckOwnerCycles() error {
	const (
		entered = iota + 1
		finished
	)
	state := make(map[int]int, len(s.zones))

	var visit func(player int, path []int) error
	visit = func(player int, path []int) error {
		path = append(path, player)
		switch state[player] {
		case entered:
			return fmt.Errorf("%w: players %v", ErrOwnerCycle, path)
		case finished:
			return nil
		}
		state[player] = entered
		for _, unitID := range ownerRefs(s.zones[player]) {
			u, ok := s.units[unitID]
			if !ok {
				continue
			}
			if _, ok := s.zones[u.OwnerID]; !ok {
				continue
			}
			if err := visit(u.OwnerID, slices.Clip(path)); err != nil {
				return err
			}
		}
		state[player] = finished
		return nil
	}

	for _, p := range s.Players() {
		if err := visit(p, nil); err != nil {
			return err
		}
	}
	return nil
}

// ownerRefs returns the unit ids of the owner zones in z's tree.
func ownerRefs(z Zone) []int {
	switch z := z.(type) {
	case *OwnerZone:
		return []int{z.UnitID}
	case *UnionZone:
		return append(ownerRefs(z.A), ownerRefs(z.B)...)
	case *IntersectionZone:
		return append(ownerRefs(z.A), ownerRefs(z.B)...)
	case *DifferenceZone:
		return append(ownerRefs(z.A), ownerRefs(z.B)...)
	case *InvertZone:
		return ownerRefs(z.Zone)
	}
	return nil
}
