package scenario

import (
	"errors"
	"fmt"

	"github.com/udisondev/multiboard/internal/board"
	"github.com/udisondev/multiboard/internal/deployment"
	"github.com/udisondev/multiboard/internal/hexgrid"
)

// ErrUnknownZoneType is returned for a zone with an unrecognised type.
var ErrUnknownZoneType = errors.New("unknown zone type")

// ZoneSpec is the YAML form of a deployment zone tree.
type ZoneSpec struct {
	Type string `yaml:"type"`

	// border
	Edge   string `yaml:"edge,omitempty"`
	Width  *int   `yaml:"width,omitempty"`
	Offset int    `yaml:"offset,omitempty"`

	// border (omitted means any board), list and terrain (required)
	Board *int `yaml:"board,omitempty"`

	// anywhere
	Boards []int `yaml:"boards,omitempty"`

	// list, as XXYY labels
	Hexes []string `yaml:"hexes,omitempty"`

	// terrain; omitted level matches every level
	Terrain string `yaml:"terrain,omitempty"`
	Level   *int   `yaml:"level,omitempty"`

	// terrain, unit
	Min int `yaml:"min,omitempty"`
	Max int `yaml:"max,omitempty"`

	// unit, owner
	Unit int `yaml:"unit,omitempty"`

	// union, intersection, difference
	Zones []ZoneSpec `yaml:"zones,omitempty"`

	// invert
	Zone *ZoneSpec `yaml:"zone,omitempty"`
}

// maxZoneDepth stops runaway nesting in hand-written files.
const maxZoneDepth = 32

// Build converts the spec into a deployment zone.
func (s ZoneSpec) Build() (deployment.Zone, error) {
	return s.build(0)
}

func (s ZoneSpec) build(depth int) (deployment.Zone, error) {
	if depth > maxZoneDepth {
		return nil, fmt.Errorf("zone nested deeper than %d", maxZoneDepth)
	}

	switch s.Type {
	case deployment.TypeAnywhere:
		return deployment.Anywhere(s.Boards...), nil

	case deployment.TypeBorder:
		kind, err := deployment.BorderKindForName(s.Edge)
		if err != nil {
			return nil, err
		}
		width := deployment.DefaultBorderWidth
		if s.Width != nil {
			width = *s.Width
		}
		return deployment.Border(kind, width, s.Offset, s.boardOrAny()), nil

	case deployment.TypeList:
		if s.Board == nil {
			return nil, fmt.Errorf("list zone needs a board")
		}
		coords := make([]hexgrid.Coords, 0, len(s.Hexes))
		for _, h := range s.Hexes {
			c, err := hexgrid.ParseBoardNum(h)
			if err != nil {
				return nil, fmt.Errorf("list zone: %w", err)
			}
			coords = append(coords, c)
		}
		return deployment.ListOnBoard(*s.Board, coords...), nil

	case deployment.TypeTerrain:
		if s.Board == nil {
			return nil, fmt.Errorf("terrain zone needs a board")
		}
		tt, ok := board.TerrainTypeForName(s.Terrain)
		if !ok {
			return nil, fmt.Errorf("terrain zone: unknown terrain %q", s.Terrain)
		}
		t := board.AnyLevel(tt)
		if s.Level != nil {
			t.Level = *s.Level
		}
		return deployment.Terrain(t, s.Min, s.Max, *s.Board), nil

	case deployment.TypeUnitRelative:
		return deployment.UnitRelative(s.Unit, s.Min, s.Max), nil

	case deployment.TypeOwner:
		return deployment.Owner(s.Unit), nil

	case deployment.TypeUnion, deployment.TypeIntersection, deployment.TypeDifference:
		if len(s.Zones) != 2 {
			return nil, fmt.Errorf("%s zone needs 2 zones, got %d", s.Type, len(s.Zones))
		}
		a, err := s.Zones[0].build(depth + 1)
		if err != nil {
			return nil, fmt.Errorf("%s zone: %w", s.Type, err)
		}
		b, err := s.Zones[1].build(depth + 1)
		if err != nil {
			return nil, fmt.Errorf("%s zone: %w", s.Type, err)
		}
		switch s.Type {
		case deployment.TypeUnion:
			return deployment.Union(a, b), nil
		case deployment.TypeIntersection:
			return deployment.Intersection(a, b), nil
		default:
			return deployment.Difference(a, b), nil
		}

	case deployment.TypeInvert:
		if s.Zone == nil {
			return nil, fmt.Errorf("invert zone needs a zone")
		}
		z, err := s.Zone.build(depth + 1)
		if err != nil {
			return nil, fmt.Errorf("invert zone: %w", err)
		}
		return deployment.Invert(z), nil

	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownZoneType, s.Type)
	}
}

func (s ZoneSpec) boardOrAny() int {
	if s.Board == nil {
		return deployment.AnyBoard
	}
	return *s.Board
}
