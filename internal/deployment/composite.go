package deployment

import "github.com/udisondev/multiboard/internal/hexgrid"

// UnionZone allows hexes allowed by either side.
type UnionZone struct{ A, B Zone }

// IntersectionZone allows hexes allowed by both sides.
type IntersectionZone struct{ A, B Zone }

// DifferenceZone allows hexes allowed by A and not by B.
type DifferenceZone struct{ A, B Zone }

// InvertZone allows exactly the hexes Zone does not.
type InvertZone struct{ Zone Zone }

func Union(a, b Zone) *UnionZone { return &UnionZone{A: a, B: b} }
func Intersection(a, b Zone) *IntersectionZone { return &IntersectionZone{A: a, B: b} }
func Difference(a, b Zone) *DifferenceZone { return &DifferenceZone{A: a, B: b} }
func Invert(z Zone) *InvertZone { return &InvertZone{Zone: z} }

func (z *UnionZone) Type() string { return TypeUnion }
func (z *IntersectionZone) Type() string { return TypeIntersection }
func (z *DifferenceZone) Type() string { return TypeDifference }
func (z *InvertZone) Type() string { return TypeInvert }

// can evaluates a possibly nil sub-zone; a nil zone allows nothing.
func can(z Zone, g Game, c hexgrid.Coords, boardID int) bool {
	return z != nil && z.CanDeployTo(g, c, boardID)
}

func mustWait(z Zone, g Game) bool {
	return z != nil && z.MustWaitForOtherDeployment(g)
}

func (z *UnionZone) CanDeployTo(g Game, c hexgrid.Coords, boardID int) bool {
	return can(z.A, g, c, boardID) || can(z.B, g, c, boardID)
}

func (z *IntersectionZone) CanDeployTo(g Game, c hexgrid.Coords, boardID int) bool {
	return can(z.A, g, c, boardID) && can(z.B, g, c, boardID)
}

func (z *DifferenceZone) CanDeployTo(g Game, c hexgrid.Coords, boardID int) bool {
	return can(z.A, g, c, boardID) && !can(z.B, g, c, boardID)
}

func (z *InvertZone) CanDeployTo(g Game, c hexgrid.Coords, boardID int) bool {
	return !can(z.Zone, g, c, boardID)
}

// A composite waits while any part waits.

func (z *UnionZone) MustWaitForOtherDeployment(g Game) bool {
	return mustWait(z.A, g) || mustWait(z.B, g)
}

func (z *IntersectionZone) MustWaitForOtherDeployment(g Game) bool {
	return mustWait(z.A, g) || mustWait(z.B, g)
}

func (z *DifferenceZone) MustWaitForOtherDeployment(g Game) bool {
	return mustWait(z.A, g) || mustWait(z.B, g)
}

func (z *InvertZone) MustWaitForOtherDeployment(g Game) bool {
	return mustWait(z.Zone, g)
}
