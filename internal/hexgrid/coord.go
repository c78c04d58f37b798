// Package hexgrid implements the offset hex coordinate system used by
// BattleTech boards: distances, bearings, translation and ring enumeration.
//
// Columns are X, rows are Y. Odd columns sit half a hex lower than even
// columns. No bounds are enforced here; checking a position against a board
// is the board's job.
package hexgrid

import (
	"fmt"
	"math"
	"strconv"
)

// Coords is a position on a hex grid. The zero value is the top-left hex.
type Coords struct {
	X int
	Y int
}

// Cube is the cube representation of a hex (Q+R+S == 0).
type Cube struct {
	Q, R, S int
}

// New is shorthand for Coords{X: x, Y: y}.
func New(x, y int) Coords {
	return Coords{X: x, Y: y}
}

// IsXOdd reports whether the column is one of the lowered ones.
func (c Coords) IsXOdd() bool {
	return c.X&1 == 1
}

// ToCube converts offset coordinates to cube coordinates.
func (c Coords) ToCube() Cube {
	q := c.X
	r := c.Y - (c.X-(c.X&1))/2
	return Cube{Q: q, R: r, S: -q - r}
}

// FromCube converts cube coordinates back to offset coordinates.
func FromCube(cu Cube) Coords {
	return Coords{X: cu.Q, Y: cu.R + (cu.Q-(cu.Q&1))/2}
}

// Translated returns the adjacent hex in direction dir.
func (c Coords) Translated(dir int) Coords {
	dir = NormalizeFacing(dir)
	return Coords{X: xInDir(c.X, dir), Y: yInDir(c.X, c.Y, dir)}
}

// TranslatedN returns the hex dist steps away in direction dir. A negative
// distance walks the opposite way.
func (c Coords) TranslatedN(dir, dist int) Coords {
	if dist < 0 {
		dir = OppositeFacing(dir)
		dist = -dist
	}
	out := c
	for range dist {
		out = out.Translated(dir)
	}
	return out
}

func xInDir(x, dir int) int {
	switch dir {
	case NorthEast, SouthEast:
		return x + 1
	case SouthWest, NorthWest:
		return x - 1
	default:
		return x
	}
}

func yInDir(x, y, dir int) int {
	switch dir {
	case North:
		return y - 1
	case NorthEast, NorthWest:
		return y - ((x + 1) & 1)
	case SouthEast, SouthWest:
		return y + (x & 1)
	case South:
		return y + 1
	default:
		return y
	}
}

// Distance returns the number of hex steps between c and d.
func (c Coords) Distance(d Coords) int {
	a, b := c.ToCube(), d.ToCube()
	return (abs(a.Q-b.Q) + abs(a.R-b.R) + abs(a.S-b.S)) / 2
}

// center returns the ideal centre of the hex with rows one unit apart.
func (c Coords) center() (float64, float64) {
	cx := float64(c.X) * columnSpacing
	cy := float64(c.Y)
	if c.IsXOdd() {
		cy += 0.5
	}
	return cx, cy
}

// Radian returns the bearing from c to d in radians, 0 pointing north and
// growing clockwise. When both centres lie on the same horizontal line the
// result is east (pi/2) if d is right of c and west (3pi/2) otherwise; this
// includes c == d.
func (c Coords) Radian(d Coords) float64 {
	sx, sy := c.center()
	dx, dy := d.center()
	if sy == dy {
		if sx < dx {
			return math.Pi / 2
		}
		return math.Pi * 1.5
	}
	r := math.Atan((dx - sx) / (sy - dy))
	if sy < dy {
		r += math.Pi
	}
	if r < 0 {
		r += 2 * math.Pi
	}
	return r
}

// Degree returns the bearing from c to d in whole degrees, 0..359.
func (c Coords) Degree(d Coords) int {
	deg := int(math.Floor(toDegrees(c.Radian(d)) + 0.5))
	return NormalizeDegree(deg)
}

// Direction returns the facing that points most closely at d.
func (c Coords) Direction(d Coords) int {
	return NormalizeFacing(int(math.Floor(c.Radian(d)/(math.Pi/3) + 0.5)))
}

// AllAdjacent returns the six neighbours in direction order.
func (c Coords) AllAdjacent() []Coords {
	out := make([]Coords, Directions)
	for dir := range Directions {
		out[dir] = c.Translated(dir)
	}
	return out
}

// IsAdjacent reports whether d is one step from c.
func (c Coords) IsAdjacent(d Coords) bool {
	return c.Distance(d) == 1
}

// BoardNum returns the XXYY label printed on board hexes (1-based).
func (c Coords) BoardNum() string {
	return fmt.Sprintf("%02d%02d", c.X+1, c.Y+1)
}

// String returns the 1-based "(x, y)" form shown to players.
func (c Coords) String() string {
	return fmt.Sprintf("(%d, %d)", c.X+1, c.Y+1)
}

// ParseBoardNum parses an XXYY (or XXXYYY) hex label into 0-based Coords.
func ParseBoardNum(s string) (Coords, error) {
	if len(s) < 4 || len(s)%2 != 0 {
		return Coords{}, fmt.Errorf("parsing hex label %q: want an even number of digits, at least 4", s)
	}
	half := len(s) / 2
	x, err := strconv.Atoi(s[:half])
	if err != nil {
		return Coords{}, fmt.Errorf("parsing hex label %q column: %w", s, err)
	}
	y, err := strconv.Atoi(s[half:])
	if err != nil {
		return Coords{}, fmt.Errorf("parsing hex label %q row: %w", s, err)
	}
	return Coords{X: x - 1, Y: y - 1}, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
