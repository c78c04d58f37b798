package hexgrid

import (
	"math"
	"strings"
)

// Hex directions (facings). 0 points up the map, values increase clockwise.
const (
	North = iota
	NorthEast
	SouthEast
	South
	SouthWest
	NorthWest
)

// Grid constants.
const (
	Directions       = 6
	DegreesPerFacing = 360 / Directions // 60

	// columnSpacing is the horizontal distance between the centres of two
	// adjacent columns when rows are one unit apart (1.5 * tan(30°)).
	columnSpacing = 0.8660254037844386
)

// NormalizeFacing maps any integer onto 0..5.
func NormalizeFacing(facing int) int {
	f := facing % Directions
	if f < 0 {
		f += Directions
	}
	return f
}

// OppositeFacing returns the facing pointing the other way.
func OppositeFacing(facing int) int {
	return NormalizeFacing(facing + Directions/2)
}

// NormalizeDegree maps any angle in degrees onto 0..359.
func NormalizeDegree(deg int) int {
	d := deg % 360
	if d < 0 {
		d += 360
	}
	return d
}

var directionNames = [Directions]string{"N", "NE", "SE", "S", "SW", "NW"}

// FacingName returns the compass abbreviation of a facing.
func FacingName(facing int) string {
	return directionNames[NormalizeFacing(facing)]
}

// FacingForName parses a compass abbreviation ("ne", "SW") or a digit 0-5.
func FacingForName(name string) (int, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for i, n := range directionNames {
		if n == name {
			return i, true
		}
	}
	if len(name) == 1 && name[0] >= '0' && name[0] <= '5' {
		return int(name[0] - '0'), true
	}
	return 0, false
}

func toDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
