package hexgrid

// AllAtDistance returns the ring of hexes exactly dist steps from c.
// The ring holds 6*dist hexes for dist > 0, just c for dist == 0 and nothing
// for dist < 0. The walk starts at the south-west corner and follows the
// directions 0..5, so the order is stable.
func (c Coords) AllAtDistance(dist int) []Coords {
	switch {
	case dist < 0:
		return nil
	case dist == 0:
		return []Coords{c}
	}

	out := make([]Coords, 0, Directions*dist)
	cur := c.TranslatedN(SouthWest, dist)
	for dir := range Directions {
		for range dist {
			out = append(out, cur)
			cur = cur.Translated(dir)
		}
	}
	return out
}

// AllAtDistances concatenates the rings min..max (inclusive).
func (c Coords) AllAtDistances(minDist, maxDist int) []Coords {
	if minDist < 0 {
		minDist = 0
	}
	if maxDist < minDist {
		return nil
	}
	out := make([]Coords, 0, diskSize(maxDist)-diskSize(minDist-1))
	for d := minDist; d <= maxDist; d++ {
		out = append(out, c.AllAtDistance(d)...)
	}
	return out
}

// AllAtDistanceOrLess returns every hex within dist of c, c first.
func (c Coords) AllAtDistanceOrLess(dist int) []Coords {
	return c.AllAtDistances(0, dist)
}

// diskSize is the number of hexes within r steps (0 for negative r).
func diskSize(r int) int {
	if r < 0 {
		return 0
	}
	return 1 + 3*r*(r+1)
}
