package board

import (
	"math"
	"strconv"
	"strings"

	"github.com/udisondev/multiboard/internal/hexgrid"
)

// TerrainType identifies a terrain feature. Values follow the board file
// vocabulary.
type TerrainType int

const (
	TerrainNone TerrainType = iota
	TerrainWoods
	TerrainWater
	TerrainRough
	TerrainRubble
	TerrainJungle
	TerrainSand
	TerrainTundra
	TerrainMagma
	TerrainFields
	TerrainIndustrial
	TerrainSpace
	TerrainPavement
	TerrainRoad
	TerrainSwamp
	TerrainMud
	TerrainRapids
	TerrainIce
	TerrainSnow
	TerrainFire
	TerrainSmoke
	TerrainGeyser
	TerrainBuilding
	TerrainBridge
	TerrainFuelTank
)

// WildcardLevel matches any level of a terrain type.
const WildcardLevel = math.MaxInt

var terrainNames = map[TerrainType]string{
	TerrainWoods:      "woods",
	TerrainWater:      "water",
	TerrainRough:      "rough",
	TerrainRubble:     "rubble",
	TerrainJungle:     "jungle",
	TerrainSand:       "sand",
	TerrainTundra:     "tundra",
	TerrainMagma:      "magma",
	TerrainFields:     "fields",
	TerrainIndustrial: "industrial",
	TerrainSpace:      "space",
	TerrainPavement:   "pavement",
	TerrainRoad:       "road",
	TerrainSwamp:      "swamp",
	TerrainMud:        "mud",
	TerrainRapids:     "rapids",
	TerrainIce:        "ice",
	TerrainSnow:       "snow",
	TerrainFire:       "fire",
	TerrainSmoke:      "smoke",
	TerrainGeyser:     "geyser",
	TerrainBuilding:   "building",
	TerrainBridge:     "bridge",
	TerrainFuelTank:   "fuel_tank",
}

var terrainByName = func() map[string]TerrainType {
	m := make(map[string]TerrainType, len(terrainNames))
	for t, n := range terrainNames {
		m[n] = t
	}
	return m
}()

func (t TerrainType) String() string {
	if n, ok := terrainNames[t]; ok {
		return n
	}
	return "none"
}

// TerrainTypeForName returns the terrain with the given board file name.
func TerrainTypeForName(name string) (TerrainType, bool) {
	t, ok := terrainByName[name]
	return t, ok
}

// Terrain is one feature of a hex.
type Terrain struct {
	Type  TerrainType
	Level int
}

// AnyLevel returns a terrain matcher for every level of t.
func AnyLevel(t TerrainType) Terrain {
	return Terrain{Type: t, Level: WildcardLevel}
}

// Hex is a single board hex.
type Hex struct {
	Coords    hexgrid.Coords
	Elevation int
	Terrain   []Terrain
	Theme     string
}

// ContainsTerrain reports whether the hex has any level of t.
func (h *Hex) ContainsTerrain(t TerrainType) bool {
	_, ok := h.TerrainLevel(t)
	return ok
}

// ContainsTerrainLevel reports whether the hex has t at exactly level.
func (h *Hex) ContainsTerrainLevel(t TerrainType, level int) bool {
	l, ok := h.TerrainLevel(t)
	return ok && l == level
}

// TerrainLevel returns the level of t in this hex.
func (h *Hex) TerrainLevel(t TerrainType) (int, bool) {
	for _, f := range h.Terrain {
		if f.Type == t {
			return f.Level, true
		}
	}
	return 0, false
}

// Matches reports whether the hex satisfies a terrain matcher; a wildcard
// level accepts any level.
func (h *Hex) Matches(t Terrain) bool {
	if t.Level == WildcardLevel {
		return h.ContainsTerrain(t.Type)
	}
	return h.ContainsTerrainLevel(t.Type, t.Level)
}

// FormatTerrain writes features in the form ParseTerrain reads.
func FormatTerrain(ts []Terrain) string {
	parts := make([]string, 0, len(ts))
	for _, t := range ts {
		parts = append(parts, t.Type.String()+":"+strconv.Itoa(t.Level))
	}
	return strings.Join(parts, ";")
}

// IsClear reports whether the hex is a plain hex at elevation 0.
func (h *Hex) IsClear() bool {
	return h.Elevation == 0 && len(h.Terrain) == 0 && h.Theme == ""
}
