package board

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/multiboard/internal/hexgrid"
)

const sampleBoard = `# sample
size 4 3
hex 0101 0 "woods:2;foliage_elev:1" "grass"
hex 0201 1 "" ""
hex 0302 -1 "water:1" ""
hex 0403 2 "rough:1;road:1:04" ""
hex 0909 0 "woods:1" ""
hex 01 0 "" ""
end
`

func TestParseBoard(t *testing.T) {
	b, err := ParseBoard(strings.NewReader(sampleBoard), 7, "sample")
	require.NoError(t, err)

	assert.Equal(t, 7, b.ID)
	assert.Equal(t, 4, b.Width)
	assert.Equal(t, 3, b.Height)
	assert.True(t, b.IsGround())

	h := b.Hex(hexgrid.New(0, 0))
	require.NotNil(t, h)
	assert.Equal(t, []Terrain{{Type: TerrainWoods, Level: 2}}, h.Terrain)
	assert.Equal(t, "grass", h.Theme)

	assert.Equal(t, 1, b.Hex(hexgrid.New(1, 0)).Elevation)
	assert.Empty(t, b.Hex(hexgrid.New(1, 0)).Terrain)

	water := b.Hex(hexgrid.New(2, 1))
	assert.Equal(t, -1, water.Elevation)
	assert.True(t, water.ContainsTerrainLevel(TerrainWater, 1))

	last := b.Hex(hexgrid.New(3, 2))
	assert.True(t, last.ContainsTerrain(TerrainRough))
	assert.True(t, last.ContainsTerrain(TerrainRoad))
	assert.True(t, last.Matches(AnyLevel(TerrainRoad)))
	assert.False(t, last.Matches(Terrain{Type: TerrainRoad, Level: 2}))

	assert.Nil(t, b.Hex(hexgrid.New(8, 8)))
}

func TestParseBoardErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"hex before size", "hex 0101 0 \"\" \"\"\nsize 2 2\n"},
		{"bad size", "size x 2\n"},
		{"short size", "size 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBoard(strings.NewReader(tt.input), 1, tt.name)
			assert.Error(t, err)
		})
	}
}

func TestLoadBoardFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "desert.board")
	require.NoError(t, os.WriteFile(path, []byte(sampleBoard), 0o600))

	b, err := LoadBoardFile(path, 3)
	require.NoError(t, err)
	assert.Equal(t, "desert", b.Name)
	assert.Equal(t, 3, b.ID)

	_, err = LoadBoardFile(filepath.Join(t.TempDir(), "missing.board"), 1)
	assert.Error(t, err)
}

func TestSplitQuoted(t *testing.T) {
	assert.Equal(t, []string{"hex", "0101", "0", "", "grass land"},
		splitQuoted(`hex 0101 0 "" "grass land"`))
	assert.Equal(t, []string{"size", "16", "17"}, splitQuoted("size\t16  17"))
}

func TestEdges(t *testing.T) {
	b := New(1, "e", 5, 4, Ground)

	assert.True(t, b.IsBoardEdge(hexgrid.New(0, 2)))
	assert.True(t, b.IsBoardEdge(hexgrid.New(4, 1)))
	assert.True(t, b.IsBoardEdge(hexgrid.New(2, 3)))
	assert.False(t, b.IsBoardEdge(hexgrid.New(2, 2)))
	assert.False(t, b.IsBoardEdge(hexgrid.New(-1, 0)))

	assert.Len(t, b.TopEdge(), 5)
	assert.Len(t, b.BottomEdge(), 5)
	assert.Len(t, b.LeftEdge(), 4)
	assert.Len(t, b.RightEdge(), 4)
	assert.Equal(t, hexgrid.New(4, 3), b.RightEdge()[3])
	assert.Nil(t, b.CoordsRow(4))
	assert.Nil(t, b.CoordsColumn(-1))
}

func TestCoordsLine(t *testing.T) {
	b := New(1, "l", 5, 4, Ground)

	vertical := b.CoordsLine(hexgrid.New(2, 1), hexgrid.North)
	assert.Equal(t, []hexgrid.Coords{
		hexgrid.New(2, 3), hexgrid.New(2, 2), hexgrid.New(2, 1), hexgrid.New(2, 0),
	}, vertical)

	diagonal := b.CoordsLine(hexgrid.New(0, 0), hexgrid.SouthEast)
	require.NotEmpty(t, diagonal)
	assert.Equal(t, hexgrid.New(0, 0), diagonal[0])
	for i := 1; i < len(diagonal); i++ {
		assert.True(t, diagonal[i-1].IsAdjacent(diagonal[i]))
		assert.True(t, b.Contains(diagonal[i]))
	}

	assert.Nil(t, b.CoordsLine(hexgrid.New(9, 9), hexgrid.North))
}

func TestFormatTerrain(t *testing.T) {
	ts := []Terrain{{Type: TerrainWoods, Level: 2}, {Type: TerrainWater, Level: 1}}
	s := FormatTerrain(ts)
	assert.Equal(t, "woods:2;water:1", s)
	assert.Equal(t, ts, ParseTerrain(s))
	assert.Empty(t, FormatTerrain(nil))
	assert.Nil(t, ParseTerrain(""))

	b := New(1, "x", 2, 2, Ground)
	assert.True(t, b.Hex(hexgrid.New(0, 0)).IsClear())
	b.SetHex(Hex{Coords: hexgrid.New(0, 0), Elevation: 1})
	assert.False(t, b.Hex(hexgrid.New(0, 0)).IsClear())
}
