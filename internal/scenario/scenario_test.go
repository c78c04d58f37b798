package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/udisondev/multiboard/internal/board"
	"github.com/udisondev/multiboard/internal/deployment"
	"github.com/udisondev/multiboard/internal/hexgrid"
)

func TestLoad(t *testing.T) {
	sc, err := Load("testdata/skirmish.yaml", "")
	require.NoError(t, err)

	assert.Equal(t, "skirmish", sc.Name)
	assert.Equal(t, 4, sc.Registry.Len())

	d, ok := sc.Registry.Board(2)
	require.True(t, ok)
	assert.Equal(t, "D", d.Name)
	assert.Equal(t, 6, d.Width)
	assert.True(t, d.Hex(hexgrid.New(2, 2)).ContainsTerrainLevel(board.TerrainWater, 2))

	s, _ := sc.Registry.Board(4)
	assert.True(t, s.IsHighAtmosphere())

	// (5,5) and (8,5) on C are 3 apart.
	assert.Equal(t, 51, sc.Registry.GroundDistance(1, 2))
	assert.Equal(t, []int{3, 4}, sc.Registry.AllEnclosingBoards(1))

	alice, ok := sc.Player(100)
	require.True(t, ok)
	assert.True(t, deployment.CanDeployToLocation(sc.Game, alice.Zone, board.At(4, 1, 1)))
	assert.False(t, deployment.CanDeployToLocation(sc.Game, alice.Zone, board.At(4, 2, 1)))

	bob, _ := sc.Player(200)
	border, ok := bob.Zone.(*deployment.BorderZone)
	require.True(t, ok)
	assert.Equal(t, deployment.StartS, border.Kind)
	assert.Equal(t, 3, border.Offset, "deep deployment")

	carol, _ := sc.Player(300)
	assert.True(t, deployment.CanDeployToLocation(sc.Game, carol.Zone, board.At(1, 0, 2)))
	assert.False(t, deployment.CanDeployToLocation(sc.Game, carol.Zone, board.At(5, 4, 2)))
	assert.True(t, deployment.CanDeployToLocation(sc.Game, carol.Zone, board.At(0, 0, 4)))

	u7, ok := sc.Unit(7)
	require.True(t, ok)
	assert.Equal(t, board.At(4, 4, 1), u7.Location)
	assert.Equal(t, hexgrid.NorthEast, u7.Facing)

	u9, _ := sc.Unit(9)
	assert.False(t, u9.Deployed)
	assert.Equal(t, board.NoBoard, u9.Location.BoardID)

	u10, _ := sc.Unit(10)
	assert.True(t, u10.Attacker().CapitalScale)

	g, ok := sc.Game.Unit(8)
	require.True(t, ok)
	assert.Equal(t, 200, g.OwnerID)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad yaml", "boards: [oops"},
		{"unknown map type", "boards: [{id: 1, name: x, width: 1, height: 1, map_type: Q}]"},
		{"no size", "boards: [{id: 1, name: x}]"},
		{"bad embedding", "boards: [{id: 1, name: g, width: 2, height: 2}, {id: 2, name: s, width: 2, height: 2, map_type: S}]\nembeddings: [{lower: 1, higher: 2, at: \"0101\"}]"},
		{"embedding label", "boards: [{id: 1, name: g, width: 2, height: 2}]\nembeddings: [{lower: 1, higher: 2, at: \"1\"}]"},
		{"unknown zone type", "players: [{id: 1, zone: {type: moat}}]"},
		{"unit on missing board", "units: [{id: 1, board: 5, at: \"0101\"}]"},
		{"deployed without position", "units: [{id: 1, deployed: true}]"},
		{"bad facing", "boards: [{id: 1, name: g, width: 2, height: 2}]\nunits: [{id: 1, board: 1, at: \"0101\", facing: up}]"},
		{"missing board file", "boards: [{id: 1, name: g, file: nope.board}]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), t.TempDir())
			assert.Error(t, err)
		})
	}
}

func TestZoneSpecBuild(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		wantType string
		wantErr  bool
	}{
		{"anywhere", "{type: anywhere}", deployment.TypeAnywhere, false},
		{"border default width", "{type: border, edge: center}", deployment.TypeBorder, false},
		{"border bad edge", "{type: border, edge: up}", "", true},
		{"list", "{type: list, board: 1, hexes: [\"0101\", \"0202\"]}", deployment.TypeList, false},
		{"list without board", "{type: list, hexes: [\"0101\"]}", "", true},
		{"list bad hex", "{type: list, board: 1, hexes: [\"x\"]}", "", true},
		{"terrain", "{type: terrain, terrain: woods, level: 2, max: 1, board: 1}", deployment.TypeTerrain, false},
		{"terrain unknown", "{type: terrain, terrain: lava, board: 1}", "", true},
		{"unit", "{type: unit, unit: 7, min: 1, max: 3}", deployment.TypeUnitRelative, false},
		{"owner", "{type: owner, unit: 7}", deployment.TypeOwner, false},
		{"intersection", "{type: intersection, zones: [{type: anywhere}, {type: owner, unit: 1}]}", deployment.TypeIntersection, false},
		{"difference", "{type: difference, zones: [{type: anywhere}, {type: owner, unit: 1}]}", deployment.TypeDifference, false},
		{"union with one zone", "{type: union, zones: [{type: anywhere}]}", "", true},
		{"union with bad child", "{type: union, zones: [{type: anywhere}, {type: moat}]}", "", true},
		{"invert without zone", "{type: invert}", "", true},
		{"unknown", "{type: moat}", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var spec ZoneSpec
			require.NoError(t, yaml.Unmarshal([]byte(tt.doc), &spec))
			z, err := spec.Build()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, z.Type())
		})
	}

	var spec ZoneSpec
	require.NoError(t, yaml.Unmarshal([]byte("{type: moat}"), &spec))
	_, err := spec.Build()
	assert.ErrorIs(t, err, ErrUnknownZoneType)
}

func TestWithRegistry(t *testing.T) {
	sc, err := Load("testdata/skirmish.yaml", "")
	require.NoError(t, err)

	reg, err := board.NewRegistry(board.New(1, "only", 5, 5, board.Ground))
	require.NoError(t, err)

	other := sc.WithRegistry(reg)
	assert.Equal(t, 1, other.Game.Boards().Len())
	assert.Equal(t, 4, sc.Game.Boards().Len())
	_, ok := other.Game.Unit(7)
	assert.True(t, ok)
}

func TestParseOwnerCycles(t *testing.T) {
	const boards = "boards: [{id: 1, name: g, width: 10, height: 10}]\n"
	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{
			name: "own unit inside a union",
			doc: boards + `players:
  - {id: 100, zone: {type: union, zones: [{type: owner, unit: 7}, {type: border, edge: n, width: 3, board: 1}]}}
units:
  - {id: 7, owner: 100, board: 1, at: "0505", deployed: true}
`,
			wantErr: true,
		},
		{
			name: "two players pointing at each other",
			doc: boards + `players:
  - {id: 100, zone: {type: owner, unit: 8}}
  - {id: 200, zone: {type: invert, zone: {type: owner, unit: 7}}}
units:
  - {id: 7, owner: 100, board: 1, at: "0505", deployed: true}
  - {id: 8, owner: 200, board: 1, at: "0606", deployed: true}
`,
			wantErr: true,
		},
		{
			name: "chain without a cycle",
			doc: boards + `players:
  - {id: 100, zone: {type: owner, unit: 8}}
  - {id: 200, zone: {type: border, edge: s, board: 1}}
units:
  - {id: 7, owner: 100, board: 1, at: "0505", deployed: true}
  - {id: 8, owner: 200, board: 1, at: "0606", deployed: true}
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), t.TempDir())
			if tt.wantErr {
				assert.ErrorIs(t, err, deployment.ErrOwnerCycle)
				return
			}
			assert.NoError(t, err)
		})
	}
}
