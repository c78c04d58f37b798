package deployment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/multiboard/internal/board"
	"github.com/udisondev/multiboard/internal/hexgrid"
)

const (
	mainBoard  = 1
	otherBoard = 2
)

func newTestGame(t *testing.T) *Snapshot {
	t.Helper()
	main := board.New(mainBoard, "main", 16, 17, board.Ground)
	main.SetHex(board.Hex{
		Coords:  hexgrid.New(8, 8),
		Terrain: []board.Terrain{{Type: board.TerrainWoods, Level: 2}},
	})
	other := board.New(otherBoard, "other", 10, 10, board.Ground)

	reg, err := board.NewRegistry(main, other)
	require.NoError(t, err)

	units := []Unit{
		{ID: 1, OwnerID: 100, Location: board.At(3, 3, mainBoard), Deployed: true},
		{ID: 2, OwnerID: 100, Deployed: false},
		{ID: 3, OwnerID: 200, Location: board.At(5, 5, otherBoard), Deployed: true},
	}
	zones := map[int]Zone{
		100: Border(StartN, 3, 0, mainBoard),
	}
	return NewSnapshot(reg, units, zones)
}

// sampleZones covers every variant.
func sampleZones() map[string]Zone {
	north := Border(StartN, 3, 0, mainBoard)
	return map[string]Zone{
		"anywhere":        Anywhere(),
		"anywhere main":   Anywhere(mainBoard),
		"border n":        north,
		"border center":   Border(StartCenter, 3, 0, AnyBoard),
		"list":            ListOnBoard(mainBoard, hexgrid.New(0, 0), hexgrid.New(4, 4)),
		"terrain":         Terrain(board.AnyLevel(board.TerrainWoods), 0, 2, mainBoard),
		"terrain level 1": Terrain(board.Terrain{Type: board.TerrainWoods, Level: 1}, 0, 2, mainBoard),
		"unit relative":   UnitRelative(1, 1, 3),
		"owner":           Owner(1),
		"union":           Union(north, Border(StartW, 2, 0, mainBoard)),
		"difference":      Difference(north, Border(StartW, 2, 0, mainBoard)),
	}
}

func forEveryHex(g *Snapshot, fn func(c hexgrid.Coords, boardID int)) {
	for _, b := range g.Boards().Boards() {
		for x := -1; x <= b.Width; x++ {
			for y := -1; y <= b.Height; y++ {
				fn(hexgrid.New(x, y), b.ID)
			}
		}
	}
}

func TestZoneAlgebra(t *testing.T) {
	g := newTestGame(t)

	for name, z := range sampleZones() {
		t.Run(name, func(t *testing.T) {
			inv := Invert(z)
			union := Union(z, z)
			contradiction := Intersection(z, Invert(z))

			forEveryHex(g, func(c hexgrid.Coords, boardID int) {
				want := z.CanDeployTo(g, c, boardID)
				assert.Equal(t, !want, inv.CanDeployTo(g, c, boardID), "invert at %v board %d", c, boardID)
				assert.Equal(t, want, union.CanDeployTo(g, c, boardID), "union at %v board %d", c, boardID)
				assert.False(t, contradiction.CanDeployTo(g, c, boardID), "intersection at %v board %d", c, boardID)
			})
		})
	}
}

func TestBorderNorthSouthDisjoint(t *testing.T) {
	g := newTestGame(t)
	north := Border(StartN, 3, 0, mainBoard)
	south := Border(StartS, 3, 0, mainBoard)

	var n, s int
	forEveryHex(g, func(c hexgrid.Coords, boardID int) {
		inN := north.CanDeployTo(g, c, boardID)
		inS := south.CanDeployTo(g, c, boardID)
		assert.False(t, inN && inS, "%v in both bands", c)
		if inN {
			n++
		}
		if inS {
			s++
		}
	})
	assert.Equal(t, 16*3, n)
	assert.Equal(t, 16*3, s)
}

func TestBorderRegions(t *testing.T) {
	// 16 wide, 17 tall: Width/2 = 8, Height/2 = 8.
	tests := []struct {
		name   string
		kind   BorderKind
		width  int
		offset int
		c      hexgrid.Coords
		want   bool
	}{
		{"any", StartAny, 3, 0, hexgrid.New(8, 8), true},
		{"n inside", StartN, 3, 0, hexgrid.New(8, 2), true},
		{"n outside", StartN, 3, 0, hexgrid.New(8, 3), false},
		{"n offset skips edge", StartN, 3, 1, hexgrid.New(8, 0), false},
		{"n offset inside", StartN, 3, 1, hexgrid.New(8, 3), true},
		{"s inside", StartS, 3, 0, hexgrid.New(0, 14), true},
		{"s outside", StartS, 3, 0, hexgrid.New(0, 13), false},
		{"s offset skips edge", StartS, 3, 1, hexgrid.New(0, 16), false},
		{"e inside", StartE, 3, 0, hexgrid.New(13, 0), true},
		{"e outside", StartE, 3, 0, hexgrid.New(12, 0), false},
		{"w inside", StartW, 3, 0, hexgrid.New(2, 16), true},
		{"w outside", StartW, 3, 0, hexgrid.New(3, 16), false},
		{"nw west band", StartNW, 3, 0, hexgrid.New(1, 7), true},
		{"nw west band below half", StartNW, 3, 0, hexgrid.New(1, 8), false},
		{"nw north band", StartNW, 3, 0, hexgrid.New(7, 1), true},
		{"nw north band past half", StartNW, 3, 0, hexgrid.New(8, 1), false},
		{"ne east band", StartNE, 3, 0, hexgrid.New(15, 0), true},
		{"ne north band", StartNE, 3, 0, hexgrid.New(9, 2), true},
		{"ne north band at half", StartNE, 3, 0, hexgrid.New(8, 2), false},
		{"se east band", StartSE, 3, 0, hexgrid.New(14, 9), true},
		{"se east band at half", StartSE, 3, 0, hexgrid.New(14, 8), false},
		{"se south band", StartSE, 3, 0, hexgrid.New(9, 16), true},
		{"sw west band", StartSW, 3, 0, hexgrid.New(0, 9), true},
		{"sw south band", StartSW, 3, 0, hexgrid.New(7, 15), true},
		{"sw south band east half", StartSW, 3, 0, hexgrid.New(8, 15), false},
		{"edge north", StartEdge, 3, 0, hexgrid.New(7, 0), true},
		{"edge east", StartEdge, 3, 0, hexgrid.New(15, 8), true},
		{"edge middle", StartEdge, 3, 0, hexgrid.New(7, 8), false},
		{"center low bound", StartCenter, 3, 0, hexgrid.New(5, 5), true},
		{"center high bound", StartCenter, 3, 0, hexgrid.New(10, 11), true},
		{"center outside", StartCenter, 3, 0, hexgrid.New(4, 8), false},
		{"unknown kind", BorderKind(42), 3, 0, hexgrid.New(0, 0), false},
	}

	g := newTestGame(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z := Border(tt.kind, tt.width, tt.offset, mainBoard)
			assert.Equal(t, tt.want, z.CanDeployTo(g, tt.c, mainBoard))
		})
	}
}

func TestBorderBoardMatching(t *testing.T) {
	g := newTestGame(t)

	assert.False(t, Border(StartN, 3, 0, mainBoard).CanDeployTo(g, hexgrid.New(0, 0), otherBoard))
	assert.True(t, Border(StartN, 3, 0, AnyBoard).CanDeployTo(g, hexgrid.New(0, 0), otherBoard))
	assert.False(t, Border(StartN, 3, 0, AnyBoard).CanDeployTo(g, hexgrid.New(0, 0), 99))
	assert.False(t, Border(StartAny, 3, 0, mainBoard).CanDeployTo(nil, hexgrid.New(0, 0), mainBoard))
}

func TestStartingPosition(t *testing.T) {
	kind, deep := DecodeStartingPosition(2)
	assert.Equal(t, StartN, kind)
	assert.False(t, deep)

	kind, deep = DecodeStartingPosition(12)
	assert.Equal(t, StartN, kind)
	assert.True(t, deep)

	z := StartingPositionZone(12, 3, 0, mainBoard)
	assert.Equal(t, StartN, z.Kind)
	assert.Equal(t, 3, z.Offset)

	g := newTestGame(t)
	assert.False(t, z.CanDeployTo(g, hexgrid.New(4, 0), mainBoard))
	assert.True(t, z.CanDeployTo(g, hexgrid.New(4, 3), mainBoard))

	k, err := BorderKindForName(" NW ")
	require.NoError(t, err)
	assert.Equal(t, StartNW, k)
	_, err = BorderKindForName("up")
	assert.Error(t, err)
}

func TestListZone(t *testing.T) {
	g := newTestGame(t)
	z := List(board.At(1, 1, mainBoard), board.At(1, 1, mainBoard), board.At(2, 2, otherBoard))

	assert.Len(t, z.Locations(), 2)
	assert.True(t, z.CanDeployTo(g, hexgrid.New(1, 1), mainBoard))
	assert.False(t, z.CanDeployTo(g, hexgrid.New(1, 1), otherBoard))
	assert.True(t, z.CanDeployTo(g, hexgrid.New(2, 2), otherBoard))
	assert.False(t, z.CanDeployTo(nil, hexgrid.New(1, 1), mainBoard))
}

func TestAnywhereZone(t *testing.T) {
	assert.True(t, Anywhere().CanDeployTo(nil, hexgrid.New(0, 0), 42))
	assert.True(t, Anywhere(1, 2).CanDeployTo(nil, hexgrid.New(0, 0), 2))
	assert.False(t, Anywhere(1, 2).CanDeployTo(nil, hexgrid.New(0, 0), 3))
}

func TestTerrainZone(t *testing.T) {
	g := newTestGame(t)
	woods := hexgrid.New(8, 8)

	tests := []struct {
		name string
		zone Zone
		c    hexgrid.Coords
		b    int
		want bool
	}{
		{"on the woods", Terrain(board.AnyLevel(board.TerrainWoods), 0, 0, mainBoard), woods, mainBoard, true},
		{"two hexes away", Terrain(board.AnyLevel(board.TerrainWoods), 0, 2, mainBoard), woods.TranslatedN(hexgrid.North, 2), mainBoard, true},
		{"three hexes away", Terrain(board.AnyLevel(board.TerrainWoods), 0, 2, mainBoard), woods.TranslatedN(hexgrid.North, 3), mainBoard, false},
		{"inside min distance", Terrain(board.AnyLevel(board.TerrainWoods), 1, 2, mainBoard), woods, mainBoard, false},
		{"exact level", Terrain(board.Terrain{Type: board.TerrainWoods, Level: 2}, 0, 1, mainBoard), woods, mainBoard, true},
		{"wrong level", Terrain(board.Terrain{Type: board.TerrainWoods, Level: 1}, 0, 1, mainBoard), woods, mainBoard, false},
		{"other terrain", Terrain(board.AnyLevel(board.TerrainWater), 0, 3, mainBoard), woods, mainBoard, false},
		{"other board", Terrain(board.AnyLevel(board.TerrainWoods), 0, 2, mainBoard), woods, otherBoard, false},
		{"unknown board", Terrain(board.AnyLevel(board.TerrainWoods), 0, 2, 99), woods, 99, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.zone.CanDeployTo(g, tt.c, tt.b))
		})
	}
}

func TestUnitRelativeZone(t *testing.T) {
	g := newTestGame(t)
	unit := hexgrid.New(3, 3)

	z := UnitRelative(1, 1, 2)
	assert.False(t, z.MustWaitForOtherDeployment(g))
	assert.False(t, z.CanDeployTo(g, unit, mainBoard))
	assert.True(t, z.CanDeployTo(g, unit.Translated(hexgrid.South), mainBoard))
	assert.True(t, z.CanDeployTo(g, unit.TranslatedN(hexgrid.South, 2), mainBoard))
	assert.False(t, z.CanDeployTo(g, unit.TranslatedN(hexgrid.South, 3), mainBoard))
	assert.False(t, z.CanDeployTo(g, unit.Translated(hexgrid.South), otherBoard))

	waiting := UnitRelative(2, 0, 5)
	assert.True(t, waiting.MustWaitForOtherDeployment(g))
	assert.False(t, waiting.CanDeployTo(g, hexgrid.New(0, 0), 0))

	missing := UnitRelative(99, 0, 5)
	assert.False(t, missing.MustWaitForOtherDeployment(g))
	assert.False(t, missing.CanDeployTo(g, hexgrid.New(0, 0), mainBoard))
	assert.False(t, missing.MustWaitForOtherDeployment(nil))

	assert.True(t, Union(z, waiting).MustWaitForOtherDeployment(g))
	assert.True(t, Invert(waiting).MustWaitForOtherDeployment(g))
}

func TestOwnerZone(t *testing.T) {
	g := newTestGame(t)

	z := Owner(1)
	assert.True(t, z.CanDeployTo(g, hexgrid.New(5, 0), mainBoard))
	assert.False(t, z.CanDeployTo(g, hexgrid.New(5, 5), mainBoard))

	assert.False(t, Owner(3).CanDeployTo(g, hexgrid.New(0, 0), otherBoard), "owner without a zone")
	assert.False(t, Owner(99).CanDeployTo(g, hexgrid.New(5, 0), mainBoard))
	assert.False(t, z.CanDeployTo(nil, hexgrid.New(5, 0), mainBoard))
}

func TestOwnerZoneCycles(t *testing.T) {
	reg, err := board.NewRegistry(board.New(mainBoard, "main", 10, 10, board.Ground))
	require.NoError(t, err)
	units := []Unit{
		{ID: 7, OwnerID: 100, Location: board.At(4, 4, mainBoard), Deployed: true},
		{ID: 8, OwnerID: 200, Location: board.At(5, 5, mainBoard), Deployed: true},
	}
	north := Border(StartN, 3, 0, mainBoard)

	t.Run("own unit inside a union", func(t *testing.T) {
		z := Union(Owner(7), north)
		g := NewSnapshot(reg, units, map[int]Zone{100: z})
		assert.ErrorIs(t, g.CheckOwnerCycles(), ErrOwnerCycle)

		assert.True(t, z.CanDeployTo(g, hexgrid.New(4, 1), mainBoard))
		assert.False(t, z.CanDeployTo(g, hexgrid.New(4, 7), mainBoard))
		assert.False(t, z.MustWaitForOtherDeployment(g))
		n, err := CountLegal(context.Background(), g, z, 2)
		require.NoError(t, err)
		assert.Equal(t, 30, n)
	})

	t.Run("two players pointing at each other", func(t *testing.T) {
		g := NewSnapshot(reg, units, map[int]Zone{
			100: Owner(8),
			200: Invert(Owner(7)),
		})
		err := g.CheckOwnerCycles()
		assert.ErrorIs(t, err, ErrOwnerCycle)

		z, _ := g.PlayerZone(100)
		assert.NotPanics(t, func() {
			z.CanDeployTo(g, hexgrid.New(0, 0), mainBoard)
			z.MustWaitForOtherDeployment(g)
			WaitingOn(g, z)
		})
	})

	t.Run("no cycle", func(t *testing.T) {
		g := NewSnapshot(reg, units, map[int]Zone{100: Owner(8), 200: north})
		assert.NoError(t, g.CheckOwnerCycles())
		z, _ := g.PlayerZone(100)
		assert.True(t, z.CanDeployTo(g, hexgrid.New(4, 1), mainBoard))
	})
}

func TestWaitingOn(t *testing.T) {
	g := newTestGame(t)

	assert.Empty(t, WaitingOn(g, Border(StartN, 3, 0, mainBoard)))
	assert.Empty(t, WaitingOn(g, UnitRelative(1, 0, 2)))
	assert.Equal(t, []int{2}, WaitingOn(g, Difference(Anywhere(), Invert(UnitRelative(2, 0, 2)))))

	withWaiting := NewSnapshot(g.Boards(), g.Units(), map[int]Zone{100: UnitRelative(2, 1, 2)})
	assert.Equal(t, []int{2}, WaitingOn(withWaiting, Owner(1)))
	assert.Empty(t, WaitingOn(nil, UnitRelative(2, 0, 2)))
}

func TestLegalLocations(t *testing.T) {
	g := newTestGame(t)

	locs, err := LegalLocations(context.Background(), g, Border(StartN, 2, 0, AnyBoard), 2)
	require.NoError(t, err)
	assert.Len(t, locs, 16*2+10*2)
	assert.Equal(t, board.At(0, 0, mainBoard), locs[0])
	assert.Equal(t, board.At(0, 1, mainBoard), locs[1])
	assert.Equal(t, board.At(9, 1, otherBoard), locs[len(locs)-1])

	n, err := CountLegal(context.Background(), g, Anywhere(otherBoard), 0)
	require.NoError(t, err)
	assert.Equal(t, 100, n)

	locs, err = LegalLocations(context.Background(), g, UnitRelative(2, 0, 1), 2)
	assert.ErrorIs(t, err, ErrMustWait)
	assert.Empty(t, locs)
	_, err = CountLegal(context.Background(), g, Union(Anywhere(), UnitRelative(2, 0, 1)), 2)
	assert.ErrorIs(t, err, ErrMustWait)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = LegalLocations(ctx, g, Anywhere(), 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDescribe(t *testing.T) {
	z := Difference(Border(StartN, 3, 0, AnyBoard), Invert(UnitRelative(4, 1, 2)))
	assert.Equal(t, "(n border (width 3, offset 0) on any board) but not (not (1-2 hexes from unit 4))", Describe(z))
	assert.Equal(t, "nowhere", Describe(nil))
	assert.Equal(t, "anywhere on boards [1 2]", Describe(Anywhere(1, 2)))
}
