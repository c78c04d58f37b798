package arc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/multiboard/internal/hexgrid"
)

var origin = hexgrid.New(0, 0)

// Targets around origin by bearing.
var (
	at0   = hexgrid.New(0, -3)
	at60  = hexgrid.New(1, -1)
	at90  = hexgrid.New(2, 0)
	at120 = hexgrid.New(1, 0)
	at180 = hexgrid.New(0, 3)
	at240 = hexgrid.New(-1, 0)
	at270 = hexgrid.New(-2, 0)
	at300 = hexgrid.New(-1, -1)
)

func TestBearingFixtures(t *testing.T) {
	for want, c := range map[int]hexgrid.Coords{0: at0, 60: at60, 90: at90, 120: at120, 180: at180, 240: at240, 270: at270, 300: at300} {
		require.Equal(t, want, origin.Degree(c), "bearing to %v", c)
	}
}

func TestIsInArcScenarios(t *testing.T) {
	tests := []struct {
		name    string
		facing  int
		targets []hexgrid.Coords
		id      ID
		want    bool
	}{
		{"north target forward", 0, []hexgrid.Coords{at0}, Forward, true},
		{"north target rear", 0, []hexgrid.Coords{at0}, Rear, false},
		{"south target rear", 0, []hexgrid.Coords{at180}, Rear, true},
		{"forward boundary 60 closed", 0, []hexgrid.Coords{at60}, Forward, true},
		{"forward boundary 300 closed", 0, []hexgrid.Coords{at300}, Forward, true},
		{"nose boundary 300 open", 0, []hexgrid.Coords{at300}, Nose, false},
		{"nose boundary 60 open", 0, []hexgrid.Coords{at60}, Nose, false},
		{"facing rotates the arc", hexgrid.South, []hexgrid.Coords{at180}, Forward, true},
		{"facing rotates rear", hexgrid.South, []hexgrid.Coords{at0}, Rear, true},
		{"right side 120 closed", 0, []hexgrid.Coords{at120}, RightSide, true},
		{"right side 60 open", 0, []hexgrid.Coords{at60}, RightSide, false},
		{"left side 240 closed", 0, []hexgrid.Coords{at240}, LeftSide, true},
		{"left side 300 open", 0, []hexgrid.Coords{at300}, LeftSide, false},
		{"any target matches", 0, []hexgrid.Coords{at180, at0}, Forward, true},
		{"no target matches", 0, []hexgrid.Coords{at120, at180}, Forward, false},
		{"empty targets", 0, nil, Forward, false},
		{"empty targets 360", 0, nil, Arc360, true},
		{"unknown arc", 0, []hexgrid.Coords{at0}, ID(99), false},
		{"negative arc", 0, []hexgrid.Coords{at0}, ID(-1), false},
		{"self is west", 0, []hexgrid.Coords{origin}, West, true},
		{"self is not east", 0, []hexgrid.Coords{origin}, East, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsInArc(origin, tt.facing, tt.targets, tt.id))
		})
	}
}

func TestDeadAheadInNeitherSideSphere(t *testing.T) {
	// Just west of north; the bearing rounds to 360.
	farNorth := hexgrid.New(-1, -100)
	require.Equal(t, 0, origin.Degree(farNorth))

	for _, c := range []hexgrid.Coords{at0, farNorth} {
		assert.False(t, IsInArcSingle(origin, hexgrid.North, c, LeftSideSphere), "left sphere %v", c)
		assert.False(t, IsInArcSingle(origin, hexgrid.North, c, RightSideSphere), "right sphere %v", c)
		assert.True(t, IsInArcSingle(origin, hexgrid.North, c, Forward), "forward %v", c)
	}
}

func TestArc360AlwaysTrue(t *testing.T) {
	for facing := -6; facing < 12; facing++ {
		for _, target := range origin.AllAtDistanceOrLess(3) {
			assert.True(t, IsInArcSingle(origin, facing, target, Arc360))
		}
	}
}

func TestEmptyTargetsFalse(t *testing.T) {
	for id := range numArcs {
		if id == Arc360 {
			continue
		}
		assert.False(t, IsInArc(origin, 0, nil, id), "%s", id)
		assert.False(t, IsInArc(origin, 0, []hexgrid.Coords{}, id), "%s", id)
	}
}

func TestVGLCoversCircle(t *testing.T) {
	vgl := []ID{VGLFront, VGLRightFront, VGLRightRear, VGLRear, VGLLeftRear, VGLLeftFront}
	for fa := range 360 {
		covered := false
		for _, id := range vgl {
			if windows[id].contains(fa) {
				covered = true
				break
			}
		}
		assert.True(t, covered, "bearing %d not covered", fa)
	}
}

func TestWindowBoundaries(t *testing.T) {
	tests := []struct {
		id  ID
		in  []int
		out []int
	}{
		{Forward, []int{0, 60, 300, 359}, []int{61, 299, 180}},
		{RightArm, []int{120, 300}, []int{121, 299}},
		{LeftArm, []int{60, 240}, []int{61, 239}},
		{Rear, []int{121, 239}, []int{120, 240}},
		{Aft, []int{121, 239}, []int{120, 240}},
		{MainGun, []int{120, 240}, []int{121, 239}},
		{North, []int{270, 30}, []int{31, 269}},
		{East, []int{30, 150}, []int{29, 151}},
		{West, []int{150, 270}, []int{149, 271}},
		{NoseWPL, []int{241, 119}, []int{240, 120}},
		{LeftWing, []int{0, 301}, []int{1, 300}},
		{LeftWingWPL, []int{241, 59}, []int{240, 60}},
		{RightWing, []int{0, 59}, []int{60, 359}},
		{RightWingWPL, []int{301, 119}, []int{300, 120}},
		{LeftWingAft, []int{180, 239}, []int{179, 240}},
		{LeftWingAftWPL, []int{121, 299}, []int{120, 300}},
		{RightWingAft, []int{121, 180}, []int{120, 181}},
		{RightWingAftWPL, []int{61, 239}, []int{60, 240}},
		{AftWPL, []int{61, 299}, []int{60, 300}},
		{LeftSideSphere, []int{241, 359}, []int{0, 240}},
		{LeftSideSphereWPL, []int{181, 59}, []int{180, 60}},
		{RightSideSphere, []int{1, 119}, []int{0, 120}},
		{RightSideSphereWPL, []int{301, 179}, []int{300, 180}},
		{LeftSideAftSphere, []int{181, 299}, []int{180, 300}},
		{LeftSideAftSphereWPL, []int{121, 359}, []int{120, 0}},
		{RightSideAftSphere, []int{61, 179}, []int{60, 180}},
		{RightSideAftSphereWPL, []int{1, 239}, []int{0, 240}},
		{LeftBroadside, []int{240, 300}, []int{239, 301}},
		{LeftBroadsideWPL, []int{181, 359}, []int{180, 0}},
		{RightBroadside, []int{60, 120}, []int{59, 121}},
		{RightBroadsideWPL, []int{1, 179}, []int{0, 180}},
		{LeftSphereGround, []int{180, 359}, []int{0, 179}},
		{RightSphereGround, []int{0, 179}, []int{180, 359}},
		{Turret, []int{330, 30}, []int{329, 31}},
		{SponsonTurretLeft, []int{0, 180, 359}, []int{1, 179}},
		{PintleTurretLeft, []int{0, 180}, []int{1, 179}},
		{SponsonTurretRight, []int{0, 180}, []int{181, 359}},
		{PintleTurretRight, []int{0, 180}, []int{181}},
		{PintleTurretFront, []int{270, 90}, []int{91, 269}},
		{PintleTurretRear, []int{90, 270}, []int{89, 271}},
		{VGLRightFront, []int{330, 150}, []int{329, 151}},
		{VGLRightRear, []int{30, 210}, []int{29, 211}},
		{VGLLeftRear, []int{150, 330}, []int{149, 331}},
		{VGLLeftFront, []int{210, 30}, []int{209, 31}},
	}

	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			for _, fa := range tt.in {
				assert.True(t, windows[tt.id].contains(fa), "%d should be inside", fa)
			}
			for _, fa := range tt.out {
				assert.False(t, windows[tt.id].contains(fa), "%d should be outside", fa)
			}
		})
	}
}

func TestEveryArcHasWindow(t *testing.T) {
	for id := Forward; id < numArcs; id++ {
		assert.NotEmpty(t, windows[id], "%s", id)
		assert.NotEmpty(t, names[id])
	}
}

func TestFiringArcFromVGLFacing(t *testing.T) {
	tests := []struct {
		facing int
		want   ID
	}{
		{0, VGLFront},
		{1, VGLRightFront},
		{2, VGLRightRear},
		{3, VGLRear},
		{4, VGLLeftRear},
		{5, VGLLeftFront},
		{6, VGLFront},
		{-1, VGLLeftFront},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FiringArcFromVGLFacing(tt.facing), "facing %d", tt.facing)
	}
}

func TestIsThroughFrontHex(t *testing.T) {
	// Target at origin facing north: attacks from due north enter the front.
	assert.True(t, IsThroughFrontHex(at0, origin, hexgrid.North))
	assert.False(t, IsThroughFrontHex(at60, origin, hexgrid.North))
	assert.False(t, IsThroughFrontHex(at180, origin, hexgrid.North))
	assert.True(t, IsThroughFrontHex(at180, origin, hexgrid.South))
}

func TestNames(t *testing.T) {
	id, err := ForName("VGL_RF")
	require.NoError(t, err)
	assert.Equal(t, VGLRightFront, id)

	_, err = ForName("sideways")
	assert.Error(t, err)

	assert.Equal(t, "arc(77)", ID(77).String())
	assert.Equal(t, ID(49), RightBroadsideWPL)
	assert.Equal(t, ID(22), Aft)
	assert.Equal(t, ID(32), VGLFront)
	assert.Equal(t, ID(38), NoseWPL)
}
