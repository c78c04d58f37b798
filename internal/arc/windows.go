package arc

// interval is a range of relative bearings. Bearings are always in [0, 360).
type interval struct {
	lo, hi         int
	loOpen, hiOpen bool
}

func (iv interval) contains(fa int) bool {
	if fa < iv.lo || (iv.loOpen && fa == iv.lo) {
		return false
	}
	if fa > iv.hi || (iv.hiOpen && fa == iv.hi) {
		return false
	}
	return true
}

// window is the union of one or two intervals.
type window []interval

func (w window) contains(fa int) bool {
	for _, iv := range w {
		if iv.contains(fa) {
			return true
		}
	}
	return false
}

// atLeast, above, atMost and below are fa >= n, fa > n, fa <= n and fa < n.

func atLeast(n int) interval { return interval{lo: n, hi: 360, hiOpen: true} }
func above(n int) interval { return interval{lo: n, loOpen: true, hi: 360, hiOpen: true} }
func atMost(n int) interval { return interval{lo: 0, hi: n} }
func below(n int) interval { return interval{lo: 0, hi: n, hiOpen: true} }

// span is lo..hi with each end open or closed.
func span(lo int, loClosed bool, hi int, hiClosed bool) interval {
	return interval{lo: lo, hi: hi, loOpen: !loClosed, hiOpen: !hiClosed}
}

const (
	closed = true
	open   = false
)

// windows holds every arc except Arc360, which needs no bearing.
var windows = [numArcs]window{
	Forward:   {atLeast(300), atMost(60)},
	RightArm:  {atLeast(300), atMost(120)},
	LeftArm:   {atLeast(240), atMost(60)},
	Rear:      {span(120, open, 240, open)},
	Aft:       {span(120, open, 240, open)},
	RightSide: {span(60, open, 120, closed)},
	LeftSide:  {span(240, closed, 300, open)},
	MainGun:   {atLeast(240), atMost(120)},
	North:     {atLeast(270), atMost(30)},
	East:      {span(30, closed, 150, closed)},
	West:      {span(150, closed, 270, closed)},

	Nose:         {above(300), below(60)},
	NoseWPL:      {above(240), below(120)},
	LeftWing:     {above(300), atMost(0)},
	LeftWingWPL:  {above(240), below(60)},
	RightWing:    {span(0, closed, 60, open)},
	RightWingWPL: {above(300), below(120)},

	LeftWingAft:     {span(180, closed, 240, open)},
	LeftWingAftWPL:  {span(120, open, 300, open)},
	RightWingAft:    {span(120, open, 180, closed)},
	RightWingAftWPL: {span(60, open, 240, open)},
	AftWPL:          {span(60, open, 300, open)},

	// fa < 0 never holds, so only the upper interval matters.
	// A bearing that rounds up to 360 is read as 0, which is open in both
	// side spheres: dead ahead belongs to neither side.
	LeftSideSphere:        {above(240)},
	LeftSideSphereWPL:     {above(180), below(60)},
	RightSideSphere:       {span(0, open, 120, open)},
	RightSideSphereWPL:    {above(300), below(180)},
	LeftSideAftSphere:     {span(180, open, 300, open)},
	LeftSideAftSphereWPL:  {above(120)},
	RightSideAftSphere:    {span(60, open, 180, open)},
	RightSideAftSphereWPL: {span(0, open, 240, open)},

	LeftBroadside:     {span(240, closed, 300, closed)},
	LeftBroadsideWPL:  {above(180)},
	RightBroadside:    {span(60, closed, 120, closed)},
	RightBroadsideWPL: {span(0, open, 180, open)},

	LeftSphereGround:  {atLeast(180)},
	RightSphereGround: {span(0, closed, 180, open)},

	Turret:             {atLeast(330), atMost(30)},
	SponsonTurretLeft:  {atLeast(180), atMost(0)},
	SponsonTurretRight: {span(0, closed, 180, closed)},
	PintleTurretLeft:   {atLeast(180), atMost(0)},
	PintleTurretRight:  {span(0, closed, 180, closed)},
	PintleTurretFront:  {atLeast(270), atMost(90)},
	PintleTurretRear:   {span(90, closed, 270, closed)},

	VGLFront:      {atLeast(270), atMost(90)},
	VGLRightFront: {atLeast(330), atMost(150)},
	VGLRightRear:  {span(30, closed, 210, closed)},
	VGLRear:       {span(90, closed, 270, closed)},
	VGLLeftRear:   {span(150, closed, 330, closed)},
	VGLLeftFront:  {atLeast(210), atMost(30)},
}
