// Package arc decides whether a target lies inside a weapon's firing arc.
//
// An arc is a table entry of one or two angular windows over the bearing to
// the target measured clockwise from the unit's facing. Each window keeps
// its own open or closed ends because a target exactly on a boundary line
// must always resolve the same way.
package arc

import (
	"fmt"
	"strings"

	"github.com/udisondev/multiboard/internal/hexgrid"
)

// ID names a firing arc.
type ID int

const (
	Arc360 ID = iota
	Forward
	LeftArm
	RightArm
	Rear
	LeftSide
	RightSide
	MainGun
	North
	East
	West
	Nose
	LeftWing
	RightWing
	LeftWingAft
	RightWingAft
	LeftSideSphere
	RightSideSphere
	LeftSideAftSphere
	RightSideAftSphere
	LeftBroadside
	RightBroadside
	Aft
	LeftSphereGround
	RightSphereGround
	Turret
	SponsonTurretLeft
	SponsonTurretRight
	PintleTurretLeft
	PintleTurretRight
	PintleTurretFront
	PintleTurretRear
	VGLFront
	VGLRightFront
	VGLRightRear
	VGLRear
	VGLLeftRear
	VGLLeftFront
	NoseWPL
	LeftWingWPL
	RightWingWPL
	LeftWingAftWPL
	RightWingAftWPL
	LeftSideSphereWPL
	RightSideSphereWPL
	LeftSideAftSphereWPL
	RightSideAftSphereWPL
	AftWPL
	LeftBroadsideWPL
	RightBroadsideWPL

	numArcs
)

var names = [numArcs]string{
	Arc360:                "360",
	Forward:               "forward",
	LeftArm:               "left_arm",
	RightArm:              "right_arm",
	Rear:                  "rear",
	LeftSide:              "left_side",
	RightSide:             "right_side",
	MainGun:               "main_gun",
	North:                 "north",
	East:                  "east",
	West:                  "west",
	Nose:                  "nose",
	LeftWing:              "left_wing",
	RightWing:             "right_wing",
	LeftWingAft:           "left_wing_aft",
	RightWingAft:          "right_wing_aft",
	LeftSideSphere:        "left_side_sphere",
	RightSideSphere:       "right_side_sphere",
	LeftSideAftSphere:     "left_side_aft_sphere",
	RightSideAftSphere:    "right_side_aft_sphere",
	LeftBroadside:         "left_broadside",
	RightBroadside:        "right_broadside",
	Aft:                   "aft",
	LeftSphereGround:      "left_sphere_ground",
	RightSphereGround:     "right_sphere_ground",
	Turret:                "turret",
	SponsonTurretLeft:     "sponson_turret_left",
	SponsonTurretRight:    "sponson_turret_right",
	PintleTurretLeft:      "pintle_turret_left",
	PintleTurretRight:     "pintle_turret_right",
	PintleTurretFront:     "pintle_turret_front",
	PintleTurretRear:      "pintle_turret_rear",
	VGLFront:              "vgl_front",
	VGLRightFront:         "vgl_rf",
	VGLRightRear:          "vgl_rr",
	VGLRear:               "vgl_rear",
	VGLLeftRear:           "vgl_lr",
	VGLLeftFront:          "vgl_lf",
	NoseWPL:               "nose_wpl",
	LeftWingWPL:           "left_wing_wpl",
	RightWingWPL:          "right_wing_wpl",
	LeftWingAftWPL:        "left_wing_aft_wpl",
	RightWingAftWPL:       "right_wing_aft_wpl",
	LeftSideSphereWPL:     "left_side_sphere_wpl",
	RightSideSphereWPL:    "right_side_sphere_wpl",
	LeftSideAftSphereWPL:  "left_side_aft_sphere_wpl",
	RightSideAftSphereWPL: "right_side_aft_sphere_wpl",
	AftWPL:                "aft_wpl",
	LeftBroadsideWPL:      "left_broadside_wpl",
	RightBroadsideWPL:     "right_broadside_wpl",
}

// Known reports whether id is one of the defined arcs.
func Known(id ID) bool {
	return id >= 0 && id < numArcs
}

func (id ID) String() string {
	if Known(id) {
		return names[id]
	}
	return fmt.Sprintf("arc(%d)", int(id))
}

// ForName parses a name returned by String, case-insensitively.
func ForName(name string) (ID, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range names {
		if n == name {
			return ID(i), nil
		}
	}
	return 0, fmt.Errorf("unknown firing arc %q", name)
}

// IsInArc reports whether any target lies inside the arc of a unit at src
// facing facing. Targets are checked in order and the first hit wins.
// Arc360 is always true. An empty target list or an unknown arc is false.
func IsInArc(src hexgrid.Coords, facing int, targets []hexgrid.Coords, id ID) bool {
	if id == Arc360 {
		return true
	}
	if !Known(id) {
		return false
	}
	w := windows[id]
	for _, t := range targets {
		if w.contains(relativeBearing(src, facing, t)) {
			return true
		}
	}
	return false
}

// IsInArcSingle is IsInArc for one target hex.
func IsInArcSingle(src hexgrid.Coords, facing int, target hexgrid.Coords, id ID) bool {
	return IsInArc(src, facing, []hexgrid.Coords{target}, id)
}

// relativeBearing is the bearing to t in [0, 360) measured from facing.
func relativeBearing(src hexgrid.Coords, facing int, t hexgrid.Coords) int {
	return hexgrid.NormalizeDegree(src.Degree(t) - facing*hexgrid.DegreesPerFacing)
}

var vglByFacing = [hexgrid.Directions]ID{
	VGLFront, VGLRightFront, VGLRightRear, VGLRear, VGLLeftRear, VGLLeftFront,
}

// FiringArcFromVGLFacing returns the vehicular grenade launcher arc for a
// launcher facing. Any int is accepted and taken modulo 6.
func FiringArcFromVGLFacing(facing int) ID {
	return vglByFacing[hexgrid.NormalizeFacing(facing)]
}

// IsThroughFrontHex reports whether an attack from src enters the front hex
// side of a target at targetPos facing targetFacing.
func IsThroughFrontHex(src, targetPos hexgrid.Coords, targetFacing int) bool {
	fa := relativeBearing(targetPos, targetFacing, src)
	return fa > 330 || fa < 30
}
