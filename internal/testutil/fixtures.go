// Package testutil holds fixtures shared by the package tests.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/udisondev/multiboard/internal/board"
	"github.com/udisondev/multiboard/internal/hexgrid"
)

// Board ids of the Hierarchy fixture.
const (
	GroundA = 1
	GroundD = 2
	AtmoC   = 3
	SpaceS  = 4
	AtmoE   = 5
	GroundF = 6
)

// Hierarchy builds a high atmosphere board S holding atmospheric boards C at
// (2,2) and E at (6,2). C holds ground boards A at (5,5) and D at (8,5); E
// holds ground board F at (1,1).
func Hierarchy(tb testing.TB) *board.Registry {
	tb.Helper()
	space := board.New(SpaceS, "S", 10, 10, board.Space)
	space.Flag = board.FlagHighAtmosphere
	reg, err := board.NewRegistry(
		board.New(GroundA, "A", 30, 20, board.Ground),
		board.New(GroundD, "D", 16, 17, board.Ground),
		board.New(AtmoC, "C", 20, 20, board.LowAtmosphere),
		space,
		board.New(AtmoE, "E", 20, 20, board.LowAtmosphere),
		board.New(GroundF, "F", 16, 17, board.Ground),
	)
	if err != nil {
		tb.Fatalf("building registry: %v", err)
	}
	for _, e := range []struct {
		lower, higher int
		at            hexgrid.Coords
	}{
		{GroundA, AtmoC, hexgrid.New(5, 5)},
		{GroundD, AtmoC, hexgrid.New(8, 5)},
		{AtmoC, SpaceS, hexgrid.New(2, 2)},
		{AtmoE, SpaceS, hexgrid.New(6, 2)},
		{GroundF, AtmoE, hexgrid.New(1, 1)},
	} {
		if err := reg.Connect(e.lower, e.higher, e.at); err != nil {
			tb.Fatalf("connecting %d to %d: %v", e.lower, e.higher, err)
		}
	}
	return reg
}

// ContextWithTimeout returns a context cancelled when the test ends.
func ContextWithTimeout(tb testing.TB, d time.Duration) context.Context {
	tb.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), d)
	tb.Cleanup(cancel)
	return ctx
}
