package deployment

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/multiboard/internal/board"
	"github.com/udisondev/multiboard/internal/hexgrid"
)

// ErrMustWait is returned for a zone that depends on a unit that has not
// been deployed yet. It defers deployment; it does not make it illegal.
var ErrMustWait = errors.New("must wait for other deployment")

// LegalLocations returns every hex of every board the zone allows, ordered
// by board id and then column-major within a board. Boards are scanned in
// parallel by at most workers goroutines (GOMAXPROCS when workers <= 0).
//
// A zone that must wait for another unit fails with ErrMustWait.
func LegalLocations(ctx context.Context, g Game, z Zone, workers int) ([]board.Location, error) {
	if g == nil || z == nil {
		return nil, nil
	}
	if z.MustWaitForOtherDeployment(g) {
		return nil, ErrMustWait
	}
	boards := g.Boards().Boards()
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	perBoard := make([][]board.Location, len(boards))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, b := range boards {
		eg.Go(func() error {
			locs, err := scanBoard(ctx, g, z, b)
			if err != nil {
				return fmt.Errorf("scanning board %d: %w", b.ID, err)
			}
			perBoard[i] = locs
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var out []board.Location
	for _, locs := range perBoard {
		out = append(out, locs...)
	}
	return out, nil
}

func scanBoard(ctx context.Context, g Game, z Zone, b *board.Board) ([]board.Location, error) {
	var out []board.Location
	for x := range b.Width {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for y := range b.Height {
			c := hexgrid.New(x, y)
			if z.CanDeployTo(g, c, b.ID) {
				out = append(out, b.Location(c))
			}
		}
	}
	return out, nil
}

// CountLegal is len(LegalLocations) for callers that only need the size.
func CountLegal(ctx context.Context, g Game, z Zone, workers int) (int, error) {
	locs, err := LegalLocations(ctx, g, z, workers)
	return len(locs), err
}

// WaitingOn returns the sorted ids of the undeployed units z waits for.
func WaitingOn(g Game, z Zone) []int {
	ids := make(map[int]struct{})
	collectWaiting(g, z, ids)
	return slices.Sorted(maps.Keys(ids))
}

func collectWaiting(g Game, z Zone, ids map[int]struct{}) {
	switch z := z.(type) {
	case *UnitRelativeZone:
		if z.MustWaitForOtherDeployment(g) {
			ids[z.UnitID] = struct{}{}
		}
	case *OwnerZone:
		if pz, pg, ok := z.ownerZone(g); ok {
			collectWaiting(pg, pz, ids)
		}
	case *UnionZone:
		collectWaiting(g, z.A, ids)
		collectWaiting(g, z.B, ids)
	case *IntersectionZone:
		collectWaiting(g, z.A, ids)
		collectWaiting(g, z.B, ids)
	case *DifferenceZone:
		collectWaiting(g, z.A, ids)
		collectWaiting(g, z.B, ids)
	case *InvertZone:
		collectWaiting(g, z.Zone, ids)
	}
}
