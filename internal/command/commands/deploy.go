package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/udisondev/multiboard/internal/deployment"
	"github.com/udisondev/multiboard/internal/scenario"
)

// Deploy shows where a player may deploy:
//
//	deploy <player>                  zone and number of legal hexes
//	deploy <player> <board> <x> <y>  whether one hex is legal
//
// A zone waiting on an undeployed unit is reported as waiting, not as empty.
type Deploy struct {
	sc      *scenario.Scenario
	workers int
}

// NewDeploy creates the deploy command. workers bounds the board scan.
func NewDeploy(sc *scenario.Scenario, workers int) *Deploy {
	return &Deploy{sc: sc, workers: workers}
}

func (c *Deploy) Names() []string {
	return []string{"deploy"}
}

func (c *Deploy) Handle(ctx context.Context, args []string) (string, error) {
	if len(args) != 2 && len(args) != 5 {
		return "", usage("deploy <player> [<board> <x> <y>]")
	}
	p, err := findPlayer(c.sc, args[1])
	if err != nil {
		return "", err
	}
	if p.Zone == nil {
		return fmt.Sprintf("%s has no deployment zone.", playerLabel(p)), nil
	}

	if len(args) == 5 {
		loc, err := parseLocation(c.sc.Registry, args[2:5])
		if err != nil {
			return "", err
		}
		if p.Zone.MustWaitForOtherDeployment(c.sc.Game) {
			return c.mustWait(p), nil
		}
		verdict := "is"
		if !deployment.CanDeployToLocation(c.sc.Game, p.Zone, loc) {
			verdict = "is not"
		}
		return fmt.Sprintf("%s %s a legal deployment hex for %s.", loc.FriendlyString(), verdict, playerLabel(p)), nil
	}

	n, err := deployment.CountLegal(ctx, c.sc.Game, p.Zone, c.workers)
	if errors.Is(err, deployment.ErrMustWait) {
		return c.mustWait(p), nil
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s deploys in %s: %d legal hexes.", playerLabel(p), deployment.Describe(p.Zone), n), nil
}

func (c *Deploy) mustWait(p scenario.Player) string {
	ids := deployment.WaitingOn(c.sc.Game, p.Zone)
	waitFor := "other units"
	switch len(ids) {
	case 0:
	case 1:
		waitFor = fmt.Sprintf("unit %d", ids[0])
	default:
		parts := make([]string, len(ids))
		for i, id := range ids {
			parts[i] = strconv.Itoa(id)
		}
		waitFor = "units " + strings.Join(parts, ", ")
	}
	return fmt.Sprintf("%s must wait for %s to deploy before deploying in %s.",
		playerLabel(p), waitFor, deployment.Describe(p.Zone))
}
