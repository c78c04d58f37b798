package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/udisondev/multiboard/internal/board"
	"github.com/udisondev/multiboard/internal/db"
	"github.com/udisondev/multiboard/internal/scenario"
)

// LayoutStore keeps named board layouts.
type LayoutStore interface {
	SaveLayout(ctx context.Context, name string, reg *board.Registry) error
	ListLayouts(ctx context.Context) ([]db.LayoutSummary, error)
	DeleteLayout(ctx context.Context, name string) error
}

// Layouts manages stored layouts:
//
//	layouts                list stored layouts
//	layouts save <name>    store the current boards
//	layouts delete <name>  remove a stored layout
type Layouts struct {
	sc    *scenario.Scenario
	store LayoutStore
}

// NewLayouts creates the layouts command.
func NewLayouts(sc *scenario.Scenario, store LayoutStore) *Layouts {
	return &Layouts{sc: sc, store: store}
}

func (c *Layouts) Names() []string {
	return []string{"layouts"}
}

func (c *Layouts) Handle(ctx context.Context, args []string) (string, error) {
	const text = "layouts [save <name> | delete <name>]"

	if len(args) == 1 {
		list, err := c.store.ListLayouts(ctx)
		if err != nil {
			return "", err
		}
		if len(list) == 0 {
			return "No stored layouts.", nil
		}
		lines := make([]string, 0, len(list))
		for _, l := range list {
			lines = append(lines, fmt.Sprintf("%s (%d boards)", l.Name, l.Boards))
		}
		return strings.Join(lines, "\n"), nil
	}
	if len(args) != 3 {
		return "", usage(text)
	}

	name := args[2]
	switch strings.ToLower(args[1]) {
	case "save":
		if err := c.store.SaveLayout(ctx, name, c.sc.Registry); err != nil {
			return "", err
		}
		return fmt.Sprintf("Saved %d boards as %q.", c.sc.Registry.Len(), name), nil
	case "delete":
		if err := c.store.DeleteLayout(ctx, name); err != nil {
			return "", err
		}
		return fmt.Sprintf("Deleted %q.", name), nil
	default:
		return "", usage(text)
	}
}
