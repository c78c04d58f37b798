package commands

import (
	"context"
	"strings"

	"github.com/udisondev/multiboard/internal/command"
)

// Help lists the registered command names.
type Help struct {
	h *command.Handler
}

func (c *Help) Names() []string {
	return []string{"help"}
}

func (c *Help) Handle(_ context.Context, _ []string) (string, error) {
	return "Commands: " + strings.Join(c.h.Names(), ", "), nil
}
