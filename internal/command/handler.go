// Package command dispatches the text commands of the board tool.
package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"
)

var (
	// ErrUsage wraps errors caused by malformed arguments.
	ErrUsage = errors.New("usage")
	// ErrUnknownCommand is returned by Dispatch for an unregistered name.
	ErrUnknownCommand = errors.New("unknown command")
)

// Command is a named query. Each command registers one or more names.
type Command interface {
	// Names returns all names the command answers to.
	Names() []string
	// Handle runs the command. args includes the command name at [0].
	Handle(ctx context.Context, args []string) (string, error)
}

// Handler dispatches command lines by their first word.
// Commands are registered once at startup, then read-only.
type Handler struct {
	mu   sync.RWMutex
	cmds map[string]Command // lowercase name → Command
}

// NewHandler creates an empty handler.
func NewHandler() *Handler {
	return &Handler{cmds: make(map[string]Command, 16)}
}

// Register adds cmd under all of its names, lowercased.
func (h *Handler) Register(cmd Command) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, name := range cmd.Names() {
		h.cmds[strings.ToLower(name)] = cmd
	}
}

// Names returns the registered command names, sorted.
func (h *Handler) Names() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return slices.Sorted(maps.Keys(h.cmds))
}

// Count returns the number of registered names.
func (h *Handler) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.cmds)
}

// Dispatch runs the command named by the first word of line. A blank line
// does nothing.
func (h *Handler) Dispatch(ctx context.Context, line string) (string, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", nil
	}
	name := strings.ToLower(parts[0])

	h.mu.RLock()
	cmd, ok := h.cmds[name]
	h.mu.RUnlock()

	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	slog.Debug("command", "line", line)

	out, err := cmd.Handle(ctx, parts)
	if err != nil {
		slog.Warn("command failed", "command", name, "error", err)
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}
