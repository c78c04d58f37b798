// Command boardtool answers map questions about a multi-board scenario:
// distances, deployment zones, firing arcs and cross-board attacks.
//
//	boardtool ruler 1 1 1 4 1     run one command
//	boardtool < commands.txt      run one command per line
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/udisondev/multiboard/internal/command"
	"github.com/udisondev/multiboard/internal/command/commands"
	"github.com/udisondev/multiboard/internal/config"
	"github.com/udisondev/multiboard/internal/db"
	"github.com/udisondev/multiboard/internal/scenario"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:]); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	cfgPath := config.PathFromEnv()
	cfg, err := config.LoadTool(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Results go to stdout, logs to stderr.
	logLevel, _ := config.ParseLogLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	sc, err := scenario.Load(cfg.ScenarioPath, cfg.BoardsDir)
	if err != nil {
		return err
	}
	slog.Info("scenario loaded",
		"name", sc.Name,
		"boards", sc.Registry.Len(),
		"players", len(sc.Players),
		"units", len(sc.Units))

	var store commands.LayoutStore
	if cfg.Database.Enabled {
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()

		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		slog.Info("database ready")

		layouts := database.Layouts()
		if cfg.Layout != "" {
			reg, err := layouts.LoadLayout(ctx, cfg.Layout)
			if err != nil {
				return fmt.Errorf("loading layout: %w", err)
			}
			sc = sc.WithRegistry(reg)
			slog.Info("layout loaded", "layout", cfg.Layout, "boards", reg.Len())
		}
		store = layouts
	}

	h := command.NewHandler()
	commands.RegisterAll(h, sc, store, cfg.DeployWorkers)

	if len(args) > 0 {
		out, err := h.Dispatch(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}
	return repl(ctx, h)
}

// repl runs one command per stdin line until EOF or ctx is done. Command
// errors are printed and do not stop the loop.
func repl(ctx context.Context, h *command.Handler) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			slog.Info("shutting down")
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("reading commands: %w", err)
					}
				default:
				}
				return nil
			}
			out, err := h.Dispatch(ctx, line)
			switch {
			case errors.Is(err, command.ErrUnknownCommand):
				fmt.Fprintf(os.Stderr, "%v (try help)\n", err)
			case err != nil:
				fmt.Fprintln(os.Stderr, err)
			case out != "":
				fmt.Println(out)
			}
		}
	}
}
