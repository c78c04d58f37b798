package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/multiboard/internal/board"
	"github.com/udisondev/multiboard/internal/hexgrid"
)

// ErrLayoutNotFound is returned when no layout has the requested name.
var ErrLayoutNotFound = errors.New("layout not found")

// LayoutSummary describes a stored layout.
type LayoutSummary struct {
	Name   string
	Boards int
}

// BoardRepository stores board layouts: a set of boards, how they are
// embedded in each other and every hex that is not clear.
type BoardRepository struct {
	db *pgxpool.Pool
}

// NewBoardRepository creates a new BoardRepository.
func NewBoardRepository(db *pgxpool.Pool) *BoardRepository {
	return &BoardRepository{db: db}
}

// SaveLayout stores reg under name, replacing any layout with that name.
func (r *BoardRepository) SaveLayout(ctx context.Context, name string, reg *board.Registry) error {
	if name == "" {
		return errors.New("layout name is empty")
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Error("rollback failed", "layout", name, "error", err)
		}
	}()

	// Embeddings and hexes go with the boards.
	if _, err := tx.Exec(ctx, `DELETE FROM boards WHERE layout = $1`, name); err != nil {
		return fmt.Errorf("deleting old layout %q: %w", name, err)
	}

	boards := reg.Boards()
	var (
		boardRows [][]any
		embedRows [][]any
		hexRows   [][]any
	)
	for _, b := range boards {
		boardRows = append(boardRows, []any{name, b.ID, b.Name, b.Width, b.Height, b.MapType.Code(), b.Flag.Name()})
		for _, lower := range b.EmbeddedBoards() {
			at, _ := b.EmbeddedPosition(lower)
			embedRows = append(embedRows, []any{name, lower, b.ID, at.X, at.Y})
		}
		b.Hexes(func(h *board.Hex) bool {
			if !h.IsClear() {
				hexRows = append(hexRows, []any{name, b.ID, h.Coords.X, h.Coords.Y, h.Elevation, board.FormatTerrain(h.Terrain), h.Theme})
			}
			return true
		})
	}

	if err := copyRows(ctx, tx, "boards",
		[]string{"layout", "board_id", "name", "width", "height", "map_type", "flag"}, boardRows); err != nil {
		return err
	}
	if err := copyRows(ctx, tx, "board_embeddings",
		[]string{"layout", "lower_id", "higher_id", "x", "y"}, embedRows); err != nil {
		return err
	}
	if err := copyRows(ctx, tx, "board_hexes",
		[]string{"layout", "board_id", "x", "y", "elevation", "terrain", "theme"}, hexRows); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	slog.Info("layout saved", "layout", name, "boards", len(boardRows), "embeddings", len(embedRows), "hexes", len(hexRows))
	return nil
}

func copyRows(ctx context.Context, tx pgx.Tx, table string, columns []string, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}
	if _, err := tx.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows)); err != nil {
		return fmt.Errorf("inserting %s: %w", table, err)
	}
	return nil
}

// LoadLayout rebuilds the registry stored under name.
func (r *BoardRepository) LoadLayout(ctx context.Context, name string) (*board.Registry, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly, IsoLevel: pgx.RepeatableRead})
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Error("rollback failed", "layout", name, "error", err)
		}
	}()

	boards, err := loadBoards(ctx, tx, name)
	if err != nil {
		return nil, err
	}
	if len(boards) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrLayoutNotFound, name)
	}

	if err := loadHexes(ctx, tx, name, boards); err != nil {
		return nil, err
	}

	list := make([]*board.Board, 0, len(boards))
	for _, b := range boards {
		list = append(list, b)
	}
	reg, err := board.NewRegistry(list...)
	if err != nil {
		return nil, fmt.Errorf("layout %q: %w", name, err)
	}

	if err := loadEmbeddings(ctx, tx, name, reg); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return reg, nil
}

func loadBoards(ctx context.Context, tx pgx.Tx, name string) (map[int]*board.Board, error) {
	rows, err := tx.Query(ctx,
		`SELECT board_id, name, width, height, map_type, flag
		 FROM boards WHERE layout = $1 ORDER BY board_id`, name)
	if err != nil {
		return nil, fmt.Errorf("querying boards of layout %q: %w", name, err)
	}
	defer rows.Close()

	boards := make(map[int]*board.Board)
	for rows.Next() {
		var (
			id, width, height         int
			boardName, code, flagName string
		)
		if err := rows.Scan(&id, &boardName, &width, &height, &code, &flagName); err != nil {
			return nil, fmt.Errorf("scanning board row: %w", err)
		}
		mt, err := board.MapTypeForCode(code)
		if err != nil {
			return nil, fmt.Errorf("board %d: %w", id, err)
		}
		flag, err := board.MapTypeFlagForName(flagName)
		if err != nil {
			return nil, fmt.Errorf("board %d: %w", id, err)
		}
		b := board.New(id, boardName, width, height, mt)
		b.Flag = flag
		boards[id] = b
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating board rows: %w", err)
	}
	return boards, nil
}

func loadHexes(ctx context.Context, tx pgx.Tx, name string, boards map[int]*board.Board) error {
	rows, err := tx.Query(ctx,
		`SELECT board_id, x, y, elevation, terrain, theme
		 FROM board_hexes WHERE layout = $1`, name)
	if err != nil {
		return fmt.Errorf("querying hexes of layout %q: %w", name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, x, y, elev int
			terrain, theme string
		)
		if err := rows.Scan(&id, &x, &y, &elev, &terrain, &theme); err != nil {
			return fmt.Errorf("scanning hex row: %w", err)
		}
		b, ok := boards[id]
		if !ok {
			continue
		}
		h := board.Hex{Coords: hexgrid.New(x, y), Elevation: elev, Terrain: board.ParseTerrain(terrain), Theme: theme}
		if !b.SetHex(h) {
			slog.Warn("stored hex outside its board", "layout", name, "board", id, "hex", h.Coords)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating hex rows: %w", err)
	}
	return nil
}

func loadEmbeddings(ctx context.Context, tx pgx.Tx, name string, reg *board.Registry) error {
	rows, err := tx.Query(ctx,
		`SELECT lower_id, higher_id, x, y
		 FROM board_embeddings WHERE layout = $1 ORDER BY lower_id`, name)
	if err != nil {
		return fmt.Errorf("querying embeddings of layout %q: %w", name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var lower, higher, x, y int
		if err := rows.Scan(&lower, &higher, &x, &y); err != nil {
			return fmt.Errorf("scanning embedding row: %w", err)
		}
		if err := reg.Connect(lower, higher, hexgrid.New(x, y)); err != nil {
			return fmt.Errorf("layout %q: %w", name, err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating embedding rows: %w", err)
	}
	return nil
}

// ListLayouts returns every stored layout ordered by name.
func (r *BoardRepository) ListLayouts(ctx context.Context) ([]LayoutSummary, error) {
	rows, err := r.db.Query(ctx,
		`SELECT layout, count(*) FROM boards GROUP BY layout ORDER BY layout`)
	if err != nil {
		return nil, fmt.Errorf("querying layouts: %w", err)
	}
	defer rows.Close()

	out := make([]LayoutSummary, 0, 8)
	for rows.Next() {
		var s LayoutSummary
		if err := rows.Scan(&s.Name, &s.Boards); err != nil {
			return nil, fmt.Errorf("scanning layout row: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating layout rows: %w", err)
	}
	return out, nil
}

// DeleteLayout removes the layout stored under name.
func (r *BoardRepository) DeleteLayout(ctx context.Context, name string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM boards WHERE layout = $1`, name)
	if err != nil {
		return fmt.Errorf("deleting layout %q: %w", name, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %q", ErrLayoutNotFound, name)
	}
	return nil
}
