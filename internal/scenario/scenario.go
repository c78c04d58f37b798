// Package scenario reads game setups from YAML: the boards and how they are
// embedded in each other, the players with their deployment zones and the
// units on the map.
//
//	boards:
//	  - {id: 1, name: A, width: 30, height: 20, map_type: G}
//	  - {id: 2, name: desert, map_type: G, file: desert.board}
//	  - {id: 3, name: sky, width: 20, height: 20, map_type: A}
//	embeddings:
//	  - {lower: 1, higher: 3, at: "0606"}
//	players:
//	  - id: 100
//	    name: Alice
//	    zone: {type: border, edge: n, width: 3, board: 1}
//	units:
//	  - {id: 7, owner: 100, board: 1, at: "0505", deployed: true}
package scenario

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/multiboard/internal/board"
	"github.com/udisondev/multiboard/internal/crossboard"
	"github.com/udisondev/multiboard/internal/deployment"
	"github.com/udisondev/multiboard/internal/hexgrid"
)

type fileBoard struct {
	ID      int    `yaml:"id"`
	Name    string `yaml:"name"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	MapType string `yaml:"map_type"`
	Flag    string `yaml:"flag"`
	File    string `yaml:"file"`
}

type fileEmbedding struct {
	Lower  int    `yaml:"lower"`
	Higher int    `yaml:"higher"`
	At     string `yaml:"at"`
}

type filePlayer struct {
	ID               int       `yaml:"id"`
	Name             string    `yaml:"name"`
	StartingPosition *int      `yaml:"starting_position"`
	DeployWidth      *int      `yaml:"deploy_width"`
	DeployOffset     int       `yaml:"deploy_offset"`
	DeployBoard      *int      `yaml:"deploy_board"`
	Zone             *ZoneSpec `yaml:"zone"`
}

type fileUnit struct {
	ID             int    `yaml:"id"`
	Name           string `yaml:"name"`
	Owner          int    `yaml:"owner"`
	Board          int    `yaml:"board"`
	At             string `yaml:"at"`
	Facing         string `yaml:"facing"`
	Deployed       bool   `yaml:"deployed"`
	Infantry       bool   `yaml:"infantry"`
	ProtoMek       bool   `yaml:"protomek"`
	Aerospace      bool   `yaml:"aerospace"`
	Fighter        bool   `yaml:"fighter"`
	CapitalScale   bool   `yaml:"capital_scale"`
	LargeAerospace bool   `yaml:"large_aerospace"`
}

type file struct {
	Name       string          `yaml:"name"`
	Boards     []fileBoard     `yaml:"boards"`
	Embeddings []fileEmbedding `yaml:"embeddings"`
	Players    []filePlayer    `yaml:"players"`
	Units      []fileUnit      `yaml:"units"`
}

// Player is a side of the game.
type Player struct {
	ID   int
	Name string
	Zone deployment.Zone
}

// Unit is a unit on the map with the traits the attack rules look at.
type Unit struct {
	deployment.Unit
	Name           string
	Facing         int
	Infantry       bool
	ProtoMek       bool
	Aerospace      bool
	Fighter        bool
	CapitalScale   bool
	LargeAerospace bool
}

// Attacker returns the unit as the attacking side.
func (u Unit) Attacker() crossboard.Attacker {
	return crossboard.Attacker{
		Location:     u.Location,
		Infantry:     u.Infantry,
		ProtoMek:     u.ProtoMek,
		Aerospace:    u.Aerospace,
		Fighter:      u.Fighter,
		CapitalScale: u.CapitalScale,
	}
}

// Target returns the unit as an entity target.
func (u Unit) Target() crossboard.Target {
	return crossboard.Target{
		Location:       u.Location,
		Kind:           crossboard.KindEntity,
		Aerospace:      u.Aerospace,
		Fighter:        u.Fighter,
		LargeAerospace: u.LargeAerospace,
	}
}

// Scenario is a fully resolved game setup.
type Scenario struct {
	Name     string
	Registry *board.Registry
	Game     *deployment.Snapshot
	Players  []Player
	Units    []Unit
}

// Player returns the player with the given id.
func (s *Scenario) Player(id int) (Player, bool) {
	i := slices.IndexFunc(s.Players, func(p Player) bool { return p.ID == id })
	if i < 0 {
		return Player{}, false
	}
	return s.Players[i], true
}

// Unit returns the unit with the given id.
func (s *Scenario) Unit(id int) (Unit, bool) {
	i := slices.IndexFunc(s.Units, func(u Unit) bool { return u.ID == id })
	if i < 0 {
		return Unit{}, false
	}
	return s.Units[i], true
}

// WithRegistry returns a copy of the scenario playing on another set of
// boards, such as a layout loaded from the database.
func (s *Scenario) WithRegistry(reg *board.Registry) *Scenario {
	out := *s
	out.Registry = reg
	out.Game = snapshot(reg, s.Players, s.Units)
	return &out
}

// Load reads a scenario file. Board files resolve against boardsDir, or the
// scenario's directory when boardsDir is empty.
func Load(path, boardsDir string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	if boardsDir == "" {
		boardsDir = filepath.Dir(path)
	}
	sc, err := Parse(data, boardsDir)
	if err != nil {
		return nil, fmt.Errorf("loading scenario %s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes a scenario document.
func Parse(data []byte, boardsDir string) (*Scenario, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}

	reg, err := buildRegistry(f, boardsDir)
	if err != nil {
		return nil, err
	}

	players := make([]Player, 0, len(f.Players))
	for _, fp := range f.Players {
		p, err := buildPlayer(fp)
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", fp.ID, err)
		}
		players = append(players, p)
	}

	units := make([]Unit, 0, len(f.Units))
	for _, fu := range f.Units {
		u, err := buildUnit(reg, fu)
		if err != nil {
			return nil, fmt.Errorf("unit %d: %w", fu.ID, err)
		}
		units = append(units, u)
	}

	game := snapshot(reg, players, units)
	if err := game.CheckOwnerCycles(); err != nil {
		return nil, err
	}

	slog.Debug("scenario parsed", "name", f.Name, "boards", reg.Len(), "players", len(players), "units", len(units))
	return &Scenario{
		Name:     f.Name,
		Registry: reg,
		Game:     game,
		Players:  players,
		Units:    units,
	}, nil
}

func snapshot(reg *board.Registry, players []Player, units []Unit) *deployment.Snapshot {
	zones := make(map[int]deployment.Zone, len(players))
	for _, p := range players {
		if p.Zone != nil {
			zones[p.ID] = p.Zone
		}
	}
	du := make([]deployment.Unit, len(units))
	for i, u := range units {
		du[i] = u.Unit
	}
	return deployment.NewSnapshot(reg, du, zones)
}

func buildRegistry(f file, boardsDir string) (*board.Registry, error) {
	boards := make([]*board.Board, 0, len(f.Boards))
	for _, fb := range f.Boards {
		b, err := buildBoard(fb, boardsDir)
		if err != nil {
			return nil, fmt.Errorf("board %d: %w", fb.ID, err)
		}
		boards = append(boards, b)
	}

	reg, err := board.NewRegistry(boards...)
	if err != nil {
		return nil, err
	}
	for _, e := range f.Embeddings {
		at, err := hexgrid.ParseBoardNum(e.At)
		if err != nil {
			return nil, fmt.Errorf("embedding %d in %d: %w", e.Lower, e.Higher, err)
		}
		if err := reg.Connect(e.Lower, e.Higher, at); err != nil {
			return nil, fmt.Errorf("embedding %d in %d: %w", e.Lower, e.Higher, err)
		}
	}
	return reg, nil
}

func buildBoard(fb fileBoard, boardsDir string) (*board.Board, error) {
	mapType := board.Ground
	if fb.MapType != "" {
		mt, err := board.MapTypeForCode(fb.MapType)
		if err != nil {
			return nil, err
		}
		mapType = mt
	}
	flag, err := board.MapTypeFlagForName(fb.Flag)
	if err != nil {
		return nil, err
	}

	var b *board.Board
	if fb.File != "" {
		path := fb.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(boardsDir, path)
		}
		b, err = board.LoadBoardFile(path, fb.ID)
		if err != nil {
			return nil, err
		}
		b.MapType = mapType
		if fb.Name != "" {
			b.Name = fb.Name
		}
	} else {
		if fb.Width <= 0 || fb.Height <= 0 {
			return nil, fmt.Errorf("board %q needs a file or a positive size", fb.Name)
		}
		b = board.New(fb.ID, fb.Name, fb.Width, fb.Height, mapType)
	}
	b.Flag = flag
	return b, nil
}

func buildPlayer(fp filePlayer) (Player, error) {
	p := Player{ID: fp.ID, Name: fp.Name}
	switch {
	case fp.Zone != nil:
		z, err := fp.Zone.Build()
		if err != nil {
			return Player{}, err
		}
		p.Zone = z
	case fp.StartingPosition != nil:
		width := deployment.DefaultBorderWidth
		if fp.DeployWidth != nil {
			width = *fp.DeployWidth
		}
		boardID := deployment.AnyBoard
		if fp.DeployBoard != nil {
			boardID = *fp.DeployBoard
		}
		p.Zone = deployment.StartingPositionZone(*fp.StartingPosition, width, fp.DeployOffset, boardID)
	}
	return p, nil
}

func buildUnit(reg *board.Registry, fu fileUnit) (Unit, error) {
	u := Unit{
		Unit: deployment.Unit{
			ID:       fu.ID,
			OwnerID:  fu.Owner,
			Deployed: fu.Deployed,
		},
		Name:           fu.Name,
		Infantry:       fu.Infantry,
		ProtoMek:       fu.ProtoMek,
		Aerospace:      fu.Aerospace,
		Fighter:        fu.Fighter,
		CapitalScale:   fu.CapitalScale,
		LargeAerospace: fu.LargeAerospace,
	}
	if fu.Facing != "" {
		f, ok := hexgrid.FacingForName(fu.Facing)
		if !ok {
			return Unit{}, fmt.Errorf("unknown facing %q", fu.Facing)
		}
		u.Facing = f
	}
	if fu.At == "" {
		if fu.Deployed {
			return Unit{}, fmt.Errorf("deployed unit needs a position")
		}
		u.Location = board.Location{BoardID: board.NoBoard}
		return u, nil
	}
	c, err := hexgrid.ParseBoardNum(fu.At)
	if err != nil {
		return Unit{}, err
	}
	if !reg.HasBoard(fu.Board) {
		return Unit{}, fmt.Errorf("position on %w %d", board.ErrUnknownBoard, fu.Board)
	}
	u.Location = board.Location{Coords: c, BoardID: fu.Board}
	return u, nil
}
