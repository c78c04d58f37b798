package board

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/udisondev/multiboard/internal/hexgrid"
)

// ParseBoard reads a ground board in the .board text format:
//
//	size 16 17
//	hex 0101 0 "woods:1;foliage_elev:1" "grass"
//	end
//
// Hex labels are 1-based XXYY. Unknown terrain names and malformed hex lines
// are skipped. A missing size line is an error.
func ParseBoard(r io.Reader, id int, name string) (*Board, error) {
	var b *Board
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' || line == "end" {
			continue
		}

		fields := splitQuoted(line)
		switch fields[0] {
		case "size":
			if len(fields) < 3 {
				return nil, fmt.Errorf("parsing board %s line %d: size needs width and height", name, lineNo)
			}
			w, errW := strconv.Atoi(fields[1])
			h, errH := strconv.Atoi(fields[2])
			if errW != nil || errH != nil || w <= 0 || h <= 0 {
				return nil, fmt.Errorf("parsing board %s line %d: bad size %q", name, lineNo, line)
			}
			b = New(id, name, w, h, Ground)
		case "hex":
			if b == nil {
				return nil, fmt.Errorf("parsing board %s line %d: hex before size", name, lineNo)
			}
			h, err := parseHexLine(fields)
			if err != nil {
				slog.Debug("skipping hex line", "board", name, "line", lineNo, "error", err)
				continue
			}
			if !b.SetHex(h) {
				slog.Debug("skipping hex off board", "board", name, "line", lineNo, "hex", h.Coords.BoardNum())
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading board %s: %w", name, err)
	}
	if b == nil {
		return nil, fmt.Errorf("parsing board %s: no size line", name)
	}
	return b, nil
}

// LoadBoardFile parses the board file at path. The board is named after the
// file without its extension.
func LoadBoardFile(path string, id int) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening board file: %w", err)
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return ParseBoard(f, id, name)
}

func parseHexLine(fields []string) (Hex, error) {
	if len(fields) < 3 {
		return Hex{}, fmt.Errorf("hex line has %d fields", len(fields))
	}
	c, err := hexgrid.ParseBoardNum(fields[1])
	if err != nil {
		return Hex{}, err
	}
	elev, err := strconv.Atoi(fields[2])
	if err != nil {
		return Hex{}, fmt.Errorf("elevation %q: %w", fields[2], err)
	}

	h := Hex{Coords: c, Elevation: elev}
	if len(fields) >= 4 {
		h.Terrain = ParseTerrain(fields[3])
	}
	if len(fields) >= 5 {
		h.Theme = fields[4]
	}
	return h, nil
}

// ParseTerrain reads "type:level[:exits];type:level". A missing level is 1.
func ParseTerrain(s string) []Terrain {
	var out []Terrain
	for _, feat := range strings.Split(s, ";") {
		feat = strings.TrimSpace(feat)
		if feat == "" {
			continue
		}
		parts := strings.Split(feat, ":")
		t, ok := TerrainTypeForName(strings.ToLower(parts[0]))
		if !ok {
			continue
		}
		level := 1
		if len(parts) >= 2 {
			if l, err := strconv.Atoi(parts[1]); err == nil {
				level = l
			}
		}
		out = append(out, Terrain{Type: t, Level: level})
	}
	return out
}

// splitQuoted splits on whitespace, keeping double-quoted runs together and
// dropping the quotes. An empty quoted string yields an empty field.
func splitQuoted(line string) []string {
	var (
		out     []string
		cur     strings.Builder
		inQuote bool
		started bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			started = true
		case !inQuote && (r == ' ' || r == '\t'):
			if started {
				out = append(out, cur.String())
				cur.Reset()
				started = false
			}
		default:
			cur.WriteRune(r)
			started = true
		}
	}
	if started {
		out = append(out, cur.String())
	}
	return out
}
