package deployment

import (
	"fmt"
	"strings"

	"github.com/udisondev/multiboard/internal/board"
)

// Describe renders a zone tree for players and logs.
func Describe(z Zone) string {
	var sb strings.Builder
	describe(&sb, z)
	return sb.String()
}

func describe(sb *strings.Builder, z Zone) {
	switch z := z.(type) {
	case nil:
		sb.WriteString("nowhere")
	case *AnywhereZone:
		if len(z.BoardIDs) == 0 {
			sb.WriteString("anywhere")
			return
		}
		fmt.Fprintf(sb, "anywhere on boards %v", z.BoardIDs)
	case *BorderZone:
		fmt.Fprintf(sb, "%s border (width %d, offset %d) on %s", z.Kind, z.Width, z.Offset, boardLabel(z.BoardID))
	case *ListZone:
		fmt.Fprintf(sb, "%d listed hexes", len(z.ordered))
	case *TerrainZone:
		level := "any level"
		if z.Terrain.Level != board.WildcardLevel {
			level = fmt.Sprintf("level %d", z.Terrain.Level)
		}
		fmt.Fprintf(sb, "%d-%d hexes from %s (%s) on %s", z.Min, z.Max, z.Terrain.Type, level, boardLabel(z.BoardID))
	case *UnitRelativeZone:
		fmt.Fprintf(sb, "%d-%d hexes from unit %d", z.Min, z.Max, z.UnitID)
	case *OwnerZone:
		fmt.Fprintf(sb, "zone of the owner of unit %d", z.UnitID)
	case *UnionZone:
		binary(sb, "or", z.A, z.B)
	case *IntersectionZone:
		binary(sb, "and", z.A, z.B)
	case *DifferenceZone:
		binary(sb, "but not", z.A, z.B)
	case *InvertZone:
		sb.WriteString("not (")
		describe(sb, z.Zone)
		sb.WriteString(")")
	default:
		sb.WriteString(z.Type())
	}
}

func binary(sb *strings.Builder, op string, a, b Zone) {
	sb.WriteString("(")
	describe(sb, a)
	fmt.Fprintf(sb, ") %s (", op)
	describe(sb, b)
	sb.WriteString(")")
}

func boardLabel(id int) string {
	if id == AnyBoard {
		return "any board"
	}
	return fmt.Sprintf("board %d", id)
}
