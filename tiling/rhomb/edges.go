package rhomb

import (
	"fmt"

	"github.com/mousetail/painrose-go/tiling"
)

// edge is a shorthand constructor for an Inside tiling.EdgeDef.
func edge(tile Tile, dir Direction) tiling.EdgeDef[Tile, Direction] {
	return tiling.EdgeDef[Tile, Direction]{Kind: tiling.Inside, Tile: tile, Dir: dir}
}

// outside is a shorthand constructor for an Outside tiling.EdgeDef.
func outside(dir Direction, halves ...tiling.Side) tiling.EdgeDef[Tile, Direction] {
	return tiling.EdgeDef[Tile, Direction]{Kind: tiling.Outside, Dir: dir, Halves: halves}
}

const (
	L = tiling.Left
	R = tiling.Right
)

// Tiling is the P3 rhomb instantiation of tiling.Tiling. It has no
// fields; every method is a pure function of its arguments.
type Tiling struct{}

// Pattern is the fixed parent chain a stored address is extended by
// beyond its canonical prefix. Six entries, not five: several internal/
// external table entries below only resolve to a fixed point against this
// exact cycle, which is longer than the tile alphabet itself.
func (Tiling) Pattern() []Tile {
	return []Tile{C, E, D, B, A, A}
}

func (Tiling) Species() []Tile {
	return allTiles
}

func (Tiling) Directions() []Direction {
	return allDirections
}

// InternalEdge describes, for tile as a supertile containing its own
// children (A, B and C for a thick species, D and E for a thin one, per
// CanFit), what lies across its outgoing edge dir.
func (Tiling) InternalEdge(tile Tile, dir Direction) tiling.EdgeDef[Tile, Direction] {
	switch tile {
	case A:
		switch dir {
		case North:
			return edge(B, North)
		case East:
			return outside(North, L, R)
		case South:
			return outside(North, R)
		case West:
			return outside(East, L)
		}
	case B:
		switch dir {
		case North:
			return edge(A, North)
		case East:
			return outside(East, R, L)
		case South:
			return outside(East, R, R)
		case West:
			return outside(South, L)
		}
	case C:
		switch dir {
		case North:
			return outside(South, R)
		case East:
			return outside(West, L)
		case South:
			return outside(West, R)
		case West:
			return outside(North, L, L)
		}
	case D:
		switch dir {
		case North:
			return edge(E, North)
		case East:
			return outside(North, R, L)
		case South:
			return outside(North, R, R)
		case West:
			return outside(East, L, L)
		}
	case E:
		switch dir {
		case North:
			return edge(D, North)
		case East:
			return outside(West, L)
		case South:
			return outside(West, R)
		case West:
			return outside(North, L)
		}
	}
	panic(fmt.Sprintf("rhomb: no internal edge for tile=%v dir=%v", tile, dir))
}

// ExternalEdge is the reverse of an Outside result produced by
// InternalEdge: given that a walk is re-entering tile from dir at the
// recorded halves, it returns where the crossing actually lands.
//
// The thick species A, C, E share one table (CanFit puts A, B, C inside
// any of them); the thin species B, D share the other (D, E fit inside
// either). tile only selects which of the two tables to use, it never
// appears in the case arms themselves.
func (Tiling) ExternalEdge(tile Tile, dir Direction, halves []tiling.Side) tiling.EdgeDef[Tile, Direction] {
	switch tile {
	case A, C, E:
		switch {
		case dir == North && sidesEqual(halves, L, L):
			return edge(C, West)
		case dir == North && sidesEqual(halves, L, R):
			return edge(A, East)
		case dir == North && sidesEqual(halves, R):
			return edge(A, South)
		case dir == East && sidesEqual(halves, L):
			return edge(A, West)
		case dir == East && sidesEqual(halves, R, L):
			return edge(B, East)
		case dir == East && sidesEqual(halves, R, R):
			return edge(B, South)
		case dir == South && sidesEqual(halves, L):
			return edge(B, West)
		case dir == South && sidesEqual(halves, R):
			return edge(C, North)
		case dir == West && sidesEqual(halves, L):
			return edge(C, East)
		case dir == West && sidesEqual(halves, R):
			return edge(C, South)
		}
	case B, D:
		switch {
		case dir == North && sidesEqual(halves, L):
			return edge(E, West)
		case dir == North && sidesEqual(halves, R, L):
			return edge(D, East)
		case dir == North && sidesEqual(halves, R, R):
			return edge(D, South)
		case dir == East && sidesEqual(halves, L, L):
			return edge(D, West)
		case dir == East && sidesEqual(halves, L, R):
			return outside(South, R)
		case dir == East && sidesEqual(halves, R):
			return outside(South, L)
		case dir == South && sidesEqual(halves, L):
			return outside(East, R)
		case dir == South && sidesEqual(halves, R):
			return outside(East, L, R)
		case dir == West && sidesEqual(halves, L):
			return edge(E, East)
		case dir == West && sidesEqual(halves, R):
			return edge(E, South)
		}
	}
	panic(fmt.Sprintf("rhomb: no external edge for tile=%v dir=%v halves=%v", tile, dir, halves))
}

// CanFit implements the containment rule: {A,B,C} may nest inside
// {A,C,E}; {D,E} may nest inside {B,D}.
func (Tiling) CanFit(inner, outer Tile) bool {
	switch inner {
	case A, B, C:
		return outer == A || outer == C || outer == E
	case D, E:
		return outer == B || outer == D
	default:
		return false
	}
}

func sidesEqual(got []tiling.Side, want ...tiling.Side) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
