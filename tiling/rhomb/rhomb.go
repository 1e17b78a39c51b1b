// Package rhomb is the core's one shipped tiling: the P3 Penrose rhomb
// tiling, with five tile species and four compass directions. The edge
// tables live in edges.go; this file only declares the finite alphabets
// and their rotations.
package rhomb

import "fmt"

// Tile is one of the five rhomb species. A species is pure identity here:
// it carries no geometry, only adjacency (see edges.go and package
// render for the two things that actually care about shape).
type Tile int

const (
	A Tile = iota
	B
	C
	D
	E
)

// allTiles fixes the enumeration order used by Address.Next.
var allTiles = []Tile{A, B, C, D, E}

func (t Tile) String() string {
	switch t {
	case A:
		return "A"
	case B:
		return "B"
	case C:
		return "C"
	case D:
		return "D"
	case E:
		return "E"
	default:
		return fmt.Sprintf("Tile(%d)", int(t))
	}
}

// ParseTile reads one tile-species character, case-insensitively.
func ParseTile(c rune) (Tile, bool) {
	switch c {
	case 'a', 'A':
		return A, true
	case 'b', 'B':
		return B, true
	case 'c', 'C':
		return C, true
	case 'd', 'D':
		return D, true
	case 'e', 'E':
		return E, true
	default:
		return 0, false
	}
}

// Direction is one of the four compass directions a rhomb edge may face.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

var allDirections = []Direction{North, East, South, West}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// TurnLeft rotates the direction ninety degrees counter-clockwise.
func (d Direction) TurnLeft() Direction {
	switch d {
	case North:
		return West
	case East:
		return North
	case South:
		return East
	case West:
		return South
	default:
		return d
	}
}

// TurnRight rotates the direction ninety degrees clockwise.
func (d Direction) TurnRight() Direction {
	switch d {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	case West:
		return North
	default:
		return d
	}
}

// Opposite reverses the direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		return d
	}
}

// ParseDirection reads one of the spellings the source-line grammar
// allows: n/north, e/east, s/south, w/west, each in lower case or with a
// capital first letter (N, North, ...). Other casings are rejected.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "n", "N", "north", "North":
		return North, true
	case "e", "E", "east", "East":
		return East, true
	case "s", "S", "south", "South":
		return South, true
	case "w", "W", "west", "West":
		return West, true
	default:
		return 0, false
	}
}
