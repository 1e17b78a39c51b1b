// Package tiling declares the generic contract a tile-addressing scheme
// must satisfy: a finite species alphabet, a finite direction set, and the
// two neighbour tables an edge-walk needs to cross from one tile to the
// next. It carries no geometry; a concrete tiling (see the rhomb
// subpackage) only has to describe adjacency.
package tiling

// Side labels one half of an edge that is shared between one supertile
// edge and two subtile edges. A crossing that lands on the Left half of a
// supertile edge lands on a different subtile than one landing on the
// Right half.
type Side int

const (
	Left Side = iota
	Right
)

// Invert swaps Left and Right. Used when a halves list recorded while
// ascending the hierarchy is replayed while descending it again.
func (s Side) Invert() Side {
	if s == Left {
		return Right
	}
	return Left
}

func (s Side) String() string {
	if s == Left {
		return "Left"
	}
	return "Right"
}

// Directional is satisfied by a tiling's direction type: a finite set
// equipped with the three rotations the edge-walk composes.
type Directional[D any] interface {
	TurnLeft() D
	TurnRight() D
	Opposite() D
}

// EdgeKind discriminates the two shapes an EdgeDef can take.
type EdgeKind int

const (
	// Inside means the neighbour is a sibling reached without leaving the
	// immediate parent.
	Inside EdgeKind = iota
	// Outside means the neighbour lies beyond the parent; the walk must
	// continue one level up.
	Outside
)

// EdgeDef is the result of one lookup in the internal or external edge
// table. For Inside, Tile/Dir name the neighbour and the direction to
// enter it from. For Outside, Dir names the parent's own outgoing
// direction to continue the walk from, and Halves records which
// sub-portion of that parent edge the crossing used, in reading order.
type EdgeDef[S any, D any] struct {
	Kind   EdgeKind
	Tile   S
	Dir    D
	Halves []Side
}

// Tiling bundles everything an edge-walk needs to know about one
// aperiodic tiling: the finite species S, the finite direction set D, the
// deflation pattern, and the two neighbour tables.
//
// Implementations must satisfy three invariants, enforced by tests rather
// than the runtime (see tiling/rhomb's property tests):
//
//   - Internal symmetry: InternalEdge(t, d) = Inside(t', d') implies
//     InternalEdge(t', d') = Inside(t, d) with empty halves.
//   - External closure: for every Outside(d', halves) produced by
//     InternalEdge(t, d), ExternalEdge(t'', d', halves) for any t'' in the
//     same containment class as t's parent yields Inside(t, d).
//   - CanFit is consistent with the deflation pattern: every adjacent pair
//     in Pattern() satisfies CanFit(Pattern()[i], Pattern()[i+1]).
type Tiling[S comparable, D comparable] interface {
	// Pattern is the fixed cyclic sequence of implicit defaults beyond the
	// stored prefix of an address.
	Pattern() []S

	// InternalEdge describes, for tile as a supertile containing its own
	// children, what lies across its outgoing edge dir.
	InternalEdge(tile S, dir D) EdgeDef[S, D]

	// ExternalEdge is the reverse of an Outside result: given that a walk
	// is re-entering tile from dir at the recorded halves, it returns
	// where that crossing actually lands.
	ExternalEdge(tile S, dir D, halves []Side) EdgeDef[S, D]

	// CanFit reports whether inner may appear as a child of outer.
	CanFit(inner, outer S) bool

	// Species lists every tile species, in a fixed enumeration order used
	// by Address.Next to walk the address space exhaustively.
	Species() []S

	// Directions lists every direction, in a fixed order used by callers
	// that need to enumerate all edges of a tile (e.g. property tests).
	Directions() []D
}
