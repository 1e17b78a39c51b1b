package coord

import "github.com/mousetail/painrose-go/tiling"

// Go computes the neighbouring address across the outgoing direction dir,
// and the direction the walker entered it from. This is the edge-walk
// engine everything else in the module ultimately moves through.
//
// Termination: the loop terminates for every reachable state of a valid
// tiling, because an Outside result is always eventually resolved by a
// chain of ExternalEdge lookups that produces an Inside at level 0; the
// deflation pattern guarantees the walker eventually climbs to a level
// whose external table accepts the accumulated halves.
//
// Involution: Go(dir) followed by Go(dir') on the result, where dir' is
// the returned incoming direction, returns the original (address, dir).
// This is the primary correctness invariant of the whole tiling: edges
// are undirected. This package's tests check it directly;
// tiling/rhomb/rhomb_test.go checks the table invariants it rests on.
//
// A TraversalError surfacing from this method means the tiling's edge
// tables are inconsistent with its CanFit predicate: a programmer error
// in the tables, not something a well-formed program can trigger. It is
// never reachable with tiling/rhomb's shipped tables.
func (a Address[S, D]) Go(dir D) (Address[S, D], D, error) {
	working := a.clone()

	def := a.t.InternalEdge(a.GetAt(0), dir)
	var sides [][]tiling.Side
	index := 0

	for {
		switch def.Kind {
		case tiling.Inside:
			if err := checkFitForSet(a.t, &working, index, def.Tile); err != nil {
				return Address[S, D]{}, dir, err
			}
			working.setAtUnchecked(index, def.Tile)
			if index == 0 {
				return working, def.Dir, nil
			}
			index--
			halves := sides[len(sides)-1]
			sides = sides[:len(sides)-1]
			def = a.t.ExternalEdge(def.Tile, def.Dir, halves)
		case tiling.Outside:
			inverted := make([]tiling.Side, len(def.Halves))
			for i, h := range def.Halves {
				inverted[i] = h.Invert()
			}
			sides = append(sides, inverted)
			index++
			def = a.t.InternalEdge(working.GetAt(index), def.Dir)
		}
	}
}

// checkFitForSet guards the one place the walk writes into an address
// mid-traversal. On the shipped rhomb tables this can never fail; it is
// kept as a defensive check rather than an unconditional write because
// setAtUnchecked has no containment guard of its own, and a future
// tiling's tables could otherwise corrupt an address silently instead of
// surfacing a TraversalError. Only the tile above index is checked: the
// walk always rewrites the level below next, so the old child there is
// not part of the result.
func checkFitForSet[S comparable, D comparable](t tiling.Tiling[S, D], working *Address[S, D], index int, tile S) error {
	if next := working.GetAt(index + 1); !t.CanFit(tile, next) {
		return TraversalError[S]{Inner: tile, Outer: next}
	}
	return nil
}
