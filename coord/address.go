// Package coord implements the hierarchical tile-address algebra: the
// canonical address type and the edge-walk that crosses from one tile to
// its neighbour. It is generic over any tiling.Tiling bundle; the only
// instantiation this module ships is tiling/rhomb.
package coord

import (
	"fmt"
	"strings"

	"github.com/mousetail/painrose-go/tiling"
)

// Address is the canonical hierarchical address of one tile: a finite
// sequence of tile species read as "at level 0 the tile is stored[0],
// living inside level-1 tile stored[1], ...". Beyond the stored prefix
// the address is implicitly extended by the tiling's deflation pattern.
//
// Address is a value type: every method that would mutate the underlying
// sequence returns a new Address instead, so copies never alias each
// other's backing array.
type Address[S comparable, D comparable] struct {
	t      tiling.Tiling[S, D]
	stored []S
}

// New builds a canonical address from a tile sequence, stripping any
// trailing entries that already equal the deflation-pattern default and
// validating containment along the way.
func New[S comparable, D comparable](t tiling.Tiling[S, D], seq []S) (Address[S, D], error) {
	a := Address[S, D]{t: t, stored: append([]S(nil), seq...)}
	if err := a.normalize(); err != nil {
		return Address[S, D]{}, err
	}
	return a, nil
}

// Origin is the canonical empty address.
func Origin[S comparable, D comparable](t tiling.Tiling[S, D]) Address[S, D] {
	return Address[S, D]{t: t, stored: nil}
}

func (a Address[S, D]) clone() Address[S, D] {
	return Address[S, D]{t: a.t, stored: append([]S(nil), a.stored...)}
}

// Len returns the length of the stored canonical prefix.
func (a Address[S, D]) Len() int {
	return len(a.stored)
}

// GetAt reads the tile species at index, falling back to the deflation
// pattern for any index beyond the stored prefix.
func (a Address[S, D]) GetAt(index int) S {
	if index < len(a.stored) {
		return a.stored[index]
	}
	pattern := a.t.Pattern()
	return pattern[index%len(pattern)]
}

// setAtUnchecked writes tile at index, growing the stored prefix with
// pattern defaults if necessary, then strips any trailing defaults the
// write left behind. It performs no containment validation; callers must
// check CanFit themselves (SetAt does; the edge-walk engine relies on the
// tables already being consistent).
func (a *Address[S, D]) setAtUnchecked(index int, tile S) {
	pattern := a.t.Pattern()
	for index >= len(a.stored) {
		a.stored = append(a.stored, pattern[len(a.stored)%len(pattern)])
	}
	a.stored[index] = tile
	a.trimTrailingDefaults()
}

func (a *Address[S, D]) trimTrailingDefaults() {
	pattern := a.t.Pattern()
	for len(a.stored) > 0 && a.stored[len(a.stored)-1] == pattern[(len(a.stored)-1)%len(pattern)] {
		a.stored = a.stored[:len(a.stored)-1]
	}
}

// normalize strips trailing defaults and validates containment across the
// whole stored prefix, including the boundary with the first implicit
// pattern entry.
func (a *Address[S, D]) normalize() error {
	a.trimTrailingDefaults()
	for i := 0; i < len(a.stored); i++ {
		next := a.GetAt(i + 1)
		if !a.t.CanFit(a.stored[i], next) {
			return TraversalError[S]{Inner: a.stored[i], Outer: next}
		}
	}
	return nil
}

// SetAt returns a new address with the tile at index replaced, checking
// containment against both neighbours first. The result is re-canonicalised.
func (a Address[S, D]) SetAt(index int, tile S) (Address[S, D], error) {
	if index > 0 {
		if prev := a.GetAt(index - 1); !a.t.CanFit(prev, tile) {
			return Address[S, D]{}, TraversalError[S]{Inner: prev, Outer: tile}
		}
	}
	if next := a.GetAt(index + 1); !a.t.CanFit(tile, next) {
		return Address[S, D]{}, TraversalError[S]{Inner: tile, Outer: next}
	}
	out := a.clone()
	out.setAtUnchecked(index, tile)
	return out, nil
}

// Next enumerates the canonical successor of this address: the stored
// sequence is read as a place-value counter over the species alphabet,
// incremented with carry into ever-higher levels, skipping any state that
// violates containment. It is total over an infinite enumeration.
func (a Address[S, D]) Next() Address[S, D] {
	options := a.t.Species()
	working := append([]S(nil), a.stored...)
	pattern := a.t.Pattern()

	for {
		index := 0
		for {
			for len(working) <= index {
				working = append(working, pattern[len(working)%len(pattern)])
			}
			pos := indexOf(options, working[index])
			if pos < len(options)-1 {
				working[index] = options[pos+1]
				break
			}
			working[index] = options[0]
			index++
		}

		if next, err := New(a.t, working); err == nil {
			return next
		}
	}
}

func indexOf[S comparable](options []S, want S) int {
	for i, o := range options {
		if o == want {
			return i
		}
	}
	return -1
}

// Equal reports whether two addresses denote the same tile: equality is
// defined on the canonical stored sequence only.
func (a Address[S, D]) Equal(b Address[S, D]) bool {
	if len(a.stored) != len(b.stored) {
		return false
	}
	for i := range a.stored {
		if a.stored[i] != b.stored[i] {
			return false
		}
	}
	return true
}

// Key returns a string uniquely determined by the canonical stored
// sequence, suitable as a map key. Address itself holds a slice field and
// so is not comparable in the way Go map keys require; Key is the
// supported way to use addresses as cell-map keys (see lang.ProgramState).
func (a Address[S, D]) Key() string {
	var sb strings.Builder
	for _, s := range a.stored {
		fmt.Fprintf(&sb, "%v.", s)
	}
	return sb.String()
}

func (a Address[S, D]) String() string {
	if len(a.stored) == 0 {
		return "<origin>"
	}
	parts := make([]string, len(a.stored))
	for i, s := range a.stored {
		parts[i] = fmt.Sprintf("%v", s)
	}
	return strings.Join(parts, ".")
}
