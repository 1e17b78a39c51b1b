package coord

import "fmt"

// TraversalError reports that a proposed inner/outer tile pair is
// disallowed by the tiling's containment rule. Raised only when an
// address is constructed or mutated into a non-canonical nesting; on a
// well-formed tiling the edge-walk engine never produces one (see
// Address.Go's doc comment).
type TraversalError[S any] struct {
	Inner S
	Outer S
}

func (e TraversalError[S]) Error() string {
	return fmt.Sprintf("coord: tile %v cannot fit inside tile %v", e.Inner, e.Outer)
}
