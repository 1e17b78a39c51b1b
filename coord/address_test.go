package coord_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mousetail/painrose-go/coord"
	"github.com/mousetail/painrose-go/tiling/rhomb"
)

var rt = rhomb.Tiling{}

func addr(t *testing.T, seq ...rhomb.Tile) coord.Address[rhomb.Tile, rhomb.Direction] {
	t.Helper()
	a, err := coord.New(rt, seq)
	require.NoError(t, err)
	return a
}

// TestEdgeWalkInvolution crosses every edge of a sample of addresses and
// crosses straight back: the walk must return to the original address and
// direction, because edges are undirected.
func TestEdgeWalkInvolution(t *testing.T) {
	// Bare single D or E is not itself a valid address: the implicit tile
	// at index 1 is the deflation pattern's E, and neither D nor E can sit
	// inside E under CanFit. Every sample here is checked valid by New.
	samples := []coord.Address[rhomb.Tile, rhomb.Direction]{
		coord.Origin[rhomb.Tile, rhomb.Direction](rt),
		addr(t, rhomb.A),
		addr(t, rhomb.B),
		addr(t, rhomb.C),
		addr(t, rhomb.D, rhomb.D),
		addr(t, rhomb.E, rhomb.D),
	}

	for _, a := range samples {
		for _, dir := range rt.Directions() {
			next, incoming, err := a.Go(dir)
			require.NoError(t, err, "address=%v dir=%v", a, dir)

			back, backDir, err := next.Go(incoming)
			require.NoError(t, err, "address=%v dir=%v", a, dir)

			assert.True(t, back.Equal(a), "address=%v dir=%v: got back=%v want=%v", a, dir, back, a)
			assert.Equal(t, dir, backDir, "address=%v dir=%v", a, dir)
		}
	}
}

// A trailing stored value equal to the deflation default is dropped, and
// two addresses with the same denotation compare equal.
func TestCanonicalisationStripsDefaults(t *testing.T) {
	pattern := rt.Pattern() // [C, E, D, B, A, A]; pattern[1] == E, and A fits inside E.
	withDefault, err := coord.New(rt, []rhomb.Tile{rhomb.A, pattern[1]})
	require.NoError(t, err)
	short, err := coord.New(rt, []rhomb.Tile{rhomb.A})
	require.NoError(t, err)

	assert.True(t, withDefault.Equal(short))
	assert.Equal(t, short.Len(), withDefault.Len())
	assert.Equal(t, short.Key(), withDefault.Key())
}

func TestOriginIsEmpty(t *testing.T) {
	o := coord.Origin[rhomb.Tile, rhomb.Direction](rt)
	assert.Equal(t, 0, o.Len())
}

func TestSetAtRejectsBadContainment(t *testing.T) {
	a := addr(t, rhomb.B, rhomb.E)

	_, err := a.SetAt(0, rhomb.D) // D cannot sit inside E
	require.Error(t, err)
	var traversalErr coord.TraversalError[rhomb.Tile]
	require.ErrorAs(t, err, &traversalErr)

	updated, err := a.SetAt(0, rhomb.C) // C fits inside E
	require.NoError(t, err)
	assert.Equal(t, rhomb.C, updated.GetAt(0))
}

func TestNextEnumeratesDistinctCanonicalAddresses(t *testing.T) {
	seen := map[string]bool{}
	cur := coord.Origin[rhomb.Tile, rhomb.Direction](rt)
	for i := 0; i < 64; i++ {
		key := cur.Key()
		require.False(t, seen[key], "Next produced a repeat at step %d: %v", i, cur)
		seen[key] = true
		cur = cur.Next()
	}
}
