package rhomb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mousetail/painrose-go/tiling"
	"github.com/mousetail/painrose-go/tiling/rhomb"
)

// TestInternalEdgeSymmetry checks that every Inside result of
// InternalEdge is its own inverse, with empty halves on both sides.
func TestInternalEdgeSymmetry(t *testing.T) {
	rt := rhomb.Tiling{}
	for _, tile := range rt.Species() {
		for _, dir := range rt.Directions() {
			def := rt.InternalEdge(tile, dir)
			if def.Kind != tiling.Inside {
				continue
			}
			require.Empty(t, def.Halves, "tile=%v dir=%v", tile, dir)

			back := rt.InternalEdge(def.Tile, def.Dir)
			assert.Equal(t, tiling.Inside, back.Kind, "tile=%v dir=%v", tile, dir)
			assert.Equal(t, tile, back.Tile, "tile=%v dir=%v", tile, dir)
			assert.Equal(t, dir, back.Dir, "tile=%v dir=%v", tile, dir)
			assert.Empty(t, back.Halves, "tile=%v dir=%v", tile, dir)
		}
	}
}

// TestExternalEdgeClosure checks that every Outside result of
// InternalEdge(tile, dir), fed through ExternalEdge for any tile in the
// same containment class as tile's parent, resolves back to Inside(tile,
// dir) with empty halves.
func TestExternalEdgeClosure(t *testing.T) {
	rt := rhomb.Tiling{}
	classOf := func(t rhomb.Tile) rhomb.Tile {
		switch t {
		case rhomb.A, rhomb.B, rhomb.C:
			return rhomb.A
		default:
			return rhomb.B
		}
	}

	for _, tile := range rt.Species() {
		for _, dir := range rt.Directions() {
			def := rt.InternalEdge(tile, dir)
			if def.Kind != tiling.Outside {
				continue
			}
			parent := classOf(tile)
			back := rt.ExternalEdge(parent, def.Dir, def.Halves)
			assert.Equal(t, tiling.Inside, back.Kind, "tile=%v dir=%v", tile, dir)
			assert.Equal(t, tile, back.Tile, "tile=%v dir=%v", tile, dir)
			assert.Equal(t, dir, back.Dir, "tile=%v dir=%v", tile, dir)
			assert.Empty(t, back.Halves, "tile=%v dir=%v", tile, dir)
		}
	}
}

func TestCanFit(t *testing.T) {
	rt := rhomb.Tiling{}
	thick := []rhomb.Tile{rhomb.A, rhomb.C, rhomb.E}
	thin := []rhomb.Tile{rhomb.B, rhomb.D}

	for _, inner := range []rhomb.Tile{rhomb.A, rhomb.B, rhomb.C} {
		for _, outer := range thick {
			assert.True(t, rt.CanFit(inner, outer), "inner=%v outer=%v", inner, outer)
		}
		for _, outer := range thin {
			assert.False(t, rt.CanFit(inner, outer), "inner=%v outer=%v", inner, outer)
		}
	}
	for _, inner := range []rhomb.Tile{rhomb.D, rhomb.E} {
		for _, outer := range thin {
			assert.True(t, rt.CanFit(inner, outer), "inner=%v outer=%v", inner, outer)
		}
		for _, outer := range thick {
			assert.False(t, rt.CanFit(inner, outer), "inner=%v outer=%v", inner, outer)
		}
	}
}

func TestPatternConsistentWithCanFit(t *testing.T) {
	rt := rhomb.Tiling{}
	pattern := rt.Pattern()
	for i := 0; i < len(pattern); i++ {
		next := pattern[(i+1)%len(pattern)]
		assert.True(t, rt.CanFit(pattern[i], next), "pattern[%d]=%v pattern[%d]=%v", i, pattern[i], i+1, next)
	}
}

func TestParseTileRoundTrip(t *testing.T) {
	for _, tt := range []struct {
		in   rune
		want rhomb.Tile
	}{
		{'a', rhomb.A}, {'B', rhomb.B}, {'c', rhomb.C}, {'D', rhomb.D}, {'e', rhomb.E},
	} {
		got, ok := rhomb.ParseTile(tt.in)
		require.True(t, ok)
		assert.Equal(t, tt.want, got)
	}
	_, ok := rhomb.ParseTile('x')
	assert.False(t, ok)
}

func TestDirectionRotations(t *testing.T) {
	d := rhomb.North
	assert.Equal(t, rhomb.East, d.TurnRight())
	assert.Equal(t, rhomb.West, d.TurnLeft())
	assert.Equal(t, rhomb.South, d.Opposite())
	assert.Equal(t, d, d.Opposite().Opposite())
}
