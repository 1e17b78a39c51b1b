package render

import (
	"github.com/mousetail/painrose-go/coord"
	"github.com/mousetail/painrose-go/lang"
	"github.com/mousetail/painrose-go/tiling/rhomb"
)

// Cell is one occupied, placed cell ready to draw: its address, its
// source character, whether it is the current instruction pointer, and
// the polygon/color to fill it with. Frame resolves these from a
// ProgramState's sparse cell map; nothing in lang depends on render,
// keeping tile rendering a pure data consumer of the interpreter's state.
type Cell struct {
	Addr        coord.Address[rhomb.Tile, rhomb.Direction]
	Label       string
	IsCurrentIP bool
	Geometry    Geometry
	Color       string
}

// Frame is the renderer data interface: it reads every occupied cell off
// state and resolves each one's local geometry and draw color, without
// performing any global layout. The walker itself never touches floats;
// only the renderer does.
func Frame(state *lang.ProgramState) []Cell {
	ip, _ := state.IP()
	cells := state.Cells()
	out := make([]Cell, 0, len(cells))
	for _, c := range cells {
		species := c.Addr.GetAt(0)
		out = append(out, Cell{
			Addr:        c.Addr,
			Label:       string(c.Char),
			IsCurrentIP: c.Addr.Equal(ip),
			Geometry:    TileGeometry(species),
			Color:       Color(species),
		})
	}
	return out
}
