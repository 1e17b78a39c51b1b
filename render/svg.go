package render

import (
	"io"

	svg "github.com/ajstarks/svgo"
)

// cellPixels is the size, in SVG pixels, allotted to one cell's bounding
// box. Frame stops short of a global layout solver, so WriteSVG lays
// cells out on a simple grid rather than resolving their true tiling
// adjacency; it gives the data interface a concrete sink, not a
// geometrically faithful picture of the tiling.
const cellPixels = 80

// WriteSVG renders cells to w as one SVG document: one rhomb polygon per
// cell, filled by species color, labelled with its source character, with
// the current instruction pointer's cell outlined in black.
func WriteSVG(w io.Writer, cells []Cell) {
	cols := 8
	if len(cells) < cols {
		cols = len(cells)
	}
	if cols == 0 {
		cols = 1
	}
	rows := (len(cells) + cols - 1) / cols

	canvas := svg.New(w)
	canvas.Start(cols*cellPixels, rows*cellPixels)
	defer canvas.End()

	for i, c := range cells {
		cx := float64((i%cols)*cellPixels + cellPixels/2)
		cy := float64((i/cols)*cellPixels + cellPixels/2)
		scale := float64(cellPixels) * 0.4

		xs := make([]int, len(c.Geometry.Outline))
		ys := make([]int, len(c.Geometry.Outline))
		for j, p := range c.Geometry.Outline {
			xs[j] = int(cx + p.X*scale)
			ys[j] = int(cy + p.Y*scale)
		}

		style := "fill:" + c.Color + ";stroke:black;stroke-width:1"
		if c.IsCurrentIP {
			style = "fill:" + c.Color + ";stroke:black;stroke-width:4"
		}
		canvas.Polygon(xs, ys, style)
		canvas.Text(int(cx), int(cy), c.Label, "text-anchor:middle;font-size:14px")
	}
}
