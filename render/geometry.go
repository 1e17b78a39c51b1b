// Package render turns a lang.ProgramState's occupied cells into screen-
// space geometry: a thin/thick rhomb polygon per tile species, an SVG
// sink, and an optional live OpenGL viewer. No core package imports
// render; it is a pure consumer of lang's exported state.
package render

import (
	"math"

	"github.com/mousetail/painrose-go/tiling/rhomb"
)

const (
	scalingFactor        = 1.618033988
	scalingFactorInverse = 1.0 / scalingFactor
)

// Point is one screen-space vertex.
type Point struct {
	X, Y float64
}

// shapeInfo is one rhomb's width, height and corner angles, derived from
// the angle at the rhomb's left and right corners (36 degrees thin, 108
// thick).
type shapeInfo struct {
	width, height          float64
	sideAngle, bottomAngle float64
}

func newShapeInfo(angleDegrees float64) shapeInfo {
	angle := angleDegrees * math.Pi / 180
	return shapeInfo{
		width:       math.Cos(angle*0.5) * scalingFactorInverse * 2,
		height:      math.Sin(angle*0.5) * scalingFactorInverse * 2,
		sideAngle:   angle,
		bottomAngle: math.Pi - angle,
	}
}

var (
	thinRhomb  = newShapeInfo(36.0)
	thickRhomb = newShapeInfo(108.0)
)

// Geometry is the resolved per-species placement within its parent tile:
// the offset of its center and its rotation, plus its outline.
type Geometry struct {
	Center   Point
	Rotation float64
	Outline  []Point
}

// shapeFor returns the thin or thick rhomb shape a species is drawn from:
// A, C, E are thick; B, D are thin.
func shapeFor(t rhomb.Tile) shapeInfo {
	switch t {
	case rhomb.A, rhomb.C, rhomb.E:
		return thickRhomb
	default:
		return thinRhomb
	}
}

// TileGeometry resolves one tile species' local placement. Coordinates
// are in the parent tile's local unit frame. Frame does not accumulate
// these into a global layout; WriteSVG and View place each cell on a
// simple grid.
func TileGeometry(t rhomb.Tile) Geometry {
	center, rotation := tileCenter(t)
	return Geometry{
		Center:   center,
		Rotation: rotation,
		Outline:  tileOutline(t),
	}
}

func tileCenter(t rhomb.Tile) (Point, float64) {
	switch t {
	case rhomb.A:
		return Point{0, (thickRhomb.height - scalingFactorInverse) * 0.5}, math.Pi
	case rhomb.B:
		y := -thickRhomb.bottomAngle/2 + math.Pi/2
		return Point{
			X: math.Sin(y) * thinRhomb.width * scalingFactorInverse / 2,
			Y: math.Cos(y)*thinRhomb.width*scalingFactorInverse/2 + 0.5 - scalingFactorInverse,
		}, -thickRhomb.sideAngle/2 + math.Pi/2
	case rhomb.C:
		return Point{-thickRhomb.width / 4, -thickRhomb.height / 4}, thickRhomb.bottomAngle/2 - math.Pi
	case rhomb.D:
		// TODO: Fix the D rhomb, and the angles.
		s := thinRhomb.height / 2
		return Point{
			X: -thinRhomb.width * 0.5 * s,
			Y: thinRhomb.height * 0.5 * (1 - s),
		}, thinRhomb.sideAngle/2 + math.Pi/2
	case rhomb.E:
		return Point{-thinRhomb.width / 4, -thinRhomb.height / 4}, thinRhomb.bottomAngle/2 + math.Pi
	default:
		return Point{}, 0
	}
}

// tileOutline returns the four corners of a rhomb centered on the origin
// (left, top, right, bottom).
func tileOutline(t rhomb.Tile) []Point {
	s := shapeFor(t)
	return []Point{
		{-s.width / 2, 0},
		{0, -s.height / 2},
		{s.width / 2, 0},
		{0, s.height / 2},
	}
}

// Color is the per-species fill used by both the SVG and live-view
// renderers.
func Color(t rhomb.Tile) string {
	switch t {
	case rhomb.A:
		return "red"
	case rhomb.B:
		return "green"
	case rhomb.C:
		return "blue"
	case rhomb.D:
		return "magenta"
	case rhomb.E:
		return "orange"
	default:
		return "black"
	}
}
