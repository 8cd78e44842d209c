// Package scene turns a parsed frame into the fixed set of drawables that
// planeview presents: axis box, translucent plane patch, two point markers,
// the segment joining them and a title.
package scene

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/planeview/internal/frame"
	"github.com/san-kum/planeview/internal/geom"
)

// AxisLimit is the half width of the visible cube on every axis.
const AxisLimit = 2.0

// Marker sizes in points squared, P drawn slightly larger than Q.
const (
	SizeP = 40.0
	SizeQ = 30.0
)

const patchAlpha = 0.3

// Palette.
var (
	Red    = colorful.Color{R: 1, G: 0, B: 0}
	Green  = colorful.Color{R: 0, G: 128.0 / 255, B: 0}
	White  = colorful.Color{R: 1, G: 1, B: 1}
	Yellow = colorful.Color{R: 1, G: 1, B: 0}
	Black  = colorful.Color{}
	Patch  = colorful.Color{R: 0.3, G: 0.6, B: 0.9}
)

type Axis struct {
	Label    string
	Min, Max float64
}

// Polygon is a filled quadrilateral with an outline. The outline is drawn
// one dot wide, the thinnest stroke the canvas has.
type Polygon struct {
	Corners   [4]r3.Vec
	Fill      colorful.Color
	FillAlpha float64
	Edge      colorful.Color
}

type Marker struct {
	Pos   r3.Vec
	Color colorful.Color
	Size  float64
}

type Segment struct {
	From, To r3.Vec
	Color    colorful.Color
}

// Scene is everything drawn for one frame, listed in painting order:
// Patch, P, Q, Link.
type Scene struct {
	Axes   [3]Axis
	Center r3.Vec
	Patch  Polygon
	P, Q   Marker
	Link   Segment
	Title  string
	Phi    float64
}

// PointColor is red for negative phi and green otherwise, zero included.
func PointColor(phi float64) colorful.Color {
	if phi < 0 {
		return Red
	}
	return Green
}

// Title formats phi the way the scene header shows it.
func Title(phi float64) string {
	return fmt.Sprintf("phi=%.3f", phi)
}

// Build lays out the scene for f.
func Build(f frame.Frame) Scene {
	return Scene{
		Axes: [3]Axis{
			{Label: "X", Min: -AxisLimit, Max: AxisLimit},
			{Label: "Y", Min: -AxisLimit, Max: AxisLimit},
			{Label: "Z", Min: -AxisLimit, Max: AxisLimit},
		},
		Center: geom.Center(f.Normal, f.Offset),
		Patch: Polygon{
			Corners:   geom.Corners(f.Normal, f.Offset, geom.PatchHalfSize),
			Fill:      Patch,
			FillAlpha: patchAlpha,
			Edge:      Black,
		},
		P:     Marker{Pos: f.P, Color: PointColor(f.Phi), Size: SizeP},
		Q:     Marker{Pos: f.Q, Color: White, Size: SizeQ},
		Link:  Segment{From: f.P, To: f.Q, Color: Yellow},
		Title: Title(f.Phi),
		Phi:   f.Phi,
	}
}
