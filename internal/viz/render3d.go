package viz

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/planeview/internal/scene"
)

// Point is a canvas position in dots.
type Point struct{ X, Y int }

// coordLimit bounds projected coordinates before they are turned into ints,
// so wild input values cannot overflow the rasterisers.
const coordLimit = 1e4

const deg = math.Pi / 180

// Camera orbits the origin and perspective-projects world points (Z up) to
// the canvas.
type Camera struct {
	Elev, Azim float64 // radians
	Dist       float64
	Zoom       float64
}

// NewCamera looks at the origin from 30 degrees above the XY plane,
// 60 degrees clockwise of the X axis.
func NewCamera() *Camera {
	return &Camera{Elev: 30 * deg, Azim: -60 * deg, Dist: 16, Zoom: 1}
}

// Orbit turns the camera. Elevation stays short of the poles.
func (c *Camera) Orbit(dAzim, dElev float64) {
	c.Azim += dAzim
	c.Elev = math.Max(-89*deg, math.Min(89*deg, c.Elev+dElev))
}

func (c *Camera) ZoomIn()  { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

// Basis returns the screen right, screen up and towards-viewer directions in
// world space.
func (c *Camera) Basis() (right, up, toward r3.Vec) {
	se, ce := math.Sincos(c.Elev)
	sa, ca := math.Sincos(c.Azim)
	toward = r3.Vec{X: ce * ca, Y: ce * sa, Z: se}
	right = r3.Vec{X: -sa, Y: ca}
	up = r3.Vec{X: -se * ca, Y: -se * sa, Z: ce}
	return right, up, toward
}

// Project maps p to canvas dots for a sw x sh dot canvas. depth grows
// towards the viewer; ok is false for points at or behind the eye and for
// non-finite input.
func (c *Camera) Project(p r3.Vec, sw, sh int) (x, y, depth float64, ok bool) {
	right, up, toward := c.Basis()
	p = r3.Scale(c.Zoom, p)
	depth = r3.Dot(p, toward)
	if depth >= c.Dist-0.1 {
		return 0, 0, depth, false
	}
	persp := c.Dist / (c.Dist - depth)
	pScale := float64(min(sw, sh)) / (4.4 * scene.AxisLimit)
	x = r3.Dot(p, right)*persp*pScale + float64(sw)/2
	y = -r3.Dot(p, up)*persp*pScale + float64(sh)/2
	if !finite(x) || !finite(y) {
		return 0, 0, depth, false
	}
	return x, y, depth, true
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func toPoint(x, y float64) Point {
	clamp := func(v float64) int { return int(math.Round(math.Max(-coordLimit, math.Min(coordLimit, v)))) }
	return Point{clamp(x), clamp(y)}
}

// clipLine clips the segment to [0,w)x[0,h) (Liang-Barsky).
func clipLine(x0, y0, x1, y1 float64, w, h int) (Point, Point, bool) {
	t0, t1 := 0.0, 1.0
	dx, dy := x1-x0, y1-y0
	edges := [4][2]float64{
		{-dx, x0},
		{dx, float64(w-1) - x0},
		{-dy, y0},
		{dy, float64(h-1) - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return Point{}, Point{}, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return Point{}, Point{}, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return Point{}, Point{}, false
			}
			t1 = math.Min(t1, r)
		}
	}
	return toPoint(x0+t0*dx, y0+t0*dy), toPoint(x0+t1*dx, y0+t1*dy), true
}

// markerRadius converts a marker area in points squared to a dot radius.
func markerRadius(size float64) float64 {
	return math.Sqrt(size/math.Pi) * 0.6
}

func hexColor(c colorful.Color) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// Renderer draws scenes on a canvas through a camera. It is the canvas
// backend shared by the live and plain surfaces.
type Renderer struct {
	Canvas *Canvas
	Camera *Camera
	Theme  Theme

	last    scene.Scene
	hasLast bool
}

func NewRenderer(w, h int) *Renderer {
	return &Renderer{Canvas: NewCanvas(w, h), Camera: NewCamera(), Theme: CurrentTheme}
}

// Draw clears the canvas and paints s.
func (r *Renderer) Draw(s scene.Scene) error {
	r.last, r.hasLast = s, true
	r.paint(s)
	return nil
}

// Redraw repaints the last scene, after a camera or theme change.
func (r *Renderer) Redraw() {
	if r.hasLast {
		r.paint(r.last)
	}
}

// Last returns the most recently drawn scene.
func (r *Renderer) Last() (scene.Scene, bool) { return r.last, r.hasLast }

func (r *Renderer) project(p r3.Vec) (float64, float64, bool) {
	w, h := r.Canvas.DotSize()
	x, y, _, ok := r.Camera.Project(p, w, h)
	return x, y, ok
}

func (r *Renderer) line(a, b r3.Vec, clr lipgloss.Color) {
	x0, y0, ok0 := r.project(a)
	x1, y1, ok1 := r.project(b)
	if !ok0 || !ok1 {
		return
	}
	w, h := r.Canvas.DotSize()
	p0, p1, ok := clipLine(x0, y0, x1, y1, w, h)
	if !ok {
		return
	}
	r.Canvas.DrawLine(p0.X, p0.Y, p1.X, p1.Y, clr)
}

func (r *Renderer) marker(m scene.Marker) {
	x, y, ok := r.project(m.Pos)
	if !ok {
		return
	}
	p := toPoint(x, y)
	r.Canvas.DrawDisc(p.X, p.Y, markerRadius(m.Size), hexColor(m.Color))
}

func (r *Renderer) paint(s scene.Scene) {
	r.Canvas.Clear()
	r.box(s.Axes)

	pts := make([]Point, 0, len(s.Patch.Corners))
	for _, c := range s.Patch.Corners {
		x, y, ok := r.project(c)
		if !ok {
			pts = pts[:0]
			break
		}
		pts = append(pts, toPoint(x, y))
	}
	r.Canvas.FillPolygon(pts, s.Patch.FillAlpha, hexColor(s.Patch.Fill))
	for i, c := range s.Patch.Corners {
		r.line(c, s.Patch.Corners[(i+1)%len(s.Patch.Corners)], hexColor(s.Patch.Edge))
	}

	r.marker(s.P)
	r.marker(s.Q)
	r.line(s.Link.From, s.Link.To, hexColor(s.Link.Color))
}

// box draws the axis cube and its labels.
func (r *Renderer) box(axes [3]scene.Axis) {
	lo := r3.Vec{X: axes[0].Min, Y: axes[1].Min, Z: axes[2].Min}
	hi := r3.Vec{X: axes[0].Max, Y: axes[1].Max, Z: axes[2].Max}
	corner := func(i int) r3.Vec {
		v := lo
		if i&1 != 0 {
			v.X = hi.X
		}
		if i&2 != 0 {
			v.Y = hi.Y
		}
		if i&4 != 0 {
			v.Z = hi.Z
		}
		return v
	}
	for i := 0; i < 8; i++ {
		for _, bit := range []int{1, 2, 4} {
			if i&bit == 0 {
				r.line(corner(i), corner(i|bit), r.Theme.Muted)
			}
		}
	}

	mid := r3.Scale(0.5, r3.Add(lo, hi))
	pad := 0.15 * (hi.X - lo.X)
	labels := [3]r3.Vec{
		{X: mid.X, Y: lo.Y - pad, Z: lo.Z},
		{X: hi.X + pad, Y: mid.Y, Z: lo.Z},
		{X: lo.X - pad, Y: lo.Y - pad, Z: mid.Z},
	}
	for i, at := range labels {
		x, y, ok := r.project(at)
		if !ok {
			continue
		}
		p := toPoint(x, y)
		r.Canvas.Text(p.X/2, p.Y/4, axes[i].Label, r.Theme.Secondary)
	}
}
