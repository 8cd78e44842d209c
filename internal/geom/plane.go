package geom

import "gonum.org/v1/gonum/spatial/r3"

// Plane is the set of points x with N·x = B. N is kept unit length.
type Plane struct {
	N r3.Vec
	B float64
}

// NewPlane normalises n. A zero normal is kept as is.
func NewPlane(n r3.Vec, b float64) Plane {
	if r3.Norm(n) != 0 {
		n = r3.Unit(n)
	}
	return Plane{N: n, B: b}
}

// Phi is the signed distance of x from the plane, positive on the side
// the normal points to.
func (p Plane) Phi(x r3.Vec) float64 {
	return r3.Dot(p.N, x) - p.B
}

// Grad is the gradient of Phi, which for a plane is its normal everywhere.
func (p Plane) Grad(r3.Vec) r3.Vec {
	return p.N
}

// Project returns the closest point on the plane to x.
func (p Plane) Project(x r3.Vec) r3.Vec {
	return r3.Sub(x, r3.Scale(p.Phi(x), p.N))
}

// Query bundles the answers the feed reports for one point.
type Query struct {
	Phi  float64
	Proj r3.Vec
	Grad r3.Vec
}

// Query evaluates the plane at x.
func (p Plane) Query(x r3.Vec) Query {
	return Query{Phi: p.Phi(x), Proj: p.Project(x), Grad: p.Grad(x)}
}
