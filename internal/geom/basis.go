package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// refSwitch is the |n.Y| threshold above which the X axis replaces the
// Y axis as the reference for the first in-plane vector.
const refSwitch = 0.9

// PatchHalfSize is the half edge length of the drawn plane patch.
const PatchHalfSize = 2.0

// cornerCoeffs fixes the winding of the patch quadrilateral.
var cornerCoeffs = [4][2]float64{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}

// Reference returns the helper axis crossed with n to get the first
// in-plane vector.
func Reference(n r3.Vec) r3.Vec {
	if math.Abs(n.Y) < refSwitch {
		return r3.Vec{Y: 1}
	}
	return r3.Vec{X: 1}
}

// Basis returns an orthonormal pair (u, v) spanning the plane with unit
// normal n. The result is undefined for a zero normal.
func Basis(n r3.Vec) (u, v r3.Vec) {
	u = r3.Unit(r3.Cross(n, Reference(n)))
	v = r3.Cross(n, u)
	return u, v
}

// Center is the point of the plane closest to the origin, n*b.
func Center(n r3.Vec, b float64) r3.Vec {
	return r3.Scale(b, n)
}

// Corners returns the four corners of the square patch of half size s
// centred on the plane, in drawing order.
func Corners(n r3.Vec, b, s float64) [4]r3.Vec {
	u, v := Basis(n)
	c := Center(n, b)
	var out [4]r3.Vec
	for i, k := range cornerCoeffs {
		out[i] = r3.Add(c, r3.Add(r3.Scale(k[0]*s, u), r3.Scale(k[1]*s, v)))
	}
	return out
}

// Centroid is the mean of the given points.
func Centroid(pts []r3.Vec) r3.Vec {
	if len(pts) == 0 {
		return r3.Vec{}
	}
	var sum r3.Vec
	for _, p := range pts {
		sum = r3.Add(sum, p)
	}
	return r3.Scale(1/float64(len(pts)), sum)
}
