// Package geom holds the plane geometry behind planeview: the in-plane
// basis used to lay out the drawn patch and the plane environment whose
// queries the feed reports.
//
// All vectors are gonum [r3.Vec] values.
package geom
