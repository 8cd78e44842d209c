// Package frame decodes the line-oriented feed consumed by planeview.
//
// Each input line carries eleven comma-separated reals in a fixed order:
//
//	nx, ny, nz, b, px, py, pz, qx, qy, qz, phi
//
// describing a plane (unit normal n and offset b), a query point P, its
// projection Q and the signed distance phi of P from the plane.
//
// [Parse] reports two kinds of failure. A line whose tokens are all numeric
// but whose count is not eleven yields [ErrFieldCount]; callers skip it. A
// token that is not a real number yields a [*NumberError], which the read
// loop treats as fatal.
package frame
