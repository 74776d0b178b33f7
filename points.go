package zeromt

import "github.com/drand/kyber"

// MultiScalarMul returns SUM s_i * P_i
func MultiScalarMul(g kyber.Group, scalars []Scalar, points []Point) Point {
	checkLen("multiscalar", len(scalars), len(points))
	acc := g.Point().Null()
	tmp := g.Point()
	for i := range scalars {
		acc.Add(acc, tmp.Mul(scalars[i], points[i]))
	}
	return acc
}

// ClonePoints returns a copy of the vector. Points are never mutated in
// place by this module so a shallow copy is enough.
func ClonePoints(v []Point) []Point {
	out := make([]Point, len(v))
	copy(out, v)
	return out
}

// Pedersen returns the commitment a*G + b*H
func Pedersen(g kyber.Group, a Scalar, gp Point, b Scalar, hp Point) Point {
	res := g.Point().Mul(a, gp)
	return res.Add(res, g.Point().Mul(b, hp))
}

// VectorPedersen returns blind*H + <aL,gs> + <aR,hs>
func VectorPedersen(g kyber.Group, blind Scalar, h Point, aL []Scalar, gs []Point, aR []Scalar, hs []Point) Point {
	res := g.Point().Mul(blind, h)
	res.Add(res, MultiScalarMul(g, aL, gs))
	return res.Add(res, MultiScalarMul(g, aR, hs))
}
