package poly

import (
	zeromt "github.com/EmanueleSc/ZeroMT"
	"github.com/pkg/errors"
)

// VectorPoly is a degree 1 polynomial whose coefficients are vectors:
//
//	v(X) = Const + Linear * X
//
// The range proof builds l(X) and r(X) in this form.
type VectorPoly struct {
	Const  []Scalar
	Linear []Scalar
	g      Group
}

// NewVectorPoly panics if the two coefficients have different lengths.
func NewVectorPoly(g Group, constant, linear []Scalar) VectorPoly {
	if len(constant) != len(linear) {
		panic(errors.Wrapf(zeromt.ErrMath, "vector poly: %d != %d", len(constant), len(linear)))
	}
	return VectorPoly{Const: constant, Linear: linear, g: g}
}

// Eval returns Const + Linear * x
func (v VectorPoly) Eval(x Scalar) []Scalar {
	out := make([]Scalar, len(v.Const))
	tmp := v.g.Scalar()
	for i := range v.Const {
		out[i] = v.g.Scalar().Add(v.Const[i], tmp.Mul(v.Linear[i], x))
	}
	return out
}

// TCoefficients returns t(X) = <l(X),r(X)> = t0 + t1*X + t2*X^2 with
//
//	t0 = <l0,r0>
//	t2 = <l1,r1>
//	t1 = <l0+l1,r0+r1> - t0 - t2
//
// using Karatsuba's trick so only three inner products are computed.
func TCoefficients(g Group, l, r VectorPoly) Poly {
	t0 := zeromt.InnerProduct(g, l.Const, r.Const)
	t2 := zeromt.InnerProduct(g, l.Linear, r.Linear)
	t1 := zeromt.InnerProduct(g,
		zeromt.AddVectors(g, l.Const, l.Linear),
		zeromt.AddVectors(g, r.Const, r.Linear))
	t1.Sub(t1, t0)
	t1.Sub(t1, t2)
	return NewPolyFrom(g, []Scalar{t0, t1, t2})
}
