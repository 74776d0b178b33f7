package poly

import "github.com/drand/kyber"

// Group has points on it and can create scalar from the scalar fields
type Group = kyber.Group

// Scalar of the field of the curve
type Scalar = kyber.Scalar

// Poly is a polynomial with scalar coefficients, lowest degree first.
type Poly struct {
	c []Scalar
	g Group
}

func NewPolyFrom(g Group, coeffs []Scalar) Poly {
	return Poly{c: coeffs, g: g}
}

// Eval evaluates the polynomial at x with Horner's rule
func (p Poly) Eval(x Scalar) Scalar {
	v := p.g.Scalar().Zero()
	for j := len(p.c) - 1; j >= 0; j-- {
		v.Mul(v, x)
		v.Add(v, p.c[j])
	}
	return v
}

func (p Poly) Coeffs() []Scalar {
	return p.c
}
