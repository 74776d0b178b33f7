package pedersen

import (
	zeromt "github.com/EmanueleSc/ZeroMT"
	"github.com/pkg/errors"
)

// CommitPoly commits to the coefficients of a polynomial using one base per
// coefficient:  <coeffs,bases> + r*h
func CommitPoly(g Group, bases []Point, h Point, coeffs []Scalar, r Scalar) (Point, error) {
	if len(coeffs) != len(bases) {
		return nil, errors.Wrapf(zeromt.ErrInvalidParameters, "poly commit: %d coefficients for %d bases", len(coeffs), len(bases))
	}
	c := zeromt.MultiScalarMul(g, coeffs, bases)
	return c.Add(c, g.Point().Mul(r, h)), nil
}
