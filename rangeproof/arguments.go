package rangeproof

import (
	zeromt "github.com/EmanueleSc/ZeroMT"
	"github.com/pkg/errors"
)

// IPAArguments turns a range proof into the statement of an inner product
// argument. It returns H' with H'_i = y^-i * H_i and
//
//	P = A + x*S - z*<1,G> + SUM_i (z*y^i + z^(1+j)*2^k)*H'_i - mu*h
//
// where i = (j-1)*n + k. An honest prover has P = <l(x),G> + <r(x),H'>.
func IPAArguments(g Group, h Point, gVec, hVec []Point, m, n int, ch *Challenges, mu Scalar, A, S Point) ([]Point, Point, error) {
	N := m * n
	if len(gVec) < N || len(hVec) < N {
		return nil, nil, errors.Wrapf(zeromt.ErrInvalidParameters, "ipa arguments: %d/%d bases for %d bits", len(gVec), len(hVec), N)
	}
	gVec, hVec = gVec[:N], hVec[:N]
	yInv := g.Scalar().Inv(ch.Y)
	hPrime := make([]Point, N)
	for i, s := range zeromt.Powers(g, yInv, N) {
		hPrime[i] = g.Point().Mul(s, hVec[i])
	}

	// all the terms go through a single multiscalar multiplication
	scalars := make([]Scalar, 0, 2*N+3)
	points := make([]Point, 0, 2*N+3)
	scalars = append(scalars, g.Scalar().One(), ch.X)
	points = append(points, A, S)

	negZ := g.Scalar().Neg(ch.Z)
	for i := 0; i < N; i++ {
		scalars = append(scalars, negZ)
	}
	points = append(points, gVec...)

	hw := zeromt.AddVectors(g, zeromt.ScaleVector(g, zeromt.Powers(g, ch.Y, N), ch.Z), zVector(g, ch.Z, m, n))
	scalars = append(scalars, hw...)
	points = append(points, hPrime...)

	scalars = append(scalars, g.Scalar().Neg(mu))
	points = append(points, h)
	return hPrime, zeromt.MultiScalarMul(g, scalars, points), nil
}
