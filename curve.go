package zeromt

import (
	"github.com/drand/kyber"
	bls "github.com/drand/kyber-bls12381"
)

// Scalar is an element of the scalar field of the group
type Scalar = kyber.Scalar

// Point is an element of the prime order group (a curve point)
type Point = kyber.Point

// Suite is the default pairing suite. Only G1 is used by the proof system,
// the pairing is never computed.
var Suite = bls.NewBLS12381Suite()

// Group is the default group the proofs are computed over.
var Group = Suite.G1()

// IsIdentity returns true if p is the neutral element of its group. A nil point
// is considered the identity as well since it can't be used in any equation.
func IsIdentity(p Point) bool {
	if p == nil {
		return true
	}
	return p.Equal(p.Clone().Null())
}

// ScalarFromUint64 maps v into the scalar field. SetInt64 only covers half of
// the uint64 range so the value is assembled from two 32 bits limbs.
func ScalarFromUint64(g kyber.Group, v uint64) Scalar {
	hi := g.Scalar().SetInt64(int64(v >> 32))
	hi.Mul(hi, g.Scalar().SetInt64(1<<32))
	return hi.Add(hi, g.Scalar().SetInt64(int64(v&0xffffffff)))
}
