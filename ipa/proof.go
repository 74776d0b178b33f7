package ipa

import (
	zeromt "github.com/EmanueleSc/ZeroMT"
	"github.com/drand/kyber"
	"github.com/pkg/errors"
)

// Group has points on it and can create scalar from the scalar fields
type Group = kyber.Group

// Scalar of the field of the curve
type Scalar = kyber.Scalar

// Point in the group (in our case it's elliptic curve so it's a point)
type Point = kyber.Point

// Proof is the output of an inner product argument over vectors of length N:
// the two folded scalars and one (L,R) pair per halving round.
type Proof struct {
	A Scalar
	B Scalar
	L []Point
	R []Point
}

// Rounds returns the number of halving rounds, log2(N) for a well formed
// proof.
func (p *Proof) Rounds() int {
	return len(p.L)
}

// MarshalBinary writes a, b, then every L and every R.
func (p *Proof) MarshalBinary() ([]byte, error) {
	if len(p.L) != len(p.R) {
		return nil, errors.Wrapf(zeromt.ErrMalformedProof, "%d L for %d R", len(p.L), len(p.R))
	}
	var e zeromt.Encoder
	e.Scalar(p.A)
	e.Scalar(p.B)
	e.Points(p.L)
	e.Points(p.R)
	return e.Bytes()
}

// Decode reads a proof written by MarshalBinary. The number of rounds is
// deduced from the length of data.
func Decode(g Group, data []byte) (*Proof, error) {
	rest := len(data) - 2*g.ScalarLen()
	pair := 2 * g.PointLen()
	if rest < 0 || rest%pair != 0 {
		return nil, errors.Wrapf(zeromt.ErrMalformedProof, "inner product proof of %d bytes", len(data))
	}
	k := rest / pair
	d := zeromt.NewDecoder(g, data)
	p := &Proof{
		A: d.Scalar(),
		B: d.Scalar(),
		L: d.Points(k),
		R: d.Points(k),
	}
	if err := d.Done(); err != nil {
		return nil, err
	}
	return p, nil
}

// CheckShape returns ErrMalformedProof unless the proof holds both scalars and
// exactly log2(n) pairs of points.
func (p *Proof) CheckShape(n int) error {
	if p == nil || p.A == nil || p.B == nil {
		return errors.Wrap(zeromt.ErrMalformedProof, "missing scalar")
	}
	k := zeromt.Log2(n)
	if len(p.L) != k || len(p.R) != k {
		return errors.Wrapf(zeromt.ErrMalformedProof, "%d/%d rounds instead of %d", len(p.L), len(p.R), k)
	}
	return nil
}

// CheckStatement validates the sizes of the public bases and of the witness
// (when given) of an inner product argument.
func CheckStatement(gVec, hVec []Point, a, b []Scalar) error {
	n := len(gVec)
	if !zeromt.IsPowerOfTwo(n) {
		return errors.Wrapf(zeromt.ErrInvalidParameters, "%d bases is not a power of two", n)
	}
	if len(hVec) != n {
		return errors.Wrapf(zeromt.ErrInvalidParameters, "%d G bases for %d H bases", n, len(hVec))
	}
	if a != nil && (len(a) != n || len(b) != n) {
		return errors.Wrapf(zeromt.ErrInvalidParameters, "witness of %d/%d for %d bases", len(a), len(b), n)
	}
	return nil
}
