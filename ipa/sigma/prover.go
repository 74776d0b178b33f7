// Package sigma implements the sigma style inner product argument. It proves
// the same relation as the recursive argument of package ipa but folds
// without inverses and first scales U by a challenge y. It runs under its own
// domain separator: transcripts of the two arguments are not interchangeable.
package sigma

import (
	zeromt "github.com/EmanueleSc/ZeroMT"
	"github.com/EmanueleSc/ZeroMT/ipa"
	"github.com/EmanueleSc/ZeroMT/transcript"
	"github.com/drand/kyber"
	"github.com/pkg/errors"
)

// Group has points on it and can create scalar from the scalar fields
type Group = kyber.Group

// Scalar of the field of the curve
type Scalar = kyber.Scalar

// Point in the group (in our case it's elliptic curve so it's a point)
type Point = kyber.Point

const domainLabel = "InnerSigmaArgument"

var _ ipa.ProofGenerator = (*Prover)(nil)
var _ ipa.ProofVerifier = (*Verifier)(nil)

type Prover struct {
	group Group
	gVec  []Point
	hVec  []Point
	p     Point
	c     Scalar
	a     []Scalar
	b     []Scalar
	u     Point
}

func NewProver(g Group, gVec, hVec []Point, P Point, c Scalar, a, b []Scalar, u Point) (*Prover, error) {
	if err := ipa.CheckStatement(gVec, hVec, a, b); err != nil {
		return nil, errors.Wrap(err, "sigma prover")
	}
	return &Prover{group: g, gVec: gVec, hVec: hVec, p: P, c: c, a: a, b: b, u: u}, nil
}

// GenerateProof runs the rounds
//
//	L = <a_hi,G_lo> + <b_lo,H_hi> + <a_hi,b_lo>*yU
//	R = <a_lo,G_hi> + <b_hi,H_lo> + <a_lo,b_hi>*yU
//
// folding with G' = G_lo + x*G_hi, H' = x*H_lo + H_hi.
func (p *Prover) GenerateProof(tr *transcript.Transcript) (*ipa.Proof, error) {
	g := p.group
	tr.DomainSeparate(domainLabel)
	y := tr.ChallengeScalar(g, "y")
	uy := g.Point().Mul(y, p.u)

	G := zeromt.ClonePoints(p.gVec)
	H := zeromt.ClonePoints(p.hVec)
	a := zeromt.CloneVector(p.a)
	b := zeromt.CloneVector(p.b)
	k := zeromt.Log2(len(a))
	zeromt.Logger().Debug().Str("protocol", domainLabel).Int("size", len(a)).Int("rounds", k).Msg("generating proof")

	proof := &ipa.Proof{L: make([]Point, 0, k), R: make([]Point, 0, k)}
	one := g.Scalar().One()
	for n := len(a); n > 1; n /= 2 {
		h := n / 2
		aLo, aHi := a[:h], a[h:n]
		bLo, bHi := b[:h], b[h:n]
		gLo, gHi := G[:h], G[h:n]
		hLo, hHi := H[:h], H[h:n]

		cL := zeromt.InnerProduct(g, aHi, bLo)
		cR := zeromt.InnerProduct(g, aLo, bHi)
		L := zeromt.VectorPedersen(g, cL, uy, aHi, gLo, bLo, hHi)
		R := zeromt.VectorPedersen(g, cR, uy, aLo, gHi, bHi, hLo)
		if err := tr.ValidateAndAppendPoint("l", L); err != nil {
			return nil, errors.Wrap(err, "sigma prover")
		}
		if err := tr.ValidateAndAppendPoint("r", R); err != nil {
			return nil, errors.Wrap(err, "sigma prover")
		}
		proof.L = append(proof.L, L)
		proof.R = append(proof.R, R)

		x := tr.ChallengeScalar(g, "x")
		for i := 0; i < h; i++ {
			// a' = x*a_lo + a_hi, b' = b_lo + x*b_hi
			na := g.Scalar().Mul(x, aLo[i])
			na.Add(na, aHi[i])
			nb := g.Scalar().Mul(x, bHi[i])
			nb.Add(nb, bLo[i])
			a[i], b[i] = na, nb
		}
		foldPoints(g, G, h, one, x)
		foldPoints(g, H, h, x, one)
	}
	proof.A = a[0]
	proof.B = b[0]
	tr.AppendScalar("a", proof.A)
	tr.AppendScalar("b", proof.B)
	return proof, nil
}

func foldPoints(g Group, v []Point, h int, lo, hi Scalar) {
	for i := 0; i < h; i++ {
		v[i] = zeromt.Pedersen(g, lo, v[i], hi, v[i+h])
	}
}
