package ipa

import (
	zeromt "github.com/EmanueleSc/ZeroMT"
	"github.com/EmanueleSc/ZeroMT/transcript"
	"github.com/pkg/errors"
)

const domainLabel = "InnerProductArgument"

// Prover proves knowledge of a, b with <a,b> = c for
//
//	P + c*U = <a,G> + <b,H> + c*U
//
// halving the vectors at every round.
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
	if err := CheckStatement(gVec, hVec, a, b); err != nil {
		return nil, errors.Wrap(err, "inner product prover")
	}
	return &Prover{group: g, gVec: gVec, hVec: hVec, p: P, c: c, a: a, b: b, u: u}, nil
}

func (p *Prover) GenerateProof(tr *transcript.Transcript) (*Proof, error) {
	g := p.group
	tr.DomainSeparate(domainLabel)

	// the inputs are folded in place on copies, halving the live range at
	// every round
	G := zeromt.ClonePoints(p.gVec)
	H := zeromt.ClonePoints(p.hVec)
	a := zeromt.CloneVector(p.a)
	b := zeromt.CloneVector(p.b)
	k := zeromt.Log2(len(a))
	zeromt.Logger().Debug().Str("protocol", domainLabel).Int("size", len(a)).Int("rounds", k).Msg("generating proof")

	proof := &Proof{L: make([]Point, 0, k), R: make([]Point, 0, k)}
	for n := len(a); n > 1; n /= 2 {
		h := n / 2
		aLo, aHi := a[:h], a[h:n]
		bLo, bHi := b[:h], b[h:n]
		gLo, gHi := G[:h], G[h:n]
		hLo, hHi := H[:h], H[h:n]

		cL := zeromt.InnerProduct(g, aLo, bHi)
		cR := zeromt.InnerProduct(g, aHi, bLo)
		L := zeromt.VectorPedersen(g, cL, p.u, aLo, gHi, bHi, hLo)
		R := zeromt.VectorPedersen(g, cR, p.u, aHi, gLo, bLo, hHi)
		if err := tr.ValidateAndAppendPoint("l", L); err != nil {
			return nil, errors.Wrap(err, "inner product prover")
		}
		if err := tr.ValidateAndAppendPoint("r", R); err != nil {
			return nil, errors.Wrap(err, "inner product prover")
		}
		proof.L = append(proof.L, L)
		proof.R = append(proof.R, R)

		x := tr.ChallengeScalar(g, "x")
		xInv := g.Scalar().Inv(x)
		for i := 0; i < h; i++ {
			// a' = x*a_lo + x^-1*a_hi, b' = x^-1*b_lo + x*b_hi
			na := g.Scalar().Mul(x, aLo[i])
			na.Add(na, g.Scalar().Mul(xInv, aHi[i]))
			nb := g.Scalar().Mul(xInv, bLo[i])
			nb.Add(nb, g.Scalar().Mul(x, bHi[i]))
			a[i], b[i] = na, nb
		}
		foldPoints(g, G, h, xInv, x)
		foldPoints(g, H, h, x, xInv)
	}
	proof.A = a[0]
	proof.B = b[0]
	tr.AppendScalar("a", proof.A)
	tr.AppendScalar("b", proof.B)
	return proof, nil
}

// foldPoints sets v[i] = lo*v[i] + hi*v[i+h] for i < h.
func foldPoints(g Group, v []Point, h int, lo, hi Scalar) {
	for i := 0; i < h; i++ {
		v[i] = zeromt.Pedersen(g, lo, v[i], hi, v[i+h])
	}
}
