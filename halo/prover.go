package halo

import (
	"crypto/cipher"

	zeromt "github.com/EmanueleSc/ZeroMT"
	"github.com/EmanueleSc/ZeroMT/transcript"
	"github.com/pkg/errors"
)

// Prover proves t_hat = <t,b> for the commitment T = <t,G> + r*h.
type Prover struct {
	group Group
	gVec  []Point
	h     Point
	t     Point
	r     Scalar
	tHat  Scalar
	tVec  []Scalar
	bVec  []Scalar
	u     Point
}

func NewProver(g Group, gVec []Point, h, T Point, r, tHat Scalar, tVec, bVec []Scalar, u Point) (*Prover, error) {
	if err := checkSizes(gVec, tVec, bVec); err != nil {
		return nil, err
	}
	return &Prover{group: g, gVec: gVec, h: h, t: T, r: r, tHat: tHat, tVec: tVec, bVec: bVec, u: u}, nil
}

// GenerateProof folds the first two entries of (t, b, G) twice
//
//	L = t_lo*G_hi + rl*h + t_lo*b_hi*U
//	R = t_hi*G_lo + rr*h + t_hi*b_lo*U
//	t' = m^-1*t_hi + m*t_lo,  b' = m^-1*b_lo + m*b_hi,  G' = m^-1*G_lo + m*G_hi
//
// then proves knowledge of the folded t and of the accumulated blinding.
func (p *Prover) GenerateProof(rand cipher.Stream, tr *transcript.Transcript) (*Proof, error) {
	g := p.group
	tr.DomainSeparate(domainLabel)
	zeromt.Logger().Debug().Str("protocol", domainLabel).Msg("generating proof")

	t := zeromt.CloneVector(p.tVec)
	b := zeromt.CloneVector(p.bVec)
	G := zeromt.ClonePoints(p.gVec)
	blind := p.r.Clone()

	proof := &Proof{L: make([]Point, Rounds), R: make([]Point, Rounds)}
	for k := 0; k < Rounds; k++ {
		rl := zeromt.RandomNonZero(g, rand)
		rr := zeromt.RandomNonZero(g, rand)

		L := zeromt.Pedersen(g, t[0], G[1], rl, p.h)
		L.Add(L, g.Point().Mul(g.Scalar().Mul(t[0], b[1]), p.u))
		R := zeromt.Pedersen(g, t[1], G[0], rr, p.h)
		R.Add(R, g.Point().Mul(g.Scalar().Mul(t[1], b[0]), p.u))
		if err := tr.ValidateAndAppendPoint(roundLabels[k].l, L); err != nil {
			return nil, errors.Wrap(err, "halo prover")
		}
		if err := tr.ValidateAndAppendPoint(roundLabels[k].r, R); err != nil {
			return nil, errors.Wrap(err, "halo prover")
		}
		proof.L[k], proof.R[k] = L, R

		m := tr.ChallengeScalar(g, roundLabels[k].m)
		mInv := g.Scalar().Inv(m)
		nt := g.Scalar().Mul(t[1], mInv)
		nt.Add(nt, g.Scalar().Mul(t[0], m))
		nb := g.Scalar().Mul(b[0], mInv)
		nb.Add(nb, g.Scalar().Mul(b[1], m))
		nG := zeromt.Pedersen(g, mInv, G[0], m, G[1])
		t = append([]Scalar{nt}, t[2:]...)
		b = append([]Scalar{nb}, b[2:]...)
		G = append([]Point{nG}, G[2:]...)

		// blind += rl*m^2 + rr*m^-2
		m2 := g.Scalar().Mul(m, m)
		mInv2 := g.Scalar().Mul(mInv, mInv)
		blind.Add(blind, g.Scalar().Mul(rl, m2))
		blind.Add(blind, g.Scalar().Mul(rr, mInv2))
	}

	d := zeromt.RandomNonZero(g, rand)
	s := zeromt.RandomNonZero(g, rand)
	base := g.Point().Add(G[0], g.Point().Mul(b[0], p.u))
	RComm := zeromt.Pedersen(g, d, base, s, p.h)
	if err := tr.ValidateAndAppendPoint("R", RComm); err != nil {
		return nil, errors.Wrap(err, "halo prover")
	}
	x := tr.ChallengeScalar(g, "x")

	z1 := g.Scalar().Mul(t[0], x)
	z1.Add(z1, d)
	z2 := g.Scalar().Mul(blind, x)
	z2.Add(z2, s)
	tr.AppendScalar("z_one", z1)
	tr.AppendScalar("z_two", z2)

	proof.RComm = RComm
	proof.Z1 = z1
	proof.Z2 = z2
	return proof, nil
}
