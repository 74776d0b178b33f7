package halo

import (
	zeromt "github.com/EmanueleSc/ZeroMT"
	"github.com/EmanueleSc/ZeroMT/transcript"
	"github.com/pkg/errors"
)

type Verifier struct {
	group Group
	gVec  []Point
	bVec  []Scalar
	h     Point
	t     Point
	tHat  Scalar
	u     Point
}

func NewVerifier(g Group, gVec []Point, bVec []Scalar, h, T Point, tHat Scalar, u Point) (*Verifier, error) {
	if err := checkSizes(gVec, bVec); err != nil {
		return nil, err
	}
	return &Verifier{group: g, gVec: gVec, bVec: bVec, h: h, t: T, tHat: tHat, u: u}, nil
}

// VerifyProof recomputes the folded commitment
//
//	T' = T + t_hat*U + SUM_k (m_k^2*L_k + m_k^-2*R_k)
//
// and the folded G and b, then checks
//
//	x*T' + R == z1*(G' + b'*U) + z2*h
func (v *Verifier) VerifyProof(proof *Proof, tr *transcript.Transcript) error {
	g := v.group
	if proof == nil || len(proof.L) != Rounds || len(proof.R) != Rounds || proof.Z1 == nil || proof.Z2 == nil {
		return v.reject("shape", zeromt.ErrMalformedProof)
	}
	tr.DomainSeparate(domainLabel)

	T := g.Point().Add(v.t, g.Point().Mul(v.tHat, v.u))
	b := zeromt.CloneVector(v.bVec)
	G := zeromt.ClonePoints(v.gVec)
	for k := 0; k < Rounds; k++ {
		if err := tr.ValidateAndAppendPoint(roundLabels[k].l, proof.L[k]); err != nil {
			return v.reject("L", err)
		}
		if err := tr.ValidateAndAppendPoint(roundLabels[k].r, proof.R[k]); err != nil {
			return v.reject("R", err)
		}
		m := tr.ChallengeScalar(g, roundLabels[k].m)
		mInv := g.Scalar().Inv(m)
		m2 := g.Scalar().Mul(m, m)
		mInv2 := g.Scalar().Mul(mInv, mInv)
		T.Add(T, zeromt.Pedersen(g, m2, proof.L[k], mInv2, proof.R[k]))

		nb := g.Scalar().Mul(b[0], mInv)
		nb.Add(nb, g.Scalar().Mul(b[1], m))
		b = append([]Scalar{nb}, b[2:]...)
		G = append([]Point{zeromt.Pedersen(g, mInv, G[0], m, G[1])}, G[2:]...)
	}

	if err := tr.ValidateAndAppendPoint("R", proof.RComm); err != nil {
		return v.reject("R_comm", err)
	}
	x := tr.ChallengeScalar(g, "x")
	tr.AppendScalar("z_one", proof.Z1)
	tr.AppendScalar("z_two", proof.Z2)

	lhs := g.Point().Mul(x, T)
	lhs.Add(lhs, proof.RComm)
	base := g.Point().Add(G[0], g.Point().Mul(b[0], v.u))
	rhs := zeromt.Pedersen(g, proof.Z1, base, proof.Z2, v.h)
	if !lhs.Equal(rhs) {
		return v.reject("schnorr opening", zeromt.ErrProofValidation)
	}
	return nil
}

func (v *Verifier) reject(check string, err error) error {
	zeromt.Logger().Debug().Str("protocol", domainLabel).Str("check", check).Msg("proof rejected")
	return errors.Wrapf(err, "halo: %s", check)
}
