package ipa

import (
	zeromt "github.com/EmanueleSc/ZeroMT"
	"github.com/EmanueleSc/ZeroMT/transcript"
	"github.com/pkg/errors"
)

// Verifier checks a Proof against P and c. It can either replay the folding
// of the prover (VerifyProof) or check everything with one multiscalar
// multiplication (VerifyProofMultiscalar). Both accept the same proofs.
type Verifier struct {
	group Group
	gVec  []Point
	hVec  []Point
	p     Point
	c     Scalar
	u     Point
}

func NewVerifier(g Group, gVec, hVec []Point, P Point, c Scalar, u Point) (*Verifier, error) {
	if err := CheckStatement(gVec, hVec, nil, nil); err != nil {
		return nil, errors.Wrap(err, "inner product verifier")
	}
	return &Verifier{group: g, gVec: gVec, hVec: hVec, p: P, c: c, u: u}, nil
}

// VerifyProof folds the bases and the commitment round by round
//
//	P' = x^2*L + P + x^-2*R
//
// and checks P == a*G + b*H + a*b*U at the end.
func (v *Verifier) VerifyProof(proof *Proof, tr *transcript.Transcript) error {
	g := v.group
	if err := proof.CheckShape(len(v.gVec)); err != nil {
		return v.reject("shape", err)
	}
	challenges, err := v.replay(proof, tr)
	if err != nil {
		return err
	}

	G := zeromt.ClonePoints(v.gVec)
	H := zeromt.ClonePoints(v.hVec)
	P := g.Point().Add(v.p, g.Point().Mul(v.c, v.u))
	n := len(G)
	for j, x := range challenges {
		h := n / 2
		xInv := g.Scalar().Inv(x)
		x2 := g.Scalar().Mul(x, x)
		xInv2 := g.Scalar().Mul(xInv, xInv)
		foldPoints(g, G, h, xInv, x)
		foldPoints(g, H, h, x, xInv)
		P.Add(P, zeromt.Pedersen(g, x2, proof.L[j], xInv2, proof.R[j]))
		n = h
	}

	ab := g.Scalar().Mul(proof.A, proof.B)
	exp := zeromt.Pedersen(g, proof.A, G[0], proof.B, H[0])
	exp.Add(exp, g.Point().Mul(ab, v.u))
	if !exp.Equal(P) {
		return v.reject("sequential fold", zeromt.ErrProofValidation)
	}
	return nil
}

// VerifyProofMultiscalar checks
//
//	<a*s,G> + <b/s,H> + a*b*U - SUM_j (x_j^2*L_j + x_j^-2*R_j) == P + c*U
//
// where s_i is the product over the rounds of x_j or x_j^-1 depending on the
// half index i fell in at round j.
func (v *Verifier) VerifyProofMultiscalar(proof *Proof, tr *transcript.Transcript) error {
	g := v.group
	if err := proof.CheckShape(len(v.gVec)); err != nil {
		return v.reject("shape", err)
	}
	challenges, err := v.replay(proof, tr)
	if err != nil {
		return err
	}

	inv := zeromt.InvertVector(g, challenges)
	s := foldWeights(g, inv, challenges)
	sInv := foldWeights(g, challenges, inv)

	k := len(challenges)
	N := len(v.gVec)
	scalars := make([]Scalar, 0, 2*N+1+2*k)
	points := make([]Point, 0, 2*N+1+2*k)
	scalars = append(scalars, zeromt.ScaleVector(g, s, proof.A)...)
	points = append(points, v.gVec...)
	scalars = append(scalars, zeromt.ScaleVector(g, sInv, proof.B)...)
	points = append(points, v.hVec...)
	scalars = append(scalars, g.Scalar().Mul(proof.A, proof.B))
	points = append(points, v.u)
	for j, x := range challenges {
		x2 := g.Scalar().Mul(x, x)
		xInv2 := g.Scalar().Mul(inv[j], inv[j])
		scalars = append(scalars, x2.Neg(x2), xInv2.Neg(xInv2))
		points = append(points, proof.L[j], proof.R[j])
	}
	lhs := zeromt.MultiScalarMul(g, scalars, points)

	rhs := g.Point().Add(v.p, g.Point().Mul(v.c, v.u))
	if !lhs.Equal(rhs) {
		return v.reject("multiscalar", zeromt.ErrProofValidation)
	}
	return nil
}

// replay absorbs the rounds of the proof and returns the challenges.
func (v *Verifier) replay(proof *Proof, tr *transcript.Transcript) ([]Scalar, error) {
	tr.DomainSeparate(domainLabel)
	challenges := make([]Scalar, len(proof.L))
	for j := range proof.L {
		if err := tr.ValidateAndAppendPoint("l", proof.L[j]); err != nil {
			return nil, v.reject("L", err)
		}
		if err := tr.ValidateAndAppendPoint("r", proof.R[j]); err != nil {
			return nil, v.reject("R", err)
		}
		challenges[j] = tr.ChallengeScalar(v.group, "x")
	}
	tr.AppendScalar("a", proof.A)
	tr.AppendScalar("b", proof.B)
	return challenges, nil
}

func (v *Verifier) reject(check string, err error) error {
	zeromt.Logger().Debug().Str("protocol", domainLabel).Int("size", len(v.gVec)).Str("check", check).Msg("proof rejected")
	return errors.Wrapf(err, "inner product: %s", check)
}

// foldWeights returns the weight of every base after all the rounds, the
// first round deciding the most significant bit of the index:
// a base of the low half is multiplied by lo[j] and of the high half by hi[j].
func foldWeights(g Group, lo, hi []Scalar) []Scalar {
	s := []Scalar{g.Scalar().One()}
	for j := range lo {
		next := make([]Scalar, 2*len(s))
		for i := range s {
			next[2*i] = g.Scalar().Mul(s[i], lo[j])
			next[2*i+1] = g.Scalar().Mul(s[i], hi[j])
		}
		s = next
	}
	return s
}
