package sigma

import (
	zeromt "github.com/EmanueleSc/ZeroMT"
	"github.com/EmanueleSc/ZeroMT/ipa"
	"github.com/EmanueleSc/ZeroMT/transcript"
	"github.com/pkg/errors"
)

type Verifier struct {
	group Group
	gVec  []Point
	hVec  []Point
	p     Point
	c     Scalar
	u     Point
}

func NewVerifier(g Group, gVec, hVec []Point, P Point, c Scalar, u Point) (*Verifier, error) {
	if err := ipa.CheckStatement(gVec, hVec, nil, nil); err != nil {
		return nil, errors.Wrap(err, "sigma verifier")
	}
	return &Verifier{group: g, gVec: gVec, hVec: hVec, p: P, c: c, u: u}, nil
}

// VerifyProof starts from T = P + c*yU, folds T' = L + x*T + x^2*R at every
// round and checks T == a*G + b*H + a*b*yU at the end.
func (v *Verifier) VerifyProof(proof *ipa.Proof, tr *transcript.Transcript) error {
	g := v.group
	if err := proof.CheckShape(len(v.gVec)); err != nil {
		return v.reject("shape", err)
	}
	uy, challenges, err := v.replay(proof, tr)
	if err != nil {
		return err
	}

	G := zeromt.ClonePoints(v.gVec)
	H := zeromt.ClonePoints(v.hVec)
	T := g.Point().Add(v.p, g.Point().Mul(v.c, uy))
	one := g.Scalar().One()
	n := len(G)
	for j, x := range challenges {
		h := n / 2
		foldPoints(g, G, h, one, x)
		foldPoints(g, H, h, x, one)
		x2 := g.Scalar().Mul(x, x)
		next := zeromt.Pedersen(g, x, T, x2, proof.R[j])
		T = next.Add(next, proof.L[j])
		n = h
	}

	ab := g.Scalar().Mul(proof.A, proof.B)
	exp := zeromt.Pedersen(g, proof.A, G[0], proof.B, H[0])
	exp.Add(exp, g.Point().Mul(ab, uy))
	if !exp.Equal(T) {
		return v.reject("sequential fold", zeromt.ErrProofValidation)
	}
	return nil
}

// VerifyProofMultiscalar checks the unrolled relation
//
//	<a*s,G> + <b*s',H> + a*b*yU - SUM_j pi_j*(L_j + x_j^2*R_j) == (PROD_j x_j)*(P + c*yU)
//
// with pi_j the product of the challenges of the rounds after j and s' the
// weights s in reverse order.
func (v *Verifier) VerifyProofMultiscalar(proof *ipa.Proof, tr *transcript.Transcript) error {
	g := v.group
	if err := proof.CheckShape(len(v.gVec)); err != nil {
		return v.reject("shape", err)
	}
	uy, challenges, err := v.replay(proof, tr)
	if err != nil {
		return err
	}

	s := []Scalar{g.Scalar().One()}
	for _, x := range challenges {
		next := make([]Scalar, 2*len(s))
		for i := range s {
			next[2*i] = s[i].Clone()
			next[2*i+1] = g.Scalar().Mul(s[i], x)
		}
		s = next
	}
	N := len(s)

	k := len(challenges)
	scalars := make([]Scalar, 0, 2*N+1+2*k)
	points := make([]Point, 0, 2*N+1+2*k)
	scalars = append(scalars, zeromt.ScaleVector(g, s, proof.A)...)
	points = append(points, v.gVec...)
	for i := range v.hVec {
		scalars = append(scalars, g.Scalar().Mul(s[N-1-i], proof.B))
	}
	points = append(points, v.hVec...)
	scalars = append(scalars, g.Scalar().Mul(proof.A, proof.B))
	points = append(points, uy)

	pi := g.Scalar().One()
	for j := k - 1; j >= 0; j-- {
		x := challenges[j]
		x2 := g.Scalar().Mul(x, x)
		scalars = append(scalars, g.Scalar().Neg(pi), g.Scalar().Neg(x2.Mul(x2, pi)))
		points = append(points, proof.L[j], proof.R[j])
		pi = g.Scalar().Mul(pi, x)
	}
	lhs := zeromt.MultiScalarMul(g, scalars, points)

	// pi now holds the product of all the challenges
	rhs := g.Point().Add(v.p, g.Point().Mul(v.c, uy))
	rhs.Mul(pi, rhs)
	if !lhs.Equal(rhs) {
		return v.reject("multiscalar", zeromt.ErrProofValidation)
	}
	return nil
}

func (v *Verifier) replay(proof *ipa.Proof, tr *transcript.Transcript) (Point, []Scalar, error) {
	g := v.group
	tr.DomainSeparate(domainLabel)
	y := tr.ChallengeScalar(g, "y")
	challenges := make([]Scalar, len(proof.L))
	for j := range proof.L {
		if err := tr.ValidateAndAppendPoint("l", proof.L[j]); err != nil {
			return nil, nil, v.reject("L", err)
		}
		if err := tr.ValidateAndAppendPoint("r", proof.R[j]); err != nil {
			return nil, nil, v.reject("R", err)
		}
		challenges[j] = tr.ChallengeScalar(g, "x")
	}
	tr.AppendScalar("a", proof.A)
	tr.AppendScalar("b", proof.B)
	return g.Point().Mul(y, v.u), challenges, nil
}

func (v *Verifier) reject(check string, err error) error {
	zeromt.Logger().Debug().Str("protocol", domainLabel).Int("size", len(v.gVec)).Str("check", check).Msg("proof rejected")
	return errors.Wrapf(err, "sigma: %s", check)
}
