package rangeproof

import (
	zeromt "github.com/EmanueleSc/ZeroMT"
	"github.com/EmanueleSc/ZeroMT/transcript"
	"github.com/pkg/errors"
)

// Verifier checks a range proof over m values of n bits.
type Verifier struct {
	group Group
	g, h  Point
	m, n  int
}

func NewVerifier(group Group, g, h Point, m, n int) (*Verifier, error) {
	if err := checkSizes(m, n); err != nil {
		return nil, err
	}
	return &Verifier{group: group, g: g, h: h, m: m, n: n}, nil
}

// VerifyProof replays the transcript and checks
//
//	(c*t - c*delta(y,z) - s_ab)*g + s_tau*h == A_t + c*x*T1 + c*x^2*T2
//
// The challenges derived so far are returned even when the proof is rejected.
func (v *Verifier) VerifyProof(proof *Proof, tr *transcript.Transcript) (*Challenges, error) {
	g := v.group
	ch := new(Challenges)
	if proof == nil || proof.THat == nil || proof.Mu == nil || proof.SAb == nil || proof.STau == nil {
		return ch, v.reject("missing field", zeromt.ErrMalformedProof)
	}
	tr.DomainSeparate(domainLabel)
	if err := appendPoints(tr, []string{"A", "S"}, proof.A, proof.S); err != nil {
		return ch, v.reject("A/S", err)
	}
	ch.Y = tr.ChallengeScalar(g, "y")
	ch.Z = tr.ChallengeScalar(g, "z")
	if err := appendPoints(tr, []string{"T1", "T2"}, proof.T1, proof.T2); err != nil {
		return ch, v.reject("T1/T2", err)
	}
	ch.X = tr.ChallengeScalar(g, "x")
	tr.AppendScalar("t_hat", proof.THat)
	tr.AppendScalar("mu", proof.Mu)
	if err := appendPoints(tr, []string{"A_t"}, proof.At); err != nil {
		return ch, v.reject("A_t", err)
	}
	ch.C = tr.ChallengeScalar(g, "c")
	tr.AppendScalar("s_ab", proof.SAb)
	tr.AppendScalar("s_tau", proof.STau)

	c, x := ch.C, ch.X
	// left = c*t - c*delta - s_ab
	left := g.Scalar().Sub(proof.THat, Delta(g, ch.Y, ch.Z, v.m, v.n))
	left.Mul(left, c)
	left.Sub(left, proof.SAb)
	lhs := zeromt.Pedersen(g, left, v.g, proof.STau, v.h)

	cx := g.Scalar().Mul(c, x)
	cx2 := g.Scalar().Mul(cx, x)
	rhs := zeromt.Pedersen(g, cx, proof.T1, cx2, proof.T2)
	rhs.Add(rhs, proof.At)
	if !lhs.Equal(rhs) {
		return ch, v.reject("opening of t(x)", zeromt.ErrProofValidation)
	}
	return ch, nil
}

// IPAArguments returns the bases and commitment the verifier of the inner
// product argument checks the opening against. gVec and hVec must hold at
// least m*n bases.
func (v *Verifier) IPAArguments(proof *Proof, ch *Challenges, gVec, hVec []Point) ([]Point, Point, error) {
	return IPAArguments(v.group, v.h, gVec, hVec, v.m, v.n, ch, proof.Mu, proof.A, proof.S)
}

func (v *Verifier) reject(check string, err error) error {
	zeromt.Logger().Debug().Str("protocol", domainLabel).Int("m", v.m).Int("n", v.n).Str("check", check).Msg("proof rejected")
	return errors.Wrapf(err, "range proof: %s", check)
}

// Delta returns
//
//	(z - z^2) * SUM_{i<m*n} y^i - SUM_{j=1..m} z^(2+j) * SUM_{i<n} 2^i
func Delta(g Group, y, z Scalar, m, n int) Scalar {
	z2 := g.Scalar().Mul(z, z)
	d := g.Scalar().Sub(z, z2)
	d.Mul(d, zeromt.Sum(g, zeromt.Powers(g, y, m*n)))

	sum2 := zeromt.Sum(g, zeromt.Powers(g, g.Scalar().SetInt64(2), n))
	zj := g.Scalar().Mul(z2, z)
	for j := 1; j <= m; j++ {
		d.Sub(d, g.Scalar().Mul(zj, sum2))
		zj = g.Scalar().Mul(zj, z)
	}
	return d
}
