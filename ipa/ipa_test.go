package ipa

import (
	"fmt"
	"testing"

	zeromt "github.com/EmanueleSc/ZeroMT"
	"github.com/EmanueleSc/ZeroMT/transcript"
	"github.com/drand/kyber/group/edwards25519"
	"github.com/drand/kyber/util/random"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

var group = edwards25519.NewBlakeSHA256Ed25519()

type statement struct {
	gVec, hVec []Point
	u          Point
	a, b       []Scalar
	p          Point
	c          Scalar
}

func newStatement(n int) *statement {
	s := &statement{
		gVec: randomPoints(n),
		hVec: randomPoints(n),
		u:    group.Point().Pick(random.New()),
		a:    zeromt.RandomScalars(group, n, random.New()),
		b:    zeromt.RandomScalars(group, n, random.New()),
	}
	s.p = zeromt.VectorPedersen(group, group.Scalar().Zero(), s.u, s.a, s.gVec, s.b, s.hVec)
	s.c = zeromt.InnerProduct(group, s.a, s.b)
	return s
}

func randomPoints(n int) []Point {
	out := make([]Point, n)
	for i := range out {
		out[i] = group.Point().Pick(random.New())
	}
	return out
}

func (s *statement) prove(t testing.TB, label string) *Proof {
	prover, err := NewProver(group, s.gVec, s.hVec, s.p, s.c, s.a, s.b, s.u)
	require.NoError(t, err)
	proof, err := prover.GenerateProof(transcript.New(label))
	require.NoError(t, err)
	return proof
}

func (s *statement) verifier(t testing.TB) *Verifier {
	v, err := NewVerifier(group, s.gVec, s.hVec, s.p, s.c, s.u)
	require.NoError(t, err)
	return v
}

func TestInnerProductCompleteness(t *testing.T) {
	for n := 1; n <= 64; n *= 2 {
		t.Run(fmt.Sprintf("N=%d", n), func(t *testing.T) {
			s := newStatement(n)
			proof := s.prove(t, "test")
			require.Equal(t, zeromt.Log2(n), proof.Rounds())

			v := s.verifier(t)
			require.NoError(t, v.VerifyProof(proof, transcript.New("test")))
			require.NoError(t, v.VerifyProofMultiscalar(proof, transcript.New("test")))
		})
	}
}

func TestInnerProductTranscriptLabel(t *testing.T) {
	s := newStatement(8)
	proof := s.prove(t, "alice")
	v := s.verifier(t)
	err := v.VerifyProof(proof, transcript.New("bob"))
	require.Equal(t, zeromt.ErrProofValidation, errors.Cause(err))
	err = v.VerifyProofMultiscalar(proof, transcript.New("bob"))
	require.Equal(t, zeromt.ErrProofValidation, errors.Cause(err))
}

func TestInnerProductTampered(t *testing.T) {
	n := 16
	s := newStatement(n)
	v := s.verifier(t)

	for name, tamper := range map[string]func(p *Proof){
		"a": func(p *Proof) { p.A = group.Scalar().Add(p.A, group.Scalar().One()) },
		"b": func(p *Proof) { p.B = group.Scalar().Pick(random.New()) },
		"L": func(p *Proof) { p.L[1] = group.Point().Pick(random.New()) },
		"R": func(p *Proof) { p.R[3] = group.Point().Pick(random.New()) },
		"swap": func(p *Proof) {
			p.L[0], p.R[0] = p.R[0], p.L[0]
		},
		"rounds": func(p *Proof) { p.L, p.R = p.L[1:], p.R[1:] },
	} {
		t.Run(name, func(t *testing.T) {
			proof := s.prove(t, "test")
			tamper(proof)
			err1 := v.VerifyProof(proof, transcript.New("test"))
			err2 := v.VerifyProofMultiscalar(proof, transcript.New("test"))
			require.Error(t, err1)
			require.Error(t, err2)
			require.Equal(t, zeromt.ErrProofValidation, errors.Cause(err1))
			require.Equal(t, zeromt.ErrProofValidation, errors.Cause(err2))
		})
	}
}

func TestInnerProductWrongStatement(t *testing.T) {
	s := newStatement(8)
	proof := s.prove(t, "test")

	v, err := NewVerifier(group, s.gVec, s.hVec, s.p, group.Scalar().Add(s.c, group.Scalar().One()), s.u)
	require.NoError(t, err)
	require.Error(t, v.VerifyProof(proof, transcript.New("test")))
	require.Error(t, v.VerifyProofMultiscalar(proof, transcript.New("test")))
}

func TestInnerProductIdentityPoint(t *testing.T) {
	s := newStatement(4)
	proof := s.prove(t, "test")
	proof.L[0] = group.Point().Null()
	err := s.verifier(t).VerifyProof(proof, transcript.New("test"))
	require.Equal(t, zeromt.ErrPointValidation, errors.Cause(err))
}

func TestInnerProductInvalidParameters(t *testing.T) {
	s := newStatement(4)
	_, err := NewProver(group, s.gVec[:3], s.hVec[:3], s.p, s.c, s.a[:3], s.b[:3], s.u)
	require.Equal(t, zeromt.ErrInvalidParameters, errors.Cause(err))
	_, err = NewProver(group, s.gVec, s.hVec, s.p, s.c, s.a[:2], s.b, s.u)
	require.Equal(t, zeromt.ErrInvalidParameters, errors.Cause(err))
	_, err = NewVerifier(group, s.gVec, s.hVec[:2], s.p, s.c, s.u)
	require.Equal(t, zeromt.ErrInvalidParameters, errors.Cause(err))
}

func TestInnerProductEncoding(t *testing.T) {
	s := newStatement(32)
	proof := s.prove(t, "test")
	buf, err := proof.MarshalBinary()
	require.NoError(t, err)
	// 2 scalars and 2*log2(N) points
	require.Len(t, buf, 2*group.ScalarLen()+2*5*group.PointLen())

	decoded, err := Decode(group, buf)
	require.NoError(t, err)
	require.Equal(t, proof.Rounds(), decoded.Rounds())
	require.True(t, proof.A.Equal(decoded.A))
	require.True(t, proof.B.Equal(decoded.B))
	for i := range proof.L {
		require.True(t, proof.L[i].Equal(decoded.L[i]))
		require.True(t, proof.R[i].Equal(decoded.R[i]))
	}
	require.NoError(t, s.verifier(t).VerifyProofMultiscalar(decoded, transcript.New("test")))

	_, err = Decode(group, buf[:len(buf)-1])
	require.Equal(t, zeromt.ErrProofValidation, errors.Cause(err))
}

func TestFoldWeights(t *testing.T) {
	x1 := group.Scalar().SetInt64(3)
	x2 := group.Scalar().SetInt64(5)
	lo := []Scalar{group.Scalar().SetInt64(2), group.Scalar().SetInt64(7)}
	hi := []Scalar{x1, x2}
	s := foldWeights(group, lo, hi)
	// index 2 = 0b10: high half at the first round, low half at the second
	require.Len(t, s, 4)
	require.True(t, s[0].Equal(group.Scalar().SetInt64(14)))
	require.True(t, s[1].Equal(group.Scalar().SetInt64(10)))
	require.True(t, s[2].Equal(group.Scalar().SetInt64(21)))
	require.True(t, s[3].Equal(group.Scalar().SetInt64(15)))
}
