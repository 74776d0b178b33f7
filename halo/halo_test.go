package halo

import (
	"testing"

	zeromt "github.com/EmanueleSc/ZeroMT"
	"github.com/EmanueleSc/ZeroMT/pedersen"
	poly "github.com/EmanueleSc/ZeroMT/polynomial"
	"github.com/EmanueleSc/ZeroMT/transcript"
	"github.com/drand/kyber/group/edwards25519"
	"github.com/drand/kyber/util/random"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

var group = edwards25519.NewBlakeSHA256Ed25519()

type fixture struct {
	gVec []Point
	h, u Point
	t    poly.Poly
	r    Scalar
	T    Point
	b    []Scalar
	tHat Scalar
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		gVec: pedersen.Derive(group, "halo-test", Size),
		h:    group.Point().Pick(random.New()),
		u:    group.Point().Pick(random.New()),
		t:    poly.NewPolyFrom(group, zeromt.RandomScalars(group, Size, random.New())),
		r:    group.Scalar().Pick(random.New()),
	}
	var err error
	f.T, err = pedersen.CommitPoly(group, f.gVec, f.h, f.t.Coeffs(), f.r)
	require.NoError(t, err)
	x := group.Scalar().Pick(random.New())
	f.b = LagrangeVector(group, x)
	f.tHat = f.t.Eval(x)
	return f
}

func (f *fixture) prove(t *testing.T) *Proof {
	p, err := NewProver(group, f.gVec, f.h, f.T, f.r, f.tHat, f.t.Coeffs(), f.b, f.u)
	require.NoError(t, err)
	proof, err := p.GenerateProof(random.New(), transcript.New("halo"))
	require.NoError(t, err)
	return proof
}

func (f *fixture) verify(t *testing.T, proof *Proof, label string) error {
	v, err := NewVerifier(group, f.gVec, f.b, f.h, f.T, f.tHat, f.u)
	require.NoError(t, err)
	return v.VerifyProof(proof, transcript.New(label))
}

func TestHaloCompleteness(t *testing.T) {
	for i := 0; i < 5; i++ {
		f := newFixture(t)
		require.NoError(t, f.verify(t, f.prove(t), "halo"))
	}
}

func TestHaloLagrangeVector(t *testing.T) {
	b := LagrangeVector(group, group.Scalar().SetInt64(3))
	require.Len(t, b, Size)
	require.True(t, b[0].Equal(group.Scalar().One()))
	require.True(t, b[2].Equal(group.Scalar().SetInt64(9)))
}

func TestHaloWrongEvaluation(t *testing.T) {
	f := newFixture(t)
	proof := f.prove(t)
	f.tHat = group.Scalar().Add(f.tHat, group.Scalar().One())
	err := f.verify(t, proof, "halo")
	require.Equal(t, zeromt.ErrProofValidation, errors.Cause(err))
}

func TestHaloTampered(t *testing.T) {
	f := newFixture(t)
	for name, tamper := range map[string]func(p *Proof){
		"L":     func(p *Proof) { p.L[0] = group.Point().Pick(random.New()) },
		"R":     func(p *Proof) { p.R[1] = group.Point().Pick(random.New()) },
		"RComm": func(p *Proof) { p.RComm = group.Point().Pick(random.New()) },
		"z1":    func(p *Proof) { p.Z1 = group.Scalar().Add(p.Z1, group.Scalar().One()) },
		"z2":    func(p *Proof) { p.Z2 = group.Scalar().Pick(random.New()) },
		"rounds": func(p *Proof) {
			p.L = p.L[:1]
		},
	} {
		t.Run(name, func(t *testing.T) {
			proof := f.prove(t)
			tamper(proof)
			err := f.verify(t, proof, "halo")
			require.Equal(t, zeromt.ErrProofValidation, errors.Cause(err))
		})
	}

	proof := f.prove(t)
	require.Error(t, f.verify(t, proof, "other"))
}

func TestHaloConstantSize(t *testing.T) {
	f := newFixture(t)
	proof := f.prove(t)
	buf, err := proof.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, buf, 5*group.PointLen()+2*group.ScalarLen())

	decoded, err := Decode(group, buf)
	require.NoError(t, err)
	require.NoError(t, f.verify(t, decoded, "halo"))

	_, err = Decode(group, append(buf, 0))
	require.Equal(t, zeromt.ErrProofValidation, errors.Cause(err))
}

func TestHaloInvalidSizes(t *testing.T) {
	f := newFixture(t)
	_, err := NewProver(group, f.gVec[:2], f.h, f.T, f.r, f.tHat, f.t.Coeffs(), f.b, f.u)
	require.Equal(t, zeromt.ErrInvalidParameters, errors.Cause(err))
	_, err = NewVerifier(group, f.gVec, f.b[:2], f.h, f.T, f.tHat, f.u)
	require.Equal(t, zeromt.ErrInvalidParameters, errors.Cause(err))
}

func TestHaloIdentityPoint(t *testing.T) {
	f := newFixture(t)
	proof := f.prove(t)
	proof.L[0] = group.Point().Null()
	err := f.verify(t, proof, "halo")
	require.Equal(t, zeromt.ErrPointValidation, errors.Cause(err))

	proof = f.prove(t)
	proof.RComm = group.Point().Null()
	err = f.verify(t, proof, "halo")
	require.Equal(t, zeromt.ErrPointValidation, errors.Cause(err))
}
