// Package transcript implements the Fiat-Shamir transcript shared by the range
// proof and the inner product arguments. It is a thin layer over merlin (a
// STROBE based transcript) that knows how to absorb kyber scalars and points
// and how to squeeze a challenge scalar out of it.
//
// Both prover and verifier own an independent transcript initialized with the
// same label. The sequence of appends and challenges must be identical on both
// sides otherwise all subsequent challenges diverge.
package transcript

import (
	zeromt "github.com/EmanueleSc/ZeroMT"
	"github.com/drand/kyber"
	"github.com/gtank/merlin"
	"github.com/pkg/errors"
)

// challengeLen is twice the width of the scalar fields used, the wide output
// is reduced modulo the group order to avoid any modulo bias.
const challengeLen = 64

var domSep = []byte("dom-sep")

// Transcript is the append only Fiat-Shamir state of one proof session. It
// must not be shared between the prover and the verifier.
type Transcript struct {
	m *merlin.Transcript
}

// New returns a transcript initialized with the given application label.
func New(label string) *Transcript {
	return &Transcript{m: merlin.NewTranscript(label)}
}

// DomainSeparate appends the label of a sub protocol.
func (t *Transcript) DomainSeparate(label string) {
	t.m.AppendMessage(domSep, []byte(label))
}

// AppendScalar absorbs the canonical encoding of s. Scalars of the kyber
// groups always encode so a failure here is a programming error.
func (t *Transcript) AppendScalar(label string, s kyber.Scalar) {
	buf, err := s.MarshalBinary()
	if err != nil {
		panic(errors.Wrapf(err, "transcript: encoding scalar %q", label))
	}
	t.m.AppendMessage([]byte(label), buf)
}

// AppendPoint absorbs the canonical encoding of p.
func (t *Transcript) AppendPoint(label string, p kyber.Point) error {
	if p == nil {
		return errors.Wrapf(zeromt.ErrPointSerialization, "transcript: nil point %q", label)
	}
	buf, err := p.MarshalBinary()
	if err != nil {
		return errors.Wrapf(zeromt.ErrPointSerialization, "transcript: point %q: %v", label, err)
	}
	t.m.AppendMessage([]byte(label), buf)
	return nil
}

// ValidateAndAppendPoint refuses the identity before absorbing p. The identity
// never shows up in an honest proof and it can satisfy some of the
// multiplicative checks trivially.
func (t *Transcript) ValidateAndAppendPoint(label string, p kyber.Point) error {
	if zeromt.IsIdentity(p) {
		return errors.Wrapf(zeromt.ErrPointValidation, "transcript: point %q", label)
	}
	return t.AppendPoint(label, p)
}

// ChallengeScalar squeezes a challenge out of the transcript.
func (t *Transcript) ChallengeScalar(g kyber.Group, label string) kyber.Scalar {
	buf := t.m.ExtractBytes([]byte(label), challengeLen)
	return g.Scalar().SetBytes(buf)
}
