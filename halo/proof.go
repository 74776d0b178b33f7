// Package halo implements a Halo style inner product argument for the
// coefficients of a degree 2 polynomial. The three element vector is folded
// in two rounds and the last folded coefficient is never revealed: the
// prover opens the folded commitment with a Schnorr proof instead.
package halo

import (
	zeromt "github.com/EmanueleSc/ZeroMT"
	"github.com/drand/kyber"
	"github.com/pkg/errors"
)

// Group has points on it and can create scalar from the scalar fields
type Group = kyber.Group

// Scalar of the field of the curve
type Scalar = kyber.Scalar

// Point in the group (in our case it's elliptic curve so it's a point)
type Point = kyber.Point

// Size is the length of the vectors the argument runs over.
const Size = 3

// Rounds is the number of folding rounds, Size-1.
const Rounds = Size - 1

// Proof has the same size whatever the size of the range proof it comes
// from.
type Proof struct {
	L     []Point
	R     []Point
	RComm Point
	Z1    Scalar
	Z2    Scalar
}

func (p *Proof) MarshalBinary() ([]byte, error) {
	if len(p.L) != Rounds || len(p.R) != Rounds {
		return nil, errors.Wrapf(zeromt.ErrMalformedProof, "halo proof with %d/%d rounds", len(p.L), len(p.R))
	}
	var e zeromt.Encoder
	e.Points(p.L)
	e.Points(p.R)
	e.Point(p.RComm)
	e.Scalar(p.Z1)
	e.Scalar(p.Z2)
	return e.Bytes()
}

func Decode(g Group, data []byte) (*Proof, error) {
	d := zeromt.NewDecoder(g, data)
	p := &Proof{
		L:     d.Points(Rounds),
		R:     d.Points(Rounds),
		RComm: d.Point(),
		Z1:    d.Scalar(),
		Z2:    d.Scalar(),
	}
	if err := d.Done(); err != nil {
		return nil, err
	}
	return p, nil
}

// LagrangeVector returns (1, x, x^2): <t,b> is then t(x).
func LagrangeVector(g Group, x Scalar) []Scalar {
	return zeromt.Powers(g, x, Size)
}

var roundLabels = [Rounds]struct{ l, r, m string }{
	{"l_one", "r_one", "m_one"},
	{"l_zero", "r_zero", "m_zero"},
}

const domainLabel = "InnerHaloArgument"

func checkSizes(gVec []Point, vecs ...[]Scalar) error {
	if len(gVec) != Size {
		return errors.Wrapf(zeromt.ErrInvalidParameters, "halo: %d bases instead of %d", len(gVec), Size)
	}
	for _, v := range vecs {
		if len(v) != Size {
			return errors.Wrapf(zeromt.ErrInvalidParameters, "halo: vector of %d instead of %d", len(v), Size)
		}
	}
	return nil
}
