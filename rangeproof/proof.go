package rangeproof

import (
	zeromt "github.com/EmanueleSc/ZeroMT"
	poly "github.com/EmanueleSc/ZeroMT/polynomial"
	"github.com/drand/kyber"
)

// Group has points on it and can create scalar from the scalar fields
type Group = kyber.Group

// Scalar of the field of the curve
type Scalar = kyber.Scalar

// Point in the group (in our case it's elliptic curve so it's a point)
type Point = kyber.Point

// Proof is the aggregated range proof sent to the verifier.
type Proof struct {
	// A and S commit to the bits and to the blinding vectors
	A Point
	S Point
	// T1 and T2 commit to the coefficients of t(X)
	T1 Point
	T2 Point
	// THat is t(x)
	THat Scalar
	// Mu blinds A + x*S
	Mu Scalar
	// At, SAb and STau prove knowledge of the opening of t(x) without
	// revealing tau_x
	At   Point
	SAb  Scalar
	STau Scalar
}

// Challenges derived from the transcript during one range proof.
type Challenges struct {
	X, Y, Z, C Scalar
}

// Opening is the prover side output handed to an inner product argument:
// the evaluated vectors l(x) and r(x) with <L,R> = t(x).
type Opening struct {
	Challenges
	L []Scalar
	R []Scalar
	// T holds (t0, t1, t2), the Halo backend commits to them
	T poly.Poly
}

// MarshalBinary writes the fields in declaration order.
func (p *Proof) MarshalBinary() ([]byte, error) {
	var e zeromt.Encoder
	e.Point(p.A)
	e.Point(p.S)
	e.Point(p.T1)
	e.Point(p.T2)
	e.Scalar(p.THat)
	e.Scalar(p.Mu)
	e.Point(p.At)
	e.Scalar(p.SAb)
	e.Scalar(p.STau)
	return e.Bytes()
}

// Decode reads a proof written by MarshalBinary.
func Decode(g Group, data []byte) (*Proof, error) {
	d := zeromt.NewDecoder(g, data)
	p := &Proof{
		A:    d.Point(),
		S:    d.Point(),
		T1:   d.Point(),
		T2:   d.Point(),
		THat: d.Scalar(),
		Mu:   d.Scalar(),
		At:   d.Point(),
		SAb:  d.Scalar(),
		STau: d.Scalar(),
	}
	if err := d.Done(); err != nil {
		return nil, err
	}
	return p, nil
}
