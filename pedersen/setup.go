package pedersen

import (
	"crypto/cipher"
	"encoding/binary"

	zeromt "github.com/EmanueleSc/ZeroMT"
	"github.com/drand/kyber"
	"github.com/drand/kyber/util/random"
	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
)

// Group has points on it and can create scalar from the scalar fields
type Group = kyber.Group

// Scalar of the field of the curve
type Scalar = kyber.Scalar

// Point in the group (in our case it's elliptic curve so it's a point)
type Point = kyber.Point

// HaloSize is the number of coefficients of t(X) committed by the Halo inner
// product argument: the range proof always yields a degree 2 polynomial.
const HaloSize = 3

// MaxBits is the largest bit size a value can be proven in.
const MaxBits = 64

// Setup contains all the public bases of a proof session. Prover and verifier
// derive it independently from the same (group, m, n) and must end up with the
// exact same points.
type Setup struct {
	// M is the number of values aggregated in one proof (the remaining
	// balance and the m-1 transfer amounts)
	M int
	// N is the number of bits of each value
	N int

	// G is the group base point, H and U are independent bases with unknown
	// discrete logarithm
	G Point
	H Point
	U Point

	// GVec and HVec have length M*N
	GVec []Point
	HVec []Point
	// HaloVec are the bases of the commitment to t(X) coefficients
	HaloVec []Point
}

// NewSetup derives the bases for proving m values of n bits each. m*n must be
// a power of two since the inner product arguments halve the vectors.
func NewSetup(g Group, m, n int) (*Setup, error) {
	if n < 1 || n > MaxBits {
		return nil, errors.Wrapf(zeromt.ErrInvalidParameters, "setup: bit size %d not in [1,%d]", n, MaxBits)
	}
	if m < 1 || !zeromt.IsPowerOfTwo(m*n) {
		return nil, errors.Wrapf(zeromt.ErrInvalidParameters, "setup: m*n = %d*%d is not a power of two", m, n)
	}
	return &Setup{
		M:       m,
		N:       n,
		G:       g.Point().Base(),
		H:       Derive(g, "H", 1)[0],
		U:       Derive(g, "U", 1)[0],
		GVec:    Derive(g, "G_vec", m*n),
		HVec:    Derive(g, "H_vec", m*n),
		HaloVec: Derive(g, "Halo_vec", HaloSize),
	}, nil
}

// Derive returns count points derived from the label. Nobody knows the
// discrete logarithm of the points relative to each other.
func Derive(g Group, label string, count int) []Point {
	out := make([]Point, count)
	for i := 0; i < count; i++ {
		out[i] = g.Point().Pick(oracle(g, label, i))
	}
	return out
}

// returns an oracle for deriving the pos-th point of a vector of bases
func oracle(g Group, label string, pos int) cipher.Stream {
	var h = sha3.NewShake256()
	h.Write([]byte("zeromt-generators"))
	h.Write([]byte(g.String()))
	h.Write([]byte(label))
	binary.Write(h, binary.LittleEndian, uint64(pos))
	return random.New(h)
}
