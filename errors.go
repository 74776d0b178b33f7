package zeromt

import "github.com/pkg/errors"

var (
	// ErrProofValidation is returned when the final algebraic check of a
	// verifier fails. Callers should treat it as "proof rejected".
	ErrProofValidation = errors.New("proof validation error")
	// ErrMalformedProof is returned when a proof doesn't have the shape the
	// verifier expects (missing elements, wrong number of rounds).
	ErrMalformedProof = errors.Wrap(ErrProofValidation, "malformed proof")
	// ErrPointValidation is returned when an untrusted point is the identity.
	ErrPointValidation = errors.New("point is the identity")
	// ErrPointSerialization is returned when a point can't be encoded.
	ErrPointSerialization = errors.New("point serialization error")
	// ErrMath signals two vectors of different lengths given to an operation
	// expecting equal lengths. It is a programming error and is raised
	// through a panic.
	ErrMath = errors.New("vector length mismatch")
	// ErrValueOutOfRange is returned when a witness value doesn't fit in n
	// bits.
	ErrValueOutOfRange = errors.New("value out of range")
	// ErrInvalidParameters is returned on unusable sizes or bases.
	ErrInvalidParameters = errors.New("invalid parameters")
)

func checkLen(op string, a, b int) {
	if a != b {
		panic(errors.Wrapf(ErrMath, "%s: %d != %d", op, a, b))
	}
}
