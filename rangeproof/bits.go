package rangeproof

import (
	zeromt "github.com/EmanueleSc/ZeroMT"
	"github.com/pkg/errors"
)

// Decompose returns the n low bits of v, least significant bit first. Higher
// bits are silently dropped, e.g. 300 on 8 bits gives the bits of 44. The
// prover refuses such values before getting here, see CheckRange.
func Decompose(v uint64, n int) []uint8 {
	bits := make([]uint8, n)
	for i := 0; i < n && i < 64; i++ {
		bits[i] = uint8((v >> uint(i)) & 1)
	}
	return bits
}

// CheckRange returns ErrValueOutOfRange if v doesn't fit in n bits.
func CheckRange(v uint64, n int) error {
	if n >= 64 {
		return nil
	}
	if v>>uint(n) != 0 {
		return errors.Wrapf(zeromt.ErrValueOutOfRange, "%d does not fit in %d bits", v, n)
	}
	return nil
}

// BitVector builds a_L: the n bits of the balance followed by the n bits of
// every amount.
func BitVector(g Group, balance uint64, amounts []uint64, n int) []Scalar {
	values := append([]uint64{balance}, amounts...)
	out := make([]Scalar, 0, len(values)*n)
	for _, v := range values {
		for _, b := range Decompose(v, n) {
			out = append(out, g.Scalar().SetInt64(int64(b)))
		}
	}
	return out
}
