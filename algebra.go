package zeromt

import (
	"crypto/cipher"

	"github.com/drand/kyber"
)

// InnerProduct returns <a,b> = SUM a_i * b_i
func InnerProduct(g kyber.Group, a, b []Scalar) Scalar {
	checkLen("inner product", len(a), len(b))
	acc := g.Scalar().Zero()
	tmp := g.Scalar()
	for i := range a {
		acc.Add(acc, tmp.Mul(a[i], b[i]))
	}
	return acc
}

// Hadamard returns the entry wise product a o b
func Hadamard(g kyber.Group, a, b []Scalar) []Scalar {
	checkLen("hadamard", len(a), len(b))
	out := make([]Scalar, len(a))
	for i := range a {
		out[i] = g.Scalar().Mul(a[i], b[i])
	}
	return out
}

// AddVectors returns a + b
func AddVectors(g kyber.Group, a, b []Scalar) []Scalar {
	checkLen("vector sum", len(a), len(b))
	out := make([]Scalar, len(a))
	for i := range a {
		out[i] = g.Scalar().Add(a[i], b[i])
	}
	return out
}

// SubVectors returns a - b
func SubVectors(g kyber.Group, a, b []Scalar) []Scalar {
	checkLen("vector sub", len(a), len(b))
	out := make([]Scalar, len(a))
	for i := range a {
		out[i] = g.Scalar().Sub(a[i], b[i])
	}
	return out
}

// AddScalar returns v + s*1
func AddScalar(g kyber.Group, v []Scalar, s Scalar) []Scalar {
	out := make([]Scalar, len(v))
	for i := range v {
		out[i] = g.Scalar().Add(v[i], s)
	}
	return out
}

// SubScalar returns v - s*1
func SubScalar(g kyber.Group, v []Scalar, s Scalar) []Scalar {
	out := make([]Scalar, len(v))
	for i := range v {
		out[i] = g.Scalar().Sub(v[i], s)
	}
	return out
}

// ScaleVector returns s * v
func ScaleVector(g kyber.Group, v []Scalar, s Scalar) []Scalar {
	out := make([]Scalar, len(v))
	for i := range v {
		out[i] = g.Scalar().Mul(v[i], s)
	}
	return out
}

// Powers returns the vector (1, x, x^2, ..., x^(n-1))
func Powers(g kyber.Group, x Scalar, n int) []Scalar {
	out := make([]Scalar, n)
	acc := g.Scalar().One()
	for i := 0; i < n; i++ {
		out[i] = acc.Clone()
		acc.Mul(acc, x)
	}
	return out
}

// Sum returns SUM v_i
func Sum(g kyber.Group, v []Scalar) Scalar {
	acc := g.Scalar().Zero()
	for _, s := range v {
		acc.Add(acc, s)
	}
	return acc
}

// CloneVector returns a deep copy of v, used by provers that fold their
// witness in place.
func CloneVector(v []Scalar) []Scalar {
	out := make([]Scalar, len(v))
	for i := range v {
		out[i] = v[i].Clone()
	}
	return out
}

// RandomScalars samples n scalars from the given stream
func RandomScalars(g kyber.Group, n int, rand cipher.Stream) []Scalar {
	out := make([]Scalar, n)
	for i := range out {
		out[i] = g.Scalar().Pick(rand)
	}
	return out
}

// RandomNonZero samples a scalar different from zero
func RandomNonZero(g kyber.Group, rand cipher.Stream) Scalar {
	zero := g.Scalar().Zero()
	for {
		s := g.Scalar().Pick(rand)
		if !s.Equal(zero) {
			return s
		}
	}
}

// IsPowerOfTwo returns true for 1, 2, 4, 8, ...
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Log2 returns the number of halving rounds needed to bring n down to 1. n
// must be a power of two.
func Log2(n int) int {
	k := 0
	for n > 1 {
		n >>= 1
		k++
	}
	return k
}

// InvertVector returns (1/v_0, ..., 1/v_n). Entries must be non zero.
func InvertVector(g kyber.Group, v []Scalar) []Scalar {
	out := make([]Scalar, len(v))
	for i := range v {
		out[i] = g.Scalar().Inv(v[i])
	}
	return out
}
