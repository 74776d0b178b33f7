package zeromt

import (
	"testing"

	"github.com/drand/kyber/group/edwards25519"
	"github.com/drand/kyber/util/random"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

var group = edwards25519.NewBlakeSHA256Ed25519()

func scalar(i int64) Scalar {
	return group.Scalar().SetInt64(i)
}

func scalars(is ...int64) []Scalar {
	out := make([]Scalar, len(is))
	for i, v := range is {
		out[i] = scalar(v)
	}
	return out
}

func TestInnerProduct(t *testing.T) {
	// <(1,2,3),(4,5,6)> = 4 + 10 + 18
	a := scalars(1, 2, 3)
	b := scalars(4, 5, 6)
	require.True(t, InnerProduct(group, a, b).Equal(scalar(32)))
	require.True(t, InnerProduct(group, nil, nil).Equal(scalar(0)))
}

func TestVectorOps(t *testing.T) {
	a := scalars(1, 2, 3)
	b := scalars(4, 5, 6)

	exp := scalars(4, 10, 18)
	for i, s := range Hadamard(group, a, b) {
		require.True(t, s.Equal(exp[i]))
	}
	exp = scalars(5, 7, 9)
	for i, s := range AddVectors(group, a, b) {
		require.True(t, s.Equal(exp[i]))
	}
	exp = scalars(-3, -3, -3)
	for i, s := range SubVectors(group, a, b) {
		require.True(t, s.Equal(exp[i]))
	}
	exp = scalars(0, 1, 2)
	for i, s := range SubScalar(group, a, scalar(1)) {
		require.True(t, s.Equal(exp[i]))
	}
	exp = scalars(3, 4, 5)
	for i, s := range AddScalar(group, a, scalar(2)) {
		require.True(t, s.Equal(exp[i]))
	}
	exp = scalars(3, 6, 9)
	for i, s := range ScaleVector(group, a, scalar(3)) {
		require.True(t, s.Equal(exp[i]))
	}
	// inputs are left untouched
	require.True(t, a[0].Equal(scalar(1)))
}

func TestLengthMismatchPanics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		require.Equal(t, ErrMath, errors.Cause(err))
	}()
	InnerProduct(group, scalars(1, 2), scalars(1))
}

func TestPowers(t *testing.T) {
	p := Powers(group, scalar(2), 5)
	require.Len(t, p, 5)
	for i, s := range p {
		require.True(t, s.Equal(scalar(1<<uint(i))))
	}
	require.True(t, Sum(group, p).Equal(scalar(31)))
}

func TestScalarFromUint64(t *testing.T) {
	require.True(t, ScalarFromUint64(group, 42).Equal(scalar(42)))
	// 2^64 - 1 = (2^32)^2 - 1
	exp := scalar(1 << 32)
	exp.Mul(exp, scalar(1<<32))
	exp.Sub(exp, scalar(1))
	require.True(t, ScalarFromUint64(group, ^uint64(0)).Equal(exp))
}

func TestMultiScalarMul(t *testing.T) {
	n := 8
	ss := RandomScalars(group, n, random.New())
	ps := make([]Point, n)
	exp := group.Point().Null()
	for i := range ps {
		ps[i] = group.Point().Pick(random.New())
		exp.Add(exp, group.Point().Mul(ss[i], ps[i]))
	}
	require.True(t, MultiScalarMul(group, ss, ps).Equal(exp))
	require.True(t, IsIdentity(MultiScalarMul(group, nil, nil)))
}

func TestPedersen(t *testing.T) {
	g := group.Point().Base()
	h := group.Point().Pick(random.New())
	a := group.Scalar().Pick(random.New())
	b := group.Scalar().Pick(random.New())
	c1 := Pedersen(group, a, g, b, h)
	c2 := Pedersen(group, a, g, b, h)
	require.True(t, c1.Equal(c2))
	c3 := Pedersen(group, a, g, group.Scalar().Pick(random.New()), h)
	require.False(t, c1.Equal(c3))

	// the vector commitment with one entry vectors is a three term pedersen
	aL := RandomScalars(group, 1, random.New())
	aR := RandomScalars(group, 1, random.New())
	gs := []Point{group.Point().Pick(random.New())}
	hs := []Point{group.Point().Pick(random.New())}
	vc := VectorPedersen(group, a, h, aL, gs, aR, hs)
	exp := Pedersen(group, aL[0], gs[0], aR[0], hs[0])
	exp.Add(exp, group.Point().Mul(a, h))
	require.True(t, vc.Equal(exp))
}

func TestIsIdentity(t *testing.T) {
	require.True(t, IsIdentity(nil))
	require.True(t, IsIdentity(group.Point().Null()))
	require.False(t, IsIdentity(group.Point().Base()))
}

func TestLog2(t *testing.T) {
	require.Equal(t, 0, Log2(1))
	require.Equal(t, 3, Log2(8))
	require.Equal(t, 8, Log2(256))
	require.True(t, IsPowerOfTwo(64))
	require.False(t, IsPowerOfTwo(48))
	require.False(t, IsPowerOfTwo(0))
}

func TestInvertVector(t *testing.T) {
	v := RandomScalars(group, 4, random.New())
	for i, s := range InvertVector(group, v) {
		require.True(t, group.Scalar().Mul(s, v[i]).Equal(scalar(1)))
	}
	require.False(t, RandomNonZero(group, random.New()).Equal(scalar(0)))
}
