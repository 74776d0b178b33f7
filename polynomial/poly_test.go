package poly

import (
	"testing"

	zeromt "github.com/EmanueleSc/ZeroMT"
	"github.com/drand/kyber/group/edwards25519"
	"github.com/drand/kyber/util/random"
	"github.com/stretchr/testify/require"
)

var group = edwards25519.NewBlakeSHA256Ed25519()

func scalar(i int) Scalar {
	return group.Scalar().SetInt64(int64(i))
}

func TestPolyEval(t *testing.T) {
	// p(x) = 1 + x at 1
	p := NewPolyFrom(group, []Scalar{scalar(1), scalar(1)})
	require.True(t, p.Eval(scalar(1)).Equal(scalar(2)))

	// p(x) = 3 + 2x + x^2 at 4 = 3 + 8 + 16
	p = NewPolyFrom(group, []Scalar{scalar(3), scalar(2), scalar(1)})
	require.True(t, p.Eval(scalar(4)).Equal(scalar(27)))
	require.True(t, p.Eval(scalar(0)).Equal(scalar(3)))

	// the zero polynomial
	require.True(t, NewPolyFrom(group, nil).Eval(scalar(5)).Equal(scalar(0)))
}

func TestVectorPolyT(t *testing.T) {
	n := 16
	l := NewVectorPoly(group,
		zeromt.RandomScalars(group, n, random.New()),
		zeromt.RandomScalars(group, n, random.New()))
	r := NewVectorPoly(group,
		zeromt.RandomScalars(group, n, random.New()),
		zeromt.RandomScalars(group, n, random.New()))
	tp := TCoefficients(group, l, r)
	require.Len(t, tp.Coeffs(), 3)

	// t(x) = <l(x),r(x)> for any x
	x := group.Scalar().Pick(random.New())
	exp := zeromt.InnerProduct(group, l.Eval(x), r.Eval(x))
	require.True(t, tp.Eval(x).Equal(exp))

	// l(0) = l0
	for i, s := range l.Eval(scalar(0)) {
		require.True(t, s.Equal(l.Const[i]))
	}
}

func TestVectorPolyLengthMismatch(t *testing.T) {
	require.Panics(t, func() {
		NewVectorPoly(group, zeromt.RandomScalars(group, 2, random.New()), zeromt.RandomScalars(group, 3, random.New()))
	})
}
