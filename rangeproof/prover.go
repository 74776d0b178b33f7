package rangeproof

import (
	"crypto/cipher"

	zeromt "github.com/EmanueleSc/ZeroMT"
	poly "github.com/EmanueleSc/ZeroMT/polynomial"
	"github.com/EmanueleSc/ZeroMT/transcript"
	"github.com/pkg/errors"
)

// domainLabel separates the range proof from the other protocols sharing the
// transcript.
const domainLabel = "RangeProof"

// Prover proves that the remaining balance and every amount lie in [0,2^n).
type Prover struct {
	group   Group
	g, h    Point
	balance uint64
	amounts []uint64
	gVec    []Point
	hVec    []Point
	m, n    int
}

// NewProver checks the parameters and the witness. gVec and hVec must hold at
// least (len(amounts)+1)*n bases, only the first ones are used.
func NewProver(group Group, g, h Point, balance uint64, amounts []uint64, gVec, hVec []Point, n int) (*Prover, error) {
	m := len(amounts) + 1
	if err := checkSizes(m, n); err != nil {
		return nil, err
	}
	if len(gVec) < m*n || len(hVec) < m*n {
		return nil, errors.Wrapf(zeromt.ErrInvalidParameters, "range prover: %d/%d bases for %d bits", len(gVec), len(hVec), m*n)
	}
	if err := CheckRange(balance, n); err != nil {
		return nil, errors.Wrap(err, "range prover: balance")
	}
	for i, a := range amounts {
		if err := CheckRange(a, n); err != nil {
			return nil, errors.Wrapf(err, "range prover: amount %d", i)
		}
	}
	return &Prover{
		group:   group,
		g:       g,
		h:       h,
		balance: balance,
		amounts: append([]uint64(nil), amounts...),
		gVec:    gVec[:m*n],
		hVec:    hVec[:m*n],
		m:       m,
		n:       n,
	}, nil
}

func checkSizes(m, n int) error {
	if n < 1 || n > 64 {
		return errors.Wrapf(zeromt.ErrInvalidParameters, "bit size %d not in [1,64]", n)
	}
	if m < 1 || !zeromt.IsPowerOfTwo(m*n) {
		return errors.Wrapf(zeromt.ErrInvalidParameters, "m*n = %d*%d is not a power of two", m, n)
	}
	return nil
}

// GenerateProof runs the prover against the transcript. The returned opening
// must only be given to the inner product prover, it reveals the witness.
func (p *Prover) GenerateProof(rand cipher.Stream, tr *transcript.Transcript) (*Proof, *Opening, error) {
	g := p.group
	N := p.m * p.n
	zeromt.Logger().Debug().Str("protocol", domainLabel).Int("m", p.m).Int("n", p.n).Msg("generating proof")
	tr.DomainSeparate(domainLabel)

	alpha := g.Scalar().Pick(rand)
	rho := g.Scalar().Pick(rand)

	aL := BitVector(g, p.balance, p.amounts, p.n)
	aR := zeromt.SubScalar(g, aL, g.Scalar().One())
	sL := zeromt.RandomScalars(g, N, rand)
	sR := zeromt.RandomScalars(g, N, rand)

	A := zeromt.VectorPedersen(g, alpha, p.h, aL, p.gVec, aR, p.hVec)
	S := zeromt.VectorPedersen(g, rho, p.h, sL, p.gVec, sR, p.hVec)
	if err := appendPoints(tr, []string{"A", "S"}, A, S); err != nil {
		return nil, nil, err
	}
	y := tr.ChallengeScalar(g, "y")
	z := tr.ChallengeScalar(g, "z")

	yN := zeromt.Powers(g, y, N)
	l := poly.NewVectorPoly(g, zeromt.SubScalar(g, aL, z), sL)
	r := poly.NewVectorPoly(g,
		zeromt.AddVectors(g, zeromt.Hadamard(g, yN, zeromt.AddScalar(g, aR, z)), zVector(g, z, p.m, p.n)),
		zeromt.Hadamard(g, yN, sR))
	t := poly.TCoefficients(g, l, r)
	coeffs := t.Coeffs()

	tau1 := g.Scalar().Pick(rand)
	tau2 := g.Scalar().Pick(rand)
	T1 := zeromt.Pedersen(g, coeffs[1], p.g, tau1, p.h)
	T2 := zeromt.Pedersen(g, coeffs[2], p.g, tau2, p.h)
	if err := appendPoints(tr, []string{"T1", "T2"}, T1, T2); err != nil {
		return nil, nil, err
	}
	x := tr.ChallengeScalar(g, "x")

	lx := l.Eval(x)
	rx := r.Eval(x)
	// t(x) = <l(x),r(x)>
	tHat := t.Eval(x)
	// tau_x = x*tau1 + x^2*tau2
	taux := g.Scalar().Mul(x, tau1)
	taux.Add(taux, g.Scalar().Mul(g.Scalar().Mul(x, x), tau2))
	mu := g.Scalar().Add(alpha, g.Scalar().Mul(rho, x))

	kab := g.Scalar().Pick(rand)
	ktau := g.Scalar().Pick(rand)
	At := zeromt.Pedersen(g, g.Scalar().Neg(kab), p.g, ktau, p.h)
	tr.AppendScalar("t_hat", tHat)
	tr.AppendScalar("mu", mu)
	if err := appendPoints(tr, []string{"A_t"}, At); err != nil {
		return nil, nil, err
	}
	c := tr.ChallengeScalar(g, "c")

	// s_ab = k_ab + c*(b*z^2 + SUM a_i*z^(2+i))
	sab := g.Scalar().Mul(c, p.weightedValues(z))
	sab.Add(sab, kab)
	stau := g.Scalar().Mul(taux, c)
	stau.Add(stau, ktau)
	tr.AppendScalar("s_ab", sab)
	tr.AppendScalar("s_tau", stau)

	proof := &Proof{
		A:    A,
		S:    S,
		T1:   T1,
		T2:   T2,
		THat: tHat,
		Mu:   mu,
		At:   At,
		SAb:  sab,
		STau: stau,
	}
	open := &Opening{
		Challenges: Challenges{X: x, Y: y, Z: z, C: c},
		L:          lx,
		R:          rx,
		T:          t,
	}
	return proof, open, nil
}

// IPAArguments returns the bases and commitment the inner product argument
// proves the opening L,R against.
func (p *Prover) IPAArguments(proof *Proof, open *Opening) ([]Point, Point, error) {
	return IPAArguments(p.group, p.h, p.gVec, p.hVec, p.m, p.n, &open.Challenges, proof.Mu, proof.A, proof.S)
}

// weightedValues returns b*z^2 + SUM_i a_i*z^(2+i)
func (p *Prover) weightedValues(z Scalar) Scalar {
	g := p.group
	acc := g.Scalar().Zero()
	zj := g.Scalar().Mul(z, z)
	for _, v := range append([]uint64{p.balance}, p.amounts...) {
		acc.Add(acc, g.Scalar().Mul(zeromt.ScalarFromUint64(g, v), zj))
		zj = g.Scalar().Mul(zj, z)
	}
	return acc
}

// zVector returns the vector whose j-th block of n entries (j = 1..m) is
// z^(1+j) * (1, 2, 4, ..., 2^(n-1)).
func zVector(g Group, z Scalar, m, n int) []Scalar {
	twoN := zeromt.Powers(g, g.Scalar().SetInt64(2), n)
	out := make([]Scalar, 0, m*n)
	zj := g.Scalar().Mul(z, z)
	for j := 1; j <= m; j++ {
		out = append(out, zeromt.ScaleVector(g, twoN, zj)...)
		zj = g.Scalar().Mul(zj, z)
	}
	return out
}

func appendPoints(tr *transcript.Transcript, labels []string, points ...Point) error {
	for i, p := range points {
		if err := tr.ValidateAndAppendPoint(labels[i], p); err != nil {
			return errors.Wrap(err, "range proof")
		}
	}
	return nil
}
