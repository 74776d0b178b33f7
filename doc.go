// Package zeromt holds the algebra shared by the ZeroMT proofs: scalar and
// point vectors, Pedersen commitments, the sentinel errors and the package
// logger.
//
// The proofs themselves live in sub packages. rangeproof proves that a
// remaining balance and a list of transfer amounts are all in [0,2^n) and
// reduces that statement to an inner product relation
//
//	P = <l,G> + <r,H'>   with   <l,r> = t_hat
//
// which is then proven by one of the inner product arguments: ipa implements
// the recursive argument of the bulletproof paper
// https://eprint.iacr.org/2017/1066.pdf, ipa/sigma a sigma style variant and
// halo a constant size argument over the three coefficients of t(X).
//
// Every protocol is generic over a kyber.Group. Group is the default one,
// BLS12-381 G1.
package zeromt
