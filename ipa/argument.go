package ipa

import "github.com/EmanueleSc/ZeroMT/transcript"

// ProofGenerator is the prover side of an inner product argument. The
// recursive argument of this package and the sigma argument both implement
// it so callers pick the backend they want to run.
type ProofGenerator interface {
	GenerateProof(tr *transcript.Transcript) (*Proof, error)
}

// ProofVerifier is the verifier side of an inner product argument.
type ProofVerifier interface {
	VerifyProof(proof *Proof, tr *transcript.Transcript) error
}

var _ ProofGenerator = (*Prover)(nil)
var _ ProofVerifier = (*Verifier)(nil)
