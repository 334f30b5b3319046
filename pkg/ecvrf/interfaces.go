// Package ecvrf implements the ECVRF-SECP256K1-SHA256-TAI verifiable random
// function: the secp256k1 curve, SHA-256, try-and-increment hash-to-curve
// and RFC 6979 nonces, identified by suite byte 0xFE.
//
// A prover holding a secret key turns an input alpha into an 81-byte proof
// pi. Anyone holding the public key can check pi against alpha and derive
// the 32-byte output beta, which is unique for the key and input and looks
// random to anyone without the secret key.
package ecvrf

// Suite is the ciphersuite byte prefixed to every hash.
const Suite byte = 0xFE

// Prover produces VRF proofs with a secret key.
type Prover interface {
	// Prove returns the 81-byte proof for alpha.
	Prove(alpha []byte) ([]byte, error)

	// Public returns the matching public key.
	Public() *PublicKey
}

// Verifier checks VRF proofs against a public key.
type Verifier interface {
	// Verify checks pi against alpha and returns the 32-byte output beta.
	// A proof that does not verify yields an error matching ErrInvalidProof.
	Verify(pi, alpha []byte) ([]byte, error)
}

var (
	_ Prover   = (*PrivateKey)(nil)
	_ Verifier = (*PublicKey)(nil)
)
