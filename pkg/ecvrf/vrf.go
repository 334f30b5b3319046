package ecvrf

import (
	"math/big"

	"github.com/smallyu/go-ecvrf/internal/crypto/challenge"
	"github.com/smallyu/go-ecvrf/internal/crypto/curves"
	"github.com/smallyu/go-ecvrf/internal/crypto/hashtocurve"
	"github.com/smallyu/go-ecvrf/internal/crypto/nonce"
)

// Prove returns the proof pi for alpha under sk. The result is
// deterministic: the same key and input always give the same 81 bytes.
func (sk *PrivateKey) Prove(alpha []byte) ([]byte, error) {
	if sk == nil || sk.x == nil || sk.x.IsZero() {
		return nil, newError("prove", ErrInvalidSecretKey, nil)
	}
	x := sk.x

	// 1. H = hash_to_curve(Y, alpha)
	h, _, err := hashtocurve.TryAndIncrement(Suite, sk.p, alpha)
	if err != nil {
		return nil, newError("prove", ErrHashToCurveFailed, err)
	}
	hString := curves.EncodePoint(h)

	// 2. Gamma = x·H
	gamma := h.Mul(x)

	// 3. k = nonce_generation(x, h_string)
	k := nonce.Generate(x, hString)

	// 4. c = hash_points(H, Gamma, k·G, k·H)
	c := challenge.Bytes(Suite, h, gamma, curves.ScalarBaseMult(k), h.Mul(k))

	// 5. s = (k + c·x) mod n
	cScalar := curves.NewScalarFromBig(new(big.Int).SetBytes(c[:]))
	s := k.Add(cScalar.Mul(x))

	p := &Proof{gamma: gamma, c: c, s: s.Bytes()}
	return p.Bytes(), nil
}

// Prove is sk.Prove(alpha).
func Prove(sk *PrivateKey, alpha []byte) ([]byte, error) {
	return sk.Prove(alpha)
}

// Verify checks pi against alpha under pk and returns beta. Malformed
// proofs fail with ErrInvalidProofEncoding; well-formed proofs that do not
// verify fail with ErrInvalidProof.
func (pk *PublicKey) Verify(pi, alpha []byte) ([]byte, error) {
	if !pk.valid() {
		return nil, newError("verify", ErrInvalidPublicKey, nil)
	}

	proof, err := decodeProof("verify", pi)
	if err != nil {
		return nil, err
	}

	// A non-canonical s would give a second encoding of the same proof.
	s, err := curves.ParseCanonicalScalar(proof.s[:])
	if err != nil {
		return nil, newError("verify", ErrInvalidProof, err)
	}
	c := curves.NewScalarFromBig(proof.C())

	h, _, err := hashtocurve.TryAndIncrement(Suite, pk.p, alpha)
	if err != nil {
		return nil, newError("verify", ErrHashToCurveFailed, err)
	}

	// U = s·G - c·Y
	u := curves.ScalarBaseMult(s).Sub(pk.p.Mul(c))
	// V = s·H - c·Gamma
	v := h.Mul(s).Sub(proof.gamma.Mul(c))

	if !challenge.Equal(challenge.Bytes(Suite, h, proof.gamma, u, v), proof.c) {
		return nil, newError("verify", ErrInvalidProof, nil)
	}
	return proof.Hash(), nil
}

// Verify is pk.Verify(pi, alpha).
func Verify(pk *PublicKey, pi, alpha []byte) ([]byte, error) {
	return pk.Verify(pi, alpha)
}

// ProofToHash returns the VRF output beta for pi without verifying it.
// Only trust beta after Verify has accepted pi.
func ProofToHash(pi []byte) ([]byte, error) {
	proof, err := decodeProof("proof_to_hash", pi)
	if err != nil {
		return nil, err
	}
	return proof.Hash(), nil
}
