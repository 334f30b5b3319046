package ecvrf

import (
	"crypto/sha256"
	"math/big"

	"github.com/smallyu/go-ecvrf/internal/crypto/challenge"
	"github.com/smallyu/go-ecvrf/internal/crypto/curves"
)

const (
	// ProofLen is the size of an encoded proof: Gamma || c || s.
	ProofLen = curves.CompressedLen + challenge.Len + curves.ScalarLen

	// OutputLen is the size of the VRF output beta.
	OutputLen = sha256.Size

	proofToHashTag byte = 0x03
)

// Proof is a decoded VRF proof. s is kept as encoded; whether it is below
// the group order is checked during verification.
type Proof struct {
	gamma *curves.Point
	c     [challenge.Len]byte
	s     [curves.ScalarLen]byte
}

// DecodeProof splits an 81-byte proof into Gamma, c and s. It fails with
// ErrInvalidProofEncoding when the length is wrong or Gamma is not a
// finite curve point.
func DecodeProof(pi []byte) (*Proof, error) {
	return decodeProof("decode_proof", pi)
}

func decodeProof(op string, pi []byte) (*Proof, error) {
	if len(pi) != ProofLen {
		return nil, newError(op, ErrInvalidProofEncoding, nil)
	}

	gamma, err := curves.DecodePoint(pi[:curves.CompressedLen])
	if err != nil {
		return nil, newError(op, ErrInvalidProofEncoding, err)
	}
	if gamma.IsIdentity() {
		return nil, newError(op, ErrInvalidProofEncoding, nil)
	}

	p := &Proof{gamma: gamma}
	copy(p.c[:], pi[curves.CompressedLen:curves.CompressedLen+challenge.Len])
	copy(p.s[:], pi[curves.CompressedLen+challenge.Len:])
	return p, nil
}

// Bytes returns the 81-byte encoding of p.
func (p *Proof) Bytes() []byte {
	out := make([]byte, 0, ProofLen)
	out = append(out, curves.EncodePoint(p.gamma)...)
	out = append(out, p.c[:]...)
	out = append(out, p.s[:]...)
	return out
}

// Gamma returns the compressed encoding of Gamma = x·H.
func (p *Proof) Gamma() []byte { return curves.EncodePoint(p.gamma) }

// GammaX returns the affine x coordinate of Gamma.
func (p *Proof) GammaX() *big.Int { return p.gamma.X() }

// GammaY returns the affine y coordinate of Gamma.
func (p *Proof) GammaY() *big.Int { return p.gamma.Y() }

// C returns the 128-bit challenge.
func (p *Proof) C() *big.Int { return new(big.Int).SetBytes(p.c[:]) }

// S returns the response scalar.
func (p *Proof) S() *big.Int { return new(big.Int).SetBytes(p.s[:]) }

// Hash returns beta = SHA256(0xFE || 0x03 || point_to_string(Gamma)).
// It does not verify the proof.
func (p *Proof) Hash() []byte {
	h := sha256.New()
	h.Write([]byte{Suite, proofToHashTag})
	h.Write(curves.EncodePoint(p.gamma))
	return h.Sum(nil)
}
