package ecvrf

import (
	"crypto/sha256"
	"io"
	"math/big"

	"github.com/smallyu/go-ecvrf/internal/crypto/curves"
	"github.com/smallyu/go-ecvrf/internal/crypto/drbg"
)

const (
	// SecretKeyLen is the size of a serialized secret key.
	SecretKeyLen = curves.ScalarLen

	// MinEntropyLen is the minimum seed size accepted by
	// GenerateKeyFromEntropy (192 bits).
	MinEntropyLen = 24
)

// PublicKey is a VRF public key Y = x·G. It is never the identity.
type PublicKey struct {
	p *curves.Point
}

// ParsePublicKey decodes and validates a SEC1 compressed or uncompressed
// public key. Bytes that do not decode to a curve point, and the point at
// infinity, are rejected with ErrInvalidPublicKey. Keys from untrusted
// sources must pass through here before being used to verify.
func ParsePublicKey(b []byte) (*PublicKey, error) {
	p, err := curves.DecodePoint(b)
	if err != nil {
		return nil, newError("validate_key", ErrInvalidPublicKey, err)
	}
	if p.IsIdentity() {
		return nil, newError("validate_key", ErrInvalidPublicKey, nil)
	}
	return &PublicKey{p: p}, nil
}

// Bytes returns the 33-byte compressed encoding.
func (pk *PublicKey) Bytes() []byte {
	return curves.EncodePoint(pk.p)
}

// BytesUncompressed returns the 65-byte 0x04 || x || y encoding.
func (pk *PublicKey) BytesUncompressed() []byte {
	return curves.EncodePointUncompressed(pk.p)
}

// X returns the affine x coordinate.
func (pk *PublicKey) X() *big.Int { return pk.p.X() }

// Y returns the affine y coordinate.
func (pk *PublicKey) Y() *big.Int { return pk.p.Y() }

// Equal reports whether pk and other are the same key.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return other != nil && pk.p.Equal(other.p)
}

func (pk *PublicKey) valid() bool {
	return pk != nil && pk.p != nil && !pk.p.IsIdentity()
}

// PrivateKey is a VRF secret scalar x in [1, n-1] together with its public
// key.
type PrivateKey struct {
	PublicKey
	x *curves.Scalar
}

func newPrivateKey(x *curves.Scalar) *PrivateKey {
	return &PrivateKey{
		PublicKey: PublicKey{p: curves.ScalarBaseMult(x)},
		x:         x,
	}
}

// NewPrivateKey decodes a 32-byte big-endian secret key, rejecting values
// outside [1, n-1].
func NewPrivateKey(b []byte) (*PrivateKey, error) {
	x, err := curves.ParseScalar(b)
	if err != nil {
		return nil, newError("parse_secret_key", ErrInvalidSecretKey, err)
	}
	return newPrivateKey(x), nil
}

// GenerateKey returns a key drawn uniformly from [1, n-1] using rand.
func GenerateKey(rand io.Reader) (*PrivateKey, error) {
	x, err := curves.RandomScalar(rand)
	if err != nil {
		return nil, newError("keygen", ErrInsufficientEntropy, err)
	}
	return newPrivateKey(x), nil
}

// GenerateKeyFromEntropy derives a key deterministically from a seed, so
// that test vectors are reproducible. An HMAC-DRBG over SHA-256 is seeded
// with entropy || n; 32-byte draws above n-2 are discarded and the key is
// the first accepted draw plus one.
func GenerateKeyFromEntropy(entropy []byte) (*PrivateKey, error) {
	if len(entropy) < MinEntropyLen {
		return nil, newError("keygen", ErrInsufficientEntropy, nil)
	}

	n := curves.Order()
	limit := new(big.Int).Sub(n, big.NewInt(2))
	d := drbg.New(sha256.New, entropy, n.FillBytes(make([]byte, SecretKeyLen)))
	for {
		v := new(big.Int).SetBytes(d.Generate(SecretKeyLen))
		d.Update()
		if v.Cmp(limit) > 0 {
			continue
		}
		return newPrivateKey(curves.NewScalarFromBig(v.Add(v, big.NewInt(1)))), nil
	}
}

// Bytes returns the 32-byte big-endian secret scalar.
func (sk *PrivateKey) Bytes() []byte {
	b := sk.x.Bytes()
	return b[:]
}

// Public returns the public key of sk.
func (sk *PrivateKey) Public() *PublicKey {
	return &sk.PublicKey
}
