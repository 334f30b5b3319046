package ecvrf

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/smallyu/go-ecvrf/internal/crypto/curves"
)

// PublicKeyInfo describes a public key in hex.
type PublicKeyInfo struct {
	Key        string `json:"key"`
	Compressed string `json:"compressed"`
	X          string `json:"x"`
	Y          string `json:"y"`
}

// KeyPairInfo is the result of Keygen.
type KeyPairInfo struct {
	SecretKey string        `json:"secret_key"`
	PublicKey PublicKeyInfo `json:"public_key"`
}

// DecodedProof lists the fields of a proof in hex.
type DecodedProof struct {
	GammaX string `json:"gammaX"`
	GammaY string `json:"gammaY"`
	C      string `json:"c"`
	S      string `json:"s"`
}

// ProveResult is the result of ProveHex.
type ProveResult struct {
	Pi      string       `json:"pi"`
	Decoded DecodedProof `json:"decoded"`
}

// Keygen creates a key pair. An empty entropy draws the key from
// crypto/rand; otherwise the UTF-8 bytes of entropy seed
// GenerateKeyFromEntropy and the result is reproducible.
func Keygen(entropy string) (*KeyPairInfo, error) {
	var (
		sk  *PrivateKey
		err error
	)
	if entropy == "" {
		sk, err = GenerateKey(rand.Reader)
	} else {
		sk, err = GenerateKeyFromEntropy([]byte(entropy))
	}
	if err != nil {
		return nil, err
	}

	return &KeyPairInfo{
		SecretKey: hex.EncodeToString(sk.Bytes()),
		PublicKey: PublicKeyInfo{
			Key:        hex.EncodeToString(sk.BytesUncompressed()),
			Compressed: hex.EncodeToString(sk.PublicKey.Bytes()),
			X:          fieldHex(sk.X(), curves.ScalarLen),
			Y:          fieldHex(sk.Y(), curves.ScalarLen),
		},
	}, nil
}

// ProveHex proves the hex message alpha under the hex secret key. Secret
// keys with fewer than 64 digits are left-padded with zeros.
func ProveHex(secretKey, alpha string) (*ProveResult, error) {
	skBytes, err := decodeHex(secretKey)
	if err != nil {
		return nil, newError("prove", ErrInvalidSecretKey, err)
	}
	if len(skBytes) > SecretKeyLen {
		return nil, newError("prove", ErrInvalidSecretKey,
			fmt.Errorf("%d-byte secret key", len(skBytes)))
	}
	sk, err := NewPrivateKey(curves.Pad(skBytes, SecretKeyLen))
	if err != nil {
		return nil, err
	}

	msg, err := decodeHex(alpha)
	if err != nil {
		return nil, newError("prove", ErrMalformedInput, err)
	}

	pi, err := sk.Prove(msg)
	if err != nil {
		return nil, err
	}
	proof, err := DecodeProof(pi)
	if err != nil {
		return nil, err
	}

	return &ProveResult{
		Pi: hex.EncodeToString(pi),
		Decoded: DecodedProof{
			GammaX: fieldHex(proof.GammaX(), curves.ScalarLen),
			GammaY: fieldHex(proof.GammaY(), curves.ScalarLen),
			C:      hex.EncodeToString(proof.c[:]),
			S:      hex.EncodeToString(proof.s[:]),
		},
	}, nil
}

// ProofToHashHex returns the hex output for a hex proof.
func ProofToHashHex(pi string) (string, error) {
	b, err := decodeHex(pi)
	if err != nil {
		return "", newError("proof_to_hash", ErrInvalidProofEncoding, err)
	}
	beta, err := ProofToHash(b)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(beta), nil
}

// VerifyHex validates the hex public key, verifies the hex proof for the
// hex message and returns the hex output.
func VerifyHex(publicKey, pi, alpha string) (string, error) {
	pk, err := parsePublicKeyHex(publicKey)
	if err != nil {
		return "", err
	}
	proof, err := decodeHex(pi)
	if err != nil {
		return "", newError("verify", ErrInvalidProofEncoding, err)
	}
	msg, err := decodeHex(alpha)
	if err != nil {
		return "", newError("verify", ErrMalformedInput, err)
	}

	beta, err := pk.Verify(proof, msg)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(beta), nil
}

// ValidateKeyHex reports whether publicKey is a usable hex public key.
func ValidateKeyHex(publicKey string) error {
	_, err := parsePublicKeyHex(publicKey)
	return err
}

func parsePublicKeyHex(s string) (*PublicKey, error) {
	b, err := decodeHex(s)
	if err != nil {
		return nil, newError("validate_key", ErrInvalidPublicKey, err)
	}
	return ParsePublicKey(b)
}

// decodeHex accepts an optional 0x prefix and an odd number of digits,
// which is read as if it had a leading zero.
func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s)%2 == 1 {
		s = "0" + s
	}
	return hex.DecodeString(s)
}

func fieldHex(v *big.Int, size int) string {
	return hex.EncodeToString(v.FillBytes(make([]byte, size)))
}
