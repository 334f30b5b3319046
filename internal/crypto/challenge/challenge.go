// Package challenge computes the Fiat-Shamir challenge binding a VRF proof
// to its transcript points.
package challenge

import (
	"crypto/sha256"
	"crypto/subtle"
	"math/big"

	"github.com/smallyu/go-ecvrf/internal/crypto/curves"
)

// Len is the challenge width in bytes (n = 128 bits).
const Len = 16

const domainTag byte = 0x02

// Bytes returns the first Len bytes of
// SHA256(suite || 0x02 || point_to_string(P1) || ... || point_to_string(Pk)).
func Bytes(suite byte, points ...*curves.Point) [Len]byte {
	h := sha256.New()
	h.Write([]byte{suite, domainTag})
	for _, p := range points {
		h.Write(curves.EncodePoint(p))
	}

	var c [Len]byte
	copy(c[:], h.Sum(nil))
	return c
}

// HashPoints returns Bytes(suite, points...) as a big-endian integer in
// [0, 2^128).
func HashPoints(suite byte, points ...*curves.Point) *big.Int {
	c := Bytes(suite, points...)
	return new(big.Int).SetBytes(c[:])
}

// Equal compares two challenges in constant time.
func Equal(a, b [Len]byte) bool {
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}
