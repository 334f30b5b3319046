// Package hashtocurve maps a public key and an arbitrary message to a
// secp256k1 point with the try-and-increment method of the ECVRF draft.
package hashtocurve

import (
	"crypto/sha256"
	"errors"

	"github.com/smallyu/go-ecvrf/internal/crypto/curves"
)

// ErrHashToCurveFailed is returned when no candidate within MaxAttempts
// decodes to a curve point.
var ErrHashToCurveFailed = errors.New("hash to curve failed")

const (
	// MaxAttempts bounds the counter, which is encoded as a single byte.
	MaxAttempts = 256

	domainTag byte = 0x01
)

// TryAndIncrement returns H = arbitrary_string_to_point(Hash(suite || 0x01 ||
// point_to_string(pk) || alpha || ctr)) for the first ctr in [0, 255] that
// yields a valid finite point, together with that ctr.
//
// The running time depends on alpha; on average the second attempt
// succeeds. The cofactor of secp256k1 is 1 so H is used as is.
func TryAndIncrement(suite byte, pk *curves.Point, alpha []byte) (*curves.Point, int, error) {
	pkString := curves.EncodePoint(pk)

	h := sha256.New()
	candidate := make([]byte, 0, curves.CompressedLen)
	for ctr := 0; ctr < MaxAttempts; ctr++ {
		h.Reset()
		h.Write([]byte{suite, domainTag})
		h.Write(pkString)
		h.Write(alpha)
		h.Write([]byte{byte(ctr)})

		// Interpret the digest as a compressed x coordinate with even y.
		candidate = h.Sum(append(candidate[:0], 0x02))
		p, err := curves.DecodePoint(candidate)
		if err != nil || p.IsIdentity() || !p.IsOnCurve() {
			continue
		}
		return p, ctr, nil
	}
	return nil, 0, ErrHashToCurveFailed
}
