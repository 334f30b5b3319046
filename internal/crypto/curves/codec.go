package curves

import (
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ErrInvalidPointEncoding is returned when bytes do not decode to a curve point.
var ErrInvalidPointEncoding = errors.New("invalid point encoding")

const (
	// CompressedLen is the size of a SEC1 compressed point.
	CompressedLen = 33
	// UncompressedLen is the size of a SEC1 uncompressed point.
	UncompressedLen = 65
)

// EncodePoint returns the 33-byte SEC1 compressed encoding of p: a 0x02 or
// 0x03 prefix carrying the parity of y, then x as 32 big-endian bytes.
//
// The identity has no SEC1 compressed form; it encodes as 33 zero bytes so
// that fixed-width transcripts keep their layout.
func EncodePoint(p *Point) []byte {
	if p.infinity {
		return make([]byte, CompressedLen)
	}
	return secp256k1.NewPublicKey(&p.x, &p.y).SerializeCompressed()
}

// EncodePointUncompressed returns 0x04 || x || y. The identity encodes as
// 65 zero bytes.
func EncodePointUncompressed(p *Point) []byte {
	if p.infinity {
		return make([]byte, UncompressedLen)
	}
	return secp256k1.NewPublicKey(&p.x, &p.y).SerializeUncompressed()
}

// DecodePoint parses a SEC1 point: 33-byte compressed, 65-byte uncompressed,
// or the single byte 0x00 for the identity. Curve membership is
// checked by the curve library. The identity is not rejected here.
func DecodePoint(b []byte) (*Point, error) {
	if len(b) == 1 && b[0] == 0x00 {
		return Identity(), nil
	}
	pk, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPointEncoding, err)
	}
	var j secp256k1.JacobianPoint
	pk.AsJacobian(&j)
	return fromJacobian(&j), nil
}

// Pad left-pads b with zero bytes to exactly n bytes. It panics if b is
// already longer than n.
func Pad(b []byte, n int) []byte {
	if len(b) > n {
		panic(fmt.Sprintf("curves: %d-byte value does not fit in %d bytes", len(b), n))
	}
	out := make([]byte, n)
	copy(out[n-len(b):], b)
	return out
}
