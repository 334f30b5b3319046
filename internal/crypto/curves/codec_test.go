package curves

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for i := 0; i < 16; i++ {
		k, err := RandomScalar(rand.Reader)
		require.NoError(t, err)
		p := ScalarBaseMult(k)

		enc := EncodePoint(p)
		require.Len(t, enc, CompressedLen)
		assert.Contains(t, []byte{0x02, 0x03}, enc[0])

		got, err := DecodePoint(enc)
		require.NoError(t, err)
		assert.True(t, got.Equal(p), "compressed round trip")

		got, err = DecodePoint(EncodePointUncompressed(p))
		require.NoError(t, err)
		assert.True(t, got.Equal(p), "uncompressed round trip")
	}
}

// The encodings must agree byte for byte with an independent secp256k1
// implementation.
func TestCodecMatchesBtcec(t *testing.T) {
	for i := 0; i < 16; i++ {
		k, err := RandomScalar(rand.Reader)
		require.NoError(t, err)
		kb := k.Bytes()
		_, pub := btcec.PrivKeyFromBytes(kb[:])

		p := ScalarBaseMult(k)
		assert.Equal(t, pub.SerializeCompressed(), EncodePoint(p))
		assert.Equal(t, pub.SerializeUncompressed(), EncodePointUncompressed(p))

		parsed, err := btcec.ParsePubKey(EncodePoint(p))
		require.NoError(t, err)
		assert.True(t, pub.IsEqual(parsed))
	}
}

func TestEncodePointPadsX(t *testing.T) {
	// Search a few multiples of G for one whose x has a leading zero byte;
	// the encoding must still be 33 bytes with x right-aligned.
	p := Generator()
	for i := 0; i < 2000; i++ {
		if p.X().BitLen() <= 248 {
			enc := EncodePoint(p)
			require.Len(t, enc, CompressedLen)
			assert.Equal(t, byte(0), enc[1])
			assert.Equal(t, Pad(p.X().Bytes(), 32), enc[1:])
			return
		}
		p = p.Add(Generator())
	}
	t.Skip("no short x coordinate among the first multiples of G")
}

func TestDecodePointErrors(t *testing.T) {
	for _, tc := range []struct {
		desc string
		in   []byte
	}{
		{desc: "empty", in: nil},
		{desc: "bad prefix", in: append([]byte{0x05}, bytes.Repeat([]byte{1}, 32)...)},
		{desc: "short", in: append([]byte{0x02}, bytes.Repeat([]byte{1}, 31)...)},
		{desc: "x above field prime", in: append([]byte{0x02}, bytes.Repeat([]byte{0xff}, 32)...)},
		{desc: "zero x compressed", in: append([]byte{0x02}, make([]byte, 32)...)},
		{desc: "33 zero bytes", in: make([]byte, CompressedLen)},
		{desc: "two zero bytes", in: []byte{0x00, 0x00}},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := DecodePoint(tc.in)
			assert.ErrorIs(t, err, ErrInvalidPointEncoding)
		})
	}
}

func TestDecodePointNotOnCurve(t *testing.T) {
	// x = 5 has no matching y on secp256k1.
	in := make([]byte, CompressedLen)
	in[0] = 0x02
	in[CompressedLen-1] = 5
	_, err := DecodePoint(in)
	assert.ErrorIs(t, err, ErrInvalidPointEncoding)

	// x = 1 does.
	in[CompressedLen-1] = 1
	p, err := DecodePoint(in)
	require.NoError(t, err)
	assert.True(t, p.IsOnCurve())
	assert.Equal(t, uint(0), p.Y().Bit(0), "0x02 prefix selects even y")
}

func TestDecodeIdentity(t *testing.T) {
	p, err := DecodePoint([]byte{0x00})
	require.NoError(t, err)
	assert.True(t, p.IsIdentity())

	assert.Equal(t, make([]byte, CompressedLen), EncodePoint(Identity()))
	assert.Equal(t, make([]byte, UncompressedLen), EncodePointUncompressed(Identity()))
}

func TestPad(t *testing.T) {
	assert.Equal(t, []byte{0, 0, 1, 2}, Pad([]byte{1, 2}, 4))
	assert.Equal(t, []byte{1, 2}, Pad([]byte{1, 2}, 2))
	assert.Equal(t, make([]byte, 16), Pad(nil, 16))
	assert.Panics(t, func() { Pad([]byte{1, 2, 3}, 2) })
}

func FuzzDecodePoint(f *testing.F) {
	f.Add(EncodePoint(Generator()))
	f.Add(EncodePointUncompressed(Generator()))
	f.Add([]byte{0x00})
	f.Add(make([]byte, CompressedLen))

	f.Fuzz(func(t *testing.T, data []byte) {
		p, err := DecodePoint(data)
		if err != nil {
			return
		}
		if p.IsIdentity() {
			return
		}
		if !p.IsOnCurve() {
			t.Fatalf("decoded point off curve: %x", data)
		}
		again, err := DecodePoint(EncodePoint(p))
		if err != nil || !again.Equal(p) {
			t.Fatalf("re-encoding %x does not round trip", data)
		}
	})
}
