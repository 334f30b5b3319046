// Package nonce derives deterministic per-proof nonces with RFC 6979.
package nonce

import (
	"crypto/sha256"
	"hash"
	"math/big"

	"github.com/smallyu/go-ecvrf/internal/crypto/curves"
	"github.com/smallyu/go-ecvrf/internal/crypto/drbg"
)

// RFC6979 returns the nonce k in [1, q-1] for secret x and message m
// following RFC 6979 section 3.2, with newHash as both the message digest
// and the HMAC hash. x must be in [1, q-1].
func RFC6979(newHash func() hash.Hash, q, x *big.Int, m []byte) *big.Int {
	qlen := q.BitLen()
	rlen := (qlen + 7) / 8

	h := newHash()
	h.Write(m)
	h1 := h.Sum(nil)

	// Step d-g: K, V seeded with int2octets(x) || bits2octets(h1).
	d := drbg.New(newHash, int2octets(x, rlen), bits2octets(h1, q, qlen, rlen))

	// Step h.
	for {
		k := bits2int(d.Generate(rlen), qlen)
		if k.Sign() > 0 && k.Cmp(q) < 0 {
			return k
		}
		d.Update()
	}
}

// Generate returns the ECVRF nonce for secret key x over h_string, the
// encoded hash-to-curve point: RFC 6979 with SHA-256 and q = n.
func Generate(x *curves.Scalar, hString []byte) *curves.Scalar {
	k := RFC6979(sha256.New, curves.Order(), x.BigInt(), hString)
	return curves.NewScalarFromBig(k)
}

// bits2int keeps the leftmost qlen bits of b.
func bits2int(b []byte, qlen int) *big.Int {
	v := new(big.Int).SetBytes(b)
	if blen := len(b) * 8; blen > qlen {
		v.Rsh(v, uint(blen-qlen))
	}
	return v
}

func int2octets(v *big.Int, rlen int) []byte {
	return v.FillBytes(make([]byte, rlen))
}

func bits2octets(b []byte, q *big.Int, qlen, rlen int) []byte {
	z := bits2int(b, qlen)
	if z.Cmp(q) >= 0 {
		z.Sub(z, q)
	}
	return int2octets(z, rlen)
}
