// Package drbg implements HMAC_DRBG from NIST SP 800-90A without reseeding.
// It is the engine behind RFC 6979 nonces and entropy-seeded key generation.
package drbg

import (
	"crypto/hmac"
	"hash"
)

// HMAC is a deterministic random bit generator keyed by HMAC over newHash.
// It is not safe for concurrent use.
type HMAC struct {
	newHash func() hash.Hash
	k, v    []byte
}

// New instantiates the generator: K = 0x00..00, V = 0x01..01 (one hash
// length each), followed by Update(seed...). The seed parts are
// concatenated, so New(h, a, b) equals New(h, append(a, b...)).
func New(newHash func() hash.Hash, seed ...[]byte) *HMAC {
	size := newHash().Size()
	d := &HMAC{
		newHash: newHash,
		k:       make([]byte, size),
		v:       make([]byte, size),
	}
	for i := range d.v {
		d.v[i] = 0x01
	}
	d.Update(seed...)
	return d
}

func (d *HMAC) mac(parts ...[]byte) []byte {
	m := hmac.New(d.newHash, d.k)
	for _, p := range parts {
		m.Write(p)
	}
	return m.Sum(nil)
}

// Update mixes the provided data into the state:
//
//	K = HMAC_K(V || 0x00 || data), V = HMAC_K(V)
//	K = HMAC_K(V || 0x01 || data), V = HMAC_K(V)   (only when data is non-empty)
//
// Calling Update with no data is the step RFC 6979 takes between rejected
// candidates.
func (d *HMAC) Update(data ...[]byte) {
	n := 0
	for _, p := range data {
		n += len(p)
	}

	d.k = d.mac(append([][]byte{d.v, {0x00}}, data...)...)
	d.v = d.mac(d.v)
	if n == 0 {
		return
	}
	d.k = d.mac(append([][]byte{d.v, {0x01}}, data...)...)
	d.v = d.mac(d.v)
}

// Generate returns the next n bytes: V = HMAC_K(V) repeated, concatenated and
// truncated. The state is not updated afterwards; callers that need the
// SP 800-90A post-generate step call Update().
func (d *HMAC) Generate(n int) []byte {
	out := make([]byte, 0, n+len(d.v))
	for len(out) < n {
		d.v = d.mac(d.v)
		out = append(out, d.v...)
	}
	return out[:n]
}
