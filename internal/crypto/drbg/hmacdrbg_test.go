package drbg

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateVectors(t *testing.T) {
	d := New(sha256.New, []byte("abc"))
	assert.Equal(t, "f88310a077e935787d1d877241a5daaef90224abe1c3778ba3c0e53e36379453",
		hex.EncodeToString(d.Generate(32)))
	// Output spanning two blocks is truncated.
	assert.Equal(t, "fb37bc5db6e81353b5ee95e89fb6def27fb02f63784de5491b7c447a89ad98e780978382dbf28fd5",
		hex.EncodeToString(d.Generate(40)))
	d.Update()
	assert.Equal(t, "27b82c4361ac35aa76f46a49bc2c8264", hex.EncodeToString(d.Generate(16)))
}

func TestEmptySeed(t *testing.T) {
	d := New(sha256.New)
	assert.Equal(t, "b44299907e4e42aa4fded5d6153e8bac3f35987bbe5fa08865c45339214784a2",
		hex.EncodeToString(d.Generate(32)))

	// Empty parts count as no data.
	e := New(sha256.New, nil, []byte{})
	assert.Equal(t, "b44299907e4e42aa4fded5d6153e8bac3f35987bbe5fa08865c45339214784a2",
		hex.EncodeToString(e.Generate(32)))
}

func TestUpdateWithData(t *testing.T) {
	d := New(sha256.New, []byte("abc"))
	d.Update([]byte("xyz"))
	assert.Equal(t, "06948f1fe5cf859ddb6bc760ed01f04ced500eccd7834d3304874755521e84d0",
		hex.EncodeToString(d.Generate(32)))
}

func TestSeedPartsConcatenate(t *testing.T) {
	a := New(sha256.New, []byte("entropy"), []byte("nonce"), []byte("pers"))
	b := New(sha256.New, []byte("entropynoncepers"))
	require.Equal(t, a.Generate(64), b.Generate(64))

	a.Update([]byte("x"), []byte("y"))
	b.Update([]byte("xy"))
	assert.Equal(t, a.Generate(32), b.Generate(32))
}

func TestDeterministic(t *testing.T) {
	a := New(sha256.New, []byte("seed"))
	b := New(sha256.New, []byte("seed"))
	c := New(sha256.New, []byte("seeD"))

	outA := a.Generate(48)
	assert.Equal(t, outA, b.Generate(48))
	assert.NotEqual(t, outA, c.Generate(48))
	assert.NotEqual(t, outA[:32], a.Generate(32), "successive outputs differ")
}
