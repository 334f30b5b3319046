package e2e

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecvrf/pkg/ecvrf"
)

// A full hex round trip: an entropy-seeded key pair proves a hex
// message and a third party checks the result with only public data.
func TestHexFlow(t *testing.T) {
	const (
		entropy = "cda5c4175025a35990af1dcf8d0272a207433c88543f2472fddff05dd3579ed7"
		msg     = "03173a5265d3b81d9f264155e5e59881023d5d544f76ed3449aecd4544a53396"
	)

	// 1. Key Generation Phase
	kp, err := ecvrf.Keygen(entropy)
	require.NoError(t, err)
	require.NoError(t, ecvrf.ValidateKeyHex(kp.PublicKey.Compressed))
	require.NoError(t, ecvrf.ValidateKeyHex(kp.PublicKey.Key))

	// 2. Proving Phase
	res, err := ecvrf.ProveHex(kp.SecretKey, msg)
	require.NoError(t, err)
	require.Len(t, res.Pi, 2*ecvrf.ProofLen)

	// 3. Verification Phase, with either key encoding
	beta, err := ecvrf.ProofToHashHex(res.Pi)
	require.NoError(t, err)
	for _, pk := range []string{kp.PublicKey.Compressed, kp.PublicKey.Key} {
		got, err := ecvrf.VerifyHex(pk, res.Pi, msg)
		require.NoError(t, err)
		assert.Equal(t, beta, got)
	}

	// 4. The decoded fields reassemble the proof
	pi, err := hex.DecodeString(res.Pi)
	require.NoError(t, err)
	proof, err := ecvrf.DecodeProof(pi)
	require.NoError(t, err)
	assert.Equal(t, res.Decoded.C, hex.EncodeToString(proof.C().FillBytes(make([]byte, 16))))
	assert.Equal(t, res.Decoded.S, hex.EncodeToString(proof.S().FillBytes(make([]byte, 32))))
	assert.True(t, bytes.Equal(pi, proof.Bytes()))
}

// Many independent keys prove and verify the same inputs; outputs never
// collide and proofs never cross keys.
func TestManyKeys(t *testing.T) {
	const n = 8
	alpha := []byte("shared input")

	keys := make([]*ecvrf.PrivateKey, n)
	proofs := make([][]byte, n)
	seen := make(map[string]int)
	for i := 0; i < n; i++ {
		kp, err := ecvrf.Keygen("")
		require.NoError(t, err)
		sk, err := ecvrf.NewPrivateKey(mustHex(t, kp.SecretKey))
		require.NoError(t, err)
		keys[i] = sk

		proofs[i], err = sk.Prove(alpha)
		require.NoError(t, err)
		beta, err := ecvrf.ProofToHash(proofs[i])
		require.NoError(t, err)

		prev, dup := seen[string(beta)]
		require.False(t, dup, "keys %d and %d share an output", prev, i)
		seen[string(beta)] = i
	}

	for i := range keys {
		for j := range proofs {
			_, err := keys[i].Public().Verify(proofs[j], alpha)
			if i == j {
				assert.NoError(t, err)
				continue
			}
			assert.True(t, errors.Is(err, ecvrf.ErrInvalidProof), "key %d accepted proof %d: %v", i, j, err)
		}
	}
}

func TestInterfaces(t *testing.T) {
	sk, err := ecvrf.GenerateKeyFromEntropy([]byte("correct horse battery staple!!"))
	require.NoError(t, err)

	var prover ecvrf.Prover = sk
	var verifier ecvrf.Verifier = prover.Public()

	pi, err := prover.Prove([]byte("hello"))
	require.NoError(t, err)
	_, err = verifier.Verify(pi, []byte("hello"))
	assert.NoError(t, err)
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}
