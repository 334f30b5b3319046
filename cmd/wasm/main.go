//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/smallyu/go-ecvrf/pkg/ecvrf"
)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go ECVRF WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoECVRF", map[string]interface{}{
		"keygen":      js.FuncOf(Keygen),
		"prove":       js.FuncOf(Prove),
		"proofToHash": js.FuncOf(ProofToHash),
		"verify":      js.FuncOf(Verify),
		"validateKey": js.FuncOf(ValidateKey),
	})

	<-c
}

// Keygen creates a key pair.
// Arguments:
// 0: optional entropy string
// Returns:
// JSON {secret_key, public_key: {key, compressed, x, y}}
func Keygen(this js.Value, args []js.Value) interface{} {
	if len(args) > 1 {
		return "error: expected at most 1 argument (entropy)"
	}
	entropy := ""
	if len(args) == 1 && args[0].Type() == js.TypeString {
		entropy = args[0].String()
	}

	kp, err := ecvrf.Keygen(entropy)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return marshal(kp)
}

// Prove computes a proof.
// Arguments:
// 0: secret key (hex)
// 1: alpha (hex)
// Returns:
// JSON {pi, decoded: {gammaX, gammaY, c, s}}
func Prove(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (secretKey, alpha)"
	}

	res, err := ecvrf.ProveHex(args[0].String(), args[1].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return marshal(res)
}

// ProofToHash derives the output of a proof without verifying it.
// Arguments:
// 0: proof (hex)
// Returns:
// beta (hex)
func ProofToHash(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (pi)"
	}

	beta, err := ecvrf.ProofToHashHex(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return beta
}

// Verify checks a proof.
// Arguments:
// 0: public key (hex)
// 1: proof (hex)
// 2: alpha (hex)
// Returns:
// beta (hex)
func Verify(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return "error: expected 3 arguments (publicKey, pi, alpha)"
	}

	beta, err := ecvrf.VerifyHex(args[0].String(), args[1].String(), args[2].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return beta
}

// ValidateKey checks a public key.
// Arguments:
// 0: public key (hex)
// Returns:
// null, or an error string
func ValidateKey(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (publicKey)"
	}
	if err := ecvrf.ValidateKeyHex(args[0].String()); err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return nil
}

func marshal(v interface{}) interface{} {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: marshal result failed: %v", err)
	}
	return string(b)
}
