package ecvrf_test

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"

	"github.com/smallyu/go-ecvrf/pkg/ecvrf"
)

func Example() {
	sk, err := ecvrf.GenerateKey(rand.Reader)
	if err != nil {
		log.Fatal(err)
	}

	pi, err := sk.Prove([]byte("round 42"))
	if err != nil {
		log.Fatal(err)
	}

	// The verifier only needs the encoded public key.
	pk, err := ecvrf.ParsePublicKey(sk.Public().Bytes())
	if err != nil {
		log.Fatal(err)
	}
	beta, err := pk.Verify(pi, []byte("round 42"))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(pi), len(beta))
	// Output: 81 32
}

func ExampleProofToHash() {
	pi, _ := hex.DecodeString("029a2df6ca1d5f734945fb6847669f839eb9ecf127fa8314e5a6a5c4695c3f4d15" +
		"9009b3741cdec6b0d7c70e3aae6b82ae" +
		"b1aad555499bd6ce10b35fa230079e6fa752e8d4755ffd285aef5133dad7a64b")
	beta, err := ecvrf.ProofToHash(pi)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%x\n", beta)
	// Output: 00acd42d48046e13552f54919286c2085aec6fb874854d036f66ad572c99e7ab
}
