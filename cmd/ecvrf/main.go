// Command ecvrf creates VRF keys, proves, verifies and hashes proofs from
// the command line.
package main

import "github.com/smallyu/go-ecvrf/cmd/ecvrf/cmd"

func main() {
	cmd.Execute()
}
