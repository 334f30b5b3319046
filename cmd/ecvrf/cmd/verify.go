package cmd

import (
	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/smallyu/go-ecvrf/pkg/ecvrf"
)

type outputResult struct {
	Beta string `json:"beta"`
}

func newVerifyCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a proof and print its output",
		Long: `Checks a proof against a public key and message. On success the 32-byte
VRF output is printed. A proof that does not verify exits with status 2.

  ecvrf verify --public-key 032c8c31...6ae645 --proof 031f4dbc...0a0ec9 --alpha-text sample
`,
		Args: cobra.NoArgs,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return requireFlags(v, "public-key", "proof")
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			pk := v.GetString("public-key")
			glog.V(1).Infof("verify: public key %s", pk)

			beta, err := ecvrf.VerifyHex(pk, v.GetString("proof"), alphaHex(v))
			if err != nil {
				glog.V(1).Infof("verify: rejected: %v", err)
				return err
			}
			return printJSON(cmd.OutOrStdout(), outputResult{Beta: beta})
		},
	}
	cmd.Flags().String("public-key", "", "compressed or uncompressed public key, hex encoded")
	cmd.Flags().String("proof", "", "81-byte proof, hex encoded")
	addAlphaFlags(cmd)
	return cmd
}
