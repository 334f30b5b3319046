package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/smallyu/go-ecvrf/pkg/ecvrf"
)

func newHashCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Derive the output of a proof without verifying it",
		Args:  cobra.NoArgs,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return requireFlags(v, "proof")
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			beta, err := ecvrf.ProofToHashHex(v.GetString("proof"))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), outputResult{Beta: beta})
		},
	}
	cmd.Flags().String("proof", "", "81-byte proof, hex encoded")
	return cmd
}
