package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/smallyu/go-ecvrf/pkg/ecvrf"
)

type validateResult struct {
	Valid bool `json:"valid"`
}

func newValidateCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that a public key is usable for verification",
		Args:  cobra.NoArgs,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return requireFlags(v, "public-key")
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := ecvrf.ValidateKeyHex(v.GetString("public-key")); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), validateResult{Valid: true})
		},
	}
	cmd.Flags().String("public-key", "", "compressed or uncompressed public key, hex encoded")
	return cmd
}
