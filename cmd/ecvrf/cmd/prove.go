package cmd

import (
	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/smallyu/go-ecvrf/pkg/ecvrf"
)

func newProveCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prove",
		Short: "Prove a message with a secret key",
		Long: `Computes the 81-byte proof pi for a message and prints it together with
its decoded fields:

  ecvrf prove --secret-key c9afa9d8...0f6721 --alpha-text sample
`,
		Args: cobra.NoArgs,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return requireFlags(v, "secret-key")
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			alpha := alphaHex(v)
			glog.V(1).Infof("prove: alpha %q", alpha)

			res, err := ecvrf.ProveHex(v.GetString("secret-key"), alpha)
			if err != nil {
				return err
			}
			glog.V(2).Infof("prove: gamma (%s, %s)", res.Decoded.GammaX, res.Decoded.GammaY)
			glog.V(2).Infof("prove: c %s s %s", res.Decoded.C, res.Decoded.S)
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().String("secret-key", "", "32-byte secret key, hex encoded")
	addAlphaFlags(cmd)
	return cmd
}
