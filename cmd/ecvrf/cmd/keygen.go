package cmd

import (
	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/smallyu/go-ecvrf/pkg/ecvrf"
)

func newKeygenCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a key pair",
		Long: `Generates a secp256k1 VRF key pair. Without --entropy the key is drawn
from the operating system's random source. With --entropy (at least 24
characters) the same entropy always yields the same key:

  ecvrf keygen --entropy "correct horse battery staple!!"
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entropy := v.GetString("entropy")
			if entropy != "" {
				glog.V(1).Infof("keygen: deterministic from %d bytes of entropy", len(entropy))
			}

			kp, err := ecvrf.Keygen(entropy)
			if err != nil {
				return err
			}
			glog.V(1).Infof("keygen: public key %s", kp.PublicKey.Compressed)
			return printJSON(cmd.OutOrStdout(), kp)
		},
	}
	cmd.Flags().String("entropy", "", "seed for reproducible key generation")
	return cmd
}
