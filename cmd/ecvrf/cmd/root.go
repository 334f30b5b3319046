// Package cmd holds the ecvrf command tree.
package cmd

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/smallyu/go-ecvrf/pkg/ecvrf"
)

// Exit codes. A proof that fails to verify is an expected outcome and is
// reported apart from malformed input.
const (
	exitError        = 1
	exitInvalidProof = 2
)

// New returns the root command with every subcommand attached. Each call
// builds an independent tree with its own viper instance.
func New() *cobra.Command {
	var cfgFile string
	v := viper.New()

	root := &cobra.Command{
		Use:   "ecvrf",
		Short: "ECVRF-SECP256K1-SHA256-TAI verifiable random function",
		Long: `ecvrf generates secp256k1 VRF keys, produces proofs for messages,
verifies proofs and derives their 32-byte outputs.

Inputs and outputs are hex. Results are printed as JSON. Every flag may
also be set in the config file or through an ECVRF_ prefixed environment
variable, e.g. ECVRF_SECRET_KEY.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(v, cfgFile); err != nil {
				return err
			}
			return v.BindPFlags(cmd.Flags())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.ecvrf.yaml)")
	root.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	root.SetGlobalNormalizationFunc(normalizeFlag)

	root.AddCommand(
		newKeygenCmd(v),
		newProveCmd(v),
		newVerifyCmd(v),
		newHashCmd(v),
		newValidateCmd(v),
	)
	return root
}

// Execute runs the command line and exits with a non-zero status on failure.
func Execute() {
	err := New().Execute()
	glog.Flush()
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	if errors.Is(err, ecvrf.ErrInvalidProof) {
		os.Exit(exitInvalidProof)
	}
	os.Exit(exitError)
}

// initConfig reads in the config file and ENV variables if set.
func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix("ecvrf")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %v: %w", cfgFile, err)
		}
		glog.V(1).Infof("Using config file: %v", v.ConfigFileUsed())
		return nil
	}

	v.SetConfigName(".ecvrf")
	v.AddConfigPath("$HOME")
	if err := v.ReadInConfig(); err == nil {
		glog.V(1).Infof("Using config file: %v", v.ConfigFileUsed())
	}
	return nil
}

// normalizeFlag lets --secret_key stand for --secret-key. glog's own
// flags use underscores and are left alone.
func normalizeFlag(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if flag.CommandLine.Lookup(name) == nil {
		name = strings.ReplaceAll(name, "_", "-")
	}
	return pflag.NormalizedName(name)
}

// alphaHex returns the message as hex, preferring --alpha-text when set.
func alphaHex(v *viper.Viper) string {
	if text := v.GetString("alpha-text"); text != "" {
		return fmt.Sprintf("%x", text)
	}
	return v.GetString("alpha")
}

func addAlphaFlags(cmd *cobra.Command) {
	cmd.Flags().String("alpha", "", "message to prove, hex encoded")
	cmd.Flags().String("alpha-text", "", "message to prove as UTF-8 text (overrides --alpha)")
}

func requireFlags(v *viper.Viper, names ...string) error {
	var missing []string
	for _, name := range names {
		if v.GetString(name) == "" {
			missing = append(missing, "--"+name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("required flag(s) %s not set", strings.Join(missing, ", "))
	}
	return nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
