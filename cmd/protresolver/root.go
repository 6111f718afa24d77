package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envPrefix namespaces the environment variables read by Viper.
const envPrefix = "PROTRESOLVER"

// newRootCmd represents the base command when called without any subcommands.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "protresolver",
		Short: "Group proteins by shared peptide evidence and classify them",
		Long: `
Resolve peptide identifications against a protein database. Proteins are
grouped by the peptides they share, observed peptides split those groups
further, and every protein is labelled primary or secondary depending on
whether it owns a peptide no other protein explains.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}
	root.AddCommand(newResolveCmd(), newVersionCmd())

	return root
}

// newViper loads the optional settings file and the environment, then binds
// the command's flags so that set flags win over both.
func newViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read settings %s", path)
		}
	}
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, errors.Wrap(err, "bind flags")
	}

	return v, nil
}
