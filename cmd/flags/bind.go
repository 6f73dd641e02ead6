package flags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// FlagDescriptor pairs a string flag with the viper config key it is bound to.
type FlagDescriptor struct {
	FlagName     string
	ConfigKey    string
	DefaultValue string
	Description  string
}

// BindFlags registers each descriptor as a persistent string flag on cmd and
// binds it to its config key in v.
func BindFlags(v *viper.Viper, cmd *cobra.Command, flagDescriptors ...FlagDescriptor) error {
	for _, flagDesc := range flagDescriptors {
		cmd.PersistentFlags().String(
			flagDesc.FlagName,
			flagDesc.DefaultValue,
			flagDesc.Description,
		)

		if err := v.BindPFlag(
			flagDesc.ConfigKey,
			cmd.PersistentFlags().Lookup(flagDesc.FlagName),
		); err != nil {
			return err
		}
	}
	return nil
}
