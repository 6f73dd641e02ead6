package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pokt-network/ibcquery/cmd/flags"
	"github.com/pokt-network/ibcquery/pkg/client/requests"
	"github.com/pokt-network/ibcquery/pkg/client/requests/config"
	"github.com/pokt-network/ibcquery/pkg/polylog"
	"github.com/pokt-network/ibcquery/pkg/polylog/polyzero"
)

const (
	// envPrefix is the viper env prefix; e.g. IBCQUERY_HEIGHT sets --height.
	envPrefix = "IBCQUERY"

	configKeyLogLevel = "log_level"
	configKeyConfig   = "config"
	configKeyHeight   = "height"
)

// rootState is populated by the root command's PersistentPreRunE and shared
// with every subcommand.
type rootState struct {
	viper    *viper.Viper
	logger   polylog.Logger
	defaults *config.QueryDefaultsConfig
}

// NewRootCmd returns the ibcquery root command.
func NewRootCmd() *cobra.Command {
	state := &rootState{viper: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "ibcquery",
		Short: "Build IBC query requests and inspect their wire form",
		Long: `Build the query requests a relayer sends to a chain's IBC query services
and print what goes on the wire: the ibc-go request message, the query height
carried in the x-cosmos-block-height gRPC header, and the event search queries
used to look up historical packet and client events.

Defaults for the query height, proof inclusion and pagination are read from the
file given by --config (YAML or TOML) and can be overridden by flags or by
IBCQUERY_* environment variables.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: state.preRun,
	}

	if err := flags.BindFlags(
		state.viper,
		rootCmd,
		flags.FlagDescriptor{
			FlagName:     flags.FlagLogLevel,
			ConfigKey:    configKeyLogLevel,
			DefaultValue: flags.DefaultLogLevel,
			Description:  flags.FlagLogLevelUsage,
		},
		flags.FlagDescriptor{
			FlagName:    flags.FlagConfig,
			ConfigKey:   configKeyConfig,
			Description: flags.FlagConfigUsage,
		},
		flags.FlagDescriptor{
			FlagName:    flags.FlagHeight,
			ConfigKey:   configKeyHeight,
			Description: flags.FlagHeightUsage,
		},
	); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(ProjectCmd(state))
	rootCmd.AddCommand(SearchCmd(state))
	rootCmd.AddCommand(CrossChainCmd(state))

	return rootCmd
}

// preRun resolves configuration in order of precedence: flags, environment
// variables, config file, built-in defaults.
func (s *rootState) preRun(cmd *cobra.Command, _ []string) error {
	s.viper.SetEnvPrefix(envPrefix)
	s.viper.AutomaticEnv()

	s.logger = polyzero.NewLogger(
		polyzero.WithLevel(polyzero.ParseLevel(s.viper.GetString(configKeyLogLevel))),
		polyzero.WithOutput(cmd.ErrOrStderr()),
		polyzero.WithTimestamp(),
	)
	cmd.SetContext(s.logger.WithContext(cmd.Context()))

	defaults, err := loadQueryDefaults(s.viper.GetString(configKeyConfig))
	if err != nil {
		return err
	}

	if heightStr := s.viper.GetString(configKeyHeight); heightStr != "" {
		queryHeight, err := requests.ParseQueryHeight(heightStr)
		if err != nil {
			return flags.ErrFlagInvalidValue.Wrapf("--%s: %s", flags.FlagHeight, err)
		}
		defaults.QueryHeight = queryHeight
	}
	s.defaults = defaults

	s.logger.Debug().
		Str("query_height", defaults.QueryHeight.String()).
		Str("include_proof", defaults.IncludeProof.String()).
		Msg("resolved query defaults")

	return nil
}

func loadQueryDefaults(configPath string) (*config.QueryDefaultsConfig, error) {
	if configPath == "" {
		return config.DefaultQueryDefaultsConfig(), nil
	}

	configContent, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".toml":
		return config.ParseQueryDefaultsTOML(configContent)
	default:
		return config.ParseQueryDefaultsYAML(configContent)
	}
}
