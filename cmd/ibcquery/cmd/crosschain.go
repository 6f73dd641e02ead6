package cmd

import (
	abci "github.com/cometbft/cometbft/abci/types"
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	"github.com/spf13/cobra"

	"github.com/pokt-network/ibcquery/cmd/flags"
	"github.com/pokt-network/ibcquery/pkg/client/requests"
	"github.com/pokt-network/ibcquery/pkg/ibc/events"
)

const (
	defaultCrossChainModule = "interchainquery"
	defaultCrossChainAction = "query"
)

// crossChainAttributeFlags maps flags to cross_chain_query attributes, in the
// order the attributes are emitted.
var crossChainAttributeFlags = []struct {
	flagName string
	key      string
}{
	{flags.FlagModule, events.AttributeKeyModule},
	{flags.FlagAction, events.AttributeKeyAction},
	{flags.FlagQueryID, events.AttributeKeyQueryID},
	{flags.FlagChainID, events.AttributeKeyChainID},
	{flags.FlagPath, events.AttributeKeyPath},
	{flags.FlagRemoteHeight, events.AttributeKeyHeight},
}

// crossChainOutput is the output of the cross-chain command.
type crossChainOutput struct {
	ObservedAt  string                          `json:"observed_at"`
	Request     requests.CrossChainQueryRequest `json:"request"`
	DecodedPath *string                         `json:"decoded_path"`
}

// CrossChainCmd returns the command turning the attributes of a
// cross_chain_query event into the cross-chain query request it carries.
func CrossChainCmd(state *rootState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cross-chain",
		Short: "Build the cross-chain query request carried by a cross_chain_query event",
		Long: `Build a cross_chain_query event from the given attributes, convert it into the
cross-chain query request it carries and print the request along with its
hex-decoded path. The event is considered observed at the query height.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return state.runCrossChain(cmd)
		},
	}

	cmd.Flags().String(flags.FlagModule, defaultCrossChainModule, "The module attribute of the event")
	cmd.Flags().String(flags.FlagAction, defaultCrossChainAction, "The action attribute of the event")
	cmd.Flags().String(flags.FlagQueryID, "", "The query identifier")
	cmd.Flags().String(flags.FlagChainID, "", "The chain identifier of the queried chain")
	cmd.Flags().String(flags.FlagPath, "", "The hex-encoded query path")
	cmd.Flags().String(flags.FlagRemoteHeight, "0-0", "The height to query the remote chain at: {revision}-{height}")

	return cmd
}

func (s *rootState) runCrossChain(cmd *cobra.Command) error {
	logger := s.logger.With("cmd", "cross-chain")

	attrs := make([]abci.EventAttribute, 0, len(crossChainAttributeFlags))
	for _, attrFlag := range crossChainAttributeFlags {
		value, err := cmd.Flags().GetString(attrFlag.flagName)
		if err != nil {
			return flags.ErrFlagNotRegistered.Wrapf("--%s: %s", attrFlag.flagName, err)
		}
		attrs = append(attrs, abci.EventAttribute{Key: attrFlag.key, Value: value})
	}

	event, err := events.FromABCIEvent(abci.Event{
		Type:       events.EventTypeCrossChainQuery,
		Attributes: attrs,
	})
	if err != nil {
		return err
	}

	observedAt, ok := s.defaults.QueryHeight.Height()
	if !ok {
		observedAt = clienttypes.ZeroHeight()
	}
	eventWithHeight := events.IbcEventWithHeight{Event: event, Height: observedAt}

	req, err := requests.NewCrossChainQueryRequest(eventWithHeight)
	if err != nil {
		return err
	}

	out := crossChainOutput{
		ObservedAt: observedAt.String(),
		Request:    req,
	}
	if path, ok := req.DecodePathOrNone(); ok {
		out.DecodedPath = &path
	} else {
		logger.Warn().Str("path", req.Path).Msg("query path is not valid hex")
	}

	return printJSON(cmd, out)
}
