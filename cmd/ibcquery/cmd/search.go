package cmd

import (
	"cosmossdk.io/depinject"
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v8/modules/core/04-channel/types"
	"github.com/spf13/cobra"

	"github.com/pokt-network/ibcquery/cmd/flags"
	"github.com/pokt-network/ibcquery/pkg/client/requests"
	"github.com/pokt-network/ibcquery/pkg/client/requests/search"
	"github.com/pokt-network/ibcquery/pkg/ibc/events"
	"github.com/pokt-network/ibcquery/pkg/ibc/ident"
	"github.com/pokt-network/ibcquery/pkg/polylog"
)

// searchOutput is the output of the search subcommands.
type searchOutput struct {
	Kind    string   `json:"kind"`
	Method  string   `json:"method"`
	Height  string   `json:"height"`
	Queries []string `json:"queries"`
}

// SearchCmd returns the command printing the event search queries answering
// historical event requests.
func SearchCmd(state *rootState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Print the event search queries of a historical event request",
	}

	cmd.AddCommand(
		state.searchPacketCmd(),
		state.searchClientCmd(),
		state.searchTxCmd(),
	)

	return cmd
}

func (s *rootState) searchPacketCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "packet",
		Short: "Search for the send_packet or write_acknowledgement events of packets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eventID, err := eventIDFlag(cmd)
			if err != nil {
				return err
			}
			if !eventID.IsPacket() {
				return flags.ErrFlagInvalidValue.Wrapf("--%s: %s is not a packet event", flags.FlagEvent, eventID)
			}

			req := requests.QueryPacketEventDataRequest{
				EventID: eventID,
				Height:  s.defaults.QueryHeight,
			}
			if req.SourcePortID, err = requiredIdentifier(cmd, flags.FlagSrcPort, ident.NewPortID); err != nil {
				return err
			}
			if req.SourceChannelID, err = requiredIdentifier(cmd, flags.FlagSrcChannel, ident.NewChannelID); err != nil {
				return err
			}
			if req.DestinationPortID, err = requiredIdentifier(cmd, flags.FlagDstPort, ident.NewPortID); err != nil {
				return err
			}
			if req.DestinationChannelID, err = requiredIdentifier(cmd, flags.FlagDstChannel, ident.NewChannelID); err != nil {
				return err
			}
			if req.Sequences, err = sequencesFlag(cmd); err != nil {
				return err
			}

			builder, err := s.newEventQueryBuilder()
			if err != nil {
				return err
			}

			out := searchOutput{
				Kind:   req.Kind().String(),
				Method: "tx_search",
				Height: req.Height.String(),
			}
			if useBlock, _ := cmd.Flags().GetBool(flags.FlagBlock); useBlock {
				out.Method = "block_search"
				out.Queries, err = builder.BlockSearchQueries(req)
			} else {
				out.Queries, err = builder.TxSearchQueries(req)
			}
			if err != nil {
				return err
			}

			return printJSON(cmd, out)
		},
	}

	cmd.Flags().String(flags.FlagEvent, channeltypes.EventTypeSendPacket, "The packet event type (send_packet|write_acknowledgement)")
	cmd.Flags().String(flags.FlagSrcPort, "", "The source port identifier")
	cmd.Flags().String(flags.FlagSrcChannel, "", "The source channel identifier")
	cmd.Flags().String(flags.FlagDstPort, "", "The destination port identifier")
	cmd.Flags().String(flags.FlagDstChannel, "", "The destination channel identifier")
	cmd.Flags().StringSlice(flags.FlagSequences, nil, "Comma-separated packet sequences")
	cmd.Flags().Bool(flags.FlagBlock, false, flags.FlagBlockUsage)

	return cmd
}

func (s *rootState) searchClientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Search for the create_client or update_client event installing a consensus state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eventID, err := eventIDFlag(cmd)
			if err != nil {
				return err
			}
			if !eventID.IsClient() {
				return flags.ErrFlagInvalidValue.Wrapf("--%s: %s is not a client event", flags.FlagEvent, eventID)
			}

			clientID, err := requiredIdentifier(cmd, flags.FlagClientID, ident.NewClientID)
			if err != nil {
				return err
			}

			consensusHeightStr, _ := cmd.Flags().GetString(flags.FlagConsensusHeight)
			consensusHeight, err := clienttypes.ParseHeight(consensusHeightStr)
			if err != nil {
				return flags.ErrFlagInvalidValue.Wrapf("--%s: %s", flags.FlagConsensusHeight, err)
			}

			req := requests.QueryClientEventRequest{
				QueryHeight:     s.defaults.QueryHeight,
				EventID:         eventID,
				ClientID:        clientID,
				ConsensusHeight: consensusHeight,
			}

			builder, err := s.newEventQueryBuilder()
			if err != nil {
				return err
			}
			queries, err := builder.TxSearchQueries(req)
			if err != nil {
				return err
			}

			return printJSON(cmd, searchOutput{
				Kind:    req.Kind().String(),
				Method:  "tx_search",
				Height:  req.QueryHeight.String(),
				Queries: queries,
			})
		},
	}

	cmd.Flags().String(flags.FlagEvent, clienttypes.EventTypeUpdateClient, "The client event type (create_client|update_client)")
	cmd.Flags().String(flags.FlagClientID, "", "The client identifier")
	cmd.Flags().String(flags.FlagConsensusHeight, "", "The consensus height: {revision}-{height}")

	return cmd
}

func (s *rootState) searchTxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tx <hash>",
		Short: "Search for the events of a single transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			txHash, err := requests.ParseQueryTxHash(args[0])
			if err != nil {
				return err
			}

			builder, err := s.newEventQueryBuilder()
			if err != nil {
				return err
			}
			queries, err := builder.TxSearchQueries(txHash)
			if err != nil {
				return err
			}

			return printJSON(cmd, searchOutput{
				Kind:    txHash.Kind().String(),
				Method:  "tx_search",
				Height:  requests.LatestHeight().String(),
				Queries: queries,
			})
		},
	}
}

func (s *rootState) newEventQueryBuilder() (*search.EventQueryBuilder, error) {
	return search.NewEventQueryBuilder(depinject.Supply(polylog.Logger(s.logger)))
}

func eventIDFlag(cmd *cobra.Command) (events.WithBlockDataType, error) {
	eventType, _ := cmd.Flags().GetString(flags.FlagEvent)
	eventID, err := events.ParseWithBlockDataType(eventType)
	if err != nil {
		return 0, flags.ErrFlagInvalidValue.Wrapf("--%s: %s", flags.FlagEvent, err)
	}
	return eventID, nil
}
