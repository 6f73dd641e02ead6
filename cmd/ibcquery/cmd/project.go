package cmd

import (
	"encoding/json"
	"sort"

	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/gogoproto/proto"
	"github.com/spf13/cobra"
	"google.golang.org/grpc/metadata"

	"github.com/pokt-network/ibcquery/cmd/flags"
	"github.com/pokt-network/ibcquery/pkg/client/requests"
	"github.com/pokt-network/ibcquery/pkg/ibc/ident"
)

// projection is the output of the project command.
type projection struct {
	Kind         string            `json:"kind"`
	Height       string            `json:"height"`
	BlockHeight  int64             `json:"block_height"`
	Metadata     map[string]string `json:"metadata"`
	IncludeProof string            `json:"include_proof"`
	Request      json.RawMessage   `json:"request"`
}

// projectFn builds a request from the command's flags and projects it.
type projectFn func(s *rootState, cmd *cobra.Command) (proto.Message, error)

var projectFns = map[string]projectFn{
	"client-states": func(s *rootState, cmd *cobra.Command) (proto.Message, error) {
		pageRequest, err := s.pageRequestFlags(cmd)
		if err != nil {
			return nil, err
		}
		return requests.QueryClientStatesRequest{Pagination: pageRequest}.ToRaw(), nil
	},
	"consensus-states": func(s *rootState, cmd *cobra.Command) (proto.Message, error) {
		clientID, err := requiredIdentifier(cmd, flags.FlagClientID, ident.NewClientID)
		if err != nil {
			return nil, err
		}
		pageRequest, err := s.pageRequestFlags(cmd)
		if err != nil {
			return nil, err
		}
		return requests.QueryConsensusStatesRequest{ClientID: clientID, Pagination: pageRequest}.ToRaw(), nil
	},
	"connections": func(s *rootState, cmd *cobra.Command) (proto.Message, error) {
		pageRequest, err := s.pageRequestFlags(cmd)
		if err != nil {
			return nil, err
		}
		return requests.QueryConnectionsRequest{Pagination: pageRequest}.ToRaw(), nil
	},
	"client-connections": func(s *rootState, cmd *cobra.Command) (proto.Message, error) {
		clientID, err := requiredIdentifier(cmd, flags.FlagClientID, ident.NewClientID)
		if err != nil {
			return nil, err
		}
		return requests.QueryClientConnectionsRequest{ClientID: clientID}.ToRaw(), nil
	},
	"connection-channels": func(s *rootState, cmd *cobra.Command) (proto.Message, error) {
		connectionID, err := requiredIdentifier(cmd, flags.FlagConnectionID, ident.NewConnectionID)
		if err != nil {
			return nil, err
		}
		pageRequest, err := s.pageRequestFlags(cmd)
		if err != nil {
			return nil, err
		}
		return requests.QueryConnectionChannelsRequest{ConnectionID: connectionID, Pagination: pageRequest}.ToRaw(), nil
	},
	"channels": func(s *rootState, cmd *cobra.Command) (proto.Message, error) {
		pageRequest, err := s.pageRequestFlags(cmd)
		if err != nil {
			return nil, err
		}
		return requests.QueryChannelsRequest{Pagination: pageRequest}.ToRaw(), nil
	},
	"channel-client-state": func(s *rootState, cmd *cobra.Command) (proto.Message, error) {
		portID, channelID, err := channelEndFlags(cmd)
		if err != nil {
			return nil, err
		}
		return requests.QueryChannelClientStateRequest{PortID: portID, ChannelID: channelID}.ToRaw(), nil
	},
	"packet-commitments": func(s *rootState, cmd *cobra.Command) (proto.Message, error) {
		portID, channelID, err := channelEndFlags(cmd)
		if err != nil {
			return nil, err
		}
		pageRequest, err := s.pageRequestFlags(cmd)
		if err != nil {
			return nil, err
		}
		return requests.QueryPacketCommitmentsRequest{
			PortID:     portID,
			ChannelID:  channelID,
			Pagination: pageRequest,
		}.ToRaw(), nil
	},
	"unreceived-packets": func(s *rootState, cmd *cobra.Command) (proto.Message, error) {
		portID, channelID, err := channelEndFlags(cmd)
		if err != nil {
			return nil, err
		}
		sequences, err := sequencesFlag(cmd)
		if err != nil {
			return nil, err
		}
		return requests.QueryUnreceivedPacketsRequest{
			PortID:                    portID,
			ChannelID:                 channelID,
			PacketCommitmentSequences: sequences,
		}.ToRaw(), nil
	},
	"packet-acknowledgements": func(s *rootState, cmd *cobra.Command) (proto.Message, error) {
		portID, channelID, err := channelEndFlags(cmd)
		if err != nil {
			return nil, err
		}
		sequences, err := sequencesFlag(cmd)
		if err != nil {
			return nil, err
		}
		pageRequest, err := s.pageRequestFlags(cmd)
		if err != nil {
			return nil, err
		}
		return requests.QueryPacketAcknowledgementsRequest{
			PortID:                    portID,
			ChannelID:                 channelID,
			Pagination:                pageRequest,
			PacketCommitmentSequences: sequences,
		}.ToRaw(), nil
	},
	"unreceived-acks": func(s *rootState, cmd *cobra.Command) (proto.Message, error) {
		portID, channelID, err := channelEndFlags(cmd)
		if err != nil {
			return nil, err
		}
		sequences, err := sequencesFlag(cmd)
		if err != nil {
			return nil, err
		}
		return requests.QueryUnreceivedAcksRequest{
			PortID:             portID,
			ChannelID:          channelID,
			PacketAckSequences: sequences,
		}.ToRaw(), nil
	},
	"next-sequence-receive": func(s *rootState, cmd *cobra.Command) (proto.Message, error) {
		portID, channelID, err := channelEndFlags(cmd)
		if err != nil {
			return nil, err
		}
		return requests.QueryNextSequenceReceiveRequest{
			PortID:    portID,
			ChannelID: channelID,
			Height:    s.defaults.QueryHeight,
		}.ToRaw(), nil
	},
}

func projectKinds() []string {
	kinds := make([]string, 0, len(projectFns))
	for kind := range projectFns {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// ProjectCmd returns the command printing the wire form of a request.
func ProjectCmd(state *rootState) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "project <kind>",
		Short:     "Print the wire form of a query request",
		Long:      "Build a query request from flags and print its ibc-go wire message together with the out-of-band query height.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: projectKinds(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return state.runProject(cmd, args[0])
		},
	}

	cmd.Flags().String(flags.FlagClientID, "", "The client identifier")
	cmd.Flags().String(flags.FlagConnectionID, "", "The connection identifier")
	cmd.Flags().String(flags.FlagPortID, "", "The port identifier")
	cmd.Flags().String(flags.FlagChannelID, "", "The channel identifier")
	cmd.Flags().StringSlice(flags.FlagSequences, nil, "Comma-separated packet sequences")
	addPaginationFlags(cmd)

	return cmd
}

func (s *rootState) runProject(cmd *cobra.Command, kind string) error {
	logger := s.logger.With("cmd", "project", "kind", kind)

	fn, ok := projectFns[kind]
	if !ok {
		return flags.ErrFlagInvalidValue.Wrapf("unknown kind %q; expected one of %v", kind, projectKinds())
	}

	rawRequest, err := fn(s, cmd)
	if err != nil {
		return err
	}

	requestJSON, err := codec.ProtoMarshalJSON(rawRequest, nil)
	if err != nil {
		return err
	}

	queryHeight := s.defaults.QueryHeight
	blockHeight, err := queryHeight.BlockHeight()
	if err != nil {
		return err
	}
	ctx, err := queryHeight.AppendToOutgoingContext(cmd.Context())
	if err != nil {
		return err
	}
	md, _ := metadata.FromOutgoingContext(ctx)

	out := projection{
		Kind:         kind,
		Height:       queryHeight.String(),
		BlockHeight:  blockHeight,
		Metadata:     make(map[string]string, len(md)),
		IncludeProof: s.defaults.IncludeProof.String(),
		Request:      requestJSON,
	}
	for key, values := range md {
		if len(values) > 0 {
			out.Metadata[key] = values[len(values)-1]
		}
	}

	logger.Debug().Msgf("projected %s", proto.MessageName(rawRequest))

	return printJSON(cmd, out)
}

func channelEndFlags(cmd *cobra.Command) (ident.PortID, ident.ChannelID, error) {
	portID, err := requiredIdentifier(cmd, flags.FlagPortID, ident.NewPortID)
	if err != nil {
		return "", "", err
	}
	channelID, err := requiredIdentifier(cmd, flags.FlagChannelID, ident.NewChannelID)
	if err != nil {
		return "", "", err
	}
	return portID, channelID, nil
}
