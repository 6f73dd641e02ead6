package requests

import (
	channeltypes "github.com/cosmos/ibc-go/v8/modules/core/04-channel/types"

	"github.com/pokt-network/ibcquery/pkg/ibc/ident"
)

var (
	_ Projector[*channeltypes.QueryPacketCommitmentsRequest]      = QueryPacketCommitmentsRequest{}
	_ Projector[*channeltypes.QueryUnreceivedPacketsRequest]      = QueryUnreceivedPacketsRequest{}
	_ Projector[*channeltypes.QueryPacketAcknowledgementsRequest] = QueryPacketAcknowledgementsRequest{}
	_ Projector[*channeltypes.QueryUnreceivedAcksRequest]         = QueryUnreceivedAcksRequest{}
)

// QueryPacketCommitmentRequest asks for the commitment of a sent packet at
// Height.
type QueryPacketCommitmentRequest struct {
	PortID    ident.PortID    `json:"port_id"`
	ChannelID ident.ChannelID `json:"channel_id"`
	Sequence  ident.Sequence  `json:"sequence"`
	Height    QueryHeight     `json:"height"`
}

// QueryPacketCommitmentsRequest lists the packet commitments on a channel.
type QueryPacketCommitmentsRequest struct {
	PortID     ident.PortID    `json:"port_id"`
	ChannelID  ident.ChannelID `json:"channel_id"`
	Pagination *PageRequest    `json:"pagination,omitempty"`
}

// ToRaw projects the request onto its ibc-go wire message.
func (r QueryPacketCommitmentsRequest) ToRaw() *channeltypes.QueryPacketCommitmentsRequest {
	return &channeltypes.QueryPacketCommitmentsRequest{
		PortId:     r.PortID.String(),
		ChannelId:  r.ChannelID.String(),
		Pagination: r.Pagination.ToRaw(),
	}
}

// QueryPacketReceiptRequest asks whether a packet was received, at Height.
type QueryPacketReceiptRequest struct {
	PortID    ident.PortID    `json:"port_id"`
	ChannelID ident.ChannelID `json:"channel_id"`
	Sequence  ident.Sequence  `json:"sequence"`
	Height    QueryHeight     `json:"height"`
}

// QueryUnreceivedPacketsRequest asks the receiving chain which of the given
// commitment sequences it has not received yet.
type QueryUnreceivedPacketsRequest struct {
	PortID                    ident.PortID     `json:"port_id"`
	ChannelID                 ident.ChannelID  `json:"channel_id"`
	PacketCommitmentSequences []ident.Sequence `json:"packet_commitment_sequences"`
}

// ToRaw projects the request onto its ibc-go wire message. Sequences keep
// their order.
func (r QueryUnreceivedPacketsRequest) ToRaw() *channeltypes.QueryUnreceivedPacketsRequest {
	return &channeltypes.QueryUnreceivedPacketsRequest{
		PortId:                    r.PortID.String(),
		ChannelId:                 r.ChannelID.String(),
		PacketCommitmentSequences: rawSequences(r.PacketCommitmentSequences),
	}
}

// QueryPacketAcknowledgementRequest asks for the acknowledgement written for a
// received packet, at Height.
type QueryPacketAcknowledgementRequest struct {
	PortID    ident.PortID    `json:"port_id"`
	ChannelID ident.ChannelID `json:"channel_id"`
	Sequence  ident.Sequence  `json:"sequence"`
	Height    QueryHeight     `json:"height"`
}

// QueryPacketAcknowledgementsRequest lists acknowledgements on a channel,
// optionally filtered to PacketCommitmentSequences.
type QueryPacketAcknowledgementsRequest struct {
	PortID                    ident.PortID     `json:"port_id"`
	ChannelID                 ident.ChannelID  `json:"channel_id"`
	Pagination                *PageRequest     `json:"pagination,omitempty"`
	PacketCommitmentSequences []ident.Sequence `json:"packet_commitment_sequences"`
}

// ToRaw projects the request onto its ibc-go wire message.
func (r QueryPacketAcknowledgementsRequest) ToRaw() *channeltypes.QueryPacketAcknowledgementsRequest {
	return &channeltypes.QueryPacketAcknowledgementsRequest{
		PortId:                    r.PortID.String(),
		ChannelId:                 r.ChannelID.String(),
		Pagination:                r.Pagination.ToRaw(),
		PacketCommitmentSequences: rawSequences(r.PacketCommitmentSequences),
	}
}

// QueryUnreceivedAcksRequest asks the sending chain which of the given
// acknowledged sequences it has not processed the acknowledgement of yet.
type QueryUnreceivedAcksRequest struct {
	PortID             ident.PortID     `json:"port_id"`
	ChannelID          ident.ChannelID  `json:"channel_id"`
	PacketAckSequences []ident.Sequence `json:"packet_ack_sequences"`
}

// ToRaw projects the request onto its ibc-go wire message. Sequences keep
// their order.
func (r QueryUnreceivedAcksRequest) ToRaw() *channeltypes.QueryUnreceivedAcksRequest {
	return &channeltypes.QueryUnreceivedAcksRequest{
		PortId:             r.PortID.String(),
		ChannelId:          r.ChannelID.String(),
		PacketAckSequences: rawSequences(r.PacketAckSequences),
	}
}
