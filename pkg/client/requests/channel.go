package requests

import (
	channeltypes "github.com/cosmos/ibc-go/v8/modules/core/04-channel/types"

	"github.com/pokt-network/ibcquery/pkg/ibc/ident"
)

var (
	_ Projector[*channeltypes.QueryConnectionChannelsRequest]  = QueryConnectionChannelsRequest{}
	_ Projector[*channeltypes.QueryChannelsRequest]            = QueryChannelsRequest{}
	_ Projector[*channeltypes.QueryChannelClientStateRequest]  = QueryChannelClientStateRequest{}
	_ Projector[*channeltypes.QueryNextSequenceReceiveRequest] = QueryNextSequenceReceiveRequest{}
)

// QueryConnectionChannelsRequest asks for the channels built on a connection.
type QueryConnectionChannelsRequest struct {
	ConnectionID ident.ConnectionID `json:"connection_id"`
	Pagination   *PageRequest       `json:"pagination,omitempty"`
}

// ToRaw projects the request onto its ibc-go wire message.
func (r QueryConnectionChannelsRequest) ToRaw() *channeltypes.QueryConnectionChannelsRequest {
	return &channeltypes.QueryConnectionChannelsRequest{
		Connection: r.ConnectionID.String(),
		Pagination: r.Pagination.ToRaw(),
	}
}

// QueryChannelsRequest lists the channels of a chain.
type QueryChannelsRequest struct {
	Pagination *PageRequest `json:"pagination,omitempty"`
}

// ToRaw projects the request onto its ibc-go wire message.
func (r QueryChannelsRequest) ToRaw() *channeltypes.QueryChannelsRequest {
	return &channeltypes.QueryChannelsRequest{
		Pagination: r.Pagination.ToRaw(),
	}
}

// QueryChannelRequest asks for a channel end at Height.
type QueryChannelRequest struct {
	PortID    ident.PortID    `json:"port_id"`
	ChannelID ident.ChannelID `json:"channel_id"`
	Height    QueryHeight     `json:"height"`
}

// QueryChannelClientStateRequest asks for the client state of the client
// underlying a channel.
type QueryChannelClientStateRequest struct {
	PortID    ident.PortID    `json:"port_id"`
	ChannelID ident.ChannelID `json:"channel_id"`
}

// ToRaw projects the request onto its ibc-go wire message.
func (r QueryChannelClientStateRequest) ToRaw() *channeltypes.QueryChannelClientStateRequest {
	return &channeltypes.QueryChannelClientStateRequest{
		PortId:    r.PortID.String(),
		ChannelId: r.ChannelID.String(),
	}
}

// QueryNextSequenceReceiveRequest asks, at Height, for the next sequence a
// channel end expects to receive.
type QueryNextSequenceReceiveRequest struct {
	PortID    ident.PortID    `json:"port_id"`
	ChannelID ident.ChannelID `json:"channel_id"`
	Height    QueryHeight     `json:"height"`
}

// ToRaw omits Height, which travels out-of-band.
func (r QueryNextSequenceReceiveRequest) ToRaw() *channeltypes.QueryNextSequenceReceiveRequest {
	return &channeltypes.QueryNextSequenceReceiveRequest{
		PortId:    r.PortID.String(),
		ChannelId: r.ChannelID.String(),
	}
}
