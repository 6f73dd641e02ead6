package events

import (
	"fmt"

	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v8/modules/core/04-channel/types"

	"github.com/pokt-network/ibcquery/pkg/ibc/ident"
)

// EventTypeCrossChainQuery is emitted by the interchain query module when a
// query against another chain is requested.
const EventTypeCrossChainQuery = "cross_chain_query"

var (
	_ IbcEvent = SendPacketEvent{}
	_ IbcEvent = WriteAcknowledgementEvent{}
	_ IbcEvent = CreateClientEvent{}
	_ IbcEvent = UpdateClientEvent{}
	_ IbcEvent = CrossChainQueryPacket{}
)

// IbcEvent is an IBC event observed on a chain.
type IbcEvent interface {
	// EventType returns the ABCI event type the event was emitted as.
	EventType() string
}

// IbcEventWithHeight pairs an event with the height it was observed at.
type IbcEventWithHeight struct {
	Event  IbcEvent
	Height clienttypes.Height
}

// CrossChainQueryPacket returns the cross-chain query payload carried by the
// event, if any.
func (e IbcEventWithHeight) CrossChainQueryPacket() (CrossChainQueryPacket, bool) {
	switch ev := e.Event.(type) {
	case CrossChainQueryPacket:
		return ev, true
	case *CrossChainQueryPacket:
		if ev == nil {
			return CrossChainQueryPacket{}, false
		}
		return *ev, true
	default:
		return CrossChainQueryPacket{}, false
	}
}

func (e IbcEventWithHeight) String() string {
	if e.Event == nil {
		return fmt.Sprintf("<nil> at height %s", e.Height)
	}
	return fmt.Sprintf("%s at height %s", e.Event.EventType(), e.Height)
}

// Packet holds the packet fields common to packet lifecycle events.
type Packet struct {
	Sequence           ident.Sequence
	SourcePort         ident.PortID
	SourceChannel      ident.ChannelID
	DestinationPort    ident.PortID
	DestinationChannel ident.ChannelID
	Data               []byte
	TimeoutHeight      clienttypes.Height
	TimeoutTimestamp   uint64
}

type SendPacketEvent struct {
	Packet Packet
}

func (SendPacketEvent) EventType() string { return channeltypes.EventTypeSendPacket }

type WriteAcknowledgementEvent struct {
	Packet Packet
	Ack    []byte
}

func (WriteAcknowledgementEvent) EventType() string { return channeltypes.EventTypeWriteAck }

// ClientAttributes holds the fields common to client lifecycle events.
type ClientAttributes struct {
	ClientID        ident.ClientID
	ClientType      string
	ConsensusHeight clienttypes.Height
}

type CreateClientEvent struct {
	ClientAttributes
}

func (CreateClientEvent) EventType() string { return clienttypes.EventTypeCreateClient }

type UpdateClientEvent struct {
	ClientAttributes
}

func (UpdateClientEvent) EventType() string { return clienttypes.EventTypeUpdateClient }

// CrossChainQueryPacket is the payload of a cross_chain_query event: a request
// for the state found at Path on chain ChainID at Height.
type CrossChainQueryPacket struct {
	Module  string
	Action  string
	ID      string
	ChainID ident.ChainID
	// Path is hex-encoded.
	Path   string
	Height clienttypes.Height
}

func (CrossChainQueryPacket) EventType() string { return EventTypeCrossChainQuery }
