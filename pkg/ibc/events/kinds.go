package events

import (
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v8/modules/core/04-channel/types"
)

// WithBlockDataType tags the kind of event a historical event query looks for.
type WithBlockDataType int

const (
	CreateClient WithBlockDataType = iota
	UpdateClient
	SendPacket
	WriteAck
)

// EventType returns the ABCI event type emitted by ibc-go for the kind.
func (t WithBlockDataType) EventType() string {
	switch t {
	case CreateClient:
		return clienttypes.EventTypeCreateClient
	case UpdateClient:
		return clienttypes.EventTypeUpdateClient
	case SendPacket:
		return channeltypes.EventTypeSendPacket
	case WriteAck:
		return channeltypes.EventTypeWriteAck
	default:
		return "unknown"
	}
}

func (t WithBlockDataType) String() string {
	return t.EventType()
}

// IsPacket reports whether the kind is a packet lifecycle event.
func (t WithBlockDataType) IsPacket() bool {
	return t == SendPacket || t == WriteAck
}

// IsClient reports whether the kind is a client lifecycle event.
func (t WithBlockDataType) IsClient() bool {
	return t == CreateClient || t == UpdateClient
}

// ParseWithBlockDataType maps an ibc-go event type back to its kind.
func ParseWithBlockDataType(eventType string) (WithBlockDataType, error) {
	for _, kind := range []WithBlockDataType{CreateClient, UpdateClient, SendPacket, WriteAck} {
		if kind.EventType() == eventType {
			return kind, nil
		}
	}
	return 0, ErrUnknownEventType.Wrapf("%q", eventType)
}
