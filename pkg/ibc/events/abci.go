package events

import (
	"encoding/hex"
	"strconv"

	abci "github.com/cometbft/cometbft/abci/types"
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v8/modules/core/04-channel/types"

	"github.com/pokt-network/ibcquery/pkg/ibc/ident"
)

// Attribute keys of the cross_chain_query event.
const (
	AttributeKeyModule  = "module"
	AttributeKeyAction  = "action"
	AttributeKeyQueryID = "query_id"
	AttributeKeyChainID = "chain_id"
	AttributeKeyPath    = "path"
	AttributeKeyHeight  = "height"
)

// FromABCIEvent converts an ABCI event emitted by ibc-go (or the interchain
// query module) into its typed IbcEvent.
func FromABCIEvent(event abci.Event) (IbcEvent, error) {
	attrs := newAttributes(event)

	switch event.Type {
	case channeltypes.EventTypeSendPacket:
		packet, err := attrs.packet()
		if err != nil {
			return nil, err
		}
		return SendPacketEvent{Packet: packet}, nil

	case channeltypes.EventTypeWriteAck:
		packet, err := attrs.packet()
		if err != nil {
			return nil, err
		}
		ack, err := attrs.optionalHex(channeltypes.AttributeKeyAckHex)
		if err != nil {
			return nil, err
		}
		return WriteAcknowledgementEvent{Packet: packet, Ack: ack}, nil

	case clienttypes.EventTypeCreateClient:
		clientAttrs, err := attrs.client()
		if err != nil {
			return nil, err
		}
		return CreateClientEvent{ClientAttributes: clientAttrs}, nil

	case clienttypes.EventTypeUpdateClient:
		clientAttrs, err := attrs.client()
		if err != nil {
			return nil, err
		}
		return UpdateClientEvent{ClientAttributes: clientAttrs}, nil

	case EventTypeCrossChainQuery:
		return attrs.crossChainQuery()

	default:
		return nil, ErrUnknownEventType.Wrapf("%q", event.Type)
	}
}

// attributes indexes an event's attributes by key. When a key repeats, the
// last value wins.
type attributes struct {
	eventType string
	values    map[string]string
}

func newAttributes(event abci.Event) attributes {
	values := make(map[string]string, len(event.Attributes))
	for _, attr := range event.Attributes {
		values[attr.Key] = attr.Value
	}
	return attributes{eventType: event.Type, values: values}
}

func (a attributes) required(key string) (string, error) {
	value, ok := a.values[key]
	if !ok {
		return "", ErrMissingAttribute.Wrapf("%s.%s", a.eventType, key)
	}
	return value, nil
}

// attributeField is a required attribute and where its value is stored.
type attributeField struct {
	key string
	dst *string
}

// requiredAll reads fields in order; the first missing one is reported.
func (a attributes) requiredAll(fields ...attributeField) error {
	for _, field := range fields {
		value, err := a.required(field.key)
		if err != nil {
			return err
		}
		*field.dst = value
	}
	return nil
}

func (a attributes) optionalHex(key string) ([]byte, error) {
	value, ok := a.values[key]
	if !ok {
		return nil, nil
	}
	decoded, err := hex.DecodeString(value)
	if err != nil {
		return nil, ErrInvalidAttribute.Wrapf("%s.%s: %s", a.eventType, key, err)
	}
	return decoded, nil
}

func (a attributes) height(key string, required bool) (clienttypes.Height, error) {
	value, ok := a.values[key]
	if !ok {
		if required {
			return clienttypes.Height{}, ErrMissingAttribute.Wrapf("%s.%s", a.eventType, key)
		}
		return clienttypes.ZeroHeight(), nil
	}
	height, err := parseHeight(value)
	if err != nil {
		return clienttypes.Height{}, ErrInvalidAttribute.Wrapf("%s.%s: %s", a.eventType, key, err)
	}
	return height, nil
}

func (a attributes) packet() (Packet, error) {
	var (
		packet Packet
		err    error
	)

	seqStr, err := a.required(channeltypes.AttributeKeySequence)
	if err != nil {
		return Packet{}, err
	}
	if packet.Sequence, err = ident.ParseSequence(seqStr); err != nil {
		return Packet{}, ErrInvalidAttribute.Wrapf("%s.%s: %s", a.eventType, channeltypes.AttributeKeySequence, err)
	}

	if err = a.requiredAll(
		attributeField{channeltypes.AttributeKeySrcPort, (*string)(&packet.SourcePort)},
		attributeField{channeltypes.AttributeKeySrcChannel, (*string)(&packet.SourceChannel)},
		attributeField{channeltypes.AttributeKeyDstPort, (*string)(&packet.DestinationPort)},
		attributeField{channeltypes.AttributeKeyDstChannel, (*string)(&packet.DestinationChannel)},
	); err != nil {
		return Packet{}, err
	}

	if packet.Data, err = a.optionalHex(channeltypes.AttributeKeyDataHex); err != nil {
		return Packet{}, err
	}
	if packet.TimeoutHeight, err = a.height(channeltypes.AttributeKeyTimeoutHeight, false); err != nil {
		return Packet{}, err
	}
	if timestamp, ok := a.values[channeltypes.AttributeKeyTimeoutTimestamp]; ok {
		if packet.TimeoutTimestamp, err = strconv.ParseUint(timestamp, 10, 64); err != nil {
			return Packet{}, ErrInvalidAttribute.Wrapf("%s.%s: %s", a.eventType, channeltypes.AttributeKeyTimeoutTimestamp, err)
		}
	}

	return packet, nil
}

func (a attributes) client() (ClientAttributes, error) {
	clientID, err := a.required(clienttypes.AttributeKeyClientID)
	if err != nil {
		return ClientAttributes{}, err
	}
	consensusHeight, err := a.height(clienttypes.AttributeKeyConsensusHeight, true)
	if err != nil {
		return ClientAttributes{}, err
	}
	return ClientAttributes{
		ClientID:        ident.ClientID(clientID),
		ClientType:      a.values[clienttypes.AttributeKeyClientType],
		ConsensusHeight: consensusHeight,
	}, nil
}

func (a attributes) crossChainQuery() (CrossChainQueryPacket, error) {
	var (
		packet CrossChainQueryPacket
		err    error
	)

	if err = a.requiredAll(
		attributeField{AttributeKeyModule, &packet.Module},
		attributeField{AttributeKeyAction, &packet.Action},
		attributeField{AttributeKeyQueryID, &packet.ID},
		attributeField{AttributeKeyChainID, (*string)(&packet.ChainID)},
		attributeField{AttributeKeyPath, &packet.Path},
	); err != nil {
		return CrossChainQueryPacket{}, err
	}

	if packet.Height, err = a.height(AttributeKeyHeight, true); err != nil {
		return CrossChainQueryPacket{}, err
	}

	return packet, nil
}

// parseHeight accepts both the "{revision}-{height}" form and a bare block
// height, which is taken to be at revision 0.
func parseHeight(value string) (clienttypes.Height, error) {
	if height, err := clienttypes.ParseHeight(value); err == nil {
		return height, nil
	}
	revisionHeight, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return clienttypes.Height{}, err
	}
	return clienttypes.NewHeight(0, revisionHeight), nil
}
