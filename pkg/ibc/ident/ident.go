package ident

import (
	"strconv"

	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	host "github.com/cosmos/ibc-go/v8/modules/core/24-host"
)

// ClientID identifies a light client on a chain, e.g. "07-tendermint-0".
type ClientID string

// ConnectionID identifies a connection end, e.g. "connection-0".
type ConnectionID string

// ChannelID identifies a channel end, e.g. "channel-0".
type ChannelID string

// PortID identifies the port a channel is bound to, e.g. "transfer".
type PortID string

// ChainID identifies a chain, e.g. "osmosis-1".
type ChainID string

// Sequence is the sequence number of a packet on a channel.
type Sequence uint64

// NewClientID validates id and returns it as a ClientID.
func NewClientID(id string) (ClientID, error) {
	if err := host.ClientIdentifierValidator(id); err != nil {
		return "", ErrInvalidIdentifier.Wrapf("client id %q: %s", id, err)
	}
	return ClientID(id), nil
}

// NewConnectionID validates id and returns it as a ConnectionID.
func NewConnectionID(id string) (ConnectionID, error) {
	if err := host.ConnectionIdentifierValidator(id); err != nil {
		return "", ErrInvalidIdentifier.Wrapf("connection id %q: %s", id, err)
	}
	return ConnectionID(id), nil
}

// NewChannelID validates id and returns it as a ChannelID.
func NewChannelID(id string) (ChannelID, error) {
	if err := host.ChannelIdentifierValidator(id); err != nil {
		return "", ErrInvalidIdentifier.Wrapf("channel id %q: %s", id, err)
	}
	return ChannelID(id), nil
}

// NewPortID validates id and returns it as a PortID.
func NewPortID(id string) (PortID, error) {
	if err := host.PortIdentifierValidator(id); err != nil {
		return "", ErrInvalidIdentifier.Wrapf("port id %q: %s", id, err)
	}
	return PortID(id), nil
}

// NewChainID returns id as a ChainID. Chain ids are free-form; only emptiness
// is rejected.
func NewChainID(id string) (ChainID, error) {
	if id == "" {
		return "", ErrInvalidIdentifier.Wrap("chain id cannot be empty")
	}
	return ChainID(id), nil
}

// ParseSequence parses a decimal packet sequence.
func ParseSequence(s string) (Sequence, error) {
	seq, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidSequence.Wrapf("%q: %s", s, err)
	}
	return Sequence(seq), nil
}

func (id ClientID) String() string     { return string(id) }
func (id ConnectionID) String() string { return string(id) }
func (id ChannelID) String() string    { return string(id) }
func (id PortID) String() string       { return string(id) }
func (id ChainID) String() string      { return string(id) }

// RevisionNumber returns the revision encoded in the chain id ("{name}-{n}"),
// or 0 if the chain id is not in revision format.
func (id ChainID) RevisionNumber() uint64 {
	return clienttypes.ParseChainID(string(id))
}

func (seq Sequence) String() string {
	return strconv.FormatUint(uint64(seq), 10)
}

// Uint64 returns the wire representation of the sequence.
func (seq Sequence) Uint64() uint64 {
	return uint64(seq)
}
