package requests

import (
	"encoding/hex"
	"strings"

	cmtbytes "github.com/cometbft/cometbft/libs/bytes"
	cmttypes "github.com/cometbft/cometbft/types"
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"

	"github.com/pokt-network/ibcquery/pkg/ibc/events"
	"github.com/pokt-network/ibcquery/pkg/ibc/ident"
)

// QueryTxKind discriminates the variants of QueryTxRequest.
type QueryTxKind int

const (
	QueryTxKindPacket QueryTxKind = iota
	QueryTxKindClient
	QueryTxKindTransaction
)

func (k QueryTxKind) String() string {
	switch k {
	case QueryTxKindPacket:
		return "packet"
	case QueryTxKindClient:
		return "client"
	case QueryTxKindTransaction:
		return "transaction"
	default:
		return "unknown"
	}
}

var (
	_ QueryTxRequest    = QueryPacketEventDataRequest{}
	_ QueryTxRequest    = QueryClientEventRequest{}
	_ QueryTxRequest    = QueryTxHash{}
	_ QueryBlockRequest = QueryPacketEventDataRequest{}
)

// QueryTxRequest asks for historical events (rather than current state) from
// the transactions indexed by a chain. It is implemented only by
// QueryPacketEventDataRequest, QueryClientEventRequest and QueryTxHash, and by
// pointers to them through Go's method set rules.
type QueryTxRequest interface {
	Kind() QueryTxKind
	isQueryTxRequest()
}

// QueryBlockRequest asks for historical events emitted at block level. Only
// packet events can be searched this way.
type QueryBlockRequest interface {
	isQueryBlockRequest()
}

// QueryPacketEventDataRequest asks for the EventID events of the packets with
// the given Sequences sent from the source channel end to the destination
// channel end, as of Height. Sequences must not be empty.
type QueryPacketEventDataRequest struct {
	EventID              events.WithBlockDataType `json:"event_id"`
	SourceChannelID      ident.ChannelID          `json:"source_channel_id"`
	SourcePortID         ident.PortID             `json:"source_port_id"`
	DestinationChannelID ident.ChannelID          `json:"destination_channel_id"`
	DestinationPortID    ident.PortID             `json:"destination_port_id"`
	Sequences            []ident.Sequence         `json:"sequences"`
	Height               QueryHeight              `json:"height"`
}

func (QueryPacketEventDataRequest) Kind() QueryTxKind    { return QueryTxKindPacket }
func (QueryPacketEventDataRequest) isQueryTxRequest()    {}
func (QueryPacketEventDataRequest) isQueryBlockRequest() {}

// QueryClientEventRequest asks for the EventID event of ClientID which
// installed the consensus state at ConsensusHeight, searching up to
// QueryHeight.
type QueryClientEventRequest struct {
	QueryHeight     QueryHeight              `json:"query_height"`
	EventID         events.WithBlockDataType `json:"event_id"`
	ClientID        ident.ClientID           `json:"client_id"`
	ConsensusHeight clienttypes.Height       `json:"consensus_height"`
}

func (QueryClientEventRequest) Kind() QueryTxKind { return QueryTxKindClient }
func (QueryClientEventRequest) isQueryTxRequest() {}

// QueryTxHash asks for the events of a single transaction.
type QueryTxHash struct {
	Hash cmtbytes.HexBytes `json:"hash"`
}

// QueryTxHashFromTx returns the QueryTxHash of the raw transaction tx.
func QueryTxHashFromTx(tx []byte) QueryTxHash {
	return QueryTxHash{Hash: cmttypes.Tx(tx).Hash()}
}

// ParseQueryTxHash parses a hex-encoded transaction hash.
func ParseQueryTxHash(hexHash string) (QueryTxHash, error) {
	hash, err := hex.DecodeString(strings.TrimPrefix(hexHash, "0x"))
	if err != nil {
		return QueryTxHash{}, ErrInvalidTxHash.Wrapf("%q: %s", hexHash, err)
	}
	if len(hash) == 0 {
		return QueryTxHash{}, ErrInvalidTxHash.Wrap("empty hash")
	}
	return QueryTxHash{Hash: hash}, nil
}

func (QueryTxHash) Kind() QueryTxKind { return QueryTxKindTransaction }
func (QueryTxHash) isQueryTxRequest() {}

// String returns the upper-case hex form CometBFT indexes hashes under.
func (q QueryTxHash) String() string {
	return q.Hash.String()
}
