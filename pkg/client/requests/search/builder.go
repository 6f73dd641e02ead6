package search

import (
	"fmt"
	"strings"

	"cosmossdk.io/depinject"
	cmtquery "github.com/cometbft/cometbft/libs/pubsub/query"
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v8/modules/core/04-channel/types"

	"github.com/pokt-network/ibcquery/pkg/client/requests"
	"github.com/pokt-network/ibcquery/pkg/polylog"
)

const (
	txHashKey      = "tx.hash"
	txHeightKey    = "tx.height"
	blockHeightKey = "block.height"
)

// EventQueryBuilder builds event search queries for historical event requests.
type EventQueryBuilder struct {
	logger polylog.Logger
}

// NewEventQueryBuilder returns a new EventQueryBuilder by injecting the
// dependencies provided by the depinject.Config.
//
// Required dependencies:
// - polylog.Logger
func NewEventQueryBuilder(deps depinject.Config) (*EventQueryBuilder, error) {
	builder := &EventQueryBuilder{}

	if err := depinject.Inject(deps, &builder.logger); err != nil {
		return nil, err
	}
	builder.logger = builder.logger.With("component", "event_query_builder")

	return builder, nil
}

// TxSearchQueries returns the tx_search queries answering req. Packet requests
// produce one query per sequence, in the order of req's sequences; the other
// kinds produce a single query. Pointers to the request variants are accepted
// as well as values.
func (b *EventQueryBuilder) TxSearchQueries(req requests.QueryTxRequest) ([]string, error) {
	var (
		queries []string
		err     error
	)

	req, err = derefTxRequest(req)
	if err != nil {
		BuildErrorsTotal.WithLabelValues(methodTxSearch).Inc()
		return nil, err
	}

	switch r := req.(type) {
	case requests.QueryPacketEventDataRequest:
		queries, err = packetQueries(r, txHeightKey, "<=")
	case requests.QueryClientEventRequest:
		queries, err = clientQueries(r)
	case requests.QueryTxHash:
		queries = []string{newQuery().eq(txHashKey, r.String()).String()}
	default:
		err = ErrSearchUnsupportedRequest.Wrapf("%T", req)
	}
	if err == nil {
		err = validateQueries(queries)
	}
	if err != nil {
		BuildErrorsTotal.WithLabelValues(methodTxSearch).Inc()
		return nil, err
	}

	QueriesBuiltTotal.WithLabelValues(methodTxSearch, req.Kind().String()).Add(float64(len(queries)))
	b.logger.Debug().
		Str("kind", req.Kind().String()).
		Strs("queries", queries).
		Msg("built tx search queries")

	return queries, nil
}

// BlockSearchQueries returns the block_search queries answering req, one per
// packet sequence. A *QueryPacketEventDataRequest is accepted as well.
func (b *EventQueryBuilder) BlockSearchQueries(req requests.QueryBlockRequest) ([]string, error) {
	var (
		queries []string
		err     error
	)

	if r, ok := req.(*requests.QueryPacketEventDataRequest); ok {
		if r == nil {
			BuildErrorsTotal.WithLabelValues(methodBlockSearch).Inc()
			return nil, ErrSearchUnsupportedRequest.Wrap("nil request")
		}
		req = *r
	}

	switch r := req.(type) {
	case requests.QueryPacketEventDataRequest:
		queries, err = packetQueries(r, blockHeightKey, "=")
	default:
		err = ErrSearchUnsupportedRequest.Wrapf("%T", req)
	}
	if err == nil {
		err = validateQueries(queries)
	}
	if err != nil {
		BuildErrorsTotal.WithLabelValues(methodBlockSearch).Inc()
		return nil, err
	}

	QueriesBuiltTotal.WithLabelValues(methodBlockSearch, requests.QueryTxKindPacket.String()).Add(float64(len(queries)))
	b.logger.Debug().
		Strs("queries", queries).
		Msg("built block search queries")

	return queries, nil
}

// derefTxRequest turns pointers to the request variants into values. A nil
// request, or a nil pointer, is unsupported.
func derefTxRequest(req requests.QueryTxRequest) (requests.QueryTxRequest, error) {
	var isNil bool
	switch r := req.(type) {
	case nil:
		isNil = true
	case *requests.QueryPacketEventDataRequest:
		if isNil = r == nil; !isNil {
			return *r, nil
		}
	case *requests.QueryClientEventRequest:
		if isNil = r == nil; !isNil {
			return *r, nil
		}
	case *requests.QueryTxHash:
		if isNil = r == nil; !isNil {
			return *r, nil
		}
	}
	if isNil {
		return nil, ErrSearchUnsupportedRequest.Wrap("nil request")
	}
	return req, nil
}

func packetQueries(
	req requests.QueryPacketEventDataRequest,
	heightKey string,
	heightOp string,
) ([]string, error) {
	if !req.EventID.IsPacket() {
		return nil, ErrSearchUnsupportedRequest.Wrapf("%s is not a packet event", req.EventID)
	}
	if len(req.Sequences) == 0 {
		return nil, ErrSearchEmptySequences
	}

	eventType := req.EventID.EventType()
	queries := make([]string, 0, len(req.Sequences))
	for _, seq := range req.Sequences {
		q := newQuery().
			eq(attributeKey(eventType, channeltypes.AttributeKeySrcChannel), req.SourceChannelID.String()).
			eq(attributeKey(eventType, channeltypes.AttributeKeySrcPort), req.SourcePortID.String()).
			eq(attributeKey(eventType, channeltypes.AttributeKeyDstChannel), req.DestinationChannelID.String()).
			eq(attributeKey(eventType, channeltypes.AttributeKeyDstPort), req.DestinationPortID.String()).
			eq(attributeKey(eventType, channeltypes.AttributeKeySequence), seq.String()).
			height(heightKey, heightOp, req.Height)
		queries = append(queries, q.String())
	}
	return queries, nil
}

func clientQueries(req requests.QueryClientEventRequest) ([]string, error) {
	if !req.EventID.IsClient() {
		return nil, ErrSearchUnsupportedRequest.Wrapf("%s is not a client event", req.EventID)
	}

	eventType := req.EventID.EventType()
	q := newQuery().
		eq(attributeKey(eventType, clienttypes.AttributeKeyClientID), req.ClientID.String()).
		eq(attributeKey(eventType, clienttypes.AttributeKeyConsensusHeight), req.ConsensusHeight.String()).
		height(txHeightKey, "<=", req.QueryHeight)
	return []string{q.String()}, nil
}

func validateQueries(queries []string) error {
	for _, q := range queries {
		if _, err := cmtquery.New(q); err != nil {
			return ErrSearchInvalidQuery.Wrapf("%q: %s", q, err)
		}
	}
	return nil
}

func attributeKey(eventType, attribute string) string {
	return eventType + "." + attribute
}

// query accumulates conditions joined with AND.
type query struct {
	conditions []string
}

func newQuery() *query {
	return &query{}
}

func (q *query) eq(key, value string) *query {
	q.conditions = append(q.conditions, fmt.Sprintf("%s = '%s'", key, value))
	return q
}

// height constrains the query by the query height. The latest height adds no
// condition.
func (q *query) height(key, op string, queryHeight requests.QueryHeight) *query {
	if queryHeight.IsLatest() {
		return q
	}
	q.conditions = append(q.conditions, fmt.Sprintf("%s %s %d", key, op, queryHeight.RevisionHeight()))
	return q
}

func (q *query) String() string {
	return strings.Join(q.conditions, " AND ")
}
