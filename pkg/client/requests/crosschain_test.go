package requests

import (
	"testing"

	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	"github.com/stretchr/testify/require"

	"github.com/pokt-network/ibcquery/pkg/ibc/events"
)

func TestNewCrossChainQueryRequest(t *testing.T) {
	packet := events.CrossChainQueryPacket{
		Module:  "interchainquery",
		Action:  "query",
		ID:      "query-7",
		ChainID: "osmosis-1",
		Path:    "68656c6c6f",
		Height:  clienttypes.NewHeight(1, 120),
	}

	for _, event := range []events.IbcEvent{packet, &packet} {
		req, err := NewCrossChainQueryRequest(events.IbcEventWithHeight{
			Event:  event,
			Height: clienttypes.NewHeight(2, 5),
		})
		require.NoError(t, err)
		require.Equal(t, CrossChainQueryRequest{
			ChainID: "osmosis-1",
			ID:      "query-7",
			Path:    "68656c6c6f",
			Height:  "1-120",
		}, req)
	}
}

func TestNewCrossChainQueryRequest_WithoutPayload(t *testing.T) {
	for _, event := range []events.IbcEvent{
		events.SendPacketEvent{},
		events.UpdateClientEvent{},
		nil,
	} {
		_, err := NewCrossChainQueryRequest(events.IbcEventWithHeight{Event: event})
		require.ErrorIs(t, err, ErrInvalidTypeConversion)
	}
}

func TestCrossChainQueryRequest_DecodePathOrNone(t *testing.T) {
	tests := []struct {
		desc         string
		path         string
		expected     string
		expectedSome bool
	}{
		{desc: "ascii path", path: "68656c6c6f", expected: "hello", expectedSome: true},
		{desc: "upper case hex", path: "68656C6C6F", expected: "hello", expectedSome: true},
		{desc: "empty path", path: "", expected: "", expectedSome: true},
		{desc: "invalid utf8 is replaced", path: "68ff69", expected: "h\uFFFDi", expectedSome: true},
		{desc: "each invalid byte is replaced", path: "fffe", expected: "\uFFFD\uFFFD", expectedSome: true},
		{desc: "truncated sequence is replaced once", path: "e282", expected: "\uFFFD", expectedSome: true},
		{desc: "multibyte path", path: "e282ac2f", expected: "\u20AC/", expectedSome: true},
		{desc: "not hex", path: "not-hex!", expectedSome: false},
		{desc: "odd length", path: "686", expectedSome: false},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			decoded, ok := CrossChainQueryRequest{Path: test.path}.DecodePathOrNone()
			require.Equal(t, test.expectedSome, ok)
			require.Equal(t, test.expected, decoded)
		})
	}
}
