package requests

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	grpctypes "github.com/cosmos/cosmos-sdk/types/grpc"
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/metadata"
)

func TestQueryHeight_Conversions(t *testing.T) {
	tests := []struct {
		desc                string
		queryHeight         QueryHeight
		expectedBlockHeight int64
		expectedMetadata    string
		expectedString      string
	}{
		{
			desc:                "latest",
			queryHeight:         LatestHeight(),
			expectedBlockHeight: 0,
			expectedMetadata:    "0",
			expectedString:      "latest height",
		},
		{
			desc:                "zero value is latest",
			queryHeight:         QueryHeight{},
			expectedBlockHeight: 0,
			expectedMetadata:    "0",
			expectedString:      "latest height",
		},
		{
			desc:                "specific height ignores revision number",
			queryHeight:         SpecificHeight(clienttypes.NewHeight(4, 42)),
			expectedBlockHeight: 42,
			expectedMetadata:    "42",
			expectedString:      "4-42",
		},
		{
			desc:                "largest block height",
			queryHeight:         SpecificHeight(clienttypes.NewHeight(0, math.MaxInt64)),
			expectedBlockHeight: math.MaxInt64,
			expectedMetadata:    "9223372036854775807",
			expectedString:      "0-9223372036854775807",
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			blockHeight, err := test.queryHeight.BlockHeight()
			require.NoError(t, err)
			require.Equal(t, test.expectedBlockHeight, blockHeight)

			metadataValue, err := test.queryHeight.MetadataValue()
			require.NoError(t, err)
			require.Equal(t, test.expectedMetadata, metadataValue)

			require.Equal(t, test.expectedString, test.queryHeight.String())
		})
	}
}

func TestQueryHeight_BlockHeightOverflow(t *testing.T) {
	queryHeight := SpecificHeight(clienttypes.NewHeight(1, math.MaxInt64+1))

	_, err := queryHeight.BlockHeight()
	require.ErrorIs(t, err, ErrInvalidHeight)

	// The metadata encoding has no such bound.
	metadataValue, err := queryHeight.MetadataValue()
	require.NoError(t, err)
	require.Equal(t, "9223372036854775808", metadataValue)
}

func TestQueryHeight_AppendToOutgoingContext(t *testing.T) {
	for _, test := range []struct {
		queryHeight QueryHeight
		expected    string
	}{
		{LatestHeight(), "0"},
		{SpecificHeight(clienttypes.NewHeight(1, 100)), "100"},
	} {
		ctx, err := test.queryHeight.AppendToOutgoingContext(context.Background())
		require.NoError(t, err)

		md, ok := metadata.FromOutgoingContext(ctx)
		require.True(t, ok)
		require.Equal(t, []string{test.expected}, md.Get(grpctypes.GRPCBlockHeightHeader))
	}
}

func TestQueryHeight_Accessors(t *testing.T) {
	require.True(t, LatestHeight().IsLatest())
	_, ok := LatestHeight().Height()
	require.False(t, ok)

	specific := SpecificHeight(clienttypes.NewHeight(2, 3))
	require.False(t, specific.IsLatest())
	height, ok := specific.Height()
	require.True(t, ok)
	require.Equal(t, clienttypes.NewHeight(2, 3), height)
}

func TestParseQueryHeight(t *testing.T) {
	tests := []struct {
		desc        string
		input       string
		expected    QueryHeight
		expectedErr error
	}{
		{desc: "latest keyword", input: "latest", expected: LatestHeight()},
		{desc: "empty string", input: "", expected: LatestHeight()},
		{desc: "revision height", input: "3-7", expected: SpecificHeight(clienttypes.NewHeight(3, 7))},
		{desc: "bare number", input: "7", expectedErr: ErrInvalidHeight},
		{desc: "garbage", input: "tip", expectedErr: ErrInvalidHeight},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			queryHeight, err := ParseQueryHeight(test.input)
			if test.expectedErr != nil {
				require.ErrorIs(t, err, test.expectedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.expected, queryHeight)
		})
	}
}

func TestQueryHeight_JSON(t *testing.T) {
	req := QueryChannelRequest{
		PortID:    "transfer",
		ChannelID: "channel-0",
		Height:    SpecificHeight(clienttypes.NewHeight(1, 42)),
	}

	bz, err := json.Marshal(req)
	require.NoError(t, err)
	require.JSONEq(t, `{"port_id":"transfer","channel_id":"channel-0","height":"1-42"}`, string(bz))

	var decoded QueryChannelRequest
	require.NoError(t, json.Unmarshal(bz, &decoded))
	require.Equal(t, req, decoded)

	bz, err = json.Marshal(QueryHostConsensusStateRequest{})
	require.NoError(t, err)
	require.JSONEq(t, `{"height":"latest"}`, string(bz))
}

func TestValidateASCIIMetadataValue(t *testing.T) {
	require.NoError(t, validateASCIIMetadataValue("12345"))
	require.ErrorIs(t, validateASCIIMetadataValue(""), ErrInvalidMetadata)
	require.ErrorIs(t, validateASCIIMetadataValue("12\n"), ErrInvalidMetadata)
	require.ErrorIs(t, validateASCIIMetadataValue("é"), ErrInvalidMetadata)
}

func TestIncludeProof(t *testing.T) {
	require.False(t, IncludeProof(0).Prove())
	require.True(t, IncludeProofYes.Prove())
	require.Equal(t, IncludeProofYes, IncludeProofFromBool(true))
	require.Equal(t, IncludeProofNo, IncludeProofFromBool(false))

	var p IncludeProof
	require.NoError(t, p.UnmarshalText([]byte("yes")))
	require.Equal(t, IncludeProofYes, p)
	require.ErrorIs(t, p.UnmarshalText([]byte("maybe")), ErrInvalidIncludeProof)

	text, err := IncludeProofNo.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "no", string(text))
}
