package cmd

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pokt-network/ibcquery/cmd/flags"
	"github.com/pokt-network/ibcquery/pkg/client/requests"
	"github.com/pokt-network/ibcquery/pkg/ibc/events"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out, _, err := executeWithLogs(t, args...)
	return out, err
}

// executeWithLogs also returns what was logged.
func executeWithLogs(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	rootCmd := NewRootCmd()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestProjectCmd_SpecificHeight(t *testing.T) {
	out, err := execute(t, "project", "client-states", "--height", "1-100", "--limit", "10", "--reverse")
	require.NoError(t, err)

	var result struct {
		projection
		Request map[string]any `json:"request"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	require.Equal(t, "client-states", result.Kind)
	require.Equal(t, "1-100", result.Height)
	require.Equal(t, int64(100), result.BlockHeight)
	require.Equal(t, map[string]string{"x-cosmos-block-height": "100"}, result.Metadata)
	require.Equal(t, requests.IncludeProofNo.String(), result.IncludeProof)

	pagination, ok := result.Request["pagination"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "10", pagination["limit"])
	require.Equal(t, true, pagination["reverse"])
}

func TestProjectCmd_LatestHeight(t *testing.T) {
	out, err := execute(t, "project", "unreceived-packets",
		"--port-id", "transfer",
		"--channel-id", "channel-7",
		"--sequences", "5,2,9",
	)
	require.NoError(t, err)

	var result struct {
		projection
		Request map[string]any `json:"request"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	require.Equal(t, "latest height", result.Height)
	require.Zero(t, result.BlockHeight)
	require.Equal(t, "0", result.Metadata["x-cosmos-block-height"])
	require.Equal(t, "transfer", result.Request["port_id"])
	require.Equal(t, "channel-7", result.Request["channel_id"])
	require.Equal(t, []any{"5", "2", "9"}, result.Request["packet_commitment_sequences"])
}

func TestProjectCmd_ConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "defaults.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
query_height = "2-55"
include_proof = true

[pagination]
limit = 25
`), 0o600))

	out, err := execute(t, "project", "channels", "--config", configPath)
	require.NoError(t, err)

	var result struct {
		projection
		Request map[string]any `json:"request"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	require.Equal(t, "2-55", result.Height)
	require.Equal(t, requests.IncludeProofYes.String(), result.IncludeProof)
	pagination, ok := result.Request["pagination"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "25", pagination["limit"])
}

func TestProjectCmd_Errors(t *testing.T) {
	tests := []struct {
		desc        string
		args        []string
		expectedErr error
	}{
		{
			desc:        "unknown kind",
			args:        []string{"project", "client-statez"},
			expectedErr: flags.ErrFlagInvalidValue,
		},
		{
			desc:        "missing client identifier",
			args:        []string{"project", "consensus-states"},
			expectedErr: flags.ErrFlagInvalidValue,
		},
		{
			desc:        "invalid channel identifier",
			args:        []string{"project", "next-sequence-receive", "--port-id", "transfer", "--channel-id", "c"},
			expectedErr: flags.ErrFlagInvalidValue,
		},
		{
			desc:        "invalid sequence",
			args:        []string{"project", "unreceived-acks", "--port-id", "transfer", "--channel-id", "channel-0", "--sequences", "1,x"},
			expectedErr: flags.ErrFlagInvalidValue,
		},
		{
			desc:        "count total with an offset",
			args:        []string{"project", "connections", "--count-total", "--offset", "0"},
			expectedErr: nil,
		},
		{
			desc:        "invalid height",
			args:        []string{"project", "channels", "--height", "one"},
			expectedErr: flags.ErrFlagInvalidValue,
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			_, err := execute(t, test.args...)
			if test.expectedErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, test.expectedErr)
		})
	}
}

func TestSearchCmd_Packet(t *testing.T) {
	out, err := execute(t, "search", "packet",
		"--height", "1-90",
		"--event", "write_acknowledgement",
		"--src-port", "transfer",
		"--src-channel", "channel-0",
		"--dst-port", "transfer",
		"--dst-channel", "channel-5",
		"--sequences", "3",
		"--block",
	)
	require.NoError(t, err)

	var result searchOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	require.Equal(t, "packet", result.Kind)
	require.Equal(t, "block_search", result.Method)
	require.Equal(t, []string{
		"write_acknowledgement.packet_src_channel = 'channel-0' AND " +
			"write_acknowledgement.packet_src_port = 'transfer' AND " +
			"write_acknowledgement.packet_dst_channel = 'channel-5' AND " +
			"write_acknowledgement.packet_dst_port = 'transfer' AND " +
			"write_acknowledgement.packet_sequence = '3' AND " +
			"block.height = 90",
	}, result.Queries)
}

func TestSearchCmd_Client(t *testing.T) {
	out, err := execute(t, "search", "client", "--client-id", "07-tendermint-3", "--consensus-height", "0-12")
	require.NoError(t, err)

	var result searchOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	require.Equal(t, "client", result.Kind)
	require.Equal(t, []string{
		"update_client.client_id = '07-tendermint-3' AND update_client.consensus_height = '0-12'",
	}, result.Queries)
}

func TestSearchCmd_Tx(t *testing.T) {
	out, err := execute(t, "search", "tx", "0xdeadbeef")
	require.NoError(t, err)

	var result searchOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	require.Equal(t, "transaction", result.Kind)
	require.Equal(t, []string{"tx.hash = 'DEADBEEF'"}, result.Queries)
}

func TestSearchCmd_Errors(t *testing.T) {
	_, err := execute(t, "search", "packet", "--event", "create_client")
	require.ErrorIs(t, err, flags.ErrFlagInvalidValue)

	_, err = execute(t, "search", "client", "--event", "bogus", "--client-id", "07-tendermint-3")
	require.ErrorIs(t, err, flags.ErrFlagInvalidValue)

	_, err = execute(t, "search", "tx", "not-hex")
	require.ErrorIs(t, err, requests.ErrInvalidTxHash)
}

func TestCrossChainCmd(t *testing.T) {
	path := hex.EncodeToString([]byte("store/bank/key"))

	out, err := execute(t, "cross-chain",
		"--height", "0-40",
		"--query-id", "q-1",
		"--chain-id", "osmosis-1",
		"--path", path,
		"--remote-height", "1-33",
	)
	require.NoError(t, err)

	var result crossChainOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	require.Equal(t, "0-40", result.ObservedAt)
	require.Equal(t, requests.CrossChainQueryRequest{
		ChainID: "osmosis-1",
		ID:      "q-1",
		Path:    path,
		Height:  "1-33",
	}, result.Request)
	require.NotNil(t, result.DecodedPath)
	require.Equal(t, "store/bank/key", *result.DecodedPath)
}

func TestCrossChainCmd_UndecodablePath(t *testing.T) {
	out, err := execute(t, "cross-chain", "--query-id", "q-2", "--chain-id", "osmosis-1", "--path", "zz")
	require.NoError(t, err)

	var result crossChainOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Nil(t, result.DecodedPath)
	require.Equal(t, "0-0", result.ObservedAt)
}

func TestCrossChainCmd_InvalidRemoteHeight(t *testing.T) {
	_, err := execute(t, "cross-chain", "--query-id", "q-3", "--chain-id", "osmosis-1", "--path", "00", "--remote-height", "tall")
	require.ErrorIs(t, err, events.ErrInvalidAttribute)
}

func TestCrossChainCmd_WarnsOnUndecodablePath(t *testing.T) {
	// Unset flags still emit their attributes, with empty values.
	out, logs, err := executeWithLogs(t, "cross-chain", "--log-level", "warn", "--path", "zz")
	require.NoError(t, err)

	var result crossChainOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Empty(t, result.Request.ID)
	require.Nil(t, result.DecodedPath)
	require.Contains(t, logs, "query path is not valid hex")
}

func TestRootCmd_LogsCarryTimestamp(t *testing.T) {
	_, logs, err := executeWithLogs(t, "project", "channels", "--log-level", "debug")
	require.NoError(t, err)
	require.Contains(t, logs, `"time":`)
	require.Contains(t, logs, "resolved query defaults")
}

func TestCrossChainAttributeFlags_CoverEveryAttribute(t *testing.T) {
	keys := make([]string, 0, len(crossChainAttributeFlags))
	for _, attrFlag := range crossChainAttributeFlags {
		keys = append(keys, attrFlag.key)
	}
	require.Equal(t, []string{
		events.AttributeKeyModule,
		events.AttributeKeyAction,
		events.AttributeKeyQueryID,
		events.AttributeKeyChainID,
		events.AttributeKeyPath,
		events.AttributeKeyHeight,
	}, keys)
}
