package ident

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewIdentifiers(t *testing.T) {
	tests := []struct {
		desc        string
		newFn       func(string) (string, error)
		id          string
		expectedErr error
	}{
		{
			desc:  "valid client id",
			newFn: func(s string) (string, error) { id, err := NewClientID(s); return id.String(), err },
			id:    "07-tendermint-0",
		},
		{
			desc:        "client id too short",
			newFn:       func(s string) (string, error) { id, err := NewClientID(s); return id.String(), err },
			id:          "07",
			expectedErr: ErrInvalidIdentifier,
		},
		{
			desc:  "valid connection id",
			newFn: func(s string) (string, error) { id, err := NewConnectionID(s); return id.String(), err },
			id:    "connection-12",
		},
		{
			desc:        "connection id with invalid characters",
			newFn:       func(s string) (string, error) { id, err := NewConnectionID(s); return id.String(), err },
			id:          "connection/12",
			expectedErr: ErrInvalidIdentifier,
		},
		{
			desc:  "valid channel id",
			newFn: func(s string) (string, error) { id, err := NewChannelID(s); return id.String(), err },
			id:    "channel-0",
		},
		{
			desc:        "empty channel id",
			newFn:       func(s string) (string, error) { id, err := NewChannelID(s); return id.String(), err },
			id:          "",
			expectedErr: ErrInvalidIdentifier,
		},
		{
			desc:  "valid port id",
			newFn: func(s string) (string, error) { id, err := NewPortID(s); return id.String(), err },
			id:    "transfer",
		},
		{
			desc:        "port id with whitespace",
			newFn:       func(s string) (string, error) { id, err := NewPortID(s); return id.String(), err },
			id:          "trans fer",
			expectedErr: ErrInvalidIdentifier,
		},
		{
			desc:  "valid chain id",
			newFn: func(s string) (string, error) { id, err := NewChainID(s); return id.String(), err },
			id:    "osmosis-1",
		},
		{
			desc:        "empty chain id",
			newFn:       func(s string) (string, error) { id, err := NewChainID(s); return id.String(), err },
			id:          "",
			expectedErr: ErrInvalidIdentifier,
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			id, err := test.newFn(test.id)
			if test.expectedErr != nil {
				require.ErrorIs(t, err, test.expectedErr)
				require.Empty(t, id)
				return
			}

			require.NoError(t, err)
			require.Equal(t, test.id, id)
		})
	}
}

func TestChainID_RevisionNumber(t *testing.T) {
	require.Equal(t, uint64(1), ChainID("osmosis-1").RevisionNumber())
	require.Equal(t, uint64(0), ChainID("testchain").RevisionNumber())
}

func TestParseSequence(t *testing.T) {
	seq, err := ParseSequence("42")
	require.NoError(t, err)
	require.Equal(t, Sequence(42), seq)
	require.Equal(t, "42", seq.String())
	require.Equal(t, uint64(42), seq.Uint64())

	_, err = ParseSequence("-1")
	require.ErrorIs(t, err, ErrInvalidSequence)
}
