package requests

import (
	"context"
	"math"
	"strconv"

	grpctypes "github.com/cosmos/cosmos-sdk/types/grpc"
	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	"google.golang.org/grpc/metadata"
)

// latestHeightText is the textual form of LatestHeight accepted by
// ParseQueryHeight and produced by MarshalText.
const latestHeightText = "latest"

// QueryHeight is the height a query is anchored at: either whatever the latest
// height of the queried chain is, or a specific height. The zero value is the
// latest height.
//
// On the wire, the latest height is encoded as 0 and a specific height as its
// revision height. A query at a specific height is deterministic and its proof
// verifiable against that height; a query at the latest height is neither.
type QueryHeight struct {
	specific bool
	height   clienttypes.Height
}

// LatestHeight returns a QueryHeight targeting the latest height.
func LatestHeight() QueryHeight {
	return QueryHeight{}
}

// SpecificHeight returns a QueryHeight targeting height.
func SpecificHeight(height clienttypes.Height) QueryHeight {
	return QueryHeight{specific: true, height: height}
}

// ParseQueryHeight parses either "latest" (or "") or a "{revision}-{height}"
// string.
func ParseQueryHeight(s string) (QueryHeight, error) {
	if s == "" || s == latestHeightText {
		return LatestHeight(), nil
	}
	height, err := clienttypes.ParseHeight(s)
	if err != nil {
		return QueryHeight{}, ErrInvalidHeight.Wrapf("%q: %s", s, err)
	}
	return SpecificHeight(height), nil
}

// IsLatest reports whether the query targets the latest height.
func (q QueryHeight) IsLatest() bool {
	return !q.specific
}

// Height returns the specific height targeted, or false for the latest height.
func (q QueryHeight) Height() (clienttypes.Height, bool) {
	return q.height, q.specific
}

// RevisionHeight returns the height as the transport sees it: 0 for the
// latest height, the revision height otherwise.
func (q QueryHeight) RevisionHeight() uint64 {
	if !q.specific {
		return 0
	}
	return q.height.GetRevisionHeight()
}

// BlockHeight converts the query height to a CometBFT block height.
func (q QueryHeight) BlockHeight() (int64, error) {
	height := q.RevisionHeight()
	if height > math.MaxInt64 {
		return 0, ErrInvalidHeight.Wrapf("%d overflows a block height", height)
	}
	return int64(height), nil
}

// MetadataValue renders the query height as a gRPC metadata value.
func (q QueryHeight) MetadataValue() (string, error) {
	value := strconv.FormatUint(q.RevisionHeight(), 10)
	if err := validateASCIIMetadataValue(value); err != nil {
		return "", err
	}
	return value, nil
}

// AppendToOutgoingContext attaches the query height to ctx under the header the
// Cosmos SDK gRPC server reads the query height from.
func (q QueryHeight) AppendToOutgoingContext(ctx context.Context) (context.Context, error) {
	value, err := q.MetadataValue()
	if err != nil {
		return nil, err
	}
	return metadata.AppendToOutgoingContext(ctx, grpctypes.GRPCBlockHeightHeader, value), nil
}

// String is intended for logging and is not a wire encoding.
func (q QueryHeight) String() string {
	if !q.specific {
		return "latest height"
	}
	return q.height.String()
}

// MarshalText encodes the query height as "latest" or "{revision}-{height}".
func (q QueryHeight) MarshalText() ([]byte, error) {
	if !q.specific {
		return []byte(latestHeightText), nil
	}
	return []byte(q.height.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (q *QueryHeight) UnmarshalText(text []byte) error {
	parsed, err := ParseQueryHeight(string(text))
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}

// validateASCIIMetadataValue checks that value only holds visible ASCII
// characters and spaces, which is what HTTP/2 accepts in a header value.
func validateASCIIMetadataValue(value string) error {
	if value == "" {
		return ErrInvalidMetadata.Wrap("empty value")
	}
	for i := 0; i < len(value); i++ {
		if c := value[i]; c < 0x20 || c > 0x7e {
			return ErrInvalidMetadata.Wrapf("invalid byte %#x in %q", c, value)
		}
	}
	return nil
}
