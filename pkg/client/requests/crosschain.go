package requests

import (
	"encoding/hex"

	"golang.org/x/text/encoding/unicode"

	"github.com/pokt-network/ibcquery/pkg/ibc/events"
)

// CrossChainQueryRequest is a query against another chain, requested by a
// cross_chain_query event. The remote interface is string-typed, so every field
// holds a display form.
type CrossChainQueryRequest struct {
	ChainID string `json:"chain_id"`
	ID      string `json:"id"`
	// Path is hex-encoded; see DecodePathOrNone.
	Path   string `json:"path"`
	Height string `json:"height"`
}

// NewCrossChainQueryRequest builds the request carried by event. It fails with
// ErrInvalidTypeConversion when event is not a cross-chain query.
func NewCrossChainQueryRequest(event events.IbcEventWithHeight) (CrossChainQueryRequest, error) {
	packet, ok := event.CrossChainQueryPacket()
	if !ok {
		return CrossChainQueryRequest{}, ErrInvalidTypeConversion.Wrapf(
			"cannot build a cross-chain query request from %s", event,
		)
	}

	return CrossChainQueryRequest{
		ChainID: packet.ChainID.String(),
		ID:      packet.ID,
		Path:    packet.Path,
		Height:  packet.Height.String(),
	}, nil
}

// DecodePathOrNone hex-decodes Path into text. Each maximal invalid UTF-8
// subpart is replaced with one U+FFFD. It returns false when Path is not valid
// hex.
func (r CrossChainQueryRequest) DecodePathOrNone() (string, bool) {
	path, err := hex.DecodeString(r.Path)
	if err != nil {
		return "", false
	}
	decoded, err := unicode.UTF8.NewDecoder().Bytes(path)
	if err != nil {
		return "", false
	}
	return string(decoded), true
}
