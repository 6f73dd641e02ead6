package requests

import (
	"github.com/cosmos/gogoproto/proto"

	"github.com/pokt-network/ibcquery/pkg/ibc/ident"
)

// Projector is implemented by requests which have a distinct wire message in
// the ibc-go query services.
type Projector[R proto.Message] interface {
	// ToRaw returns the wire message. It never fails: every identifier is
	// assumed valid and rendered through its String form.
	ToRaw() R
}

// Project converts req into its wire message.
func Project[R proto.Message](req Projector[R]) R {
	return req.ToRaw()
}

// rawSequences maps packet sequences to their wire form, preserving order.
func rawSequences(sequences []ident.Sequence) []uint64 {
	if sequences == nil {
		return nil
	}
	raw := make([]uint64, len(sequences))
	for i, seq := range sequences {
		raw[i] = seq.Uint64()
	}
	return raw
}
