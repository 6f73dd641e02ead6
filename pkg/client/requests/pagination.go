package requests

import (
	"math"

	"github.com/cosmos/cosmos-sdk/types/query"
)

// PageRequest describes one page of a listing query. It carries no iteration
// state: the key of the next page comes from the previous response.
type PageRequest struct {
	// Key is the PageResponse.NextKey of the previous page; empty for the first
	// page. Only one of Key or Offset should be set.
	Key []byte `json:"key,omitempty"`
	// Offset is a numeric offset, usable when Key is unavailable. It is less
	// efficient than Key.
	Offset uint64 `json:"offset"`
	// Limit is the number of results in the page. The server applies its own
	// default when it is 0.
	Limit uint64 `json:"limit"`
	// CountTotal requests the total number of items. It is only honored when
	// Offset is used.
	CountTotal bool `json:"count_total"`
	// Reverse requests descending order.
	Reverse bool `json:"reverse"`
}

// PageRequestAll returns a PageRequest which asks for every item at once.
func PageRequestAll() *PageRequest {
	return &PageRequest{Limit: math.MaxUint64}
}

// IsAll reports whether the request asks for every item at once.
func (p *PageRequest) IsAll() bool {
	return len(p.Key) == 0 && p.Offset == 0 && p.Limit == math.MaxUint64
}

// ValidateBasic rejects a request which sets both Key and Offset. ToRaw never
// calls it; callers who want the check opt in.
func (p *PageRequest) ValidateBasic() error {
	if len(p.Key) > 0 && p.Offset != 0 {
		return ErrInvalidPagination.Wrapf("key and offset (%d) are mutually exclusive", p.Offset)
	}
	return nil
}

// ToRaw copies the request into its wire message, field for field. A nil
// request projects to a nil message.
func (p *PageRequest) ToRaw() *query.PageRequest {
	if p == nil {
		return nil
	}
	return &query.PageRequest{
		Key:        p.Key,
		Offset:     p.Offset,
		Limit:      p.Limit,
		CountTotal: p.CountTotal,
		Reverse:    p.Reverse,
	}
}
