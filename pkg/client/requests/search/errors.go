package search

import sdkerrors "cosmossdk.io/errors"

var (
	codespace                   = "requests_search"
	ErrSearchInvalidQuery       = sdkerrors.Register(codespace, 1, "invalid event search query")
	ErrSearchEmptySequences     = sdkerrors.Register(codespace, 2, "packet event request has no sequences")
	ErrSearchUnsupportedRequest = sdkerrors.Register(codespace, 3, "unsupported event search request")
)
