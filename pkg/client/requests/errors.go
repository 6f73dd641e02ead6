package requests

import sdkerrors "cosmossdk.io/errors"

var (
	codespace                = "requests"
	ErrInvalidHeight         = sdkerrors.Register(codespace, 1, "invalid query height")
	ErrInvalidMetadata       = sdkerrors.Register(codespace, 2, "invalid query height metadata")
	ErrInvalidTypeConversion = sdkerrors.Register(codespace, 3, "invalid type conversion")
	ErrInvalidPagination     = sdkerrors.Register(codespace, 4, "invalid pagination")
	ErrInvalidIncludeProof   = sdkerrors.Register(codespace, 5, "invalid include proof value")
	ErrInvalidTxHash         = sdkerrors.Register(codespace, 6, "invalid transaction hash")
)
