package events

import sdkerrors "cosmossdk.io/errors"

var (
	codespace           = "events"
	ErrUnknownEventType = sdkerrors.Register(codespace, 1, "unknown ibc event type")
	ErrMissingAttribute = sdkerrors.Register(codespace, 2, "missing ibc event attribute")
	ErrInvalidAttribute = sdkerrors.Register(codespace, 3, "invalid ibc event attribute")
)
