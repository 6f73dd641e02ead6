package flags

import sdkerrors "cosmossdk.io/errors"

var (
	codespace = "ibcquery_flags"

	// ErrFlagNotRegistered is returned when a command reads a flag it never
	// registered.
	ErrFlagNotRegistered = sdkerrors.Register(codespace, 1, "flag not registered")
	// ErrFlagInvalidValue is returned when a flag is missing or does not parse.
	ErrFlagInvalidValue = sdkerrors.Register(codespace, 2, "invalid flag value")
)
