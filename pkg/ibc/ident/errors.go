package ident

import sdkerrors "cosmossdk.io/errors"

var (
	codespace            = "ident"
	ErrInvalidIdentifier = sdkerrors.Register(codespace, 1, "invalid identifier")
	ErrInvalidSequence   = sdkerrors.Register(codespace, 2, "invalid packet sequence")
)
