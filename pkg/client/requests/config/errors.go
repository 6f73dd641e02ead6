package config

import sdkerrors "cosmossdk.io/errors"

var (
	codespace                           = "requests_config"
	ErrQueryDefaultsConfigEmpty         = sdkerrors.Register(codespace, 1, "empty query defaults config")
	ErrQueryDefaultsConfigUnmarshalYAML = sdkerrors.Register(codespace, 2, "config reader cannot unmarshal yaml content")
	ErrQueryDefaultsConfigUnmarshalTOML = sdkerrors.Register(codespace, 3, "config reader cannot unmarshal toml content")
	ErrQueryDefaultsConfigInvalidHeight = sdkerrors.Register(codespace, 4, "invalid query height in query defaults config")
)
