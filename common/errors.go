package common

import errorsmod "cosmossdk.io/errors"

const Codespace = "msgsvc"

var (
	// ErrUnsupportedType is returned for message kinds, type URLs and enum values that are
	// not part of the registry. It must never be swallowed by display code.
	ErrUnsupportedType = errorsmod.Register(Codespace, 2, "unsupported type")
	ErrDecode          = errorsmod.Register(Codespace, 3, "decode error")
	ErrValidation      = errorsmod.Register(Codespace, 4, "validation error")
	// ErrFormatting is the only error recovered locally: the field falls back to its raw value.
	ErrFormatting = errorsmod.Register(Codespace, 5, "formatting error")
	ErrInvalidKey = errorsmod.Register(Codespace, 6, "invalid key")
)
