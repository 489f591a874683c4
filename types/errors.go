package types

import errorsmod "cosmossdk.io/errors"

// sdk errors
var (
	// Code 1 is a reserved code for internal errors and should not be used for anything else
	_ = errorsmod.Register(ModuleName, 1, "internal error")
	// ErrUnsupportedChain is returned when no contract address or index endpoint is configured for a chain
	ErrUnsupportedChain = errorsmod.Register(ModuleName, 2, "unsupported chain")
	// ErrRead is returned when a contract read fails
	ErrRead = errorsmod.Register(ModuleName, 3, "contract read failed")
	// ErrIndexUnavailable is returned when the index cannot be reached or answers with a malformed payload
	ErrIndexUnavailable = errorsmod.Register(ModuleName, 4, "index unavailable")
	// ErrIndexTimeout is returned when the index does not answer within the configured timeout
	ErrIndexTimeout = errorsmod.Register(ModuleName, 5, "index timed out")
	// ErrNormalization is returned when a raw record is missing required fields or has ill-typed values
	ErrNormalization = errorsmod.Register(ModuleName, 6, "normalization failed")
	// ErrDataInconsistency is returned when option texts and vote counts cannot be paired
	ErrDataInconsistency = errorsmod.Register(ModuleName, 7, "data inconsistency")
	// ErrInvalidRequest is returned for malformed caller input
	ErrInvalidRequest = errorsmod.Register(ModuleName, 8, "invalid request")
)
