package keywrap

import "errors"

// Input-contract errors. They are returned before any block cipher operation runs.
var (
	ErrInvalidKEKLength        = errors.New("invalid KEK length")
	ErrInvalidKeyLength        = errors.New("invalid key length")
	ErrInvalidWrappedKeyLength = errors.New("invalid wrapped key length")
)

// ErrIntegrityCheckFailed reports a wrapped key whose integrity check value did not verify.
// Only UnwrapVerified returns it; Unwrap reports the same outcome through its ok result.
var ErrIntegrityCheckFailed = errors.New("integrity check failed")
