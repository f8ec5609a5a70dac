package keystore

import "errors"

var (
	ErrInvalidMnemonic   error = errors.New("invalid mnemonic")
	ErrInvalidKey        error = errors.New("invalid private key")
	ErrInvalidPassword   error = errors.New("invalid password")
	ErrMalformedKeystore error = errors.New("malformed keystore")
	ErrNotHD             error = errors.New("keystore is not hierarchical deterministic")
	ErrHandleClosed      error = errors.New("key handle closed")
	ErrUnknownAccount    error = errors.New("account not held by keystore")
)
