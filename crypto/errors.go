package crypto

import "errors"

// Error kinds. Functions in this module wrap one of these with fmt.Errorf
// and %w, so callers can classify failures with errors.Is.
var (
	ErrIO                  = errors.New("i/o error")
	ErrEncoding            = errors.New("malformed encoding")
	ErrCrypto              = errors.New("block cipher failure")
	ErrInvalidPadding      = errors.New("invalid PKCS#7 padding")
	ErrOracleMisconfigured = errors.New("oracle misconfigured")
	ErrAttackFailed        = errors.New("attack failed")
)

var (
	ErrNotFound           = errors.New("no candidate found")
	ErrCiphertextTooShort = errors.New("ciphertext too short")
)
