package turnover

import "errors"

var (
	// ErrInvalidKeyLength is returned when the key is not 32 bytes (AES-256).
	ErrInvalidKeyLength = errors.New("key must be 32 bytes")
	// ErrInvalidIVLength is returned when the IV is not one AES block.
	ErrInvalidIVLength = errors.New("iv must be 16 bytes")
	// ErrUnsupportedMode is returned for a cipher mode outside the closed set.
	ErrUnsupportedMode = errors.New("unsupported cipher mode")
	// ErrUnsupportedHash is returned for a digest algorithm outside the closed set.
	ErrUnsupportedHash = errors.New("unsupported hash algorithm")
	// ErrCiphertextLength is returned when the ciphertext is empty or exceeds the block size.
	ErrCiphertextLength = errors.New("ciphertext must be between 1 and 16 bytes")
	// ErrCounterLength is returned when the requested ciphertext length is outside 5..16.
	ErrCounterLength = errors.New("encrypted counter length must be between 5 and 16 bytes")
	// ErrCounterRange is returned when the counter is not representable in the requested length.
	ErrCounterRange = errors.New("counter does not fit the requested length")
)
