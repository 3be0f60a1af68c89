package hpke

import "errors"

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidLength is returned when a labeled expand requests more output
	// than HKDF can produce for the selected hash (255 hash blocks).
	ErrInvalidLength = errors.New("invalid expand length")

	// ErrInvalidKeySize is returned when an AEAD key has the wrong size for
	// the selected suite.
	ErrInvalidKeySize = errors.New("invalid key size")
)
