package hpke

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// AEAD identifies an authenticated encryption algorithm from the HPKE
// registry.
//
// The zero value is not a valid AEAD. As with [KDF], size accessors panic on
// unregistered values; use [AEAD.IsValid] to screen identifiers received
// from a peer.
type AEAD uint16

const (
	// AES128GCM is AES-128 in Galois/Counter Mode (RFC 9180 registry value 0x0001).
	AES128GCM AEAD = 0x0001
	// AES256GCM is AES-256 in Galois/Counter Mode (RFC 9180 registry value 0x0002).
	AES256GCM AEAD = 0x0002
	// ChaCha20Poly1305 is the ChaCha20-Poly1305 construction (RFC 9180 registry value 0x0003).
	ChaCha20Poly1305 AEAD = 0x0003
	// ExportOnly marks a ciphersuite used solely for its exporter interface
	// (RFC 9180 registry value 0xFFFF). It carries no cipher: sealing or
	// opening with it is a programming error and panics.
	ExportOnly AEAD = 0xFFFF
)

// IsValid reports whether a is an AEAD identifier this package implements.
func (a AEAD) IsValid() bool {
	switch a {
	case AES128GCM, AES256GCM, ChaCha20Poly1305, ExportOnly:
		return true
	default:
		return false
	}
}

// String returns the IANA registry name of the AEAD.
func (a AEAD) String() string {
	switch a {
	case AES128GCM:
		return "AES-128-GCM"
	case AES256GCM:
		return "AES-256-GCM"
	case ChaCha20Poly1305:
		return "ChaCha20Poly1305"
	case ExportOnly:
		return "Export-Only"
	default:
		return fmt.Sprintf("AEAD(0x%04X)", uint16(a))
	}
}

// KeySize returns the size in bytes of the AEAD key (Nk in RFC 9180).
// [ExportOnly] has no key and reports zero.
//
// It panics if a is not a registered AEAD.
func (a AEAD) KeySize() int {
	switch a {
	case AES128GCM:
		return 16
	case AES256GCM:
		return 32
	case ChaCha20Poly1305:
		return chacha20poly1305.KeySize
	case ExportOnly:
		return 0
	default:
		panic("hpke: unknown AEAD identifier")
	}
}

// NonceSize returns the size in bytes of the AEAD nonce (Nn in RFC 9180).
//
// [ExportOnly] reports 128. Its nonces are never used on the wire, but the
// size keeps nonce bookkeeping well defined: a 128-byte base nonce can be
// XORed with any sequence counter without overflow, so misuse surfaces as the
// Seal or Open panic rather than as corrupted arithmetic.
//
// It panics if a is not a registered AEAD.
func (a AEAD) NonceSize() int {
	switch a {
	case AES128GCM, AES256GCM:
		return 12
	case ChaCha20Poly1305:
		return chacha20poly1305.NonceSize
	case ExportOnly:
		return exportOnlyNonceSize
	default:
		panic("hpke: unknown AEAD identifier")
	}
}

// TagSize returns the size in bytes of the authentication tag (Nt in RFC
// 9180). [ExportOnly] produces no ciphertexts and reports zero.
//
// It panics if a is not a registered AEAD.
func (a AEAD) TagSize() int {
	switch a {
	case AES128GCM, AES256GCM:
		return 16
	case ChaCha20Poly1305:
		return chacha20poly1305.Overhead
	case ExportOnly:
		return 0
	default:
		panic("hpke: unknown AEAD identifier")
	}
}

// New returns a [cipher.AEAD] for the suite keyed with key. The key must be
// exactly [AEAD.KeySize] bytes or [ErrInvalidKeySize] is returned.
//
// For [ExportOnly] the key is ignored and the returned AEAD panics on Seal
// and Open; it exists so code that threads a cipher.AEAD through its context
// does not need a special case for export-only suites.
//
// It panics if a is not a registered AEAD.
func (a AEAD) New(key []byte) (cipher.AEAD, error) {
	if a == ExportOnly {
		return exportOnlyAEAD{}, nil
	}
	if len(key) != a.KeySize() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), a.KeySize())
	}
	switch a {
	case AES128GCM, AES256GCM:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, fmt.Errorf("failed to create cipher: %w", err)
		}
		gcm, err := cipher.NewGCM(block)
		if err != nil {
			return nil, fmt.Errorf("failed to create GCM: %w", err)
		}
		return gcm, nil
	case ChaCha20Poly1305:
		aead, err := chacha20poly1305.New(key)
		if err != nil {
			return nil, fmt.Errorf("failed to create ChaCha20-Poly1305: %w", err)
		}
		return aead, nil
	default:
		panic("hpke: unknown AEAD identifier")
	}
}
