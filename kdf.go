package hpke

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
)

// KDF identifies a key derivation function from the HPKE registry.
//
// The zero value is not a valid KDF. Values outside the registry can be
// carried around and compared, but calling a size or derivation method on
// one panics; use [KDF.IsValid] to screen identifiers received from a peer.
type KDF uint16

const (
	// HKDFSHA256 is HKDF with SHA-256 (RFC 9180 registry value 0x0001).
	HKDFSHA256 KDF = 0x0001
	// HKDFSHA384 is HKDF with SHA-384 (RFC 9180 registry value 0x0002).
	HKDFSHA384 KDF = 0x0002
	// HKDFSHA512 is HKDF with SHA-512 (RFC 9180 registry value 0x0003).
	HKDFSHA512 KDF = 0x0003
)

// IsValid reports whether k is a KDF identifier this package implements.
func (k KDF) IsValid() bool {
	switch k {
	case HKDFSHA256, HKDFSHA384, HKDFSHA512:
		return true
	default:
		return false
	}
}

// String returns the IANA registry name of the KDF.
func (k KDF) String() string {
	switch k {
	case HKDFSHA256:
		return "HKDF-SHA256"
	case HKDFSHA384:
		return "HKDF-SHA384"
	case HKDFSHA512:
		return "HKDF-SHA512"
	default:
		return fmt.Sprintf("KDF(0x%04X)", uint16(k))
	}
}

// ExtractSize returns the output size in bytes of the extract step, which is
// the digest size of the underlying hash (Nh in RFC 9180).
//
// It panics if k is not a registered KDF.
func (k KDF) ExtractSize() int {
	switch k {
	case HKDFSHA256:
		return sha256.Size
	case HKDFSHA384:
		return sha512.Size384
	case HKDFSHA512:
		return sha512.Size
	default:
		panic("hpke: unknown KDF identifier")
	}
}

// hash returns the hash constructor backing the KDF.
func (k KDF) hash() func() hash.Hash {
	switch k {
	case HKDFSHA256:
		return sha256.New
	case HKDFSHA384:
		return sha512.New384
	case HKDFSHA512:
		return sha512.New
	default:
		panic("hpke: unknown KDF identifier")
	}
}

// maxExpandLength returns the largest output HKDF-Expand can produce for the
// underlying hash, 255 times the digest size per RFC 5869.
func (k KDF) maxExpandLength() int {
	return 255 * k.ExtractSize()
}
