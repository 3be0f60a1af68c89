package hpke

import (
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// versionLabel prefixes every labeled input so that derivations cannot
// collide with other protocols (or other HPKE versions) sharing a key.
const versionLabel = "HPKE-v1"

// maxLabeledExpandLength is the largest output length whose encoding fits the
// two-byte length prefix of labeled_info.
const maxLabeledExpandLength = 1<<16 - 1

// LabeledExtract performs HKDF-Extract over ikm bound to the given suite and
// label. The input keying material is framed as
//
//	labeled_ikm = "HPKE-v1" || suiteID || label || ikm
//
// before extraction, so the same raw ikm extracted under different suites or
// labels yields unrelated pseudorandom keys. An empty salt and a nil salt are
// equivalent. The returned pseudorandom key is [KDF.ExtractSize] bytes long.
func (k KDF) LabeledExtract(salt, suiteID []byte, label string, ikm []byte) []byte {
	labeledIKM := make([]byte, 0, len(versionLabel)+len(suiteID)+len(label)+len(ikm))
	labeledIKM = append(labeledIKM, versionLabel...)
	labeledIKM = append(labeledIKM, suiteID...)
	labeledIKM = append(labeledIKM, label...)
	labeledIKM = append(labeledIKM, ikm...)
	return hkdf.Extract(k.hash(), labeledIKM, salt)
}

// LabeledExpand performs HKDF-Expand from prk into length bytes of output
// keying material bound to the given suite and label. The info string is
// framed as
//
//	labeled_info = I2OSP(length, 2) || "HPKE-v1" || suiteID || label || info
//
// with the requested length encoded into the derivation itself, so outputs of
// different lengths are unrelated even under identical labels.
//
// Lengths above 255 times [KDF.ExtractSize] exceed what HKDF can produce and
// return [ErrInvalidLength]. A length that does not fit the two-byte prefix
// cannot be encoded at all and panics.
func (k KDF) LabeledExpand(prk, suiteID []byte, label string, info []byte, length int) ([]byte, error) {
	if length < 0 || length > maxLabeledExpandLength {
		panic(fmt.Sprintf("hpke: expand length %d does not fit in a 16-bit length field", length))
	}
	if limit := k.maxExpandLength(); length > limit {
		return nil, fmt.Errorf("%w: got %d, want at most %d", ErrInvalidLength, length, limit)
	}

	labeledInfo := make([]byte, 2, 2+len(versionLabel)+len(suiteID)+len(label)+len(info))
	binary.BigEndian.PutUint16(labeledInfo[:2], uint16(length))
	labeledInfo = append(labeledInfo, versionLabel...)
	labeledInfo = append(labeledInfo, suiteID...)
	labeledInfo = append(labeledInfo, label...)
	labeledInfo = append(labeledInfo, info...)

	out := make([]byte, length)
	if _, err := io.ReadFull(hkdf.Expand(k.hash(), prk, labeledInfo), out); err != nil {
		return nil, fmt.Errorf("labeled expand: %w", err)
	}
	return out, nil
}

// ExtractAndExpand derives a KEM shared secret from a raw Diffie-Hellman
// value and the KEM context, filling out with the result. It extracts dh
// under the "eae_prk" label and expands under "shared_secret", both bound to
// suiteID, per the DHKEM construction of RFC 9180.
//
// The caller sizes out to the KEM's shared secret length (Nsecret). Sizes up
// to 255 times [KDF.ExtractSize] are supported; larger ones return
// [ErrInvalidLength].
func (k KDF) ExtractAndExpand(dh, suiteID, kemContext []byte, out []byte) error {
	prk := k.LabeledExtract(nil, suiteID, "eae_prk", dh)
	okm, err := k.LabeledExpand(prk, suiteID, "shared_secret", kemContext, len(out))
	if err != nil {
		return err
	}
	copy(out, okm)
	return nil
}
