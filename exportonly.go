package hpke

// exportOnlyNonceSize exceeds the width of any sequence counter an HPKE
// context maintains, so nonce arithmetic against the base nonce stays in
// range and misuse surfaces as the Seal or Open panic.
const exportOnlyNonceSize = 128

// exportOnlyAEAD satisfies [cipher.AEAD] for ciphersuites that only ever use
// the secret exporter. It holds no key material.
type exportOnlyAEAD struct{}

func (exportOnlyAEAD) NonceSize() int { return exportOnlyNonceSize }

func (exportOnlyAEAD) Overhead() int { return 0 }

func (exportOnlyAEAD) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	panic("hpke: cannot seal with an export-only AEAD")
}

func (exportOnlyAEAD) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	panic("hpke: cannot open with an export-only AEAD")
}
