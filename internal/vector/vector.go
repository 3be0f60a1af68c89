package vector

import (
	"encoding/hex"
	"fmt"
)

// HexBytes handles JSON marshaling of hex-encoded byte fields.
// Test vector files encode every byte string as hex, which this type
// automatically decodes to []byte.
type HexBytes []byte

// UnmarshalJSON implements json.Unmarshaler for HexBytes.
// Null and the empty string both decode to nil.
func (b *HexBytes) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*b = nil
		return nil
	}

	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		encoded := string(data[1 : len(data)-1])
		if encoded == "" {
			*b = nil
			return nil
		}
		decoded, err := hex.DecodeString(encoded)
		if err != nil {
			return fmt.Errorf("decode hex field: %w", err)
		}
		*b = decoded
		return nil
	}

	return fmt.Errorf("hex field must be a JSON string, got %q", data)
}

// MarshalJSON implements json.Marshaler for HexBytes.
func (b HexBytes) MarshalJSON() ([]byte, error) {
	return []byte(`"` + hex.EncodeToString(b) + `"`), nil
}

// String returns the hex encoding of the bytes.
func (b HexBytes) String() string {
	return hex.EncodeToString(b)
}

// Export is one secret export check within a test vector: expanding the
// exporter secret under the given context must produce ExportedValue.
type Export struct {
	ExporterContext HexBytes `json:"exporter_context"`
	Length          int      `json:"L"`
	ExportedValue   HexBytes `json:"exported_value"`
}

// Encryption is one AEAD check within a test vector. The nonce is already
// combined with the sequence number, so each entry can be verified
// independently with a single seal.
type Encryption struct {
	AAD        HexBytes `json:"aad"`
	Nonce      HexBytes `json:"nonce"`
	Plaintext  HexBytes `json:"pt"`
	Ciphertext HexBytes `json:"ct"`
}

// Modes of operation from RFC 9180 section 5. Auth modes mix the sender's
// static key into the shared secret derivation.
const (
	ModeBase    = 0x00
	ModePSK     = 0x01
	ModeAuth    = 0x02
	ModeAuthPSK = 0x03
)

// TestVector is one entry of the published RFC 9180 test vector file.
type TestVector struct {
	Mode   uint16 `json:"mode"`
	KemID  uint16 `json:"kem_id"`
	KdfID  uint16 `json:"kdf_id"`
	AeadID uint16 `json:"aead_id"`

	Info HexBytes `json:"info"`

	SkEm HexBytes `json:"skEm"`
	PkEm HexBytes `json:"pkEm"`
	SkRm HexBytes `json:"skRm"`
	PkRm HexBytes `json:"pkRm"`
	// Sender static keys, present in auth and auth-psk modes only.
	SkSm HexBytes `json:"skSm"`
	PkSm HexBytes `json:"pkSm"`
	// Pre-shared key and its identifier, present in psk and auth-psk modes only.
	Psk   HexBytes `json:"psk"`
	PskID HexBytes `json:"psk_id"`

	Enc          HexBytes `json:"enc"`
	SharedSecret HexBytes `json:"shared_secret"`

	KeyScheduleContext HexBytes `json:"key_schedule_context"`
	Secret             HexBytes `json:"secret"`
	Key                HexBytes `json:"key"`
	BaseNonce          HexBytes `json:"base_nonce"`
	ExporterSecret     HexBytes `json:"exporter_secret"`

	Encryptions []Encryption `json:"encryptions"`
	Exports     []Export     `json:"exports"`
}

// Name returns a stable identifier for the vector, suitable as a subtest name.
func (v *TestVector) Name() string {
	return fmt.Sprintf("mode=%d/kem=0x%04X/kdf=0x%04X/aead=0x%04X", v.Mode, v.KemID, v.KdfID, v.AeadID)
}
