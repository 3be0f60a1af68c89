package hpke

import "testing"

func TestExportOnly_New(t *testing.T) {
	tests := []struct {
		name string
		key  []byte
	}{
		{"nil key", nil},
		{"empty key", []byte{}},
		{"leftover key material", make([]byte, 32)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// An export-only suite has no key schedule material to consume;
			// whatever the caller passes is discarded.
			aead, err := ExportOnly.New(tt.key)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			if got := aead.NonceSize(); got != 128 {
				t.Errorf("NonceSize() = %d, want 128", got)
			}
			if got := aead.Overhead(); got != 0 {
				t.Errorf("Overhead() = %d, want 0", got)
			}
		})
	}
}

func TestExportOnly_SealPanics(t *testing.T) {
	aead, err := ExportOnly.New(nil)
	if err != nil {
		t.Fatal(err)
	}

	nonce := make([]byte, aead.NonceSize())
	mustPanic(t, "Seal", func() { aead.Seal(nil, nonce, []byte("plaintext"), nil) })
}

func TestExportOnly_OpenPanics(t *testing.T) {
	aead, err := ExportOnly.New(nil)
	if err != nil {
		t.Fatal(err)
	}

	nonce := make([]byte, aead.NonceSize())
	mustPanic(t, "Open", func() { _, _ = aead.Open(nil, nonce, []byte("ciphertext"), nil) })
}

func TestExportOnly_NonceOutlastsSequenceCounter(t *testing.T) {
	// A context keeps a 64-bit message counter. The base nonce must be wider
	// than the counter so XORing the two never wraps; misuse then surfaces as
	// the Seal or Open panic instead of silent nonce reuse.
	if ExportOnly.NonceSize() <= 8 {
		t.Errorf("NonceSize() = %d, must exceed an 8-byte sequence counter", ExportOnly.NonceSize())
	}
}
