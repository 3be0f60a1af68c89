package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vaultsandbox/hpke"
	"github.com/vaultsandbox/hpke/internal/vector"
)

// request carries the parameters of any helper command. Byte fields are hex
// encoded; commands read only the fields they need.
type request struct {
	KdfID      uint16          `json:"kdf_id"`
	Salt       vector.HexBytes `json:"salt"`
	SuiteID    vector.HexBytes `json:"suite_id"`
	Label      string          `json:"label"`
	IKM        vector.HexBytes `json:"ikm"`
	PRK        vector.HexBytes `json:"prk"`
	Info       vector.HexBytes `json:"info"`
	DH         vector.HexBytes `json:"dh"`
	KemContext vector.HexBytes `json:"kem_context"`
	Length     int             `json:"length"`
}

func main() {
	if err := run(os.Args, os.Stdin, os.Stdout); err != nil {
		fatal("%v", err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) < 2 {
		return errors.New("usage: hpkehelper <labeled-extract|labeled-expand|extract-and-expand|suites>")
	}

	switch args[1] {
	case "labeled-extract":
		return labeledExtract(stdin, stdout)
	case "labeled-expand":
		return labeledExpand(stdin, stdout)
	case "extract-and-expand":
		return extractAndExpand(stdin, stdout)
	case "suites":
		return listSuites(stdout)
	default:
		return fmt.Errorf("unknown command: %s", args[1])
	}
}

func decodeRequest(stdin io.Reader) (*request, error) {
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	var req request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("parse request: %w", err)
	}

	if !hpke.KDF(req.KdfID).IsValid() {
		return nil, fmt.Errorf("unsupported kdf_id 0x%04X", req.KdfID)
	}
	return &req, nil
}

func labeledExtract(stdin io.Reader, stdout io.Writer) error {
	req, err := decodeRequest(stdin)
	if err != nil {
		return err
	}

	prk := hpke.KDF(req.KdfID).LabeledExtract(req.Salt, req.SuiteID, req.Label, req.IKM)
	return writeResult(stdout, map[string]vector.HexBytes{"prk": prk})
}

func labeledExpand(stdin io.Reader, stdout io.Writer) error {
	req, err := decodeRequest(stdin)
	if err != nil {
		return err
	}

	okm, err := hpke.KDF(req.KdfID).LabeledExpand(req.PRK, req.SuiteID, req.Label, req.Info, req.Length)
	if err != nil {
		return fmt.Errorf("labeled-expand: %w", err)
	}
	return writeResult(stdout, map[string]vector.HexBytes{"okm": okm})
}

func extractAndExpand(stdin io.Reader, stdout io.Writer) error {
	req, err := decodeRequest(stdin)
	if err != nil {
		return err
	}

	out := make([]byte, req.Length)
	if err := hpke.KDF(req.KdfID).ExtractAndExpand(req.DH, req.SuiteID, req.KemContext, out); err != nil {
		return fmt.Errorf("extract-and-expand: %w", err)
	}
	return writeResult(stdout, map[string]vector.HexBytes{"shared_secret": out})
}

type kdfInfo struct {
	ID          uint16 `json:"id"`
	Name        string `json:"name"`
	ExtractSize int    `json:"extract_size"`
}

type aeadInfo struct {
	ID        uint16 `json:"id"`
	Name      string `json:"name"`
	KeySize   int    `json:"key_size"`
	NonceSize int    `json:"nonce_size"`
	TagSize   int    `json:"tag_size"`
}

func listSuites(stdout io.Writer) error {
	output := struct {
		Kdfs  []kdfInfo  `json:"kdfs"`
		Aeads []aeadInfo `json:"aeads"`
	}{}

	for _, kdf := range []hpke.KDF{hpke.HKDFSHA256, hpke.HKDFSHA384, hpke.HKDFSHA512} {
		output.Kdfs = append(output.Kdfs, kdfInfo{
			ID:          uint16(kdf),
			Name:        kdf.String(),
			ExtractSize: kdf.ExtractSize(),
		})
	}
	for _, aead := range []hpke.AEAD{hpke.AES128GCM, hpke.AES256GCM, hpke.ChaCha20Poly1305, hpke.ExportOnly} {
		output.Aeads = append(output.Aeads, aeadInfo{
			ID:        uint16(aead),
			Name:      aead.String(),
			KeySize:   aead.KeySize(),
			NonceSize: aead.NonceSize(),
			TagSize:   aead.TagSize(),
		})
	}

	return writeResult(stdout, output)
}

func writeResult(stdout io.Writer, result any) error {
	if err := json.NewEncoder(stdout).Encode(result); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
