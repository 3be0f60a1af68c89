// Package vector defines the JSON schema of published HPKE test vectors and
// the hex encoding their fields use. It is shared by the conformance suite
// and the command line helper, which exchange the same wire format.
//
// # Vector Files
//
// [TestVector] mirrors one entry of the RFC 9180 test vector file maintained
// alongside the specification. A file is a JSON array of such entries, one
// per (mode, kem_id, kdf_id, aead_id) combination. Fields this module never
// consumes, such as the derivation seeds, are omitted from the schema and
// ignored during unmarshaling.
//
// # Hex Fields
//
// All byte-valued fields use [HexBytes], which decodes lowercase or uppercase
// hex strings and treats "" and null as absent.
package vector
