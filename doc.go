// Package hpke implements the key-derivation core of Hybrid Public Key
// Encryption (RFC 9180): the domain-separated labeled extract/expand
// primitives, the KDF identity registry, and the AEAD capability registry
// including the export-only variant.
//
// The package turns a shared secret produced by a key encapsulation step into
// keying material and application-exported secrets. Key encapsulation itself,
// the sender/receiver encryption contexts that sequence nonces for bulk
// encryption, and ciphersuite mode selection live outside this package; they
// consume the registries and derivation operations defined here.
//
// # Derivation Model
//
// Every derivation is framed with the fixed 7-byte version label "HPKE-v1",
// an opaque ciphersuite identifier, and a short ASCII label before it reaches
// HKDF. The framing is byte-exact: a compliant peer that disagrees on a
// single length byte or label derives unrelated keys.
//
//   - [KDF.LabeledExtract] condenses input keying material into a
//     pseudorandom key (PRK) of [KDF.ExtractSize] bytes.
//   - [KDF.LabeledExpand] stretches a PRK into an output of a caller-chosen
//     length, binding the length itself into the derivation.
//   - [KDF.ExtractAndExpand] composes the two with the "eae_prk" and
//     "shared_secret" labels exactly as RFC 9180 §4.1 requires; it is the
//     only entry point a KEM implementation needs.
//
// A PRK together with the [KDF] that produced it forms a reusable expand
// context: one extract can feed any number of differently-labeled expands.
// Callers own returned key material and should clear it when done; this
// package keeps no references.
//
// # Registries
//
// [KDF] and [AEAD] are closed registries of the 2-byte identifiers from the
// RFC 9180 IANA tables. Identifier values are wire-fixed: extending a
// registry adds constants, never renumbers. Parameter sizes (Nh, Nk, Nn, Nt)
// are exposed as data so negotiation code can size buffers without knowing
// the algorithms.
//
// # Export-Only AEAD
//
// [ExportOnly] (0xFFFF) is an inert AEAD for ciphersuites that derive
// exported secrets but never encrypt. Construction accepts and discards any
// key material; Seal and Open panic unconditionally. Its declared nonce size
// (128 bytes) is strictly larger than the 8-byte sequence counters generic
// encryption contexts track, so nonce arithmetic stays in range until Seal
// or Open panics.
//
// # Error Model
//
// Failures split into two classes. Conditions reachable through honest
// runtime input return errors: an expand length beyond what HKDF can produce
// wraps [ErrInvalidLength], and a mis-sized AEAD key wraps
// [ErrInvalidKeySize]. Integration mistakes panic: an expand length that
// cannot be encoded in the 16-bit length field, Seal or Open on the
// export-only AEAD, and size accessors on identifiers outside the
// registries. Use [KDF.IsValid] and [AEAD.IsValid] to vet wire-supplied
// identifiers before touching the accessors.
//
// # Concurrency
//
// All operations are pure functions over caller-provided buffers. The
// package holds no mutable state, so concurrent use needs no external
// synchronization.
package hpke
