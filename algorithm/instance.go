// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package algorithm

// Instance is the minimal structural contract every streaming instance
// satisfies regardless of category: feed bytes, obtain a result. Instance
// polymorphism is structural — any type with this method set (plus
// whatever category-specific setters it needs) qualifies, there is no
// inheritance hierarchy.
//
// Feed with an empty slice is a no-op. Feed never fails on length alone.
// Result's idempotency/reset policy is category-specific; see the
// category interfaces below and the runtime package's buffering contract.
type Instance interface {
	Feed(data []byte) error
	Result() ([]byte, error)
}

// Keyed is satisfied by any instance that accepts a symmetric key.
// Implementations validate n against the owning descriptor's KeySizes and
// return ErrInvalidParameter synchronously on mismatch.
type Keyed interface {
	SetKey(key []byte) error
}

// IVSetter is satisfied by any instance that accepts an IV or nonce.
type IVSetter interface {
	SetIV(iv []byte) error
}

// OutputSizer is satisfied by hash/KDF/XOF instances whose output length is
// caller-chosen, constrained to the descriptor's SupportedOutputLen.
type OutputSizer interface {
	SetOutputSize(n int) error
}

// HashInstance is the contract for hash, MAC, KDF and XOF algorithms:
// absorb bytes via Feed, call Result for the digest. Two successive Result
// calls on a Finalized instance return identical bytes (idempotent).
// A further Feed after Result implicitly resets the instance to its
// post-construction state and begins a new computation (per spec's
// per-category Feed-after-finalize policy).
type HashInstance interface {
	Instance
}

// MACInstance additionally requires a key.
type MACInstance interface {
	Instance
	Keyed
}

// KDFInstance additionally supports a caller-chosen output size and,
// optionally, a salt/context (set via Keyed for the secret and IVSetter for
// salt where the concrete KDF has one).
type KDFInstance interface {
	Instance
	Keyed
	OutputSizer
}

// BlockCipherInstance is the contract for block ciphers. Feed only accepts
// whole-block inputs (a partial final block is the caller's error, not a
// framework-level padding decision — padding is its own category).
// Feed after Result returns ErrFeedAfterFinalize: ciphers do not reset.
type BlockCipherInstance interface {
	Instance
	Keyed
}

// StreamCipherInstance is the contract for stream ciphers: Feed accepts
// arbitrary-length input. Feed after Result returns ErrFeedAfterFinalize.
type StreamCipherInstance interface {
	Instance
	Keyed
	IVSetter
}

// AADSetter is satisfied by AEAD instances.
type AADSetter interface {
	SetAAD(aad []byte) error
}

// AEADInstance is the contract for authenticated encryption. On encrypt,
// Result returns ciphertext||tag. On decrypt, Result returns plaintext or
// fails with ErrAuthenticationFailed (using a constant-time tag compare);
// it never returns partially-verified plaintext.
type AEADInstance interface {
	Instance
	Keyed
	IVSetter
	AADSetter
}
