// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

// Package algorithm is the abstract algorithm taxonomy: the Descriptor
// every registered algorithm carries, and the category-specific streaming
// Instance contracts every implementation must satisfy structurally.
package algorithm

import "errors"

// Sentinel errors per spec section 7 (ERROR HANDLING DESIGN).
var (
	// ErrInvalidEncoding is returned by hex/ascii conversion on malformed input.
	ErrInvalidEncoding = errors.New("algorithm: invalid encoding")

	// ErrInvalidParameter is returned when a key/iv/nonce/outputSize falls
	// outside the algorithm's declared capability sizes.
	ErrInvalidParameter = errors.New("algorithm: invalid parameter")

	// ErrNotInvertible is returned by CreateInstance(isInverse=true) for a
	// category with no decryption/verification direction (hash, KDF, ...).
	ErrNotInvertible = errors.New("algorithm: category has no inverse operation")

	// ErrFeedAfterFinalize is returned when Feed is called on a Finalized
	// block/stream cipher or AEAD instance. Hash/MAC/KDF/XOF instances
	// instead reset silently (see runtime package).
	ErrFeedAfterFinalize = errors.New("algorithm: feed after finalize")

	// ErrAuthenticationFailed is returned by an AEAD instance's Result()
	// on decrypt when the authentication tag does not match.
	ErrAuthenticationFailed = errors.New("algorithm: authentication failed")

	// ErrUnknownAlgorithm signals that a name was not found in a registry.
	// Find itself returns (nil, false); this sentinel is for callers that
	// want a single error value to wrap.
	ErrUnknownAlgorithm = errors.New("algorithm: unknown algorithm")
)
