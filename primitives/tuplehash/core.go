// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

// Package tuplehash implements TupleHash128/256 (spec section 4.G.5): an
// SP-800-185 derived function that hashes a sequence of distinct byte
// strings (a tuple) unambiguously, built on top of a cSHAKE sponge instance
// rather than a hand-rolled permutation — golang.org/x/crypto/sha3 already
// supplies NewCShake128/256, so this adapter wraps it instead of
// reimplementing Keccak-f[1600].
package tuplehash

import (
	"golang.org/x/crypto/sha3"
)

// functionName is the cSHAKE "N" parameter fixed by SP 800-185 for every
// TupleHash instance, distinguishing it from plain cSHAKE and from the
// family's other derived functions (KMAC, ParallelHash).
var functionName = []byte("TupleHash")

// newCShake returns a fresh cSHAKE sponge of the requested security
// strength, customized with s, ready to absorb encoded tuple elements.
func newCShake(bits int, s []byte) sha3.ShakeHash {
	if bits == 256 {
		return sha3.NewCShake256(functionName, s)
	}
	return sha3.NewCShake128(functionName, s)
}
