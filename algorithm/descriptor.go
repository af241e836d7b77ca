// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package algorithm

import (
	"strings"

	"github.com/cryptoframe/algokit/metadata"
)

// Descriptor is the immutable-after-construction record every registered
// algorithm owns for the lifetime of the process: identity, provenance,
// capability, safety tags, documentation links and declared test vectors.
type Descriptor struct {
	// Identity
	Name         string // unique, case-insensitive
	InternalName string // short slug
	Category     metadata.Category
	SubCategory  string

	// Provenance
	Inventor    string
	Year        int
	Country     metadata.Country
	Description string

	// Capability
	KeySizes           []metadata.KeySize
	BlockSizes         []metadata.KeySize
	SupportedOutputLen []metadata.KeySize

	// Safety tags
	SecurityStatus metadata.SecurityStatus
	Complexity     metadata.Complexity

	// Links
	Documentation        []metadata.LinkItem
	References           []metadata.LinkItem
	KnownVulnerabilities []metadata.Vulnerability

	// Test vectors
	Tests []metadata.TestCase

	// Factory produces a fresh streaming instance bound to this descriptor.
	// isInverse requests a decryption/verifier instance; categories with no
	// inverse direction (hash, KDF, ...) must return (nil, ErrNotInvertible).
	Factory func(isInverse bool) (Instance, error)
}

// FoldedName is the case-folded form used as the registry's lookup key.
func (d *Descriptor) FoldedName() string {
	return strings.ToLower(d.Name)
}

// CreateInstance produces a fresh streaming instance via the descriptor's
// factory. A nil Factory is a construction bug in the registering package,
// not a runtime condition callers should need to branch on.
func (d *Descriptor) CreateInstance(isInverse bool) (Instance, error) {
	if d.Factory == nil {
		panic("algorithm: descriptor " + d.Name + " has no Factory")
	}
	return d.Factory(isInverse)
}

// OutputSizeAllowed reports whether n is one of the descriptor's declared
// supported output lengths. A descriptor with no declared output sizes
// (fixed-output hash, cipher with output size == input size, ...) allows
// anything.
func (d *Descriptor) OutputSizeAllowed(n int) bool {
	if len(d.SupportedOutputLen) == 0 {
		return true
	}
	for _, ks := range d.SupportedOutputLen {
		if ks.Contains(n) {
			return true
		}
	}
	return false
}

// KeySizeAllowed reports whether n is one of the descriptor's declared key
// sizes. A descriptor with no declared key sizes is keyless.
func (d *Descriptor) KeySizeAllowed(n int) bool {
	if len(d.KeySizes) == 0 {
		return true
	}
	for _, ks := range d.KeySizes {
		if ks.Contains(n) {
			return true
		}
	}
	return false
}
