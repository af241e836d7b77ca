// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package ripemd

import (
	"encoding/hex"

	"github.com/cryptoframe/algokit/algorithm"
	"github.com/cryptoframe/algokit/metadata"
)

// mustHex decodes a literal, known-good hex test vector at package init
// time; a decode error here is a typo in this file, not a runtime
// condition.
func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("ripemd: bad hex literal: " + err.Error())
	}
	return b
}

// Descriptor128 declares RIPEMD-128, a 128-bit dual-line Merkle-Damgard
// hash designed at COSIC (Leuven) as a strengthened successor to the
// original RIPEMD.
var Descriptor128 = &algorithm.Descriptor{
	Name:         "RIPEMD-128",
	InternalName: "ripemd128",
	Category:     metadata.CategoryHash,
	SubCategory:  "merkle-damgard",

	Inventor: "Hans Dobbertin, Antoon Bosselaers, Bart Preneel",
	Year:     1996,
	Country:  metadata.CountryMulti,
	Description: "Dual-line Merkle-Damgard hash: two independent 4-round " +
		"computation lines over the same message words, combined by a " +
		"cross-update at the end of each 64-byte block.",

	BlockSizes:         []metadata.KeySize{{Min: 64, Max: 64, Step: 1}},
	SupportedOutputLen: []metadata.KeySize{{Min: 16, Max: 16, Step: 1}},

	SecurityStatus: metadata.SecurityEducational,
	Complexity:     metadata.ComplexityIntermediate,

	Documentation: []metadata.LinkItem{
		{Text: "ISO/IEC 10118-3", URI: "https://www.iso.org/standard/67116.html"},
	},

	Tests: []metadata.TestCase{
		{Text: "empty string", Input: []byte(""), Expected: mustHex("cdf26213a150dc3ecb610f18f6b38b46")},
		{Text: "abc", Input: []byte("abc"), Expected: mustHex("c14a12199c66e4ba84636b0f69144c77")},
	},

	Factory: func(isInverse bool) (algorithm.Instance, error) {
		if isInverse {
			return nil, algorithm.ErrNotInvertible
		}
		return newInstance(ripemd128IV[:], compress128), nil
	},
}

// Descriptor256 declares RIPEMD-256, the 256-bit sibling that runs the
// same two lines but exchanges one register between them after each round
// instead of cross-updating only at the end; it offers a larger output for
// applications wanting longer digests, not additional collision resistance
// over RIPEMD-128.
var Descriptor256 = &algorithm.Descriptor{
	Name:         "RIPEMD-256",
	InternalName: "ripemd256",
	Category:     metadata.CategoryHash,
	SubCategory:  "merkle-damgard",

	Inventor: "Hans Dobbertin, Antoon Bosselaers, Bart Preneel",
	Year:     1996,
	Country:  metadata.CountryMulti,
	Description: "RIPEMD-128's dual-line construction extended to eight " +
		"chaining words, exchanging one register between the two lines " +
		"after each round instead of combining only at block end.",

	BlockSizes:         []metadata.KeySize{{Min: 64, Max: 64, Step: 1}},
	SupportedOutputLen: []metadata.KeySize{{Min: 32, Max: 32, Step: 1}},

	SecurityStatus: metadata.SecurityEducational,
	Complexity:     metadata.ComplexityIntermediate,

	Documentation: []metadata.LinkItem{
		{Text: "ISO/IEC 10118-3", URI: "https://www.iso.org/standard/67116.html"},
	},

	Tests: []metadata.TestCase{
		{Text: "a", Input: []byte("a"), Expected: mustHex("f9333e45d857f5d90a91bab70a1eba0cfb1be4b0783c9acfcd883a9134692925")},
	},

	Factory: func(isInverse bool) (algorithm.Instance, error) {
		if isInverse {
			return nil, algorithm.ErrNotInvertible
		}
		return newInstance(ripemd256IV[:], compress256), nil
	},
}
