// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package whirlpool

import (
	"encoding/hex"

	"github.com/cryptoframe/algokit/algorithm"
	"github.com/cryptoframe/algokit/metadata"
)

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("whirlpool: bad hex literal: " + err.Error())
	}
	return b
}

// Descriptor declares Whirlpool, a 512-bit single-line Merkle-Damgard hash
// built around a 10-round AES-like block cipher used in Miyaguchi-Preneel
// mode, standardized alongside SHA and RIPEMD as an ISO hash function.
var Descriptor = &algorithm.Descriptor{
	Name:         "Whirlpool",
	InternalName: "whirlpool",
	Category:     metadata.CategoryHash,
	SubCategory:  "merkle-damgard",

	Inventor: "Paulo S. L. M. Barreto, Vincent Rijmen",
	Year:     2000,
	Country:  metadata.CountryMulti,
	Description: "Single-line Merkle-Damgard hash wrapping a 10-round " +
		"AES-like 512-bit block cipher keyed by the running hash value, " +
		"combined in Miyaguchi-Preneel mode.",

	BlockSizes:         []metadata.KeySize{{Min: 64, Max: 64, Step: 1}},
	SupportedOutputLen: []metadata.KeySize{{Min: 64, Max: 64, Step: 1}},

	SecurityStatus: metadata.SecuritySecure,
	Complexity:     metadata.ComplexityAdvanced,

	Documentation: []metadata.LinkItem{
		{Text: "ISO/IEC 10118-3", URI: "https://www.iso.org/standard/67116.html"},
	},

	Tests: []metadata.TestCase{
		{
			Text:  "abc",
			Input: []byte("abc"),
			Expected: mustHex("4e2448a4c6f486bb16b6562c73b4020bf3043e3a731bce721ae1b303d97e6d4" +
				"c7181eebdb6c57e277d0e34957114cbd6c797fc9d95d8b582d225292076d4eef5"),
		},
	},

	Factory: func(isInverse bool) (algorithm.Instance, error) {
		if isInverse {
			return nil, algorithm.ErrNotInvertible
		}
		return newInstance(), nil
	},
}
