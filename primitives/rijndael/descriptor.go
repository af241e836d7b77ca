// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package rijndael

import (
	"encoding/hex"

	"github.com/cryptoframe/algokit/algorithm"
	"github.com/cryptoframe/algokit/metadata"
)

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("rijndael: bad hex literal: " + err.Error())
	}
	return b
}

// Descriptor declares Rijndael at its FIPS-197-standardized parameters
// (128-bit block, 128/192/256-bit key) — the member of Rijmen and Daemen's
// original variable block/key submission that NIST fixed as AES. The
// wider historical Rijndael block sizes (160 through 256 bits, in 32-bit
// steps) have no FIPS home and no declared test vector here, and this
// framework's BlockCipherInstance contract has no block-size setter
// alongside SetKey, so this descriptor scopes to the standardized block.
var Descriptor = &algorithm.Descriptor{
	Name:         "Rijndael",
	InternalName: "rijndael",
	Category:     metadata.CategoryBlockCipher,
	SubCategory:  "substitution-permutation-network",

	Inventor: "Joan Daemen, Vincent Rijmen",
	Year:     1998,
	Country:  metadata.Country("BE"),
	Description: "Substitution-permutation network block cipher: key " +
		"expansion into Nr+1 round keys, then SubBytes/ShiftRows/" +
		"MixColumns/AddRoundKey rounds with a MixColumns-free terminal round.",

	KeySizes:   []metadata.KeySize{{Min: 16, Max: 32, Step: 8}},
	BlockSizes: []metadata.KeySize{{Min: 16, Max: 16, Step: 1}},

	SecurityStatus: metadata.SecuritySecure,
	Complexity:     metadata.ComplexityAdvanced,

	Documentation: []metadata.LinkItem{
		{Text: "FIPS 197", URI: "https://csrc.nist.gov/pubs/fips/197/final"},
	},

	Tests: []metadata.TestCase{
		{
			Text:     "FIPS 197 appendix C.1 (AES-128)",
			Key:      mustHex("000102030405060708090a0b0c0d0e0f"),
			Input:    mustHex("00112233445566778899aabbccddeeff"),
			Expected: mustHex("69c4e0d86a7b0430d8cdb78070b4c55a"),
		},
	},

	Factory: func(isInverse bool) (algorithm.Instance, error) {
		return newInstance(isInverse), nil
	},
}
