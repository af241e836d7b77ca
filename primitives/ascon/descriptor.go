// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package ascon

import (
	"encoding/hex"

	"github.com/cryptoframe/algokit/algorithm"
	"github.com/cryptoframe/algokit/metadata"
)

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("ascon: bad hex literal: " + err.Error())
	}
	return b
}

// Descriptor declares Ascon-Hash256, the fixed-256-bit-output member of
// the Ascon family NIST selected as the lightweight cryptography standard
// (SP 800-232): a sponge built on the same 12-round permutation used by
// the family's AEAD modes.
var Descriptor = &algorithm.Descriptor{
	Name:         "Ascon-Hash256",
	InternalName: "ascon-hash256",
	Category:     metadata.CategoryHash,
	SubCategory:  "sponge",

	Inventor: "Christoph Dobraunig, Maria Eichlseder, Florian Mendel, Martin Schläffer",
	Year:     2016,
	Country:  metadata.CountryMulti,
	Description: "Sponge hash over a 320-bit state (8-byte rate, 32-byte " +
		"capacity), absorbing and squeezing through a 12-round permutation " +
		"shared with the Ascon AEAD family.",

	BlockSizes:         []metadata.KeySize{{Min: 8, Max: 8, Step: 1}},
	SupportedOutputLen: []metadata.KeySize{{Min: 32, Max: 32, Step: 1}},

	SecurityStatus: metadata.SecuritySecure,
	Complexity:     metadata.ComplexityIntermediate,

	Documentation: []metadata.LinkItem{
		{Text: "NIST SP 800-232", URI: "https://csrc.nist.gov/pubs/sp/800/232/final"},
	},

	Tests: []metadata.TestCase{
		{Text: "single zero byte", Input: []byte{0x00}, Expected: mustHex("8dd446ada58a7740ecf56eb638ef775f7d5c0fd5f0c2bbbdfdec29609d3c43a2")},
	},

	Factory: func(isInverse bool) (algorithm.Instance, error) {
		if isInverse {
			return nil, algorithm.ErrNotInvertible
		}
		return newInstance(), nil
	},
}
