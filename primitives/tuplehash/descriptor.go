// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package tuplehash

import (
	"encoding/hex"

	"github.com/cryptoframe/algokit/algorithm"
	"github.com/cryptoframe/algokit/metadata"
)

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("tuplehash: bad hex literal: " + err.Error())
	}
	return b
}

func newDescriptor(name, internalName string, bits int, tests []metadata.TestCase) *algorithm.Descriptor {
	return &algorithm.Descriptor{
		Name:         name,
		InternalName: internalName,
		Category:     metadata.CategorySpecial,
		SubCategory:  "tuple-hash",

		Inventor: "NIST (Kelsey, Chang, Perlner)",
		Year:     2016,
		Country:  metadata.Country("US"),
		Description: "SP 800-185 tuple hash: unambiguously hashes a sequence " +
			"of distinct byte strings by encode_string-framing each one into " +
			"a cSHAKE sponge, then absorbing right_encode of the requested " +
			"output length before squeezing.",

		SecurityStatus: metadata.SecuritySecure,
		Complexity:     metadata.ComplexityIntermediate,

		Documentation: []metadata.LinkItem{
			{Text: "NIST SP 800-185", URI: "https://csrc.nist.gov/pubs/sp/800/185/final"},
		},

		Tests: tests,

		Factory: func(bool) (algorithm.Instance, error) {
			return newInstance(bits), nil
		},
	}
}

// Descriptor128 declares TupleHash128, carrying SP 800-185's worked
// TupleHash128 sample (two-element tuple, no customization, 256-bit
// output).
var Descriptor128 = newDescriptor("TupleHash128", "tuplehash128", 128, []metadata.TestCase{
	{
		Text: "SP 800-185 TupleHash128 sample, two-element tuple",
		Tuples: [][]byte{
			mustHex("000102"),
			mustHex("101112131415"),
		},
		OutputSize: 32,
		Expected:   mustHex("c5d8786c1afb9b8211ab34b65b2c0048fa64e6d48e263264ce1707d3ffc8ed11"),
	},
})

// Descriptor256 declares TupleHash256. No literal NIST vector is
// transcribed for the 256-bit variant here; its only test checks the
// default output size. The chunk-boundary-sensitivity and idempotency
// tests run on TupleHash128 only.
var Descriptor256 = newDescriptor("TupleHash256", "tuplehash256", 256, nil)
