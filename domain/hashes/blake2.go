// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package hashes

import (
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"

	"github.com/cryptoframe/algokit/algorithm"
	"github.com/cryptoframe/algokit/metadata"
)

// blake2Instance adapts a stdlib-shaped hash.Hash (blake2b/blake2s both
// implement it) to a HashInstance: Feed writes, Result reads Sum and
// caches it for idempotency, and a Feed after a cached Result rebuilds a
// fresh hash.Hash from the same constructor — the same implicit-reset
// policy every other hash-category adapter in this repository follows.
type blake2Instance struct {
	newHash func() (hash.Hash, error)
	h       hash.Hash
	digest  []byte
}

func newBlake2Instance(newHash func() (hash.Hash, error)) func(bool) (algorithm.Instance, error) {
	return func(bool) (algorithm.Instance, error) {
		h, err := newHash()
		if err != nil {
			return nil, err
		}
		return &blake2Instance{newHash: newHash, h: h}, nil
	}
}

func (b *blake2Instance) Feed(data []byte) error {
	if b.digest != nil {
		h, err := b.newHash()
		if err != nil {
			return err
		}
		b.h = h
		b.digest = nil
	}
	_, err := b.h.Write(data)
	return err
}

func (b *blake2Instance) Result() ([]byte, error) {
	if b.digest != nil {
		return b.digest, nil
	}
	b.digest = b.h.Sum(nil)
	return b.digest, nil
}

// Blake2bDescriptor declares BLAKE2b-512.
var Blake2bDescriptor = &algorithm.Descriptor{
	Name:         "BLAKE2b-512",
	InternalName: "blake2b-512",
	Category:     metadata.CategoryHash,
	SubCategory:  "arx-merkle-damgard",

	Inventor:    "Jean-Philippe Aumasson, Samuel Neves, Zooko Wilcox-O'Hearn, Christian Winnerlein",
	Year:        2012,
	Country:     metadata.CountryMulti,
	Description: "ARX hash tuned for 64-bit platforms; BLAKE2b-512 is the default output size, also supports keyed-MAC mode directly in its internal state.",

	SecurityStatus: metadata.SecuritySecure,
	Complexity:     metadata.ComplexityIntermediate,

	Documentation: []metadata.LinkItem{
		{Text: "RFC 7693", URI: "https://www.rfc-editor.org/rfc/rfc7693"},
	},

	Tests: []metadata.TestCase{
		{
			Text:  "empty input",
			Input: nil,
			Expected: mustHex("786a02f742015903c6c6fd852552d272912f4740e15847618a86e217f71f5419" +
				"d25e1031afee585313896444934eb04b903a685b1448b755d56f701afe9be2ce"),
		},
	},

	Factory: newBlake2Instance(func() (hash.Hash, error) { return blake2b.New512(nil) }),
}

// Blake2sDescriptor declares BLAKE2s-256, the 32-bit-optimized sibling
// most useful on constrained or embedded targets.
var Blake2sDescriptor = &algorithm.Descriptor{
	Name:         "BLAKE2s-256",
	InternalName: "blake2s-256",
	Category:     metadata.CategoryHash,
	SubCategory:  "arx-merkle-damgard",

	Inventor:    "Jean-Philippe Aumasson, Samuel Neves, Zooko Wilcox-O'Hearn, Christian Winnerlein",
	Year:        2012,
	Country:     metadata.CountryMulti,
	Description: "32-bit-optimized sibling of BLAKE2b, same ARX core at half the word size and state size.",

	SecurityStatus: metadata.SecuritySecure,
	Complexity:     metadata.ComplexityIntermediate,

	Documentation: []metadata.LinkItem{
		{Text: "RFC 7693", URI: "https://www.rfc-editor.org/rfc/rfc7693"},
	},

	Tests: []metadata.TestCase{
		{
			Text:     "empty input",
			Input:    nil,
			Expected: mustHex("69217a3079908094e11121d042354a7c1f55b6482ca1a51e1b250dfd1ed0eef9"),
		},
	},

	Factory: newBlake2Instance(func() (hash.Hash, error) { return blake2s.New256(nil) }),
}
