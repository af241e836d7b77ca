// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package macs

import (
	"encoding/binary"

	"github.com/dchest/siphash"

	"github.com/cryptoframe/algokit/algorithm"
	"github.com/cryptoframe/algokit/metadata"
)

const siphashKeySize = 16

// siphashInstance is a MACInstance over github.com/dchest/siphash's
// SipHash-2-4, a short-input-optimized keyed hash (hash-flooding
// resistant table/map keying, not a general MAC for large messages).
type siphashInstance struct {
	k0, k1 uint64
	keyed  bool
	buf    []byte
	digest []byte
}

func newSiphashInstance(bool) (algorithm.Instance, error) {
	return &siphashInstance{}, nil
}

func (s *siphashInstance) SetKey(key []byte) error {
	if len(key) != siphashKeySize {
		return algorithm.ErrInvalidParameter
	}
	s.k0 = binary.LittleEndian.Uint64(key[:8])
	s.k1 = binary.LittleEndian.Uint64(key[8:])
	s.keyed = true
	return nil
}

func (s *siphashInstance) Feed(data []byte) error {
	if !s.keyed {
		return algorithm.ErrInvalidParameter
	}
	if s.digest != nil {
		s.buf = nil
		s.digest = nil
	}
	s.buf = append(s.buf, data...)
	return nil
}

func (s *siphashInstance) Result() ([]byte, error) {
	if s.digest != nil {
		return s.digest, nil
	}
	if !s.keyed {
		return nil, algorithm.ErrInvalidParameter
	}
	out := make([]byte, 8)
	binary.LittleEndian.PutUint64(out, siphash.Hash(s.k0, s.k1, s.buf))
	s.digest = out
	return out, nil
}

// SipHash24Descriptor declares SipHash-2-4, keyed with a 16-byte key
// (k0||k1, little-endian), producing a 64-bit tag.
var SipHash24Descriptor = &algorithm.Descriptor{
	Name:         "SipHash-2-4",
	InternalName: "siphash-2-4",
	Category:     metadata.CategoryMAC,
	SubCategory:  "arx-short-input-mac",

	Inventor:    "Jean-Philippe Aumasson, Daniel J. Bernstein",
	Year:        2012,
	Country:     metadata.CountryMulti,
	Description: "ARX-based keyed hash designed for fast, hash-flooding-resistant short-input MACs (hash table keys, not general-purpose bulk-message authentication).",

	KeySizes: []metadata.KeySize{{Min: siphashKeySize, Max: siphashKeySize, Step: 1}},

	SecurityStatus: metadata.SecuritySecure,
	Complexity:     metadata.ComplexityIntermediate,

	Factory: newSiphashInstance,
}
