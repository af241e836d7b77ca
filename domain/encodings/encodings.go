// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

// Package encodings wires byte<->text codecs into the Instance contract:
// stdlib encoding/hex and encoding/base64, and github.com/mr-tron/base58
// (an indirect teacher dependency). isInverse selects decode instead of
// encode, the same direction switch the block-cipher category uses.
package encodings

import (
	"encoding/base64"
	"encoding/hex"

	"github.com/mr-tron/base58"

	"github.com/cryptoframe/algokit/algorithm"
	"github.com/cryptoframe/algokit/metadata"
)

// codecInstance buffers fed bytes and transforms them all at once on
// Result, since none of these codecs benefit from block-wise streaming
// the way a hash or cipher does.
type codecInstance struct {
	isInverse bool
	encode    func([]byte) []byte
	decode    func([]byte) ([]byte, error)
	buf       []byte
	finalized bool
}

func (c *codecInstance) Feed(data []byte) error {
	if c.finalized {
		return algorithm.ErrFeedAfterFinalize
	}
	c.buf = append(c.buf, data...)
	return nil
}

func (c *codecInstance) Result() ([]byte, error) {
	if c.finalized {
		return nil, algorithm.ErrFeedAfterFinalize
	}
	c.finalized = true
	if c.isInverse {
		out, err := c.decode(c.buf)
		if err != nil {
			return nil, algorithm.ErrInvalidEncoding
		}
		return out, nil
	}
	return c.encode(c.buf), nil
}

func newCodecFactory(encode func([]byte) []byte, decode func([]byte) ([]byte, error)) func(bool) (algorithm.Instance, error) {
	return func(isInverse bool) (algorithm.Instance, error) {
		return &codecInstance{isInverse: isInverse, encode: encode, decode: decode}, nil
	}
}

func hexEncode(b []byte) []byte { return []byte(hex.EncodeToString(b)) }
func hexDecode(b []byte) ([]byte, error) { return hex.DecodeString(string(b)) }

func base64Encode(b []byte) []byte { return []byte(base64.StdEncoding.EncodeToString(b)) }
func base64Decode(b []byte) ([]byte, error) { return base64.StdEncoding.DecodeString(string(b)) }

func base58Encode(b []byte) []byte { return []byte(base58.Encode(b)) }
func base58Decode(b []byte) ([]byte, error) { return base58.Decode(string(b)) }

// HexDescriptor declares hex (base16) encoding.
var HexDescriptor = &algorithm.Descriptor{
	Name:           "Hex",
	InternalName:   "hex",
	Category:       metadata.CategoryEncoding,
	SubCategory:    "positional-base16",
	Description:    "Base16 text encoding, two hex digits per byte.",
	SecurityStatus: metadata.SecurityUnspecified,
	Complexity:     metadata.ComplexityBeginner,
	Factory:        newCodecFactory(hexEncode, hexDecode),
}

// Base64Descriptor declares standard (RFC 4648) base64 encoding.
var Base64Descriptor = &algorithm.Descriptor{
	Name:           "Base64",
	InternalName:   "base64",
	Category:       metadata.CategoryEncoding,
	SubCategory:    "positional-base64",
	Description:    "RFC 4648 standard base64 text encoding with padding.",
	SecurityStatus: metadata.SecurityUnspecified,
	Complexity:     metadata.ComplexityBeginner,
	Factory:        newCodecFactory(base64Encode, base64Decode),
}

// Base58Descriptor declares Bitcoin-alphabet base58 encoding (no 0/O/I/l,
// no padding, leading-zero-byte preserving).
var Base58Descriptor = &algorithm.Descriptor{
	Name:           "Base58",
	InternalName:   "base58",
	Category:       metadata.CategoryEncoding,
	SubCategory:    "positional-base58",
	Description:    "Bitcoin-alphabet base58 encoding: excludes visually ambiguous characters (0, O, I, l), commonly used for addresses and keys.",
	SecurityStatus: metadata.SecurityUnspecified,
	Complexity:     metadata.ComplexityBeginner,
	Factory:        newCodecFactory(base58Encode, base58Decode),
}
