// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

// Package padding wires the padding category: block-aligning schemes
// that sit between a plaintext and a block cipher, distinct from the
// bit-level domain-separation encodings the padding package at the
// repository root supplies to the hash/XOF primitives (SP 800-185's
// left/right-encode, Merkle–Damgård length suffixes). Both are named
// "padding" because cryptography overloads the word for two unrelated
// ideas — block alignment here, domain separation there — so this
// package lives under domain/ to keep the two apart by path as well as
// by doc comment.
package padding

import (
	"github.com/cryptoframe/algokit/algorithm"
	"github.com/cryptoframe/algokit/metadata"
)

const defaultBlockSize = 16

// schemeInstance buffers fed bytes and pads/strips them all at once on
// Result, parameterized by a pad/unpad function pair and a block size.
type schemeInstance struct {
	isInverse bool
	blockSize int
	pad       func(data []byte, blockSize int) []byte
	unpad     func(data []byte, blockSize int) ([]byte, error)
	buf       []byte
	finalized bool
}

func (s *schemeInstance) Feed(data []byte) error {
	if s.finalized {
		return algorithm.ErrFeedAfterFinalize
	}
	s.buf = append(s.buf, data...)
	return nil
}

func (s *schemeInstance) Result() ([]byte, error) {
	if s.finalized {
		return nil, algorithm.ErrFeedAfterFinalize
	}
	s.finalized = true
	if s.isInverse {
		return s.unpad(s.buf, s.blockSize)
	}
	return s.pad(s.buf, s.blockSize), nil
}

func newSchemeFactory(pad func([]byte, int) []byte, unpad func([]byte, int) ([]byte, error)) func(bool) (algorithm.Instance, error) {
	return func(isInverse bool) (algorithm.Instance, error) {
		return &schemeInstance{isInverse: isInverse, blockSize: defaultBlockSize, pad: pad, unpad: unpad}, nil
	}
}

// pkcs7Pad appends n bytes of value n, where n = blockSize - len(data)%blockSize
// (a full extra block of padding when data is already block-aligned).
func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	out := make([]byte, len(data)+n)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(n)
	}
	return out
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, algorithm.ErrInvalidEncoding
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, algorithm.ErrInvalidEncoding
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, algorithm.ErrInvalidEncoding
		}
	}
	return data[:len(data)-n], nil
}

// PKCS7Descriptor declares PKCS#7 padding (RFC 5652 section 6.3).
var PKCS7Descriptor = &algorithm.Descriptor{
	Name:         "PKCS7",
	InternalName: "pkcs7",
	Category:     metadata.CategoryPadding,
	SubCategory:  "byte-value-length-padding",

	Description: "Pads to a block boundary with n bytes each holding the value n, the pad count doubling as the pad marker; always adds a full extra block when the input is already aligned, so unpadding is unambiguous.",

	SecurityStatus: metadata.SecurityUnspecified,
	Complexity:     metadata.ComplexityBeginner,

	Documentation: []metadata.LinkItem{
		{Text: "RFC 5652 section 6.3", URI: "https://www.rfc-editor.org/rfc/rfc5652#section-6.3"},
	},

	Factory: newSchemeFactory(pkcs7Pad, pkcs7Unpad),
}

// iso7816Pad appends a single 0x80 byte followed by zero bytes to the
// next block boundary (ISO/IEC 7816-4).
func iso7816Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	out := make([]byte, len(data)+n)
	copy(out, data)
	out[len(data)] = 0x80
	return out
}

func iso7816Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, algorithm.ErrInvalidEncoding
	}
	i := len(data) - 1
	for i >= 0 && data[i] == 0x00 {
		i--
	}
	if i < 0 || data[i] != 0x80 {
		return nil, algorithm.ErrInvalidEncoding
	}
	return data[:i], nil
}

// ISO7816Descriptor declares ISO/IEC 7816-4 padding.
var ISO7816Descriptor = &algorithm.Descriptor{
	Name:         "ISO7816-4",
	InternalName: "iso7816-4",
	Category:     metadata.CategoryPadding,
	SubCategory:  "mandatory-byte-padding",

	Description: "Pads with a single 0x80 marker byte followed by zero bytes to the block boundary; unpadding scans back from the end for the first nonzero byte and requires it to be 0x80.",

	SecurityStatus: metadata.SecurityUnspecified,
	Complexity:     metadata.ComplexityBeginner,

	Factory: newSchemeFactory(iso7816Pad, iso7816Unpad),
}
