// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ecc implements Hamming(7,4) single-error-correcting code on the
// standard library alone: no error-correction-code library appears
// anywhere in the retrieved pack (the closest candidates — gnark-crypto,
// go-kzg-4844 — are polynomial-commitment libraries, not ECC codes), so
// this is one of the few components this repository builds on bit
// arithmetic rather than a wired dependency.
package ecc

import (
	"github.com/cryptoframe/algokit/algorithm"
	"github.com/cryptoframe/algokit/metadata"
)

// hammingInstance is an Instance: isInverse selects decode (error
// detection/correction) instead of encode. Each Feed call's bytes are
// nibble-split and encoded/decoded independently, four data bits in,
// seven code bits out (or the reverse).
type hammingInstance struct {
	isInverse bool
	buf       []byte
	finalized bool
}

func newHammingInstance(isInverse bool) (algorithm.Instance, error) {
	return &hammingInstance{isInverse: isInverse}, nil
}

func (h *hammingInstance) Feed(data []byte) error {
	if h.finalized {
		return algorithm.ErrFeedAfterFinalize
	}
	h.buf = append(h.buf, data...)
	return nil
}

func (h *hammingInstance) Result() ([]byte, error) {
	if h.finalized {
		return nil, algorithm.ErrFeedAfterFinalize
	}
	h.finalized = true
	if h.isInverse {
		return decodeHamming(h.buf)
	}
	return encodeHamming(h.buf), nil
}

// encodeHamming splits each input byte into two 4-bit nibbles and encodes
// each nibble into a 7-bit Hamming(7,4) codeword (carried one per output
// byte, low 7 bits used).
func encodeHamming(data []byte) []byte {
	out := make([]byte, 0, len(data)*2)
	for _, b := range data {
		out = append(out, encodeNibble(b>>4), encodeNibble(b&0x0F))
	}
	return out
}

// decodeHamming is the inverse of encodeHamming: every two input bytes
// (each one 7-bit codeword) decode back to one nibble pair, correcting a
// single bit error per codeword via syndrome lookup.
func decodeHamming(data []byte) ([]byte, error) {
	if len(data)%2 != 0 {
		return nil, algorithm.ErrInvalidEncoding
	}
	out := make([]byte, 0, len(data)/2)
	for i := 0; i < len(data); i += 2 {
		hi := decodeNibble(data[i])
		lo := decodeNibble(data[i+1])
		out = append(out, hi<<4|lo)
	}
	return out, nil
}

// encodeNibble computes Hamming(7,4) parity bits for data bits d1..d4
// (the low 4 bits of b) using the standard generator layout
// p1 p2 d1 p3 d2 d3 d4 (bit 6 down to bit 0; bit 7 unused).
func encodeNibble(b byte) byte {
	d1 := (b >> 3) & 1
	d2 := (b >> 2) & 1
	d3 := (b >> 1) & 1
	d4 := b & 1

	p1 := d1 ^ d2 ^ d4
	p2 := d1 ^ d3 ^ d4
	p3 := d2 ^ d3 ^ d4

	return p1<<6 | p2<<5 | d1<<4 | p3<<3 | d2<<2 | d3<<1 | d4
}

// decodeNibble recovers the 4 data bits from a 7-bit codeword, correcting
// any single-bit error the syndrome identifies.
func decodeNibble(code byte) byte {
	p1 := (code >> 6) & 1
	p2 := (code >> 5) & 1
	d1 := (code >> 4) & 1
	p3 := (code >> 3) & 1
	d2 := (code >> 2) & 1
	d3 := (code >> 1) & 1
	d4 := code & 1

	s1 := p1 ^ d1 ^ d2 ^ d4
	s2 := p2 ^ d1 ^ d3 ^ d4
	s3 := p3 ^ d2 ^ d3 ^ d4
	syndrome := s1 | s2<<1 | s3<<2

	bits := [7]byte{p1, p2, d1, p3, d2, d3, d4}
	if syndrome != 0 && int(syndrome) <= 7 {
		bits[syndrome-1] ^= 1
	}
	d1, d2, d3, d4 = bits[2], bits[4], bits[5], bits[6]
	return d1<<3 | d2<<2 | d3<<1 | d4
}

// Descriptor declares Hamming(7,4).
var Descriptor = &algorithm.Descriptor{
	Name:         "Hamming(7,4)",
	InternalName: "hamming74",
	Category:     metadata.CategoryErrorCorrection,
	SubCategory:  "linear-block-code",

	Inventor:    "Richard Hamming",
	Year:        1950,
	Country:     metadata.Country("US"),
	Description: "Single-error-correcting linear block code: 4 data bits protected by 3 parity bits, syndrome decoding flips the one bit the syndrome identifies as wrong.",

	SecurityStatus: metadata.SecurityUnspecified,
	Complexity:     metadata.ComplexityBeginner,

	Factory: newHammingInstance,
}
