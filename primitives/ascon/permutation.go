// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ascon implements the sponge construction pattern (spec section
// 4.G.3): a 320-bit state split into an 8-byte rate and 32-byte capacity,
// absorbing through a 12-round permutation, squeezing a 32-byte digest for
// Ascon-Hash256, per NIST SP 800-232.
package ascon

import "github.com/cryptoframe/algokit/opcodes"

// state is Ascon's 320-bit permutation state: five 64-bit lanes.
type state [5]uint64

// roundConstants are the 12 round constants used when running all 12
// rounds of the permutation (Ascon-Hash256 always does; AEAD variants that
// run fewer rounds would index from the tail of a longer table).
var roundConstants = [12]uint64{
	0xf0, 0xe1, 0xd2, 0xc3, 0xb4, 0xa5, 0x96, 0x87, 0x78, 0x69, 0x5a, 0x4b,
}

// sbox applies Ascon's 5-bit substitution layer bitsliced across the five
// lanes, per the cited standard's reference formula.
func sbox(s *state) {
	x0, x1, x2, x3, x4 := s[0], s[1], s[2], s[3], s[4]

	x0 ^= x4
	x4 ^= x3
	x2 ^= x1

	t0 := (^x0) & x1
	t1 := (^x1) & x2
	t2 := (^x2) & x3
	t3 := (^x3) & x4
	t4 := (^x4) & x0

	x0 ^= t1
	x1 ^= t2
	x2 ^= t3
	x3 ^= t4
	x4 ^= t0

	x1 ^= x0
	x0 ^= x4
	x3 ^= x2
	x2 = ^x2

	s[0], s[1], s[2], s[3], s[4] = x0, x1, x2, x3, x4
}

func rotr(x uint64, n uint) uint64 {
	return x>>n | x<<(64-n)
}

// linear applies Ascon's per-lane rotate-XOR diffusion layer.
func linear(s *state) {
	s[0] ^= rotr(s[0], 19) ^ rotr(s[0], 28)
	s[1] ^= rotr(s[1], 61) ^ rotr(s[1], 39)
	s[2] ^= rotr(s[2], 1) ^ rotr(s[2], 6)
	s[3] ^= rotr(s[3], 10) ^ rotr(s[3], 17)
	s[4] ^= rotr(s[4], 7) ^ rotr(s[4], 41)
}

// permute12 runs all 12 rounds of the Ascon permutation over s.
func permute12(s *state) {
	for _, rc := range roundConstants {
		s[2] ^= rc
		sbox(s)
		linear(s)
	}
}

// asconHash256IV is Ascon-Hash256's fixed initialization vector: the
// first lane before the first permutation call, encoding the rate (64
// bits), round counts (a=b=12) and output length (256 bits).
const asconHash256IV uint64 = 0x00400c0000000100

func initialState() state {
	s := state{asconHash256IV, 0, 0, 0, 0}
	permute12(&s)
	return s
}

func loadLaneBE(b []byte) uint64 { return opcodes.LoadU64SliceBE(b) }

func storeLaneBE(w uint64) [8]byte { return opcodes.Unpack64BE(w) }
