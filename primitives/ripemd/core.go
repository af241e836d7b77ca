// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package ripemd

import "github.com/cryptoframe/algokit/opcodes"

// loadWords loads a 64-byte block into 16 little-endian uint32 words.
func loadWords(block []byte) [16]uint32 {
	var x [16]uint32
	for i := 0; i < 16; i++ {
		x[i] = opcodes.LoadU32SliceLE(block[i*4:])
	}
	return x
}

// runRound runs one 16-step round over the message words x, starting from
// (a,b,c,d), using f as the round function, order/shift as the round's
// message and rotation tables, and k as the round's additive constant.
func runRound(
	a, b, c, d uint32,
	x [16]uint32,
	order [16]int,
	shift [16]uint,
	k uint32,
	f func(x, y, z uint32) uint32,
) (uint32, uint32, uint32, uint32) {
	for step := 0; step < 16; step++ {
		t := a + f(b, c, d) + x[order[step]] + k
		t = opcodes.RotL32(t, shift[step])
		a, b, c, d = d, t, b, c
	}
	return a, b, c, d
}

// runLine runs all 4 rounds (64 steps) of one computation line over the
// message words x, starting from (a,b,c,d).
func runLine(
	a, b, c, d uint32,
	x [16]uint32,
	order [4][16]int,
	shift [4][16]uint,
	konst [4]uint32,
	fn func(round int) func(x, y, z uint32) uint32,
) (uint32, uint32, uint32, uint32) {
	for round := 0; round < 4; round++ {
		a, b, c, d = runRound(a, b, c, d, x, order[round], shift[round], konst[round], fn(round))
	}
	return a, b, c, d
}
