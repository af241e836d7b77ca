// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ripemd implements the dual-line Merkle-Damgard hash pattern
// (spec section 4.G.1): a 64-byte block, little-endian word loads, two
// parallel state lines with independent round functions and rotation
// constants, and either a final cross-update (RIPEMD-128) or a per-round
// register swap between the lines (RIPEMD-256), per ISO/IEC 10118-3.
package ripemd

// Message word permutation per round (rounds 1-4, 16 words each) for the
// left and right computation lines, per ISO/IEC 10118-3.
var leftWordOrder = [4][16]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{7, 4, 13, 1, 10, 6, 15, 3, 12, 0, 9, 5, 2, 14, 11, 8},
	{3, 10, 14, 4, 9, 15, 8, 1, 2, 7, 0, 6, 13, 11, 5, 12},
	{1, 9, 11, 10, 0, 8, 12, 4, 13, 3, 7, 15, 14, 5, 6, 2},
}

var rightWordOrder = [4][16]int{
	{5, 14, 7, 0, 9, 2, 11, 4, 13, 6, 15, 8, 1, 10, 3, 12},
	{6, 11, 3, 7, 0, 13, 5, 10, 14, 15, 8, 12, 4, 9, 1, 2},
	{15, 5, 1, 3, 7, 14, 6, 9, 11, 8, 12, 2, 10, 0, 4, 13},
	{8, 6, 4, 1, 3, 11, 15, 0, 5, 12, 2, 13, 9, 7, 10, 14},
}

// Per-step rotation amounts, left and right lines.
var leftShift = [4][16]uint{
	{11, 14, 15, 12, 5, 8, 7, 9, 11, 13, 14, 15, 6, 7, 9, 8},
	{7, 6, 8, 13, 11, 9, 7, 15, 7, 12, 15, 9, 11, 7, 13, 12},
	{11, 13, 6, 7, 14, 9, 13, 15, 14, 8, 13, 6, 5, 12, 7, 5},
	{11, 12, 14, 15, 14, 15, 9, 8, 9, 14, 5, 6, 8, 6, 5, 12},
}

var rightShift = [4][16]uint{
	{8, 9, 9, 11, 13, 15, 15, 5, 7, 7, 8, 11, 14, 14, 12, 6},
	{9, 13, 15, 7, 12, 8, 9, 11, 7, 7, 12, 7, 6, 15, 13, 11},
	{9, 7, 15, 11, 8, 6, 6, 14, 12, 13, 5, 14, 13, 13, 7, 5},
	{15, 5, 8, 11, 14, 14, 6, 14, 6, 9, 12, 9, 12, 5, 15, 8},
}

// Additive constants per round. The left line's round 1 and the right
// line's round 4 have no additive constant (0).
var leftConst = [4]uint32{0x00000000, 0x5A827999, 0x6ED9EBA1, 0x8F1BBCDC}
var rightConst = [4]uint32{0x50A28BE6, 0x5C4DD124, 0x6D703EF3, 0x00000000}

func f1(x, y, z uint32) uint32 { return x ^ y ^ z }
func f2(x, y, z uint32) uint32 { return (x & y) | (^x & z) }
func f3(x, y, z uint32) uint32 { return (x | ^y) ^ z }
func f4(x, y, z uint32) uint32 { return (x & z) | (y &^ z) }

// leftFunc returns the round function for the left line's round index
// (0-3), applying f1,f2,f3,f4 in order.
func leftFunc(round int) func(x, y, z uint32) uint32 {
	return [4]func(uint32, uint32, uint32) uint32{f1, f2, f3, f4}[round]
}

// rightFunc returns the round function for the right line's round index
// (0-3), applying f4,f3,f2,f1 — the reverse order of the left line, the
// defining trick that keeps the two parallel computations independent.
func rightFunc(round int) func(x, y, z uint32) uint32 {
	return [4]func(uint32, uint32, uint32) uint32{f4, f3, f2, f1}[round]
}
