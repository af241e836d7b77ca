// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package ripemd

// ripemd128IV is the initial chaining value shared by RIPEMD-128 and, for
// its first four words, RIPEMD-256.
var ripemd128IV = [4]uint32{0x67452301, 0xEFCDAB89, 0x98BADCFE, 0x10325476}

// compress128 runs one compression step of RIPEMD-128 over a 64-byte block,
// updating h (length 4) in place. The two lines run independently to
// completion and are combined by a single cross-update at the end of the
// block, per ISO/IEC 10118-3.
func compress128(h []uint32, block []byte) {
	x := loadWords(block)

	a, b, c, d := runLine(h[0], h[1], h[2], h[3], x, leftWordOrder, leftShift, leftConst, leftFunc)
	ap, bp, cp, dp := runLine(h[0], h[1], h[2], h[3], x, rightWordOrder, rightShift, rightConst, rightFunc)

	t := h[1] + c + dp
	h1 := h[2] + d + ap
	h2 := h[3] + a + bp
	h3 := h[0] + b + cp
	h[0] = t
	h[1] = h1
	h[2] = h2
	h[3] = h3
}
