// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package ripemd

// ripemd256IV is the initial chaining value for RIPEMD-256: the same four
// words RIPEMD-128 uses for its left line, plus four more for the right
// line.
var ripemd256IV = [8]uint32{
	0x67452301, 0xEFCDAB89, 0x98BADCFE, 0x10325476,
	0x76543210, 0xFEDCBA98, 0x89ABCDEF, 0x01234567,
}

// compress256 runs one compression step of RIPEMD-256 over a 64-byte
// block, updating h in place. Unlike RIPEMD-128, the two lines exchange one
// register after each of the four rounds (A after round 1, B after round
// 2, C after round 3, D after round 4) instead of combining only at the
// end, and the final chaining is a simple word-wise addition with no
// cross-update, per ISO/IEC 10118-3.
func compress256(h []uint32, block []byte) {
	x := loadWords(block)

	a, b, c, d := h[0], h[1], h[2], h[3]
	ap, bp, cp, dp := h[4], h[5], h[6], h[7]

	a, b, c, d = runRound(a, b, c, d, x, leftWordOrder[0], leftShift[0], leftConst[0], leftFunc(0))
	ap, bp, cp, dp = runRound(ap, bp, cp, dp, x, rightWordOrder[0], rightShift[0], rightConst[0], rightFunc(0))
	a, ap = ap, a

	a, b, c, d = runRound(a, b, c, d, x, leftWordOrder[1], leftShift[1], leftConst[1], leftFunc(1))
	ap, bp, cp, dp = runRound(ap, bp, cp, dp, x, rightWordOrder[1], rightShift[1], rightConst[1], rightFunc(1))
	b, bp = bp, b

	a, b, c, d = runRound(a, b, c, d, x, leftWordOrder[2], leftShift[2], leftConst[2], leftFunc(2))
	ap, bp, cp, dp = runRound(ap, bp, cp, dp, x, rightWordOrder[2], rightShift[2], rightConst[2], rightFunc(2))
	c, cp = cp, c

	a, b, c, d = runRound(a, b, c, d, x, leftWordOrder[3], leftShift[3], leftConst[3], leftFunc(3))
	ap, bp, cp, dp = runRound(ap, bp, cp, dp, x, rightWordOrder[3], rightShift[3], rightConst[3], rightFunc(3))
	d, dp = dp, d

	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
	h[4] += ap
	h[5] += bp
	h[6] += cp
	h[7] += dp
}
