// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package padding

// LeftEncode implements NIST SP 800-185's left_encode(x): let n be the
// minimum number of bytes needed to hold x in big-endian form (n=1 for
// x==0), and emit [n, b1, ..., bn].
func LeftEncode(x uint64) []byte {
	b := minimalBigEndian(x)
	out := make([]byte, 0, len(b)+1)
	out = append(out, byte(len(b)))
	out = append(out, b...)
	return out
}

// RightEncode implements NIST SP 800-185's right_encode(x): emit
// [b1, ..., bn, n], the mirror image of LeftEncode.
func RightEncode(x uint64) []byte {
	b := minimalBigEndian(x)
	out := make([]byte, 0, len(b)+1)
	out = append(out, b...)
	out = append(out, byte(len(b)))
	return out
}

// minimalBigEndian returns the big-endian encoding of x with no leading
// zero bytes, except that zero itself encodes as a single 0x00 byte (n=1).
func minimalBigEndian(x uint64) []byte {
	if x == 0 {
		return []byte{0}
	}
	var tmp [8]byte
	for i := 0; i < 8; i++ {
		tmp[7-i] = byte(x >> (8 * i))
	}
	i := 0
	for i < 7 && tmp[i] == 0 {
		i++
	}
	return tmp[i:]
}

// EncodeString implements SP 800-185's encode_string(S): left_encode of
// S's bit length followed by S itself, used to prefix each tuple element
// (and the function-name/customization strings of cSHAKE-derived
// functions) so that concatenated encodings are unambiguous.
func EncodeString(s []byte) []byte {
	bitLen := uint64(len(s)) * 8
	enc := LeftEncode(bitLen)
	return append(enc, s...)
}

// Bytepad implements SP 800-185's bytepad(X, w): left_encode(w) followed by
// X, then zero bytes until the total length is a multiple of w.
func Bytepad(x []byte, w int) []byte {
	prefix := LeftEncode(uint64(w))
	out := append(prefix, x...)
	if rem := len(out) % w; rem != 0 {
		out = append(out, make([]byte, w-rem)...)
	}
	return out
}
