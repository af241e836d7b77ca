// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

// Package padding implements the length-encoded padding schemes spec
// section 4.F declares: Merkle-Damgard (64-bit and 256-bit length fields),
// Ascon-style bit padding, and SP-800-185's left_encode/right_encode.
package padding

import "github.com/cryptoframe/algokit/opcodes"

// Endianness selects the byte order of a padding scheme's length field.
type Endianness int

const (
	BigEndian Endianness = iota
	LittleEndian
)

// MerkleDamgard64 returns the 0x80-padding plus 64-bit bit-length field for
// a message of messageLen bytes already absorbed, for a Merkle-Damgard hash
// with the given block size B (e.g. 64 for SHA-2/RIPEMD). The padding pads
// to (B-8) mod B then appends the 8-byte bit-length in end.
//
// SHA-2 uses BigEndian; MD5/RIPEMD use LittleEndian.
func MerkleDamgard64(messageLen uint64, blockSize int, end Endianness) []byte {
	bitLen := messageLen * 8

	r := int(messageLen % uint64(blockSize))
	target := blockSize - 8
	padLen := 1
	for (r+padLen)%blockSize != target {
		padLen++
	}

	out := make([]byte, padLen+8)
	out[0] = 0x80

	var lenBytes [8]byte
	if end == BigEndian {
		lenBytes = opcodes.Unpack64BE(bitLen)
	} else {
		lenBytes = opcodes.Unpack64LE(bitLen)
	}
	copy(out[padLen:], lenBytes[:])
	return out
}

// Whirlpool256 returns the 0x80-padding plus 256-bit bit-length field used
// by Whirlpool-style hashes with block size B (64 bytes): pad to (B-32) mod
// B, then append a 32-byte big-endian length field whose low 8 bytes hold
// the bit count and whose upper 24 bytes are zero (sufficient for any
// message under 2^64 bits, i.e. every practical input).
func Whirlpool256(messageLen uint64, blockSize int) []byte {
	bitLen := messageLen * 8

	r := int(messageLen % uint64(blockSize))
	target := blockSize - 32
	padLen := 1
	for (r+padLen)%blockSize != target {
		padLen++
	}

	out := make([]byte, padLen+32)
	out[0] = 0x80

	lenBytes := opcodes.Unpack64BE(bitLen)
	copy(out[padLen+24:], lenBytes[:])
	return out
}

// AsconPad returns the single 0x80 padding byte Ascon-style sponge
// constructions XOR at the next unused position of the rate block; there
// is no length field. usedBytes is how many bytes of the rate block are
// already occupied by input in the current (final) block.
func AsconPad(rateSize, usedBytes int) []byte {
	out := make([]byte, rateSize-usedBytes)
	out[0] = 0x80
	return out
}
