// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

// Package opcodes is the shared, performance- and correctness-critical
// utility layer every algorithm in this module imports: endian packing,
// fixed-width rotations, GF(2^8) arithmetic, constant-time comparison,
// secure zeroing and byte/hex conversion.
package opcodes

// Pack16BE packs two bytes into a big-endian uint16.
func Pack16BE(b0, b1 byte) uint16 {
	return uint16(b0)<<8 | uint16(b1)
}

// Pack16LE packs two bytes into a little-endian uint16.
func Pack16LE(b0, b1 byte) uint16 {
	return uint16(b0) | uint16(b1)<<8
}

// Unpack16BE yields the big-endian byte array of w.
func Unpack16BE(w uint16) [2]byte {
	return [2]byte{byte(w >> 8), byte(w)}
}

// Unpack16LE yields the little-endian byte array of w.
func Unpack16LE(w uint16) [2]byte {
	return [2]byte{byte(w), byte(w >> 8)}
}

// Pack32BE packs four bytes into a big-endian uint32.
func Pack32BE(b0, b1, b2, b3 byte) uint32 {
	return uint32(b0)<<24 | uint32(b1)<<16 | uint32(b2)<<8 | uint32(b3)
}

// Pack32LE packs four bytes into a little-endian uint32.
func Pack32LE(b0, b1, b2, b3 byte) uint32 {
	return uint32(b0) | uint32(b1)<<8 | uint32(b2)<<16 | uint32(b3)<<24
}

// Unpack32BE yields the big-endian byte array of w.
func Unpack32BE(w uint32) [4]byte {
	return [4]byte{byte(w >> 24), byte(w >> 16), byte(w >> 8), byte(w)}
}

// Unpack32LE yields the little-endian byte array of w.
func Unpack32LE(w uint32) [4]byte {
	return [4]byte{byte(w), byte(w >> 8), byte(w >> 16), byte(w >> 24)}
}

// Pack64BE packs eight bytes into a big-endian uint64.
func Pack64BE(b [8]byte) uint64 {
	return uint64(b[0])<<56 | uint64(b[1])<<48 | uint64(b[2])<<40 | uint64(b[3])<<32 |
		uint64(b[4])<<24 | uint64(b[5])<<16 | uint64(b[6])<<8 | uint64(b[7])
}

// Pack64LE packs eight bytes into a little-endian uint64.
func Pack64LE(b [8]byte) uint64 {
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

// Unpack64BE yields the big-endian byte array of w.
func Unpack64BE(w uint64) [8]byte {
	return [8]byte{
		byte(w >> 56), byte(w >> 48), byte(w >> 40), byte(w >> 32),
		byte(w >> 24), byte(w >> 16), byte(w >> 8), byte(w),
	}
}

// Unpack64LE yields the little-endian byte array of w.
func Unpack64LE(w uint64) [8]byte {
	return [8]byte{
		byte(w), byte(w >> 8), byte(w >> 16), byte(w >> 24),
		byte(w >> 32), byte(w >> 40), byte(w >> 48), byte(w >> 56),
	}
}

// LoadU32SliceBE reads a big-endian uint32 from the first 4 bytes of b.
// Panics if len(b) < 4, same contract as encoding/binary.
func LoadU32SliceBE(b []byte) uint32 {
	return Pack32BE(b[0], b[1], b[2], b[3])
}

// LoadU32SliceLE reads a little-endian uint32 from the first 4 bytes of b.
func LoadU32SliceLE(b []byte) uint32 {
	return Pack32LE(b[0], b[1], b[2], b[3])
}

// LoadU64SliceBE reads a big-endian uint64 from the first 8 bytes of b.
func LoadU64SliceBE(b []byte) uint64 {
	var a [8]byte
	copy(a[:], b[:8])
	return Pack64BE(a)
}

// LoadU64SliceLE reads a little-endian uint64 from the first 8 bytes of b.
func LoadU64SliceLE(b []byte) uint64 {
	var a [8]byte
	copy(a[:], b[:8])
	return Pack64LE(a)
}

// StoreU32SliceBE writes w into the first 4 bytes of b, big-endian.
func StoreU32SliceBE(b []byte, w uint32) {
	a := Unpack32BE(w)
	copy(b[:4], a[:])
}

// StoreU32SliceLE writes w into the first 4 bytes of b, little-endian.
func StoreU32SliceLE(b []byte, w uint32) {
	a := Unpack32LE(w)
	copy(b[:4], a[:])
}

// StoreU64SliceBE writes w into the first 8 bytes of b, big-endian.
func StoreU64SliceBE(b []byte, w uint64) {
	a := Unpack64BE(w)
	copy(b[:8], a[:])
}

// StoreU64SliceLE writes w into the first 8 bytes of b, little-endian.
func StoreU64SliceLE(b []byte, w uint64) {
	a := Unpack64LE(w)
	copy(b[:8], a[:])
}
