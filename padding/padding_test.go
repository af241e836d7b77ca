// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package padding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMerkleDamgard64EmptyMessage(t *testing.T) {
	out := MerkleDamgard64(0, 64, BigEndian)
	require.Len(t, out, 64)
	require.Equal(t, byte(0x80), out[0])
	for _, b := range out[1:56] {
		require.Zero(t, b)
	}
}

func TestMerkleDamgard64JustBelowBoundary(t *testing.T) {
	// 55-byte input: 55 + padding + 8-byte length must land on one block.
	out := MerkleDamgard64(55, 64, BigEndian)
	require.Equal(t, 64-55, len(out))
}

func TestMerkleDamgard64BoundaryCrossing(t *testing.T) {
	// 56-byte input pushes padding into a second block.
	out := MerkleDamgard64(56, 64, BigEndian)
	require.Equal(t, 2*64-56, len(out))
}

func TestMerkleDamgard64ExactlyOneBlock(t *testing.T) {
	out := MerkleDamgard64(64, 64, BigEndian)
	require.Equal(t, 64, len(out)) // one full padding block on top of the data block
}

func TestMerkleDamgard64Endianness(t *testing.T) {
	be := MerkleDamgard64(1, 64, BigEndian)
	le := MerkleDamgard64(1, 64, LittleEndian)
	// bit length = 8, so BE trailing byte is 8, LE leading-of-length byte is 8
	require.Equal(t, byte(8), be[len(be)-1])
	require.Equal(t, byte(8), le[len(le)-8])
}

func TestWhirlpool256EmptyMessage(t *testing.T) {
	out := Whirlpool256(0, 64)
	require.Len(t, out, 64)
	require.Equal(t, byte(0x80), out[0])
}

func TestAsconPad(t *testing.T) {
	out := AsconPad(8, 3)
	require.Len(t, out, 5)
	require.Equal(t, byte(0x80), out[0])
	for _, b := range out[1:] {
		require.Zero(t, b)
	}
}

func TestLeftRightEncodeSmall(t *testing.T) {
	require.Equal(t, []byte{1, 0}, LeftEncode(0))
	require.Equal(t, []byte{0, 1}, RightEncode(0))
	require.Equal(t, []byte{1, 200}, LeftEncode(200))
	require.Equal(t, []byte{200, 1}, RightEncode(200))
}

func TestLeftEncodeMultiByte(t *testing.T) {
	// 65536 = 0x010000, minimal big-endian is 3 bytes.
	require.Equal(t, []byte{3, 0x01, 0x00, 0x00}, LeftEncode(65536))
}

func TestEncodeString(t *testing.T) {
	out := EncodeString([]byte("abc"))
	// bit length of "abc" is 24 = 0x18, fits in one byte.
	require.Equal(t, []byte{1, 24, 'a', 'b', 'c'}, out)
}

func TestBytepadAlignsToW(t *testing.T) {
	out := Bytepad([]byte("abc"), 8)
	require.Len(t, out, 8)
	require.Equal(t, byte(1), out[0])
	require.Equal(t, byte(8), out[1])
}
