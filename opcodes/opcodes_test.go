// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package opcodes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEndianRoundTrip(t *testing.T) {
	for _, x := range []uint32{0, 1, 0xDEADBEEF, 0xFFFFFFFF, 0x01020304} {
		be := Unpack32BE(x)
		require.Equal(t, x, Pack32BE(be[0], be[1], be[2], be[3]))
		le := Unpack32LE(x)
		require.Equal(t, x, Pack32LE(le[0], le[1], le[2], le[3]))
	}
	for _, x := range []uint64{0, 1, 0xDEADBEEFCAFEBABE, 0xFFFFFFFFFFFFFFFF} {
		require.Equal(t, x, Pack64BE(Unpack64BE(x)))
		require.Equal(t, x, Pack64LE(Unpack64LE(x)))
	}
}

func TestPack32Endianness(t *testing.T) {
	require.Equal(t, uint32(0x01020304), Pack32BE(1, 2, 3, 4))
	require.Equal(t, uint32(0x04030201), Pack32LE(1, 2, 3, 4))
}

func TestRotateInverse(t *testing.T) {
	for n := uint(0); n < 32; n++ {
		x := uint32(0x9E3779B9)
		require.Equal(t, x, RotL32(RotR32(x, n), n))
		require.Equal(t, x, RotR32(RotL32(x, n), n))
	}
	for n := uint(0); n < 64; n++ {
		x := uint64(0x9E3779B97F4A7C15)
		require.Equal(t, x, RotL64(RotR64(x, n), n))
	}
}

func TestRotateZeroIsIdentity(t *testing.T) {
	require.Equal(t, uint32(12345), RotL32(12345, 0))
	require.Equal(t, uint32(12345), RotR32(12345, 0))
	require.Equal(t, uint64(12345), RotL64(12345, 0))
	require.Equal(t, uint64(12345), RotR64(12345, 0))
}

func TestGF256MulCommutesAndIdentity(t *testing.T) {
	for a := 0; a < 256; a++ {
		for _, b := range []int{0, 1, 2, 3, 0x80, 0xFF} {
			x, y := GF256Mul(byte(a), byte(b)), GF256Mul(byte(b), byte(a))
			require.Equal(t, x, y, "GF256Mul must commute for a=%d b=%d", a, b)
		}
		require.Equal(t, byte(a), GF256Mul(byte(a), 1))
	}
}

func TestXTimeIsMulByTwo(t *testing.T) {
	for a := 0; a < 256; a++ {
		require.Equal(t, XTime(byte(a)), GF256Mul(byte(a), 2))
	}
}

func TestSecureCompare(t *testing.T) {
	require.True(t, SecureCompare([]byte("abc"), []byte("abc")))
	require.False(t, SecureCompare([]byte("abc"), []byte("abd")))
	require.False(t, SecureCompare([]byte("abc"), []byte("ab")))
	require.True(t, SecureCompare(nil, nil))
}

func TestClearArray(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	ClearArray(buf)
	for _, b := range buf {
		require.Zero(t, b)
	}
}

func TestHexRoundTrip(t *testing.T) {
	raw := []byte{0x00, 0x0F, 0xFF, 0xAB}
	hex := BytesToHex(raw)
	require.Equal(t, "000fffab", hex)
	back, err := Hex8ToBytes(hex)
	require.NoError(t, err)
	require.Equal(t, raw, back)
}

func TestHex8ToBytesInvalid(t *testing.T) {
	_, err := Hex8ToBytes("abc")
	require.ErrorIs(t, err, ErrInvalidEncoding)
	_, err = Hex8ToBytes("zz")
	require.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestAnsiToBytes(t *testing.T) {
	b, err := AnsiToBytes("abc")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), b)

	_, err = AnsiToBytes("héllo")
	require.ErrorIs(t, err, ErrInvalidEncoding)
}
