// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package padding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPKCS7RoundTripUnaligned(t *testing.T) {
	msg := []byte("hello padding")
	padInst, err := PKCS7Descriptor.CreateInstance(false)
	require.NoError(t, err)
	require.NoError(t, padInst.Feed(msg))
	padded, err := padInst.Result()
	require.NoError(t, err)
	require.Len(t, padded, 16)

	unpadInst, err := PKCS7Descriptor.CreateInstance(true)
	require.NoError(t, err)
	require.NoError(t, unpadInst.Feed(padded))
	out, err := unpadInst.Result()
	require.NoError(t, err)
	require.Equal(t, msg, out)
}

func TestPKCS7AddsFullBlockWhenAlreadyAligned(t *testing.T) {
	msg := make([]byte, 16)
	inst, err := PKCS7Descriptor.CreateInstance(false)
	require.NoError(t, err)
	require.NoError(t, inst.Feed(msg))
	padded, err := inst.Result()
	require.NoError(t, err)
	require.Len(t, padded, 32)
	for _, b := range padded[16:] {
		require.Equal(t, byte(16), b)
	}
}

func TestPKCS7UnpadRejectsBadPadByte(t *testing.T) {
	bad := make([]byte, 16)
	bad[15] = 0x11
	inst, err := PKCS7Descriptor.CreateInstance(true)
	require.NoError(t, err)
	require.NoError(t, inst.Feed(bad))
	_, err = inst.Result()
	require.Error(t, err)
}

func TestPKCS7UnpadRejectsNonBlockAligned(t *testing.T) {
	inst, err := PKCS7Descriptor.CreateInstance(true)
	require.NoError(t, err)
	require.NoError(t, inst.Feed(make([]byte, 10)))
	_, err = inst.Result()
	require.Error(t, err)
}

func TestISO7816RoundTripUnaligned(t *testing.T) {
	msg := []byte("iso padding test")
	padInst, err := ISO7816Descriptor.CreateInstance(false)
	require.NoError(t, err)
	require.NoError(t, padInst.Feed(msg))
	padded, err := padInst.Result()
	require.NoError(t, err)
	require.Zero(t, len(padded)%16)

	unpadInst, err := ISO7816Descriptor.CreateInstance(true)
	require.NoError(t, err)
	require.NoError(t, unpadInst.Feed(padded))
	out, err := unpadInst.Result()
	require.NoError(t, err)
	require.Equal(t, msg, out)
}

func TestISO7816UnpadRejectsMissingMarker(t *testing.T) {
	inst, err := ISO7816Descriptor.CreateInstance(true)
	require.NoError(t, err)
	require.NoError(t, inst.Feed(make([]byte, 16)))
	_, err = inst.Result()
	require.Error(t, err)
}

func TestFeedAfterResultFails(t *testing.T) {
	inst, err := PKCS7Descriptor.CreateInstance(false)
	require.NoError(t, err)
	require.NoError(t, inst.Feed([]byte("x")))
	_, err = inst.Result()
	require.NoError(t, err)
	require.Error(t, inst.Feed([]byte("y")))
}
