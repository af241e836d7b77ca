// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package ecc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cryptoframe/algokit/algorithm"
)

func encode(t *testing.T, data []byte) []byte {
	t.Helper()
	inst, err := Descriptor.CreateInstance(false)
	require.NoError(t, err)
	require.NoError(t, inst.Feed(data))
	out, err := inst.Result()
	require.NoError(t, err)
	return out
}

func decode(t *testing.T, code []byte) ([]byte, error) {
	t.Helper()
	inst, err := Descriptor.CreateInstance(true)
	require.NoError(t, err)
	require.NoError(t, inst.Feed(code))
	return inst.Result()
}

func TestHammingEncodeDecodeRoundTrip(t *testing.T) {
	data := []byte{0x4B, 0xF0, 0x00, 0xFF}
	code := encode(t, data)
	require.Len(t, code, len(data)*2)
	recovered, err := decode(t, code)
	require.NoError(t, err)
	require.Equal(t, data, recovered)
}

func TestHammingCorrectsSingleBitError(t *testing.T) {
	data := []byte{0x4B}
	code := encode(t, data)
	code[0] ^= 0x10 // flip one bit in the first codeword
	recovered, err := decode(t, code)
	require.NoError(t, err)
	require.Equal(t, data, recovered)
}

func TestHammingDecodeRejectsOddLengthInput(t *testing.T) {
	_, err := decode(t, []byte{0x00})
	require.ErrorIs(t, err, algorithm.ErrInvalidEncoding)
}

func TestHammingEncodeEmptyInputProducesEmptyOutput(t *testing.T) {
	code := encode(t, []byte{})
	require.Empty(t, code)
}

func TestHammingFeedAfterResultFails(t *testing.T) {
	inst, err := Descriptor.CreateInstance(false)
	require.NoError(t, err)
	require.NoError(t, inst.Feed([]byte{0x01}))
	_, err = inst.Result()
	require.NoError(t, err)
	require.ErrorIs(t, inst.Feed([]byte{0x02}), algorithm.ErrFeedAfterFinalize)
}
