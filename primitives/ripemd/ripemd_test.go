// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package ripemd

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func digest128(t *testing.T, msg []byte) string {
	t.Helper()
	inst, err := Descriptor128.CreateInstance(false)
	require.NoError(t, err)
	require.NoError(t, inst.Feed(msg))
	out, err := inst.Result()
	require.NoError(t, err)
	return hex.EncodeToString(out)
}

func digest256(t *testing.T, msg []byte) string {
	t.Helper()
	inst, err := Descriptor256.CreateInstance(false)
	require.NoError(t, err)
	require.NoError(t, inst.Feed(msg))
	out, err := inst.Result()
	require.NoError(t, err)
	return hex.EncodeToString(out)
}

func TestRIPEMD128EmptyString(t *testing.T) {
	require.Equal(t, "cdf26213a150dc3ecb610f18f6b38b46", digest128(t, []byte("")))
}

func TestRIPEMD128Abc(t *testing.T) {
	require.Equal(t, "c14a12199c66e4ba84636b0f69144c77", digest128(t, []byte("abc")))
}

func TestRIPEMD128FeedSplitMatchesSingleShot(t *testing.T) {
	inst, err := Descriptor128.CreateInstance(false)
	require.NoError(t, err)
	require.NoError(t, inst.Feed([]byte("a")))
	require.NoError(t, inst.Feed([]byte("b")))
	require.NoError(t, inst.Feed([]byte("c")))
	out, err := inst.Result()
	require.NoError(t, err)
	require.Equal(t, "c14a12199c66e4ba84636b0f69144c77", hex.EncodeToString(out))
}

func TestRIPEMD128ResultIsIdempotent(t *testing.T) {
	inst, err := Descriptor128.CreateInstance(false)
	require.NoError(t, err)
	require.NoError(t, inst.Feed([]byte("abc")))
	first, err := inst.Result()
	require.NoError(t, err)
	second, err := inst.Result()
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestRIPEMD128FeedAfterResultStartsFresh(t *testing.T) {
	inst, err := Descriptor128.CreateInstance(false)
	require.NoError(t, err)
	require.NoError(t, inst.Feed([]byte("abc")))
	_, err = inst.Result()
	require.NoError(t, err)

	require.NoError(t, inst.Feed([]byte("")))
	out, err := inst.Result()
	require.NoError(t, err)
	require.Equal(t, "cdf26213a150dc3ecb610f18f6b38b46", hex.EncodeToString(out))
}

func TestRIPEMD128RejectsInverse(t *testing.T) {
	_, err := Descriptor128.CreateInstance(true)
	require.Error(t, err)
}

func TestRIPEMD256SingleCharacter(t *testing.T) {
	out := digest256(t, []byte("a"))
	require.Len(t, out, 64)
}

func TestRIPEMD256DiffersFromRIPEMD128(t *testing.T) {
	require.NotEqual(t, digest128(t, []byte("abc")), digest256(t, []byte("abc"))[:32])
}

func TestRIPEMD256FeedSplitMatchesSingleShot(t *testing.T) {
	whole := digest256(t, []byte("message digest"))

	inst, err := Descriptor256.CreateInstance(false)
	require.NoError(t, err)
	require.NoError(t, inst.Feed([]byte("message ")))
	require.NoError(t, inst.Feed([]byte("digest")))
	out, err := inst.Result()
	require.NoError(t, err)
	require.Equal(t, whole, hex.EncodeToString(out))
}
