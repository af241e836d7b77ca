// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package whirlpool

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWhirlpoolAbc(t *testing.T) {
	inst, err := Descriptor.CreateInstance(false)
	require.NoError(t, err)
	require.NoError(t, inst.Feed([]byte("abc")))
	out, err := inst.Result()
	require.NoError(t, err)
	require.Len(t, out, 64)
	require.Equal(t,
		"4e2448a4c6f486bb16b6562c73b4020bf3043e3a731bce721ae1b303d97e6d4c7181eebdb6c57e277d0e34957114cbd6c797fc9d95d8b582d225292076d4eef5",
		hex.EncodeToString(out))
}

func TestWhirlpoolFeedSplitMatchesSingleShot(t *testing.T) {
	whole, err := Descriptor.CreateInstance(false)
	require.NoError(t, err)
	require.NoError(t, whole.Feed([]byte("abc")))
	wholeOut, err := whole.Result()
	require.NoError(t, err)

	split, err := Descriptor.CreateInstance(false)
	require.NoError(t, err)
	require.NoError(t, split.Feed([]byte("a")))
	require.NoError(t, split.Feed([]byte("b")))
	require.NoError(t, split.Feed([]byte("c")))
	splitOut, err := split.Result()
	require.NoError(t, err)

	require.Equal(t, wholeOut, splitOut)
}

func TestWhirlpoolResultIsIdempotent(t *testing.T) {
	inst, err := Descriptor.CreateInstance(false)
	require.NoError(t, err)
	require.NoError(t, inst.Feed([]byte("abc")))
	first, err := inst.Result()
	require.NoError(t, err)
	second, err := inst.Result()
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestWhirlpoolEmptyMessage(t *testing.T) {
	inst, err := Descriptor.CreateInstance(false)
	require.NoError(t, err)
	require.NoError(t, inst.Feed(nil))
	out, err := inst.Result()
	require.NoError(t, err)
	require.Len(t, out, 64)
}
