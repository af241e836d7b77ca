// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package ciphers

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cryptoframe/algokit/algorithm"
)

func newChaCha20(t *testing.T, key, nonce []byte) algorithm.Instance {
	t.Helper()
	inst, err := ChaCha20Descriptor.CreateInstance(false)
	require.NoError(t, err)
	require.NoError(t, inst.(algorithm.Keyed).SetKey(key))
	require.NoError(t, inst.(algorithm.IVSetter).SetIV(nonce))
	return inst
}

func TestChaCha20EncryptDecryptIsSelfInverse(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, 32)
	nonce := bytes.Repeat([]byte{0x24}, 12)
	plaintext := []byte("a striped stream cipher keystream test message")

	enc := newChaCha20(t, key, nonce)
	require.NoError(t, enc.Feed(plaintext))
	ciphertext, err := enc.Result()
	require.NoError(t, err)
	require.NotEqual(t, plaintext, ciphertext)

	dec := newChaCha20(t, key, nonce)
	require.NoError(t, dec.Feed(ciphertext))
	recovered, err := dec.Result()
	require.NoError(t, err)
	require.Equal(t, plaintext, recovered)
}

func TestChaCha20AcceptsExtendedNonce(t *testing.T) {
	key := bytes.Repeat([]byte{0x01}, 32)
	nonce := bytes.Repeat([]byte{0x02}, 24)
	inst := newChaCha20(t, key, nonce)
	require.NoError(t, inst.Feed([]byte("xchacha-ish nonce size")))
	_, err := inst.Result()
	require.NoError(t, err)
}

func TestChaCha20RejectsWrongSizedKey(t *testing.T) {
	inst, err := ChaCha20Descriptor.CreateInstance(false)
	require.NoError(t, err)
	require.ErrorIs(t, inst.(algorithm.Keyed).SetKey(make([]byte, 16)), algorithm.ErrInvalidParameter)
}

func TestChaCha20RejectsWrongSizedNonce(t *testing.T) {
	inst, err := ChaCha20Descriptor.CreateInstance(false)
	require.NoError(t, err)
	require.ErrorIs(t, inst.(algorithm.IVSetter).SetIV(make([]byte, 8)), algorithm.ErrInvalidParameter)
}

func TestChaCha20FeedBeforeKeyAndNonceFails(t *testing.T) {
	inst, err := ChaCha20Descriptor.CreateInstance(false)
	require.NoError(t, err)
	require.ErrorIs(t, inst.Feed([]byte("too soon")), algorithm.ErrInvalidParameter)
}

func TestChaCha20FeedAfterResultFails(t *testing.T) {
	inst := newChaCha20(t, bytes.Repeat([]byte{0x09}, 32), bytes.Repeat([]byte{0x07}, 12))
	require.NoError(t, inst.Feed([]byte("data")))
	_, err := inst.Result()
	require.NoError(t, err)
	require.ErrorIs(t, inst.Feed([]byte("more")), algorithm.ErrFeedAfterFinalize)
}
