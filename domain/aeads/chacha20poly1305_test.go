// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package aeads

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cryptoframe/algokit/algorithm"
)

func newChachaPoly(t *testing.T, isInverse bool, key []byte) algorithm.Instance {
	t.Helper()
	inst, err := ChaCha20Poly1305Descriptor.CreateInstance(isInverse)
	require.NoError(t, err)
	require.NoError(t, inst.(algorithm.Keyed).SetKey(key))
	return inst
}

func TestChaCha20Poly1305SealOpenRoundTrip(t *testing.T) {
	key := bytes.Repeat([]byte{0x11}, 32)
	nonce, err := RandomNonce()
	require.NoError(t, err)
	plaintext := []byte("chacha20-poly1305 aead round trip")

	enc := newChachaPoly(t, false, key)
	require.NoError(t, enc.(algorithm.IVSetter).SetIV(nonce))
	require.NoError(t, enc.(algorithm.AADSetter).SetAAD([]byte("aad")))
	require.NoError(t, enc.Feed(plaintext))
	sealed, err := enc.Result()
	require.NoError(t, err)

	dec := newChachaPoly(t, true, key)
	require.NoError(t, dec.(algorithm.IVSetter).SetIV(nonce))
	require.NoError(t, dec.(algorithm.AADSetter).SetAAD([]byte("aad")))
	require.NoError(t, dec.Feed(sealed))
	recovered, err := dec.Result()
	require.NoError(t, err)
	require.Equal(t, plaintext, recovered)
}

func TestChaCha20Poly1305OpenRejectsTamperedCiphertext(t *testing.T) {
	key := bytes.Repeat([]byte{0x22}, 32)
	nonce, err := RandomNonce()
	require.NoError(t, err)

	enc := newChachaPoly(t, false, key)
	require.NoError(t, enc.(algorithm.IVSetter).SetIV(nonce))
	require.NoError(t, enc.Feed([]byte("message")))
	sealed, err := enc.Result()
	require.NoError(t, err)
	sealed[0] ^= 0xFF

	dec := newChachaPoly(t, true, key)
	require.NoError(t, dec.(algorithm.IVSetter).SetIV(nonce))
	require.NoError(t, dec.Feed(sealed))
	_, err = dec.Result()
	require.ErrorIs(t, err, algorithm.ErrAuthenticationFailed)
}

func TestChaCha20Poly1305RejectsWrongSizedKey(t *testing.T) {
	inst, err := ChaCha20Poly1305Descriptor.CreateInstance(false)
	require.NoError(t, err)
	require.ErrorIs(t, inst.(algorithm.Keyed).SetKey(make([]byte, 10)), algorithm.ErrInvalidParameter)
}

func TestChaCha20Poly1305RejectsWrongSizedNonce(t *testing.T) {
	inst := newChachaPoly(t, false, bytes.Repeat([]byte{0x33}, 32))
	require.ErrorIs(t, inst.(algorithm.IVSetter).SetIV(make([]byte, 4)), algorithm.ErrInvalidParameter)
}

func TestRandomNonceProducesCorrectLength(t *testing.T) {
	nonce, err := RandomNonce()
	require.NoError(t, err)
	require.Len(t, nonce, 12)
}
