// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package rijndael

import "github.com/cryptoframe/algokit/algorithm"

const blockSize = 16

// instance is Rijndael's BlockCipherInstance. Feed only accepts
// whole-block input; Feed after Result is an error (ciphers do not
// reset), per the category's documented policy.
type instance struct {
	isInverse bool
	roundKeys []uint32
	rounds    int
	out       []byte
	finalized bool
}

func newInstance(isInverse bool) *instance {
	return &instance{isInverse: isInverse}
}

// SetKey implements algorithm.Keyed. Key length in bytes must be 16, 24 or
// 32 (Nk = 4, 6 or 8 words).
func (i *instance) SetKey(key []byte) error {
	if len(key)%4 != 0 {
		return algorithm.ErrInvalidParameter
	}
	nk := len(key) / 4
	if nk != 4 && nk != 6 && nk != 8 {
		return algorithm.ErrInvalidParameter
	}
	i.roundKeys = expandKey(key, nk)
	i.rounds = nr(nk)
	return nil
}

// Feed implements algorithm.Instance.
func (i *instance) Feed(p []byte) error {
	if i.finalized {
		return algorithm.ErrFeedAfterFinalize
	}
	if i.roundKeys == nil {
		return algorithm.ErrInvalidParameter
	}
	if len(p)%blockSize != 0 {
		return algorithm.ErrInvalidParameter
	}
	for off := 0; off < len(p); off += blockSize {
		var block [16]byte
		if i.isInverse {
			block = decryptBlock(i.roundKeys, i.rounds, p[off:off+blockSize])
		} else {
			block = encryptBlock(i.roundKeys, i.rounds, p[off:off+blockSize])
		}
		i.out = append(i.out, block[:]...)
	}
	return nil
}

// Result implements algorithm.Instance. Two successive calls return
// identical bytes; it does not consume or clear the accumulated output.
func (i *instance) Result() ([]byte, error) {
	i.finalized = true
	return i.out, nil
}
