// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package rijndael

import "github.com/cryptoframe/algokit/algorithm"

// BlockCipher adapts the key schedule and round primitives above to
// Go's standard crypto/cipher.Block shape (BlockSize/Encrypt/Decrypt), so
// stdlib block-mode wrappers (cipher.NewCBCEncrypter, cipher.NewCTR, ...)
// can drive this hand-rolled engine exactly as they drive crypto/aes.
// The streaming Instance in instance.go is the framework-native surface;
// this type exists solely for composing with crypto/cipher.
type BlockCipher struct {
	roundKeys []uint32
	rounds    int
}

// NewBlockCipher expands key (16, 24 or 32 bytes) into a BlockCipher.
func NewBlockCipher(key []byte) (*BlockCipher, error) {
	if len(key)%4 != 0 {
		return nil, algorithm.ErrInvalidParameter
	}
	nk := len(key) / 4
	if nk != 4 && nk != 6 && nk != 8 {
		return nil, algorithm.ErrInvalidParameter
	}
	return &BlockCipher{roundKeys: expandKey(key, nk), rounds: nr(nk)}, nil
}

// BlockSize implements cipher.Block.
func (b *BlockCipher) BlockSize() int { return blockSize }

// Encrypt implements cipher.Block.
func (b *BlockCipher) Encrypt(dst, src []byte) {
	out := encryptBlock(b.roundKeys, b.rounds, src)
	copy(dst, out[:])
}

// Decrypt implements cipher.Block.
func (b *BlockCipher) Decrypt(dst, src []byte) {
	out := decryptBlock(b.roundKeys, b.rounds, src)
	copy(dst, out[:])
}
