// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ciphers wires real third-party/stdlib cipher implementations
// into the framework's category contracts, the way the five hand-rolled
// primitive adapters wire hand-rolled ones: golang.org/x/crypto/chacha20
// for the stream-cipher category, and the hand-rolled Rijndael engine
// driven through stdlib crypto/cipher block-mode wrappers for the
// cipher-mode category.
package ciphers

import (
	"golang.org/x/crypto/chacha20"

	"github.com/cryptoframe/algokit/algorithm"
	"github.com/cryptoframe/algokit/metadata"
)

// chacha20Instance is a StreamCipherInstance over golang.org/x/crypto/chacha20.
// Encrypt and decrypt are the same XOR operation, so isInverse is unused
// here (unlike the block-cipher category, stream ciphers have no separate
// inverse direction).
type chacha20Instance struct {
	key       []byte
	nonce     []byte
	cipher    *chacha20.Cipher
	out       []byte
	finalized bool
}

func newChaCha20Instance(bool) (algorithm.Instance, error) {
	return &chacha20Instance{}, nil
}

func (c *chacha20Instance) SetKey(key []byte) error {
	if len(key) != chacha20.KeySize {
		return algorithm.ErrInvalidParameter
	}
	c.key = key
	return c.rebuild()
}

func (c *chacha20Instance) SetIV(iv []byte) error {
	if len(iv) != chacha20.NonceSize && len(iv) != chacha20.NonceSizeX {
		return algorithm.ErrInvalidParameter
	}
	c.nonce = iv
	return c.rebuild()
}

func (c *chacha20Instance) rebuild() error {
	if c.key == nil || c.nonce == nil {
		return nil
	}
	ciph, err := chacha20.NewUnauthenticatedCipher(c.key, c.nonce)
	if err != nil {
		return err
	}
	c.cipher = ciph
	return nil
}

func (c *chacha20Instance) Feed(data []byte) error {
	if c.finalized {
		return algorithm.ErrFeedAfterFinalize
	}
	if c.cipher == nil {
		return algorithm.ErrInvalidParameter
	}
	dst := make([]byte, len(data))
	c.cipher.XORKeyStream(dst, data)
	c.out = append(c.out, dst...)
	return nil
}

func (c *chacha20Instance) Result() ([]byte, error) {
	c.finalized = true
	return c.out, nil
}

// ChaCha20Descriptor declares the IETF ChaCha20 stream cipher (RFC 8439),
// keyed and driven exactly as SetKey/SetIV/Feed/Result prescribe for the
// stream-cipher category.
var ChaCha20Descriptor = &algorithm.Descriptor{
	Name:         "ChaCha20",
	InternalName: "chacha20",
	Category:     metadata.CategoryStreamCipher,
	SubCategory:  "arx-stream-cipher",

	Inventor:    "Daniel J. Bernstein",
	Year:        2008,
	Country:     metadata.Country("US"),
	Description: "ARX stream cipher over a 20-round Salsa-family permutation, keystream XORed with the message; RFC 8439 variant used by ChaCha20-Poly1305.",

	KeySizes: []metadata.KeySize{{Min: chacha20.KeySize, Max: chacha20.KeySize, Step: 1}},

	SecurityStatus: metadata.SecuritySecure,
	Complexity:     metadata.ComplexityIntermediate,

	Documentation: []metadata.LinkItem{
		{Text: "RFC 8439", URI: "https://www.rfc-editor.org/rfc/rfc8439"},
	},

	Factory: newChaCha20Instance,
}
