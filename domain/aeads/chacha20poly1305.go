// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

// Package aeads wires real AEAD constructions into the AEADInstance
// contract: golang.org/x/crypto/chacha20poly1305 (companion to the
// ciphers package's ChaCha20 stream cipher) and a hand-composed
// Encrypt-then-MAC construction grounded directly on
// parsdao-pars/ecies/contract.go's AES-CTR+HMAC pairing.
package aeads

import (
	"crypto/cipher"
	"crypto/rand"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/cryptoframe/algokit/algorithm"
	"github.com/cryptoframe/algokit/metadata"
)

// chachaPolyInstance is an AEADInstance. On encrypt, Result returns
// ciphertext||tag (chacha20poly1305.Seal's native output shape already
// matches this). On decrypt, Result returns plaintext or
// ErrAuthenticationFailed — Open's own constant-time tag check, never a
// partially verified plaintext.
type chachaPolyInstance struct {
	isInverse bool
	aead      cipher.AEAD
	nonce     []byte
	aad       []byte
	buf       []byte
	finalized bool
}

func newChachaPolyInstance(isInverse bool) (algorithm.Instance, error) {
	return &chachaPolyInstance{isInverse: isInverse}, nil
}

func (c *chachaPolyInstance) SetKey(key []byte) error {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return algorithm.ErrInvalidParameter
	}
	c.aead = aead
	return nil
}

func (c *chachaPolyInstance) SetIV(iv []byte) error {
	if c.aead == nil || len(iv) != c.aead.NonceSize() {
		return algorithm.ErrInvalidParameter
	}
	c.nonce = iv
	return nil
}

func (c *chachaPolyInstance) SetAAD(aad []byte) error {
	c.aad = aad
	return nil
}

func (c *chachaPolyInstance) Feed(data []byte) error {
	if c.finalized {
		return algorithm.ErrFeedAfterFinalize
	}
	c.buf = append(c.buf, data...)
	return nil
}

func (c *chachaPolyInstance) Result() ([]byte, error) {
	if c.finalized {
		return nil, algorithm.ErrFeedAfterFinalize
	}
	c.finalized = true
	if c.aead == nil || c.nonce == nil {
		return nil, algorithm.ErrInvalidParameter
	}
	if c.isInverse {
		pt, err := c.aead.Open(nil, c.nonce, c.buf, c.aad)
		if err != nil {
			return nil, algorithm.ErrAuthenticationFailed
		}
		return pt, nil
	}
	return c.aead.Seal(nil, c.nonce, c.buf, c.aad), nil
}

// RandomNonce fills a fresh nonce for a ChaCha20-Poly1305 instance; callers
// that don't manage their own nonces can use this instead of crypto/rand
// boilerplate.
func RandomNonce() ([]byte, error) {
	n := make([]byte, chacha20poly1305.NonceSize)
	_, err := rand.Read(n)
	return n, err
}

// ChaCha20Poly1305Descriptor declares RFC 8439's AEAD construction.
var ChaCha20Poly1305Descriptor = &algorithm.Descriptor{
	Name:         "ChaCha20-Poly1305",
	InternalName: "chacha20poly1305",
	Category:     metadata.CategoryAEAD,
	SubCategory:  "stream-cipher-aead",

	Inventor:    "Daniel J. Bernstein (cipher), Yusuke Taniguchi/Adam Langley (IETF AEAD composition)",
	Year:        2014,
	Country:     metadata.CountryMulti,
	Description: "ChaCha20 stream cipher composed with Poly1305 one-time MAC via the IETF AEAD construction (RFC 8439).",

	KeySizes: []metadata.KeySize{{Min: chacha20poly1305.KeySize, Max: chacha20poly1305.KeySize, Step: 1}},

	SecurityStatus: metadata.SecuritySecure,
	Complexity:     metadata.ComplexityAdvanced,

	Documentation: []metadata.LinkItem{
		{Text: "RFC 8439", URI: "https://www.rfc-editor.org/rfc/rfc8439"},
	},

	Factory: newChachaPolyInstance,
}
