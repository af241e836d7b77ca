// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package aeads

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"

	"github.com/cryptoframe/algokit/algorithm"
	"github.com/cryptoframe/algokit/metadata"
)

const (
	aesCtrHmacKeySize = 64 // first 32 bytes: AES-256 key, last 32: HMAC-SHA256 key
	aesCtrHmacTagSize = sha256.Size
)

// aesCtrHmacInstance is an Encrypt-then-MAC AEAD: AES-CTR for
// confidentiality, HMAC-SHA256 over the ciphertext (and AAD) for
// integrity, composed exactly the way parsdao-pars/ecies/contract.go
// pairs AES-CTR encryption with an HMAC-SHA256 tag — generalized here
// from ECIES's ECDH-derived key split into an AEADInstance's plain
// SetKey.
type aesCtrHmacInstance struct {
	isInverse bool
	encKey    []byte
	macKey    []byte
	iv        []byte
	aad       []byte
	buf       []byte
	finalized bool
}

func newAesCtrHmacInstance(isInverse bool) (algorithm.Instance, error) {
	return &aesCtrHmacInstance{isInverse: isInverse}, nil
}

func (a *aesCtrHmacInstance) SetKey(key []byte) error {
	if len(key) != aesCtrHmacKeySize {
		return algorithm.ErrInvalidParameter
	}
	a.encKey = key[:32]
	a.macKey = key[32:]
	return nil
}

func (a *aesCtrHmacInstance) SetIV(iv []byte) error {
	if len(iv) != aes.BlockSize {
		return algorithm.ErrInvalidParameter
	}
	a.iv = iv
	return nil
}

func (a *aesCtrHmacInstance) SetAAD(aad []byte) error {
	a.aad = aad
	return nil
}

func (a *aesCtrHmacInstance) Feed(data []byte) error {
	if a.finalized {
		return algorithm.ErrFeedAfterFinalize
	}
	a.buf = append(a.buf, data...)
	return nil
}

func (a *aesCtrHmacInstance) tag(ciphertext []byte) []byte {
	mac := hmac.New(sha256.New, a.macKey)
	mac.Write(a.aad)
	mac.Write(ciphertext)
	return mac.Sum(nil)
}

func (a *aesCtrHmacInstance) Result() ([]byte, error) {
	if a.finalized {
		return nil, algorithm.ErrFeedAfterFinalize
	}
	a.finalized = true
	if a.encKey == nil || a.iv == nil {
		return nil, algorithm.ErrInvalidParameter
	}

	block, err := aes.NewCipher(a.encKey)
	if err != nil {
		return nil, err
	}
	stream := cipher.NewCTR(block, a.iv)

	if a.isInverse {
		if len(a.buf) < aesCtrHmacTagSize {
			return nil, algorithm.ErrAuthenticationFailed
		}
		ciphertext := a.buf[:len(a.buf)-aesCtrHmacTagSize]
		gotTag := a.buf[len(a.buf)-aesCtrHmacTagSize:]
		wantTag := a.tag(ciphertext)
		if subtle.ConstantTimeCompare(gotTag, wantTag) != 1 {
			return nil, algorithm.ErrAuthenticationFailed
		}
		plaintext := make([]byte, len(ciphertext))
		stream.XORKeyStream(plaintext, ciphertext)
		return plaintext, nil
	}

	ciphertext := make([]byte, len(a.buf))
	stream.XORKeyStream(ciphertext, a.buf)
	return append(ciphertext, a.tag(ciphertext)...), nil
}

// AESCTRHMACDescriptor declares the Encrypt-then-MAC AEAD composition.
// Key is 64 bytes: a 32-byte AES-256 key followed by a 32-byte HMAC key
// (two independent keys, never one key reused for both roles).
var AESCTRHMACDescriptor = &algorithm.Descriptor{
	Name:         "AES-CTR-HMAC",
	InternalName: "aes-ctr-hmac",
	Category:     metadata.CategoryAEAD,
	SubCategory:  "encrypt-then-mac",

	Description: "AES-256-CTR for confidentiality composed with HMAC-SHA256 " +
		"over AAD||ciphertext for integrity, the Encrypt-then-MAC pattern " +
		"parsdao-pars/ecies/contract.go uses for its symmetric envelope.",

	KeySizes:   []metadata.KeySize{{Min: aesCtrHmacKeySize, Max: aesCtrHmacKeySize, Step: 1}},
	BlockSizes: []metadata.KeySize{{Min: aes.BlockSize, Max: aes.BlockSize, Step: 1}},

	SecurityStatus: metadata.SecuritySecure,
	Complexity:     metadata.ComplexityIntermediate,

	Factory: newAesCtrHmacInstance,
}
