// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

// Package kdfs wires real KDF implementations into the KDFInstance
// contract: HKDF (golang.org/x/crypto/hkdf, an indirect teacher
// dependency), and the two adapters spec.md's Open Question 1 asks
// resolved to their real standards rather than simplified stand-ins —
// Argon2id and bcrypt, both golang.org/x/crypto.
package kdfs

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/cryptoframe/algokit/algorithm"
	"github.com/cryptoframe/algokit/metadata"
)

const hkdfDefaultOutputSize = 32

// hkdfInstance is a KDFInstance. SetKey provides the input keying
// material (secret), SetIV provides the salt, and each Feed call appends
// to the context/application-info string (HKDF's "info" parameter) —
// there being no dedicated info setter in the category contracts, Feed
// is the natural place for it since HKDF's info has no length limit and
// is naturally streamed the same way a hash absorbs bytes.
type hkdfInstance struct {
	secret     []byte
	salt       []byte
	info       []byte
	outputSize int
	digest     []byte
}

func newHKDFInstance(bool) (algorithm.Instance, error) {
	return &hkdfInstance{}, nil
}

func (h *hkdfInstance) SetKey(key []byte) error {
	h.secret = key
	h.digest = nil
	return nil
}

func (h *hkdfInstance) SetIV(iv []byte) error {
	h.salt = iv
	h.digest = nil
	return nil
}

func (h *hkdfInstance) SetOutputSize(n int) error {
	if n <= 0 {
		return algorithm.ErrInvalidParameter
	}
	h.outputSize = n
	return nil
}

func (h *hkdfInstance) Feed(data []byte) error {
	if h.digest != nil {
		h.info = nil
		h.digest = nil
	}
	h.info = append(h.info, data...)
	return nil
}

func (h *hkdfInstance) Result() ([]byte, error) {
	if h.digest != nil {
		return h.digest, nil
	}
	if h.secret == nil {
		return nil, algorithm.ErrInvalidParameter
	}
	n := h.outputSize
	if n == 0 {
		n = hkdfDefaultOutputSize
	}
	reader := hkdf.New(sha256.New, h.secret, h.salt, h.info)
	out := make([]byte, n)
	if _, err := io.ReadFull(reader, out); err != nil {
		return nil, err
	}
	h.digest = out
	return out, nil
}

// HKDFDescriptor declares HKDF-SHA256 (RFC 5869).
var HKDFDescriptor = &algorithm.Descriptor{
	Name:         "HKDF-SHA256",
	InternalName: "hkdf-sha256",
	Category:     metadata.CategoryKDF,
	SubCategory:  "extract-and-expand",

	Description: "RFC 5869 extract-and-expand KDF over HMAC-SHA256: extract collapses secret+salt into a pseudorandom key, expand stretches it (with an info context string) to the requested output length.",

	SupportedOutputLen: []metadata.KeySize{{Min: 1, Max: 255 * sha256.Size, Step: 1}},

	SecurityStatus: metadata.SecuritySecure,
	Complexity:     metadata.ComplexityIntermediate,

	Documentation: []metadata.LinkItem{
		{Text: "RFC 5869", URI: "https://www.rfc-editor.org/rfc/rfc5869"},
	},

	Factory: newHKDFInstance,
}
