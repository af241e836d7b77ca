// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

// Package macs wires MAC constructions into the MACInstance contract:
// stdlib crypto/hmac over a hash.Hash constructor, registered as
// HMAC-SHA256 and HMAC-SHA512 (boundary-only use of a hash-category algorithm from a
// different category's adapter — see DESIGN.md), and SipHash-2-4
// (github.com/dchest/siphash, a direct dependency of the retrieved
// SnellerInc-sneller repo).
package macs

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"github.com/cryptoframe/algokit/algorithm"
	"github.com/cryptoframe/algokit/metadata"
)

// hmacInstance is a MACInstance. newHash selects the underlying hash
// function; HMAC itself is generic over any hash.Hash constructor per
// RFC 2104, so one instance type serves both registered variants
// (stdlib SHA-256 and SHA-512); the framework's own registered hashes
// have no HMAC variant.
type hmacInstance struct {
	newHash func() hash.Hash
	mac     hash.Hash
	digest  []byte
}

func newHMACInstance(newHash func() hash.Hash) func(bool) (algorithm.Instance, error) {
	return func(bool) (algorithm.Instance, error) {
		return &hmacInstance{newHash: newHash}, nil
	}
}

func (h *hmacInstance) SetKey(key []byte) error {
	h.mac = hmac.New(h.newHash, key)
	h.digest = nil
	return nil
}

func (h *hmacInstance) Feed(data []byte) error {
	if h.mac == nil {
		return algorithm.ErrInvalidParameter
	}
	if h.digest != nil {
		h.mac.Reset()
		h.digest = nil
	}
	_, err := h.mac.Write(data)
	return err
}

func (h *hmacInstance) Result() ([]byte, error) {
	if h.digest != nil {
		return h.digest, nil
	}
	if h.mac == nil {
		return nil, algorithm.ErrInvalidParameter
	}
	h.digest = h.mac.Sum(nil)
	return h.digest, nil
}

// HMACSHA256Descriptor declares HMAC-SHA256 (RFC 2104 over SHA-256).
var HMACSHA256Descriptor = &algorithm.Descriptor{
	Name:         "HMAC-SHA256",
	InternalName: "hmac-sha256",
	Category:     metadata.CategoryMAC,
	SubCategory:  "hash-based-mac",

	Description: "RFC 2104 HMAC construction instantiated over SHA-256: ipad/opad-wrapped double hashing of key and message.",

	SecurityStatus: metadata.SecuritySecure,
	Complexity:     metadata.ComplexityBeginner,

	Documentation: []metadata.LinkItem{
		{Text: "RFC 2104", URI: "https://www.rfc-editor.org/rfc/rfc2104"},
	},

	Factory: newHMACInstance(sha256.New),
}

// HMACSHA512Descriptor declares HMAC-SHA512.
var HMACSHA512Descriptor = &algorithm.Descriptor{
	Name:         "HMAC-SHA512",
	InternalName: "hmac-sha512",
	Category:     metadata.CategoryMAC,
	SubCategory:  "hash-based-mac",

	Description: "RFC 2104 HMAC construction instantiated over SHA-512.",

	SecurityStatus: metadata.SecuritySecure,
	Complexity:     metadata.ComplexityBeginner,

	Documentation: []metadata.LinkItem{
		{Text: "RFC 2104", URI: "https://www.rfc-editor.org/rfc/rfc2104"},
	},

	Factory: newHMACInstance(sha512.New),
}
