// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package kdfs

import (
	"golang.org/x/crypto/argon2"

	"github.com/cryptoframe/algokit/algorithm"
	"github.com/cryptoframe/algokit/metadata"
)

const (
	argon2DefaultOutputSize = 32
	argon2Time              = 1
	argon2MemoryKiB         = 64 * 1024
	argon2Threads           = 4
)

// argon2Instance is a KDFInstance wrapping golang.org/x/crypto/argon2's
// real, standards-conformant Argon2id — this resolves spec's Open
// Question 1 as policy (b): implemented to the real RFC 9106 algorithm,
// not a "simplified educational" stand-in that would fail its own
// declared vectors.
type argon2Instance struct {
	password   []byte
	salt       []byte
	outputSize int
	digest     []byte
}

func newArgon2Instance(bool) (algorithm.Instance, error) {
	return &argon2Instance{}, nil
}

func (a *argon2Instance) SetKey(key []byte) error {
	a.password = key
	a.digest = nil
	return nil
}

func (a *argon2Instance) SetIV(iv []byte) error {
	a.salt = iv
	a.digest = nil
	return nil
}

func (a *argon2Instance) SetOutputSize(n int) error {
	if n <= 0 {
		return algorithm.ErrInvalidParameter
	}
	a.outputSize = n
	return nil
}

// Feed is a no-op: Argon2id is not a streaming construction, the full
// password must be known before the memory-hard function runs. Feed
// exists only to satisfy the Instance contract uniformly.
func (a *argon2Instance) Feed([]byte) error { return nil }

func (a *argon2Instance) Result() ([]byte, error) {
	if a.digest != nil {
		return a.digest, nil
	}
	if a.password == nil || a.salt == nil {
		return nil, algorithm.ErrInvalidParameter
	}
	n := a.outputSize
	if n == 0 {
		n = argon2DefaultOutputSize
	}
	a.digest = argon2.IDKey(a.password, a.salt, argon2Time, argon2MemoryKiB, argon2Threads, uint32(n))
	return a.digest, nil
}

// Argon2idDescriptor declares Argon2id (RFC 9106), the hybrid
// data-independent/data-dependent memory-hard KDF recommended for
// password hashing.
var Argon2idDescriptor = &algorithm.Descriptor{
	Name:         "Argon2id",
	InternalName: "argon2id",
	Category:     metadata.CategoryKDF,
	SubCategory:  "memory-hard",

	Inventor:    "Alex Biryukov, Daniel Dinu, Dmitry Khovratovich",
	Year:        2015,
	Country:     metadata.CountryMulti,
	Description: "Memory-hard password-hashing KDF, hybrid of Argon2i's data-independent first pass and Argon2d's data-dependent later passes.",

	SupportedOutputLen: []metadata.KeySize{{Min: 4, Max: 1 << 20, Step: 1}},

	SecurityStatus: metadata.SecuritySecure,
	Complexity:     metadata.ComplexityAdvanced,

	Documentation: []metadata.LinkItem{
		{Text: "RFC 9106", URI: "https://www.rfc-editor.org/rfc/rfc9106"},
	},

	Factory: newArgon2Instance,
}
