// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package tuplehash

import (
	"golang.org/x/crypto/sha3"

	"github.com/cryptoframe/algokit/algorithm"
	"github.com/cryptoframe/algokit/padding"
)

const defaultOutputSize = 32 // 256 bits, the literal test vector's size.

// CustomizationSetter is satisfied by TupleHash instances: a structural
// extension of the category contracts in package algorithm for the one
// piece of per-call context (the "S" string) that's specific to SP
// 800-185 derived functions.
type CustomizationSetter interface {
	SetCustomization(s []byte) error
}

// instance is TupleHash128/256's streaming Instance. Each Feed call is one
// tuple element: it is encode_string-wrapped and absorbed immediately, so
// the tuple boundaries Feed calls impose are exactly the tuple boundaries
// the digest depends on (unlike a plain hash's chunk invariance, splitting
// one Feed call's bytes across two calls here changes the tuple and
// therefore the digest — this is by design, not a bug).
type instance struct {
	bits          int
	customization []byte
	sponge        sha3.ShakeHash
	outputSize    int
	digest        []byte
}

func newInstance(bits int) *instance {
	i := &instance{bits: bits}
	i.sponge = newCShake(bits, nil)
	return i
}

// SetCustomization implements CustomizationSetter. Must be called before
// any Feed; it rebuilds the underlying cSHAKE state with the new
// customization string.
func (i *instance) SetCustomization(s []byte) error {
	i.customization = s
	i.sponge = newCShake(i.bits, s)
	i.digest = nil
	return nil
}

// SetOutputSize implements algorithm.OutputSizer. n is in bytes.
func (i *instance) SetOutputSize(n int) error {
	if n <= 0 {
		return algorithm.ErrInvalidParameter
	}
	i.outputSize = n
	return nil
}

// Feed implements algorithm.Instance: absorbs one tuple element. A Feed
// after Result implicitly resets to a fresh sponge with the same
// customization, per the hash-category Feed-after-finalize policy.
func (i *instance) Feed(data []byte) error {
	if i.digest != nil {
		i.sponge = newCShake(i.bits, i.customization)
		i.digest = nil
	}
	_, err := i.sponge.Write(padding.EncodeString(data))
	return err
}

// Result implements algorithm.Instance: appends the SP-800-185 right_encode
// of the output length and squeezes it, caching the result so repeated
// calls are idempotent (the underlying sponge's Read would otherwise keep
// squeezing fresh bytes on every call).
func (i *instance) Result() ([]byte, error) {
	if i.digest != nil {
		return i.digest, nil
	}
	n := i.outputSize
	if n == 0 {
		n = defaultOutputSize
	}

	if _, err := i.sponge.Write(padding.RightEncode(uint64(n) * 8)); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	if _, err := i.sponge.Read(out); err != nil {
		return nil, err
	}
	i.digest = out
	return out, nil
}
