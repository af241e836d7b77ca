// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

// Package random wires the random category: a CSPRNG passthrough over
// stdlib crypto/rand (the only sound choice — no third-party CSPRNG
// appears in the retrieved pack and crypto/rand is itself the correct,
// OS-backed source) and a hand-rolled xorshift128+ generator registered
// and tagged SecurityDeprecated, standing in for the
// "known-weak PRNG kept only to demonstrate why it's unsuitable" entry
// every taxonomy of this shape carries.
package random

import (
	"crypto/rand"

	"github.com/cryptoframe/algokit/algorithm"
	"github.com/cryptoframe/algokit/metadata"
)

// csprngInstance ignores Feed entirely (a CSPRNG has no input to absorb)
// and returns outputSize fresh bytes from crypto/rand on Result.
type csprngInstance struct {
	outputSize int
	digest     []byte
}

func newCSPRNGInstance(bool) (algorithm.Instance, error) {
	return &csprngInstance{}, nil
}

func (c *csprngInstance) SetOutputSize(n int) error {
	if n <= 0 {
		return algorithm.ErrInvalidParameter
	}
	c.outputSize = n
	return nil
}

// Feed is a no-op: a CSPRNG passthrough has no message to absorb.
func (c *csprngInstance) Feed([]byte) error { return nil }

func (c *csprngInstance) Result() ([]byte, error) {
	n := c.outputSize
	if n == 0 {
		n = 32
	}
	out := make([]byte, n)
	if _, err := rand.Read(out); err != nil {
		return nil, err
	}
	c.digest = out
	return out, nil
}

// CSPRNGDescriptor declares the crypto/rand passthrough.
var CSPRNGDescriptor = &algorithm.Descriptor{
	Name:         "CSPRNG",
	InternalName: "csprng",
	Category:     metadata.CategoryRandom,
	SubCategory:  "os-backed-csprng",

	Description: "Passthrough to the operating system's cryptographically secure RNG via stdlib crypto/rand (getrandom/arc4random/CryptGenRandom depending on platform).",

	SupportedOutputLen: []metadata.KeySize{{Min: 1, Max: 1 << 20, Step: 1}},

	SecurityStatus: metadata.SecuritySecure,
	Complexity:     metadata.ComplexityBeginner,

	Factory: newCSPRNGInstance,
}

// xorshiftInstance is a hand-rolled xorshift128+ PRNG. It is seeded via
// SetKey (16 bytes: two nonzero uint64 state words) rather than fed from
// an entropy source, and is registered SecurityDeprecated: it is fast and
// statistically decent but trivially distinguishable and predictable
// from a handful of outputs, unsuitable for anything keyed or
// adversarial. Kept as the taxonomy's "known-weak, here's why" entry.
type xorshiftInstance struct {
	s0, s1     uint64
	seeded     bool
	outputSize int
}

func newXorshiftInstance(bool) (algorithm.Instance, error) {
	return &xorshiftInstance{}, nil
}

func (x *xorshiftInstance) SetKey(key []byte) error {
	if len(key) != 16 {
		return algorithm.ErrInvalidParameter
	}
	var s0, s1 uint64
	for i := 0; i < 8; i++ {
		s0 |= uint64(key[i]) << (8 * i)
		s1 |= uint64(key[8+i]) << (8 * i)
	}
	if s0 == 0 && s1 == 0 {
		return algorithm.ErrInvalidParameter
	}
	x.s0, x.s1 = s0, s1
	x.seeded = true
	return nil
}

func (x *xorshiftInstance) SetOutputSize(n int) error {
	if n <= 0 {
		return algorithm.ErrInvalidParameter
	}
	x.outputSize = n
	return nil
}

// Feed is a no-op: xorshift128+ is not re-seeded from message bytes.
func (x *xorshiftInstance) Feed([]byte) error { return nil }

// next advances the xorshift128+ state and returns the next 64-bit word.
func (x *xorshiftInstance) next() uint64 {
	s1 := x.s0
	s0 := x.s1
	x.s0 = s0
	s1 ^= s1 << 23
	s1 ^= s1 >> 17
	s1 ^= s0
	s1 ^= s0 >> 26
	x.s1 = s1
	return s0 + s1
}

func (x *xorshiftInstance) Result() ([]byte, error) {
	if !x.seeded {
		return nil, algorithm.ErrInvalidParameter
	}
	n := x.outputSize
	if n == 0 {
		n = 32
	}
	out := make([]byte, 0, n)
	for len(out) < n {
		w := x.next()
		for i := 0; i < 8 && len(out) < n; i++ {
			out = append(out, byte(w>>(8*i)))
		}
	}
	return out, nil
}

// XorshiftDescriptor declares xorshift128+, tagged deprecated: it is the
// taxonomy's example of a fast, non-cryptographic PRNG that must not be
// reached for when CSPRNG is what's needed.
var XorshiftDescriptor = &algorithm.Descriptor{
	Name:         "Xorshift128+",
	InternalName: "xorshift128plus",
	Category:     metadata.CategoryRandom,
	SubCategory:  "linear-feedback-prng",

	Inventor:    "Sebastiano Vigna",
	Year:        2014,
	Country:     metadata.Country("IT"),
	Description: "Fast non-cryptographic PRNG: two 64-bit state words advanced by shift-xor steps, summed for output. Passes standard statistical test suites but is trivially predictable from consecutive outputs — never use where unpredictability matters.",

	KeySizes:           []metadata.KeySize{{Min: 16, Max: 16, Step: 1}},
	SupportedOutputLen: []metadata.KeySize{{Min: 1, Max: 1 << 20, Step: 1}},

	SecurityStatus: metadata.SecurityDeprecated,
	Complexity:     metadata.ComplexityBeginner,

	Factory: newXorshiftInstance,
}
