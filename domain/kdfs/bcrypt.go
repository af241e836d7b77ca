// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package kdfs

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/cryptoframe/algokit/algorithm"
	"github.com/cryptoframe/algokit/metadata"
)

// bcryptInstance wraps golang.org/x/crypto/bcrypt's real implementation —
// the second half of spec's Open Question 1 resolution: 72-byte password
// truncation and cost range 4-31 match the real standard exactly, not a
// "simplified" variant that silently diverges from it.
//
// isInverse selects hash (false, Result produces the encoded bcrypt
// string) vs. verify (true, SetKey instead takes the previously-encoded
// hash and Result compares it against the fed password).
type bcryptInstance struct {
	isInverse bool
	cost      int
	storedKey []byte // the bcrypt hash to verify against, when isInverse
	password  []byte
	finalized bool
}

func newBcryptInstance(isInverse bool) (algorithm.Instance, error) {
	return &bcryptInstance{isInverse: isInverse, cost: bcrypt.DefaultCost}, nil
}

// SetKey provides the previously-encoded bcrypt hash for a verify
// instance. For a hash instance it is unused; cost stays at the default.
func (b *bcryptInstance) SetKey(key []byte) error {
	b.storedKey = key
	return nil
}

func (b *bcryptInstance) Feed(data []byte) error {
	if b.finalized {
		return algorithm.ErrFeedAfterFinalize
	}
	b.password = append(b.password, data...)
	return nil
}

func (b *bcryptInstance) Result() ([]byte, error) {
	if b.finalized {
		return nil, algorithm.ErrFeedAfterFinalize
	}
	b.finalized = true

	if b.isInverse {
		if b.storedKey == nil {
			return nil, algorithm.ErrInvalidParameter
		}
		if err := bcrypt.CompareHashAndPassword(b.storedKey, b.password); err != nil {
			return nil, algorithm.ErrAuthenticationFailed
		}
		return nil, nil
	}

	return bcrypt.GenerateFromPassword(b.password, b.cost)
}

// BcryptDescriptor declares bcrypt (Provos & Mazières, 1999), the
// Blowfish-key-schedule-derived adaptive password hash.
var BcryptDescriptor = &algorithm.Descriptor{
	Name:         "bcrypt",
	InternalName: "bcrypt",
	Category:     metadata.CategoryKDF,
	SubCategory:  "adaptive-password-hash",

	Inventor:    "Niels Provos, David Mazières",
	Year:        1999,
	Country:     metadata.CountryMulti,
	Description: "Adaptive password hash built on an expensive Blowfish key schedule (EksBlowfishSetup); cost factor tunes the iteration count to keep pace with faster hardware over time.",

	SecurityStatus: metadata.SecuritySecure,
	Complexity:     metadata.ComplexityIntermediate,

	Factory: newBcryptInstance,
}
