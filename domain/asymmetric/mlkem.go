// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package asymmetric

import (
	"crypto/rand"

	"github.com/cloudflare/circl/kem/mlkem/mlkem768"

	"github.com/cryptoframe/algokit/algorithm"
	"github.com/cryptoframe/algokit/metadata"
)

// mlkemInstance implements ML-KEM-768 (FIPS 203) key encapsulation,
// adapted from parsdao-pars/mlkem's three-mode EVM precompile: only the
// 768 (NIST Level 3) mode is carried here, the gas table and byte-layout
// framing are dropped, and github.com/cloudflare/circl/kem/mlkem/mlkem768
// replaces the precompile's internal luxfi/crypto/mlkem.
//
// isInverse selects decapsulate (true: SetKey takes the private key,
// Feed accumulates the ciphertext, Result returns the shared secret) vs
// encapsulate (false: SetPublicKey takes the recipient's public key,
// Result returns ciphertext||sharedSecret with no input needed).
type mlkemInstance struct {
	isInverse  bool
	publicKey  *mlkem768.PublicKey
	privateKey *mlkem768.PrivateKey
	buf        []byte
	finalized  bool
}

func newMLKEMInstance(isInverse bool) (algorithm.Instance, error) {
	return &mlkemInstance{isInverse: isInverse}, nil
}

// SetKey provides the private key for a decapsulate instance.
func (m *mlkemInstance) SetKey(key []byte) error {
	if len(key) != mlkem768.PrivateKeySize {
		return algorithm.ErrInvalidParameter
	}
	var sk mlkem768.PrivateKey
	sk.Unpack(key)
	m.privateKey = &sk
	return nil
}

// SetPublicKey provides the recipient's public key for an encapsulate
// instance.
func (m *mlkemInstance) SetPublicKey(pub []byte) error {
	if len(pub) != mlkem768.PublicKeySize {
		return algorithm.ErrInvalidParameter
	}
	var pk mlkem768.PublicKey
	pk.Unpack(pub)
	m.publicKey = &pk
	return nil
}

// Feed accumulates the ciphertext being decapsulated; unused (a no-op)
// when encapsulating, since encapsulation produces its own ciphertext.
func (m *mlkemInstance) Feed(data []byte) error {
	if m.finalized {
		return algorithm.ErrFeedAfterFinalize
	}
	m.buf = append(m.buf, data...)
	return nil
}

func (m *mlkemInstance) Result() ([]byte, error) {
	if m.finalized {
		return nil, algorithm.ErrFeedAfterFinalize
	}
	m.finalized = true

	if m.isInverse {
		if m.privateKey == nil {
			return nil, algorithm.ErrInvalidParameter
		}
		if len(m.buf) != mlkem768.CiphertextSize {
			return nil, algorithm.ErrInvalidEncoding
		}
		ss := make([]byte, mlkem768.SharedKeySize)
		mlkem768.DecapsulateTo(ss, m.buf, m.privateKey)
		return ss, nil
	}

	if m.publicKey == nil {
		return nil, algorithm.ErrInvalidParameter
	}
	seed := make([]byte, mlkem768.EncapsulationSeedSize)
	if _, err := rand.Read(seed); err != nil {
		return nil, err
	}
	ct := make([]byte, mlkem768.CiphertextSize)
	ss := make([]byte, mlkem768.SharedKeySize)
	mlkem768.EncapsulateTo(ct, ss, seed, m.publicKey)

	out := make([]byte, 0, len(ct)+len(ss))
	out = append(out, ct...)
	out = append(out, ss...)
	return out, nil
}

// GenerateMLKEMKeyPair produces a fresh ML-KEM-768 key pair, packed to
// their wire encodings (public key first, private key second).
func GenerateMLKEMKeyPair() (pub, priv []byte, err error) {
	pk, sk, err := mlkem768.GenerateKeyPair(rand.Reader)
	if err != nil {
		return nil, nil, err
	}
	pub = make([]byte, mlkem768.PublicKeySize)
	priv = make([]byte, mlkem768.PrivateKeySize)
	pk.Pack(pub)
	sk.Pack(priv)
	return pub, priv, nil
}

// MLKEMDescriptor declares ML-KEM-768 (FIPS 203), NIST Level 3.
var MLKEMDescriptor = &algorithm.Descriptor{
	Name:         "ML-KEM-768",
	InternalName: "mlkem768",
	Category:     metadata.CategoryAsymmetric,
	SubCategory:  "lattice-kem",

	Year:        2024,
	Country:     metadata.CountryMulti,
	Description: "Module-Lattice-Based Key Encapsulation Mechanism (FIPS 203), NIST post-quantum Level 3 parameter set: a public key encapsulates a shared secret into a ciphertext only the matching private key can decapsulate.",

	KeySizes: []metadata.KeySize{{Min: mlkem768.PrivateKeySize, Max: mlkem768.PrivateKeySize, Step: 1}},

	SecurityStatus: metadata.SecuritySecure,
	Complexity:     metadata.ComplexityResearch,

	Documentation: []metadata.LinkItem{
		{Text: "FIPS 203", URI: "https://csrc.nist.gov/pubs/fips/203/final"},
	},

	Factory: newMLKEMInstance,
}
