// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

// Package asymmetric wires the asymmetric category: public-key schemes
// that don't fit the symmetric Keyed/IVSetter shape at all (ECIES needs a
// counterparty public key, not a shared secret; ML-KEM needs an
// encapsulation key, not either). Each adapter therefore carries a small
// package-local structural interface extending the generic contracts,
// the same pattern the tuplehash package uses for its customization
// string.
package asymmetric

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/ecdh"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/binary"
	"hash"

	"github.com/cryptoframe/algokit/algorithm"
	"github.com/cryptoframe/algokit/metadata"
)

// PublicKeySetter is satisfied by asymmetric encrypt instances that need
// the counterparty's public key rather than a shared symmetric key.
type PublicKeySetter interface {
	SetPublicKey(pub []byte) error
}

// eciesInstance implements ECIES (Elliptic Curve Integrated Encryption
// Scheme) over crypto/ecdh's P-256, adapted from parsdao-pars/ecies's
// EVM precompile: the same Concat KDF (NIST SP 800-56A) derives an
// AES-256 key and an HMAC-SHA256 key from the ECDH shared secret, the
// same AES-CTR-then-HMAC construction protects the payload. Unlike the
// precompile, no EVM curve-ID byte, gas schedule, or secp256k1 option is
// carried — crypto/ecdh only exposes NIST curves and X25519, so this
// adapter fixes P-256.
type eciesInstance struct {
	isInverse  bool
	privateKey *ecdh.PrivateKey // decrypt (recipient)
	publicKey  *ecdh.PublicKey  // encrypt (recipient's public key)
	buf        []byte
	finalized  bool
}

func newECIESInstance(isInverse bool) (algorithm.Instance, error) {
	return &eciesInstance{isInverse: isInverse}, nil
}

// SetKey provides the recipient's private key for a decrypt instance.
func (e *eciesInstance) SetKey(key []byte) error {
	pk, err := ecdh.P256().NewPrivateKey(key)
	if err != nil {
		return algorithm.ErrInvalidParameter
	}
	e.privateKey = pk
	return nil
}

// SetPublicKey provides the recipient's public key for an encrypt
// instance (uncompressed SEC1 point, as crypto/ecdh.P256 expects).
func (e *eciesInstance) SetPublicKey(pub []byte) error {
	pk, err := ecdh.P256().NewPublicKey(pub)
	if err != nil {
		return algorithm.ErrInvalidParameter
	}
	e.publicKey = pk
	return nil
}

func (e *eciesInstance) Feed(data []byte) error {
	if e.finalized {
		return algorithm.ErrFeedAfterFinalize
	}
	e.buf = append(e.buf, data...)
	return nil
}

func (e *eciesInstance) Result() ([]byte, error) {
	if e.finalized {
		return nil, algorithm.ErrFeedAfterFinalize
	}
	e.finalized = true
	if e.isInverse {
		return e.decrypt(e.buf)
	}
	return e.encrypt(e.buf)
}

func (e *eciesInstance) encrypt(plaintext []byte) ([]byte, error) {
	if e.publicKey == nil {
		return nil, algorithm.ErrInvalidParameter
	}
	ephemeral, err := ecdh.P256().GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	shared, err := ephemeral.ECDH(e.publicKey)
	if err != nil {
		return nil, err
	}

	derived := concatKDF(sha256.New, shared, nil, 64)
	encKey, macKey := derived[:32], derived[32:]

	block, err := aes.NewCipher(encKey)
	if err != nil {
		return nil, err
	}
	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return nil, err
	}
	ciphertext := make([]byte, len(iv)+len(plaintext))
	copy(ciphertext, iv)
	cipher.NewCTR(block, iv).XORKeyStream(ciphertext[aes.BlockSize:], plaintext)

	mac := hmac.New(sha256.New, macKey)
	mac.Write(ciphertext)
	tag := mac.Sum(nil)

	ephPub := ephemeral.PublicKey().Bytes()
	out := make([]byte, 0, len(ephPub)+len(ciphertext)+len(tag))
	out = append(out, ephPub...)
	out = append(out, ciphertext...)
	out = append(out, tag...)
	return out, nil
}

func (e *eciesInstance) decrypt(input []byte) ([]byte, error) {
	if e.privateKey == nil {
		return nil, algorithm.ErrInvalidParameter
	}
	const pubKeySize, macSize = 65, 32
	if len(input) < pubKeySize+aes.BlockSize+macSize {
		return nil, algorithm.ErrInvalidEncoding
	}

	ephPub := input[:pubKeySize]
	encryptedWithIV := input[pubKeySize : len(input)-macSize]
	expectedMAC := input[len(input)-macSize:]

	ephemeral, err := ecdh.P256().NewPublicKey(ephPub)
	if err != nil {
		return nil, algorithm.ErrInvalidEncoding
	}
	shared, err := e.privateKey.ECDH(ephemeral)
	if err != nil {
		return nil, algorithm.ErrInvalidEncoding
	}

	derived := concatKDF(sha256.New, shared, nil, 64)
	encKey, macKey := derived[:32], derived[32:]

	mac := hmac.New(sha256.New, macKey)
	mac.Write(encryptedWithIV)
	computedMAC := mac.Sum(nil)
	if subtle.ConstantTimeCompare(expectedMAC, computedMAC) != 1 {
		return nil, algorithm.ErrAuthenticationFailed
	}

	block, err := aes.NewCipher(encKey)
	if err != nil {
		return nil, err
	}
	iv := encryptedWithIV[:aes.BlockSize]
	encrypted := encryptedWithIV[aes.BlockSize:]
	plaintext := make([]byte, len(encrypted))
	cipher.NewCTR(block, iv).XORKeyStream(plaintext, encrypted)
	return plaintext, nil
}

// concatKDF is NIST SP 800-56A's Concatenation KDF, unchanged from the
// teacher's ECIES precompile: hash(counter || z || otherInfo) repeated
// until keyLen bytes have been produced.
func concatKDF(h func() hash.Hash, z, otherInfo []byte, keyLen int) []byte {
	hashSize := h().Size()
	reps := (keyLen + hashSize - 1) / hashSize
	derived := make([]byte, 0, reps*hashSize)
	for counter := uint32(1); counter <= uint32(reps); counter++ {
		hasher := h()
		var counterBytes [4]byte
		binary.BigEndian.PutUint32(counterBytes[:], counter)
		hasher.Write(counterBytes[:])
		hasher.Write(z)
		hasher.Write(otherInfo)
		derived = hasher.Sum(derived)
	}
	return derived[:keyLen]
}

// ECIESDescriptor declares ECIES over P-256.
var ECIESDescriptor = &algorithm.Descriptor{
	Name:         "ECIES-P256",
	InternalName: "ecies-p256",
	Category:     metadata.CategoryAsymmetric,
	SubCategory:  "integrated-encryption-scheme",

	Description: "Elliptic Curve Integrated Encryption Scheme: ephemeral ECDH over P-256, Concat KDF (NIST SP 800-56A) splits the shared secret into an AES-256-CTR key and an HMAC-SHA256 key, encrypt-then-MAC over the ciphertext.",

	KeySizes: []metadata.KeySize{{Min: 32, Max: 32, Step: 1}},

	SecurityStatus: metadata.SecuritySecure,
	Complexity:     metadata.ComplexityAdvanced,

	Factory: newECIESInstance,
}
