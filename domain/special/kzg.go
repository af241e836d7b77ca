// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

// Package special wires the taxonomy's outlier constructions — ones that
// fit the generic algorithm category grid by convention rather than by
// natural shape (a polynomial commitment, a ring signature). Each keeps
// its own package-local structural interface for the setters the generic
// contracts have no slot for, the same pattern tuplehash established.
package special

import (
	"github.com/cryptoframe/algokit/algorithm"
	"github.com/cryptoframe/algokit/metadata"

	gokzg4844 "github.com/crate-crypto/go-kzg-4844"
)

const (
	blobSize         = 131072
	fieldElementSize = 32
	commitmentSize   = 48
	proofSize        = 48
)

var kzgContext = mustKZGContext()

func mustKZGContext() *gokzg4844.Context {
	ctx, err := gokzg4844.NewContext4096Secure()
	if err != nil {
		panic("special: failed to build KZG trusted-setup context: " + err.Error())
	}
	return ctx
}

// KZGMode selects which of the four EIP-4844 operations an instance
// performs, set via SetMode (there is no generic "which operation"
// setter in the category contracts, since most categories have exactly
// one operation per direction).
type KZGMode int

const (
	KZGModeCommit KZGMode = iota
	KZGModeProve
	KZGModeVerify
	KZGModeVerifyBlob
)

// ModeSetter is satisfied by instances with more than two operation
// directions (commit / prove / verify / verify-blob, rather than a
// simple encrypt/decrypt split).
type ModeSetter interface {
	SetMode(m KZGMode) error
}

// kzgInstance implements the four EIP-4844 polynomial-commitment
// operations over github.com/crate-crypto/go-kzg-4844, adapted from
// parsdao-pars/kzg4844's EVM precompile: the same Context4096Secure
// trusted setup and the same four operations, with the precompile's gas
// table, address constant, and wire-format byte offsets dropped in favor
// of a single Feed-accumulated buffer whose layout depends on Mode.
//
// Feed accumulates: blob||z for Prove, commitment||z||y||proof for
// Verify, blob||commitment||proof for VerifyBlob, and blob alone for
// Commit.
type kzgInstance struct {
	mode      KZGMode
	buf       []byte
	finalized bool
}

func newKZGInstance(bool) (algorithm.Instance, error) {
	return &kzgInstance{}, nil
}

func (k *kzgInstance) SetMode(m KZGMode) error {
	k.mode = m
	return nil
}

func (k *kzgInstance) Feed(data []byte) error {
	if k.finalized {
		return algorithm.ErrFeedAfterFinalize
	}
	k.buf = append(k.buf, data...)
	return nil
}

func (k *kzgInstance) Result() ([]byte, error) {
	if k.finalized {
		return nil, algorithm.ErrFeedAfterFinalize
	}
	k.finalized = true

	switch k.mode {
	case KZGModeCommit:
		return k.commit()
	case KZGModeProve:
		return k.prove()
	case KZGModeVerify:
		return k.verify()
	case KZGModeVerifyBlob:
		return k.verifyBlob()
	default:
		return nil, algorithm.ErrInvalidParameter
	}
}

func (k *kzgInstance) commit() ([]byte, error) {
	if len(k.buf) < blobSize {
		return nil, algorithm.ErrInvalidEncoding
	}
	var blob gokzg4844.Blob
	copy(blob[:], k.buf[:blobSize])
	commitment, err := kzgContext.BlobToKZGCommitment(&blob, 0)
	if err != nil {
		return nil, err
	}
	return commitment[:], nil
}

func (k *kzgInstance) prove() ([]byte, error) {
	if len(k.buf) < blobSize+fieldElementSize {
		return nil, algorithm.ErrInvalidEncoding
	}
	var blob gokzg4844.Blob
	copy(blob[:], k.buf[:blobSize])
	var z gokzg4844.Scalar
	copy(z[:], k.buf[blobSize:blobSize+fieldElementSize])

	proof, y, err := kzgContext.ComputeKZGProof(&blob, z, 0)
	if err != nil {
		return nil, err
	}
	out := make([]byte, proofSize+fieldElementSize)
	copy(out, proof[:])
	copy(out[proofSize:], y[:])
	return out, nil
}

func (k *kzgInstance) verify() ([]byte, error) {
	expectedLen := commitmentSize + 2*fieldElementSize + proofSize
	if len(k.buf) < expectedLen {
		return nil, algorithm.ErrInvalidEncoding
	}
	var commitment gokzg4844.KZGCommitment
	copy(commitment[:], k.buf[:commitmentSize])
	var z, y gokzg4844.Scalar
	copy(z[:], k.buf[commitmentSize:commitmentSize+fieldElementSize])
	copy(y[:], k.buf[commitmentSize+fieldElementSize:commitmentSize+2*fieldElementSize])
	var proof gokzg4844.KZGProof
	copy(proof[:], k.buf[commitmentSize+2*fieldElementSize:expectedLen])

	if err := kzgContext.VerifyKZGProof(commitment, z, y, proof); err != nil {
		return nil, algorithm.ErrAuthenticationFailed
	}
	return []byte{1}, nil
}

func (k *kzgInstance) verifyBlob() ([]byte, error) {
	expectedLen := blobSize + commitmentSize + proofSize
	if len(k.buf) < expectedLen {
		return nil, algorithm.ErrInvalidEncoding
	}
	var blob gokzg4844.Blob
	copy(blob[:], k.buf[:blobSize])
	var commitment gokzg4844.KZGCommitment
	copy(commitment[:], k.buf[blobSize:blobSize+commitmentSize])
	var proof gokzg4844.KZGProof
	copy(proof[:], k.buf[blobSize+commitmentSize:expectedLen])

	if err := kzgContext.VerifyBlobKZGProof(&blob, commitment, proof); err != nil {
		return nil, algorithm.ErrAuthenticationFailed
	}
	return []byte{1}, nil
}

// KZGDescriptor declares the KZG polynomial commitment scheme as
// profiled by EIP-4844.
var KZGDescriptor = &algorithm.Descriptor{
	Name:         "KZG-4844",
	InternalName: "kzg4844",
	Category:     metadata.CategorySpecial,
	SubCategory:  "polynomial-commitment",

	Inventor:    "Aniket Kate, Gregory Maxwell, Ian Goldberg",
	Year:        2010,
	Country:     metadata.CountryMulti,
	Description: "Kate-Zaverucha-Goldberg polynomial commitment scheme, profiled by EIP-4844 with a 4096-element trusted setup: commits to a blob's evaluation polynomial, proves and verifies point evaluations against that commitment.",

	SecurityStatus: metadata.SecuritySecure,
	Complexity:     metadata.ComplexityResearch,

	Documentation: []metadata.LinkItem{
		{Text: "EIP-4844", URI: "https://eips.ethereum.org/EIPS/eip-4844"},
	},

	Factory: newKZGInstance,
}
