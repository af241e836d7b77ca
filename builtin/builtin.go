// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

// Package builtin is the single place every shipped algorithm descriptor
// is wired into a registry.Registry, mirroring the teacher's module
// registerer (parsdao-pars/modules/registerer.go), which walks a static
// list of precompile modules and registers each at its fixed address;
// here the list is every descriptor this repository ships, and the key
// is the descriptor's name instead of an address.
package builtin

import (
	"github.com/cryptoframe/algokit/algorithm"
	"github.com/cryptoframe/algokit/domain/aeads"
	"github.com/cryptoframe/algokit/domain/asymmetric"
	"github.com/cryptoframe/algokit/domain/ciphers"
	"github.com/cryptoframe/algokit/domain/compression"
	"github.com/cryptoframe/algokit/domain/ecc"
	"github.com/cryptoframe/algokit/domain/encodings"
	"github.com/cryptoframe/algokit/domain/hashes"
	"github.com/cryptoframe/algokit/domain/kdfs"
	"github.com/cryptoframe/algokit/domain/macs"
	"github.com/cryptoframe/algokit/domain/padding"
	"github.com/cryptoframe/algokit/domain/random"
	"github.com/cryptoframe/algokit/domain/special"
	"github.com/cryptoframe/algokit/primitives/ascon"
	"github.com/cryptoframe/algokit/primitives/rijndael"
	"github.com/cryptoframe/algokit/primitives/ripemd"
	"github.com/cryptoframe/algokit/primitives/tuplehash"
	"github.com/cryptoframe/algokit/primitives/whirlpool"
	"github.com/cryptoframe/algokit/registry"
)

// All is the complete list of descriptors this repository ships, in the
// order they are registered by Register.
var All = []*algorithm.Descriptor{
	ascon.Descriptor,
	rijndael.Descriptor,
	ripemd.Descriptor128,
	ripemd.Descriptor256,
	whirlpool.Descriptor,
	tuplehash.Descriptor128,
	tuplehash.Descriptor256,

	ciphers.ChaCha20Descriptor,
	ciphers.RijndaelCBCDescriptor,
	ciphers.RijndaelCTRDescriptor,

	aeads.ChaCha20Poly1305Descriptor,
	aeads.AESCTRHMACDescriptor,

	hashes.Blake3Descriptor,
	hashes.Blake2bDescriptor,
	hashes.Blake2sDescriptor,

	macs.HMACSHA256Descriptor,
	macs.HMACSHA512Descriptor,
	macs.SipHash24Descriptor,

	kdfs.HKDFDescriptor,
	kdfs.Argon2idDescriptor,
	kdfs.BcryptDescriptor,

	encodings.HexDescriptor,
	encodings.Base64Descriptor,
	encodings.Base58Descriptor,

	compression.DeflateDescriptor,
	compression.ZstdDescriptor,

	ecc.Descriptor,

	random.CSPRNGDescriptor,
	random.XorshiftDescriptor,

	asymmetric.ECIESDescriptor,
	asymmetric.MLKEMDescriptor,
	asymmetric.HPKEDescriptor,

	special.KZGDescriptor,
	special.RingDescriptor,

	padding.PKCS7Descriptor,
	padding.ISO7816Descriptor,
}

// Register registers every descriptor in All into r, returning how many
// were newly inserted (a value below len(All) means r already held some
// of these names — see registry.Registry.Register's idempotency note).
func Register(r *registry.Registry) int {
	n := 0
	for _, d := range All {
		if r.Register(d) {
			n++
		}
	}
	return n
}

// Default is the process-wide registry populated by this package's init,
// the shape most callers want: import builtin for its side effect, then
// use builtin.Default directly rather than constructing and populating
// their own registry.
var Default = registry.New()

func init() {
	Register(Default)
	Default.Freeze()
}
