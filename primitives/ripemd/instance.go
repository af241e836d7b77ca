// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package ripemd

import (
	"github.com/cryptoframe/algokit/opcodes"
	"github.com/cryptoframe/algokit/padding"
	"github.com/cryptoframe/algokit/runtime"
)

// instance is the streaming Instance shared by RIPEMD-128 and RIPEMD-256;
// only the chaining-value width and compression function differ between
// the two.
type instance struct {
	h        []uint32
	iv       []uint32
	compress func(h []uint32, block []byte)
	absorber *runtime.Absorber
	digest   []byte
}

func newInstance(iv []uint32, compress func(h []uint32, block []byte)) *instance {
	h := make([]uint32, len(iv))
	copy(h, iv)
	inst := &instance{h: h, iv: iv, compress: compress}
	inst.absorber = runtime.NewAbsorber(64, func(block []byte) {
		inst.compress(inst.h, block)
	})
	return inst
}

// Feed implements algorithm.Instance. A Feed after Result implicitly resets
// the instance to its post-construction state and starts a new hash, per
// the hash-category Feed-after-finalize policy.
func (i *instance) Feed(p []byte) error {
	if i.digest != nil {
		copy(i.h, i.iv)
		i.absorber.Reset()
		i.digest = nil
	}
	i.absorber.Feed(p)
	return nil
}

// Result implements algorithm.Instance. Two successive calls with no Feed
// in between return identical bytes: the first call pads and compresses a
// snapshot of the current state and caches the digest, the second just
// replays the cache.
func (i *instance) Result() ([]byte, error) {
	if i.digest != nil {
		return i.digest, nil
	}

	bufSnap := i.absorber.Snapshot()
	hSnap := make([]uint32, len(i.h))
	copy(hSnap, i.h)

	pad := padding.MerkleDamgard64(i.absorber.TotalBytes(), 64, padding.LittleEndian)
	i.absorber.Feed(pad)

	digest := make([]byte, len(i.h)*4)
	for idx, w := range i.h {
		opcodes.StoreU32SliceLE(digest[idx*4:], w)
	}

	i.absorber.Restore(bufSnap)
	copy(i.h, hSnap)

	i.digest = digest
	return digest, nil
}
