// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package whirlpool

import (
	"github.com/cryptoframe/algokit/padding"
	"github.com/cryptoframe/algokit/runtime"
)

// instance is Whirlpool's streaming Instance: a 64-byte chaining value,
// all-zero at construction, updated one block at a time via compress.
type instance struct {
	h        [64]byte
	absorber *runtime.Absorber
	digest   []byte
}

func newInstance() *instance {
	inst := &instance{}
	inst.absorber = runtime.NewAbsorber(64, func(block []byte) {
		compress(&inst.h, block)
	})
	return inst
}

// Feed implements algorithm.Instance. A Feed after Result implicitly resets
// the instance to its all-zero post-construction state.
func (i *instance) Feed(p []byte) error {
	if i.digest != nil {
		i.h = [64]byte{}
		i.absorber.Reset()
		i.digest = nil
	}
	i.absorber.Feed(p)
	return nil
}

// Result implements algorithm.Instance: idempotent, non-destructive finalize.
func (i *instance) Result() ([]byte, error) {
	if i.digest != nil {
		return i.digest, nil
	}

	bufSnap := i.absorber.Snapshot()
	hSnap := i.h

	pad := padding.Whirlpool256(i.absorber.TotalBytes(), 64)
	i.absorber.Feed(pad)

	digest := make([]byte, 64)
	copy(digest, i.h[:])

	i.absorber.Restore(bufSnap)
	i.h = hSnap

	i.digest = digest
	return digest, nil
}
