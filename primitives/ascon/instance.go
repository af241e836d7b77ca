// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package ascon

import (
	"github.com/cryptoframe/algokit/padding"
	"github.com/cryptoframe/algokit/runtime"
)

const rateSize = 8
const digestSize = 32

// instance is Ascon-Hash256's streaming Instance: an 8-byte-rate sponge
// over a 320-bit permutation state, absorbing via the same
// runtime.Absorber every block primitive uses (the rate is just this
// sponge's "block size").
type instance struct {
	s        state
	absorber *runtime.Absorber
	digest   []byte
}

func newInstance() *instance {
	inst := &instance{s: initialState()}
	inst.absorber = runtime.NewAbsorber(rateSize, func(block []byte) {
		inst.s[0] ^= loadLaneBE(block)
		permute12(&inst.s)
	})
	return inst
}

// Feed implements algorithm.Instance. A Feed after Result implicitly resets
// the sponge to its initialized post-construction state.
func (i *instance) Feed(p []byte) error {
	if i.digest != nil {
		i.s = initialState()
		i.absorber.Reset()
		i.digest = nil
	}
	i.absorber.Feed(p)
	return nil
}

// Result implements algorithm.Instance: idempotent, non-destructive
// finalize via pad-absorb-squeeze, snapshotting and restoring both the
// absorber's buffer and the permutation state.
func (i *instance) Result() ([]byte, error) {
	if i.digest != nil {
		return i.digest, nil
	}

	bufSnap := i.absorber.Snapshot()
	sSnap := i.s

	pad := padding.AsconPad(rateSize, i.absorber.BufferedLen())
	i.absorber.Feed(pad)

	digest := make([]byte, 0, digestSize)
	for len(digest) < digestSize {
		lane := storeLaneBE(i.s[0])
		digest = append(digest, lane[:]...)
		if len(digest) < digestSize {
			permute12(&i.s)
		}
	}

	i.absorber.Restore(bufSnap)
	i.s = sSnap

	i.digest = digest
	return digest, nil
}
