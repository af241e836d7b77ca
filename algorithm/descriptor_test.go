// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package algorithm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cryptoframe/algokit/metadata"
)

type stubInstance struct{}

func (stubInstance) Feed([]byte) error        { return nil }
func (stubInstance) Result() ([]byte, error)  { return []byte("ok"), nil }

func TestDescriptorFoldedName(t *testing.T) {
	d := &Descriptor{Name: "RIPEMD-128"}
	require.Equal(t, "ripemd-128", d.FoldedName())
}

func TestDescriptorCreateInstance(t *testing.T) {
	d := &Descriptor{
		Name: "Stub",
		Factory: func(isInverse bool) (Instance, error) {
			if isInverse {
				return nil, ErrNotInvertible
			}
			return stubInstance{}, nil
		},
	}
	inst, err := d.CreateInstance(false)
	require.NoError(t, err)
	result, err := inst.Result()
	require.NoError(t, err)
	require.Equal(t, []byte("ok"), result)

	_, err = d.CreateInstance(true)
	require.ErrorIs(t, err, ErrNotInvertible)
}

func TestDescriptorKeySizeAllowed(t *testing.T) {
	d := &Descriptor{
		KeySizes: []metadata.KeySize{{Min: 16, Max: 32, Step: 8}},
	}
	require.True(t, d.KeySizeAllowed(16))
	require.True(t, d.KeySizeAllowed(24))
	require.False(t, d.KeySizeAllowed(20))

	keyless := &Descriptor{}
	require.True(t, keyless.KeySizeAllowed(1234))
}

func TestDescriptorOutputSizeAllowed(t *testing.T) {
	d := &Descriptor{
		SupportedOutputLen: []metadata.KeySize{{Min: 28, Max: 64, Step: 4}},
	}
	require.True(t, d.OutputSizeAllowed(32))
	require.False(t, d.OutputSizeAllowed(30))
}
