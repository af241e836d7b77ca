// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cryptoframe/algokit/algorithm"
	"github.com/cryptoframe/algokit/metadata"
)

func stubDescriptor(name string, cat metadata.Category) *algorithm.Descriptor {
	return &algorithm.Descriptor{Name: name, Category: cat}
}

func TestRegisterIdempotent(t *testing.T) {
	r := New()
	a := stubDescriptor("SHA-Test", metadata.CategoryHash)
	b := stubDescriptor("sha-test", metadata.CategoryHash)

	require.True(t, r.Register(a))
	require.False(t, r.Register(b))
	require.Equal(t, 1, r.Len())
}

func TestFindCaseInsensitive(t *testing.T) {
	r := New()
	r.Register(stubDescriptor("Whirlpool", metadata.CategoryHash))

	d, ok := r.Find("WHIRLPOOL")
	require.True(t, ok)
	require.Equal(t, "Whirlpool", d.Name)

	_, ok = r.Find("nonexistent")
	require.False(t, ok)
}

func TestFindByCategory(t *testing.T) {
	r := New()
	r.Register(stubDescriptor("Ascon-Hash256", metadata.CategoryHash))
	r.Register(stubDescriptor("Rijndael", metadata.CategoryBlockCipher))
	r.Register(stubDescriptor("Whirlpool", metadata.CategoryHash))

	hashes := r.FindByCategory(metadata.CategoryHash)
	require.Len(t, hashes, 2)
	require.Equal(t, "Ascon-Hash256", hashes[0].Name)
	require.Equal(t, "Whirlpool", hashes[1].Name)
}

func TestAllIsInsertionOrder(t *testing.T) {
	r := New()
	names := []string{"C", "A", "B"}
	for _, n := range names {
		r.Register(stubDescriptor(n, metadata.CategoryHash))
	}
	all := r.All()
	require.Len(t, all, 3)
	for i, n := range names {
		require.Equal(t, n, all[i].Name)
	}
}

func TestConcurrentReadsAfterFreeze(t *testing.T) {
	r := New()
	r.Register(stubDescriptor("RIPEMD-128", metadata.CategoryHash))
	r.Freeze()
	require.True(t, r.Frozen())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = r.Find("ripemd-128")
			_ = r.All()
		}()
	}
	wg.Wait()
}
