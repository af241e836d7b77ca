// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package external

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cryptoframe/algokit/algorithm"
	"github.com/cryptoframe/algokit/metadata"
	"github.com/cryptoframe/algokit/registry"
)

func noopFactory(bool) (algorithm.Instance, error) { return nil, nil }

func testDescriptors() []*algorithm.Descriptor {
	return []*algorithm.Descriptor{
		{
			Name:     "Alpha",
			Category: metadata.CategoryHash,
			Tests:    []metadata.TestCase{{Text: "v1"}, {Text: "v2"}},
			Factory:  noopFactory,
		},
		{
			Name:     "Beta",
			Category: metadata.CategoryMAC,
			Factory:  noopFactory,
		},
	}
}

func newTestLayer() *Layer {
	r := registry.New()
	for _, d := range testDescriptors() {
		r.Register(d)
	}
	return New(r)
}

func TestListAlgorithmsIncludesEveryRegistered(t *testing.T) {
	layer := newTestLayer()
	all := layer.ListAlgorithms()
	require.Len(t, all, 2)
}

func TestListByCategoryFiltersCorrectly(t *testing.T) {
	layer := newTestLayer()
	hashes := layer.ListByCategory(metadata.CategoryHash)
	require.Len(t, hashes, 1)
	require.Equal(t, "Alpha", hashes[0].Name)
}

func TestGetVectorsReturnsDeclaredVectors(t *testing.T) {
	layer := newTestLayer()
	vectors, ok := layer.GetVectors("Alpha")
	require.True(t, ok)
	require.Len(t, vectors, 2)
}

func TestGetVectorsUnknownNameNotFound(t *testing.T) {
	layer := newTestLayer()
	_, ok := layer.GetVectors("does-not-exist")
	require.False(t, ok)
}

func TestGetSummaryVectorCountMatchesTests(t *testing.T) {
	layer := newTestLayer()
	summary, ok := layer.Get("Alpha")
	require.True(t, ok)
	require.Equal(t, 2, summary.VectorCount)
	require.Equal(t, metadata.CategoryHash, summary.Category)
}
