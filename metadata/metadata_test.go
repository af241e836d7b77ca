// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package metadata

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeySizeValid(t *testing.T) {
	require.True(t, KeySize{Min: 16, Max: 32, Step: 8}.Valid())
	require.False(t, KeySize{Min: 16, Max: 33, Step: 8}.Valid())
	require.False(t, KeySize{Min: 16, Max: 8, Step: 1}.Valid())
	require.False(t, KeySize{Min: 16, Max: 32, Step: 0}.Valid())
}

func TestKeySizeContains(t *testing.T) {
	ks := KeySize{Min: 16, Max: 32, Step: 8}
	require.True(t, ks.Contains(16))
	require.True(t, ks.Contains(24))
	require.True(t, ks.Contains(32))
	require.False(t, ks.Contains(20))
	require.False(t, ks.Contains(40))
}

func TestCategoryRoundTrip(t *testing.T) {
	for _, c := range []Category{CategoryHash, CategoryBlockCipher, CategoryAEAD, CategorySpecial} {
		parsed, err := ParseCategory(c.String())
		require.NoError(t, err)
		require.Equal(t, c, parsed)
	}
}

func TestParseCategoryUnknown(t *testing.T) {
	_, err := ParseCategory("not-a-category")
	require.Error(t, err)
}

func TestCountryValid(t *testing.T) {
	require.True(t, Country("DE").Valid())
	require.True(t, CountryMulti.Valid())
	require.True(t, CountryUnknown.Valid())
	require.False(t, Country("GERMANY").Valid())
}
