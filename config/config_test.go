// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cryptoframe/algokit/metadata"
)

func writeConfig(t *testing.T, body string) *Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "algokit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	return cfg
}

func TestNilConfigEnablesEverything(t *testing.T) {
	var cfg *Config
	require.True(t, cfg.CategoryEnabled(metadata.CategoryHash))
	require.True(t, cfg.CategoryEnabled(metadata.CategorySpecial))
}

func TestEmptyEnabledCategoriesEnablesEverything(t *testing.T) {
	cfg := writeConfig(t, "enabled_categories: []\n")
	require.True(t, cfg.CategoryEnabled(metadata.CategoryHash))
	require.True(t, cfg.CategoryEnabled(metadata.CategoryAsymmetric))
}

func TestExplicitListRestrictsToNamedCategories(t *testing.T) {
	cfg := writeConfig(t, "enabled_categories:\n  - hash\n  - mac\n")
	require.True(t, cfg.CategoryEnabled(metadata.CategoryHash))
	require.True(t, cfg.CategoryEnabled(metadata.CategoryMAC))
	require.False(t, cfg.CategoryEnabled(metadata.CategoryAsymmetric))
}

func TestUnknownCategoryNameIgnoredNotFatal(t *testing.T) {
	cfg := writeConfig(t, "enabled_categories:\n  - hash\n  - not-a-real-category\n")
	require.True(t, cfg.CategoryEnabled(metadata.CategoryHash))
	require.False(t, cfg.CategoryEnabled(metadata.CategoryMAC))
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
}
