// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config loads the optional YAML file describing which algorithm
// categories an embedder's harness or CLI should expose, generalizing
// the teacher's reservedRanges/registeredModules pattern (modules
// package: a static, declarative enablement list keyed by address range)
// into a file-driven list keyed by category name.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/cryptoframe/algokit/metadata"
)

// Config is the root of the YAML document.
type Config struct {
	// EnabledCategories lists the category names (case-insensitive,
	// matching metadata.Category's string values) the embedder wants
	// exposed. An empty list means "every category" — the same
	// fail-open default the teacher's registerer uses when no explicit
	// chain config narrows the address ranges.
	EnabledCategories []string `yaml:"enabled_categories"`
}

// Load reads and parses the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &c, nil
}

// CategoryEnabled reports whether c is among the configured enabled
// categories. An empty EnabledCategories list enables every category.
// Entries that don't parse as a known category name are ignored, rather
// than failing the whole config, so a typo in one line doesn't disable
// every other configured category.
func (cfg *Config) CategoryEnabled(c metadata.Category) bool {
	if cfg == nil || len(cfg.EnabledCategories) == 0 {
		return true
	}
	for _, name := range cfg.EnabledCategories {
		if parsed, err := metadata.ParseCategory(strings.ToLower(name)); err == nil && parsed == c {
			return true
		}
	}
	return false
}
