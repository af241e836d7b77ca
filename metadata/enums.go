// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package metadata

import "fmt"

// Category is the closed set of algorithm kinds the taxonomy recognizes.
type Category int

const (
	CategoryUnspecified Category = iota
	CategoryHash
	CategoryBlockCipher
	CategoryStreamCipher
	CategoryMAC
	CategoryKDF
	CategoryAEAD
	CategoryPadding
	CategoryCipherMode
	CategoryEncoding
	CategoryCompression
	CategoryErrorCorrection
	CategoryRandom
	CategoryAsymmetric
	CategorySpecial
)

var categoryNames = map[Category]string{
	CategoryHash:            "hash",
	CategoryBlockCipher:     "block-cipher",
	CategoryStreamCipher:    "stream-cipher",
	CategoryMAC:             "mac",
	CategoryKDF:             "kdf",
	CategoryAEAD:            "aead",
	CategoryPadding:         "padding",
	CategoryCipherMode:      "cipher-mode",
	CategoryEncoding:        "encoding",
	CategoryCompression:     "compression",
	CategoryErrorCorrection: "error-correction",
	CategoryRandom:          "random",
	CategoryAsymmetric:      "asymmetric",
	CategorySpecial:         "special",
}

func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return "unspecified"
}

// ParseCategory parses the canonical string form of a Category. Unknown
// values fail loading, per spec: the enum set is closed.
func ParseCategory(s string) (Category, error) {
	for c, name := range categoryNames {
		if name == s {
			return c, nil
		}
	}
	return CategoryUnspecified, fmt.Errorf("metadata: unknown category %q", s)
}

// SecurityStatus tags how much a descriptor's implementation should be
// trusted in production.
type SecurityStatus int

const (
	SecurityUnspecified SecurityStatus = iota
	SecuritySecure
	SecurityEducational
	SecurityDeprecated
	SecurityBroken
	SecurityExperimental
	SecurityObsolete
)

var securityNames = map[SecurityStatus]string{
	SecuritySecure:       "secure",
	SecurityEducational:  "educational",
	SecurityDeprecated:   "deprecated",
	SecurityBroken:       "broken",
	SecurityExperimental: "experimental",
	SecurityObsolete:     "obsolete",
}

func (s SecurityStatus) String() string {
	if name, ok := securityNames[s]; ok {
		return name
	}
	return "unspecified"
}

// Complexity classifies how advanced an algorithm's implementation/design
// is, for consumers (UIs, code generators) to filter on.
type Complexity int

const (
	ComplexityUnspecified Complexity = iota
	ComplexityBeginner
	ComplexityIntermediate
	ComplexityAdvanced
	ComplexityResearch
)

var complexityNames = map[Complexity]string{
	ComplexityBeginner:     "beginner",
	ComplexityIntermediate: "intermediate",
	ComplexityAdvanced:     "advanced",
	ComplexityResearch:     "research",
}

func (c Complexity) String() string {
	if name, ok := complexityNames[c]; ok {
		return name
	}
	return "unspecified"
}

// Country is an ISO-3166-style two-letter code, plus the sentinels MULTI
// (more than one country of origin) and UNKNOWN.
type Country string

const (
	CountryMulti   Country = "MULTI"
	CountryUnknown Country = "UNKNOWN"
)

// Valid reports whether c looks like a two-letter code or one of the
// sentinel values.
func (c Country) Valid() bool {
	if c == CountryMulti || c == CountryUnknown {
		return true
	}
	return len(c) == 2
}
