// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

// Package metadata holds the value types that describe a registered
// algorithm: links, vulnerabilities, declared sizes, test vectors, and the
// closed enumerations (category, security status, complexity, country).
package metadata

import "fmt"

// LinkItem is a plain documentation link.
type LinkItem struct {
	Text string
	URI  string
}

// Vulnerability records a known weakness of an algorithm, its kind of
// break, and how (if at all) it can be mitigated.
type Vulnerability struct {
	Kind        string
	Description string
	Mitigation  string
}

// KeySize describes an inclusive, stepped range of permitted sizes (in
// bytes) for a key, IV, block or output. Invariant: Min <= Max, Step >= 1,
// and (Max-Min) is a multiple of Step.
type KeySize struct {
	Min  int
	Max  int
	Step int
}

// Valid reports whether ks satisfies its declared invariant.
func (ks KeySize) Valid() bool {
	if ks.Step < 1 || ks.Min > ks.Max {
		return false
	}
	return (ks.Max-ks.Min)%ks.Step == 0
}

// Contains reports whether n is one of the sizes ks permits.
func (ks KeySize) Contains(n int) bool {
	if n < ks.Min || n > ks.Max {
		return false
	}
	return (n-ks.Min)%ks.Step == 0
}

func (ks KeySize) String() string {
	if ks.Min == ks.Max {
		return fmt.Sprintf("%d", ks.Min)
	}
	return fmt.Sprintf("%d-%d/%d", ks.Min, ks.Max, ks.Step)
}

// TestCase is an immutable (input, expected, context) triple declared by an
// algorithm descriptor. Context fields are category-specific and may be
// left at their zero value when not applicable.
type TestCase struct {
	Text     string
	URI      string
	Input    []byte
	Expected []byte

	Key            []byte
	IV             []byte
	Nonce          []byte
	AAD            []byte
	Salt           []byte
	Tuples         [][]byte
	Customization  []byte
	FunctionName   []byte
	OutputSize     int
	XOFMode        bool
}
