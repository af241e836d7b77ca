// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

// Package external is the External Interface Layer: a stable, read-only
// projection of a registry.Registry for downstream consumers (a UI, a
// transpiler, a code generator) that must never reach into the registry
// or algorithm packages directly. Everything else in this repository is
// internal to that consumer.
package external

import (
	"github.com/cryptoframe/algokit/algorithm"
	"github.com/cryptoframe/algokit/metadata"
	"github.com/cryptoframe/algokit/registry"
)

// AlgorithmSummary is the flattened, consumer-facing view of one
// descriptor — every field a UI or generator would want to render,
// without exposing the Descriptor's Factory or mutable internals.
type AlgorithmSummary struct {
	Name                 string
	Category             metadata.Category
	SubCategory          string
	SecurityStatus       metadata.SecurityStatus
	Complexity           metadata.Complexity
	Country              metadata.Country
	Year                 int
	Inventor             string
	Description          string
	DocumentationLinks   []metadata.LinkItem
	References           []metadata.LinkItem
	KnownVulnerabilities []metadata.Vulnerability
	KeySizes             []metadata.KeySize
	BlockSizes           []metadata.KeySize
	SupportedOutputLen   []metadata.KeySize
	VectorCount          int
}

// Layer wraps a registry.Registry behind the stable projection described
// above.
type Layer struct {
	r *registry.Registry
}

// New wraps r in an external Layer.
func New(r *registry.Registry) *Layer {
	return &Layer{r: r}
}

// ListAlgorithms returns a summary of every registered algorithm, in
// registration order.
func (l *Layer) ListAlgorithms() []AlgorithmSummary {
	descriptors := l.r.All()
	out := make([]AlgorithmSummary, 0, len(descriptors))
	for _, d := range descriptors {
		out = append(out, summarize(d))
	}
	return out
}

// ListByCategory returns a summary of every registered algorithm in
// category c, in registration order.
func (l *Layer) ListByCategory(c metadata.Category) []AlgorithmSummary {
	descriptors := l.r.FindByCategory(c)
	out := make([]AlgorithmSummary, 0, len(descriptors))
	for _, d := range descriptors {
		out = append(out, summarize(d))
	}
	return out
}

// GetVectors returns the declared test vectors for the named algorithm.
// The bool result reports whether the algorithm was found at all — it is
// false both for an unknown name and (trivially) true with an empty
// slice for a known algorithm that declares no vectors.
func (l *Layer) GetVectors(name string) ([]metadata.TestCase, bool) {
	d, ok := l.r.Find(name)
	if !ok {
		return nil, false
	}
	return d.Tests, true
}

// Get returns the summary for one named algorithm.
func (l *Layer) Get(name string) (AlgorithmSummary, bool) {
	d, ok := l.r.Find(name)
	if !ok {
		return AlgorithmSummary{}, false
	}
	return summarize(d), true
}

func summarize(d *algorithm.Descriptor) AlgorithmSummary {
	return AlgorithmSummary{
		Name:                 d.Name,
		Category:             d.Category,
		SubCategory:          d.SubCategory,
		SecurityStatus:       d.SecurityStatus,
		Complexity:           d.Complexity,
		Country:              d.Country,
		Year:                 d.Year,
		Inventor:             d.Inventor,
		Description:          d.Description,
		DocumentationLinks:   d.Documentation,
		References:           d.References,
		KnownVulnerabilities: d.KnownVulnerabilities,
		KeySizes:             d.KeySizes,
		BlockSizes:           d.BlockSizes,
		SupportedOutputLen:   d.SupportedOutputLen,
		VectorCount:          len(d.Tests),
	}
}
