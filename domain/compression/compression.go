// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

// Package compression wires github.com/klauspost/compress's DEFLATE and
// Zstandard implementations into the Instance contract (an indirect
// teacher dependency, direct dependency of the retrieved SnellerInc-sneller
// repo). isInverse selects decompress instead of compress.
package compression

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"

	"github.com/cryptoframe/algokit/algorithm"
	"github.com/cryptoframe/algokit/metadata"
)

// compressionInstance buffers fed bytes and transforms them all at once
// on Result — compression ratio depends on seeing the whole input, so
// there is no benefit to incremental framing here the way there is for a
// hash's block-wise absorption.
type compressionInstance struct {
	isInverse bool
	run       func(isInverse bool, in []byte) ([]byte, error)
	buf       []byte
	finalized bool
}

func (c *compressionInstance) Feed(data []byte) error {
	if c.finalized {
		return algorithm.ErrFeedAfterFinalize
	}
	c.buf = append(c.buf, data...)
	return nil
}

func (c *compressionInstance) Result() ([]byte, error) {
	if c.finalized {
		return nil, algorithm.ErrFeedAfterFinalize
	}
	c.finalized = true
	return c.run(c.isInverse, c.buf)
}

func flateRun(isInverse bool, in []byte) ([]byte, error) {
	if isInverse {
		r := flate.NewReader(bytes.NewReader(in))
		defer r.Close()
		return io.ReadAll(r)
	}
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(in); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func zstdRun(isInverse bool, in []byte) ([]byte, error) {
	if isInverse {
		d, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer d.Close()
		return d.DecodeAll(in, nil)
	}
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(in, nil), nil
}

func newCompressionFactory(run func(bool, []byte) ([]byte, error)) func(bool) (algorithm.Instance, error) {
	return func(isInverse bool) (algorithm.Instance, error) {
		return &compressionInstance{isInverse: isInverse, run: run}, nil
	}
}

// DeflateDescriptor declares DEFLATE (RFC 1951).
var DeflateDescriptor = &algorithm.Descriptor{
	Name:           "DEFLATE",
	InternalName:   "deflate",
	Category:       metadata.CategoryCompression,
	SubCategory:    "lz77-huffman",
	Description:    "LZ77 sliding-window matching plus Huffman coding (RFC 1951); klauspost/compress's faster reimplementation of compress/flate's algorithm.",
	SecurityStatus: metadata.SecurityUnspecified,
	Complexity:     metadata.ComplexityIntermediate,
	Documentation: []metadata.LinkItem{
		{Text: "RFC 1951", URI: "https://www.rfc-editor.org/rfc/rfc1951"},
	},
	Factory: newCompressionFactory(flateRun),
}

// ZstdDescriptor declares Zstandard.
var ZstdDescriptor = &algorithm.Descriptor{
	Name:           "Zstandard",
	InternalName:   "zstd",
	Category:       metadata.CategoryCompression,
	SubCategory:    "fse-ans",
	Inventor:       "Yann Collet",
	Year:           2016,
	Country:        metadata.Country("FR"),
	Description:    "Finite State Entropy/tANS-coded compression with a large configurable window and an optional trained-dictionary mode.",
	SecurityStatus: metadata.SecurityUnspecified,
	Complexity:     metadata.ComplexityAdvanced,
	Documentation: []metadata.LinkItem{
		{Text: "RFC 8878", URI: "https://www.rfc-editor.org/rfc/rfc8878"},
	},
	Factory: newCompressionFactory(zstdRun),
}
