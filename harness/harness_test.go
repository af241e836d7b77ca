// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package harness

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cryptoframe/algokit/algorithm"
	"github.com/cryptoframe/algokit/metadata"
)

// echoInstance returns whatever it was fed, optionally XORed byte-wise
// against a key — just enough state to exercise the harness's generic
// setter wiring (SetKey) without pulling in a real primitive.
type echoInstance struct {
	key []byte
	buf []byte
}

func newEchoInstance(bool) (algorithm.Instance, error) {
	return &echoInstance{}, nil
}

func (e *echoInstance) SetKey(key []byte) error {
	e.key = key
	return nil
}

func (e *echoInstance) Feed(data []byte) error {
	e.buf = append(e.buf, data...)
	return nil
}

func (e *echoInstance) Result() ([]byte, error) {
	out := make([]byte, len(e.buf))
	copy(out, e.buf)
	for i := range out {
		if len(e.key) > 0 {
			out[i] ^= e.key[i%len(e.key)]
		}
	}
	return out, nil
}

func echoDescriptor(tests ...metadata.TestCase) *algorithm.Descriptor {
	return &algorithm.Descriptor{
		Name:     "echo",
		Category: metadata.CategoryUnspecified,
		Tests:    tests,
		Factory:  newEchoInstance,
	}
}

func TestRunAllVectorsPass(t *testing.T) {
	d := echoDescriptor(
		metadata.TestCase{Text: "plain", Input: []byte("abc"), Expected: []byte("abc")},
		metadata.TestCase{Text: "keyed", Input: []byte{0x01, 0x02}, Key: []byte{0x01, 0x02}, Expected: []byte{0x00, 0x00}},
	)
	summary := Run([]*algorithm.Descriptor{d})
	require.Equal(t, 2, summary.TotalVectors())
	require.Equal(t, 2, summary.TotalPassed())
	require.Empty(t, summary.Reports[0].Mismatches)
}

func TestRunReportsMismatch(t *testing.T) {
	d := echoDescriptor(
		metadata.TestCase{Text: "wrong", Input: []byte("abc"), Expected: []byte("xyz")},
	)
	summary := Run([]*algorithm.Descriptor{d})
	require.Equal(t, 1, summary.TotalVectors())
	require.Equal(t, 0, summary.TotalPassed())
	require.Len(t, summary.Reports[0].Mismatches, 1)
	require.Equal(t, []byte("abc"), summary.Reports[0].Mismatches[0].Actual)
}

func TestRunFeedsTupleElementsInOrder(t *testing.T) {
	d := echoDescriptor(
		metadata.TestCase{Text: "tuple", Tuples: [][]byte{[]byte("a"), []byte("b"), []byte("c")}, Expected: []byte("abc")},
	)
	summary := Run([]*algorithm.Descriptor{d})
	require.Equal(t, 1, summary.TotalPassed())
}

func TestRunIsIndependentOfVectorOrder(t *testing.T) {
	a := metadata.TestCase{Text: "a", Input: []byte("a"), Expected: []byte("a")}
	b := metadata.TestCase{Text: "b", Input: []byte{0x01}, Key: []byte{0x01}, Expected: []byte{0x00}}

	forward := Run([]*algorithm.Descriptor{echoDescriptor(a, b)})
	backward := Run([]*algorithm.Descriptor{echoDescriptor(b, a)})

	require.Equal(t, forward.TotalPassed(), backward.TotalPassed())
	require.Equal(t, forward.TotalVectors(), backward.TotalVectors())
}
