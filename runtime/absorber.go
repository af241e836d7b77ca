// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

// Package runtime is the streaming instance runtime shared by virtually
// every hash and block cipher in this module: the fixed-size block buffer,
// Feed's fill-compress-stream algorithm, and the snapshot/restore machinery
// that lets Result() be called repeatedly without disturbing the caller's
// logical input (spec section 4.E).
package runtime

// Absorber implements the block-buffering contract of spec section 4.E.
// It holds a block buffer of capacity BlockSize, a buffer-length counter,
// and a running total byte count, and calls Compress once per full block
// as bytes are fed in. Algorithms embed an Absorber and supply Compress as
// a closure over their own word state.
type Absorber struct {
	BlockSize int
	Compress  func(block []byte)

	buf   []byte
	bl    int
	total uint64
}

// NewAbsorber returns an Absorber with the given block size and compress
// callback, ready to accept Feed calls.
func NewAbsorber(blockSize int, compress func(block []byte)) *Absorber {
	return &Absorber{
		BlockSize: blockSize,
		Compress:  compress,
		buf:       make([]byte, blockSize),
	}
}

// Feed implements spec section 4.E's buffering algorithm: if the buffer
// plus input stays under one block, it is copied in; otherwise the buffer
// is topped up to exactly one block and compressed, then full blocks are
// compressed directly out of input without an intermediate copy, and any
// tail remainder is buffered. Feed with an empty slice is a no-op.
//
// The hash/MAC output this produces is a function of the concatenation of
// every fed input regardless of how the caller split it into Feed calls
// (chunk invariance, spec section 8 property 2) because Compress only ever
// sees whole, contiguous BlockSize-byte windows of that concatenation.
func (a *Absorber) Feed(input []byte) {
	if len(input) == 0 {
		return
	}
	a.total += uint64(len(input))

	if a.bl+len(input) < a.BlockSize {
		copy(a.buf[a.bl:], input)
		a.bl += len(input)
		return
	}

	// Top the buffer up to exactly one block and compress it.
	n := a.BlockSize - a.bl
	copy(a.buf[a.bl:], input[:n])
	a.Compress(a.buf)
	input = input[n:]
	a.bl = 0

	// Compress directly out of input while a full block remains.
	for len(input) >= a.BlockSize {
		a.Compress(input[:a.BlockSize])
		input = input[a.BlockSize:]
	}

	// Buffer the tail remainder.
	copy(a.buf, input)
	a.bl = len(input)
}

// BufferedLen reports how many bytes of the current block are filled.
func (a *Absorber) BufferedLen() int { return a.bl }

// Buffered returns the filled prefix of the current block buffer. The
// returned slice aliases Absorber-owned storage; callers must not retain
// it past the next Feed/Reset.
func (a *Absorber) Buffered() []byte { return a.buf[:a.bl] }

// TotalBytes reports the total number of bytes fed so far.
func (a *Absorber) TotalBytes() uint64 { return a.total }

// State is an opaque snapshot of an Absorber's buffering state (not its
// algorithm-specific word state — callers snapshot that separately). It
// lets Result() finalize non-destructively: snapshot, finalize, restore.
type State struct {
	buf   []byte
	bl    int
	total uint64
}

// Snapshot captures the current buffering state for later Restore.
func (a *Absorber) Snapshot() State {
	saved := make([]byte, len(a.buf))
	copy(saved, a.buf)
	return State{buf: saved, bl: a.bl, total: a.total}
}

// Restore reverts the buffering state to a previously captured Snapshot.
func (a *Absorber) Restore(s State) {
	copy(a.buf, s.buf)
	a.bl = s.bl
	a.total = s.total
}

// Reset clears the buffer, length counter and total, returning the
// Absorber to its post-construction state. Used by hash/MAC/KDF/XOF
// instances to implement the "Feed after Finalize implicitly resets"
// policy of spec section 4.E.
func (a *Absorber) Reset() {
	for i := range a.buf {
		a.buf[i] = 0
	}
	a.bl = 0
	a.total = 0
}
