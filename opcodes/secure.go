// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package opcodes

import "runtime"

// SecureCompare returns true iff a and b have equal length and equal
// content. Runtime depends only on len(a), never on the position of the
// first differing byte: every byte pair is visited and XOR-OR'd into a
// single accumulator before any branch is taken.
func SecureCompare(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var acc byte
	for i := range a {
		acc |= a[i] ^ b[i]
	}
	return acc == 0
}

// ClearArray overwrites every byte of buf with zero. runtime.KeepAlive
// anchors buf past the zeroing loop so the compiler cannot prove the store
// dead (the caller typically never reads buf again) and elide it.
func ClearArray(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}
