// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

// Package registry is the process-wide name -> algorithm map. Registration
// happens during a single startup phase; afterwards lookups are read-only
// and take a shared read lock (they are not lock-free), mirroring the
// single-writer/
// many-reader discipline the teacher's module registerer uses for its
// address-keyed precompile table (see parsdao-pars/modules/registerer.go),
// generalized here from EVM addresses to case-folded algorithm names.
package registry

import (
	"strings"
	"sync"
	"sync/atomic"

	"github.com/cryptoframe/algokit/algorithm"
	"github.com/cryptoframe/algokit/metadata"
)

// Registry is a process-wide, insertion-ordered collection of algorithm
// descriptors keyed by case-folded name.
//
// Registration is idempotent by exact (case-folded) name: a second
// Register of the same name is silently ignored — this is deliberate, to
// tolerate double-loads of a package's init-time registration, unlike the
// teacher's address-collision error (see DESIGN.md).
type Registry struct {
	mu     sync.RWMutex
	byName map[string]*algorithm.Descriptor
	order  []*algorithm.Descriptor
	frozen atomic.Bool
}

// New returns an empty registry ready to accept registrations.
func New() *Registry {
	return &Registry{byName: make(map[string]*algorithm.Descriptor)}
}

// Register adds d if no descriptor with the same case-folded name is
// already present. Returns whether insertion occurred. Never errors: a
// duplicate name is an intentional no-op (spec section 4.D).
func (r *Registry) Register(d *algorithm.Descriptor) bool {
	key := strings.ToLower(d.Name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[key]; exists {
		return false
	}
	r.byName[key] = d
	r.order = append(r.order, d)
	return true
}

// Freeze records that registration is complete; Frozen reports it.
// Calling it is optional. It does not change how lookups run: Find/All/
// FindByCategory take the read lock whether or not the registry is
// frozen, and Register does not check the flag.
func (r *Registry) Freeze() {
	r.frozen.Store(true)
}

// Frozen reports whether Freeze has been called.
func (r *Registry) Frozen() bool {
	return r.frozen.Load()
}

// Find looks up a descriptor by case-insensitive name. The returned bool is
// the only signal of absence — there is no UnknownAlgorithm exception.
func (r *Registry) Find(name string) (*algorithm.Descriptor, bool) {
	key := strings.ToLower(name)
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byName[key]
	return d, ok
}

// FindByCategory returns every registered descriptor of category c, in
// registration order.
func (r *Registry) FindByCategory(c metadata.Category) []*algorithm.Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*algorithm.Descriptor
	for _, d := range r.order {
		if d.Category == c {
			out = append(out, d)
		}
	}
	return out
}

// All returns every registered descriptor in registration (insertion)
// order, stable across calls.
func (r *Registry) All() []*algorithm.Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*algorithm.Descriptor, len(r.order))
	copy(out, r.order)
	return out
}

// Len reports how many distinct algorithms are registered.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
