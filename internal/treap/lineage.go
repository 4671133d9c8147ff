// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import (
	"fmt"
	"math"
	"sync/atomic"
)

// Lineage issues version stamps to every treap derived from a common empty
// treap.  Each call to Next must return a stamp strictly greater than every
// stamp previously returned by the same lineage, no matter which treap
// version requested it.
type Lineage interface {
	// Next reserves and returns the next version stamp.  It panics with
	// ErrVersionOverflow once the stamps are exhausted.
	Next() uint64

	// Current returns the most recently issued version stamp, or zero when
	// none have been issued.
	Current() uint64
}

// AtomicLineage is a Lineage that is safe for concurrent use.  Appends to
// different treap versions of the same lineage may run on separate goroutines.
type AtomicLineage struct {
	version atomic.Uint64
}

// Ensure AtomicLineage implements the Lineage interface.
var _ Lineage = (*AtomicLineage)(nil)

// NewLineage returns a new lineage that has not issued any stamps.
func NewLineage() *AtomicLineage {
	log.Debugf("Created new treap lineage")
	return &AtomicLineage{}
}

// NewLineageAt returns a new lineage that behaves as if it had already issued
// every stamp up to and including the passed version.
func NewLineageAt(version uint64) *AtomicLineage {
	l := &AtomicLineage{}
	l.version.Store(version)
	log.Debugf("Created new treap lineage at version %d", version)
	return l
}

// Next reserves and returns the next version stamp.
//
// This function is safe for concurrent access.
func (l *AtomicLineage) Next() uint64 {
	for {
		current := l.version.Load()
		if current == math.MaxUint64 {
			str := fmt.Sprintf("lineage exhausted all version stamps "+
				"at %d", current)
			panic(treapError(ErrVersionOverflow, str))
		}
		if l.version.CompareAndSwap(current, current+1) {
			return current + 1
		}
	}
}

// Current returns the most recently issued version stamp.
//
// This function is safe for concurrent access.
func (l *AtomicLineage) Current() uint64 {
	return l.version.Load()
}
