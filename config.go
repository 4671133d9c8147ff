// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vertreap

import (
	"cmp"

	"github.com/btcsuite/vertreap/internal/treap"
	"github.com/btcsuite/vertreap/priority"
)

// Lineage issues the version stamps shared by every collection derived from a
// common empty collection.
type Lineage = treap.Lineage

// AtomicLineage is the default Lineage.  It is safe for concurrent use.
type AtomicLineage = treap.AtomicLineage

// NewLineage returns a new lineage that has not issued any version stamps.
// Passing the same lineage to several collections orders the appends of all
// of them.
func NewLineage() *AtomicLineage {
	return treap.NewLineage()
}

// NewLineageAt returns a new lineage whose next version stamp follows the
// passed version.
func NewLineageAt(version uint64) *AtomicLineage {
	return treap.NewLineageAt(version)
}

// Config is a descriptor containing the parameters used to create a Map or a
// Set.
type Config[K any, P priority.Priority] struct {
	// Compare defines the total order of the keys.  It must return a
	// negative number, zero, or a positive number when a is less than,
	// equal to, or greater than b respectively.  It is required.
	Compare func(a, b K) int

	// Generator produces the priority of each newly inserted key.  When
	// it is nil, priorities are drawn from the runtime's per-thread random
	// source.
	Generator priority.Generator[K, P]

	// Lineage stamps the versions of the collection and every collection
	// derived from it.  When it is nil, a new lineage is created.
	Lineage Lineage
}

// OrderedConfig returns a Config for keys with a natural order which uses the
// passed generator.
func OrderedConfig[K cmp.Ordered, P priority.Priority](gen priority.Generator[K, P]) *Config[K, P] {
	return &Config[K, P]{
		Compare:   treap.Compare[K],
		Generator: gen,
	}
}

// resolve validates the config and returns the generator and lineage to use
// with any defaults applied.
func (cfg *Config[K, P]) resolve() (priority.Generator[K, P], Lineage, error) {
	if cfg == nil {
		return nil, nil, configError("nil config")
	}
	if cfg.Compare == nil {
		return nil, nil, configError("config does not specify a key " +
			"comparison function")
	}

	gen := cfg.Generator
	if gen == nil {
		gen = priority.NewThreadRandom[K, P]()
	}
	lineage := cfg.Lineage
	if lineage == nil {
		lineage = treap.NewLineage()
	}
	return gen, lineage, nil
}
