// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package priority

import (
	"golang.org/x/exp/constraints"
)

// Priority is the set of types a Generator can produce.  Every integer type
// is allowed since a uniformly distributed 64-bit value can be truncated to
// any of them without biasing the result.
type Priority interface {
	constraints.Integer
}

// Generator produces the treap priority for a key.  A treap calls
// MakePriority exactly once for each key when it is first inserted and never
// again for the same key, even when the key's value is replaced.
//
// The priorities only influence the expected balance of a treap, never its
// correctness, so a generator is free to keep internal state.
type Generator[K any, P Priority] interface {
	MakePriority(key K) P
}

// GeneratorFunc is an adapter to allow the use of an ordinary function as a
// Generator.
type GeneratorFunc[K any, P Priority] func(key K) P

// MakePriority calls f(key).
func (f GeneratorFunc[K, P]) MakePriority(key K) P {
	return f(key)
}

// FromUint64 converts a uniformly distributed 64-bit value into a uniformly
// distributed priority of type P.
func FromUint64[P Priority](v uint64) P {
	return P(v)
}
