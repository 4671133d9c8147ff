// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vertreap

import (
	"cmp"
	"iter"
	"math/rand/v2"

	"github.com/btcsuite/vertreap/internal/treap"
	"github.com/btcsuite/vertreap/priority"
)

// setKey returns the key a set item is ordered by, which is the item itself.
func setKey[K any](k *K) K {
	return *k
}

// Set is an ordered set backed by a persistent treap.
//
// Like Map, a Set is an immutable snapshot that may be read concurrently and
// copied in O(1).  The zero value is an empty set that may be read, but a Set
// must be created with one of the constructors before it can be appended to.
type Set[K any, P priority.Priority] struct {
	gen priority.Generator[K, P]
	t   *treap.Treap[K, K, P]
}

// newSet returns an empty set with the passed parameters.
func newSet[K any, P priority.Priority](compare func(a, b K) int,
	gen priority.Generator[K, P], lineage Lineage) Set[K, P] {

	log.Debugf("Created set with %T priority generator", gen)
	return Set[K, P]{
		gen: gen,
		t:   treap.NewWithLineage[K, K, P](compare, setKey[K], lineage),
	}
}

// NewSet returns an empty set whose priorities are drawn from the runtime's
// per-thread random source.
func NewSet[K cmp.Ordered]() Set[K, uint64] {
	return NewSetWithThreadRand[K, uint64]()
}

// NewSetWithThreadRand returns an empty set whose priorities of type P are
// drawn from the runtime's per-thread random source.
func NewSetWithThreadRand[K cmp.Ordered, P priority.Priority]() Set[K, P] {
	return newSet[K, P](treap.Compare[K], priority.NewThreadRandom[K, P](),
		treap.NewLineage())
}

// NewSetWithRand returns an empty set whose priorities are drawn from the
// passed random source.
func NewSetWithRand[K cmp.Ordered, P priority.Priority](src rand.Source) Set[K, P] {
	return newSet[K, P](treap.Compare[K], priority.NewRand[K, P](src),
		treap.NewLineage())
}

// NewSetWithHasher returns an empty set whose priorities are a keyed hash of
// each key as encoded by the passed encoder.
func NewSetWithHasher[K cmp.Ordered](encode priority.KeyEncoder[K],
	opts ...priority.HashOption) Set[K, uint64] {

	return newSet[K, uint64](treap.Compare[K],
		priority.NewHash(encode, opts...), treap.NewLineage())
}

// NewSetFunc returns an empty set ordered by the passed comparison function
// with priorities produced by the passed generator.
func NewSetFunc[K any, P priority.Priority](compare func(a, b K) int,
	gen priority.Generator[K, P]) Set[K, P] {

	s, err := NewSetWithConfig[K, P](&Config[K, P]{
		Compare:   compare,
		Generator: gen,
	})
	if err != nil {
		panic(err)
	}
	return s
}

// NewSetWithConfig returns an empty set created from the passed config.
func NewSetWithConfig[K any, P priority.Priority](cfg *Config[K, P]) (Set[K, P], error) {
	gen, lineage, err := cfg.resolve()
	if err != nil {
		return Set[K, P]{}, err
	}
	return newSet[K, P](cfg.Compare, gen, lineage), nil
}

// Len returns the number of keys in the set.
func (s Set[K, P]) Len() int {
	return s.t.Len()
}

// Version returns the version stamp of the set.
func (s Set[K, P]) Version() uint64 {
	return s.t.Version()
}

// Contains returns whether or not the passed key is in the set.
func (s Set[K, P]) Contains(key K) bool {
	return s.t.Has(key)
}

// PriorityOf returns the treap priority the passed key was first inserted
// with.
func (s Set[K, P]) PriorityOf(key K) (P, bool) {
	return s.t.PriorityOf(key)
}

// mustInit panics with ErrInvalidConfig when the set was not created by a
// constructor.
func (s Set[K, P]) mustInit() {
	if s.t == nil {
		panic(uninitializedError("Set"))
	}
}

// Append returns a new set that contains the passed key.  The priority
// generator is only consulted when the key is not already in the set.
func (s Set[K, P]) Append(key K) Set[K, P] {
	s.mustInit()
	return Set[K, P]{gen: s.gen, t: s.t.AppendFunc(key, s.gen.MakePriority)}
}

// AppendWithRand returns a new set that contains the passed key.  The
// priority of a new key is drawn from the passed random number generator
// instead of the set's generator.
func (s Set[K, P]) AppendWithRand(key K, r *rand.Rand) Set[K, P] {
	s.mustInit()
	t := s.t.AppendFunc(key, func(K) P {
		return priority.FromUint64[P](r.Uint64())
	})
	return Set[K, P]{gen: s.gen, t: t}
}

// AppendWithPriority returns a new set that contains the passed key using the
// passed priority instead of consulting the generator.  The priority is
// ignored when the key is already in the set.
func (s Set[K, P]) AppendWithPriority(p P, key K) Set[K, P] {
	s.mustInit()
	return Set[K, P]{gen: s.gen, t: s.t.Append(p, key)}
}

// SetIterator is a forward iterator over the keys of a set in ascending
// order.
type SetIterator[K any, P priority.Priority] struct {
	it *treap.Iterator[K, P]
}

// Iter returns a new iterator positioned before the first key of the set.
func (s Set[K, P]) Iter() *SetIterator[K, P] {
	return &SetIterator[K, P]{it: s.t.Iter()}
}

// Next moves the iterator to the next key and returns false when the iterator
// is exhausted.
func (iter *SetIterator[K, P]) Next() bool {
	return iter.it.Next()
}

// Key returns the key the iterator is positioned at, or the zero value if
// none.
func (iter *SetIterator[K, P]) Key() K {
	if k := iter.it.Item(); k != nil {
		return *k
	}
	var zero K
	return zero
}

// All returns a sequence of every key in ascending order.
func (s Set[K, P]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.t.All() {
			if !yield(*k) {
				return
			}
		}
	}
}

// ForEach invokes the passed function with every key in ascending order.
// Iteration stops early when the function returns false.
func (s Set[K, P]) ForEach(fn func(key K) bool) {
	s.t.ForEach(func(k *K) bool {
		return fn(*k)
	})
}
