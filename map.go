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

// Entry is a key/value pair stored in a Map.  Entries are ordered and compared
// by their key alone.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// entryKey returns the key an entry is ordered by.
func entryKey[K, V any](e *Entry[K, V]) K {
	return e.Key
}

// Map is an ordered associative map backed by a persistent treap.
//
// A Map is an immutable snapshot.  Append returns a new Map that shares all
// unmodified structure with the Map it was derived from and leaves that Map
// untouched, so any number of goroutines may read any Map without locking.
// Copying a Map value is O(1).
//
// The zero value is an empty map that may be read, but a Map must be created
// with one of the constructors before it can be appended to.
type Map[K, V any, P priority.Priority] struct {
	gen priority.Generator[K, P]
	t   *treap.Treap[K, Entry[K, V], P]
}

// newMap returns an empty map with the passed parameters.
func newMap[K, V any, P priority.Priority](compare func(a, b K) int,
	gen priority.Generator[K, P], lineage Lineage) Map[K, V, P] {

	log.Debugf("Created map with %T priority generator", gen)
	return Map[K, V, P]{
		gen: gen,
		t: treap.NewWithLineage[K, Entry[K, V], P](compare,
			entryKey[K, V], lineage),
	}
}

// NewMap returns an empty map whose priorities are drawn from the runtime's
// per-thread random source.
func NewMap[K cmp.Ordered, V any]() Map[K, V, uint64] {
	return NewMapWithThreadRand[K, V, uint64]()
}

// NewMapWithThreadRand returns an empty map whose priorities of type P are
// drawn from the runtime's per-thread random source.
func NewMapWithThreadRand[K cmp.Ordered, V any, P priority.Priority]() Map[K, V, P] {
	return newMap[K, V, P](treap.Compare[K], priority.NewThreadRandom[K, P](),
		treap.NewLineage())
}

// NewMapWithRand returns an empty map whose priorities are drawn from the
// passed random source.  The shape of the map is reproducible for a seeded
// source and a fixed sequence of appends.
func NewMapWithRand[K cmp.Ordered, V any, P priority.Priority](src rand.Source) Map[K, V, P] {
	return newMap[K, V, P](treap.Compare[K], priority.NewRand[K, P](src),
		treap.NewLineage())
}

// NewMapWithHasher returns an empty map whose priorities are a keyed hash of
// each key as encoded by the passed encoder.  The hash key is drawn once, so
// the same key always receives the same priority in this map and every map
// derived from it.
func NewMapWithHasher[K cmp.Ordered, V any](encode priority.KeyEncoder[K],
	opts ...priority.HashOption) Map[K, V, uint64] {

	return newMap[K, V, uint64](treap.Compare[K], priority.NewHash(encode, opts...),
		treap.NewLineage())
}

// NewMapFunc returns an empty map ordered by the passed comparison function
// with priorities produced by the passed generator.  The comparison must
// define a total order over the keys.
func NewMapFunc[K, V any, P priority.Priority](compare func(a, b K) int,
	gen priority.Generator[K, P]) Map[K, V, P] {

	m, err := NewMapWithConfig[K, V, P](&Config[K, P]{
		Compare:   compare,
		Generator: gen,
	})
	if err != nil {
		panic(err)
	}
	return m
}

// NewMapWithConfig returns an empty map created from the passed config.
func NewMapWithConfig[K, V any, P priority.Priority](cfg *Config[K, P]) (Map[K, V, P], error) {
	gen, lineage, err := cfg.resolve()
	if err != nil {
		return Map[K, V, P]{}, err
	}
	return newMap[K, V, P](cfg.Compare, gen, lineage), nil
}

// Len returns the number of entries in the map.
func (m Map[K, V, P]) Len() int {
	return m.t.Len()
}

// Version returns the version stamp of the map.  Every map derived with
// Append has a version greater than every map previously derived from the
// same original map.
func (m Map[K, V, P]) Version() uint64 {
	return m.t.Version()
}

// Find returns the entry stored for the passed key.  The entry is shared with
// the map and must not be modified.
func (m Map[K, V, P]) Find(key K) (*Entry[K, V], bool) {
	e := m.t.Find(key)
	return e, e != nil
}

// Get returns the value stored for the passed key.
func (m Map[K, V, P]) Get(key K) (V, bool) {
	if e := m.t.Find(key); e != nil {
		return e.Value, true
	}
	var zero V
	return zero, false
}

// Has returns whether or not the passed key exists.
func (m Map[K, V, P]) Has(key K) bool {
	return m.t.Has(key)
}

// PriorityOf returns the treap priority the passed key was first inserted
// with.
func (m Map[K, V, P]) PriorityOf(key K) (P, bool) {
	return m.t.PriorityOf(key)
}

// mustInit panics with ErrInvalidConfig when the map was not created by a
// constructor.
func (m Map[K, V, P]) mustInit() {
	if m.t == nil {
		panic(uninitializedError("Map"))
	}
}

// Append returns a new map with the passed key set to the passed value.  The
// priority generator is only consulted when the key does not already exist.
func (m Map[K, V, P]) Append(key K, value V) Map[K, V, P] {
	m.mustInit()
	t := m.t.AppendFunc(Entry[K, V]{Key: key, Value: value},
		m.gen.MakePriority)
	return Map[K, V, P]{gen: m.gen, t: t}
}

// AppendWithPriority returns a new map with the passed key set to the passed
// value using the passed priority instead of consulting the generator.  The
// priority is ignored when the key already exists.
func (m Map[K, V, P]) AppendWithPriority(p P, key K, value V) Map[K, V, P] {
	m.mustInit()
	t := m.t.Append(p, Entry[K, V]{Key: key, Value: value})
	return Map[K, V, P]{gen: m.gen, t: t}
}

// MapIterator is a forward iterator over the entries of a map in ascending key
// order.
type MapIterator[K, V any, P priority.Priority] struct {
	it *treap.Iterator[Entry[K, V], P]
}

// Iter returns a new iterator positioned before the first entry of the map.
func (m Map[K, V, P]) Iter() *MapIterator[K, V, P] {
	return &MapIterator[K, V, P]{it: m.t.Iter()}
}

// Next moves the iterator to the next entry and returns false when the
// iterator is exhausted.
func (iter *MapIterator[K, V, P]) Next() bool {
	return iter.it.Next()
}

// Entry returns the entry the iterator is positioned at, or nil if none.
func (iter *MapIterator[K, V, P]) Entry() *Entry[K, V] {
	return iter.it.Item()
}

// Key returns the key of the current entry, or the zero value if none.
func (iter *MapIterator[K, V, P]) Key() K {
	if e := iter.it.Item(); e != nil {
		return e.Key
	}
	var zero K
	return zero
}

// Value returns the value of the current entry, or the zero value if none.
func (iter *MapIterator[K, V, P]) Value() V {
	if e := iter.it.Item(); e != nil {
		return e.Value
	}
	var zero V
	return zero
}

// All returns a sequence of every key/value pair in ascending key order.
func (m Map[K, V, P]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := range m.t.All() {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Entries returns a sequence of every entry in ascending key order.  The
// entries are shared with the map and must not be modified.
func (m Map[K, V, P]) Entries() iter.Seq[*Entry[K, V]] {
	return m.t.All()
}

// Keys returns a sequence of every key in ascending order.
func (m Map[K, V, P]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for e := range m.t.All() {
			if !yield(e.Key) {
				return
			}
		}
	}
}

// ForEach invokes the passed function with every key/value pair in ascending
// key order.  Iteration stops early when the function returns false.
func (m Map[K, V, P]) ForEach(fn func(key K, value V) bool) {
	m.t.ForEach(func(e *Entry[K, V]) bool {
		return fn(e.Key, e.Value)
	})
}
