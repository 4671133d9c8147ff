// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import "iter"

// All returns a sequence of every item in the treap in ascending key order.
// The sequence may be ranged over any number of times.
func (t *Treap[K, T, P]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		it := t.Iter()
		for it.Next() {
			if !yield(it.Item()) {
				return
			}
		}
	}
}

// ForEach invokes the passed function with every item in the treap in
// ascending key order.  Iteration stops early when the function returns
// false.
func (t *Treap[K, T, P]) ForEach(fn func(item *T) bool) {
	it := t.Iter()
	for it.Next() {
		if !fn(it.Item()) {
			return
		}
	}
}
