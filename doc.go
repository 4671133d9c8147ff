// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package vertreap implements persistent ordered maps and sets backed by a
versioned treap.

A treap is a binary search tree whose shape is determined by a random priority
assigned to each key, such that the keys are in binary search tree order and
the priorities are in max-heap order.  Search and insert operations are
O(log n) in expectation.

Every Map and Set is an immutable snapshot.  Appending a key returns a new
snapshot which replaces only the nodes on the path from the root to the key
and shares everything else with the snapshot it was derived from.  Each append
therefore allocates O(log n) nodes in expectation and leaves every existing
snapshot untouched, so snapshots may be read from any number of goroutines
without locking.

Entries can not be removed.  Appending a key that already exists replaces its
value and keeps the priority the key was first inserted with.

Usage

A map with priorities drawn from the runtime random source:

	m := vertreap.NewMap[string, int]()
	m2 := m.Append("alpha", 1)
	if v, ok := m2.Get("alpha"); ok {
		fmt.Println(v)
	}
	for k, v := range m2.All() {
		fmt.Println(k, v)
	}

Priority Generators

The priority of a new key is produced by a generator from the priority
package.  A generator is selected when a collection is created and is shared
by every snapshot derived from it:

  - NewMap and NewMapWithThreadRand use the runtime's per-thread source
  - NewMapWithRand uses a caller supplied, typically seeded, source
  - NewMapWithHasher uses a keyed hash of the key
  - NewMapFunc and NewMapWithConfig accept any generator

AppendWithPriority bypasses the generator entirely, which is mainly useful for
tests that need a specific tree shape.

Versions

Every snapshot derived from a common empty collection belongs to the same
lineage.  Each append, regardless of which snapshot it was made on, receives
a version stamp greater than every other stamp issued by the lineage.  Appends
on different snapshots of one lineage may run concurrently.

Errors

A lineage that exhausts its version stamps and keys that have no defined order,
such as a NaN, are contract violations that panic with an Error carrying the
ErrVersionOverflow or ErrIncomparable code.  A missing key is never an error.
*/
package vertreap
