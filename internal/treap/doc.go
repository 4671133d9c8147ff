// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package treap implements a versioned persistent treap that is used to hold
ordered items using a combination of binary search tree and heap semantics.
It is a self-organizing and randomized data structure that doesn't require
complex operations to maintain balance.  Search and insert operations are
O(log n) in expectation.

The treap works by creating a new version for every insertion by replacing the
nodes on the path to the insertion point with new nodes while sharing all
other nodes with the previous version.  The caller only has to atomically
replace the treap pointer with the newly returned version after performing an
insertion.  All readers can simply use their existing pointer as a snapshot
since the treap it points to is never modified.

Every node is stamped with a version issued by the lineage shared between all
treaps derived from a common empty treap.  The stamps are used to assert that
no node ever links to a node created after it.

Items can not be removed.  An item whose key already exists is replaced
without changing the priority of the key.
*/
package treap
